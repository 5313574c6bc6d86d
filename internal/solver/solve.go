package solver

import (
	"bytes"
	"math"
	"time"

	"ember_sculpt/internal/models"
)

// heightEpsilon stands in for non-positive heights inside divisions.
const heightEpsilon = 0.00001

// Apply merges e over st and recomputes the derived field selected by the
// resulting calc mode. st is not modified.
func Apply(st models.BurnState, e models.Edit) models.BurnState {
	next := st
	c := &next.BurnConfig

	if e.StartDate != nil {
		c.StartDate = *e.StartDate
	}
	if e.EndDate != nil {
		c.EndDate = *e.EndDate
	}
	if e.BurnRate != nil {
		c.SimpleBurnRate = *e.BurnRate
	}
	if e.InitialHeight != nil {
		c.InitialHeight = *e.InitialHeight
	}
	if e.CandleWidth != nil {
		c.CandleWidth = *e.CandleWidth
	}
	if e.WaxDensity != nil {
		c.WaxDensity = *e.WaxDensity
	}
	if e.WaxBurnRate != nil {
		c.WaxBurnRate = *e.WaxBurnRate
	}
	if e.CalcMode != nil {
		c.CalcMode = *e.CalcMode
	}
	if e.BurnMode != nil {
		c.BurnMode = *e.BurnMode
	}
	applyCosmetics(c, e)

	if c.BurnMode == models.BurnModeSimple && e.InitialHeight != nil {
		c.CandleWidth = SimpleWidth(c.InitialHeight)
	}

	next.BurnConfig = Solve(*c)
	next.CurrentTime = ClampCurrentTime(next.CurrentTime, next.StartDate, next.EndDate)
	return next
}

func applyCosmetics(c *models.BurnConfig, e models.Edit) {
	if e.FlameColor != nil {
		c.FlameColor = *e.FlameColor
	}
	if e.WaxColor != nil {
		c.WaxColor = *e.WaxColor
	}
	if e.RulerColor != nil {
		c.RulerColor = *e.RulerColor
	}
	if e.RulerLabelColor != nil {
		c.RulerLabelColor = *e.RulerLabelColor
	}
	if e.CameraState != nil {
		c.CameraState = bytes.Clone(e.CameraState)
	}
}

// Solve recomputes the field named by c.CalcMode from the other two.
//
// burnRate: rate = height / (end - start), written back only in simple burn
// mode and only for a positive window. endDate / startDate: the missing date is
// placed height/rate hours away from the other; a zero rate collapses the window.
func Solve(c models.BurnConfig) models.BurnConfig {
	height := c.InitialHeight
	if height <= 0 {
		height = heightEpsilon
	}

	switch c.CalcMode {
	case models.CalcBurnRate:
		hours := float64(c.EndDate.Sub(c.StartDate)) / float64(time.Hour)
		if hours > 0 && c.BurnMode == models.BurnModeSimple {
			c.SimpleBurnRate = height / hours
		}
	case models.CalcEndDate:
		c.EndDate = placeDate(c.StartDate, height, EffectiveBurnRate(c), 1)
	case models.CalcStartDate:
		c.StartDate = placeDate(c.EndDate, height, EffectiveBurnRate(c), -1)
	}
	return c
}

// placeDate moves anchor by the burn duration in direction dir. The window
// collapses onto anchor when the burn never finishes or would end outside
// [MinDate, MaxDate].
func placeDate(anchor time.Time, height, rate float64, dir time.Duration) time.Time {
	d, ok := burnDuration(height, rate)
	if !ok {
		return anchor
	}
	if t := anchor.Add(dir * d); InDateRange(t) {
		return t
	}
	return anchor
}

// burnDuration returns how long height inches last at rate in/h. ok is false
// when the burn never finishes or the span does not fit in a time.Duration.
func burnDuration(height, rate float64) (time.Duration, bool) {
	if rate <= 0 {
		return 0, false
	}
	ns := height / rate * float64(time.Hour)
	if math.IsNaN(ns) || math.IsInf(ns, 0) || ns >= math.MaxInt64 {
		return 0, false
	}
	return time.Duration(math.Round(ns)), true
}

// Calendar bounds every stored date must fall in. Dates outside years 1..9999
// cannot be encoded as JSON or read back from sqlite.
var (
	MinDate = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	MaxDate = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)
)

// InDateRange reports whether t lies within [MinDate, MaxDate].
func InDateRange(t time.Time) bool {
	return !t.Before(MinDate) && !t.After(MaxDate)
}

// ClampCurrentTime snaps cur to start when it lies outside [start, end].
func ClampCurrentTime(cur, start, end time.Time) time.Time {
	if cur.Before(start) || cur.After(end) {
		return start
	}
	return cur
}
