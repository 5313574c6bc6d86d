package solver

import (
	"math"
	"time"

	"ember_sculpt/internal/models"
)

// FrameStep is the virtual time added per animation frame.
const FrameStep = 50 * time.Millisecond

// Render floors keep geometry non-degenerate.
const (
	minRenderHeight        = 0.001
	minRenderInitialHeight = 0.01
	minRenderWidth         = 0.01
)

// Play starts playback unless the window is already exhausted.
func Play(st models.BurnState) models.BurnState {
	st.IsPlaying = st.CurrentTime.Before(st.EndDate)
	return st
}

// Pause stops playback.
func Pause(st models.BurnState) models.BurnState {
	st.IsPlaying = false
	return st
}

// Tick advances a playing state by step. finished reports that playback
// stopped because the end of the window was reached.
func Tick(st models.BurnState, step time.Duration) (next models.BurnState, finished bool) {
	if !st.IsPlaying {
		return st, false
	}
	if !st.CurrentTime.Before(st.EndDate) {
		st.IsPlaying = false
		return st, true
	}
	t := st.CurrentTime.Add(step)
	if !t.Before(st.EndDate) {
		st.CurrentTime = st.EndDate
		st.IsPlaying = false
		return st, true
	}
	st.CurrentTime = t
	return st, false
}

// Seek moves the playhead to start+offset, offset bounded by the window.
// The play flag is left untouched.
func Seek(st models.BurnState, offset time.Duration) models.BurnState {
	total := TotalDuration(st.BurnConfig)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	st.CurrentTime = st.StartDate.Add(offset)
	return st
}

// TotalDuration is end - start, never negative.
func TotalDuration(c models.BurnConfig) time.Duration {
	d := c.EndDate.Sub(c.StartDate)
	if d < 0 {
		return 0
	}
	return d
}

// Elapsed is the playhead offset clamped into [0, TotalDuration].
func Elapsed(st models.BurnState) time.Duration {
	total := TotalDuration(st.BurnConfig)
	e := st.CurrentTime.Sub(st.StartDate)
	if e < 0 {
		return 0
	}
	if e > total {
		return total
	}
	return e
}

// CandleHeight is the remaining wax height at the playhead, never negative.
func CandleHeight(st models.BurnState) float64 {
	if st.InitialHeight <= 0 {
		return 0
	}
	hours := float64(Elapsed(st)) / float64(time.Hour)
	h := st.InitialHeight - hours*EffectiveBurnRate(st.BurnConfig)
	if h < 0 || math.IsNaN(h) {
		return 0
	}
	return h
}

// Snapshot derives the read-only render view of st.
func Snapshot(st models.BurnState) models.Snapshot {
	elapsed := Elapsed(st)
	return models.Snapshot{
		CandleHeight:      math.Max(CandleHeight(st), minRenderHeight),
		InitialHeight:     math.Max(st.InitialHeight, minRenderInitialHeight),
		CandleWidth:       math.Max(DisplayWidth(st.BurnConfig), minRenderWidth),
		EffectiveBurnRate: EffectiveBurnRate(st.BurnConfig),
		StartDate:         st.StartDate,
		EndDate:           st.EndDate,
		CurrentTime:       st.CurrentTime,
		TotalDurationMs:   TotalDuration(st.BurnConfig).Milliseconds(),
		TimeElapsedMs:     elapsed.Milliseconds(),
		BurningTime:       FormatDuration(elapsed),
		IsPlaying:         st.IsPlaying,
		BurnMode:          st.BurnMode,
		CalcMode:          st.CalcMode,
		FlameColor:        st.FlameColor,
		WaxColor:          st.WaxColor,
		RulerColor:        st.RulerColor,
		RulerLabelColor:   st.RulerLabelColor,
		CameraState:       st.CameraState,
	}
}
