package models

import (
	"encoding/json"
	"time"
)

// Edit is a partial change; nil fields keep their current value.
type Edit struct {
	StartDate     *time.Time
	EndDate       *time.Time
	BurnRate      *float64
	InitialHeight *float64
	CandleWidth   *float64
	WaxDensity    *float64
	WaxBurnRate   *float64
	CalcMode      *CalcMode
	BurnMode      *BurnMode

	FlameColor      *string
	WaxColor        *string
	RulerColor      *string
	RulerLabelColor *string
	CameraState     json.RawMessage
}

// Empty reports whether the edit changes nothing.
func (e Edit) Empty() bool {
	return e.StartDate == nil && e.EndDate == nil && e.BurnRate == nil &&
		e.InitialHeight == nil && e.CandleWidth == nil && e.WaxDensity == nil &&
		e.WaxBurnRate == nil && e.CalcMode == nil && e.BurnMode == nil &&
		e.FlameColor == nil && e.WaxColor == nil && e.RulerColor == nil &&
		e.RulerLabelColor == nil && e.CameraState == nil
}
