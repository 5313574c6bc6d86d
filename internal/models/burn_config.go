package models

import (
	"encoding/json"
	"time"
)

// BurnMode selects how the linear burn rate is obtained.
type BurnMode string

const (
	BurnModeSimple   BurnMode = "simple"   // inches/hour entered directly
	BurnModeAdvanced BurnMode = "advanced" // derived from wax mass burn rate and geometry
)

// Valid reports whether m is a known burn mode.
func (m BurnMode) Valid() bool {
	return m == BurnModeSimple || m == BurnModeAdvanced
}

// CalcMode names the quantity that is derived rather than user-set.
type CalcMode string

const (
	CalcBurnRate  CalcMode = "burnRate"
	CalcEndDate   CalcMode = "endDate"
	CalcStartDate CalcMode = "startDate"
)

// Valid reports whether m is a known calculation mode.
func (m CalcMode) Valid() bool {
	switch m {
	case CalcBurnRate, CalcEndDate, CalcStartDate:
		return true
	}
	return false
}

// BurnConfig is the user-facing configuration of a candle burn.
type BurnConfig struct {
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	InitialHeight  float64   `json:"initial_height"` // inches
	CandleWidth    float64   `json:"candle_width"`   // inches
	BurnMode       BurnMode  `json:"burn_mode"`
	CalcMode       CalcMode  `json:"calc_mode"`
	SimpleBurnRate float64   `json:"burn_rate"`     // in/h, simple mode only
	WaxDensity     float64   `json:"wax_density"`   // oz/in³
	WaxBurnRate    float64   `json:"wax_burn_rate"` // oz/h

	FlameColor      string          `json:"flame_color"`
	WaxColor        string          `json:"wax_color"`
	RulerColor      string          `json:"ruler_color"`
	RulerLabelColor string          `json:"ruler_label_color"`
	CameraState     json.RawMessage `json:"camera_state,omitempty"` // opaque
}

// BurnState is the persisted config plus playback position.
type BurnState struct {
	ID int `json:"id"`
	BurnConfig
	CurrentTime time.Time `json:"current_time"`
	IsPlaying   bool      `json:"is_playing"`
	UpdatedAt   time.Time `json:"updated_at"`
}
