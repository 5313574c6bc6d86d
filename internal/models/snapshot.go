package models

import (
	"encoding/json"
	"time"
)

// Snapshot is the read-only view handed to rendering clients.
type Snapshot struct {
	CandleHeight      float64   `json:"candle_height"`
	InitialHeight     float64   `json:"initial_height"`
	CandleWidth       float64   `json:"candle_width"`
	EffectiveBurnRate float64   `json:"effective_burn_rate"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	CurrentTime       time.Time `json:"current_time"`
	TotalDurationMs   int64     `json:"total_duration_ms"`
	TimeElapsedMs     int64     `json:"time_elapsed_ms"`
	BurningTime       string    `json:"burning_time"` // e.g. "1d 02:03:04"
	IsPlaying         bool      `json:"is_playing"`

	BurnMode        BurnMode        `json:"burn_mode"`
	CalcMode        CalcMode        `json:"calc_mode"`
	FlameColor      string          `json:"flame_color"`
	WaxColor        string          `json:"wax_color"`
	RulerColor      string          `json:"ruler_color"`
	RulerLabelColor string          `json:"ruler_label_color"`
	CameraState     json.RawMessage `json:"camera_state,omitempty"`
}
