// Package configio reads and writes the portable candle config file.
package configio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ember_sculpt/internal/models"
	"ember_sculpt/internal/solver"
)

// Filename is the suggested name for exported configs.
const Filename = "embersculpt_config.json"

// ErrMalformed marks an import that failed structural validation.
var ErrMalformed = errors.New("malformed config")

// isoLayout matches JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

const layoutDate = "2006-01-02"

// file is the on-disk shape; key names are shared with the browser app.
type file struct {
	StartDate           string          `json:"startDate"`
	EndDate             string          `json:"endDate"`
	BurnRate            float64         `json:"burnRate"`
	InitialCandleHeight float64         `json:"initialCandleHeight"`
	CandleWidth         float64         `json:"candleWidth"`
	FlameColor          string          `json:"flameColor"`
	WaxColor            string          `json:"waxColor"`
	RulerColor          string          `json:"rulerColor"`
	RulerLabelColor     string          `json:"rulerLabelColor"`
	CameraState         json.RawMessage `json:"cameraState,omitempty"`
	CalcMode            string          `json:"calcMode"`
	BurnMode            string          `json:"burnMode"`
	WaxDensity          float64         `json:"waxDensity"`
	WaxBurnRate         float64         `json:"waxBurnRate"`
}

// Export serializes c as indented JSON.
func Export(c models.BurnConfig) ([]byte, error) {
	f := file{
		StartDate:           c.StartDate.UTC().Format(isoLayout),
		EndDate:             c.EndDate.UTC().Format(isoLayout),
		BurnRate:            c.SimpleBurnRate,
		InitialCandleHeight: c.InitialHeight,
		CandleWidth:         c.CandleWidth,
		FlameColor:          c.FlameColor,
		WaxColor:            c.WaxColor,
		RulerColor:          c.RulerColor,
		RulerLabelColor:     c.RulerLabelColor,
		CameraState:         cameraOrNil(c.CameraState),
		CalcMode:            string(c.CalcMode),
		BurnMode:            string(c.BurnMode),
		WaxDensity:          c.WaxDensity,
		WaxBurnRate:         c.WaxBurnRate,
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return b, nil
}

// Import parses raw into a config. Only structure is checked; the result is
// not re-solved. Missing or zero optional fields take their defaults.
func Import(raw []byte) (models.BurnConfig, error) {
	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return models.BurnConfig{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	start, err := parseDate(f.StartDate)
	if err != nil {
		return models.BurnConfig{}, fmt.Errorf("%w: startDate: %v", ErrMalformed, err)
	}
	end, err := parseDate(f.EndDate)
	if err != nil {
		return models.BurnConfig{}, fmt.Errorf("%w: endDate: %v", ErrMalformed, err)
	}

	calc := models.CalcMode(orString(f.CalcMode, string(models.CalcStartDate)))
	if !calc.Valid() {
		return models.BurnConfig{}, fmt.Errorf("%w: unknown calcMode %q", ErrMalformed, f.CalcMode)
	}
	burn := models.BurnMode(orString(f.BurnMode, string(models.BurnModeSimple)))
	if !burn.Valid() {
		return models.BurnConfig{}, fmt.Errorf("%w: unknown burnMode %q", ErrMalformed, f.BurnMode)
	}

	return models.BurnConfig{
		StartDate:       start,
		EndDate:         end,
		InitialHeight:   f.InitialCandleHeight,
		CandleWidth:     f.CandleWidth,
		BurnMode:        burn,
		CalcMode:        calc,
		SimpleBurnRate:  orFloat(f.BurnRate, solver.DefaultImportBurnRate),
		WaxDensity:      orFloat(f.WaxDensity, solver.DefaultWaxDensity),
		WaxBurnRate:     orFloat(f.WaxBurnRate, solver.DefaultWaxBurnRate),
		FlameColor:      f.FlameColor,
		WaxColor:        f.WaxColor,
		RulerColor:      orString(f.RulerColor, solver.DefaultRulerColor),
		RulerLabelColor: orString(f.RulerLabelColor, solver.DefaultRulerLabelColor),
		CameraState:     cameraOrNil(f.CameraState),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("missing")
	}
	for _, layout := range []string{time.RFC3339Nano, layoutDate} {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if !solver.InDateRange(t) {
			return time.Time{}, fmt.Errorf("time %q out of range", s)
		}
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}

// cameraOrNil compacts the camera blob, dropping empty or JSON-null values.
func cameraOrNil(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return bytes.Clone(trimmed)
	}
	return buf.Bytes()
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
