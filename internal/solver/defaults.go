package solver

import (
	"time"

	"ember_sculpt/internal/models"
)

// Default configuration values, also used to fill gaps in imported configs.
const (
	DefaultInitialHeight   = 10.0  // in
	DefaultStartBurnRate   = 1.0   // in/h on first load
	DefaultImportBurnRate  = 0.1   // in/h when an import omits it
	DefaultWaxDensity      = 0.554 // oz/in³, paraffin
	DefaultWaxBurnRate     = 0.25  // oz/h, about 7 g/h
	DefaultFlameColor      = "#ED5108"
	DefaultWaxColor        = "#F5F5DC"
	DefaultRulerColor      = "#FFFFFF"
	DefaultRulerLabelColor = "#FFFFFF"
)

// Defaults is the state created on first load: a 10in candle burning at
// 1in/h from now until ten hours from now.
func Defaults(now time.Time) models.BurnState {
	now = now.UTC()
	hours := DefaultInitialHeight / DefaultStartBurnRate
	end := now.Add(time.Duration(hours * float64(time.Hour)))
	return models.BurnState{
		ID: 1,
		BurnConfig: models.BurnConfig{
			StartDate:       now,
			EndDate:         end,
			InitialHeight:   DefaultInitialHeight,
			CandleWidth:     SimpleWidth(DefaultInitialHeight),
			BurnMode:        models.BurnModeSimple,
			CalcMode:        models.CalcEndDate,
			SimpleBurnRate:  DefaultStartBurnRate,
			WaxDensity:      DefaultWaxDensity,
			WaxBurnRate:     DefaultWaxBurnRate,
			FlameColor:      DefaultFlameColor,
			WaxColor:        DefaultWaxColor,
			RulerColor:      DefaultRulerColor,
			RulerLabelColor: DefaultRulerLabelColor,
		},
		CurrentTime: now,
		UpdatedAt:   now,
	}
}
