package solver

import (
	"math"

	"ember_sculpt/internal/models"
)

// SimpleWidth is the width coupled to height in simple burn mode: 0.4·height.
// Computed as 2h/5 so that e.g. 12in gives exactly 4.8.
func SimpleWidth(height float64) float64 {
	return height * 2 / 5
}

// EffectiveBurnRate resolves the linear burn rate in inches/hour for c.
// Degenerate inputs yield 0, never NaN or Inf.
func EffectiveBurnRate(c models.BurnConfig) float64 {
	if c.BurnMode == models.BurnModeAdvanced {
		return CylinderBurnRate(c.CandleWidth, c.WaxDensity, c.WaxBurnRate)
	}
	if c.SimpleBurnRate > 0 && !math.IsInf(c.SimpleBurnRate, 0) {
		return c.SimpleBurnRate
	}
	return 0
}

// CylinderBurnRate converts a wax mass burn rate (oz/h) into inches/hour
// for a uniform cylinder of the given width (in) and density (oz/in³).
func CylinderBurnRate(width, density, waxBurnRate float64) float64 {
	if waxBurnRate <= 0 || density <= 0 || width <= 0 {
		return 0
	}
	radius := width / 2
	massPerInch := math.Pi * radius * radius * 1 * density
	if massPerInch <= 0 || math.IsInf(massPerInch, 0) {
		return 0
	}
	rate := waxBurnRate / massPerInch
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return rate
}

// DisplayWidth is the width a renderer should draw.
func DisplayWidth(c models.BurnConfig) float64 {
	if c.BurnMode == models.BurnModeAdvanced {
		return c.CandleWidth
	}
	return SimpleWidth(c.InitialHeight)
}
