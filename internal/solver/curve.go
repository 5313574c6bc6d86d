package solver

import (
	"time"

	"ember_sculpt/internal/models"
)

// BurnCurve samples the remaining height at samples+1 evenly spaced instants
// from StartDate to EndDate inclusive. A collapsed window yields one point.
func BurnCurve(c models.BurnConfig, samples int) ([]time.Time, []float64) {
	total := TotalDuration(c)
	if samples < 1 || total == 0 {
		samples = 0
	}
	xs := make([]time.Time, 0, samples+1)
	ys := make([]float64, 0, samples+1)
	st := models.BurnState{BurnConfig: c}
	for i := 0; i <= samples; i++ {
		t := c.StartDate
		if samples > 0 {
			t = c.StartDate.Add(time.Duration(float64(total) * float64(i) / float64(samples)))
		}
		st.CurrentTime = t
		xs = append(xs, t)
		ys = append(ys, CandleHeight(st))
	}
	return xs, ys
}
