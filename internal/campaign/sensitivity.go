package campaign

import (
	"time"

	"github.com/pointsfarm/standx-estimator/pkg/models"
)

// FDV presets shown in the UI, in USD.
var DefaultFDVs = []float64{
	100_000_000, 250_000_000, 500_000_000,
	1_000_000_000, 2_000_000_000, 3_000_000_000,
}

// DefaultDurations returns the duration axis for the sensitivity grid:
// 15 to 90 days in 5-day steps.
func DefaultDurations() []int {
	var days []int
	for d := 15; d <= 90; d += 5 {
		days = append(days, d)
	}
	return days
}

// ComputeSensitivity builds the net-profit matrix over every FDV ×
// duration combination. Each cell re-runs the full accrual and projection
// for that duration, so a longer duration both earns more points and
// dilutes against a larger projected network total.
//
// The grid is row-major: NetProfit[i][j] is durations[i] × fdvs[j].
func ComputeSensitivity(capital float64, activeBonus bool, airdropPct, currentGlobalPoints float64,
	fdvs []float64, durations []int, start time.Time, rules Rules, model GrowthModel) models.SensitivityGrid {

	grid := models.SensitivityGrid{
		FDVs:      fdvs,
		Durations: durations,
		NetProfit: make([][]float64, len(durations)),
	}

	for i, days := range durations {
		row := make([]float64, len(fdvs))
		accrual := ComputeAccrual(capital, days, activeBonus, start, rules)
		for j, fdv := range fdvs {
			proj := ComputeYield(accrual.TotalPoints, days, capital, fdv, airdropPct, currentGlobalPoints, model)
			row[j] = proj.NetProfit
		}
		grid.NetProfit[i] = row
	}

	return grid
}
