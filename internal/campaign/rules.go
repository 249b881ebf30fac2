// Package campaign implements the StandX points-campaign math: the
// day-by-day accrual schedule, the network growth models, the projected
// share / ROI / APY derivation, and the FDV×duration sensitivity grid.
//
// Everything here is pure arithmetic over already-validated inputs. No
// I/O, no clocks — callers pass the start date explicitly so results are
// reproducible.
package campaign

import "time"

// Rules holds the campaign accrual parameters.
type Rules struct {
	// BoostCutoff is the last calendar day that accrues at the boosted
	// rate. Days strictly after it use the base rate.
	BoostCutoff time.Time

	RateBoost float64 // points per unit capital per day during the boost window
	RateBase  float64 // points per unit capital per day after the boost window

	// DailyBonus is the flat per-day addition for completing the daily
	// activity task. It is not scaled by capital or rate.
	DailyBonus float64
}

// DefaultRules returns the published campaign parameters.
func DefaultRules() Rules {
	return Rules{
		BoostCutoff: time.Date(2025, time.December, 11, 0, 0, 0, 0, time.UTC),
		RateBoost:   1.5,
		RateBase:    1.2,
		DailyBonus:  10,
	}
}

// Boosted reports whether the given calendar date accrues at the boosted
// rate. The comparison is by date only; time-of-day and zone are ignored.
func (r Rules) Boosted(date time.Time) bool {
	y, m, d := date.Date()
	cy, cm, cd := r.BoostCutoff.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	cutoff := time.Date(cy, cm, cd, 0, 0, 0, 0, time.UTC)
	return !day.After(cutoff)
}
