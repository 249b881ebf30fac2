package campaign

import "github.com/pointsfarm/standx-estimator/pkg/models"

// ComputeYield projects the network total forward with the given growth
// model and derives the user's share, payout estimate, ROI and APY.
//
// Guards: share is 0 when the projected global total is not positive, ROI
// is 0 when capital is not positive, APY is 0 when durationDays is not
// positive. No input combination panics.
func ComputeYield(myPoints float64, durationDays int, capital, fdv, airdropPct, currentGlobalPoints float64, model GrowthModel) models.Projection {
	projected := ProjectGlobal(currentGlobalPoints, durationDays, model)

	share := 0.0
	if projected > 0 {
		share = myPoints / projected
	}

	estValue := fdv * (airdropPct / 100) * share

	// Named assumption: principal is always recoverable, so the airdrop
	// value is the whole profit.
	netProfit := estValue

	roi := 0.0
	if capital > 0 {
		roi = estValue / capital * 100
	}

	apy := 0.0
	if durationDays > 0 {
		apy = roi / float64(durationDays) * 365
	}

	return models.Projection{
		EstimatedValue:  estValue,
		NetProfit:       netProfit,
		ROIPct:          roi,
		APYPct:          apy,
		SharePct:        share * 100,
		ProjectedGlobal: projected,
	}
}
