package campaign

import (
	"time"

	"github.com/pointsfarm/standx-estimator/pkg/models"
)

// ComputeAccrual builds the day-by-day points schedule for the given
// capital and duration, starting at start (normally "today"; tests pin it).
//
// Each day earns capital × rate, where the rate is boosted on or before the
// rules' cutoff date and base after it. When activeBonus is set, the flat
// daily bonus is added on top of every day.
//
// durationDays <= 0 yields an empty schedule and total 0.
func ComputeAccrual(capital float64, durationDays int, activeBonus bool, start time.Time, rules Rules) models.AccrualResult {
	if durationDays <= 0 {
		return models.AccrualResult{}
	}

	schedule := make([]models.DailyRecord, 0, durationDays)
	total := 0.0

	for d := 0; d < durationDays; d++ {
		date := start.AddDate(0, 0, d)

		rate := rules.RateBase
		period := models.PeriodBase
		if rules.Boosted(date) {
			rate = rules.RateBoost
			period = models.PeriodBoost
		}

		points := capital * rate
		if activeBonus {
			points += rules.DailyBonus
		}

		total += points
		schedule = append(schedule, models.DailyRecord{
			Day:        d + 1,
			Date:       date,
			Rate:       rate,
			Period:     period,
			Points:     points,
			Cumulative: total,
		})
	}

	return models.AccrualResult{TotalPoints: total, Schedule: schedule}
}

// BoostEndDay returns the 1-based day index of the first schedule entry
// that accrues at the base rate, or 0 when the whole schedule is boosted.
// The UI uses it to place the "boost ends" marker on the chart.
func BoostEndDay(schedule []models.DailyRecord) int {
	for _, rec := range schedule {
		if rec.Period == models.PeriodBase {
			return rec.Day
		}
	}
	return 0
}
