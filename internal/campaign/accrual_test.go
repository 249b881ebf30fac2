package campaign

import (
	"math"
	"testing"
	"time"

	"github.com/pointsfarm/standx-estimator/pkg/models"
)

// testRules returns the published campaign rules with a fixed cutoff so
// tests never depend on the wall clock.
func testRules() Rules {
	return Rules{
		BoostCutoff: time.Date(2025, time.December, 11, 0, 0, 0, 0, time.UTC),
		RateBoost:   1.5,
		RateBase:    1.2,
		DailyBonus:  10,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeAccrualScheduleShape(t *testing.T) {
	start := day(2025, time.November, 1)
	for _, duration := range []int{1, 7, 30, 90} {
		res := ComputeAccrual(10_000, duration, false, start, testRules())

		if len(res.Schedule) != duration {
			t.Fatalf("duration %d: expected %d records, got %d", duration, duration, len(res.Schedule))
		}
		for i, rec := range res.Schedule {
			if rec.Day != i+1 {
				t.Errorf("duration %d: record %d has day index %d, want %d", duration, i, rec.Day, i+1)
			}
			wantDate := start.AddDate(0, 0, i)
			if !rec.Date.Equal(wantDate) {
				t.Errorf("duration %d: record %d has date %v, want %v", duration, i, rec.Date, wantDate)
			}
		}
	}
}

func TestComputeAccrualCumulativeSum(t *testing.T) {
	start := day(2025, time.December, 1)
	res := ComputeAccrual(5_000, 45, true, start, testRules())

	running := 0.0
	for _, rec := range res.Schedule {
		running += rec.Points
		if math.Abs(rec.Cumulative-running) > 1e-6 {
			t.Fatalf("day %d: cumulative %.6f, want running sum %.6f", rec.Day, rec.Cumulative, running)
		}
		if rec.Day > 1 && rec.Cumulative < res.Schedule[rec.Day-2].Cumulative {
			t.Fatalf("day %d: cumulative decreased", rec.Day)
		}
	}
	if math.Abs(res.TotalPoints-running) > 1e-6 {
		t.Errorf("total %.6f, want %.6f", res.TotalPoints, running)
	}
}

func TestComputeAccrualBoostCutoffBoundary(t *testing.T) {
	// Start the day before the cutoff: day 1 and day 2 (the cutoff day
	// itself) are boosted, day 3 is base.
	start := day(2025, time.December, 10)
	res := ComputeAccrual(1_000, 3, false, start, testRules())

	tests := []struct {
		day    int
		rate   float64
		period string
	}{
		{1, 1.5, models.PeriodBoost},
		{2, 1.5, models.PeriodBoost},
		{3, 1.2, models.PeriodBase},
	}
	for _, tt := range tests {
		rec := res.Schedule[tt.day-1]
		if rec.Rate != tt.rate {
			t.Errorf("day %d: rate %.2f, want %.2f", tt.day, rec.Rate, tt.rate)
		}
		if rec.Period != tt.period {
			t.Errorf("day %d: period %q, want %q", tt.day, rec.Period, tt.period)
		}
	}
}

func TestComputeAccrualActiveBonusIsFlat(t *testing.T) {
	start := day(2025, time.November, 20)
	without := ComputeAccrual(2_500, 40, false, start, testRules())
	with := ComputeAccrual(2_500, 40, true, start, testRules())

	for i := range with.Schedule {
		delta := with.Schedule[i].Points - without.Schedule[i].Points
		if math.Abs(delta-10) > 1e-9 {
			t.Fatalf("day %d: bonus delta %.6f, want exactly 10", i+1, delta)
		}
		if with.Schedule[i].Rate != without.Schedule[i].Rate {
			t.Fatalf("day %d: bonus changed the rate", i+1)
		}
	}
}

func TestComputeAccrualZeroDuration(t *testing.T) {
	res := ComputeAccrual(10_000, 0, true, day(2025, time.November, 1), testRules())
	if res.TotalPoints != 0 {
		t.Errorf("expected total 0, got %.2f", res.TotalPoints)
	}
	if len(res.Schedule) != 0 {
		t.Errorf("expected empty schedule, got %d records", len(res.Schedule))
	}
}

func TestComputeAccrualZeroCapital(t *testing.T) {
	res := ComputeAccrual(0, 10, true, day(2025, time.November, 1), testRules())
	for _, rec := range res.Schedule {
		if rec.Points != 10 {
			t.Fatalf("day %d: expected only the flat bonus (10), got %.2f", rec.Day, rec.Points)
		}
	}
	if res.TotalPoints != 100 {
		t.Errorf("total %.2f, want 100", res.TotalPoints)
	}
}

func TestComputeAccrualBoostedScenario(t *testing.T) {
	// 30 fully-boosted days at capital 10,000: 30 × 10,000 × 1.5.
	res := ComputeAccrual(10_000, 30, false, day(2025, time.November, 1), testRules())
	if math.Abs(res.TotalPoints-450_000) > 1e-6 {
		t.Errorf("total %.2f, want 450000", res.TotalPoints)
	}
}

func TestBoostEndDay(t *testing.T) {
	rules := testRules()

	res := ComputeAccrual(1_000, 10, false, day(2025, time.December, 8), rules)
	// Dec 8..11 boosted (days 1-4), Dec 12 is day 5.
	if got := BoostEndDay(res.Schedule); got != 5 {
		t.Errorf("boost end day %d, want 5", got)
	}

	allBoost := ComputeAccrual(1_000, 5, false, day(2025, time.November, 1), rules)
	if got := BoostEndDay(allBoost.Schedule); got != 0 {
		t.Errorf("fully boosted schedule: boost end day %d, want 0", got)
	}
}
