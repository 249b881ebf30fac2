package campaign

import (
	"math"
	"testing"
)

func TestCompoundGrowthClosedForm(t *testing.T) {
	model := CompoundGrowth{Daily: 0.015}
	current := 500_000_000.0

	for _, days := range []int{1, 30, 90} {
		got := ProjectGlobal(current, days, model)
		want := current * math.Pow(1.015, float64(days))
		if math.Abs(got-want)/want > 1e-12 {
			t.Errorf("%d days: projected %.4f, closed form %.4f", days, got, want)
		}
	}
}

func TestTieredGrowthBands(t *testing.T) {
	model := TieredGrowth{Tiers: DefaultTiers()}

	tests := []struct {
		day  int
		rate float64
	}{
		{1, 0.02},
		{30, 0.02},
		{31, 0.012},
		{60, 0.012},
		{61, 0.008},
		{90, 0.008},
	}
	for _, tt := range tests {
		if got := model.Rate(tt.day); got != tt.rate {
			t.Errorf("day %d: rate %.4f, want %.4f", tt.day, got, tt.rate)
		}
	}
}

func TestProjectGlobalMonotonicInDuration(t *testing.T) {
	current := 500_000_000.0
	for _, model := range []GrowthModel{
		CompoundGrowth{Daily: 0.015},
		TieredGrowth{Tiers: DefaultTiers()},
	} {
		prev := current
		for days := 1; days <= 90; days++ {
			got := ProjectGlobal(current, days, model)
			if got < prev {
				t.Fatalf("%s: projected total decreased at day %d (%.2f < %.2f)", model.Name(), days, got, prev)
			}
			if got <= 0 {
				t.Fatalf("%s: projected total not positive at day %d", model.Name(), days)
			}
			prev = got
		}
	}
}

func TestProjectGlobalZeroDuration(t *testing.T) {
	if got := ProjectGlobal(123, 0, CompoundGrowth{Daily: 0.015}); got != 123 {
		t.Errorf("zero duration: got %.2f, want the starting estimate", got)
	}
}
