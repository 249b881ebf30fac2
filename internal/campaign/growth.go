package campaign

// GrowthModel yields the network-wide daily inflation rate for a given
// elapsed day (1-based). The projection applies the rates
// multiplicatively, so any model with non-negative rates produces a
// projected total that is non-decreasing in duration.
type GrowthModel interface {
	// Rate returns the daily growth rate for the given 1-based day.
	Rate(day int) float64

	// Name identifies the model ("compound" or "tiered").
	Name() string
}

// ────────────────────────────────────────────────────────────────────
// Compound model — single fixed daily rate.
// ────────────────────────────────────────────────────────────────────

// CompoundGrowth applies one fixed daily inflation rate, equivalent to
// the closed form current × (1+Daily)^days.
type CompoundGrowth struct {
	Daily float64
}

func (g CompoundGrowth) Rate(int) float64 { return g.Daily }
func (g CompoundGrowth) Name() string     { return "compound" }

// ────────────────────────────────────────────────────────────────────
// Tiered model — rate decays by elapsed-day band.
// ────────────────────────────────────────────────────────────────────

// GrowthTier is one band of the tiered model: Rate applies through
// ThroughDay inclusive. A ThroughDay of 0 marks the open-ended last band.
type GrowthTier struct {
	ThroughDay int
	Rate       float64
}

// TieredGrowth varies the daily rate by how far into the campaign the day
// falls: early days inflate fastest, later days slower. Tiers must be
// ordered by ThroughDay with the open-ended band last.
type TieredGrowth struct {
	Tiers []GrowthTier
}

// DefaultTiers models the published decay assumption: 2% daily through
// day 30, 1.2% through day 60, 0.8% beyond.
func DefaultTiers() []GrowthTier {
	return []GrowthTier{
		{ThroughDay: 30, Rate: 0.02},
		{ThroughDay: 60, Rate: 0.012},
		{ThroughDay: 0, Rate: 0.008},
	}
}

func (g TieredGrowth) Rate(day int) float64 {
	for _, t := range g.Tiers {
		if t.ThroughDay == 0 || day <= t.ThroughDay {
			return t.Rate
		}
	}
	return 0
}

func (g TieredGrowth) Name() string { return "tiered" }

// ProjectGlobal projects the network-wide point total forward by applying
// the model's daily rate multiplicatively for each elapsed day:
//
//	projected = current × Π(1 + Rate(day)), day = 1..durationDays
//
// durationDays <= 0 returns current unchanged.
func ProjectGlobal(current float64, durationDays int, model GrowthModel) float64 {
	projected := current
	for day := 1; day <= durationDays; day++ {
		projected *= 1 + model.Rate(day)
	}
	return projected
}
