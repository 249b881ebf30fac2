package campaign

import "github.com/pointsfarm/standx-estimator/internal/config"

// RulesFromConfig builds accrual rules from the loaded configuration.
func RulesFromConfig(c config.CampaignConfig) Rules {
	return Rules{
		BoostCutoff: c.BoostCutoff(),
		RateBoost:   c.RateBoost,
		RateBase:    c.RateBase,
		DailyBonus:  c.DailyBonus,
	}
}

// GrowthFromConfig builds the configured growth model. Unknown model
// names fall back to the compound model, matching the config default.
func GrowthFromConfig(c config.GrowthConfig) GrowthModel {
	if c.Model == "tiered" {
		tiers := make([]GrowthTier, 0, len(c.Tiers))
		for _, t := range c.Tiers {
			tiers = append(tiers, GrowthTier{ThroughDay: t.ThroughDay, Rate: t.Rate})
		}
		if len(tiers) == 0 {
			tiers = DefaultTiers()
		}
		return TieredGrowth{Tiers: tiers}
	}
	return CompoundGrowth{Daily: c.DailyInflation}
}
