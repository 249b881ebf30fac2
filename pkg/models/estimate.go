// Package models defines the shared data structures for the StandX yield
// estimator: accrual schedules, yield projections, and network estimates.
package models

import "time"

// Accrual period labels.
const (
	PeriodBoost = "boost"
	PeriodBase  = "base"
)

// DailyRecord is one day of the points-accrual schedule. Records are
// immutable once produced and always collected in day order.
type DailyRecord struct {
	Day        int       `json:"day"`        // 1-based day index
	Date       time.Time `json:"date"`       // calendar date of the day
	Rate       float64   `json:"rate"`       // multiplier applied that day
	Period     string    `json:"period"`     // PeriodBoost or PeriodBase
	Points     float64   `json:"points"`     // points earned that day
	Cumulative float64   `json:"cumulative"` // running total through this day
}

// AccrualResult is the output of the accrual engine: the total plus the
// full ordered daily breakdown.
type AccrualResult struct {
	TotalPoints float64       `json:"total_points"`
	Schedule    []DailyRecord `json:"schedule"`
}

// Projection is the output of the projection & yield engine.
//
// NetProfit equals EstimatedValue by assumption: the model treats the
// principal as always recoverable, so the airdrop value is pure profit.
// That is a business assumption, not a derived fact.
type Projection struct {
	EstimatedValue  float64 `json:"estimated_value"`  // USD payout estimate
	NetProfit       float64 `json:"net_profit"`       // == EstimatedValue
	ROIPct          float64 `json:"roi_pct"`          // return over the duration
	APYPct          float64 `json:"apy_pct"`          // ROI scaled to 365 days
	SharePct        float64 `json:"share_pct"`        // my points / projected global, as %
	ProjectedGlobal float64 `json:"projected_global"` // network total at end of duration
}

// NetworkEstimate is the current network-wide point total estimate,
// with provenance so the UI can show a notice when the value is stale
// or a fallback.
type NetworkEstimate struct {
	TotalPoints float64   `json:"total_points"`
	Source      string    `json:"source"`     // "ranking", "leaderboard", or "fallback"
	SampledAt   time.Time `json:"sampled_at"` // when the estimate was taken
	Fallback    bool      `json:"fallback"`   // true when the constant was used
}

// Network estimate source names.
const (
	SourceRanking     = "ranking"
	SourceLeaderboard = "leaderboard"
	SourceFallback    = "fallback"
)

// Announcement is a single campaign announcement from the project feed.
type Announcement struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// SensitivityGrid is the net-profit matrix over FDV × duration
// combinations, row-major by duration.
type SensitivityGrid struct {
	FDVs      []float64   `json:"fdvs"`      // column axis, USD
	Durations []int       `json:"durations"` // row axis, days
	NetProfit [][]float64 `json:"net_profit"`
}
