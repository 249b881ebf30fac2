// Package config handles configuration loading for the StandX yield
// estimator. It supports YAML config files with environment variable
// overrides; all defaults are baked in so the binary runs with no file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Campaign CampaignConfig `mapstructure:"campaign" yaml:"campaign"`
	Growth   GrowthConfig   `mapstructure:"growth"   yaml:"growth"`
	Network  NetworkConfig  `mapstructure:"network"  yaml:"network"`
	API      APIConfig      `mapstructure:"api"      yaml:"api"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// CampaignConfig holds the points-accrual parameters.
type CampaignConfig struct {
	BoostCutoffDate string  `mapstructure:"boost_cutoff_date" yaml:"boost_cutoff_date"` // YYYY-MM-DD, last boosted day
	RateBoost       float64 `mapstructure:"rate_boost"        yaml:"rate_boost"`
	RateBase        float64 `mapstructure:"rate_base"         yaml:"rate_base"`
	DailyBonus      float64 `mapstructure:"daily_bonus"       yaml:"daily_bonus"`
	MaxDays         int     `mapstructure:"max_days"          yaml:"max_days"`
	MinCapital      float64 `mapstructure:"min_capital"       yaml:"min_capital"`
	MaxCapital      float64 `mapstructure:"max_capital"       yaml:"max_capital"`
	MaxAirdropPct   float64 `mapstructure:"max_airdrop_pct"   yaml:"max_airdrop_pct"`
}

// GrowthTierConfig is one band of the tiered growth model.
type GrowthTierConfig struct {
	ThroughDay int     `mapstructure:"through_day" yaml:"through_day"` // 0 marks the open-ended last band
	Rate       float64 `mapstructure:"rate"        yaml:"rate"`
}

// GrowthConfig selects and parameterizes the network growth model.
type GrowthConfig struct {
	Model          string             `mapstructure:"model"           yaml:"model"` // "compound" or "tiered"
	DailyInflation float64            `mapstructure:"daily_inflation" yaml:"daily_inflation"`
	Tiers          []GrowthTierConfig `mapstructure:"tiers"           yaml:"tiers"`
}

// NetworkConfig holds the ranking-feed client settings.
type NetworkConfig struct {
	APIURL         string  `mapstructure:"api_url"         yaml:"api_url"`
	LeaderboardURL string  `mapstructure:"leaderboard_url" yaml:"leaderboard_url"`
	FeedURL        string  `mapstructure:"feed_url"        yaml:"feed_url"`
	SampleSize     int     `mapstructure:"sample_size"     yaml:"sample_size"` // top-N entries summed
	PageLimit      int     `mapstructure:"page_limit"      yaml:"page_limit"`  // limit per request
	ScalingFactor  float64 `mapstructure:"scaling_factor"  yaml:"scaling_factor"`
	FallbackTotal  float64 `mapstructure:"fallback_total"  yaml:"fallback_total"`
	CacheTTLSec    int     `mapstructure:"cache_ttl_sec"   yaml:"cache_ttl_sec"`
	TimeoutSec     int     `mapstructure:"timeout_sec"     yaml:"timeout_sec"`
}

// APIConfig holds HTTP server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// CacheTTL returns the network estimate cache lifetime as a duration.
func (n NetworkConfig) CacheTTL() time.Duration {
	return time.Duration(n.CacheTTLSec) * time.Second
}

// Timeout returns the ranking-feed request timeout as a duration.
func (n NetworkConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSec) * time.Second
}

// BoostCutoff parses the configured cutoff date. A malformed value falls
// back to the default cutoff rather than failing the whole load.
func (c CampaignConfig) BoostCutoff() time.Time {
	t, err := time.Parse("2006-01-02", c.BoostCutoffDate)
	if err != nil {
		return time.Date(2025, time.December, 11, 0, 0, 0, 0, time.UTC)
	}
	return t
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.standx-estimator/config.yaml (home directory)
//  3. /etc/standx-estimator/config.yaml (system)
//
// Environment variables override config file values.
// Format: STANDX_<SECTION>_<KEY>, e.g., STANDX_NETWORK_SCALING_FACTOR.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".standx-estimator"))
	v.AddConfigPath("/etc/standx-estimator")

	v.SetEnvPrefix("STANDX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("STANDX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Campaign defaults — the published accrual rules.
	v.SetDefault("campaign.boost_cutoff_date", "2025-12-11")
	v.SetDefault("campaign.rate_boost", 1.5)
	v.SetDefault("campaign.rate_base", 1.2)
	v.SetDefault("campaign.daily_bonus", 10)
	v.SetDefault("campaign.max_days", 90)
	v.SetDefault("campaign.min_capital", 100)
	v.SetDefault("campaign.max_capital", 1000000)
	v.SetDefault("campaign.max_airdrop_pct", 10.0)

	// Growth defaults — compound model at 1.5% daily.
	v.SetDefault("growth.model", "compound")
	v.SetDefault("growth.daily_inflation", 0.015)

	// Network defaults. The scaling factor extrapolates the sampled
	// top-N sum to the full population; 1.3 and 5.0 are both published
	// assumptions, so it stays configurable.
	v.SetDefault("network.api_url", "https://api.standx.com/v1/offchain/perps-campaign/rank")
	v.SetDefault("network.leaderboard_url", "https://standx.com/leaderboard")
	v.SetDefault("network.feed_url", "https://blog.standx.com/rss/")
	v.SetDefault("network.sample_size", 200)
	v.SetDefault("network.page_limit", 100)
	v.SetDefault("network.scaling_factor", 1.3)
	v.SetDefault("network.fallback_total", 500000000)
	v.SetDefault("network.cache_ttl_sec", 300)
	v.SetDefault("network.timeout_sec", 5)

	// API defaults.
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	// Logging defaults.
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
