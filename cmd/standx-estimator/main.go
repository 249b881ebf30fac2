// StandX Points Yield Estimator — airdrop value & APY projection for the
// StandX perps points campaign.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pointsfarm/standx-estimator/api"
	"github.com/pointsfarm/standx-estimator/internal/campaign"
	"github.com/pointsfarm/standx-estimator/internal/config"
	"github.com/pointsfarm/standx-estimator/internal/network"
	"github.com/pointsfarm/standx-estimator/pkg/format"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "standx-estimator",
	Short: "StandX Points Yield Estimator — airdrop value & APY projection",
	Long: `StandX Points Yield Estimator
Models the StandX perps points campaign: daily point accrual for a given
capital and duration, network-wide point growth, and the resulting
airdrop value, ROI and APY under configurable FDV and allocation
assumptions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("standx-estimator %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Estimate Command ---

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate airdrop value and APY for a position",
	Long: `Estimate the points accrued by a position over a duration, project the
network total forward, and print the resulting airdrop value, ROI and APY.

Examples:
  standx-estimator estimate --capital 10000 --days 30
  standx-estimator estimate --capital 50000 --days 60 --fdv 2000000000 --airdrop-pct 3 --bonus`,
	RunE: func(cmd *cobra.Command, args []string) error {
		capital, _ := cmd.Flags().GetFloat64("capital")
		days, _ := cmd.Flags().GetInt("days")
		fdv, _ := cmd.Flags().GetFloat64("fdv")
		airdropPct, _ := cmd.Flags().GetFloat64("airdrop-pct")
		bonus, _ := cmd.Flags().GetBool("bonus")

		if capital < cfg.Campaign.MinCapital || capital > cfg.Campaign.MaxCapital {
			return fmt.Errorf("capital must be between %.0f and %.0f",
				cfg.Campaign.MinCapital, cfg.Campaign.MaxCapital)
		}
		if days < 1 || days > cfg.Campaign.MaxDays {
			return fmt.Errorf("days must be between 1 and %d", cfg.Campaign.MaxDays)
		}
		if fdv <= 0 {
			return fmt.Errorf("fdv must be positive")
		}
		if airdropPct <= 0 || airdropPct > cfg.Campaign.MaxAirdropPct {
			return fmt.Errorf("airdrop-pct must be in (0, %.0f]", cfg.Campaign.MaxAirdropPct)
		}

		rules := campaign.RulesFromConfig(cfg.Campaign)
		growth := campaign.GrowthFromConfig(cfg.Growth)

		accrual := campaign.ComputeAccrual(capital, days, bonus, time.Now(), rules)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		provider := network.NewEstimateProvider(cfg.Network)
		est, _ := provider.Estimate(ctx)

		proj := campaign.ComputeYield(accrual.TotalPoints, days, capital,
			fdv, airdropPct, est.TotalPoints, growth)

		fmt.Printf("Position: %s for %d days (bonus: %v)\n", format.USD(capital), days, bonus)
		if end := campaign.BoostEndDay(accrual.Schedule); end > 0 {
			fmt.Printf("  boosted rate ends on day %d\n", end)
		}
		fmt.Println()
		fmt.Printf("  My points:          %s\n", format.Points(accrual.TotalPoints))
		fmt.Printf("  Network now:        %s (%s)\n", format.Points(est.TotalPoints), est.Source)
		fmt.Printf("  Network projected:  %s\n", format.Points(proj.ProjectedGlobal))
		fmt.Printf("  Network share:      %s\n", format.SharePct(proj.SharePct))
		fmt.Println()
		fmt.Printf("  Est. airdrop value: %s  (FDV %s, %.1f%% allocation)\n",
			format.USD(proj.EstimatedValue), format.USDCompact(fdv), airdropPct)
		fmt.Printf("  ROI:                %s\n", format.Pct(proj.ROIPct))
		fmt.Printf("  APY:                %s\n", format.Pct(proj.APYPct))

		if est.Fallback {
			fmt.Println("\nNote: live network data unavailable; used the configured fallback total.")
		}
		return nil
	},
}

func init() {
	estimateCmd.Flags().Float64("capital", 10000, "position size in USD")
	estimateCmd.Flags().Int("days", 30, "holding duration in days")
	estimateCmd.Flags().Float64("fdv", 1e9, "assumed fully-diluted valuation in USD")
	estimateCmd.Flags().Float64("airdrop-pct", 5, "assumed airdrop allocation percent")
	estimateCmd.Flags().Bool("bonus", false, "include the daily activity bonus")
}

// --- Sensitivity Command ---

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Print the net-profit grid over FDV and duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		capital, _ := cmd.Flags().GetFloat64("capital")
		airdropPct, _ := cmd.Flags().GetFloat64("airdrop-pct")
		bonus, _ := cmd.Flags().GetBool("bonus")

		if capital < cfg.Campaign.MinCapital || capital > cfg.Campaign.MaxCapital {
			return fmt.Errorf("capital must be between %.0f and %.0f",
				cfg.Campaign.MinCapital, cfg.Campaign.MaxCapital)
		}
		if airdropPct <= 0 || airdropPct > cfg.Campaign.MaxAirdropPct {
			return fmt.Errorf("airdrop-pct must be in (0, %.0f]", cfg.Campaign.MaxAirdropPct)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		provider := network.NewEstimateProvider(cfg.Network)
		est, _ := provider.Estimate(ctx)

		grid := campaign.ComputeSensitivity(
			capital, bonus, airdropPct, est.TotalPoints,
			campaign.DefaultFDVs, campaign.DefaultDurations(),
			time.Now(), campaign.RulesFromConfig(cfg.Campaign), campaign.GrowthFromConfig(cfg.Growth))

		fmt.Printf("Net profit for %s at %.1f%% allocation (network: %s via %s)\n\n",
			format.USD(capital), airdropPct, format.Points(est.TotalPoints), est.Source)

		fmt.Printf("%8s", "days")
		for _, fdv := range grid.FDVs {
			fmt.Printf("%12s", format.USDCompact(fdv))
		}
		fmt.Println()
		for i, d := range grid.Durations {
			fmt.Printf("%8d", d)
			for _, v := range grid.NetProfit[i] {
				fmt.Printf("%12s", format.USDCompact(v))
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	sensitivityCmd.Flags().Float64("capital", 10000, "position size in USD")
	sensitivityCmd.Flags().Float64("airdrop-pct", 5, "assumed airdrop allocation percent")
	sensitivityCmd.Flags().Bool("bonus", false, "include the daily activity bonus")
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server with the embedded dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		noUI, _ := cmd.Flags().GetBool("no-ui")

		srv := api.NewServer(cfg)
		if noUI {
			srv.SetServeUI(false)
		}

		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		fmt.Printf("Starting StandX estimator API server on %s\n", addr)
		return srv.ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().Bool("no-ui", false, "disable the embedded web dashboard")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show effective configuration and network estimate",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("StandX Points Yield Estimator — Status")
		fmt.Printf("  Version:  %s (%s)\n", version, commit)
		fmt.Println()

		fmt.Println("  Campaign:")
		fmt.Printf("    Boost cutoff:   %s\n", cfg.Campaign.BoostCutoff().Format("2006-01-02"))
		fmt.Printf("    Rates:          %.2f boosted / %.2f base per $ per day\n",
			cfg.Campaign.RateBoost, cfg.Campaign.RateBase)
		fmt.Printf("    Daily bonus:    %.0f points\n", cfg.Campaign.DailyBonus)
		fmt.Println()

		fmt.Println("  Growth model:")
		growth := campaign.GrowthFromConfig(cfg.Growth)
		fmt.Printf("    Model:          %s\n", growth.Name())
		fmt.Println()

		fmt.Println("  Network:")
		fmt.Printf("    Feed:           %s\n", cfg.Network.APIURL)
		fmt.Printf("    Scaling factor: %.2f\n", cfg.Network.ScalingFactor)
		fmt.Printf("    Fallback total: %s\n", format.Points(cfg.Network.FallbackTotal))

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()
		est, _ := network.NewEstimateProvider(cfg.Network).Estimate(ctx)
		fmt.Printf("    Current total:  %s (%s)\n", format.Points(est.TotalPoints), est.Source)
		fmt.Println()

		fmt.Printf("  API server:       %s:%d\n", cfg.API.Host, cfg.API.Port)
		return nil
	},
}
