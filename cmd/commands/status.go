package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pigeonwatch/internal/collector"
	"pigeonwatch/internal/config"
	"pigeonwatch/internal/notifier"
	"pigeonwatch/internal/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the persisted state and live market data",
	RunE:  runStatus,
}

// runStatus works without posting credentials and never writes state.
func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	st, err := state.Load(cfg.State.File)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	fmt.Printf("Token:          %s (%s)\n", cfg.Token.Name, cfg.Token.Symbol)
	fmt.Printf("Target:         $%s\n", humanize.Commaf(cfg.Token.TargetMcap))
	fmt.Printf("Day count:      %d\n", st.DayCount)
	fmt.Printf("Started:        %s\n", valueOrNever(st.StartDate))
	fmt.Printf("Last post:      %s\n", valueOrNever(st.LastPostDate))
	fmt.Printf("Target reached: %v\n", st.ReachedTarget)
	if !st.UpdatedAt.IsZero() {
		fmt.Printf("State updated:  %s\n", humanize.Time(st.UpdatedAt))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher := collector.NewDexScreenerFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	stats, err := fetcher.FetchTokenStats(ctx, cfg.Token.Address)
	if err != nil {
		fmt.Printf("\nMarket data unavailable: %v\n", err)
		return nil
	}

	fmt.Printf("\nMarket cap:     %s ($%s)\n", notifier.FormatUSD(stats.Mcap), humanize.Commaf(stats.Mcap))
	fmt.Printf("Price:          $%.6f\n", stats.PriceUSD)
	fmt.Printf("Liquidity:      %s\n", notifier.FormatUSD(stats.LiquidityUSD))
	if stats.Mcap < cfg.Token.TargetMcap {
		fmt.Printf("To go:          %s\n", notifier.FormatUSD(cfg.Token.TargetMcap-stats.Mcap))
	} else {
		fmt.Println("Above target 🎉")
	}
	return nil
}

func valueOrNever(date string) string {
	if date == "" {
		return "never"
	}
	return date
}
