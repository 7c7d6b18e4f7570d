package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pigeonwatch/internal/notifier"
	"pigeonwatch/internal/scheduler"
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Post a single daily update and exit (for testing)",
	RunE:  runOnce,
}

func runOnce(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.rec.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	// Show current market state before posting, like the status command.
	stats, err := a.fetcher.FetchTokenStats(ctx, a.cfg.Token.Address)
	if err != nil {
		log.Warn().Err(err).Msg("market data unavailable")
	} else {
		log.Info().
			Str("mcap", notifier.FormatUSD(stats.Mcap)).
			Float64("price_usd", stats.PriceUSD).
			Str("liquidity", notifier.FormatUSD(stats.LiquidityUSD)).
			Str("target", notifier.FormatUSDCompact(a.cfg.Token.TargetMcap)).
			Msg("current token stats")
	}

	sched := scheduler.New(ctx, scheduler.Config{
		Fetcher:      a.fetcher,
		State:        a.stateMgr,
		Primary:      a.primary,
		Mirror:       a.mirrorNotifier(),
		Recorder:     a.rec,
		Location:     a.loc,
		TokenAddress: a.cfg.Token.Address,
		TokenName:    a.cfg.Token.Name,
		TargetMcap:   a.cfg.Token.TargetMcap,
	})
	sched.RunDailyNow()
	return nil
}
