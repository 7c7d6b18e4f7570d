package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pigeonwatch/internal/config"
	"pigeonwatch/internal/scheduler"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bot on its daily schedule",
	Long: `Run the bot until interrupted. Every day at the configured post time it
fetches the current market cap and posts the daily update. Set
RUN_ON_START=true to also post immediately on startup.`,
	RunE: runScheduled,
}

func runScheduled(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.rec.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	hour, minute, err := config.ParsePostTime(a.cfg.Schedule.PostTime)
	if err != nil {
		return err
	}
	if err := sched.Register(hour, minute); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if a.mirror != nil {
		go a.mirror.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram command polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, executing daily post now")
		go sched.RunDailyNow()
	}

	st := a.stateMgr.Snapshot()
	log.Info().
		Int("day_count", st.DayCount).
		Str("last_post", st.LastPostDate).
		Str("post_time", a.cfg.Schedule.PostTime).
		Str("timezone", a.cfg.Schedule.Timezone).
		Msg("bot is running, press Ctrl+C to stop")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, stopping")
	return nil
}
