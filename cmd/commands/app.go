package commands

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"pigeonwatch/internal/collector"
	"pigeonwatch/internal/config"
	"pigeonwatch/internal/model"
	"pigeonwatch/internal/notifier"
	"pigeonwatch/internal/recorder"
	"pigeonwatch/internal/state"
)

// app bundles the wired-up collaborators shared by the run and once
// commands.
type app struct {
	cfg      *config.Config
	loc      *time.Location
	fetcher  collector.Fetcher
	stateMgr *state.Manager
	primary  notifier.Notifier
	mirror   *notifier.TelegramNotifier
	rec      recorder.Recorder
}

func buildApp() (*app, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	fetcher := collector.NewDexScreenerFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Info().Str("source", fetcher.Name()).Str("token", cfg.Token.Address).Msg("data source ready")

	startDate := time.Now().In(loc).Format(model.DateLayout)
	stateMgr, err := state.NewManager(cfg.State.File, startDate)
	if err != nil {
		return nil, fmt.Errorf("init state manager: %w", err)
	}

	primary := notifier.NewTwitterNotifier(
		cfg.Twitter.APIKey, cfg.Twitter.APISecret,
		cfg.Twitter.AccessToken, cfg.Twitter.AccessTokenSecret,
	)

	var mirror *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		mirror, err = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Warn().Err(err).Msg("telegram mirror unavailable, continuing without it")
			mirror = nil
		}
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	return &app{
		cfg:      cfg,
		loc:      loc,
		fetcher:  fetcher,
		stateMgr: stateMgr,
		primary:  primary,
		mirror:   mirror,
		rec:      rec,
	}, nil
}

// mirrorNotifier returns the mirror as a Notifier, or nil when absent.
// A typed nil inside the interface would defeat the scheduler's nil check.
func (a *app) mirrorNotifier() notifier.Notifier {
	if a.mirror == nil {
		return nil
	}
	return a.mirror
}
