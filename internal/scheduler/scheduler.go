package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"pigeonwatch/internal/collector"
	"pigeonwatch/internal/model"
	"pigeonwatch/internal/notifier"
	"pigeonwatch/internal/recorder"
	"pigeonwatch/internal/state"
	"pigeonwatch/internal/strategy"
)

// Config wires the scheduler's collaborators.
type Config struct {
	Fetcher      collector.Fetcher
	State        *state.Manager
	Primary      notifier.Notifier
	Mirror       notifier.Notifier // optional, best-effort
	Recorder     recorder.Recorder
	Location     *time.Location
	TokenAddress string
	TokenName    string
	TargetMcap   float64
}

// Scheduler runs the once-per-day posting routine on a cron trigger.
type Scheduler struct {
	Cron  *cron.Cron
	cfg   Config
	ctx   context.Context
	now   func() time.Time
	runMu sync.Mutex
}

// New creates a Scheduler. The cron runner and the posting guard share
// cfg.Location, so the trigger date and the guard date always agree.
func New(ctx context.Context, cfg Config) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds(), cron.WithLocation(cfg.Location)),
		cfg:  cfg,
		ctx:  ctx,
		now:  time.Now,
	}
}

// Register schedules the daily post at the given wall-clock time.
func (s *Scheduler) Register(hour, minute int) error {
	spec := fmt.Sprintf("0 %d %d * * *", minute, hour)
	if _, err := s.Cron.AddFunc(spec, s.postDailyUpdate); err != nil {
		return fmt.Errorf("register daily post: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunDailyNow executes the daily routine immediately (once-mode, manual
// trigger, RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	s.postDailyUpdate()
}

// postDailyUpdate is the whole daily flow: guard, fetch, evaluate,
// compose, post, commit, record. Exactly one post per calendar date.
func (s *Scheduler) postDailyUpdate() {
	// The cron tick, /post and RUN_ON_START can all fire this; the whole
	// guard-fetch-post-commit sequence must run as one step or two
	// overlapping runs both pass the guard and double post.
	s.runMu.Lock()
	defer s.runMu.Unlock()

	today := s.now().In(s.cfg.Location).Format(model.DateLayout)
	if s.cfg.State.PostedOn(today) {
		log.Info().Str("date", today).Msg("already posted today, skipping")
		return
	}

	attemptID := uuid.NewString()
	logger := log.With().Str("attempt_id", attemptID).Str("date", today).Logger()

	ctx, cancel := context.WithTimeout(s.ctx, 2*time.Minute)
	defer cancel()

	// Fetch failures degrade to the fallback message, never abort the run.
	stats, err := s.cfg.Fetcher.FetchTokenStats(ctx, s.cfg.TokenAddress)
	if err != nil {
		logger.Warn().Err(err).Str("source", s.cfg.Fetcher.Name()).Msg("market data unavailable, using fallback")
		stats = nil
	}

	st := s.cfg.State.Snapshot()
	u := strategy.Evaluate(st, stats, s.cfg.TargetMcap)
	text := notifier.FormatDailyUpdate(u, stats, s.cfg.TokenName, s.cfg.TargetMcap)

	postID, err := s.cfg.Primary.Post(ctx, text)
	if err != nil {
		// State stays uncommitted so the next tick tries again.
		logger.Error().Err(err).Str("notifier", s.cfg.Primary.Name()).Msg("post failed")
		return
	}

	if err := s.cfg.State.CommitPost(today, u); err != nil {
		logger.Error().Err(err).Msg("failed to commit state after post")
	}

	if s.cfg.Mirror != nil {
		if _, err := s.cfg.Mirror.Post(ctx, text); err != nil {
			logger.Warn().Err(err).Str("notifier", s.cfg.Mirror.Name()).Msg("mirror post failed")
		}
	}

	rec := &recorder.PostRecord{
		AttemptID: attemptID,
		Day:       u.DayCount,
		Variant:   u.Kind.String(),
		Fallback:  u.Kind == model.UpdateFallback,
		PostID:    postID,
		Message:   text,
	}
	if stats != nil {
		rec.Mcap = stats.Mcap
		rec.PriceUSD = stats.PriceUSD
		rec.LiquidityUSD = stats.LiquidityUSD
	}
	if err := s.cfg.Recorder.RecordPost(rec); err != nil {
		logger.Error().Err(err).Msg("failed to record post")
	}

	logger.Info().
		Str("post_id", postID).
		Str("variant", u.Kind.String()).
		Int("day", u.DayCount).
		Msg("daily update posted")
}

// HandleCommand processes a Telegram command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/status":
		ctx, cancel := context.WithTimeout(s.ctx, 30*time.Second)
		defer cancel()
		stats, err := s.cfg.Fetcher.FetchTokenStats(ctx, s.cfg.TokenAddress)
		if err != nil {
			stats = nil
		}
		return notifier.FormatStatus(s.cfg.State.Snapshot(), stats, s.cfg.TokenName, s.cfg.TargetMcap)
	case "/mcap":
		ctx, cancel := context.WithTimeout(s.ctx, 30*time.Second)
		defer cancel()
		stats, err := s.cfg.Fetcher.FetchTokenStats(ctx, s.cfg.TokenAddress)
		if err != nil {
			return "Market data unavailable"
		}
		return fmt.Sprintf("Market Cap: %s\nPrice: $%.6f\nLiquidity: %s",
			notifier.FormatUSD(stats.Mcap), stats.PriceUSD, notifier.FormatUSD(stats.LiquidityUSD))
	case "/post":
		go s.RunDailyNow()
		return "Daily update triggered"
	default:
		return "Available commands:\n• /status\n• /mcap\n• /post"
	}
}
