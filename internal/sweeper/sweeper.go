package sweeper

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/winhire/interview-engine/internal/audit"
	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/metrics"
	"github.com/winhire/interview-engine/internal/models"
	"github.com/winhire/interview-engine/internal/timezone"
)

const DefaultInterval = 5 * time.Minute

var ErrSweepInProgress = errors.New("sweep already in progress")

type Repository interface {
	ListElapsedScheduled(ctx context.Context, now time.Time) ([]models.Interview, error)
	CompleteIfScheduled(ctx context.Context, id uint, completedAt time.Time) (bool, error)
}

// Locker serializes sweeps across processes. cache.Lease implements it.
type Locker interface {
	Acquire(ctx context.Context) (release func(), ok bool, err error)
}

type Result struct {
	Scanned   int
	Completed int
	Failed    int
}

// Sweeper auto-completes Scheduled interviews whose scheduled end has
// passed, backdating completion to that end.
type Sweeper struct {
	repo     Repository
	clock    timezone.Clock
	interval time.Duration
	lease    Locker
	audit    audit.Sink
	log      logger.Logger
	metrics  *metrics.Metrics

	// mu is held for a whole cycle; overlapping ticks skip instead of queueing.
	mu sync.Mutex
}

type Option func(*Sweeper)

func WithLease(l Locker) Option {
	return func(s *Sweeper) { s.lease = l }
}

func WithAudit(a audit.Sink) Option {
	return func(s *Sweeper) { s.audit = a }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Sweeper) { s.metrics = m }
}

func New(
	repo Repository,
	clock timezone.Clock,
	interval time.Duration,
	log logger.Logger,
	opts ...Option,
) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	s := &Sweeper{
		repo:     repo,
		clock:    clock,
		interval: interval,
		audit:    audit.Discard{},
		log:      log.WithFields(map[string]interface{}{"component": "sweeper"}),
		metrics:  metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	s.log.Info("sweeper started", map[string]interface{}{"interval": s.interval.String()})

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.tick(ctx)

		select {
		case <-ctx.Done():
			s.log.Info("sweeper stopped", nil)
			return
		case <-ticker.C:
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	res, err := s.SweepOnce(ctx)
	switch {
	case errors.Is(err, ErrSweepInProgress):
		s.log.Debug("sweep skipped", map[string]interface{}{"reason": err.Error()})
	case err != nil:
		s.log.Error("sweep cycle abandoned", map[string]interface{}{"error": err})
	case res.Scanned > 0:
		s.log.Info("sweep cycle finished", map[string]interface{}{
			"scanned":   res.Scanned,
			"completed": res.Completed,
			"failed":    res.Failed,
		})
	}
}

// SweepOnce runs a single cycle. A scan failure abandons the cycle; a
// failure on one row is logged and the remaining rows still run.
func (s *Sweeper) SweepOnce(ctx context.Context) (Result, error) {
	if !s.mu.TryLock() {
		s.metrics.SweepSkipped.WithLabelValues("local").Inc()
		return Result{}, ErrSweepInProgress
	}
	defer s.mu.Unlock()

	if s.lease != nil {
		release, ok, err := s.lease.Acquire(ctx)
		if err != nil {
			s.metrics.SweepRuns.WithLabelValues("error").Inc()
			return Result{}, err
		}
		if !ok {
			s.metrics.SweepSkipped.WithLabelValues("lease").Inc()
			return Result{}, ErrSweepInProgress
		}
		defer release()
	}

	started := time.Now()
	defer func() { s.metrics.SweepDuration.Observe(time.Since(started).Seconds()) }()

	now := s.clock.Now()
	due, err := s.repo.ListElapsedScheduled(ctx, now)
	if err != nil {
		s.metrics.SweepRuns.WithLabelValues("error").Inc()
		return Result{}, err
	}

	res := Result{Scanned: len(due)}
	for _, iv := range due {
		if ctx.Err() != nil {
			break
		}

		completedAt := iv.EndsAt()
		ok, err := s.repo.CompleteIfScheduled(ctx, iv.ID, completedAt)
		if err != nil {
			res.Failed++
			s.log.Error("auto-complete failed", map[string]interface{}{
				"interview_id": iv.ID,
				"error":        err,
			})
			continue
		}
		if !ok {
			s.log.Debug("interview left Scheduled before sweep wrote", map[string]interface{}{
				"interview_id": iv.ID,
			})
			continue
		}

		res.Completed++
		s.log.Info("interview auto-completed", map[string]interface{}{
			"interview_id":   iv.ID,
			"application_id": iv.ApplicationID,
			"scheduled_at":   iv.ScheduledAt,
			"completed_at":   completedAt,
		})
		s.audit.Dispatch(audit.Event{
			Action:   "interview_auto_completed",
			Entity:   "interview",
			EntityID: audit.Ptr(iv.ID),
			Metadata: map[string]any{
				"completed_at": completedAt,
				"swept_at":     now,
			},
		})
	}

	s.metrics.SweepCompleted.Add(float64(res.Completed))
	s.metrics.SweepRuns.WithLabelValues("ok").Inc()
	return res, nil
}
