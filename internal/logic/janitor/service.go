package janitor

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/skillcoder/dockerscaler-controller/internal/infra/metrics"
)

// Service runs scheduled maintenance against the runtime: pruning
// stopped containers and dangling images left behind by clone
// churn. The schedule is a standard 5-field cron expression; the
// service is simply not constructed when cleanup is disabled.
type Service struct {
	logger   *slog.Logger
	runtime  runtime
	parser   scheduleParser
	schedule string

	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
}

// New creates a janitor with a non-empty cron schedule.
func New(
	logger *slog.Logger,
	rt runtime,
	parser scheduleParser,
	schedule string,
) *Service {
	return &Service{
		logger:   logger,
		runtime:  rt,
		parser:   parser,
		schedule: schedule,
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the schedule loop in a goroutine.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "janitor is shutting down, skipping start")

		return nil
	}

	go s.run(ctx)

	return nil
}

// Name returns the name of the janitor component.
func (s *Service) Name() string {
	return "janitor"
}

// Ping returns nil once the schedule loop is running.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("janitor is not ready")
	}
}

// PingerCritical marks janitor failures as non-fatal for liveness.
func (s *Service) PingerCritical() bool {
	return false
}

// PingerReadyCritical marks the janitor as non-blocking for readiness.
func (s *Service) PingerReadyCritical() bool {
	return false
}

// Ready returns a channel that is closed when the loop is running.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown waits for the schedule loop to exit.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "janitor is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "janitor shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down janitor")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before janitor loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "janitor loop exited")
	}

	return nil
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "janitor-run")

	close(s.ready)

	for {
		next, err := s.parser.NextAfter(s.schedule, "", time.Now())
		if err != nil {
			// The schedule is validated at config load; a parse
			// failure here means the loop cannot continue.
			logger.ErrorContext(ctx, "cleanup schedule unusable, janitor stopped",
				"schedule", s.schedule,
				"reason", err,
			)

			return
		}

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "terminating janitor loop")

			return
		case <-timer.C:
		}

		s.cleanup(ctx, logger)
	}
}

// cleanup prunes stopped containers and dangling images. Failures are
// logged and retried at the next occurrence.
func (s *Service) cleanup(ctx context.Context, logger *slog.Logger) {
	metrics.RecordJanitorRun()

	containers, err := s.runtime.PruneContainersCommand(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "container prune failed", "reason", err)
	} else {
		logger.InfoContext(ctx, "pruned stopped containers", "count", containers)
	}

	images, reclaimed, err := s.runtime.PruneImagesCommand(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "image prune failed", "reason", err)

		return
	}

	logger.InfoContext(ctx, "pruned dangling images",
		"count", images,
		"reclaimedBytes", reclaimed,
	)
}
