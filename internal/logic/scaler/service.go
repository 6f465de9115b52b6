package scaler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/dockerscaler-controller/internal/infra/metrics"
)

// Service is the coordinator: it owns the container registry and the
// command queue and drives the fixed-interval tick loop. Within one
// tick, commands are applied first, then Sample fully completes before
// Decide, and Decide before Execute; the registry is mutated only from
// the tick goroutine. External readers get copies via Snapshot.
type Service struct {
	logger  *slog.Logger
	runtime Runtime
	reg     *registry

	// parents is cooldown/hysteresis state, tick goroutine only.
	parents  map[string]*parentState
	commands chan Command

	mu          sync.RWMutex
	policy      Policy
	lastTickEnd time.Time

	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
}

// New creates the coordinator service. The policy must already be
// validated by the caller (config load).
func New(
	logger *slog.Logger,
	runtime Runtime,
	policy Policy,
	commandQueueSize int,
) *Service {
	return &Service{
		logger:   logger,
		runtime:  runtime,
		reg:      newRegistry(),
		parents:  make(map[string]*parentState),
		commands: make(chan Command, commandQueueSize),
		policy:   policy,
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the tick loop in a goroutine.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "scaler service is shutting down, skipping start")

		return nil
	}

	go s.RunCommand(ctx)

	return nil
}

// Name returns the name of the service component.
func (s *Service) Name() string {
	return "scaler-controller"
}

// Ping fails while the loop has not started and when the last
// completed tick is too old.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		age := s.lastTickAge()
		if age > staleTickFactor*s.Policy().TickInterval {
			return fmt.Errorf("last tick was too long ago: %s", age.Round(time.Millisecond).String())
		}

		return nil
	default:
		return fmt.Errorf("scaler service is not ready")
	}
}

// Ready returns a channel that is closed when the tick loop is running.
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown waits for the tick loop to exit. The loop itself stops on
// context cancellation at the end of the current tick.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "scaler service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "scaler service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down scaler service")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before tick loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "tick loop exited")
	}

	return nil
}

// RunCommand runs the tick loop at the configured interval until the
// context is cancelled. A live policy update to the interval resets
// the ticker before the next wait.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("scaler", "RunCommand")

	interval := s.Policy().TickInterval
	ticker := time.NewTicker(interval)

	defer ticker.Stop()

	close(s.ready)

	for {
		err := s.TickCommand(ctx)
		if err != nil {
			logger.ErrorContext(ctx, "tick error", "reason", err)
		}

		s.setLastTickEnd()

		if cur := s.Policy().TickInterval; cur != interval {
			logger.InfoContext(ctx, "tick interval changed", "from", interval, "to", cur)
			ticker.Reset(cur)
			interval = cur
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating tick loop")

			return
		}
	}
}

// TickCommand runs one full tick: apply queued commands, sync the
// registry against a list query, sample, decide, execute.
func (s *Service) TickCommand(ctx context.Context) error {
	logger := s.logger.With("scaler", "TickCommand")
	pol := s.Policy()

	s.drainCommands(ctx, logger, pol)

	if err := s.syncRegistry(ctx, logger); err != nil {
		// Transient: previous registry contents stay, retried next tick.
		return fmt.Errorf("%w: %w", ErrSyncRegistry, err)
	}

	s.sampleAll(ctx, logger)

	intents := s.decide(time.Now(), pol)
	s.execute(ctx, logger, intents, pol)

	metrics.RecordTick()

	return nil
}

// Snapshot returns an immutable copy of every tracked container,
// stable-sorted by name. Safe for concurrent callers.
func (s *Service) Snapshot() []ContainerRecord {
	return s.reg.snapshot()
}

// Policy returns the current scaling policy.
func (s *Service) Policy() Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.policy
}

// UpdatePolicy validates and swaps the live policy; it takes effect
// starting the next tick. An invalid policy is rejected and the
// previous one retained.
func (s *Service) UpdatePolicy(pol Policy) error {
	if err := pol.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.policy = pol

	return nil
}

func (s *Service) syncRegistry(ctx context.Context, logger *slog.Logger) error {
	listed, err := s.runtime.ListContainersQuery(ctx)
	if err != nil {
		return fmt.Errorf("list containers: %w", err)
	}

	added, removed := s.reg.sync(listed)
	s.dropParentStates(removed)

	for i := range added {
		logger.InfoContext(ctx, "container discovered",
			"container", added[i].Name,
			"clone", added[i].IsClone(),
		)
	}

	for i := range removed {
		logger.InfoContext(ctx, "container gone from runtime",
			"container", removed[i].Name,
		)
	}

	return nil
}

func (s *Service) execute(ctx context.Context, logger *slog.Logger, intents []intent, pol Policy) {
	for i := range intents {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "context done, stopping intent execution")

			return
		default:
		}

		it := intents[i]

		var err error

		switch it.kind {
		case intentCreateClone:
			err = s.createClone(ctx, logger, it.target, pol)
		case intentRemoveClone:
			err = s.removeClone(ctx, logger, it.target)
		case intentRestart:
			err = s.runtime.RestartContainerCommand(ctx, it.target.ID)
			if err == nil {
				logger.InfoContext(ctx, "restarted stopped container", "container", it.target.Name)
			}
		}

		if err != nil && !isNotFound(err) {
			logger.ErrorContext(ctx, "intent failed",
				"container", it.target.Name,
				"reason", err,
			)
		}
	}
}

func (s *Service) lastTickAge() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.lastTickEnd)
}

func (s *Service) setLastTickEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastTickEnd = time.Now()
}
