package eventfeed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/dockerscaler-controller/internal/infra/metrics"
)

// State is the listener connection state.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateStreaming    State = "streaming"
)

// relevantActions are the container actions worth surfacing to
// consumers; everything else on the stream is noise.
var relevantActions = map[string]struct{}{
	"create":  {},
	"start":   {},
	"stop":    {},
	"die":     {},
	"destroy": {},
	"pause":   {},
	"unpause": {},
	"kill":    {},
	"restart": {},
}

// Listener maintains a long-lived subscription to the runtime event
// stream, normalizes received events and publishes them to the feed.
// Stream failures trigger reconnect after a backoff delay, never
// process termination.
type Listener struct {
	logger         *slog.Logger
	source         EventSource
	feed           *Feed
	reconnectDelay time.Duration

	mu    sync.RWMutex
	state State

	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
}

// NewListener creates an event listener publishing into feed.
func NewListener(
	logger *slog.Logger,
	source EventSource,
	feed *Feed,
	reconnectDelay time.Duration,
) *Listener {
	return &Listener{
		logger:         logger,
		source:         source,
		feed:           feed,
		reconnectDelay: reconnectDelay,
		state:          StateDisconnected,
		ready:          make(chan struct{}),
		doneCh:         make(chan struct{}),
	}
}

// Start launches the listener loop in a goroutine.
func (l *Listener) Start(ctx context.Context) error {
	if l.inShutdown.Load() {
		l.logger.InfoContext(ctx, "event listener is shutting down, skipping start")

		return nil
	}

	go l.run(ctx)

	return nil
}

// Name returns the name of the listener component.
func (l *Listener) Name() string {
	return "event-listener"
}

// Ping reports the stream as healthy only while it is connected.
func (l *Listener) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ready:
		if st := l.State(); st != StateStreaming {
			return fmt.Errorf("event stream is %s", st)
		}

		return nil
	default:
		return fmt.Errorf("event listener is not ready")
	}
}

// Ready returns a channel that is closed once the listener loop runs.
func (l *Listener) Ready() <-chan struct{} {
	return l.ready
}

// Shutdown waits for the listener loop to exit.
func (l *Listener) Shutdown(ctx context.Context) error {
	if !l.inShutdown.CompareAndSwap(false, true) {
		l.logger.ErrorContext(ctx, "event listener is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		l.logger.InfoContext(ctx, "event listener shut downed")
	}()

	l.logger.InfoContext(ctx, "shutting down event listener")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before listener loop exited: %w", ctx.Err())
	case <-l.doneCh:
		l.logger.InfoContext(ctx, "listener loop exited")
	}

	return nil
}

// State returns the current connection state.
func (l *Listener) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.state
}

func (l *Listener) setState(st State) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = st
}

func (l *Listener) run(ctx context.Context) {
	defer close(l.doneCh)

	logger := l.logger.With("component", "listener-run")

	close(l.ready)

	for {
		if ctx.Err() != nil {
			logger.InfoContext(ctx, "terminating listener loop")

			return
		}

		l.setState(StateConnecting)

		events, unsubscribe, err := l.source.SubscribeEventsQuery(ctx)
		if err != nil {
			l.setState(StateDisconnected)
			logger.WarnContext(ctx, "event stream subscribe failed", "reason", err)

			if !l.sleepBackoff(ctx) {
				return
			}

			continue
		}

		l.setState(StateStreaming)
		logger.InfoContext(ctx, "event stream connected")

		l.consume(ctx, logger, events, unsubscribe)
		l.setState(StateDisconnected)

		if ctx.Err() != nil {
			logger.InfoContext(ctx, "terminating listener loop")

			return
		}

		logger.WarnContext(ctx, "event stream lost, reconnecting", "delay", l.reconnectDelay)

		if !l.sleepBackoff(ctx) {
			return
		}
	}
}

// consume reads the stream until it closes or the context is done.
func (l *Listener) consume(
	ctx context.Context,
	logger *slog.Logger,
	events <-chan Raw,
	unsubscribe func() error,
) {
	defer func() {
		if err := unsubscribe(); err != nil {
			logger.WarnContext(ctx, "unsubscribe failed", "reason", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-events:
			if !ok {
				return
			}

			if !relevant(raw) {
				continue
			}

			metrics.RecordEventReceived()
			l.feed.Publish(normalize(raw))
		}
	}
}

func (l *Listener) sleepBackoff(ctx context.Context) bool {
	metrics.RecordListenerReconnect()

	select {
	case <-ctx.Done():
		return false
	case <-time.After(l.reconnectDelay):
		return true
	}
}

func relevant(raw Raw) bool {
	if raw.Type != "container" {
		return false
	}

	_, ok := relevantActions[baseAction(raw.Action)]

	return ok
}

// baseAction strips argument suffixes like "exec_create: /bin/sh".
func baseAction(action string) string {
	if idx := strings.IndexByte(action, ':'); idx >= 0 {
		return action[:idx]
	}

	return action
}

func normalize(raw Raw) Event {
	ts := time.Now()
	if raw.TimeNano > 0 {
		ts = time.Unix(0, raw.TimeNano)
	}

	return Event{
		Type:          raw.Type,
		Action:        baseAction(raw.Action),
		ContainerID:   raw.ActorID,
		ContainerName: raw.ActorName,
		Timestamp:     ts,
	}
}
