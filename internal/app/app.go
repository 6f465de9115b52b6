package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	docker "github.com/fsouza/go-dockerclient"

	"github.com/skillcoder/dockerscaler-controller/internal/adapters/outbound/dockerd"
	"github.com/skillcoder/dockerscaler-controller/internal/config"
	"github.com/skillcoder/dockerscaler-controller/internal/httpserver"
	"github.com/skillcoder/dockerscaler-controller/internal/infra/cronparser"
	"github.com/skillcoder/dockerscaler-controller/internal/infra/shutdown"
	"github.com/skillcoder/dockerscaler-controller/internal/logic/eventfeed"
	"github.com/skillcoder/dockerscaler-controller/internal/logic/janitor"
	"github.com/skillcoder/dockerscaler-controller/internal/logic/scaler"
)

type App struct {
	logger          *slog.Logger
	appState        appstater
	shutdownHandler signalHandler
	runtime         *dockerd.Adapter
	servers         []appServer
}

// New creates a new application instance with all dependencies wired.
// The Docker endpoint comes from the standard DOCKER_HOST family of
// env vars.
func New(logger *slog.Logger, cfg *config.Config, appState appstater) (*App, error) {
	client, err := docker.NewClientFromEnv()
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}

	// Create secondary adapter (Docker daemon adapter)
	runtime := dockerd.New(logger, client, cfg.RuntimeTimeout, cfg.StopTimeout)

	// Create logic services (inject runtime adapter)
	scalerService := scaler.New(
		logger,
		runtime,
		cfg.ScalingPolicy(),
		cfg.CommandQueueSize,
	)

	feed := eventfeed.NewFeed(cfg.EventQueueSize)
	listener := eventfeed.NewListener(logger, runtime, feed, cfg.ReconnectDelay)

	servers := []appServer{scalerService, listener}

	if cfg.CleanupSchedule != "" {
		servers = append(servers, janitor.New(
			logger,
			runtime,
			cronparser.New(),
			cfg.CleanupSchedule,
		))
	}

	// Primary adapters last, so they come up after the logic they expose
	// and go down first.
	servers = append(servers,
		httpserver.New(logger, appState, scalerService, feed, cfg.HTTPPort),
		httpserver.NewMetricsServer(logger, cfg.MetricsPort),
	)

	// Create shutdown handler
	shutdownHandler := shutdown.New(logger, appState)

	return &App{
		logger:          logger,
		appState:        appState,
		shutdownHandler: shutdownHandler,
		runtime:         runtime,
		servers:         servers,
	}, nil
}

// Run starts all components and blocks until a termination signal or
// context cancellation, then shuts everything down in reverse order.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.shutdownHandler.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	if err := a.appState.StartPinger(ctx); err != nil {
		return fmt.Errorf("start pinger: %w", err)
	}

	// The daemon connection has no lifecycle of its own but its health
	// gates readiness.
	if err := a.appState.RegisterPinger(a.runtime); err != nil {
		return fmt.Errorf("register runtime pinger: %w", err)
	}

	for _, server := range a.servers {
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", server.Name(), err)
		}

		if err := a.appState.RegisterShutdowner(server); err != nil {
			return fmt.Errorf("register %s shutdowner: %w", server.Name(), err)
		}

		if err := a.appState.RegisterPinger(server); err != nil {
			return fmt.Errorf("register %s pinger: %w", server.Name(), err)
		}
	}

	readyChans := make([]<-chan struct{}, 0, len(a.servers))
	for _, server := range a.servers {
		readyChans = append(readyChans, server.Ready())
	}

	select {
	case <-allChannelsClose(ctx, a.logger, readyChans...):
	case <-time.After(readyTimeout):
		return fmt.Errorf("components not ready within %s", readyTimeout)
	case <-ctx.Done():
		return fmt.Errorf("context done before components ready: %w", ctx.Err())
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running application state: %w", err)
	}

	a.logger.InfoContext(ctx, "all components running")

	<-ctx.Done()

	// Shutdown must not be cut short by the cancelled run context.
	return a.appState.Shutdown(context.WithoutCancel(ctx))
}

const readyTimeout = 30 * time.Second

// allChannelsClose returns a channel that closes once every input
// channel has closed. Context cancellation is logged but does not
// abort the wait; the caller selects on the result.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for _, ch := range chans {
			select {
			case <-ch:
				continue
			case <-ctx.Done():
				logger.InfoContext(ctx, "context done while waiting for readiness")
			}

			<-ch
		}
	}()

	return out
}
