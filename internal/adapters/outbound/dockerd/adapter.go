package dockerd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	docker "github.com/fsouza/go-dockerclient"

	"github.com/skillcoder/dockerscaler-controller/internal/logic/scaler"
)

// Adapter implements the scaler Runtime port (and the eventfeed and
// janitor subsets) over the local Docker daemon. Every daemon call
// runs under one mutex, since the client is not assumed thread-safe
// and the daemon itself behaves badly under concurrent commits. Each
// call carries a timeout so a stuck daemon surfaces as an error, not
// a hang.
type Adapter struct {
	logger      *slog.Logger
	client      *docker.Client
	timeout     time.Duration
	stopTimeout time.Duration

	mu sync.Mutex
}

// New creates an adapter over an existing Docker client (see
// docker.NewClientFromEnv). stopTimeout is the grace period passed to
// the daemon's stop/restart calls before SIGKILL.
//
// The client-level timeout bounds the pause/unpause/restart calls,
// which have no context-carrying variant. The event stream runs on its
// own connection and is not affected.
func New(logger *slog.Logger, client *docker.Client, timeout, stopTimeout time.Duration) *Adapter {
	client.SetTimeout(timeout)

	return &Adapter{
		logger:      logger,
		client:      client,
		timeout:     timeout,
		stopTimeout: stopTimeout,
	}
}

var _ scaler.Runtime = (*Adapter)(nil)

// Name returns the adapter component name for pinger registration.
func (a *Adapter) Name() string {
	return "dockerd"
}

// Ping checks connectivity to the daemon.
func (a *Adapter) Ping(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := a.client.PingWithContext(ctx); err != nil {
		return fmt.Errorf("ping dockerd: %w", err)
	}

	return nil
}

func (a *Adapter) ListContainersQuery(ctx context.Context) ([]scaler.RuntimeContainer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	listed, err := a.client.ListContainers(docker.ListContainersOptions{
		All:     true,
		Context: ctx,
	})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", mapError(err))
	}

	out := make([]scaler.RuntimeContainer, 0, len(listed))
	for i := range listed {
		out = append(out, toRuntimeContainer(&listed[i]))
	}

	return out, nil
}

func (a *Adapter) InspectContainerQuery(ctx context.Context, id string) (*scaler.ContainerDetails, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	container, err := a.client.InspectContainerWithOptions(docker.InspectContainerOptions{
		ID:      id,
		Context: ctx,
	})
	if err != nil {
		return nil, fmt.Errorf("inspect container: %w", mapError(err))
	}

	return toContainerDetails(container), nil
}

// ContainerStatsQuery fetches one non-streaming stats reading.
func (a *Adapter) ContainerStatsQuery(ctx context.Context, id string) (*scaler.UsageSample, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	statsCh := make(chan *docker.Stats)
	errCh := make(chan error, 1)

	go func() {
		errCh <- a.client.Stats(docker.StatsOptions{
			ID:      id,
			Stats:   statsCh,
			Stream:  false,
			Context: ctx,
		})
	}()

	var last *docker.Stats
	for stats := range statsCh {
		last = stats
	}

	if err := <-errCh; err != nil {
		return nil, fmt.Errorf("container stats: %w", mapError(err))
	}

	if last == nil {
		return nil, fmt.Errorf("container stats: %w", errNotFound)
	}

	return toUsageSample(last), nil
}

func (a *Adapter) CommitContainerCommand(ctx context.Context, id, repository, tag string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	image, err := a.client.CommitContainer(docker.CommitContainerOptions{
		Container:  id,
		Repository: repository,
		Tag:        tag,
		Context:    ctx,
	})
	if err != nil {
		return "", fmt.Errorf("commit container: %w", mapError(err))
	}

	return image.ID, nil
}

// RunContainerCommand creates and starts a container. A container that
// was created but failed to start is removed before returning, so the
// caller only ever has to roll back the image.
func (a *Adapter) RunContainerCommand(ctx context.Context, spec scaler.CloneSpec) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	container, err := a.client.CreateContainer(docker.CreateContainerOptions{
		Name:       spec.Name,
		Config:     toDockerConfig(spec),
		HostConfig: &docker.HostConfig{},
		Context:    ctx,
	})
	if err != nil {
		return "", fmt.Errorf("create container: %w", mapError(err))
	}

	if err := a.client.StartContainerWithContext(container.ID, nil, ctx); err != nil {
		rmErr := a.client.RemoveContainer(docker.RemoveContainerOptions{
			ID:      container.ID,
			Force:   true,
			Context: ctx,
		})
		if rmErr != nil {
			a.logger.WarnContext(ctx, "failed to remove container after start failure",
				"container", container.ID,
				"reason", rmErr,
			)
		}

		return "", fmt.Errorf("start container: %w", mapError(err))
	}

	return container.ID, nil
}

func (a *Adapter) StopContainerCommand(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	err := a.client.StopContainerWithContext(id, a.stopSeconds(), ctx)
	if err != nil {
		var notRunning *docker.ContainerNotRunning
		if errors.As(err, &notRunning) {
			return nil
		}

		return fmt.Errorf("stop container: %w", mapError(err))
	}

	return nil
}

func (a *Adapter) PauseContainerCommand(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.client.PauseContainer(id); err != nil {
		return fmt.Errorf("pause container: %w", mapError(err))
	}

	return nil
}

func (a *Adapter) UnpauseContainerCommand(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.client.UnpauseContainer(id); err != nil {
		return fmt.Errorf("unpause container: %w", mapError(err))
	}

	return nil
}

func (a *Adapter) RestartContainerCommand(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.client.RestartContainer(id, a.stopSeconds()); err != nil {
		return fmt.Errorf("restart container: %w", mapError(err))
	}

	return nil
}

func (a *Adapter) RemoveContainerCommand(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	err := a.client.RemoveContainer(docker.RemoveContainerOptions{
		ID:      id,
		Force:   true,
		Context: ctx,
	})
	if err != nil {
		return fmt.Errorf("remove container: %w", mapError(err))
	}

	return nil
}

func (a *Adapter) RemoveImageCommand(ctx context.Context, ref string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	err := a.client.RemoveImageExtended(ref, docker.RemoveImageOptions{
		Context: ctx,
	})
	if err != nil {
		return fmt.Errorf("remove image: %w", mapError(err))
	}

	return nil
}

// PruneContainersCommand removes stopped containers and returns how
// many were deleted.
func (a *Adapter) PruneContainersCommand(ctx context.Context) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	results, err := a.client.PruneContainers(docker.PruneContainersOptions{
		Context: ctx,
	})
	if err != nil {
		return 0, fmt.Errorf("prune containers: %w", mapError(err))
	}

	return len(results.ContainersDeleted), nil
}

// PruneImagesCommand removes dangling images and returns how many were
// deleted and how many bytes were reclaimed.
func (a *Adapter) PruneImagesCommand(ctx context.Context) (int, int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	results, err := a.client.PruneImages(docker.PruneImagesOptions{
		Filters: map[string][]string{"dangling": {"true"}},
		Context: ctx,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("prune images: %w", mapError(err))
	}

	return len(results.ImagesDeleted), results.SpaceReclaimed, nil
}

func (a *Adapter) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.timeout)
}

func (a *Adapter) stopSeconds() uint {
	return uint(a.stopTimeout / time.Second)
}

// mapError translates client errors into the adapter's soft error
// types: 404s become NotFoundError, 409 on images becomes
// ImageInUseError. Everything else passes through.
func mapError(err error) error {
	var noSuchContainer *docker.NoSuchContainer
	if errors.As(err, &noSuchContainer) {
		return errNotFound
	}

	if errors.Is(err, docker.ErrNoSuchImage) {
		return errNotFound
	}

	var apiErr *docker.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusNotFound:
			return errNotFound
		case http.StatusConflict:
			return errImageInUse
		}
	}

	return err
}
