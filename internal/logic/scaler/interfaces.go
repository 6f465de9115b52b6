package scaler

import "context"

// Runtime is the port interface for the container runtime. It covers
// exactly the operations the coordinator uses; the implementation is
// provided by an adapter in the outbound layer, which serializes all
// calls (the underlying client is not assumed thread-safe).
type Runtime interface {
	ListContainersQuery(ctx context.Context) ([]RuntimeContainer, error)

	InspectContainerQuery(ctx context.Context, id string) (*ContainerDetails, error)

	ContainerStatsQuery(ctx context.Context, id string) (*UsageSample, error)

	// CommitContainerCommand snapshots a container's filesystem into
	// an image named repository:tag and returns the image ID.
	CommitContainerCommand(ctx context.Context, id, repository, tag string) (string, error)

	// RunContainerCommand creates and starts a container from the
	// spec and returns its ID. A container that was created but failed
	// to start is removed before the error is returned.
	RunContainerCommand(ctx context.Context, spec CloneSpec) (string, error)

	StopContainerCommand(ctx context.Context, id string) error

	PauseContainerCommand(ctx context.Context, id string) error

	UnpauseContainerCommand(ctx context.Context, id string) error

	RestartContainerCommand(ctx context.Context, id string) error

	RemoveContainerCommand(ctx context.Context, id string) error

	RemoveImageCommand(ctx context.Context, ref string) error
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// imageInUse is a private interface for checking "image still
// referenced" errors without importing the adapter package.
type imageInUse interface {
	IsInUse()
}
