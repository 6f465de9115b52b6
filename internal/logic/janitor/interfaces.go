package janitor

import (
	"context"
	"time"
)

// runtime is the subset of the container runtime the janitor needs.
type runtime interface {
	PruneContainersCommand(ctx context.Context) (int, error)
	PruneImagesCommand(ctx context.Context) (int, int64, error)
}

// scheduleParser computes the next cleanup occurrence from a cron spec.
type scheduleParser interface {
	NextAfter(spec, tz string, after time.Time) (time.Time, error)
}
