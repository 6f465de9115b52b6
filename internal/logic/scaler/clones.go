package scaler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/skillcoder/dockerscaler-controller/internal/infra/metrics"
)

// createClone snapshots the parent's current filesystem into an image
// and starts a new container from it: commit, inspect, run. Any
// partially created image or container is rolled back on failure; the
// error is non-fatal to the tick.
func (s *Service) createClone(
	ctx context.Context,
	logger *slog.Logger,
	parent ContainerRecord,
	pol Policy,
) error {
	children := s.reg.childrenOf(parent.Name)
	if len(children) >= pol.MaxClonesPerParent {
		return fmt.Errorf("%w: %s has %d clones", ErrCloneLimitReached, parent.Name, len(children))
	}

	index := nextCloneIndex(children)
	name := fmt.Sprintf(cloneNameFormat, parent.Name, index)
	imageRef := name + ":" + cloneImageTag

	logger = logger.With("parent", parent.Name, "clone", name)

	imageID, err := s.runtime.CommitContainerCommand(ctx, parent.ID, name, cloneImageTag)
	if err != nil {
		metrics.RecordCloneCreateFailure(parent.Name)

		return fmt.Errorf("%w: commit parent: %w", ErrCreateClone, err)
	}

	details, err := s.runtime.InspectContainerQuery(ctx, parent.ID)
	if err != nil {
		s.rollbackCloneImage(ctx, logger, imageRef)
		metrics.RecordCloneCreateFailure(parent.Name)

		return fmt.Errorf("%w: inspect parent: %w", ErrCreateClone, err)
	}

	id, err := s.runtime.RunContainerCommand(ctx, CloneSpec{
		Name:         name,
		Image:        imageRef,
		Env:          details.Env,
		Cmd:          details.Cmd,
		ExposedPorts: details.ExposedPorts,
		Labels:       cloneLabels(parent.Name, index),
	})
	if err != nil {
		s.rollbackCloneImage(ctx, logger, imageRef)
		metrics.RecordCloneCreateFailure(parent.Name)

		return fmt.Errorf("%w: run clone: %w", ErrCreateClone, err)
	}

	s.reg.insertClone(id, name, imageRef, parent.Name, index)
	s.stateFor(parent.Name).cooldownUntil = time.Now().Add(pol.Cooldown)
	metrics.RecordCloneCreated(parent.Name)

	logger.InfoContext(ctx, "clone created",
		"container", id,
		"image", imageID,
		"index", index,
	)

	return nil
}

// removeClone stops and deletes a clone container and reclaims its
// backing image. Idempotent: an already-absent clone or image is a
// no-op, and an image still referenced elsewhere is left alone.
func (s *Service) removeClone(
	ctx context.Context,
	logger *slog.Logger,
	clone ContainerRecord,
) error {
	logger = logger.With("clone", clone.Name)

	if err := s.runtime.StopContainerCommand(ctx, clone.ID); err != nil && !isNotFound(err) {
		// Force removal below handles a container that refused to stop.
		logger.WarnContext(ctx, "stop clone failed, removing anyway", "reason", err)
	}

	if err := s.runtime.RemoveContainerCommand(ctx, clone.ID); err != nil && !isNotFound(err) {
		return fmt.Errorf("%w: remove container: %w", ErrRemoveClone, err)
	}

	if clone.Image != "" {
		err := s.runtime.RemoveImageCommand(ctx, clone.Image)

		switch {
		case err == nil:
		case isNotFound(err):
		case isImageInUse(err):
			logger.DebugContext(ctx, "clone image still referenced, not reclaimed", "image", clone.Image)
		default:
			logger.WarnContext(ctx, "failed to reclaim clone image", "image", clone.Image, "reason", err)
		}
	}

	s.reg.remove(clone.ID)

	if clone.Lineage != nil {
		// Only touch existing state: for an orphaned clone the parent
		// never enters the registry, and a fresh entry here would
		// outlive dropParentStates.
		if st, ok := s.parents[clone.Lineage.Parent]; ok {
			st.idleSince = time.Time{}
		}

		metrics.RecordCloneRemoved(clone.Lineage.Parent)
	}

	logger.InfoContext(ctx, "clone removed", "container", clone.ID)

	return nil
}

// rollbackCloneImage undoes a commit after a later creation step failed.
func (s *Service) rollbackCloneImage(ctx context.Context, logger *slog.Logger, imageRef string) {
	if err := s.runtime.RemoveImageCommand(ctx, imageRef); err != nil && !isNotFound(err) {
		logger.WarnContext(ctx, "failed to roll back committed image",
			"image", imageRef,
			"reason", err,
		)
	}
}

// nextCloneIndex is one past the highest existing index, so indices
// keep growing across remove/create cycles and names never collide
// with a clone that is still being torn down.
func nextCloneIndex(children []ContainerRecord) int {
	highest := 0

	for i := range children {
		if children[i].Lineage.Index > highest {
			highest = children[i].Lineage.Index
		}
	}

	return highest + 1
}

func cloneLabels(parent string, index int) map[string]string {
	return map[string]string{
		LabelIsClone:    LabelValueTrue,
		LabelParent:     parent,
		LabelCloneIndex: strconv.Itoa(index),
		LabelCreatedBy:  LabelValueCreatedBy,
	}
}

func isNotFound(err error) bool {
	var target notFound

	return errors.As(err, &target)
}

func isImageInUse(err error) bool {
	var target imageInUse

	return errors.As(err, &target)
}
