package scaler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillcoder/dockerscaler-controller/internal/infra/metrics"
)

// SubmitCommand validates and enqueues a control command. Commands are
// applied at the start of the next tick, under the same exclusion
// discipline as the autoscaler's own actions.
func (s *Service) SubmitCommand(cmd Command) error {
	if !cmd.Action.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}

	if cmd.Target == "" {
		return fmt.Errorf("%w: empty target", ErrUnknownAction)
	}

	select {
	case s.commands <- cmd:
		return nil
	default:
		return ErrCommandQueueFull
	}
}

// drainCommands applies every queued command. A target absent from the
// registry is a no-op success, not an error.
func (s *Service) drainCommands(ctx context.Context, logger *slog.Logger, pol Policy) {
	for {
		select {
		case cmd := <-s.commands:
			s.applyCommand(ctx, logger, cmd, pol)
		default:
			return
		}
	}
}

func (s *Service) applyCommand(ctx context.Context, logger *slog.Logger, cmd Command, pol Policy) {
	logger = logger.With("action", string(cmd.Action), "target", cmd.Target)

	targets := s.reg.resolve(cmd.Target)
	if len(targets) == 0 {
		logger.InfoContext(ctx, "command target not in registry, no-op")

		return
	}

	for i := range targets {
		if err := s.applyAction(ctx, logger, cmd.Action, targets[i], pol); err != nil {
			logger.ErrorContext(ctx, "command failed",
				"container", targets[i].Name,
				"reason", err,
			)

			continue
		}

		metrics.RecordCommandApplied(string(cmd.Action))
	}
}

func (s *Service) applyAction(
	ctx context.Context,
	logger *slog.Logger,
	action Action,
	target ContainerRecord,
	pol Policy,
) error {
	var err error

	switch action {
	case ActionStop:
		err = s.runtime.StopContainerCommand(ctx, target.ID)
	case ActionPause:
		err = s.runtime.PauseContainerCommand(ctx, target.ID)
	case ActionUnpause:
		err = s.runtime.UnpauseContainerCommand(ctx, target.ID)
	case ActionRestart:
		err = s.runtime.RestartContainerCommand(ctx, target.ID)
	case ActionRemove:
		return s.removeTarget(ctx, logger, target)
	case ActionScale:
		// Force-scale bypasses thresholds and cooldown but still
		// honors the per-parent clone cap.
		if target.IsClone() {
			logger.InfoContext(ctx, "scale command on a clone ignored", "container", target.Name)

			return nil
		}

		return s.createClone(ctx, logger, target, pol)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	if isNotFound(err) {
		// Vanished between query and action: already satisfied.
		return nil
	}

	return err
}

// removeTarget deletes a container. Clones go through the full clone
// teardown so their backing image is reclaimed.
func (s *Service) removeTarget(ctx context.Context, logger *slog.Logger, target ContainerRecord) error {
	if target.IsClone() {
		return s.removeClone(ctx, logger, target)
	}

	if err := s.runtime.StopContainerCommand(ctx, target.ID); err != nil && !isNotFound(err) {
		logger.WarnContext(ctx, "stop before remove failed", "container", target.Name, "reason", err)
	}

	if err := s.runtime.RemoveContainerCommand(ctx, target.ID); err != nil && !isNotFound(err) {
		return err
	}

	s.reg.remove(target.ID)
	s.dropParentStates([]ContainerRecord{target})

	return nil
}
