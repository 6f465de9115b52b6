package scaler

import (
	"time"

	"github.com/skillcoder/dockerscaler-controller/internal/infra/metrics"
)

type intentKind int

const (
	intentCreateClone intentKind = iota
	intentRemoveClone
	intentRestart
)

// intent is one scale decision for the current tick. Intents are not
// carried over: a scale-up still warranted next tick is re-emitted.
type intent struct {
	kind intentKind

	// target is the parent for create/restart, the clone for remove.
	target ContainerRecord
}

// parentState is per-parent cooldown and hysteresis bookkeeping. It is
// touched only from the tick goroutine and dropped when the parent
// leaves the registry.
type parentState struct {
	cooldownUntil time.Time

	// idleSince is the start of the current fully-idle observation
	// window; zero when the parent group is not idle.
	idleSince time.Time
}

// decide evaluates the registry against the policy and emits intents
// in a deterministic order: orphaned clones first, then primaries in
// ascending name order.
func (s *Service) decide(now time.Time, pol Policy) []intent {
	var intents []intent

	for _, clone := range s.reg.orphanClones() {
		intents = append(intents, intent{kind: intentRemoveClone, target: clone})
	}

	for _, primary := range s.reg.primaries() {
		if it, ok := s.decidePrimary(now, pol, primary); ok {
			intents = append(intents, it)
		}
	}

	return intents
}

func (s *Service) decidePrimary(now time.Time, pol Policy, primary ContainerRecord) (intent, bool) {
	st := s.stateFor(primary.Name)

	if pol.AutoRestartStopped && primary.Status == StatusStopped {
		return intent{kind: intentRestart, target: primary}, true
	}

	if primary.Status != StatusRunning {
		return intent{}, false
	}

	children := s.reg.childrenOf(primary.Name)

	if overLimit(primary, pol) {
		st.idleSince = time.Time{}

		if !pol.AutoScaleEnabled {
			return intent{}, false
		}

		if len(children) >= pol.MaxClonesPerParent {
			metrics.RecordScaleUpSkippedCloneLimit(primary.Name)

			return intent{}, false
		}

		if now.Before(st.cooldownUntil) {
			return intent{}, false
		}

		return intent{kind: intentCreateClone, target: primary}, true
	}

	if len(children) == 0 {
		st.idleSince = time.Time{}

		return intent{}, false
	}

	// Scale-down candidate is the newest clone (LIFO). The parent and
	// the candidate must both stay below every limit for a full
	// hysteresis window; a single hot sample restarts the window.
	newest := children[len(children)-1]
	if overLimit(newest, pol) {
		st.idleSince = time.Time{}

		return intent{}, false
	}

	if st.idleSince.IsZero() {
		st.idleSince = now

		return intent{}, false
	}

	if now.Sub(st.idleSince) < pol.HysteresisWindow {
		return intent{}, false
	}

	return intent{kind: intentRemoveClone, target: newest}, true
}

func overLimit(r ContainerRecord, pol Policy) bool {
	return r.CPUPercent > pol.CPULimitPercent || r.MemPercent > pol.RAMLimitPercent
}

// stateFor returns the decision state for a parent, creating it on
// first use.
func (s *Service) stateFor(parent string) *parentState {
	st, ok := s.parents[parent]
	if !ok {
		st = &parentState{}
		s.parents[parent] = st
	}

	return st
}

// dropParentStates clears cooldown/hysteresis state for containers
// that left the registry.
func (s *Service) dropParentStates(removed []ContainerRecord) {
	for i := range removed {
		if removed[i].IsClone() {
			continue
		}

		delete(s.parents, removed[i].Name)
	}
}
