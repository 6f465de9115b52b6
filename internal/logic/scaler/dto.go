package scaler

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a tracked container.
type Status string

const (
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
	StatusStopped Status = "stopped"
	StatusRemoved Status = "removed"
)

// Lineage marks a container as a clone of a named parent. It is decided
// once, from container labels, when the record is constructed.
type Lineage struct {
	Parent string `json:"parent"`
	Index  int    `json:"index"`
}

// ContainerRecord is the domain view of one tracked container. Records
// live in the coordinator's registry; the sampler writes the metrics
// fields, registry sync and the clone manager write the rest.
type ContainerRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Image      string   `json:"image"`
	Status     Status   `json:"status"`
	CPUPercent float64  `json:"cpuPercent"`
	MemPercent float64  `json:"memPercent"`
	Lineage    *Lineage `json:"lineage,omitempty"`
}

// IsClone reports whether the record describes a clone container.
func (r ContainerRecord) IsClone() bool {
	return r.Lineage != nil
}

// Policy is the scaling configuration. It is immutable within a tick;
// updates between ticks go through Service.UpdatePolicy.
type Policy struct {
	CPULimitPercent    float64       `json:"cpuLimitPercent"`
	RAMLimitPercent    float64       `json:"ramLimitPercent"`
	MaxClonesPerParent int           `json:"maxClonesPerParent"`
	TickInterval       time.Duration `json:"tickInterval"`
	Cooldown           time.Duration `json:"cooldown"`
	HysteresisWindow   time.Duration `json:"hysteresisWindow"`
	AutoScaleEnabled   bool          `json:"autoScaleEnabled"`
	AutoRestartStopped bool          `json:"autoRestartStopped"`
}

// Validate rejects policies that would make the decision engine
// misbehave. The previous policy is retained on rejection.
func (p Policy) Validate() error {
	if p.CPULimitPercent <= 0 || p.CPULimitPercent > maxPercent {
		return fmt.Errorf("%w: cpuLimitPercent %.2f out of (0, 100]", ErrInvalidPolicy, p.CPULimitPercent)
	}

	if p.RAMLimitPercent <= 0 || p.RAMLimitPercent > maxPercent {
		return fmt.Errorf("%w: ramLimitPercent %.2f out of (0, 100]", ErrInvalidPolicy, p.RAMLimitPercent)
	}

	if p.MaxClonesPerParent < 0 {
		return fmt.Errorf("%w: maxClonesPerParent %d is negative", ErrInvalidPolicy, p.MaxClonesPerParent)
	}

	if p.TickInterval <= 0 {
		return fmt.Errorf("%w: tickInterval %s is not positive", ErrInvalidPolicy, p.TickInterval)
	}

	if p.Cooldown < 0 {
		return fmt.Errorf("%w: cooldown %s is negative", ErrInvalidPolicy, p.Cooldown)
	}

	if p.HysteresisWindow < 0 {
		return fmt.Errorf("%w: hysteresisWindow %s is negative", ErrInvalidPolicy, p.HysteresisWindow)
	}

	return nil
}

// Action is a control operation submitted by an external collaborator.
type Action string

const (
	ActionStop    Action = "stop"
	ActionPause   Action = "pause"
	ActionUnpause Action = "unpause"
	ActionRestart Action = "restart"
	ActionRemove  Action = "remove"
	ActionScale   Action = "scale"
)

// Valid reports whether the action is one of the supported operations.
func (a Action) Valid() bool {
	switch a {
	case ActionStop, ActionPause, ActionUnpause, ActionRestart, ActionRemove, ActionScale:
		return true
	default:
		return false
	}
}

// Command targets a container by ID or name; TargetAll applies the
// action to every primary currently in the registry.
type Command struct {
	Target string `json:"target"`
	Action Action `json:"action"`
}

// TargetAll is the wildcard command target.
const TargetAll = "*"

// RuntimeContainer is one entry of a runtime list query.
type RuntimeContainer struct {
	ID     string
	Name   string
	Image  string
	State  string
	Labels map[string]string
}

// ContainerDetails is the inspected configuration of one container,
// the part of it a clone inherits.
type ContainerDetails struct {
	ID           string
	Name         string
	Image        string
	Env          []string
	Cmd          []string
	ExposedPorts []string
	Labels       map[string]string
}

// UsageSample is one instantaneous resource-usage reading. CPU values
// are cumulative counters; percent computation needs two samples.
type UsageSample struct {
	CPUTotal   uint64
	SystemCPU  uint64
	OnlineCPUs int
	MemUsage   uint64
	MemLimit   uint64
}

// CloneSpec describes the container to instantiate for a clone. The
// clone declares the parent's exposed ports but publishes none of them
// to the host, and carries no volume binds, so it can never collide
// with the parent's host ports or mounts.
type CloneSpec struct {
	Name         string
	Image        string
	Env          []string
	Cmd          []string
	ExposedPorts []string
	Labels       map[string]string
}
