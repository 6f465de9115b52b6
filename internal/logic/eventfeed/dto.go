package eventfeed

import "time"

// Raw is an event as delivered by the runtime adapter, before
// normalization.
type Raw struct {
	Type      string
	Action    string
	ActorID   string
	ActorName string
	TimeNano  int64
}

// Event is a normalized runtime occurrence. Created by the listener on
// receipt, consumed once by feed readers, never mutated.
type Event struct {
	Type          string    `json:"type"`
	Action        string    `json:"action"`
	ContainerID   string    `json:"containerId"`
	ContainerName string    `json:"containerName"`
	Timestamp     time.Time `json:"timestamp"`
}
