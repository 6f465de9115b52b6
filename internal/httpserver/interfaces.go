package httpserver

import (
	"time"

	"github.com/skillcoder/dockerscaler-controller/internal/infra/appstate"
	"github.com/skillcoder/dockerscaler-controller/internal/infra/pinger"
	"github.com/skillcoder/dockerscaler-controller/internal/logic/eventfeed"
	"github.com/skillcoder/dockerscaler-controller/internal/logic/scaler"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}

// coordinator is the subset of the scaler the API exposes.
type coordinator interface {
	Snapshot() []scaler.ContainerRecord
	SubmitCommand(cmd scaler.Command) error
	Policy() scaler.Policy
	UpdatePolicy(pol scaler.Policy) error
}

// eventReader drains buffered runtime events for delivery.
type eventReader interface {
	Drain() []eventfeed.Event
	Dropped() uint64
}
