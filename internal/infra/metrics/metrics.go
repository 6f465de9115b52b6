package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ticksTotal = promauto.With(prometheus.DefaultRegisterer).NewCounter(
	prometheus.CounterOpts{
		Name: "dockerscaler_ticks_total",
		Help: "Total number of completed sample/decide/execute ticks.",
	},
)

var clonesCreatedTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "dockerscaler_clones_created_total",
		Help: "Total number of clone containers created, by parent.",
	},
	[]string{"parent"},
)

var cloneCreateFailuresTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "dockerscaler_clone_create_failures_total",
		Help: "Total number of failed clone creations (rolled back), by parent.",
	},
	[]string{"parent"},
)

var clonesRemovedTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "dockerscaler_clones_removed_total",
		Help: "Total number of clone containers removed, by parent.",
	},
	[]string{"parent"},
)

var scaleUpSkippedCloneLimitTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "dockerscaler_scale_up_skipped_clone_limit_total",
		Help: "Total number of scale-up decisions skipped because the parent " +
			"was already at its clone limit (no runtime call is made).",
	},
	[]string{"parent"},
)

var sampleFailuresTotal = promauto.With(prometheus.DefaultRegisterer).NewCounter(
	prometheus.CounterOpts{
		Name: "dockerscaler_sample_failures_total",
		Help: "Total number of failed container stats queries (previous values retained).",
	},
)

var commandsAppliedTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "dockerscaler_commands_applied_total",
		Help: "Total number of externally submitted commands applied, by action.",
	},
	[]string{"action"},
)

var eventsDroppedTotal = promauto.With(prometheus.DefaultRegisterer).NewCounter(
	prometheus.CounterOpts{
		Name: "dockerscaler_events_dropped_total",
		Help: "Total number of runtime events dropped because the feed was full.",
	},
)

var eventsReceivedTotal = promauto.With(prometheus.DefaultRegisterer).NewCounter(
	prometheus.CounterOpts{
		Name: "dockerscaler_events_received_total",
		Help: "Total number of runtime events received from the event stream.",
	},
)

var listenerReconnectsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounter(
	prometheus.CounterOpts{
		Name: "dockerscaler_listener_reconnects_total",
		Help: "Total number of event stream reconnect attempts.",
	},
)

var janitorRunsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounter(
	prometheus.CounterOpts{
		Name: "dockerscaler_janitor_runs_total",
		Help: "Total number of scheduled cleanup runs.",
	},
)

// RecordTick increments the tick counter.
func RecordTick() {
	ticksTotal.Inc()
}

// RecordCloneCreated increments the created-clones counter for a parent.
func RecordCloneCreated(parent string) {
	clonesCreatedTotal.WithLabelValues(parent).Inc()
}

// RecordCloneCreateFailure increments the failed-creation counter for a parent.
func RecordCloneCreateFailure(parent string) {
	cloneCreateFailuresTotal.WithLabelValues(parent).Inc()
}

// RecordCloneRemoved increments the removed-clones counter for a parent.
func RecordCloneRemoved(parent string) {
	clonesRemovedTotal.WithLabelValues(parent).Inc()
}

// RecordScaleUpSkippedCloneLimit increments the counter for scale-ups
// rejected at the clone cap.
func RecordScaleUpSkippedCloneLimit(parent string) {
	scaleUpSkippedCloneLimitTotal.WithLabelValues(parent).Inc()
}

// RecordSampleFailure increments the stats-query failure counter.
func RecordSampleFailure() {
	sampleFailuresTotal.Inc()
}

// RecordCommandApplied increments the applied-commands counter for an action.
func RecordCommandApplied(action string) {
	commandsAppliedTotal.WithLabelValues(action).Inc()
}

// RecordEventDropped increments the dropped-events counter.
func RecordEventDropped() {
	eventsDroppedTotal.Inc()
}

// RecordEventReceived increments the received-events counter.
func RecordEventReceived() {
	eventsReceivedTotal.Inc()
}

// RecordListenerReconnect increments the reconnect counter.
func RecordListenerReconnect() {
	listenerReconnectsTotal.Inc()
}

// RecordJanitorRun increments the cleanup-run counter.
func RecordJanitorRun() {
	janitorRunsTotal.Inc()
}
