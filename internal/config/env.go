package config

import "time"

// Env key constants. All controller configuration env vars use the
// DOCKERSCALER_ prefix; duration values use Go syntax (e.g. 5m, 40s).
// The Docker daemon endpoint itself comes from the standard DOCKER_*
// env vars read by the client.

// Port for the HTTP API and health endpoints.
const envKeyHTTPPort = "DOCKERSCALER_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "DOCKERSCALER_METRICS_PORT"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "DOCKERSCALER_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "DOCKERSCALER_LOG_FORMAT"

// Sampling tick interval.
const (
	envKeyTickInterval = "DOCKERSCALER_TICK_INTERVAL"
	envMinTickInterval = 250 * time.Millisecond
)

// CPU utilisation limit in percent; a primary above it is overloaded.
const envKeyCPULimitPercent = "DOCKERSCALER_CPU_LIMIT_PERCENT"

// Memory utilisation limit in percent.
const envKeyRAMLimitPercent = "DOCKERSCALER_RAM_LIMIT_PERCENT"

// Maximum number of clones per parent container; 0 disables scale-up.
const envKeyMaxClonesPerParent = "DOCKERSCALER_MAX_CLONES_PER_PARENT"

// Minimum time between scale-ups for the same parent.
const envKeyCooldown = "DOCKERSCALER_COOLDOWN"

// How long a parent and its newest clone must stay idle before a
// scale-down (flap protection).
const envKeyHysteresisWindow = "DOCKERSCALER_HYSTERESIS_WINDOW"

// Whether the decision engine may create clones at all.
const envKeyAutoScaleEnabled = "DOCKERSCALER_AUTOSCALE_ENABLED"

// Whether stopped primaries are restarted automatically.
const envKeyAutoRestartStopped = "DOCKERSCALER_AUTORESTART_STOPPED"

// Capacity of the bounded event feed (drop-oldest on overflow).
const (
	envKeyEventQueueSize = "DOCKERSCALER_EVENT_QUEUE_SIZE"
	envMinEventQueueSize = 1
)

// Capacity of the command queue.
const (
	envKeyCommandQueueSize = "DOCKERSCALER_COMMAND_QUEUE_SIZE"
	envMinCommandQueueSize = 1
)

// Delay before resubscribing after an event stream failure.
const (
	envKeyReconnectDelay = "DOCKERSCALER_RECONNECT_DELAY"
	envMinReconnectDelay = time.Second
)

// Per-call timeout for runtime client operations.
const (
	envKeyRuntimeTimeout = "DOCKERSCALER_RUNTIME_TIMEOUT"
	envMinRuntimeTimeout = time.Second
)

// Grace period given to a container on stop/restart before SIGKILL.
const (
	envKeyStopTimeout = "DOCKERSCALER_STOP_TIMEOUT"
	envMinStopTimeout = time.Second
)

// Pinger check interval.
const (
	envKeyPingerInterval = "DOCKERSCALER_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Cron expression (5-field) for the cleanup run; empty disables it.
const envKeyCleanupSchedule = "DOCKERSCALER_CLEANUP_SCHEDULE"
