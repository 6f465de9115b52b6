package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/skillcoder/dockerscaler-controller/internal/infra/cronparser"
	"github.com/skillcoder/dockerscaler-controller/internal/logic/scaler"
)

const (
	defaultHTTPPort           = "8080"
	defaultMetricsPort        = "9090"
	defaultLogLevel           = "info"
	defaultLogFormat          = "json"
	defaultTickInterval       = time.Second
	defaultCPULimitPercent    = 70.0
	defaultRAMLimitPercent    = 70.0
	defaultMaxClonesPerParent = 2
	defaultCooldown           = 30 * time.Second
	defaultHysteresisWindow   = 15 * time.Second
	defaultAutoScaleEnabled   = true
	defaultAutoRestartStopped = false
	defaultEventQueueSize     = 256
	defaultCommandQueueSize   = 64
	defaultReconnectDelay     = 5 * time.Second
	defaultRuntimeTimeout     = 30 * time.Second
	defaultStopTimeout        = 10 * time.Second
	defaultPingerInterval     = 10 * time.Second
)

type Config struct {
	HTTPPort    string
	MetricsPort string
	LogLevel    string
	LogFormat   string

	TickInterval       time.Duration
	CPULimitPercent    float64
	RAMLimitPercent    float64
	MaxClonesPerParent int
	Cooldown           time.Duration
	HysteresisWindow   time.Duration
	AutoScaleEnabled   bool
	AutoRestartStopped bool

	EventQueueSize   int
	CommandQueueSize int
	ReconnectDelay   time.Duration
	RuntimeTimeout   time.Duration
	StopTimeout      time.Duration
	PingerInterval   time.Duration
	CleanupSchedule  string
}

// Load reads and validates configuration from the environment. An
// invalid value is an error, not a silent fallback.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:        getEnvOrDefault(envKeyHTTPPort, defaultHTTPPort),
		MetricsPort:     getEnvOrDefault(envKeyMetricsPort, defaultMetricsPort),
		LogLevel:        getEnvOrDefault(envKeyLogLevel, defaultLogLevel),
		LogFormat:       getEnvOrDefault(envKeyLogFormat, defaultLogFormat),
		CleanupSchedule: os.Getenv(envKeyCleanupSchedule),
	}

	var err error

	cfg.TickInterval, err = getDuration(envKeyTickInterval, defaultTickInterval, envMinTickInterval)
	if err != nil {
		return nil, err
	}

	cfg.CPULimitPercent, err = getPercent(envKeyCPULimitPercent, defaultCPULimitPercent)
	if err != nil {
		return nil, err
	}

	cfg.RAMLimitPercent, err = getPercent(envKeyRAMLimitPercent, defaultRAMLimitPercent)
	if err != nil {
		return nil, err
	}

	cfg.MaxClonesPerParent, err = getInt(envKeyMaxClonesPerParent, defaultMaxClonesPerParent, 0)
	if err != nil {
		return nil, err
	}

	cfg.Cooldown, err = getDuration(envKeyCooldown, defaultCooldown, 0)
	if err != nil {
		return nil, err
	}

	cfg.HysteresisWindow, err = getDuration(envKeyHysteresisWindow, defaultHysteresisWindow, 0)
	if err != nil {
		return nil, err
	}

	cfg.AutoScaleEnabled, err = getBool(envKeyAutoScaleEnabled, defaultAutoScaleEnabled)
	if err != nil {
		return nil, err
	}

	cfg.AutoRestartStopped, err = getBool(envKeyAutoRestartStopped, defaultAutoRestartStopped)
	if err != nil {
		return nil, err
	}

	cfg.EventQueueSize, err = getInt(envKeyEventQueueSize, defaultEventQueueSize, envMinEventQueueSize)
	if err != nil {
		return nil, err
	}

	cfg.CommandQueueSize, err = getInt(envKeyCommandQueueSize, defaultCommandQueueSize, envMinCommandQueueSize)
	if err != nil {
		return nil, err
	}

	cfg.ReconnectDelay, err = getDuration(envKeyReconnectDelay, defaultReconnectDelay, envMinReconnectDelay)
	if err != nil {
		return nil, err
	}

	cfg.RuntimeTimeout, err = getDuration(envKeyRuntimeTimeout, defaultRuntimeTimeout, envMinRuntimeTimeout)
	if err != nil {
		return nil, err
	}

	cfg.StopTimeout, err = getDuration(envKeyStopTimeout, defaultStopTimeout, envMinStopTimeout)
	if err != nil {
		return nil, err
	}

	cfg.PingerInterval, err = getDuration(envKeyPingerInterval, defaultPingerInterval, envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	if cfg.CleanupSchedule != "" {
		parser := cronparser.New()
		if _, err := parser.NextAfter(cfg.CleanupSchedule, "", time.Now()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", envKeyCleanupSchedule, err)
		}
	}

	if err := cfg.ScalingPolicy().Validate(); err != nil {
		return nil, fmt.Errorf("scaling policy: %w", err)
	}

	return cfg, nil
}

// ScalingPolicy maps the configuration onto the scaler's policy.
func (c *Config) ScalingPolicy() scaler.Policy {
	return scaler.Policy{
		CPULimitPercent:    c.CPULimitPercent,
		RAMLimitPercent:    c.RAMLimitPercent,
		MaxClonesPerParent: c.MaxClonesPerParent,
		TickInterval:       c.TickInterval,
		Cooldown:           c.Cooldown,
		HysteresisWindow:   c.HysteresisWindow,
		AutoScaleEnabled:   c.AutoScaleEnabled,
		AutoRestartStopped: c.AutoRestartStopped,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

func getDuration(key string, defaultValue, minValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if value < minValue {
		return 0, fmt.Errorf("parse %s: %s is below minimum %s", key, value, minValue)
	}

	return value, nil
}

func getPercent(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if value <= 0 || value > 100 {
		return 0, fmt.Errorf("parse %s: %.2f out of (0, 100]", key, value)
	}

	return value, nil
}

func getInt(key string, defaultValue, minValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if value < minValue {
		return 0, fmt.Errorf("parse %s: %d is below minimum %d", key, value, minValue)
	}

	return value, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}

	return value, nil
}
