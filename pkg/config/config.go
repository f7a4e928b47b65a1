// Package config defines the gateway configuration and its YAML loader.
package config

import "time"

// GatewayConfig is the root configuration for the inquiry gateway.
type GatewayConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Admission AdmissionConfig `yaml:"admission"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Backend   BackendConfig   `yaml:"backend"`
}

// ServerConfig controls the gRPC listener. GRPC_HOST and GRPC_PORT
// environment variables override the file values, matching the deployment
// convention.
type ServerConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
}

// AdmissionConfig controls the admission queue and dispatcher pool.
type AdmissionConfig struct {
	MaxQueueDepth   int  `yaml:"max_queue_depth"`
	MaxInFlight     int  `yaml:"max_in_flight"`
	DispatchWorkers int  `yaml:"dispatch_workers"` // defaults to max_in_flight
	PriorityEnabled bool `yaml:"priority_enabled"`
	StarvationBound int  `yaml:"starvation_bound"`
	// DefaultDeadlineSeconds caps sessions that carry no client deadline.
	// Zero disables the default.
	DefaultDeadlineSeconds int `yaml:"default_deadline_seconds"`
}

// RateLimitConfig controls the per-surrogate token bucket.
type RateLimitConfig struct {
	Capacity             float64          `yaml:"capacity"`
	RefillPerSec         float64          `yaml:"refill_per_sec"`
	IdleTTLSeconds       int              `yaml:"idle_ttl_seconds"`
	SweepIntervalSeconds int              `yaml:"sweep_interval_seconds"`
	CostPer4KiB          float64          `yaml:"cost_per_4kib"`
	FailOpen             bool             `yaml:"fail_open"`
	Redis                RedisLimitConfig `yaml:"redis"`
}

// RedisLimitConfig enables the optional distributed limiter for
// multi-replica deployments.
type RedisLimitConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// BackendConfig controls the TEE backend call. Endpoint and credential come
// from the secrets manager, not from this file.
type BackendConfig struct {
	Model          string `yaml:"model"`
	MaxRetries     int    `yaml:"max_retries"`
	RetryBackoffMs int    `yaml:"retry_backoff_ms"`
}

// IdleTTL returns the bucket idle TTL as a duration.
func (c RateLimitConfig) IdleTTL() time.Duration {
	return time.Duration(c.IdleTTLSeconds) * time.Second
}

// SweepInterval returns the eviction sweep interval as a duration.
func (c RateLimitConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// DefaultDeadline returns the default session deadline, or zero if
// disabled.
func (c AdmissionConfig) DefaultDeadline() time.Duration {
	return time.Duration(c.DefaultDeadlineSeconds) * time.Second
}

// RetryBackoff returns the backend retry backoff as a duration.
func (c BackendConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffMs) * time.Millisecond
}

// Workers returns the dispatcher pool size, defaulting to max_in_flight.
func (c AdmissionConfig) Workers() int {
	if c.DispatchWorkers > 0 {
		return c.DispatchWorkers
	}
	return c.MaxInFlight
}
