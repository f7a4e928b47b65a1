package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
server:
  host: "0.0.0.0"
  port: 50052
  metrics_port: 9190
admission:
  max_queue_depth: 64
  max_in_flight: 4
  priority_enabled: true
  starvation_bound: 3
  default_deadline_seconds: 60
rate_limit:
  capacity: 20
  refill_per_sec: 2
  idle_ttl_seconds: 300
  sweep_interval_seconds: 30
  cost_per_4kib: 0.5
backend:
  model: "test-model"
  max_retries: 2
  retry_backoff_ms: 100
`

// ── Parsing ──

func TestParseValidConfig(t *testing.T) {
	cfg, err := Parse(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 50052, cfg.Server.Port)
	assert.Equal(t, 64, cfg.Admission.MaxQueueDepth)
	assert.Equal(t, 4, cfg.Admission.MaxInFlight)
	assert.True(t, cfg.Admission.PriorityEnabled)
	assert.Equal(t, 20.0, cfg.RateLimit.Capacity)
	assert.Equal(t, 0.5, cfg.RateLimit.CostPer4KiB)
	assert.Equal(t, "test-model", cfg.Backend.Model)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse(writeConfig(t, "server: [not a map"))
	assert.Error(t, err)
}

// ── Defaults ──

func TestDefaultsApplied(t *testing.T) {
	cfg, err := Parse(writeConfig(t, "server:\n  port: 50051\n"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 256, cfg.Admission.MaxQueueDepth)
	assert.Equal(t, 8, cfg.Admission.MaxInFlight)
	assert.Equal(t, 8, cfg.Admission.StarvationBound)
	assert.Equal(t, 10.0, cfg.RateLimit.Capacity)
	assert.Equal(t, 1.0, cfg.RateLimit.RefillPerSec)
	assert.Equal(t, 600, cfg.RateLimit.IdleTTLSeconds)
	assert.Equal(t, 3, cfg.Backend.MaxRetries)
}

// ── Environment overrides ──

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GRPC_HOST", "10.0.0.5")
	t.Setenv("GRPC_PORT", "6000")

	cfg, err := Parse(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", cfg.Server.Host)
	assert.Equal(t, 6000, cfg.Server.Port)
}

func TestEnvOverrideMalformedPortIgnored(t *testing.T) {
	t.Setenv("GRPC_PORT", "not-a-port")

	cfg, err := Parse(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Equal(t, 50052, cfg.Server.Port)
}

// ── Validation ──

func TestValidationRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"port out of range", "server:\n  port: 70000\n"},
		{"negative refill", "rate_limit:\n  refill_per_sec: -1\n"},
		{"negative cost", "rate_limit:\n  cost_per_4kib: -0.5\n"},
		{"redis without addr", "rate_limit:\n  redis:\n    enabled: true\n"},
		{"negative retries", "backend:\n  max_retries: -1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(writeConfig(t, tc.yaml))
			assert.Error(t, err)
		})
	}
}

// ── Derived values ──

func TestDurationHelpers(t *testing.T) {
	cfg, err := Parse(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.RateLimit.IdleTTL())
	assert.Equal(t, 30*time.Second, cfg.RateLimit.SweepInterval())
	assert.Equal(t, time.Minute, cfg.Admission.DefaultDeadline())
	assert.Equal(t, 100*time.Millisecond, cfg.Backend.RetryBackoff())
	assert.Equal(t, 4, cfg.Admission.Workers(), "workers default to max_in_flight")

	cfg.Admission.DispatchWorkers = 2
	assert.Equal(t, 2, cfg.Admission.Workers())
}

// ── Global cache ──

func TestLoadReplacesGlobal(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)
	assert.Same(t, cfg, Get())

	other := &GatewayConfig{}
	Replace(other)
	assert.Same(t, other, Get())
}
