package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/loyal-labs/loyal-backend/pkg/observability/logging"
)

var (
	config   *GatewayConfig
	configMu sync.RWMutex
)

// Load parses the YAML config file, applies environment overrides and
// defaults, validates, and caches the result globally.
func Load(configPath string) (*GatewayConfig, error) {
	cfg, err := Parse(configPath)
	if err != nil {
		return nil, err
	}
	Replace(cfg)
	return cfg, nil
}

// Parse parses and validates the YAML config file without touching the
// global cache.
func Parse(configPath string) (*GatewayConfig, error) {
	// Resolve symlinks to handle Kubernetes ConfigMap mounts
	resolved, _ := filepath.EvalSymlinks(configPath)
	if resolved == "" {
		resolved = configPath
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &GatewayConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	logging.Debugf("Config loaded: queue_depth=%d in_flight=%d rate_capacity=%.1f",
		cfg.Admission.MaxQueueDepth, cfg.Admission.MaxInFlight, cfg.RateLimit.Capacity)
	return cfg, nil
}

// Replace replaces the globally cached config. Safe for concurrent readers.
func Replace(cfg *GatewayConfig) {
	configMu.Lock()
	config = cfg
	configMu.Unlock()
}

// Get returns the current configuration, or nil before Load.
func Get() *GatewayConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return config
}

// applyEnvOverrides applies the deployment environment variables that take
// precedence over the file.
func applyEnvOverrides(cfg *GatewayConfig) {
	if host := os.Getenv("GRPC_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("GRPC_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		} else {
			logging.Warnf("Ignoring malformed GRPC_PORT=%q", port)
		}
	}
}

func applyDefaults(cfg *GatewayConfig) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 50051
	}
	if cfg.Admission.MaxQueueDepth == 0 {
		cfg.Admission.MaxQueueDepth = 256
	}
	if cfg.Admission.MaxInFlight == 0 {
		cfg.Admission.MaxInFlight = 8
	}
	if cfg.Admission.StarvationBound == 0 {
		cfg.Admission.StarvationBound = 8
	}
	if cfg.RateLimit.Capacity == 0 {
		cfg.RateLimit.Capacity = 10
	}
	if cfg.RateLimit.RefillPerSec == 0 {
		cfg.RateLimit.RefillPerSec = 1
	}
	if cfg.RateLimit.IdleTTLSeconds == 0 {
		cfg.RateLimit.IdleTTLSeconds = 600
	}
	if cfg.RateLimit.SweepIntervalSeconds == 0 {
		cfg.RateLimit.SweepIntervalSeconds = 60
	}
	if cfg.Backend.MaxRetries == 0 {
		cfg.Backend.MaxRetries = 3
	}
	if cfg.Backend.RetryBackoffMs == 0 {
		cfg.Backend.RetryBackoffMs = 250
	}
}
