package config

import "fmt"

// validate rejects configurations that cannot run safely. Called after
// defaults are applied, so zero values have already been filled.
func validate(cfg *GatewayConfig) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", cfg.Server.Port)
	}
	if cfg.Admission.MaxQueueDepth < 1 {
		return fmt.Errorf("admission.max_queue_depth must be positive, got %d", cfg.Admission.MaxQueueDepth)
	}
	if cfg.Admission.MaxInFlight < 1 {
		return fmt.Errorf("admission.max_in_flight must be positive, got %d", cfg.Admission.MaxInFlight)
	}
	if cfg.Admission.DispatchWorkers < 0 {
		return fmt.Errorf("admission.dispatch_workers must not be negative, got %d", cfg.Admission.DispatchWorkers)
	}
	if cfg.Admission.StarvationBound < 1 {
		return fmt.Errorf("admission.starvation_bound must be positive, got %d", cfg.Admission.StarvationBound)
	}
	if cfg.RateLimit.Capacity < 1 {
		return fmt.Errorf("rate_limit.capacity must be at least 1, got %g", cfg.RateLimit.Capacity)
	}
	if cfg.RateLimit.RefillPerSec <= 0 {
		return fmt.Errorf("rate_limit.refill_per_sec must be positive, got %g", cfg.RateLimit.RefillPerSec)
	}
	if cfg.RateLimit.CostPer4KiB < 0 {
		return fmt.Errorf("rate_limit.cost_per_4kib must not be negative, got %g", cfg.RateLimit.CostPer4KiB)
	}
	if cfg.RateLimit.Redis.Enabled && cfg.RateLimit.Redis.Addr == "" {
		return fmt.Errorf("rate_limit.redis.addr is required when the redis limiter is enabled")
	}
	if cfg.Backend.MaxRetries < 0 {
		return fmt.Errorf("backend.max_retries must not be negative, got %d", cfg.Backend.MaxRetries)
	}
	return nil
}
