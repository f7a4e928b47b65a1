// Package commands holds the gateway CLI subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/loyal-labs/loyal-backend/pkg/admission"
	"github.com/loyal-labs/loyal-backend/pkg/backend"
	"github.com/loyal-labs/loyal-backend/pkg/config"
	"github.com/loyal-labs/loyal-backend/pkg/dispatch"
	"github.com/loyal-labs/loyal-backend/pkg/identity"
	"github.com/loyal-labs/loyal-backend/pkg/observability/logging"
	"github.com/loyal-labs/loyal-backend/pkg/ratelimit"
	"github.com/loyal-labs/loyal-backend/pkg/secrets"
	"github.com/loyal-labs/loyal-backend/pkg/server"
)

// shutdownGrace bounds how long a graceful shutdown may take before open
// streams are aborted.
const shutdownGrace = 30 * time.Second

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the inquiry gateway",
		Long:  `Start the gRPC server and serve inquiries until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runServe(configPath)
		},
	}
}

func runServe(configPath string) error {
	defer logging.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	sm, err := secrets.NewManagerFromEnv()
	if err != nil {
		return fmt.Errorf("initializing secrets: %w", err)
	}
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	creds, err := sm.BackendCredentials(bootCtx)
	bootCancel()
	if err != nil {
		return fmt.Errorf("resolving backend credentials: %w", err)
	}
	logging.Infof("TEE backend resolved (deployment=%s)", sm.Deployment())

	// Rate limit provider chain: local bucket first, shared Redis budget
	// second when configured.
	local := ratelimit.NewTokenBucketLimiter(ratelimit.TokenBucketOptions{
		Capacity:      cfg.RateLimit.Capacity,
		RefillPerSec:  cfg.RateLimit.RefillPerSec,
		IdleTTL:       cfg.RateLimit.IdleTTL(),
		SweepInterval: cfg.RateLimit.SweepInterval(),
	})
	defer local.Close()

	providers := []ratelimit.Provider{local}
	var redisLimiter *ratelimit.RedisLimiter
	if cfg.RateLimit.Redis.Enabled {
		redisLimiter = ratelimit.NewRedisLimiter(ratelimit.RedisLimiterOptions{
			Addr:         cfg.RateLimit.Redis.Addr,
			Capacity:     cfg.RateLimit.Capacity,
			RefillPerSec: cfg.RateLimit.RefillPerSec,
			IdleTTL:      cfg.RateLimit.IdleTTL(),
		})
		defer redisLimiter.Close()
		providers = append(providers, redisLimiter)
	}
	limits := ratelimit.NewResolver(providers...)
	limits.SetFailOpen(cfg.RateLimit.FailOpen)
	logging.Infof("Rate limiting with providers %v (fail_open=%v)", limits.ProviderNames(), cfg.RateLimit.FailOpen)

	queue := admission.NewQueue(admission.QueueOptions{
		MaxQueueDepth:   cfg.Admission.MaxQueueDepth,
		MaxInFlight:     cfg.Admission.MaxInFlight,
		PriorityEnabled: cfg.Admission.PriorityEnabled,
		StarvationBound: cfg.Admission.StarvationBound,
	})

	tee := backend.NewPhalaBackend(backend.PhalaBackendOptions{
		Endpoint:     creds.Endpoint,
		APIKey:       creds.APIKey,
		DefaultModel: cfg.Backend.Model,
	})

	dispatchCtx, dispatchCancel := context.WithCancel(context.Background())
	defer dispatchCancel()
	dispatcher := dispatch.New(queue, tee, dispatch.Options{
		Workers:    cfg.Admission.Workers(),
		MaxRetries: cfg.Backend.MaxRetries,
		Backoff:    cfg.Backend.RetryBackoff(),
	})
	dispatcher.Start(dispatchCtx)

	svc := server.NewInquiryServer(cfg, identity.NewResolver(), limits, queue)
	srv := server.New(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port), svc)

	var metricsSrv *http.Server
	if cfg.Server.MetricsPort > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.MetricsPort),
			Handler: mux,
		}
		go func() {
			logging.Infof("Metrics listening on %s", metricsSrv.Addr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Errorf("Metrics server error: %v", err)
			}
		}()
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Start() }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case s := <-sig:
		logging.Infof("Received %v, shutting down", s)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	// Stop admitting, cancel queued sessions, and wait for in-flight ones.
	if err := queue.Close(shutdownCtx); err != nil {
		logging.Warnf("Queue drain incomplete: %v", err)
	}
	dispatchCancel()
	dispatcher.Wait()

	// Drain open client streams, falling back to a hard stop at the grace
	// deadline.
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		logging.Warnf("Graceful stop timed out, aborting open streams")
		srv.Stop()
	}

	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	logging.Infof("Gateway stopped")
	return nil
}
