package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loyal-labs/loyal-backend/cmd/gateway/commands"
	"github.com/loyal-labs/loyal-backend/pkg/observability/logging"
)

var (
	// Version information (set by build flags)
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	// Initialize logging
	if _, err := logging.InitLoggerFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
	}

	rootCmd := &cobra.Command{
		Use:   "gateway",
		Short: "Loyal inquiry gateway",
		Long: `gateway is the permissionless LLM inquiry gateway.

It accepts inquiries over gRPC, rate-limits them per anonymous client
surrogate, queues them for fair admission, and relays the TEE backend's
streamed output back to the caller.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	}

	rootCmd.PersistentFlags().StringP("config", "c", "config/config.yaml", "Path to configuration file")

	rootCmd.AddCommand(commands.NewServeCmd())
	rootCmd.AddCommand(commands.NewConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
