package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loyal-labs/loyal-backend/pkg/config"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Parse(configPath)
			if err != nil {
				return err
			}
			fmt.Printf("Config OK: listening on %s:%d, queue_depth=%d, in_flight=%d\n",
				cfg.Server.Host, cfg.Server.Port, cfg.Admission.MaxQueueDepth, cfg.Admission.MaxInFlight)
			return nil
		},
	})
	return cmd
}
