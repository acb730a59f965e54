package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/addonkit/expressdocs/internal/core/domain"
	"github.com/addonkit/expressdocs/internal/logger"
)

var modeCmd = &cobra.Command{
	Use:   "mode [github|local]",
	Short: "Show or switch the retrieval mode",
	Long: `Without arguments, prints the current retrieval mode. With an
argument, switches to it. Switching to local loads the pre-built index.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMode,
}

func init() {
	rootCmd.AddCommand(modeCmd)
}

func runMode(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	if len(args) == 0 {
		cmd.Printf("Current mode: %s\n", queryService.Mode())
		return nil
	}

	mode, err := domain.ParseMode(args[0])
	if err != nil {
		return err
	}

	newMode, msg, err := queryService.SetMode(context.Background(), mode)
	if err != nil {
		return fmt.Errorf("switching mode: %w", err)
	}

	// Persist the switch as the startup default.
	if configStore != nil {
		cfg := configStore.Config()
		cfg.DefaultMode = string(newMode)
		if err := configStore.Save(cfg); err != nil {
			logger.Warn("Saving default mode failed: %v", err)
		}
	}

	cmd.Println(msg)
	return nil
}
