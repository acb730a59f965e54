// Package cli implements the expressdocs command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/addonkit/expressdocs/internal/adapters/driven/config/file"
	storagefile "github.com/addonkit/expressdocs/internal/adapters/driven/storage/file"
	"github.com/addonkit/expressdocs/internal/adapters/driven/storage/memory"
	"github.com/addonkit/expressdocs/internal/connectors/github"
	"github.com/addonkit/expressdocs/internal/core/domain"
	"github.com/addonkit/expressdocs/internal/core/ports/driving"
	"github.com/addonkit/expressdocs/internal/core/services"
	"github.com/addonkit/expressdocs/internal/indexer"
	"github.com/addonkit/expressdocs/internal/logger"
)

var version = "0.1.0"

// Services wired at startup and shared by all commands. Tests swap
// these for mocks.
var (
	queryService driving.QueryService
	indexService driving.IndexService
	configStore  *configfile.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "expressdocs",
	Short: "Documentation server for Adobe Express add-ons",
	Long: `expressdocs answers questions about the Adobe Express add-on SDK
and Spectrum Web Components, either by searching GitHub live or from a
pre-built local index. It runs as a CLI or as an MCP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// initServices wires the default adapters into the core services.
// Idempotent so tests can pre-populate the package vars.
func initServices() error {
	if queryService != nil && indexService != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	indexStore, err := storagefile.NewIndexStore(cfg.Config().IndexPath)
	if err != nil {
		return fmt.Errorf("opening index store: %w", err)
	}

	client := github.NewClient(context.Background(), cfg.GitHubToken())
	searcher := github.NewSearcher(client)

	mode := domain.ModeGitHub
	if parsed, err := domain.ParseMode(cfg.Config().DefaultMode); err == nil {
		mode = parsed
	}

	queryService = services.NewQueryService(mode, memory.NewKnowledgeStore(), indexStore, searcher)
	indexService = indexer.New(indexStore)
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
