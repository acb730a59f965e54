package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

var (
	indexAddonsDir   string
	indexSpectrumDir string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the local documentation index",
	Long: `Walks checked-out documentation repositories, segments every
markdown file into knowledge items and writes the flattened collection
to the local index file.

Check out the corpora first:
  git clone https://github.com/AdobeDocs/express-add-ons-docs
  git clone https://github.com/adobe/spectrum-web-components

Then build:
  expressdocs index --addons-dir ./express-add-ons-docs --spectrum-dir ./spectrum-web-components`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexAddonsDir, "addons-dir", "",
		"path to an express-add-ons-docs checkout")
	indexCmd.Flags().StringVar(&indexSpectrumDir, "spectrum-dir", "",
		"path to a spectrum-web-components checkout")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}
	if indexAddonsDir == "" && indexSpectrumDir == "" {
		return errors.New("at least one of --addons-dir or --spectrum-dir is required")
	}

	var corpora []domain.CorpusDir
	if indexAddonsDir != "" {
		corpora = append(corpora, domain.CorpusDir{
			Root:     indexAddonsDir,
			BasePath: "src/pages",
			Source:   domain.DataSourceAddOns,
		})
	}
	if indexSpectrumDir != "" {
		corpora = append(corpora, domain.CorpusDir{
			Root:     indexSpectrumDir,
			BasePath: "packages",
			Source:   domain.DataSourceSpectrum,
		})
	}

	count, err := indexService.Build(context.Background(), corpora)
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	cmd.Printf("Indexed %d items from %d corpora.\n", count, len(corpora))
	return nil
}
