package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [feature]",
	Short: "Fetch sample code for an add-on feature",
	Long: `Fetches the most relevant code snippet for a named add-on feature
from the official samples repository. Without arguments, lists the
supported features.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	if len(args) == 0 {
		features := queryService.SampleFeatures()
		cmd.Printf("Supported features: %s\n", strings.Join(features, ", "))
		return nil
	}

	snippet, err := queryService.Sample(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("fetching sample: %w", err)
	}

	cmd.Println(snippet)
	return nil
}
