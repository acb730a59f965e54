package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/addonkit/expressdocs/internal/core/domain"
)

var (
	searchSource string
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the documentation",
	Long: `Answers a documentation query using the current retrieval mode.
In github mode the two documentation repositories are searched live; in
local mode the pre-built index is scored in memory.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchSource, "source", "s", "",
		"corpus hint (express-add-ons-docs or spectrum-web-components)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if queryService == nil {
		return errors.New("query service not configured")
	}

	ctx := context.Background()
	opts := domain.QueryOptions{
		Source: searchSource,
	}

	resp, err := queryService.Query(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if searchJSON {
		return outputQueryJSON(cmd, resp)
	}

	return outputQueryTable(cmd, resp)
}

func outputQueryJSON(cmd *cobra.Command, resp *domain.QueryResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryTable(cmd *cobra.Command, resp *domain.QueryResponse) error {
	cmd.Printf("%s (mode %s, confidence %.2f)\n", resp.Summary, resp.ModeUsed, resp.Confidence)
	cmd.Println()

	for i := range resp.Results {
		item := &resp.Results[i]

		cmd.Printf("  [%d] %s (%s)\n", i+1, item.Title, item.Kind)
		if item.SourceHint != "" {
			cmd.Printf("      Source: %s\n", item.SourceHint)
		}
		if len(item.Tags) > 0 {
			cmd.Printf("      Tags: %v\n", item.Tags)
		}
		cmd.Printf("      %s\n", firstLines(item.Content, 3))
		cmd.Println()
	}

	return nil
}

// firstLines returns at most n lines of s, with a trailing marker when
// truncated.
func firstLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + " ..."
}
