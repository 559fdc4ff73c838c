package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordbook/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the word catalogue",
	Long: `Resolves a query against the stored words.
An exact (case-sensitive) match wins outright; otherwise every word
whose name contains the query case-insensitively is listed, and a lone
match is reported as a direct hit.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the resolution as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	res, err := searchService.Resolve(context.Background(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputResolutionJSON(cmd, res)
	}

	return outputResolutionText(cmd, query, res)
}

func outputResolutionJSON(cmd *cobra.Command, res domain.Resolution) error {
	payload := map[string]any{
		"kind": res.Kind.String(),
	}
	if res.Kind == domain.MatchExact {
		payload["word"] = res.Exact
	} else {
		payload["matches"] = res.Matches
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resolution: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResolutionText(cmd *cobra.Command, query string, res domain.Resolution) error {
	// The singleton policy applies here exactly as on the web side: a
	// lone fuzzy hit reads as a direct hit.
	if word, ok := res.Singleton(); ok {
		if res.Kind == domain.MatchExact {
			cmd.Printf("Exact match: %s (%s)\n", word.Name, word.ID)
		} else {
			cmd.Printf("Match: %s (%s)\n", word.Name, word.ID)
		}
		return nil
	}

	if len(res.Matches) == 0 {
		cmd.Printf("No words matched %q.\n", query)
		return nil
	}

	cmd.Printf("Matches for %q:\n", query)
	for i := range res.Matches {
		cmd.Printf("  [%d] %s (%s)\n", i+1, res.Matches[i].Name, res.Matches[i].ID)
	}
	return nil
}
