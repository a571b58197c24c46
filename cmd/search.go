// file: cmd/search.go
// version: 1.0.0
// guid: 6d2a9f48-3e7b-4c15-a082-f9c4b1d6e357

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thriftpick/thriftpick/internal/console"
)

var searchLimit int

// searchCmd runs a full-text query against an in-memory index of the
// catalog, covering names, categories, styles, materials and
// descriptions.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search across the catalog",
	Long: `Search item names, categories, styles, materials and descriptions.
The query is matched with fuzziness, so near-spellings still hit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, strings.Join(args, " "))
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum number of hits")
}

func runSearch(cmd *cobra.Command, query string) error {
	cons := console.New(cmd.OutOrStdout())
	cat := loadCatalog(cons)

	index, err := cat.NewSearchIndex()
	if err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}
	defer index.Close()

	hits, err := index.Search(query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(hits) == 0 {
		cons.Warningf("No items matched %q.", query)
		return nil
	}

	cons.Successf("Found %d items for %q", len(hits), query)
	for i, hit := range hits {
		cons.Printf("\n[Hit #%d, score %.2f]\n", i+1, hit.Score)
		cons.ItemCard(hit.Item)
	}
	return nil
}
