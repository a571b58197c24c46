// file: cmd/browse.go
// version: 1.0.0
// guid: 9e4b7a23-5c1d-4f68-b0a9-2d7e8c3f5016

package cmd

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/thriftpick/thriftpick/internal/console"
	"github.com/thriftpick/thriftpick/internal/models"
)

var browseFilter string

// browseCmd lists the inventory as a table without entering the
// interactive session.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List every item in the catalog",
	Long:  `Print the full inventory as a table, optionally narrowed by a fuzzy name filter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd)
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseFilter, "filter", "", "fuzzy name filter, best matches first")
}

func runBrowse(cmd *cobra.Command) error {
	cons := console.New(cmd.OutOrStdout())
	cat := loadCatalog(cons)

	items := cat.Items()
	if browseFilter != "" {
		items = filterByName(items, browseFilter)
	}
	if len(items) == 0 {
		cons.Warningf("No items matched %q.", browseFilter)
		return nil
	}

	cons.BrowseTable(items)
	return nil
}

// filterByName narrows items to fuzzy name matches, closest first.
func filterByName(items []models.Item, pattern string) []models.Item {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(pattern, names)
	sort.Sort(ranks)

	matched := make([]models.Item, 0, len(ranks))
	for _, rank := range ranks {
		matched = append(matched, items[rank.OriginalIndex])
	}
	return matched
}
