// file: cmd/random.go
// version: 1.0.0
// guid: 1f8c3d52-7a9e-4b04-8c6f-d3b5e0a27491

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/thriftpick/thriftpick/internal/console"
)

// randomCmd showcases a single randomly chosen item.
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show one random item from the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRandom(cmd)
	},
}

func runRandom(cmd *cobra.Command) error {
	cons := console.New(cmd.OutOrStdout())
	cat := loadCatalog(cons)

	item, ok := cat.Random()
	if !ok {
		return errors.New("the catalog is empty")
	}

	cons.Section("Random Item Showcase")
	cons.ItemCard(item)
	return nil
}
