// file: cmd/check.go
// version: 1.0.0
// guid: b5e0c7d9-4f2a-4816-93b6-a8d1f3c5e072

package cmd

import (
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/thriftpick/thriftpick/internal/catalog"
	"github.com/thriftpick/thriftpick/internal/config"
	"github.com/thriftpick/thriftpick/internal/console"
	"github.com/thriftpick/thriftpick/internal/models"
)

// checkCmd validates a catalog file record by record. Unlike the
// interactive session this never falls back to the default inventory:
// a broken file is the whole point of running it.
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a catalog file",
	Long: `Read a catalog file and validate every record, reporting each
violation. Exits non-zero when any record is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.AppConfig.CatalogPath
		if len(args) > 0 {
			path = args[0]
		}
		return runCheck(cmd, path)
	},
}

func runCheck(cmd *cobra.Command, path string) error {
	cons := console.New(cmd.OutOrStdout())

	items, err := catalog.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	cons.Infof("Checking %d records from %s", len(items), path)

	bar := progressbar.Default(int64(len(items)))
	invalid := 0
	for i, item := range items {
		if err := catalog.ValidateItem(item); err != nil {
			cons.Warningf("Record %d (%s): %v", i+1, item.ID, err)
			invalid++
		}
		bar.Add(1)
	}

	printCatalogStats(cons, catalog.New(items, path))

	if invalid > 0 {
		return fmt.Errorf("%d of %d records are invalid", invalid, len(items))
	}
	cons.Successf("All %d records are valid.", len(items))
	return nil
}

// printCatalogStats summarizes the distinct values per attribute, the
// same candidate sets the interactive interview offers.
func printCatalogStats(cons *console.Console, cat *catalog.Catalog) {
	cons.Section("Catalog Statistics")
	for _, attr := range models.AllAttributes {
		if attr.IsRange() {
			continue
		}
		values := cat.DistinctValues(attr)
		cons.Printf("%-10s %2d distinct: %s\n", attr.Label(), len(values), strings.Join(values, ", "))
	}
}
