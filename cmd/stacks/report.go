// Report command for the stacks CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Count books by category",
	Long: `Report groups the catalog by exact category value and prints one count
per category, in the order categories first appear in the catalog.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		requireSession()

		_, collection := loadCollection()
		r := report.CountByCategory(collection)

		if flagJSON {
			printJSON(r.Rows())
			return nil
		}

		if len(r.Categories) == 0 {
			fmt.Println("The catalog is empty.")
			return nil
		}
		for _, row := range r.Rows() {
			fmt.Printf("%s: %d\n", row.Category, row.Count)
		}
		return nil
	},
}
