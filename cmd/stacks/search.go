// Search command for the stacks CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/internal/report"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search books by title or author",
	Long: `Search matches the term case-insensitively as a substring of the title
or the author, in catalog order. An empty term matches every book.

Example:
  stacks search go
  stacks search "a author"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requireSession()

		term := ""
		if len(args) == 1 {
			term = args[0]
		}

		_, collection := loadCollection()
		matches := report.Search(collection, term)

		if flagJSON {
			printJSON(matches)
			return nil
		}

		if len(matches) == 0 {
			fmt.Printf("No books matched %q.\n", term)
			return nil
		}
		for _, b := range matches {
			printBookLine(b)
		}
		return nil
	},
}
