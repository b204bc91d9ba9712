// List command for the stacks CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		requireSession()

		_, collection := loadCollection()
		books := collection.Books()

		if flagJSON {
			printJSON(books)
			return nil
		}

		if len(books) == 0 {
			fmt.Println("The catalog is empty.")
			return nil
		}
		for _, b := range books {
			printBookLine(b)
		}
		return nil
	},
}
