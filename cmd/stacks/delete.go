// Delete command for the stacks CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a book from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requireSession()

		id := parseBookID(args[0])

		store, collection := loadCollection()

		if err := collection.Delete(id); err != nil {
			if isNotFound(err) {
				fmt.Fprintf(os.Stderr, "book %d not found\n", id)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}

		saveCollection(store, collection)

		fmt.Printf("Deleted book %d\n", id)
		return nil
	},
}
