// Add command for the stacks CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	addTitle    string
	addAuthor   string
	addCategory string
	addQuantity int64
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		requireSession()

		store, collection := loadCollection()

		book, err := collection.Add(addTitle, addAuthor, addCategory, addQuantity)
		if err != nil {
			if isValidation(err) {
				fmt.Fprintln(os.Stderr, "add:", err)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}

		saveCollection(store, collection)

		if flagJSON {
			printJSON(book)
		} else {
			fmt.Printf("Added book %d: %s by %s\n", book.ID, book.Title, book.Author)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "book title (required)")
	addCmd.Flags().StringVar(&addAuthor, "author", "", "book author (required)")
	addCmd.Flags().StringVar(&addCategory, "category", "General", "book category")
	addCmd.Flags().Int64Var(&addQuantity, "quantity", 0, "copies on the shelf")

	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("author")
}
