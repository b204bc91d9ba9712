// Update command for the stacks CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

var (
	updateTitle    string
	updateAuthor   string
	updateCategory string
	updateQuantity int64
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a book",
	Long: `Update overwrites only the fields given as flags; everything else is
left unchanged. The id itself is immutable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requireSession()

		id := parseBookID(args[0])

		// Only flags the user actually set become part of the patch, so an
		// explicit empty value is distinguishable from an omitted flag.
		var patch types.BookPatch
		if cmd.Flags().Changed("title") {
			patch.Title = &updateTitle
		}
		if cmd.Flags().Changed("author") {
			patch.Author = &updateAuthor
		}
		if cmd.Flags().Changed("category") {
			patch.Category = &updateCategory
		}
		if cmd.Flags().Changed("quantity") {
			patch.Quantity = &updateQuantity
		}

		if patch.IsZero() {
			fmt.Fprintln(os.Stderr, "update: at least one of --title, --author, --category, --quantity must be provided")
			os.Exit(exitUserError)
		}

		store, collection := loadCollection()

		book, err := collection.Update(id, patch)
		if err != nil {
			if isNotFound(err) {
				fmt.Fprintf(os.Stderr, "book %d not found\n", id)
				os.Exit(exitUserError)
			}
			if isValidation(err) {
				fmt.Fprintln(os.Stderr, "update:", err)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "update:", err)
			os.Exit(exitSysError)
		}

		saveCollection(store, collection)

		if flagJSON {
			printJSON(book)
		} else {
			fmt.Printf("Updated book %d\n", book.ID)
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "set book title")
	updateCmd.Flags().StringVar(&updateAuthor, "author", "", "set book author")
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "set book category")
	updateCmd.Flags().Int64Var(&updateQuantity, "quantity", 0, "set copies on the shelf")
}
