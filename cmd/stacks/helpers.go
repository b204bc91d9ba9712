// Shared helpers for stacks CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mesh-intelligence/stacks/internal/auth"
	"github.com/mesh-intelligence/stacks/internal/jsonstore"
	"github.com/mesh-intelligence/stacks/pkg/types"
)

// requireSession exits with a user error unless a login session is active.
// Called at the top of every data command; login, logout, and version are
// exempt.
func requireSession() {
	if _, err := auth.Current(configDir); err != nil {
		fmt.Fprintln(os.Stderr, "login required (run 'stacks login' first)")
		os.Exit(exitUserError)
	}
}

// openStore resolves the store path and opens the record store.
func openStore() (*jsonstore.Store, error) {
	path, err := resolveStorePath()
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}
	return jsonstore.Open(path).WithLogger(logger), nil
}

// loadCollection opens the store and loads the collection, exiting the
// process on failure. Corrupt-store failures are fatal since no valid
// collection exists to operate on.
func loadCollection() (*jsonstore.Store, types.Collection) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "open store:", err)
		os.Exit(exitSysError)
	}
	collection, err := store.Load()
	if err != nil {
		// Corrupt-store and I/O failures alike leave no collection to work
		// with, so both are system errors.
		fmt.Fprintln(os.Stderr, "load collection:", err)
		os.Exit(exitSysError)
	}
	return store, collection
}

// saveCollection persists the collection, exiting with a system error on
// failure.
func saveCollection(store *jsonstore.Store, c types.Collection) {
	if err := store.Save(c); err != nil {
		fmt.Fprintln(os.Stderr, "save collection:", err)
		os.Exit(exitSysError)
	}
}

// parseBookID parses a book id argument, exiting with a user error when it
// is not a positive integer.
func parseBookID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		fmt.Fprintf(os.Stderr, "invalid book id %q (expected a positive integer)\n", arg)
		os.Exit(exitUserError)
	}
	return id
}

// printJSON writes v as indented JSON, exiting with a system error when
// marshaling fails.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// printBookLine writes the one-line human rendering of a book.
func printBookLine(b types.Book) {
	fmt.Printf("%d | %s by %s (%s) x%d\n", b.ID, b.Title, b.Author, b.Category, b.Quantity)
}

// isValidation returns true if the error wraps ErrValidation.
func isValidation(err error) bool {
	return errors.Is(err, types.ErrValidation)
}

// isNotFound returns true if the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}
