// Package types defines the Book entity, the in-memory Collection and its
// CRUD operations, the Config type, and the standard error values shared by
// the stacks record store and CLI.
package types
