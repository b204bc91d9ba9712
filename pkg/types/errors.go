package types

import (
	"errors"
	"fmt"
)

// Error categories surfaced to the CLI. ErrValidation and ErrNotFound are
// session errors; ErrCorruptStore at startup is fatal because no valid
// collection exists to operate on.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("book not found")
	ErrCorruptStore = errors.New("book store is corrupt")
)

// Specific validation failures. Each wraps ErrValidation so callers can
// match the category with errors.Is.
var (
	ErrEmptyTitle       = fmt.Errorf("%w: title must not be empty", ErrValidation)
	ErrEmptyAuthor      = fmt.Errorf("%w: author must not be empty", ErrValidation)
	ErrNegativeQuantity = fmt.Errorf("%w: quantity must not be negative", ErrValidation)
)

// Config validation errors.
var (
	ErrUsernameEmpty = errors.New("username must not be empty")
	ErrPasswordEmpty = errors.New("password must not be empty")
)
