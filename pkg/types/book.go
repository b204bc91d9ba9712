package types

import "strings"

// Book represents one catalog item. IDs are assigned by Collection.Add and
// are immutable for the record's lifetime.
type Book struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Quantity int64  `json:"quantity,omitempty"`
}

// BookPatch carries optional field updates for Collection.Update. Only
// non-nil fields overwrite the stored value; the ID is never patchable.
type BookPatch struct {
	Title    *string
	Author   *string
	Category *string
	Quantity *int64
}

// Validate checks every present field before any of them is applied, so a
// failed update never partially mutates a record.
func (p BookPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.Author != nil && strings.TrimSpace(*p.Author) == "" {
		return ErrEmptyAuthor
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// IsZero reports whether the patch carries no fields.
func (p BookPatch) IsZero() bool {
	return p.Title == nil && p.Author == nil && p.Category == nil && p.Quantity == nil
}

// apply overwrites the present fields on b. Callers must Validate first.
func (p BookPatch) apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Quantity != nil {
		b.Quantity = *p.Quantity
	}
}
