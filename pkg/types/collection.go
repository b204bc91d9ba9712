package types

import "strings"

// Collection is the in-memory ordered set of Book records for one session.
// It marshals as a flat JSON array, which is exactly the on-disk layout of
// the record store. IDs are unique across the collection at all times.
type Collection []Book

// Add assigns the next free ID (max existing ID + 1, starting at 1),
// appends the record, and returns a copy of it. Title and author are
// required; quantity must not be negative. IDs are never reused within a
// session, though the highest ID can be reclaimed after a delete followed
// by a restart.
func (c *Collection) Add(title, author, category string, quantity int64) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(author) == "" {
		return nil, ErrEmptyAuthor
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	b := Book{
		ID:       c.nextID(),
		Title:    title,
		Author:   author,
		Category: category,
		Quantity: quantity,
	}
	*c = append(*c, b)
	return &b, nil
}

// Update applies the present fields of patch to the record with the given
// ID and returns a copy of the result. Returns ErrNotFound if no record has
// that ID. Validation runs before any field is applied.
func (c Collection) Update(id int64, patch BookPatch) (*Book, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	for i := range c {
		if c[i].ID == id {
			patch.apply(&c[i])
			b := c[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the record with the given ID, preserving the order of the
// remaining records. Returns ErrNotFound if no record has that ID.
func (c *Collection) Delete(id int64) error {
	for i := range *c {
		if (*c)[i].ID == id {
			*c = append((*c)[:i], (*c)[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Get returns a copy of the record with the given ID, or ErrNotFound.
func (c Collection) Get(id int64) (*Book, error) {
	for i := range c {
		if c[i].ID == id {
			b := c[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

// Books returns all records in insertion order. The returned slice is a
// copy; mutating it does not affect the collection.
func (c Collection) Books() []Book {
	out := make([]Book, len(c))
	copy(out, c)
	return out
}

// nextID returns max existing ID + 1, or 1 for an empty collection.
func (c Collection) nextID() int64 {
	var max int64
	for i := range c {
		if c[i].ID > max {
			max = c[i].ID
		}
	}
	return max + 1
}
