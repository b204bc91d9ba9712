package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionAdd(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		author   string
		category string
		quantity int64
		wantErr  error
	}{
		{
			name:     "valid book",
			title:    "Go Basics",
			author:   "A Author",
			category: "Tech",
			quantity: 3,
		},
		{
			name:    "empty title rejected",
			title:   "",
			author:  "A Author",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace title rejected",
			title:   "   ",
			author:  "A Author",
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "empty author rejected",
			title:   "Go Basics",
			author:  "",
			wantErr: ErrEmptyAuthor,
		},
		{
			name:     "negative quantity rejected",
			title:    "Go Basics",
			author:   "A Author",
			quantity: -1,
			wantErr:  ErrNegativeQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Collection{}
			book, err := c.Add(tt.title, tt.author, tt.category, tt.quantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Empty(t, c)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), book.ID)
			assert.Equal(t, tt.title, book.Title)
			assert.Equal(t, tt.author, book.Author)
			assert.Equal(t, tt.category, book.Category)
			assert.Equal(t, tt.quantity, book.Quantity)
			assert.Len(t, c, 1)
		})
	}
}

func TestCollectionAddAssignsUniqueIDs(t *testing.T) {
	c := Collection{}

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		book, err := c.Add("Title", "Author", "General", 0)
		require.NoError(t, err)
		assert.False(t, seen[book.ID], "id %d assigned twice", book.ID)
		seen[book.ID] = true
	}

	assert.Len(t, c.Books(), 5)
}

func TestCollectionAddAfterDelete(t *testing.T) {
	c := Collection{}

	first, err := c.Add("First", "Author", "General", 0)
	require.NoError(t, err)
	second, err := c.Add("Second", "Author", "General", 0)
	require.NoError(t, err)

	// Deleting a lower id must not cause reuse while the higher id lives.
	require.NoError(t, c.Delete(first.ID))
	third, err := c.Add("Third", "Author", "General", 0)
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)
}

func TestCollectionUpdate(t *testing.T) {
	title := "New Title"
	empty := ""
	negative := int64(-2)
	quantity := int64(7)

	tests := []struct {
		name    string
		id      int64
		patch   BookPatch
		wantErr error
		check   func(t *testing.T, b *Book)
	}{
		{
			name:  "patch single field leaves others unchanged",
			id:    1,
			patch: BookPatch{Title: &title},
			check: func(t *testing.T, b *Book) {
				assert.Equal(t, "New Title", b.Title)
				assert.Equal(t, "A Author", b.Author)
				assert.Equal(t, "Tech", b.Category)
			},
		},
		{
			name:  "patch quantity",
			id:    1,
			patch: BookPatch{Quantity: &quantity},
			check: func(t *testing.T, b *Book) {
				assert.Equal(t, int64(7), b.Quantity)
				assert.Equal(t, "Go Basics", b.Title)
			},
		},
		{
			name:    "unknown id",
			id:      99,
			patch:   BookPatch{Title: &title},
			wantErr: ErrNotFound,
		},
		{
			name:    "empty title rejected",
			id:      1,
			patch:   BookPatch{Title: &empty},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "negative quantity rejected",
			id:      1,
			patch:   BookPatch{Quantity: &negative},
			wantErr: ErrNegativeQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Collection{
				{ID: 1, Title: "Go Basics", Author: "A Author", Category: "Tech", Quantity: 2},
			}

			book, err := c.Update(tt.id, tt.patch)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// A failed update never partially mutates.
				assert.Equal(t, "Go Basics", c[0].Title)
				assert.Equal(t, int64(2), c[0].Quantity)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, book.ID)
			tt.check(t, book)
		})
	}
}

func TestCollectionUpdateValidatesBeforeApplying(t *testing.T) {
	c := Collection{
		{ID: 1, Title: "Go Basics", Author: "A Author", Category: "Tech"},
	}

	title := "Changed"
	negative := int64(-1)
	_, err := c.Update(1, BookPatch{Title: &title, Quantity: &negative})

	assert.ErrorIs(t, err, ErrNegativeQuantity)
	assert.Equal(t, "Go Basics", c[0].Title, "valid field applied despite invalid sibling")
}

func TestCollectionDelete(t *testing.T) {
	c := Collection{
		{ID: 1, Title: "First", Author: "A"},
		{ID: 2, Title: "Second", Author: "B"},
		{ID: 3, Title: "Third", Author: "C"},
	}

	require.NoError(t, c.Delete(2))

	books := c.Books()
	require.Len(t, books, 2)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, int64(3), books[1].ID)

	assert.ErrorIs(t, c.Delete(2), ErrNotFound)
}

func TestCollectionDeleteThenUpdate(t *testing.T) {
	c := Collection{
		{ID: 1, Title: "Go Basics", Author: "A Author"},
	}

	require.NoError(t, c.Delete(1))

	title := "New Title"
	_, err := c.Update(1, BookPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionGet(t *testing.T) {
	c := Collection{
		{ID: 1, Title: "Go Basics", Author: "A Author"},
	}

	book, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", book.Title)

	// The copy is detached from the collection.
	book.Title = "Mutated"
	assert.Equal(t, "Go Basics", c[0].Title)

	_, err = c.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionBooksReturnsCopy(t *testing.T) {
	c := Collection{
		{ID: 1, Title: "Go Basics", Author: "A Author"},
	}

	books := c.Books()
	books[0].Title = "Mutated"

	assert.Equal(t, "Go Basics", c[0].Title)
}
