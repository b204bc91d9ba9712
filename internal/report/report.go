// Package report provides the read-only query operations over a collection:
// search by title or author, and counts grouped by category. Every function
// is a pure function of the collection passed in; nothing here touches
// storage.
package report

import (
	"strings"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

// Search returns the books whose title or author contains term as a
// case-insensitive substring, in original collection order. An empty term
// matches every book. A miss returns an empty slice, never an error.
func Search(c types.Collection, term string) []types.Book {
	needle := strings.ToLower(term)
	matches := make([]types.Book, 0)
	for _, b := range c {
		if strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) {
			matches = append(matches, b)
		}
	}
	return matches
}

// CategoryCount is one row of a category report.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryReport holds book counts grouped by exact category value.
// Categories preserves first-seen order so display output is reproducible
// for a given collection order.
type CategoryReport struct {
	Counts     map[string]int
	Categories []string
}

// Rows returns the report as CategoryCount rows in first-seen order.
func (r *CategoryReport) Rows() []CategoryCount {
	rows := make([]CategoryCount, 0, len(r.Categories))
	for _, cat := range r.Categories {
		rows = append(rows, CategoryCount{Category: cat, Count: r.Counts[cat]})
	}
	return rows
}

// CountByCategory groups the collection by category and counts occurrences.
// Categories with no records are absent from the report.
func CountByCategory(c types.Collection) *CategoryReport {
	r := &CategoryReport{Counts: make(map[string]int)}
	for _, b := range c {
		if _, seen := r.Counts[b.Category]; !seen {
			r.Categories = append(r.Categories, b.Category)
		}
		r.Counts[b.Category]++
	}
	return r
}
