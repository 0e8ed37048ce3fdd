// Package pagination slices ordered collections into fixed-size pages.
package pagination

// QuestionsPerPage is the fixed page size for every listing route.
const QuestionsPerPage = 10

// Page returns the 1-indexed page of items. Page numbers below 1 are
// treated as 1. A page past the end of the collection yields an empty
// slice, not an error; the caller decides what exhaustion means.
func Page[T any](page int, items []T) []T {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return nil
	}
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
