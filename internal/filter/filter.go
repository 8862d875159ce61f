// Package filter implements the search/filter reducer shared by every list view.
package filter

import "strings"

// All is the categorical sentinel that disables a filter.
const All = "all"

// Criterion reports whether a record passes one categorical filter.
type Criterion[T any] func(T) bool

// Eq keeps records whose field equals want. An empty want or All matches
// every record.
func Eq[T any](want string, field func(T) string) Criterion[T] {
	if want == "" || want == All {
		return func(T) bool { return true }
	}
	return func(v T) bool { return field(v) == want }
}

// Where keeps records satisfying pred when enabled is true, and every record
// otherwise.
func Where[T any](enabled bool, pred func(T) bool) Criterion[T] {
	if !enabled {
		return func(T) bool { return true }
	}
	return pred
}

// Apply returns the records, in input order, where query is a
// case-insensitive substring of at least one text field and every criterion
// holds. An empty query matches every record. The result is never nil.
func Apply[T any](items []T, query string, text func(T) []string, criteria ...Criterion[T]) []T {
	out := make([]T, 0, len(items))
	q := strings.ToLower(query)
	for _, it := range items {
		if q != "" && !containsAny(q, text, it) {
			continue
		}
		if !all(criteria, it) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func containsAny[T any](q string, text func(T) []string, v T) bool {
	if text == nil {
		return false
	}
	for _, s := range text(v) {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func all[T any](criteria []Criterion[T], v T) bool {
	for _, c := range criteria {
		if c != nil && !c(v) {
			return false
		}
	}
	return true
}
