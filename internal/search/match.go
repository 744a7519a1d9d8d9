package search

import "strings"

// Fields are the searchable values of one candidate.
type Fields struct {
	Name        string
	CategoryTag string
	AltText     string
}

// Matches reports whether query is a substring of the normalized name,
// category tag or alt text. query is normalized as well, so callers may pass
// raw input.
func Matches(query string, f Fields) bool {
	q := Normalize(query)
	if q == "" {
		return false
	}
	return strings.Contains(Normalize(f.Name), q) ||
		strings.Contains(Normalize(f.CategoryTag), q) ||
		strings.Contains(Normalize(f.AltText), q)
}

// Candidate is anything search can match and display.
type Candidate interface {
	Fields() Fields
}

// Filter returns the candidates matching query in their input order.
func Filter[C Candidate](query string, candidates []C) []C {
	out := make([]C, 0)
	for _, c := range candidates {
		if Matches(query, c.Fields()) {
			out = append(out, c)
		}
	}
	return out
}
