// Package content holds the small helpers shared by every site entity:
// required-field checks, free-text matching and slugs.
package content

import (
	"regexp"
	"strings"
)

type Field struct {
	Name  string
	Value string
}

// Missing returns the names of the fields whose value is blank.
func Missing(fields ...Field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// MatchesQuery is a case-insensitive substring match of query against any of
// values. An empty query matches everything.
func MatchesQuery(query string, values ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9 -]`)
	slugSpaces       = regexp.MustCompile(`\s+`)
	slugDashes       = regexp.MustCompile(`-+`)
)

// Slugify lowercases title, drops everything but letters, digits, spaces and
// dashes, then joins words with single dashes.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(strings.TrimSpace(s), "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CleanLines trims every entry and drops the blank ones.
func CleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// CloneSlice copies in. The result is never nil, so an emptied list is
// stored and served as [] rather than null.
func CloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func CloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func CloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Identified is implemented by nested items inside singleton documents.
type Identified interface {
	GetID() string
}

func IndexByID[T Identified](items []T, id string) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// RemoveByID returns a new slice without the item and whether it was found.
func RemoveByID[T Identified](items []T, id string) ([]T, bool) {
	i := IndexByID(items, id)
	if i < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(append(out, items[:i]...), items[i+1:]...)
	return out, true
}
