package listing

import "strings"

// Search derives a filtered view of items whose title contains term,
// case-insensitively. An empty term returns the full list. The input slice is
// never mutated.
func Search(items []Listing, term string) []Listing {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}
	matched := []Listing{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), term) {
			matched = append(matched, item)
		}
	}
	return matched
}
