package models

import "fmt"

// SortBy selects the ordering of study group listings.
type SortBy string

const (
	// SortByNone keeps the store's natural order.
	SortByNone SortBy = "None"
	// SortByOldest orders ascending by creation timestamp.
	SortByOldest SortBy = "Oldest"
	// SortByNewest orders descending by creation timestamp.
	SortByNewest SortBy = "Newest"
)

// ParseSortBy converts the sortBy query value into a SortBy. The empty string
// means no explicit ordering.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortByNone, SortByOldest, SortByNewest:
		return SortBy(s), nil
	case "":
		return SortByNone, nil
	}
	return "", fmt.Errorf("unknown sortBy %q", s)
}
