package enums

import "fmt"

// SortOption selects the ordering applied to a filtered product listing.
type SortOption string

const (
	SortByName      SortOption = "name"
	SortPriceLow    SortOption = "price-low"
	SortPriceHigh   SortOption = "price-high"
	SortByRating    SortOption = "rating"
	SortNewestFirst SortOption = "newest"
)

var validSortOptions = []SortOption{
	SortByName,
	SortPriceLow,
	SortPriceHigh,
	SortByRating,
	SortNewestFirst,
}

// String implements fmt.Stringer.
func (s SortOption) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOption.
func (s SortOption) IsValid() bool {
	for _, candidate := range validSortOptions {
		if candidate == s {
			return true
		}
	}
	return false
}

// SortOptions returns every selectable ordering.
func SortOptions() []SortOption {
	out := make([]SortOption, len(validSortOptions))
	copy(out, validSortOptions)
	return out
}

// ParseSortOption converts raw input into a SortOption.
func ParseSortOption(value string) (SortOption, error) {
	for _, candidate := range validSortOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort option %q", value)
}
