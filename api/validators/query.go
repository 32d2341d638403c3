package validators

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danielavega/shopfront-backend/internal/catalog"
	"github.com/danielavega/shopfront-backend/pkg/enums"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
)

// ParseFilterState builds a catalog filter from query parameters, starting from
// the default state so that omitted parameters keep their defaults.
//
//	q          free-text search
//	category   facet value, "All" for no filter
//	brand      facet value, "All" for no filter
//	price_min  inclusive lower bound
//	price_max  inclusive upper bound
//	sort       name | price-low | price-high | rating | newest
func ParseFilterState(r *http.Request) (catalog.FilterState, error) {
	filter := catalog.DefaultFilterState()
	query := r.URL.Query()

	if q := strings.TrimSpace(query.Get("q")); q != "" {
		filter.Search = q
	}
	if category := strings.TrimSpace(query.Get("category")); category != "" {
		filter.Category = category
	}
	if brand := strings.TrimSpace(query.Get("brand")); brand != "" {
		filter.Brand = brand
	}

	// An inverted range (price_min above price_max) is allowed through; the
	// query engine simply matches nothing.
	var err *pkgerrors.Error
	if filter.PriceMin, err = parseQueryPrice(query.Get("price_min"), filter.PriceMin); err != nil {
		return catalog.FilterState{}, err.WithDetails(map[string]any{"field": "price_min"})
	}
	if filter.PriceMax, err = parseQueryPrice(query.Get("price_max"), filter.PriceMax); err != nil {
		return catalog.FilterState{}, err.WithDetails(map[string]any{"field": "price_max"})
	}

	if raw := strings.TrimSpace(query.Get("sort")); raw != "" {
		sort, err := enums.ParseSortOption(raw)
		if err != nil {
			return catalog.FilterState{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort option").WithDetails(map[string]any{"field": "sort"})
		}
		filter.Sort = sort
	}

	return filter, nil
}

func parseQueryPrice(raw string, defaultVal decimal.Decimal) (decimal.Decimal, *pkgerrors.Error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultVal, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "price bound must be numeric")
	}
	if value.IsNegative() {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "price bound cannot be negative")
	}
	return value, nil
}
