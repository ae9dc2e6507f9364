package services

import (
	"sort"
	"strings"

	"github.com/aboayman-oss/Sakr-Store/models"
)

// ─────────────────────────────────────────────────────────────
// Query engine: pure functions over the catalog. No store access,
// no DOM, no clock. The pipeline order is fixed (search, category,
// ceiling, sort) for parity with the storefront UI; the filters
// themselves commute, so the order matters for readability, not for
// the result set.
// ─────────────────────────────────────────────────────────────

// QueryProducts runs the full filter/sort pipeline for one view.
func QueryProducts(catalog []models.Product, params models.FilterParams) []models.Product {
	results := make([]models.Product, 0, len(catalog))

	term := strings.ToLower(strings.TrimSpace(params.Search))
	for _, p := range catalog {
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		if !matchesCategory(p, params.Category) {
			continue
		}
		if params.MaxPrice != nil && p.EffectivePrice() > *params.MaxPrice {
			continue
		}
		results = append(results, p)
	}

	switch params.Sort {
	case models.SortPriceAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].EffectivePrice() < results[j].EffectivePrice()
		})
	case models.SortPriceDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].EffectivePrice() > results[j].EffectivePrice()
		})
	default:
		// catalog order, untouched
	}

	return results
}

func matchesSearch(p models.Product, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(p.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(p.Description), lowerTerm)
}

func matchesCategory(p models.Product, category string) bool {
	switch category {
	case "", models.CategoryAll:
		return true
	case models.CategoryDiscounts:
		return p.Discount
	default:
		return strings.EqualFold(p.Category, category)
	}
}

// DefaultCeiling is the price ceiling the UI calibrates its slider to
// when the category changes: the maximum effective price among the
// products that survive the category filter alone. An empty subset
// yields 0, which filters everything out until the category changes
// again. That is the observed storefront behavior, kept as is.
func DefaultCeiling(catalog []models.Product, category string) float64 {
	max := 0.0
	for _, p := range catalog {
		if !matchesCategory(p, category) {
			continue
		}
		if price := p.EffectivePrice(); price > max {
			max = price
		}
	}
	return max
}

// CategoryFacet lists the distinct product categories in catalog
// order. Uncategorized products contribute nothing; the reserved
// All/Discounts values are the UI's to prepend, not real categories.
func CategoryFacet(catalog []models.Product) []string {
	seen := make(map[string]bool)
	facet := make([]string, 0)
	for _, p := range catalog {
		if p.Category == "" {
			continue
		}
		key := strings.ToLower(p.Category)
		if seen[key] {
			continue
		}
		seen[key] = true
		facet = append(facet, p.Category)
	}
	return facet
}

// PriceRange is the min/max effective price over the catalog, 0/0 for
// an empty catalog.
func PriceRange(catalog []models.Product) models.PriceRangeData {
	if len(catalog) == 0 {
		return models.PriceRangeData{}
	}
	r := models.PriceRangeData{Min: catalog[0].EffectivePrice(), Max: catalog[0].EffectivePrice()}
	for _, p := range catalog[1:] {
		price := p.EffectivePrice()
		if price < r.Min {
			r.Min = price
		}
		if price > r.Max {
			r.Max = price
		}
	}
	return r
}
