package models

// Reserved category values understood by the storefront filter.
const (
	CategoryAll       = "All"       // no category restriction
	CategoryDiscounts = "Discounts" // only products with the discount flag
)

// SortOrder selects how query results are ordered.
type SortOrder string

const (
	SortDefault   SortOrder = "default" // catalog order, untouched
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// ParseSortOrder maps a raw query value onto a known sort order,
// falling back to catalog order for anything unrecognized.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortPriceAsc, SortPriceDesc:
		return SortOrder(s)
	default:
		return SortDefault
	}
}

// FilterParams is the transient filter state for one query run. It
// lives for a page (or request), never in the persistent store.
type FilterParams struct {
	Search   string
	Category string
	Sort     SortOrder
	// MaxPrice is the price ceiling; nil means no ceiling. Note that a
	// ceiling of 0 is a real value and filters out every priced product.
	MaxPrice *float64
}

// FilterMetadata feeds the storefront filter controls: the category
// facet, the catalog price range, and the default ceiling for the
// currently selected category.
type FilterMetadata struct {
	Categories     []string       `json:"categories"`
	PriceRange     PriceRangeData `json:"priceRange"`
	DefaultCeiling float64        `json:"defaultCeiling"`
}

// PriceRangeData is the min/max effective price over a product set.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
