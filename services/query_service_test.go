package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboayman-oss/Sakr-Store/models"
)

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Widget", Description: "A dependable widget", Category: "A", Price: 10},
		{ID: "2", Name: "Gadget", Description: "Shiny gadget", Category: "B", Price: 20, Discount: true, DiscountedPrice: 15},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestQueryDiscountsCategory(t *testing.T) {
	results := QueryProducts(testCatalog(), models.FilterParams{
		Category: models.CategoryDiscounts,
		Sort:     models.SortDefault,
	})
	assert.Equal(t, []string{"2"}, ids(results))
}

func TestQuerySortByEffectivePrice(t *testing.T) {
	desc := QueryProducts(testCatalog(), models.FilterParams{Category: models.CategoryAll, Sort: models.SortPriceDesc})
	asc := QueryProducts(testCatalog(), models.FilterParams{Category: models.CategoryAll, Sort: models.SortPriceAsc})

	assert.Equal(t, []string{"2", "1"}, ids(desc))
	assert.Equal(t, []string{"1", "2"}, ids(asc))
}

func TestQueryDefaultSortPreservesCatalogOrder(t *testing.T) {
	catalog := []models.Product{
		{ID: "a", Price: 5},
		{ID: "b", Price: 5},
		{ID: "c", Price: 5},
	}
	results := QueryProducts(catalog, models.FilterParams{})
	assert.Equal(t, []string{"a", "b", "c"}, ids(results))
}

func TestQuerySortIsStableForEqualPrices(t *testing.T) {
	catalog := []models.Product{
		{ID: "a", Price: 5},
		{ID: "b", Price: 5},
		{ID: "c", Price: 1},
	}
	results := QueryProducts(catalog, models.FilterParams{Sort: models.SortPriceAsc})
	assert.Equal(t, []string{"c", "a", "b"}, ids(results))
}

func TestQuerySearchIsCaseInsensitiveOverNameAndDescription(t *testing.T) {
	byName := QueryProducts(testCatalog(), models.FilterParams{Search: "wIdGeT"})
	byDescription := QueryProducts(testCatalog(), models.FilterParams{Search: "SHINY"})

	assert.Equal(t, []string{"1"}, ids(byName))
	assert.Equal(t, []string{"2"}, ids(byDescription))
}

func TestQueryWhitespaceSearchIsNoOp(t *testing.T) {
	results := QueryProducts(testCatalog(), models.FilterParams{Search: "   "})
	assert.Equal(t, []string{"1", "2"}, ids(results))
}

func TestQueryCategoryExactMatchIsCaseInsensitive(t *testing.T) {
	results := QueryProducts(testCatalog(), models.FilterParams{Category: "a"})
	assert.Equal(t, []string{"1"}, ids(results))
}

func TestQueryPriceCeilingUsesEffectivePrice(t *testing.T) {
	ceiling := 15.0
	results := QueryProducts(testCatalog(), models.FilterParams{MaxPrice: &ceiling})
	// Product 2 lists at 20 but discounts to 15, so it survives.
	assert.Equal(t, []string{"1", "2"}, ids(results))

	ceiling = 12.0
	results = QueryProducts(testCatalog(), models.FilterParams{MaxPrice: &ceiling})
	assert.Equal(t, []string{"1"}, ids(results))
}

func TestQueryZeroCeilingHidesEverythingPriced(t *testing.T) {
	ceiling := 0.0
	results := QueryProducts(testCatalog(), models.FilterParams{MaxPrice: &ceiling})
	assert.Empty(t, results)
}

func TestQueryEmptyResultIsNotAnError(t *testing.T) {
	results := QueryProducts(testCatalog(), models.FilterParams{Search: "no such product"})
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestDefaultCeilingFollowsCategorySubset(t *testing.T) {
	catalog := testCatalog()

	// Category B's only product discounts to 15.
	assert.Equal(t, 15.0, DefaultCeiling(catalog, "B"))
	assert.Equal(t, 10.0, DefaultCeiling(catalog, "A"))
	assert.Equal(t, 15.0, DefaultCeiling(catalog, models.CategoryAll))
}

func TestDefaultCeilingEmptySubsetIsZeroNotNil(t *testing.T) {
	// Legacy behavior kept on purpose: an empty category subset pins
	// the ceiling at 0 and hides every priced product, rather than
	// lifting the ceiling. Flagged here, not fixed.
	catalog := testCatalog()
	ceiling := DefaultCeiling(catalog, "no-such-category")
	assert.Equal(t, 0.0, ceiling)

	results := QueryProducts(catalog, models.FilterParams{MaxPrice: &ceiling})
	assert.Empty(t, results)
}

func TestCategoryFacetSkipsUncategorized(t *testing.T) {
	catalog := append(testCatalog(),
		models.Product{ID: "3", Name: "Mystery"},            // no category
		models.Product{ID: "4", Name: "Dup", Category: "a"}, // case-duplicate of A
	)
	assert.Equal(t, []string{"A", "B"}, CategoryFacet(catalog))
}

func TestPriceRange(t *testing.T) {
	r := PriceRange(testCatalog())
	assert.Equal(t, 10.0, r.Min)
	assert.Equal(t, 15.0, r.Max)

	assert.Equal(t, models.PriceRangeData{}, PriceRange(nil))
}
