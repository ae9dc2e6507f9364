package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog_cache "github.com/aboayman-oss/Sakr-Store/cache"
	"github.com/aboayman-oss/Sakr-Store/models"
)

type resultRecorder struct {
	mu      sync.Mutex
	batches [][]models.Product
}

func (r *resultRecorder) record(products []models.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, products)
}

func (r *resultRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.batches)
}

func (r *resultRecorder) last() []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.batches) == 0 {
		return nil
	}
	return r.batches[len(r.batches)-1]
}

func sessionFixture(t *testing.T) (*CatalogSession, *resultRecorder) {
	t.Helper()
	cache := catalog_cache.New(func(ctx context.Context) ([]models.Product, error) {
		return testCatalog(), nil
	})
	rec := &resultRecorder{}
	session := NewCatalogSession(cache, 50*time.Millisecond, rec.record)
	t.Cleanup(session.Close)
	return session, rec
}

func TestSessionDebouncesSearchRequeries(t *testing.T) {
	session, rec := sessionFixture(t)

	// Rapid typing: only the final term produces a re-query.
	session.SetSearch("w")
	session.SetSearch("wi")
	session.SetSearch("widget")

	time.Sleep(250 * time.Millisecond)

	require.Equal(t, 1, rec.count())
	results := rec.last()
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].ID)
}

func TestSessionCategoryChangeRecalibratesCeiling(t *testing.T) {
	session, _ := sessionFixture(t)

	session.SetCategory("B")
	params := session.Params()
	require.NotNil(t, params.MaxPrice)
	// B's only product discounts to 15.
	assert.Equal(t, 15.0, *params.MaxPrice)

	results := session.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].ID)
}

func TestSessionEmptyCategoryPinsCeilingAtZero(t *testing.T) {
	session, _ := sessionFixture(t)

	session.SetCategory("no-such-category")
	params := session.Params()
	require.NotNil(t, params.MaxPrice)
	assert.Equal(t, 0.0, *params.MaxPrice)
	assert.Empty(t, session.Results())

	// Switching back recalibrates and products reappear.
	session.SetCategory(models.CategoryAll)
	assert.Len(t, session.Results(), 2)
}

func TestSessionUserCeilingHoldsUntilCategoryChange(t *testing.T) {
	session, _ := sessionFixture(t)

	session.SetCeiling(12)
	require.Len(t, session.Results(), 1)

	session.SetCategory(models.CategoryAll)
	// Category change discards the user override.
	assert.Len(t, session.Results(), 2)
}

func TestSessionSortChangeIsImmediate(t *testing.T) {
	session, rec := sessionFixture(t)

	session.SetSort(models.SortPriceDesc)
	require.GreaterOrEqual(t, rec.count(), 1)

	results := session.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "2", results[0].ID)
}
