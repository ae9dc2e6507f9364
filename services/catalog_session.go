package services

import (
	"context"
	"sync"
	"time"

	catalog_cache "github.com/aboayman-oss/Sakr-Store/cache"
	"github.com/aboayman-oss/Sakr-Store/models"
	"github.com/aboayman-oss/Sakr-Store/utils"
)

// CatalogSession holds one page's transient filter state explicitly,
// instead of the module-level globals the storefront script used. The
// HTTP handlers stay stateless (filter state travels in query params);
// this adapter is for embedded interactive callers that own a view and
// want the debounce policy handled for them. State lives for the
// session, never in the persistent store.
type CatalogSession struct {
	mu        sync.Mutex
	cache     *catalog_cache.CatalogCache
	params    models.FilterParams
	debouncer *utils.Debouncer
	onResults func([]models.Product)
}

// NewCatalogSession starts a session over the given catalog with no
// search, the All category, catalog order, and no ceiling. onResults
// receives every re-query result; debounce <= 0 uses the default
// 250ms quiescence window.
func NewCatalogSession(cache *catalog_cache.CatalogCache, debounce time.Duration, onResults func([]models.Product)) *CatalogSession {
	return &CatalogSession{
		cache: cache,
		params: models.FilterParams{
			Category: models.CategoryAll,
			Sort:     models.SortDefault,
		},
		debouncer: utils.NewDebouncer(debounce),
		onResults: onResults,
	}
}

// SetSearch updates the search term and schedules a debounced
// re-query: a keystroke within the window cancels the pending one and
// restarts the timer.
func (s *CatalogSession) SetSearch(term string) {
	s.mu.Lock()
	s.params.Search = term
	s.mu.Unlock()
	s.debouncer.Trigger(s.requery)
}

// SetCategory switches the category and recalibrates the price ceiling
// to the new subset's maximum effective price, discarding any user
// override. An empty subset pins the ceiling at 0, hiding everything
// until the category changes again (observed behavior, preserved).
// Re-queries immediately.
func (s *CatalogSession) SetCategory(category string) {
	catalog := s.catalog()
	s.mu.Lock()
	s.params.Category = category
	ceiling := DefaultCeiling(catalog, category)
	s.params.MaxPrice = &ceiling
	s.mu.Unlock()
	s.requery()
}

// SetSort changes the sort order and re-queries immediately.
func (s *CatalogSession) SetSort(order models.SortOrder) {
	s.mu.Lock()
	s.params.Sort = order
	s.mu.Unlock()
	s.requery()
}

// SetCeiling applies an explicit user ceiling. It holds until the next
// category change.
func (s *CatalogSession) SetCeiling(max float64) {
	s.mu.Lock()
	s.params.MaxPrice = &max
	s.mu.Unlock()
	s.requery()
}

// Params returns a snapshot of the current filter state.
func (s *CatalogSession) Params() models.FilterParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Results runs the query synchronously with the current filter state.
func (s *CatalogSession) Results() []models.Product {
	s.mu.Lock()
	params := s.params
	s.mu.Unlock()
	return QueryProducts(s.catalog(), params)
}

// Close cancels any pending debounced re-query.
func (s *CatalogSession) Close() {
	s.debouncer.Stop()
}

func (s *CatalogSession) requery() {
	if s.onResults != nil {
		s.onResults(s.Results())
	}
}

func (s *CatalogSession) catalog() []models.Product {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Fetch failure degrades to an empty view; the error surfaced at
	// first load already told the UI to show its notice.
	catalog, _ := s.cache.Fetch(ctx)
	return catalog
}
