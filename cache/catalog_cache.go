package catalog_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aboayman-oss/Sakr-Store/models"
)

// ── Catalog cache ────────────────────────────────────────────────────────────
// The catalog is fetched once per process and memoized; it is read-only
// for the session. Fetch failures are NOT memoized, so a flaky source
// gets retried on the next call instead of poisoning the whole session.

// Source reads the Catalog Source and returns the ordered product list.
type Source func(ctx context.Context) ([]models.Product, error)

type CatalogCache struct {
	mu       sync.RWMutex
	fetch    Source
	products []models.Product
	loaded   bool
}

func New(fetch Source) *CatalogCache {
	return &CatalogCache{fetch: fetch}
}

// Fetch returns the memoized catalog, reading the source on first use.
// On failure it returns an empty sequence plus the error; the caller
// shows a non-fatal notice and life goes on.
func (c *CatalogCache) Fetch(ctx context.Context) ([]models.Product, error) {
	c.mu.RLock()
	if c.loaded {
		defer c.mu.RUnlock()
		return c.products, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.products, nil
	}

	products, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.products = products
	c.loaded = true
	return c.products, nil
}

// Invalidate drops the memoized catalog so the next Fetch re-reads the
// source. Used by tests and the seed tool, not by request handlers.
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = nil
	c.loaded = false
}

// ── Sources ──────────────────────────────────────────────────────────────────

// FileSource reads the catalog from a JSON file on disk.
func FileSource(path string) Source {
	return func(_ context.Context) ([]models.Product, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file: %w", err)
		}
		return decodeCatalog(data)
	}
}

// HTTPSource reads the catalog from a URL. Non-2xx responses are
// treated the same as a network failure.
func HTTPSource(url string, client *http.Client) Source {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return func(ctx context.Context) ([]models.Product, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build catalog request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch catalog: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read catalog response: %w", err)
		}
		return decodeCatalog(data)
	}
}

// SourceFor picks a source by the shape of the configured location:
// http(s) URLs go over the network, anything else is a file path.
func SourceFor(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return HTTPSource(location, nil)
	}
	return FileSource(location)
}

func decodeCatalog(data []byte) ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return products, nil
}

// ── Package-level default instance ───────────────────────────────────────────

var (
	defaultMu    sync.RWMutex
	defaultCache *CatalogCache
)

var errNotConfigured = errors.New("catalog cache not configured")

// Init wires the process-wide catalog cache. Called once from main.
func Init(src Source) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCache = New(src)
}

// Fetch reads through the process-wide cache.
func Fetch(ctx context.Context) ([]models.Product, error) {
	defaultMu.RLock()
	c := defaultCache
	defaultMu.RUnlock()
	if c == nil {
		return nil, errNotConfigured
	}
	return c.Fetch(ctx)
}
