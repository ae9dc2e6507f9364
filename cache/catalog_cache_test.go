package catalog_cache

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboayman-oss/Sakr-Store/models"
)

func TestFetchMemoizesFirstSuccess(t *testing.T) {
	calls := 0
	cache := New(func(ctx context.Context) ([]models.Product, error) {
		calls++
		return []models.Product{{ID: "1", Name: "Widget"}}, nil
	})

	ctx := context.Background()
	first, err := cache.Fetch(ctx)
	require.NoError(t, err)
	second, err := cache.Fetch(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second Fetch must hit the cache")
	assert.Equal(t, first, second)
	assert.Len(t, first, 1)
}

func TestFetchDoesNotMemoizeFailure(t *testing.T) {
	calls := 0
	cache := New(func(ctx context.Context) ([]models.Product, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("source down")
		}
		return []models.Product{{ID: "1"}}, nil
	})

	ctx := context.Background()
	products, err := cache.Fetch(ctx)
	assert.Error(t, err)
	assert.Empty(t, products)

	products, err = cache.Fetch(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 2, calls)
}

func TestHTTPSourceDecodesCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Widget","price":5},{"id":"2","name":"Gadget","price":"7.5"}]`))
	}))
	defer srv.Close()

	products, err := HTTPSource(srv.URL, srv.Client())(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, 7.5, products[1].Price)
}

func TestHTTPSourceRejectsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := HTTPSource(srv.URL, srv.Client())(context.Background())
	assert.Error(t, err)
}

func TestHTTPSourceRejectsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	_, err := HTTPSource(srv.URL, srv.Client())(context.Background())
	assert.Error(t, err)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := FileSource("testdata/does-not-exist.json")(context.Background())
	assert.Error(t, err)
}
