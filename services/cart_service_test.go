package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboayman-oss/Sakr-Store/kvstore"
	"github.com/aboayman-oss/Sakr-Store/models"
)

// flakyStore wraps a memory store so tests can make writes fail.
type flakyStore struct {
	kvstore.Store
	failWrites bool
}

var errWriteRejected = errors.New("quota exceeded")

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	if s.failWrites {
		return errWriteRejected
	}
	return s.Store.Set(ctx, key, value)
}

func newTestCart(t *testing.T) (*CartService, *flakyStore) {
	t.Helper()
	store := &flakyStore{Store: kvstore.NewMemoryStore()}
	return NewCartService(store), store
}

func TestAddIsCumulative(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	_, err := svc.Add(ctx, "1")
	require.NoError(t, err)
	cart, err := svc.Add(ctx, "1")
	require.NoError(t, err)

	assert.Equal(t, models.Cart{"1": 2}, cart)
	assert.Equal(t, models.Cart{"1": 2}, svc.Get(ctx))
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()

	viaSet, _ := newTestCart(t)
	_, err := viaSet.Add(ctx, "1")
	require.NoError(t, err)
	_, err = viaSet.Add(ctx, "2")
	require.NoError(t, err)
	_, err = viaSet.SetQuantity(ctx, "1", 0)
	require.NoError(t, err)

	viaRemove, _ := newTestCart(t)
	_, err = viaRemove.Add(ctx, "1")
	require.NoError(t, err)
	_, err = viaRemove.Add(ctx, "2")
	require.NoError(t, err)
	_, err = viaRemove.Remove(ctx, "1")
	require.NoError(t, err)

	assert.Equal(t, viaRemove.Get(ctx), viaSet.Get(ctx))
	assert.Equal(t, models.Cart{"2": 1}, viaSet.Get(ctx))
}

func TestSetQuantityIsAbsolute(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	_, err := svc.SetQuantity(ctx, "1", 3)
	require.NoError(t, err)
	cart, err := svc.SetQuantity(ctx, "1", 3)
	require.NoError(t, err)

	// Idempotent: repeating the same set leaves identical state.
	assert.Equal(t, models.Cart{"1": 3}, cart)
}

func TestRemoveDeletesWholeEntry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	_, err := svc.SetQuantity(ctx, "1", 5)
	require.NoError(t, err)
	cart, err := svc.Remove(ctx, "1")
	require.NoError(t, err)

	assert.Equal(t, models.Cart{}, cart)
}

func TestClearDeletesPersistedKey(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{Store: kvstore.NewMemoryStore()}
	svc := NewCartService(store)

	_, err := svc.Add(ctx, "1")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	_, err = store.Get(ctx, "cart")
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
	assert.Equal(t, models.Cart{}, svc.Get(ctx))
}

func TestTotalItemCount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	assert.Equal(t, 0, svc.TotalItemCount(ctx))

	_, err := svc.SetQuantity(ctx, "1", 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "2")
	require.NoError(t, err)

	assert.Equal(t, 3, svc.TotalItemCount(ctx))
}

func TestFailedWriteMeansAddDidNotHappen(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestCart(t)

	_, err := svc.Add(ctx, "1")
	require.NoError(t, err)

	store.failWrites = true
	cart, err := svc.Add(ctx, "1")
	assert.ErrorIs(t, err, errWriteRejected)
	// The returned state and the persisted state both show the add
	// was discarded.
	assert.Equal(t, models.Cart{"1": 1}, cart)

	store.failWrites = false
	assert.Equal(t, models.Cart{"1": 1}, svc.Get(ctx))
}

func TestGetNormalizesLegacyArrayForm(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{Store: kvstore.NewMemoryStore()}
	require.NoError(t, store.Set(ctx, "cart", `["1","1","2"]`))

	svc := NewCartService(store)
	assert.Equal(t, models.Cart{"1": 2, "2": 1}, svc.Get(ctx))
}

func TestGetFailSoftOnCorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{Store: kvstore.NewMemoryStore()}
	require.NoError(t, store.Set(ctx, "cart", `{broken`))

	svc := NewCartService(store)
	assert.Equal(t, models.Cart{}, svc.Get(ctx))
}

func TestThemeDefaultsAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestCart(t)

	assert.Equal(t, models.ThemeLight, svc.Theme(ctx))

	require.NoError(t, svc.SetTheme(ctx, models.ThemeDark))
	assert.Equal(t, models.ThemeDark, svc.Theme(ctx))

	assert.Error(t, svc.SetTheme(ctx, "sepia"))

	// Corrupt stored value falls back to light.
	require.NoError(t, store.Set(ctx, "theme", "neon"))
	assert.Equal(t, models.ThemeLight, svc.Theme(ctx))
}
