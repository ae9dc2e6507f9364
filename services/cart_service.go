package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aboayman-oss/Sakr-Store/kvstore"
	"github.com/aboayman-oss/Sakr-Store/models"
)

const (
	cartKey  = "cart"
	themeKey = "theme"
)

// CartService owns the persisted cart and theme for one session's
// store. Every mutation is a full read-modify-write against the store;
// nothing is trusted from memory between operations, so concurrent
// tabs see each other's writes on the next read (best effort, last
// writer wins).
type CartService struct {
	store kvstore.Store
}

func NewCartService(store kvstore.Store) *CartService {
	return &CartService{store: store}
}

// Get reads and normalizes the persisted cart. Missing keys, corrupt
// JSON, or legacy encodings all come back as a usable cart; this never
// returns an error to the caller.
func (s *CartService) Get(ctx context.Context) models.Cart {
	raw, err := s.store.Get(ctx, cartKey)
	if err != nil {
		// Absent and unreadable look the same from here: empty cart.
		return models.Cart{}
	}
	return models.DecodeCart([]byte(raw))
}

// Add increments the quantity for id by one, inserting at one. A
// failed write means the add did not happen; the error tells the
// caller not to claim success.
func (s *CartService) Add(ctx context.Context, id string) (models.Cart, error) {
	if id == "" {
		return s.Get(ctx), errors.New("empty product id")
	}
	cart := s.Get(ctx)
	cart[id]++
	if err := s.persist(ctx, cart); err != nil {
		return s.Get(ctx), err
	}
	return cart, nil
}

// Remove deletes the entry for id entirely, whatever its quantity.
func (s *CartService) Remove(ctx context.Context, id string) (models.Cart, error) {
	cart := s.Get(ctx)
	delete(cart, id)
	if err := s.persist(ctx, cart); err != nil {
		return s.Get(ctx), err
	}
	return cart, nil
}

// SetQuantity sets the count for id to exactly n. n <= 0 is the same
// as Remove; a zero quantity is never stored.
func (s *CartService) SetQuantity(ctx context.Context, id string, n int) (models.Cart, error) {
	if n <= 0 {
		return s.Remove(ctx, id)
	}
	cart := s.Get(ctx)
	cart[id] = n
	if err := s.persist(ctx, cart); err != nil {
		return s.Get(ctx), err
	}
	return cart, nil
}

// Clear deletes the whole persisted cart key.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, cartKey); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// TotalItemCount is the badge number: the sum of all quantities.
func (s *CartService) TotalItemCount(ctx context.Context) int {
	return s.Get(ctx).TotalItemCount()
}

func (s *CartService) persist(ctx context.Context, cart models.Cart) error {
	data, err := cart.Encode()
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.store.Set(ctx, cartKey, string(data)); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}

// ── Theme preference ─────────────────────────────────────────────────────────

// Theme returns the persisted theme, defaulting to light when unset or
// corrupt.
func (s *CartService) Theme(ctx context.Context) string {
	raw, err := s.store.Get(ctx, themeKey)
	if err != nil {
		return models.ThemeLight
	}
	return models.NormalizeTheme(raw)
}

// SetTheme persists a theme preference. Unknown values are rejected.
func (s *CartService) SetTheme(ctx context.Context, theme string) error {
	if !models.ValidTheme(theme) {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := s.store.Set(ctx, themeKey, theme); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}
