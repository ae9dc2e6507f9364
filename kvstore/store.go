// Package kvstore is the persistence boundary for the storefront: the
// server-side stand-in for the browser's localStorage. Values are
// opaque strings; the cart and theme services own their encoding.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written
// or has been deleted.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a minimal persistent key-value store. Implementations must
// treat Set as a full overwrite; callers do read-modify-write and rely
// on the single writer per session for consistency. Concurrent writers
// from different instances are not coordinated: last writer wins.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
