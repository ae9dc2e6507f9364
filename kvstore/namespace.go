package kvstore

import "context"

// Namespaced wraps a store so every key is prefixed, giving each
// browser session its own cart and theme keys on the shared backend.
func Namespaced(store Store, prefix string) Store {
	return &namespacedStore{inner: store, prefix: prefix}
}

type namespacedStore struct {
	inner  Store
	prefix string
}

func (s *namespacedStore) Get(ctx context.Context, key string) (string, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *namespacedStore) Set(ctx context.Context, key, value string) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}

func (s *namespacedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}
