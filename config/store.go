package config

import (
	"log"

	"github.com/aboayman-oss/Sakr-Store/kvstore"
)

// Store is the process-wide persistent key-value store backing carts
// and theme preferences.
var Store kvstore.Store

// InitStore prefers Redis and degrades to per-process memory when it
// is unavailable, so a local checkout still works without
// infrastructure. Cross-instance writes are last-writer-wins either
// way; that limitation is documented, not fixed here.
func InitStore() {
	if err := ConnectRedis(); err != nil {
		log.Printf("⚠️  Redis unavailable (%v), falling back to in-memory store", err)
		Store = kvstore.NewMemoryStore()
		return
	}
	Store = kvstore.NewRedisStore(RedisClient)
}
