package ports

import (
	"context"
	"strconv"
)

// RecipientCache stores serialized recipient read models keyed by RecipientCacheKey.
// Implementations swallow and report their own failures: a broken cache must
// never fail a request, it only costs a store round trip.
//
// Every key carries a generation that Invalidate bumps. Readers take the
// generation before reading the store and fill the cache with SetIfVersion,
// so a fill that raced with a committed write is dropped.
//
// Example:
//
//	version, ok := cache.Version(ctx, key)
//	payload := readFromStore()
//	if ok {
//	    cache.SetIfVersion(ctx, key, version, payload)
//	}
type RecipientCache interface {
	// Get returns the cached payload and true on a hit.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Version returns the current generation of key.
	// Returns false when the generation cannot be read; the caller must not fill the cache then.
	Version(ctx context.Context, key string) (int64, bool)

	// SetIfVersion stores payload under key unless key was invalidated after version was read.
	SetIfVersion(ctx context.Context, key string, version int64, payload []byte)

	// Invalidate bumps the generation of key and evicts it.
	// Writers call it after their transaction commits.
	Invalidate(ctx context.Context, key string)
}

// RecipientCacheKey returns the cache key of the recipient with the given id.
func RecipientCacheKey(id int64) string {
	return "recipient:" + strconv.FormatInt(id, 10)
}
