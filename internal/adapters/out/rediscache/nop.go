package rediscache

import "context"

// NopCache is used when no Redis address is configured. Every read misses.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool)          { return nil, false }
func (NopCache) Version(context.Context, string) (int64, bool)       { return 0, false }
func (NopCache) SetIfVersion(context.Context, string, int64, []byte) {}
func (NopCache) Invalidate(context.Context, string)                  {}
