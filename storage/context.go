package storage

import "context"

type objectCacheKey struct{}

// ToContext sets the object cache used by stores for operations run with ctx.
func ToContext(ctx context.Context, cache ObjectCache) context.Context {
	return context.WithValue(ctx, objectCacheKey{}, cache)
}

// FromContext gets the object cache from the context, or nil.
func FromContext(ctx context.Context) ObjectCache {
	cache, ok := ctx.Value(objectCacheKey{}).(ObjectCache)
	if !ok {
		return nil
	}

	return cache
}

// FromContextOrInMemory returns the cache from ctx. When there is none, a new
// in-memory cache is created and a context carrying it is returned.
func FromContextOrInMemory(ctx context.Context) (context.Context, ObjectCache) {
	if cache := FromContext(ctx); cache != nil {
		return ctx, cache
	}

	cache := NewInMemory()
	return ToContext(ctx, cache), cache
}
