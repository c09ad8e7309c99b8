package services

import (
	"context"
	"log"
)

const (
	cacheKeyEspecialidades = "especialidad"
	cacheKeyTipos          = "tipomedic"
	cacheKeyMedicamentos   = "medicamento"
)

// Cache holds full list responses. Any mutation invalidates every entry
// because lists embed rows of the other entities.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Version changes on every Invalidate.
	Version(ctx context.Context) (int64, error)
	// Set stores value only if the version is still the one read before
	// value was loaded.
	Set(ctx context.Context, key string, value any, version int64) error
	Invalidate(ctx context.Context) error
}

type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NopCache) Version(context.Context) (int64, error)         { return 0, nil }
func (NopCache) Set(context.Context, string, any, int64) error  { return nil }
func (NopCache) Invalidate(context.Context) error               { return nil }

func orNop(c Cache) Cache {
	if c == nil {
		return NopCache{}
	}
	return c
}

// cachedList serves key from the cache when present and otherwise loads and
// stores it. The version is read before loading so a list loaded across a
// concurrent mutation is not stored. Cache failures fall through to the
// loader.
func cachedList[T any](ctx context.Context, cache Cache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	hit, err := cache.Get(ctx, key, &cached)
	if err != nil {
		log.Printf("cache get %s: %v", key, err)
	}
	if hit && err == nil {
		return nonNil(cached), nil
	}

	version, verr := cache.Version(ctx)
	if verr != nil {
		log.Printf("cache version %s: %v", key, verr)
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	items = nonNil(items)
	if verr == nil {
		if err := cache.Set(ctx, key, items, version); err != nil {
			log.Printf("cache set %s: %v", key, err)
		}
	}
	return items, nil
}

func invalidate(ctx context.Context, cache Cache) {
	if err := cache.Invalidate(ctx); err != nil {
		log.Printf("cache invalidate: %v", err)
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
