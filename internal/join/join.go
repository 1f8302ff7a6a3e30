// Package join builds the denormalized view models the screens display:
// each primary record is enriched with fields fetched via its foreign-key
// reference, concurrently, without ever reordering or dropping rows.
package join

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultLimit bounds how many secondary lookups run at once.
const DefaultLimit = 8

// Collection resolves every item of primary concurrently and returns the
// view records in primary order: results are written back by index, never
// by completion order.
//
// When resolve fails for an item, the row is NOT dropped: fallback builds a
// placeholder view from the primary record alone, and the lookup error is
// collected into the returned error for logging. The returned slice is
// complete even when the error is non-nil.
func Collection[P, V any](ctx context.Context, primary []P, resolve func(context.Context, P) (V, error), fallback func(P) V) ([]V, error) {
	views := make([]V, len(primary))
	errs := make([]error, len(primary))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultLimit)
	for i, item := range primary {
		g.Go(func() error {
			v, err := resolve(ctx, item)
			if err != nil {
				views[i] = fallback(item)
				errs[i] = err
				return nil // a bad join must not cancel the siblings
			}
			views[i] = v
			return nil
		})
	}
	_ = g.Wait()

	return views, errors.Join(errs...)
}

// Resolver memoizes secondary lookups for the duration of one join run.
// Concurrent requests for the same key are collapsed into a single fetch.
// The original orders screen kept this cache so that ten lines of the same
// product cost one product request, not ten.
type Resolver[V any] struct {
	fetch func(context.Context, uint) (V, error)

	group singleflight.Group
	mu    sync.Mutex
	cache map[uint]V
}

// NewResolver wraps a fetch function with a per-run cache.
func NewResolver[V any](fetch func(context.Context, uint) (V, error)) *Resolver[V] {
	return &Resolver[V]{fetch: fetch, cache: make(map[uint]V)}
}

// Resolve returns the cached value for id, fetching it on first use.
func (r *Resolver[V]) Resolve(ctx context.Context, id uint) (V, error) {
	r.mu.Lock()
	if v, ok := r.cache[id]; ok {
		r.mu.Unlock()
		return v, nil
	}
	r.mu.Unlock()

	out, err, _ := r.group.Do(strconv.FormatUint(uint64(id), 10), func() (any, error) {
		v, err := r.fetch(ctx, id)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache[id] = v
		r.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return out.(V), nil
}
