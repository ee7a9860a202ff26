// Package resolver provides ParentResolver helpers for callers of the
// location mappers. Mappers invoke their resolver once per call and never
// cache; caching and throttling are the caller's decision and live here.
package resolver

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
	"github.com/custodia-labs/cloudkit/internal/core/ports/driven"
)

// Static returns a resolver that always yields loc.
func Static(loc *domain.Location) driven.ParentResolver {
	return func() (*domain.Location, error) {
		return loc, nil
	}
}

// Memoize returns a resolver that calls r until it first succeeds and then
// serves that location. Failures are not cached. Concurrent callers are
// serialised so r never runs twice at once.
func Memoize(r driven.ParentResolver) driven.ParentResolver {
	var (
		mu   sync.Mutex
		done bool
		loc  *domain.Location
	)
	return func() (*domain.Location, error) {
		mu.Lock()
		defer mu.Unlock()

		if done {
			return loc, nil
		}
		l, err := r()
		if err != nil {
			return nil, err
		}
		loc, done = l, true
		return loc, nil
	}
}

// RateLimited returns a resolver that waits on a token bucket before each
// call to r. The wait is bound to ctx; a cancelled context fails the call
// without invoking r.
func RateLimited(ctx context.Context, limit rate.Limit, burst int, r driven.ParentResolver) (driven.ParentResolver, error) {
	if burst < 1 {
		return nil, &domain.ConfigurationError{Component: "resolver", Err: errors.New("burst must be at least 1")}
	}
	bucket := rate.NewLimiter(limit, burst)
	return func() (*domain.Location, error) {
		if err := bucket.Wait(ctx); err != nil {
			return nil, err
		}
		return r()
	}, nil
}
