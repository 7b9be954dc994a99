package utils

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// JoinCheck runs fetch and check concurrently. The first error returned by either
// wins and cancels the context handed to the other. When both succeed the fetch
// result is returned. A nil check always succeeds.
func JoinCheck[T any](ctx context.Context, fetch func(context.Context) (T, error), check func(context.Context) error) (T, error) {
	var out T
	if check == nil {
		return fetch(ctx)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := fetch(gctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	g.Go(func() error {
		return check(gctx)
	})

	if err := g.Wait(); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// JoinChecksInOrder runs checks concurrently and waits for all of them. When several
// fail, the error of the earliest check in argument order is returned, so the
// reported failure does not depend on scheduling.
func JoinChecksInOrder(ctx context.Context, checks ...func(context.Context) error) error {
	errs := make([]error, len(checks))
	var g errgroup.Group
	for i, check := range checks {
		if check == nil {
			continue
		}
		i, check := i, check
		g.Go(func() error {
			errs[i] = check(ctx)
			return nil
		})
	}
	_ = g.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
