// Package utils contains helpers shared by the rayslope packages.
package utils

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// ParallelFactor controls the max level of parallelization. This might be useful
// to set in tests where too much parallelism actually slows tests down in
// aggregate.
var ParallelFactor = runtime.GOMAXPROCS(0)

func init() {
	if ParallelFactor <= 0 {
		ParallelFactor = 1
	}
}

// GroupWorkFunc processes the work items in [from, to). groupNum identifies the group and is
// stable for the duration of the call, so it may index per-worker state.
type GroupWorkFunc func(ctx context.Context, groupNum, from, to int) error

// GroupWorkParallel splits totalSize work items into at most ParallelFactor contiguous groups and
// runs each group on its own goroutine. The first failing group cancels the context passed to the
// others; every error returned, including recovered panics, is combined into the result.
func GroupWorkParallel(ctx context.Context, totalSize int, groupWork GroupWorkFunc) error {
	if totalSize <= 0 {
		return nil
	}
	numGroups := min(ParallelFactor, totalSize)
	groupSize := totalSize / numGroups
	extra := totalSize % numGroups

	var errMu sync.Mutex
	var combined error
	storeError := func(err error) {
		errMu.Lock()
		defer errMu.Unlock()
		combined = multierr.Append(combined, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for groupNum := 0; groupNum < numGroups; groupNum++ {
		from := groupSize * groupNum
		to := from + groupSize
		if groupNum == numGroups-1 {
			to += extra
		}
		g.Go(func() (err error) {
			defer func() {
				if thePanic := recover(); thePanic != nil {
					err = errors.Errorf("got panic in parallel group %d: %v", groupNum, thePanic)
				}
				if err != nil {
					storeError(err)
				}
			}()
			return groupWork(ctx, groupNum, from, to)
		})
	}
	if err := g.Wait(); err != nil {
		errMu.Lock()
		defer errMu.Unlock()
		return combined
	}
	return nil
}
