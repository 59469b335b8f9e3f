// SPDX-License-Identifier: MIT
//
// File: batch.go
// Role: Fragment many molecules on a bounded worker pool.
//
// Concurrency:
//   - Each worker owns a Copy of the Fragmenter.
//   - The context is checked between molecules; a running Fragment call is
//     never interrupted.

package fragment

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/molfrag/molecule"
)

// FragmentAll fragments mols with up to workers goroutines (<= 0 means
// GOMAXPROCS). out[i] holds the fragments of mols[i]. The first error
// cancels the remaining work and is returned.
func FragmentAll(ctx context.Context, f *Fragmenter, mols []*molecule.Molecule, workers int) ([][]*Fragment, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(mols) {
		workers = len(mols)
	}
	out := make([][]*Fragment, len(mols))
	if len(mols) == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range mols {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		wf := f.Copy()
		g.Go(func() error {
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				frags, err := wf.Fragment(mols[i])
				if err != nil {
					return fmt.Errorf("fragment: FragmentAll: molecule %d: %w", i, err)
				}
				out[i] = frags
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
