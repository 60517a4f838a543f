package intpoly

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Product multiplies all polynomials together.
//
// Pairs are multiplied level by level in a balanced tree, with each level
// spread over at most `numGoRoutines` goroutines. numGoRoutines <= 0 uses
// GOMAXPROCS. The inputs are not modified.
func Product(polys []*Polynomial, numGoRoutines int) (*Polynomial, error) {
	if len(polys) == 0 {
		return nil, ErrEmptyProduct
	}
	for i, p := range polys {
		if p == nil {
			return nil, fmt.Errorf("%w: polynomial %d is nil", ErrInvalidArgumentType, i)
		}
	}
	if numGoRoutines <= 0 {
		numGoRoutines = runtime.GOMAXPROCS(0)
	}

	level := make([]*Polynomial, len(polys))
	copy(level, polys)

	for len(level) > 1 {
		next := make([]*Polynomial, (len(level)+1)/2)

		var group errgroup.Group
		group.SetLimit(numGoRoutines)
		for i := range next {
			i := i
			left := 2 * i
			if left+1 == len(level) {
				next[i] = level[left]
				continue
			}
			group.Go(func() error {
				next[i] = level[left].Mul(level[left+1])
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
		level = next
	}

	return level[0].Clone(), nil
}
