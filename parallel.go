package bigint

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MulParallel returns product of x and y, same as [Int.Mul], but splits
// the schoolbook multiplication across at most the given number of goroutines.
// Segments of the longer operand are divided into contiguous ranges,
// the partial product of every range is computed independently, and the
// partial products are summed at their place values.
//
// MulParallel falls back to [Int.Mul] if workers is less than 2 or
// either operand has a single segment.
//
// MulParallel returns an error if ctx is cancelled before the product
// is computed.
func (x Int) MulParallel(ctx context.Context, y Int, workers int) (Int, error) {
	if err := ctx.Err(); err != nil {
		return Int{}, err
	}

	// Special case: nothing to split
	if workers < 2 || len(x.segs) < 2 || len(y.segs) < 2 {
		return x.Mul(y), nil
	}

	// General case
	a, b := x.segs, y.segs
	if len(a) < len(b) {
		a, b = b, a
	}
	workers = min(workers, len(a))
	chunk := (len(a) + workers - 1) / workers
	parts := make([][]uint32, (len(a)+chunk-1)/chunk)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := range parts {
		lo := c * chunk
		hi := min(lo+chunk, len(a))
		g.Go(func() error {
			p, err := mulRows(gctx, a[lo:hi], b)
			if err != nil {
				return err
			}
			parts[c] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Int{}, err
	}

	z := make([]uint32, len(a)+len(b))
	for c, p := range parts {
		z = addAt(z, p, c*chunk)
	}
	return newInt(x.neg != y.neg, z), nil
}

// mulRows calculates x * y like mulSchool, checking ctx after every row.
func mulRows(ctx context.Context, x, y []uint32) ([]uint32, error) {
	z := make([]uint32, len(x)+len(y))
	for i := range x {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		z = mulRow(z, x[i], y, i)
	}
	return z, nil
}
