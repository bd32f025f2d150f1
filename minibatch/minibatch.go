// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minibatch partitions a dataset, stored with one sample per column,
// into shuffled minibatches.  Shuffling uses the random generator passed in,
// so a seeded generator reproduces the same partition sequence.
package minibatch

import (
	"errors"
	"fmt"

	"cogentcore.org/lab/base/randx"
	"gonum.org/v1/gonum/mat"
)

// ErrBatchSize is returned for a batch size below 1.
var ErrBatchSize = errors.New("minibatch: batch size must be positive")

// Order returns a permuted list of the n sample indexes.
// If rnd is nil the samples are kept in their original order.
func Order(n int, rnd randx.Rand) []int {
	ord := make([]int, n)
	for i := range ord {
		ord[i] = i
	}
	if rnd != nil {
		randx.PermuteInts(ord, rnd)
	}
	return ord
}

// NBatches returns the number of minibatches for n samples of given size,
// including a final partial batch.
func NBatches(n, size int) int {
	if size < 1 {
		return 0
	}
	return (n + size - 1) / size
}

// Batches copies the columns of x, in the order given by Order, into
// minibatches of size columns each.  The last batch holds the remaining
// columns when the number of samples is not a multiple of size.
func Batches(x mat.Matrix, size int, rnd randx.Rand) ([]*mat.Dense, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBatchSize, size)
	}
	nr, n := x.Dims()
	if nr == 0 || n == 0 {
		return nil, nil
	}
	ord := Order(n, rnd)
	nb := NBatches(n, size)
	bs := make([]*mat.Dense, nb)
	for b := range bs {
		st := b * size
		ed := min(st+size, n)
		bt := mat.NewDense(nr, ed-st, nil)
		for c := st; c < ed; c++ {
			si := ord[c]
			for r := 0; r < nr; r++ {
				bt.Set(r, c-st, x.At(r, si))
			}
		}
		bs[b] = bt
	}
	return bs, nil
}
