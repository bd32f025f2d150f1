// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ActStats are exponential moving averages of output activity.
// Pairs[i,j] is the running average of units i and j being active
// together, and Units[i] is the running average activity of unit i,
// which is always the diagonal of Pairs.  No average ever drops below
// the Floor, so every unit keeps some co-activation with every other.
type ActStats struct {

	// running average co-activation of each pair of units
	Pairs *mat.Dense

	// running average activation of each unit = diagonal of Pairs
	Units *mat.VecDense

	// lower bound on all averages, set to the initial value by Init
	Floor float64
}

// Init allocates the statistics for n units, all set to given initial value,
// which also becomes the Floor.
func (as *ActStats) Init(n int, init float64) {
	as.Floor = init
	as.Pairs = mat.NewDense(n, n, nil)
	as.Units = mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			as.Pairs.Set(i, j, init)
		}
		as.Units.SetVec(i, init)
	}
}

// Update blends the batch-average co-activation of the codes in y
// (one sample per column) into the running averages with decay beta:
// pairs = max(Floor, beta * pairs + (1 - beta) * mean(y y^T)).
func (as *ActStats) Update(y mat.Matrix, beta float64) error {
	n, d := y.Dims()
	if d == 0 {
		return ErrEmptyBatch
	}
	if pn, _ := as.Pairs.Dims(); pn != n {
		return fmt.Errorf("%w: codes have %d units, statistics have %d", ErrShape, n, pn)
	}
	var q mat.Dense
	q.Mul(y, y.T())
	q.Scale((1-beta)/float64(d), &q)
	as.Pairs.Scale(beta, as.Pairs)
	as.Pairs.Add(as.Pairs, &q)
	as.Pairs.Apply(func(i, j int, v float64) float64 {
		return max(v, as.Floor)
	}, as.Pairs)
	as.UnitsFmPairs()
	return nil
}

// UnitsFmPairs sets the unit averages from the diagonal of the pair averages.
func (as *ActStats) UnitsFmPairs() {
	n, _ := as.Pairs.Dims()
	for i := 0; i < n; i++ {
		as.Units.SetVec(i, as.Pairs.At(i, i))
	}
}

// SetPairs replaces the pairwise statistics, e.g., when loading saved
// weights, and updates the unit averages to match.
func (as *ActStats) SetPairs(pairs mat.Matrix) error {
	n, _ := as.Pairs.Dims()
	if r, c := pairs.Dims(); r != n || c != n {
		return fmt.Errorf("%w: pair statistics are %dx%d, need %dx%d", ErrShape, r, c, n, n)
	}
	as.Pairs.Copy(pairs)
	as.UnitsFmPairs()
	return nil
}
