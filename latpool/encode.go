// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"cmp"
	"slices"

	"github.com/emer/latpool/latinhib"
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/mat"
)

// ScoreWts returns the weights used for scoring, which are the feedforward
// weights themselves, or their binarized version in ThreshScore mode.
func (pl *Pooler) ScoreWts() mat.Matrix {
	if pl.Config.Score.Mode != ThreshScore {
		return pl.Wts
	}
	sw := mat.DenseCopyOf(pl.Wts)
	sw.Apply(func(i, j int, v float64) float64 {
		return pl.Config.Score.Weight(v)
	}, sw)
	return sw
}

// Scores returns the boosted scores of each output unit (rows) for each
// sample in x (columns): boost * (W x).
func (pl *Pooler) Scores(x mat.Matrix) (*mat.Dense, error) {
	if _, err := pl.checkInput(x); err != nil {
		return nil, err
	}
	var sc mat.Dense
	sc.Mul(pl.ScoreWts(), x)
	sc.Apply(func(i, j int, v float64) float64 {
		return pl.BoostFac.AtVec(i) * v
	}, &sc)
	return &sc, nil
}

// Order returns the unit indexes sorted by descending score.
// Equal scores keep ascending index order, so the order is fully
// determined by the scores.
func Order(scores []float64) []int {
	ord := make([]int, len(scores))
	for i := range ord {
		ord[i] = i
	}
	slices.SortStableFunc(ord, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})
	return ord
}

// Encode returns the sparse binary codes for the input samples in x,
// which has one sample per column.  The result has OutputSize rows and
// one column per sample.  Within a sample, units are visited in order of
// descending score, and each winner inhibits the units after it through
// the inhibitory weights (see latinhib.Select).  Encode does not change
// the pooler.
func (pl *Pooler) Encode(x mat.Matrix) (*mat.Dense, error) {
	sc, err := pl.Scores(x)
	if err != nil {
		return nil, err
	}
	n, d := sc.Dims()
	y := mat.NewDense(n, d, nil)
	thr := pl.Sparsity()
	encodeCol := func(t int) {
		code := make([]float64, n)
		latinhib.Select(code, Order(mat.Col(nil, t, sc)), pl.InhibWts, thr)
		y.SetCol(t, code)
	}
	if pl.Config.NThreads <= 1 || d == 1 {
		for t := 0; t < d; t++ {
			encodeCol(t)
		}
		return y, nil
	}
	p := pool.New().WithMaxGoroutines(pl.Config.NThreads)
	for t := 0; t < d; t++ {
		p.Go(func() { encodeCol(t) })
	}
	p.Wait()
	return y, nil
}
