// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"fmt"

	"cogentcore.org/core/math32/minmax"
	"gonum.org/v1/gonum/mat"
)

// WtRange is the range of the feedforward weights, which are clipped
// into it after every change.
var WtRange = minmax.F64{Min: 0, Max: 1}

// checkBatch checks that x and y are a matching input / code batch.
func (pl *Pooler) checkBatch(x, y mat.Matrix) (int, error) {
	d, err := pl.checkInput(x)
	if err != nil {
		return 0, err
	}
	n, yd := y.Dims()
	if n != pl.Config.OutputSize || yd != d {
		return 0, fmt.Errorf("%w: codes are %dx%d, need %dx%d", ErrShape, n, yd, pl.Config.OutputSize, d)
	}
	return d, nil
}

// DWt returns the change in feedforward weights for the given inputs x and
// codes y: the batch average of (output on, input on) co-occurrence minus
// 1 / IncDecRatio times the batch average of (output on, input off).
func (pl *Pooler) DWt(x, y mat.Matrix) (*mat.Dense, error) {
	d, err := pl.checkBatch(x, y)
	if err != nil {
		return nil, err
	}
	n := pl.Config.OutputSize
	decr := 1 / pl.Config.Learn.IncDecRatio
	var pos mat.Dense
	pos.Mul(y, x.T())
	// y (1 - x)^T = sum_t y[i,t] - y x^T, for each input j
	nact := make([]float64, n)
	for i := range nact {
		for t := 0; t < d; t++ {
			nact[i] += y.At(i, t)
		}
	}
	norm := 1 / float64(d)
	pos.Apply(func(i, j int, v float64) float64 {
		return norm * (v - decr*(nact[i]-v))
	}, &pos)
	return &pos, nil
}

// WtFmDWt adds Lrate times the weight changes into the feedforward
// weights and clips them into WtRange.
func (pl *Pooler) WtFmDWt(dwt mat.Matrix) {
	lr := pl.Config.Learn.Lrate
	pl.Wts.Apply(func(i, j int, v float64) float64 {
		return WtRange.ClampValue(v + lr*dwt.At(i, j))
	}, pl.Wts)
}

// BoostFmAvg recomputes the boost factors from the running average
// unit activity.
func (pl *Pooler) BoostFmAvg() {
	for i := 0; i < pl.BoostFac.Len(); i++ {
		pl.BoostFac.SetVec(i, pl.Config.Boost.Factor(pl.Stats.Units.AtVec(i)))
	}
}

// InhibFmAvg recomputes the inhibitory weights from the running average
// pairwise activity.
func (pl *Pooler) InhibFmAvg() error {
	return pl.Config.Inhib.FromPairs(pl.InhibWts, pl.Stats.Pairs)
}

// UpdateConns applies all learning for one batch of inputs x and their
// codes y, in order: feedforward weights, activity statistics, boost
// factors and inhibitory weights.  Boost and inhibition are thus always
// computed from statistics that include this batch.
func (pl *Pooler) UpdateConns(x, y mat.Matrix) error {
	dwt, err := pl.DWt(x, y)
	if err != nil {
		return err
	}
	pl.WtFmDWt(dwt)
	if err := pl.Stats.Update(y, pl.Config.Avg.Beta); err != nil {
		return err
	}
	pl.BoostFmAvg()
	return pl.InhibFmAvg()
}
