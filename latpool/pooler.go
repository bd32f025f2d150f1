// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"errors"
	"fmt"
	"time"

	"cogentcore.org/lab/base/randx"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrConfig is returned for invalid construction or training parameters.
	ErrConfig = errors.New("latpool: invalid configuration")

	// ErrShape is returned when a matrix has dimensions that do not match the pooler.
	ErrShape = errors.New("latpool: shape mismatch")

	// ErrEmptyBatch is returned for a batch without any samples.
	ErrEmptyBatch = errors.New("latpool: empty batch")
)

// Pooler maps dense input vectors onto sparse binary codes, using learned
// feedforward weights, learned lateral inhibition and homeostatic boosting.
// All state is allocated by NewPooler and updated in place by UpdateConns,
// once per batch.  Inputs and outputs are matrices with one sample per column.
type Pooler struct {

	// construction parameters -- Validate and Update have been called
	Config Config

	// random number generator owned by this pooler, used for initialization and shuffling
	Rand randx.Rand `display:"-"`

	// feedforward weights, OutputSize x InputSize, always within [0, 1]
	Wts *mat.Dense

	// homeostatic boost factor for each output unit -- zero until the first update, then strictly positive
	BoostFac *mat.VecDense

	// lateral inhibitory weights, OutputSize x OutputSize, with zero diagonal and rows summing to 1 after the first update
	InhibWts *mat.Dense

	// running-average activity statistics driving boost and inhibition
	Stats ActStats

	// number of epochs completed by Fit, including the initial epoch offset
	Epoch int `edit:"-"`
}

// NewPooler validates the configuration and returns a new pooler with
// randomly initialized weights.
func NewPooler(cfg Config) (*Pooler, error) {
	cfg.Update()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pl := &Pooler{Config: cfg}
	seed := cfg.Seed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	pl.Rand = randx.NewSysRand(seed)
	n, m := cfg.OutputSize, cfg.InputSize
	pl.Wts = mat.NewDense(n, m, nil)
	pl.BoostFac = mat.NewVecDense(n, nil)
	pl.InhibWts = mat.NewDense(n, n, nil)
	pl.InitWts()
	return pl, nil
}

// InitWts initializes feedforward and inhibitory weights uniformly in [0, 1)
// (without self-inhibition), zeroes the boost factors and resets the
// statistics to their initial value.
func (pl *Pooler) InitWts() {
	n, m := pl.Wts.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			pl.Wts.Set(i, j, pl.Rand.Float64())
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pl.InhibWts.Set(i, j, pl.Rand.Float64())
		}
		pl.InhibWts.Set(i, i, 0)
	}
	pl.BoostFac.Zero()
	pl.Stats.Init(n, pl.Config.Avg.Init)
	pl.Epoch = 0
}

// Sparsity is the target fraction of active units, which is also the
// inhibition budget each unit has during encoding.
func (pl *Pooler) Sparsity() float64 {
	return pl.Config.Sparsity()
}

// Connections returns copies of the feedforward weights, boost factors
// and inhibitory weights.
func (pl *Pooler) Connections() (wts *mat.Dense, boost *mat.VecDense, inhib *mat.Dense) {
	wts = mat.DenseCopyOf(pl.Wts)
	boost = mat.VecDenseCopyOf(pl.BoostFac)
	inhib = mat.DenseCopyOf(pl.InhibWts)
	return
}

// SetConnections replaces the feedforward weights, boost factors and
// inhibitory weights, e.g., to restore a previously trained state.
// Only the dimensions are checked -- the values are used as given.
func (pl *Pooler) SetConnections(wts mat.Matrix, boost mat.Vector, inhib mat.Matrix) error {
	n, m := pl.Wts.Dims()
	if r, c := wts.Dims(); r != n || c != m {
		return fmt.Errorf("%w: feedforward weights are %dx%d, need %dx%d", ErrShape, r, c, n, m)
	}
	if l := boost.Len(); l != n {
		return fmt.Errorf("%w: boost has %d factors, need %d", ErrShape, l, n)
	}
	if r, c := inhib.Dims(); r != n || c != n {
		return fmt.Errorf("%w: inhibitory weights are %dx%d, need %dx%d", ErrShape, r, c, n, n)
	}
	pl.Wts.Copy(wts)
	pl.BoostFac.CopyVec(boost)
	pl.InhibWts.Copy(inhib)
	return nil
}

// checkInput returns the number of samples in x, or an error if x
// does not have InputSize rows or has no columns.
func (pl *Pooler) checkInput(x mat.Matrix) (int, error) {
	r, d := x.Dims()
	if d == 0 {
		return 0, ErrEmptyBatch
	}
	if r != pl.Config.InputSize {
		return 0, fmt.Errorf("%w: input has %d rows, need %d", ErrShape, r, pl.Config.InputSize)
	}
	return d, nil
}
