// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"math"
	"path/filepath"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/lab/base/mpi"
	"gonum.org/v1/gonum/mat"
)

// ActMonitor records the average and maximum number of active output
// units per sample over each epoch.
type ActMonitor struct {

	// stats for the current epoch
	Cur minmax.AvgMax32

	// stats for each completed epoch
	History []minmax.AvgMax32
}

func (am *ActMonitor) Observe(pl *Pooler, ev *Event, ctx *Context) error {
	switch ev.Type {
	case EpochStart:
		am.Cur.Init()
	case BatchEnd:
		n, d := ev.Output.Dims()
		for t := 0; t < d; t++ {
			nact := 0.0
			for i := 0; i < n; i++ {
				nact += ev.Output.At(i, t)
			}
			am.Cur.UpdateValue(float32(nact), int32(ev.Batch*ctx.BatchSize+t))
		}
	case EpochEnd:
		am.Cur.CalcAvg()
		am.History = append(am.History, am.Cur)
	}
	return nil
}

// EpochLogger prints a summary line at the end of every Interval epochs:
// active units per sample, boost factor range and mean feedforward weight.
type EpochLogger struct {
	ActMonitor

	// print every Interval epochs -- 0 or 1 prints every epoch
	Interval int
}

func (el *EpochLogger) Observe(pl *Pooler, ev *Event, ctx *Context) error {
	if err := el.ActMonitor.Observe(pl, ev, ctx); err != nil {
		return err
	}
	if ev.Type != EpochEnd {
		return nil
	}
	if el.Interval > 1 && (ev.Epoch+1)%el.Interval != 0 && ev.Epoch+1 != ctx.NEpochs {
		return nil
	}
	r, c := pl.Wts.Dims()
	mpi.Printf("Epoch: %4d\t ActAvg: %6.3f\t ActMax: %3.0f\t Boost: %.4g..%.4g\t WtAvg: %.4f\n",
		ev.Epoch, el.Cur.Avg, el.Cur.Max, mat.Min(pl.BoostFac), mat.Max(pl.BoostFac),
		mat.Sum(pl.Wts)/float64(r*c))
	return nil
}

// Checkpointer saves the weights every Interval epochs, and at the end of training.
type Checkpointer struct {

	// directory to save weights files in
	Dir string

	// name identifying the model in file names
	Name string

	// extra tag to add to file names
	Tag string

	// save every Interval epochs -- 0 only saves after the final epoch
	Interval int

	// name of the last file written
	Last string `edit:"-"`
}

func (cp *Checkpointer) Observe(pl *Pooler, ev *Event, ctx *Context) error {
	if ev.Type != EpochEnd {
		return nil
	}
	epc := ev.Epoch + 1
	final := epc == ctx.NEpochs
	if !final && (cp.Interval < 1 || epc%cp.Interval != 0) {
		return nil
	}
	fnm := filepath.Join(cp.Dir, WeightsFilename(cp.Name, cp.Tag, epc))
	if err := pl.SaveWeights(fnm); err != nil {
		return err
	}
	cp.Last = fnm
	return nil
}

// Converge stops training when no feedforward weight changed by more
// than Tol over an epoch.
type Converge struct {

	// tolerance on the largest absolute weight change in an epoch
	Tol float64 `def:"1e-4"`

	// largest absolute weight change in the last completed epoch
	Delta float64 `edit:"-"`

	prev *mat.Dense
}

func (cv *Converge) Observe(pl *Pooler, ev *Event, ctx *Context) error {
	switch ev.Type {
	case EpochStart:
		if cv.prev == nil {
			cv.prev = mat.DenseCopyOf(pl.Wts)
		} else {
			cv.prev.Copy(pl.Wts)
		}
	case EpochEnd:
		var dif mat.Dense
		dif.Sub(pl.Wts, cv.prev)
		cv.Delta = math.Max(mat.Max(&dif), -mat.Min(&dif))
		if cv.Delta < cv.Tol {
			mpi.Printf("Converged at epoch: %d, max weight change: %g\n", ev.Epoch, cv.Delta)
			return ErrStop
		}
	}
	return nil
}
