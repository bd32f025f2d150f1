// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"errors"
	"math"
	"testing"

	"github.com/emer/latpool/latinhib"
	"gonum.org/v1/gonum/mat"
)

func checkInvariants(t *testing.T, pl *Pooler) {
	t.Helper()
	n, m := pl.Wts.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if w := pl.Wts.At(i, j); w < 0 || w > 1 {
				t.Errorf("weight out of range at %d,%d: %v", i, j, w)
			}
		}
	}
	for i := 0; i < n; i++ {
		if pl.InhibWts.At(i, i) != 0 {
			t.Errorf("self inhibition at %d: %v", i, pl.InhibWts.At(i, i))
		}
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += pl.InhibWts.At(i, j)
		}
		if n > 1 && math.Abs(sum-1) > difTol {
			t.Errorf("inhibitory row %d sums to %v", i, sum)
		}
		if b := pl.BoostFac.AtVec(i); !(b > 0) {
			t.Errorf("boost factor %d not positive: %v", i, b)
		}
		if pl.Stats.Units.AtVec(i) != pl.Stats.Pairs.At(i, i) {
			t.Errorf("unit average %d: %v != pair diagonal %v", i, pl.Stats.Units.AtVec(i), pl.Stats.Pairs.At(i, i))
		}
		for j := 0; j < n; j++ {
			if pl.Stats.Pairs.At(i, j) < pl.Config.Avg.Init {
				t.Errorf("pair statistic %d,%d below initial value %v: %v", i, j, pl.Config.Avg.Init, pl.Stats.Pairs.At(i, j))
			}
		}
	}
}

func TestDWtZeroInput(t *testing.T) {
	pl := newTestPooler(t, 3, 2, 1, 1)
	pl.Config.Learn.IncDecRatio = 2
	x := mat.NewDense(3, 5, nil)
	y := mat.NewDense(2, 5, []float64{
		1, 1, 0, 1, 0,
		0, 0, 0, 0, 1,
	})
	dwt, err := pl.DWt(x, y)
	if err != nil {
		t.Fatal(err)
	}
	// no input is ever on, so only the decrease term remains: -1/r * mean(y_i)
	cor := []float64{-0.5 * 3.0 / 5.0, -0.5 * 1.0 / 5.0}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if dif := math.Abs(dwt.At(i, j) - cor[i]); dif > difTol {
				t.Errorf("dwt err: %d,%d: %v, cor: %v", i, j, dwt.At(i, j), cor[i])
			}
		}
	}

	pl.Config.Learn.Lrate = 10
	pl.Wts.Apply(func(i, j int, v float64) float64 { return .5 }, pl.Wts)
	pl.WtFmDWt(dwt)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if pl.Wts.At(i, j) != 0 {
				t.Errorf("weight not clipped to 0 at %d,%d: %v", i, j, pl.Wts.At(i, j))
			}
		}
	}
}

func TestDWt(t *testing.T) {
	pl := newTestPooler(t, 2, 1, 1, 1)
	x := mat.NewDense(2, 4, []float64{
		1, 1, 0, 1,
		0, 1, 0, 0,
	})
	y := mat.NewDense(1, 4, []float64{1, 1, 1, 0})
	dwt, err := pl.DWt(x, y)
	if err != nil {
		t.Fatal(err)
	}
	// input 0: on with y in 2 samples, off with y in 1; input 1: on 1, off 2
	cor := []float64{(2 - 1) / 4.0, (1 - 2) / 4.0}
	for j, c := range cor {
		if dif := math.Abs(dwt.At(0, j) - c); dif > difTol {
			t.Errorf("dwt err: %d: %v, cor: %v", j, dwt.At(0, j), c)
		}
	}

	pl.Config.Learn.Lrate = 100
	pl.WtFmDWt(dwt)
	if pl.Wts.At(0, 0) != 1 || pl.Wts.At(0, 1) != 0 {
		t.Errorf("weights not clipped: %v", mat.Formatted(pl.Wts))
	}
}

func TestStatsUpdate(t *testing.T) {
	as := ActStats{}
	as.Init(2, 1e-7)
	y := mat.NewDense(2, 2, []float64{
		1, 1,
		0, 1,
	})
	if err := as.Update(y, .5); err != nil {
		t.Fatal(err)
	}
	q := []float64{1, .5, .5, .5}
	for i, c := range q {
		cor := .5*1e-7 + .5*c
		if dif := math.Abs(as.Pairs.At(i/2, i%2) - cor); dif > difTol {
			t.Errorf("pairs err: %d: %v, cor: %v", i, as.Pairs.At(i/2, i%2), cor)
		}
	}
	for i := 0; i < 2; i++ {
		if as.Units.AtVec(i) != as.Pairs.At(i, i) {
			t.Errorf("units not diagonal of pairs")
		}
	}
	if err := as.Update(mat.NewDense(3, 1, nil), .5); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got: %v", err)
	}
}

func TestStatsFloor(t *testing.T) {
	as := ActStats{}
	as.Init(3, 1e-7)
	y := mat.NewDense(3, 2, []float64{
		1, 1,
		0, 0,
		1, 0,
	})
	// beta = 0 replaces the averages with the batch values
	if err := as.Update(y, 0); err != nil {
		t.Fatal(err)
	}
	for j := 0; j < 3; j++ {
		if as.Pairs.At(1, j) != 1e-7 || as.Pairs.At(j, 1) != 1e-7 {
			t.Errorf("silent unit pairs not at floor: %v %v", as.Pairs.At(1, j), as.Pairs.At(j, 1))
		}
	}
	if as.Pairs.At(0, 2) != .5 || as.Units.AtVec(0) != 1 {
		t.Errorf("active pairs: %v %v", as.Pairs.At(0, 2), as.Units.AtVec(0))
	}
}

func TestFitShortPeriod(t *testing.T) {
	cf := Config{}
	cf.Defaults()
	cf.InputSize = 8
	cf.OutputSize = 6
	cf.CodeWeight = 2
	cf.Seed = 3
	cf.Avg.Period = 1
	pl, err := NewPooler(cf)
	if err != nil {
		t.Fatal(err)
	}
	chk := ObserverFunc(func(pl *Pooler, ev *Event, ctx *Context) error {
		if ev.Type == BatchEnd {
			checkInvariants(t, pl)
		}
		return nil
	})
	if err := pl.Fit(randBinary(4, 8, 16, .4), 4, 3, 0, chk); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateOrder(t *testing.T) {
	pl := newTestPooler(t, 8, 5, 2, 11)
	x := randBinary(12, 8, 6, .4)
	y, err := pl.Encode(x)
	if err != nil {
		t.Fatal(err)
	}
	if err := pl.UpdateConns(x, y); err != nil {
		t.Fatal(err)
	}
	// boost and inhibition must reflect the statistics including this batch
	for i := 0; i < 5; i++ {
		cor := math.Exp(-pl.Config.Boost.Strength * pl.Stats.Units.AtVec(i))
		if dif := math.Abs(pl.BoostFac.AtVec(i) - cor); dif > difTol {
			t.Errorf("boost err: %d: %v, cor: %v", i, pl.BoostFac.AtVec(i), cor)
		}
	}
	inhib := mat.NewDense(5, 5, nil)
	ip := latinhib.Params{}
	ip.Defaults()
	if err := ip.FromPairs(inhib, pl.Stats.Pairs); err != nil {
		t.Fatal(err)
	}
	if !mat.EqualApprox(inhib, pl.InhibWts, difTol) {
		t.Errorf("inhibitory weights not from current statistics")
	}
	checkInvariants(t, pl)
}

func TestUpdateInvariants(t *testing.T) {
	for _, iu := range []latinhib.InhibUpdates{latinhib.Linear, latinhib.Exponential} {
		pl := newTestPooler(t, 10, 7, 2, 5)
		pl.Config.Inhib.Type = iu
		pl.Config.Learn.Lrate = .5
		for step := 0; step < 20; step++ {
			x := randBinary(int64(100+step), 10, 4, .3)
			y, err := pl.Encode(x)
			if err != nil {
				t.Fatal(err)
			}
			if err := pl.UpdateConns(x, y); err != nil {
				t.Fatalf("%v step %d: %v", iu, step, err)
			}
			checkInvariants(t, pl)
		}
	}
}

func TestUpdateErrors(t *testing.T) {
	pl := newTestPooler(t, 4, 3, 1, 1)
	x := mat.NewDense(4, 2, nil)
	if err := pl.UpdateConns(x, mat.NewDense(3, 3, nil)); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got: %v", err)
	}
	if err := pl.UpdateConns(&mat.Dense{}, &mat.Dense{}); !errors.Is(err, ErrEmptyBatch) {
		t.Errorf("expected ErrEmptyBatch, got: %v", err)
	}
}
