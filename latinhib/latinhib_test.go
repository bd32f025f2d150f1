// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latinhib

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

func TestSelect(t *testing.T) {
	inhib := mat.NewDense(3, 3, []float64{
		0, .5, .2,
		.4, 0, .6,
		.3, .7, 0,
	})
	code := make([]float64, 3)

	// unit 0 wins, adds .5 to unit 1 (suppressed at thr 1/3) and .2 to unit 2 (still below)
	n := Select(code, []int{0, 1, 2}, inhib, 1.0/3.0)
	cor := []float64{1, 0, 1}
	if n != 2 {
		t.Errorf("nact: %d, cor: 2", n)
	}
	for i := range cor {
		if code[i] != cor[i] {
			t.Errorf("code err: idx: %d, code: %v, cor: %v", i, code[i], cor[i])
		}
	}

	// order matters: unit 1 first suppresses unit 2 (.6) but not unit 0 (.4)
	n = Select(code, []int{1, 2, 0}, inhib, .5)
	cor = []float64{1, 1, 0}
	if n != 2 {
		t.Errorf("nact: %d, cor: 2", n)
	}
	for i := range cor {
		if code[i] != cor[i] {
			t.Errorf("code err: idx: %d, code: %v, cor: %v", i, code[i], cor[i])
		}
	}
}

func TestSelectFirstAlwaysWins(t *testing.T) {
	inhib := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	code := make([]float64, 2)
	n := Select(code, []int{1, 0}, inhib, 1e-9)
	if n != 1 || code[1] != 1 || code[0] != 0 {
		t.Errorf("expected only unit 1 active, got: %v", code)
	}
	// a zero threshold suppresses everything, including the top unit
	n = Select(code, []int{1, 0}, inhib, 0)
	if n != 0 {
		t.Errorf("expected no active units at zero threshold, got: %v", code)
	}
	// threshold above any accumulated signal lets all units through
	n = Select(code, []int{1, 0}, inhib, 2)
	if n != 2 {
		t.Errorf("expected all units active, got: %v", code)
	}
}

func checkStochastic(t *testing.T, inhib *mat.Dense) {
	t.Helper()
	n, _ := inhib.Dims()
	for i := 0; i < n; i++ {
		if inhib.At(i, i) != 0 {
			t.Errorf("diagonal not zero: %d: %v", i, inhib.At(i, i))
		}
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += inhib.At(i, j)
		}
		if math.Abs(sum-1) > difTol {
			t.Errorf("row %d sums to %v", i, sum)
		}
	}
}

func TestFromPairsLinear(t *testing.T) {
	ip := Params{}
	ip.Defaults()
	pairs := mat.NewDense(3, 3, []float64{
		.5, .1, .3,
		.1, .2, .1,
		.3, .1, .9,
	})
	inhib := mat.NewDense(3, 3, nil)
	if err := ip.FromPairs(inhib, pairs); err != nil {
		t.Fatal(err)
	}
	checkStochastic(t, inhib)
	cor := []float64{0, .25, .75, .5, 0, .5, .75, .25, 0}
	for i, c := range cor {
		v := inhib.At(i/3, i%3)
		if math.Abs(v-c) > difTol {
			t.Errorf("inhib err: %d: %v, cor: %v", i, v, c)
		}
	}
	if pairs.At(0, 0) != .5 {
		t.Errorf("pairs modified")
	}
}

func TestFromPairsExponential(t *testing.T) {
	ip := Params{}
	ip.Defaults()
	ip.Type = Exponential
	ip.Strength = 2
	pairs := mat.NewDense(3, 3, []float64{
		.5, .1, .3,
		.1, .2, .1,
		.3, .1, .9,
	})
	inhib := mat.NewDense(3, 3, nil)
	if err := ip.FromPairs(inhib, pairs); err != nil {
		t.Fatal(err)
	}
	checkStochastic(t, inhib)
	e1, e3 := math.Exp(.2), math.Exp(.6)
	cor := e1 / (e1 + e3)
	if dif := math.Abs(inhib.At(0, 1) - cor); dif > difTol {
		t.Errorf("exp inhib err: %v, cor: %v", inhib.At(0, 1), cor)
	}
}

func TestFromPairsExponentialLarge(t *testing.T) {
	ip := Params{}
	ip.Defaults()
	ip.Type = Exponential
	ip.Strength = 1000
	pairs := mat.NewDense(3, 3, []float64{
		1, .99, 1,
		.99, 1, .98,
		1, .98, 1,
	})
	inhib := mat.NewDense(3, 3, nil)
	if err := ip.FromPairs(inhib, pairs); err != nil {
		t.Fatal(err)
	}
	checkStochastic(t, inhib)
	e := math.Exp(-10)
	if dif := math.Abs(inhib.At(0, 1) - e/(1+e)); dif > difTol {
		t.Errorf("exp inhib err: %v, cor: %v", inhib.At(0, 1), e/(1+e))
	}
	if dif := math.Abs(inhib.At(1, 0) - 1/(1+e)); dif > difTol {
		t.Errorf("exp inhib err: %v, cor: %v", inhib.At(1, 0), 1/(1+e))
	}
}

func TestFromPairsDegenerate(t *testing.T) {
	ip := Params{}
	ip.Defaults()
	pairs := mat.NewDense(2, 2, []float64{.1, 0, 0, .1})
	inhib := mat.NewDense(2, 2, nil)
	err := ip.FromPairs(inhib, pairs)
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got: %v", err)
	}

	one := mat.NewDense(1, 1, nil)
	if err := ip.FromPairs(one, mat.NewDense(1, 1, []float64{.3})); err != nil {
		t.Errorf("single unit: %v", err)
	}
	if one.At(0, 0) != 0 {
		t.Errorf("single unit row should be zero: %v", one.At(0, 0))
	}

	if err := ip.FromPairs(inhib, mat.NewDense(3, 3, nil)); err == nil {
		t.Errorf("expected shape error")
	}
}

func TestInhibUpdatesText(t *testing.T) {
	var iu InhibUpdates
	if err := iu.UnmarshalText([]byte("Exponential")); err != nil || iu != Exponential {
		t.Errorf("unmarshal: %v %v", iu, err)
	}
	if err := iu.UnmarshalText([]byte("Cubic")); err == nil {
		t.Errorf("expected error for unknown name")
	}
	if Linear.String() != "Linear" || InhibUpdates(7).String() != "InhibUpdates(7)" {
		t.Errorf("String: %s %s", Linear, InhibUpdates(7))
	}
}
