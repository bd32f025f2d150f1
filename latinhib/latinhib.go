// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package latinhib provides learned lateral inhibition between the units of a
single layer: the sequential winner selection that turns a ranked list of
candidate units into a sparse binary code, and the update that derives the
inhibitory weights from running pairwise co-activation statistics.

Unlike a fixed k-Winners-Take-All, the number of active units is not a hard
constraint: each winner adds its row of inhibitory weights into a per-unit
inhibition signal, and a candidate is only allowed to become active while its
accumulated signal is below a threshold (the target sparsity).  Units that
tend to fire together therefore inhibit each other more strongly, and the
realized code size emerges from the learned weights.
*/
package latinhib

import (
	"errors"
	"fmt"
	"math"

	"github.com/goki/ki/kit"
	"gonum.org/v1/gonum/mat"
)

// ErrDegenerate is returned when a row of inhibitory weights cannot be
// normalized because all of its off-diagonal entries are zero.
// Running statistics are initialized above zero, so this indicates
// corrupted statistics rather than a recoverable condition.
var ErrDegenerate = errors.New("latinhib: degenerate inhibitory row")

// InhibUpdates are the ways of deriving inhibitory weights from the
// pairwise average activity statistics.
type InhibUpdates int32

//go:generate stringer -type=InhibUpdates

var KiT_InhibUpdates = kit.Enums.AddEnum(InhibUpdatesN, false, nil)

func (ev InhibUpdates) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *InhibUpdates) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// UnmarshalText sets the value from its name, for config files.
func (ev *InhibUpdates) UnmarshalText(b []byte) error {
	if err := ev.FromString(string(b)); err != nil {
		return fmt.Errorf("latinhib: unknown InhibUpdates value %q", b)
	}
	return nil
}

const (
	// Linear copies the pairwise co-activation averages directly
	// into the inhibitory weights before normalization.
	Linear InhibUpdates = iota

	// Exponential uses exp(Strength * pairs) before normalization,
	// which sharpens the contrast between strongly and weakly
	// correlated pairs of units.
	Exponential

	InhibUpdatesN
)

// Params determine how inhibitory weights are derived from activity statistics.
type Params struct {

	// how pairwise average activity maps onto inhibitory weights prior to row normalization
	Type InhibUpdates `def:"Linear"`

	// gain on the pairwise averages for the Exponential update -- ignored by Linear
	Strength float64 `viewif:"Type=Exponential" def:"100"`
}

func (ip *Params) Defaults() {
	ip.Type = Linear
	ip.Strength = 100
}

// FromPairs sets the inhibitory weights from the pairwise average activity
// matrix: the (optionally exponentiated, row-wise softmax) averages are copied in, the diagonal
// is zeroed so that no unit inhibits itself, and each row is normalized to
// sum to 1.  A layer with a single unit has no lateral partners, and its one
// row is left at zero.
func (ip *Params) FromPairs(inhib *mat.Dense, pairs mat.Matrix) error {
	n, nc := inhib.Dims()
	pr, pc := pairs.Dims()
	if n != nc || pr != n || pc != n {
		return fmt.Errorf("latinhib: inhib is %dx%d but pairs is %dx%d", n, nc, pr, pc)
	}
	inhib.Copy(pairs)
	if ip.Type == Exponential {
		// shift each row by its largest off-diagonal exponent, which
		// normalization cancels, so exp cannot overflow
		for i := 0; i < n; i++ {
			row := inhib.RawRowView(i)
			mx := math.Inf(-1)
			for j, v := range row {
				if j != i {
					mx = max(mx, ip.Strength*v)
				}
			}
			if math.IsInf(mx, -1) {
				continue
			}
			for j, v := range row {
				row[j] = math.Exp(ip.Strength*v - mx)
			}
		}
	}
	for i := 0; i < n; i++ {
		inhib.Set(i, i, 0)
	}
	return Normalize(inhib)
}

// Normalize divides each row of the given square matrix by its sum.
func Normalize(inhib *mat.Dense) error {
	n, _ := inhib.Dims()
	if n == 1 {
		return nil
	}
	for i := 0; i < n; i++ {
		row := inhib.RawRowView(i)
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		if !(sum > 0) || math.IsInf(sum, 1) {
			return fmt.Errorf("%w: row %d sums to %g", ErrDegenerate, i, sum)
		}
		for j := range row {
			row[j] /= sum
		}
	}
	return nil
}

// Select performs winner selection for one sample.  order lists the unit
// indexes from highest to lowest score.  Units are visited in that order, and
// a unit becomes active (code = 1) only if its accumulated inhibition signal
// is still below thr; each active unit then adds its full row of inhib into
// the signal of every unit, including those not yet visited.  code must have
// one entry per unit and is overwritten.  Returns the number of active units.
func Select(code []float64, order []int, inhib *mat.Dense, thr float64) int {
	sig := make([]float64, len(code))
	for i := range code {
		code[i] = 0
	}
	nact := 0
	for _, ui := range order {
		if sig[ui] >= thr {
			continue
		}
		code[ui] = 1
		nact++
		for j, h := range inhib.RawRowView(ui) {
			sig[j] += h
		}
	}
	return nact
}
