// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"fmt"
	"math"

	"github.com/emer/latpool/latinhib"
)

// Config holds all the construction parameters for a Pooler.
// Call Defaults and then set the fields of interest before NewPooler.
type Config struct {

	// number of input (visible) units
	InputSize int `def:"784" min:"1"`

	// number of output (hidden) units
	OutputSize int `def:"128" min:"1"`

	// desired number of active output units per sample -- CodeWeight / OutputSize is the sparsity, which is also the inhibition budget for each unit during encoding
	CodeWeight int `def:"4" min:"0"`

	// random seed for weight initialization and minibatch shuffling -- a negative value uses a fresh time-based seed, and is not reproducible
	Seed int64 `def:"-1"`

	// number of parallel goroutines used to encode the samples of a batch -- 0 or 1 encodes serially
	NThreads int `def:"0" min:"0"`

	// feedforward learning parameters
	Learn LearnParams `display:"inline"`

	// running-average activity statistics
	Avg AvgParams `display:"inline"`

	// homeostatic boosting of rarely active units
	Boost BoostParams `display:"inline"`

	// derivation of lateral inhibitory weights from the statistics
	Inhib latinhib.Params `display:"inline"`

	// how feedforward weights are turned into unit scores
	Score ScoreParams `display:"inline"`
}

func (cf *Config) Defaults() {
	cf.InputSize = 784
	cf.OutputSize = 128
	cf.CodeWeight = 4
	cf.Seed = -1
	cf.NThreads = 0
	cf.Learn.Defaults()
	cf.Avg.Defaults()
	cf.Boost.Defaults()
	cf.Inhib.Defaults()
	cf.Score.Defaults()
}

func (cf *Config) Update() {
	cf.Avg.Update()
}

// Validate checks that the parameters are consistent, returning
// an error wrapping ErrConfig describing the first problem found.
func (cf *Config) Validate() error {
	switch {
	case cf.InputSize < 1:
		return fmt.Errorf("%w: InputSize %d < 1", ErrConfig, cf.InputSize)
	case cf.OutputSize < 1:
		return fmt.Errorf("%w: OutputSize %d < 1", ErrConfig, cf.OutputSize)
	case cf.CodeWeight < 0 || cf.CodeWeight > cf.OutputSize:
		return fmt.Errorf("%w: CodeWeight %d outside of [0, %d]", ErrConfig, cf.CodeWeight, cf.OutputSize)
	case cf.NThreads < 0:
		return fmt.Errorf("%w: NThreads %d < 0", ErrConfig, cf.NThreads)
	}
	if err := cf.Learn.Validate(); err != nil {
		return err
	}
	return cf.Avg.Validate()
}

// Sparsity returns the fraction of output units that should be active,
// CodeWeight / OutputSize.
func (cf *Config) Sparsity() float64 {
	return float64(cf.CodeWeight) / float64(cf.OutputSize)
}

///////////////////////////////////////////////////////////////////////
//  LearnParams

// LearnParams control the Hebbian update of the feedforward weights.
// A weight increases when the output unit is active together with its input,
// and decreases (by 1/IncDecRatio as much) when the output unit is active
// while the input is off.
type LearnParams struct {

	// learning rate applied to the weight changes
	Lrate float64 `def:"0.01"`

	// ratio of increases to decreases -- the penalty for an active output with an inactive input is scaled by 1 / IncDecRatio
	IncDecRatio float64 `def:"1" min:"0"`
}

func (lp *LearnParams) Defaults() {
	lp.Lrate = 0.01
	lp.IncDecRatio = 1
}

func (lp *LearnParams) Validate() error {
	if !(lp.IncDecRatio > 0) || math.IsInf(lp.IncDecRatio, 0) {
		return fmt.Errorf("%w: IncDecRatio must be positive and finite, is %g", ErrConfig, lp.IncDecRatio)
	}
	if math.IsNaN(lp.Lrate) || math.IsInf(lp.Lrate, 0) {
		return fmt.Errorf("%w: Lrate must be finite, is %g", ErrConfig, lp.Lrate)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////
//  AvgParams

// AvgParams control the exponential moving averages of unit and
// pairwise activity.
type AvgParams struct {

	// smoothing period in batches for the running averages -- larger values integrate over longer histories
	Period float64 `def:"50" min:"1"`

	// initial value of all averages -- must be above zero so that inhibitory rows can always be normalized
	Init float64 `def:"1e-07" min:"0"`

	// decay factor = 1 - 1 / Period
	Beta float64 `edit:"-" display:"-" json:"-" xml:"-"`
}

func (ap *AvgParams) Update() {
	ap.Beta = 1 - 1/ap.Period
}

func (ap *AvgParams) Defaults() {
	ap.Period = 50
	ap.Init = 1e-7
	ap.Update()
}

func (ap *AvgParams) Validate() error {
	if !(ap.Period >= 1) || math.IsInf(ap.Period, 1) {
		return fmt.Errorf("%w: Avg.Period must be >= 1, is %g", ErrConfig, ap.Period)
	}
	if !(ap.Init > 0) {
		return fmt.Errorf("%w: Avg.Init must be > 0, is %g", ErrConfig, ap.Init)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////
//  BoostParams

// BoostParams control homeostatic boosting: scores are multiplied by
// exp(-Strength * avg activity), so units that have rarely been active
// are favored over units that are active often.
type BoostParams struct {

	// strength of the boosting -- 0 turns it off (all factors 1 after the first update)
	Strength float64 `def:"100"`
}

func (bp *BoostParams) Defaults() {
	bp.Strength = 100
}

// Factor returns the boost factor for given average activity.
func (bp *BoostParams) Factor(avg float64) float64 {
	return math.Exp(-bp.Strength * avg)
}

///////////////////////////////////////////////////////////////////////
//  ScoreParams

// ScoreParams determine how the feedforward weights are used
// to compute unit scores.
type ScoreParams struct {

	// RawScore uses the weights directly, ThreshScore uses binary connections where the weight exceeds PermThr
	Mode ScoreModes `def:"RawScore"`

	// permanence threshold for ThreshScore mode
	PermThr float64 `viewif:"Mode=ThreshScore" def:"0.5"`
}

func (sp *ScoreParams) Defaults() {
	sp.Mode = RawScore
	sp.PermThr = 0.5
}

// Weight returns the effective weight used for scoring.
func (sp *ScoreParams) Weight(wt float64) float64 {
	if sp.Mode != ThreshScore {
		return wt
	}
	if wt > sp.PermThr {
		return 1
	}
	return 0
}
