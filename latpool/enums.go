// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// ScoreModes are the ways feedforward weights enter the unit scores.
type ScoreModes int32

//go:generate stringer -type=ScoreModes

var KiT_ScoreModes = kit.Enums.AddEnum(ScoreModesN, false, nil)

func (ev ScoreModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ScoreModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// UnmarshalText sets the value from its name, for config files.
func (ev *ScoreModes) UnmarshalText(b []byte) error {
	if err := ev.FromString(string(b)); err != nil {
		return fmt.Errorf("latpool: unknown ScoreModes value %q", b)
	}
	return nil
}

const (
	// RawScore uses the continuous weight values
	RawScore ScoreModes = iota

	// ThreshScore binarizes the weights at Score.PermThr, as in
	// a classic spatial pooler with connected synapses
	ThreshScore

	ScoreModesN
)

// Events are the training lifecycle events sent to observers.
type Events int32

//go:generate stringer -type=Events

var KiT_Events = kit.Enums.AddEnum(EventsN, false, nil)

func (ev Events) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Events) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// EpochStart is sent before the first batch of an epoch
	EpochStart Events = iota

	// EpochEnd is sent after the last batch of an epoch
	EpochEnd

	// BatchStart is sent before a batch is encoded
	BatchStart

	// BatchEnd is sent after the batch has been encoded and learned,
	// with the codes available in Event.Output
	BatchEnd

	EventsN
)
