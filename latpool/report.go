// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
)

// SizeReport returns a string reporting the size and memory footprint
// of the weights and statistics.
func (pl *Pooler) SizeReport() string {
	var b strings.Builder
	n, m := pl.Config.OutputSize, pl.Config.InputSize
	items := []struct {
		name string
		size int
	}{
		{"Wts", n * m},
		{"BoostFac", n},
		{"InhibWts", n * n},
		{"Stats.Pairs", n * n},
		{"Stats.Units", n},
	}
	tot := 0
	for _, it := range items {
		mem := it.size * 8
		tot += mem
		fmt.Fprintf(&b, "%14s:\t Values: %d\t Mem: %v\n", it.name, it.size, (datasize.ByteSize)(mem).HumanReadable())
	}
	fmt.Fprintf(&b, "\n%14s:\t Mem: %v\n", "Total", (datasize.ByteSize)(tot).HumanReadable())
	return b.String()
}

// ParamsString returns a one-line summary of the main parameters.
func (pl *Pooler) ParamsString() string {
	cf := &pl.Config
	return fmt.Sprintf("In: %d\t Out: %d\t CodeWeight: %d (sparsity %.4g)\t Lrate: %g\t IncDec: %g\t Period: %g\t Boost: %g\t Inhib: %v(%g)\t Score: %v",
		cf.InputSize, cf.OutputSize, cf.CodeWeight, cf.Sparsity(), cf.Learn.Lrate, cf.Learn.IncDecRatio,
		cf.Avg.Period, cf.Boost.Strength, cf.Inhib.Type, cf.Inhib.Strength, cf.Score.Mode)
}
