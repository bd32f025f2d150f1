// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"gonum.org/v1/gonum/mat"
)

// WeightsFilename returns the standard weights file name for given
// model name, extra tag (may be empty) and epoch.
func WeightsFilename(name, tag string, epoch int) string {
	if tag != "" {
		name += "_" + tag
	}
	return fmt.Sprintf("%s_%05d.wts.gz", name, epoch)
}

// WriteWeights writes the feedforward weights, boost factors, inhibitory
// weights and pairwise activity statistics, in that order, using the gonum
// binary matrix encoding.  Together these are all the learned state.
func (pl *Pooler) WriteWeights(w io.Writer) error {
	if _, err := pl.Wts.MarshalBinaryTo(w); err != nil {
		return err
	}
	if _, err := pl.BoostFac.MarshalBinaryTo(w); err != nil {
		return err
	}
	if _, err := pl.InhibWts.MarshalBinaryTo(w); err != nil {
		return err
	}
	_, err := pl.Stats.Pairs.MarshalBinaryTo(w)
	return err
}

// ReadWeights reads state written by WriteWeights.  The dimensions must
// match those of the pooler, and nothing is changed if any part fails to read.
func (pl *Pooler) ReadWeights(r io.Reader) error {
	var wts, inhib, pairs mat.Dense
	var boost mat.VecDense
	if _, err := wts.UnmarshalBinaryFrom(r); err != nil {
		return fmt.Errorf("latpool: reading feedforward weights: %w", err)
	}
	if _, err := boost.UnmarshalBinaryFrom(r); err != nil {
		return fmt.Errorf("latpool: reading boost factors: %w", err)
	}
	if _, err := inhib.UnmarshalBinaryFrom(r); err != nil {
		return fmt.Errorf("latpool: reading inhibitory weights: %w", err)
	}
	if _, err := pairs.UnmarshalBinaryFrom(r); err != nil {
		return fmt.Errorf("latpool: reading activity statistics: %w", err)
	}
	n := pl.Config.OutputSize
	if r, c := pairs.Dims(); r != n || c != n {
		return fmt.Errorf("%w: pair statistics are %dx%d, need %dx%d", ErrShape, r, c, n, n)
	}
	if err := pl.SetConnections(&wts, &boost, &inhib); err != nil {
		return err
	}
	return pl.Stats.SetPairs(&pairs)
}

// SaveWeights saves the learned state to given file.
// If filename has .gz extension, then file is gzip compressed.
func (pl *Pooler) SaveWeights(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	if filepath.Ext(filename) == ".gz" {
		gzw := gzip.NewWriter(fp)
		err = pl.WriteWeights(gzw)
		if cerr := gzw.Close(); err == nil {
			err = cerr
		}
	} else {
		bw := bufio.NewWriter(fp)
		err = pl.WriteWeights(bw)
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}
	if err != nil {
		return errors.Log(err)
	}
	return errors.Log(fp.Close())
}

// OpenWeights loads the learned state from given file.
// If filename has .gz extension, then file is gzip uncompressed.
func (pl *Pooler) OpenWeights(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	if filepath.Ext(filename) == ".gz" {
		gzr, err := gzip.NewReader(fp)
		if err != nil {
			return errors.Log(err)
		}
		defer gzr.Close()
		return errors.Log(pl.ReadWeights(gzr))
	}
	return errors.Log(pl.ReadWeights(bufio.NewReader(fp)))
}
