// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latpool

import (
	"errors"
	"fmt"

	"github.com/emer/latpool/minibatch"
	"gonum.org/v1/gonum/mat"
)

// ErrStop can be returned by an Observer to end training early.
// Fit then returns nil.
var ErrStop = errors.New("latpool: stop training")

// Context describes the training run, and is shared by all events of one Fit call.
type Context struct {

	// epoch at which training ends (exclusive)
	NEpochs int

	// epoch at which training started
	InitEpoch int

	// number of samples per batch
	BatchSize int

	// number of batches in each epoch, including a final partial batch
	NBatches int

	// current epoch
	Epoch int

	// current batch within the epoch
	Batch int
}

// Event is a single training lifecycle notification.
type Event struct {

	// type of event
	Type Events

	// current epoch
	Epoch int

	// current batch within the epoch -- -1 for epoch events
	Batch int

	// input batch, for batch events
	Input *mat.Dense

	// codes produced for the input batch, for BatchEnd
	Output *mat.Dense
}

// Observer receives the training events from Fit, synchronously on the
// training goroutine.  A non-nil error aborts training, and is returned
// from Fit unless it is ErrStop.
type Observer interface {
	Observe(pl *Pooler, ev *Event, ctx *Context) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(pl *Pooler, ev *Event, ctx *Context) error

func (of ObserverFunc) Observe(pl *Pooler, ev *Event, ctx *Context) error {
	return of(pl, ev, ctx)
}

// notify sends the event to all observers, stopping at the first error.
func (pl *Pooler) notify(obs []Observer, ev *Event, ctx *Context) error {
	for _, ob := range obs {
		if err := ob.Observe(pl, ev, ctx); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}
			return fmt.Errorf("latpool: observer at %v epoch %d: %w", ev.Type, ev.Epoch, err)
		}
	}
	return nil
}

// Fit trains the pooler on the samples in x (one per column), for epochs
// initEpoch up to nEpochs.  Each epoch shuffles the samples into batches of
// batchSize using the pooler's own random generator, and each batch is
// encoded and then learned from.  Observers are notified at the start and
// end of every epoch and batch.
func (pl *Pooler) Fit(x mat.Matrix, batchSize, nEpochs, initEpoch int, obs ...Observer) error {
	if batchSize < 1 {
		return fmt.Errorf("%w: batch size %d < 1", ErrConfig, batchSize)
	}
	if initEpoch < 0 {
		return fmt.Errorf("%w: initial epoch %d < 0", ErrConfig, initEpoch)
	}
	n, err := pl.checkInput(x)
	if err != nil {
		return err
	}
	ctx := &Context{NEpochs: nEpochs, InitEpoch: initEpoch, BatchSize: batchSize,
		NBatches: minibatch.NBatches(n, batchSize)}
	err = pl.fit(x, ctx, obs)
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}

func (pl *Pooler) fit(x mat.Matrix, ctx *Context, obs []Observer) error {
	for epoch := ctx.InitEpoch; epoch < ctx.NEpochs; epoch++ {
		ctx.Epoch = epoch
		ctx.Batch = -1
		if err := pl.notify(obs, &Event{Type: EpochStart, Epoch: epoch, Batch: -1}, ctx); err != nil {
			return err
		}
		bs, err := minibatch.Batches(x, ctx.BatchSize, pl.Rand)
		if err != nil {
			return err
		}
		for bi, xb := range bs {
			ctx.Batch = bi
			ev := &Event{Type: BatchStart, Epoch: epoch, Batch: bi, Input: xb}
			if err := pl.notify(obs, ev, ctx); err != nil {
				return err
			}
			yb, err := pl.Encode(xb)
			if err != nil {
				return err
			}
			if err := pl.UpdateConns(xb, yb); err != nil {
				return err
			}
			ev = &Event{Type: BatchEnd, Epoch: epoch, Batch: bi, Input: xb, Output: yb}
			if err := pl.notify(obs, ev, ctx); err != nil {
				return err
			}
		}
		pl.Epoch = epoch + 1
		ctx.Batch = -1
		if err := pl.notify(obs, &Event{Type: EpochEnd, Epoch: epoch, Batch: -1}, ctx); err != nil {
			return err
		}
	}
	return nil
}
