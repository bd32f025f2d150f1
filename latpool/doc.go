// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package latpool is a spatial pooler with learned lateral inhibition: it maps
dense input vectors onto sparse binary codes of roughly CodeWeight active
units out of OutputSize.

Each batch goes through two steps:

* Encode: unit scores are the boosted feedforward net input, and units are
visited from highest to lowest score, each winner inhibiting the others
through the inhibitory weights until the per-unit inhibition budget
(the sparsity CodeWeight / OutputSize) is used up (see latinhib).

* UpdateConns: Hebbian learning of the feedforward weights, then the running
averages of unit and pairwise activity, then the homeostatic boost factors and
the inhibitory weights, which are the row-normalized pairwise averages.

Fit runs these over shuffled minibatches for a number of epochs, sending
lifecycle events to Observers (logging, checkpointing, early stopping).
*/
package latpool
