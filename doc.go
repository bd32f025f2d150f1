// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package latpool is the overall repository for the lateral pooler, an
unsupervised sparse coding algorithm in which the mutual inhibition between
output units is learned from their co-activity, as an alternative to the
fixed inhibition of a classic spatial pooler.

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* latpool: the pooler itself: configuration, encoding, learning rules,
the training loop with its observers, and weights files.

* latinhib: the sequential winner selection with an inhibition budget,
and the derivation of inhibitory weights from co-activity statistics.

* minibatch: reproducible shuffling of a dataset into minibatches.

* examples: runnable programs -- examples/synth trains a pooler on noisy
versions of a set of random prototype patterns.
*/
package latpool
