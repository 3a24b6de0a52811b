// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the feature-map helpers of a neocognitron layer.
//
// # Batching
//
// Layers accept either a single feature map (for example the input image) or
// a batch produced by a previous layer. AsBatch converts both into batch
// form and reports whether a batch dimension was added, so Unbatch can
// remove it from the layer's result:
//
//	batch, promoted, err := ops.AsBatch(fm)
//	if err != nil {
//	    return err
//	}
//	out, err := ops.Unbatch(layer(batch), promoted)
//
// # Same Padding
//
// ComputeSamePadding returns the padding that keeps a strided convolution's
// output at ceil(size/stride) along each spatial axis. ApplyPadding
// materializes a Padding on a feature map:
//
//	pad, err := ops.ComputeSamePadding(28, 28, 5, 5, 2) // (1,2),(1,2)
//	padded, err := ops.ApplyPadding(fm, pad)
//
// # Errors
//
// Invalid ranks fail with ErrInvalidRank, non-positive sizes or negative
// padding with ErrInvalidDimension. Use errors.Is to classify them.
package ops
