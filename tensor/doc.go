// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense feature-map container for neocognitron layers.
//
// # Overview
//
// A feature map is a Tensor[T] of rank 3 ([C, H, W]) or a batch of rank 4
// ([N, C, H, W]). The package provides:
//   - Generic typed tensors over float32, float64, int32, int64 and uint8
//   - Zero-copy views (Reshape, Unsqueeze, Squeeze) sharing one buffer
//   - Conversion to and from gonum matrices for single planes
//
// # Basic Usage
//
//	import "github.com/born-ml/neocognitron/tensor"
//
//	func main() {
//	    fm := tensor.Zeros[float32](tensor.Shape{3, 28, 28})
//	    batch := fm.Unsqueeze(0) // [1, 3, 28, 28], same storage
//	    _ = batch
//	}
//
// # Views
//
// Views never copy. Writing through Data() of a view is visible through
// every other view of the same buffer; use Clone for an independent copy.
package tensor
