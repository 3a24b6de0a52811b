// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/neocognitron/internal/tensor"
)

// RawTensor is the untyped tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType()
//   - Typed zero-copy data access via AsFloat32(), AsInt64(), etc.
//   - Views over a shared buffer via View()
//
// Most users should use the high-level Tensor[T] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32()             // Typed access
//	view := raw.View(tensor.Shape{6})   // Shares the buffer
type RawTensor = tensor.RawTensor

// NewRaw creates a new zeroed raw tensor with the given shape and dtype.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}
