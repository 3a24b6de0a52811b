// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/neocognitron/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
)

// Shape represents the dimensions of a tensor.
// Example: Shape{3, 28, 28} is a single three-channel 28x28 feature map.
type Shape = tensor.Shape

// Tensor is a generic dense tensor.
//
// Example:
//
//	fm := tensor.Ones[float32](tensor.Shape{1, 4, 4})
//	fm.Set(0, 0, 2, 2)
type Tensor[T DType] = tensor.Tensor[T]

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T DType](shape Shape, value T) *Tensor[T] {
	return tensor.Full[T](shape, value)
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
func Arange[T DType](shape Shape) *Tensor[T] {
	return tensor.Arange[T](shape)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{1, 2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Ones, or FromSlice instead.
func New[T DType](raw *RawTensor) *Tensor[T] {
	return tensor.New[T](raw)
}

// gonum interop

// FromMatrix converts a gonum matrix into a [1, rows, cols] feature map.
func FromMatrix(m mat.Matrix) *Tensor[float64] {
	return tensor.FromMatrix(m)
}

// Plane extracts one [H, W] plane of a float64 feature map as a gonum matrix.
func Plane(t *Tensor[float64], indices ...int) (*mat.Dense, error) {
	return tensor.Plane(t, indices...)
}
