// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/neocognitron/internal/ops"
	"github.com/born-ml/neocognitron/internal/parallel"
	"github.com/born-ml/neocognitron/tensor"
)

// Errors returned by the feature-map helpers.
var (
	ErrInvalidRank      = ops.ErrInvalidRank
	ErrInvalidDimension = ops.ErrInvalidDimension
)

// RankError reports a feature map of unsupported rank.
type RankError = ops.RankError

// DimensionError reports a non-positive size or stride, or negative padding.
type DimensionError = ops.DimensionError

// Padding holds (top, bottom) and (left, right) padding.
type Padding = ops.Padding

// ParallelConfig controls how padded planes are filled.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a configuration sized to the machine.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// PadOption configures ApplyPadding, ApplyPaddingWithFill and PadSame.
type PadOption = ops.PadOption

// WithParallel sets how padded planes are filled for one call.
func WithParallel(cfg ParallelConfig) PadOption {
	return ops.WithParallel(cfg)
}

// AsBatch returns a rank-4 batch for a rank-3 or rank-4 feature map and
// whether a singleton batch dimension was prepended.
func AsBatch[T tensor.DType](fm *tensor.Tensor[T]) (*tensor.Tensor[T], bool, error) {
	return ops.AsBatch(fm)
}

// Unbatch removes the batch dimension added by AsBatch when promoted is true.
func Unbatch[T tensor.DType](t *tensor.Tensor[T], promoted bool) (*tensor.Tensor[T], error) {
	return ops.Unbatch(t, promoted)
}

// ComputeSamePadding returns the "same" padding for a strided convolution.
func ComputeSamePadding(height, width, kernelHeight, kernelWidth, stride int) (Padding, error) {
	return ops.ComputeSamePadding(height, width, kernelHeight, kernelWidth, stride)
}

// SameOutputSize returns ceil(dim / stride).
func SameOutputSize(dim, stride int) int {
	return ops.SameOutputSize(dim, stride)
}

// ApplyPadding returns a zero-filled padded copy of fm.
func ApplyPadding[T tensor.DType](fm *tensor.Tensor[T], pad Padding, opts ...PadOption) (*tensor.Tensor[T], error) {
	return ops.ApplyPadding(fm, pad, opts...)
}

// ApplyPaddingWithFill returns a padded copy of fm with the given border value.
func ApplyPaddingWithFill[T tensor.DType](fm *tensor.Tensor[T], pad Padding, fill T, opts ...PadOption) (*tensor.Tensor[T], error) {
	return ops.ApplyPaddingWithFill(fm, pad, fill, opts...)
}

// PadSame computes and applies "same" padding for the given kernel and stride.
func PadSame[T tensor.DType](fm *tensor.Tensor[T], kernelHeight, kernelWidth, stride int, opts ...PadOption) (*tensor.Tensor[T], Padding, error) {
	return ops.PadSame(fm, kernelHeight, kernelWidth, stride, opts...)
}
