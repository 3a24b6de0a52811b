// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/neocognitron/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestRawTensorAPI verifies the RawTensor alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
	require.NoError(t, err)

	assert.True(t, raw.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Float32, raw.DType())
	assert.Equal(t, 6, raw.NumElements())
	assert.Len(t, raw.AsFloat32(), 6)

	view := raw.View(tensor.Shape{6})
	assert.True(t, view.SharesBuffer(raw))
}

func TestPublicCreation(t *testing.T) {
	fm, err := tensor.FromSlice([]int32{1, 2, 3, 4}, tensor.Shape{1, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, int32(4), fm.At(0, 1, 1))

	assert.Equal(t, []float64{0, 0}, tensor.Zeros[float64](tensor.Shape{2}).Data())
	assert.Equal(t, []uint8{1, 1}, tensor.Ones[uint8](tensor.Shape{2}).Data())
	assert.Equal(t, []float32{7, 7}, tensor.Full[float32](tensor.Shape{2}, 7).Data())
	assert.Equal(t, []int64{0, 1, 2}, tensor.Arange[int64](tensor.Shape{3}).Data())

	raw, err := tensor.NewRaw(tensor.Shape{2}, tensor.Int64)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2}, tensor.New[int64](raw).Shape())
}

func TestPublicMatrixRoundTrip(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	fm := tensor.FromMatrix(m)
	batch := fm.Unsqueeze(0)

	plane, err := tensor.Plane(batch, 0, 0)
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, plane))
}
