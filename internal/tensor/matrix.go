package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromMatrix converts a gonum matrix into a single-channel feature map of
// shape [1, rows, cols]. The values are copied.
func FromMatrix(m mat.Matrix) *Tensor[float64] {
	rows, cols := m.Dims()
	t := Zeros[float64](Shape{1, rows, cols})
	data := t.Data()

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = m.At(i, j)
		}
	}
	return t
}

// Plane extracts one [H, W] plane of a float64 feature map as a gonum matrix.
// The leading indices select the plane, e.g. Plane(fm, c) for a rank-3 map
// or Plane(fm, n, c) for a rank-4 batch. The values are copied.
func Plane(t *Tensor[float64], indices ...int) (*mat.Dense, error) {
	shape := t.Shape()
	if len(shape) < 2 || len(indices) != len(shape)-2 {
		return nil, fmt.Errorf("plane: need %d leading indices for shape %v, got %d",
			max(len(shape)-2, 0), shape, len(indices))
	}

	strides := t.raw.Strides()
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			return nil, fmt.Errorf("plane: index %d out of bounds for dimension %d (size %d)", idx, i, shape[i])
		}
		off += idx * strides[i]
	}

	h, w := shape[len(shape)-2], shape[len(shape)-1]
	values := make([]float64, h*w)
	copy(values, t.Data()[off:off+h*w])
	return mat.NewDense(h, w, values), nil
}
