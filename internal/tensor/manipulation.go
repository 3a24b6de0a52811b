package tensor

import "fmt"

// Reshape returns a view of the tensor with a new shape.
//
// The number of elements must stay the same. This is a view operation (no data copy).
//
// Example:
//
//	x := tensor.Arange[float32](Shape{2, 6})
//	y := x.Reshape(Shape{2, 2, 3})
func (t *Tensor[T]) Reshape(shape Shape) *Tensor[T] {
	return &Tensor[T]{raw: t.raw.View(shape)}
}

// Unsqueeze adds a dimension of size 1 at the specified position.
//
// Supports negative dim indexing (-1 appends a trailing dimension).
// This is a view operation (no data copy).
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{3, 8, 8})
//	y := x.Unsqueeze(0)  // Shape: [1, 3, 8, 8]
//	z := x.Unsqueeze(-1) // Shape: [3, 8, 8, 1]
func (t *Tensor[T]) Unsqueeze(dim int) *Tensor[T] {
	rank := t.Rank()
	if dim < 0 {
		dim += rank + 1
	}
	if dim < 0 || dim > rank {
		panic(fmt.Sprintf("unsqueeze: dim out of range for rank %d", rank))
	}
	return t.Reshape(t.Shape().Insert(dim, 1))
}

// Squeeze removes a dimension of size 1 at the specified position.
//
// Panics if the dimension size is not 1.
// Supports negative dim indexing.
// This is a view operation (no data copy).
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{1, 3, 8, 8})
//	y := x.Squeeze(0) // Shape: [3, 8, 8]
func (t *Tensor[T]) Squeeze(dim int) *Tensor[T] {
	shape := t.Shape()
	d := normalizeDim(dim, len(shape))
	if d < 0 || d >= len(shape) {
		panic(fmt.Sprintf("squeeze: dim %d out of range for rank %d", dim, len(shape)))
	}
	if shape[d] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, expected 1", dim, shape[d]))
	}
	return t.Reshape(shape.Remove(d))
}

// Equal reports whether both tensors have the same shape and elements.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if other == nil || !t.Shape().Equal(other.Shape()) {
		return false
	}
	a, b := t.Data(), other.Data()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SharesStorage reports whether both tensors are views over the same buffer.
func (t *Tensor[T]) SharesStorage(other *Tensor[T]) bool {
	return other != nil && t.raw.SharesBuffer(other.raw)
}
