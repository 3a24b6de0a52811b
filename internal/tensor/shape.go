package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Insert returns a new shape with a dimension of the given size inserted at dim.
// dim may equal len(s) to append. Panics if dim is out of range.
func (s Shape) Insert(dim, size int) Shape {
	if dim < 0 || dim > len(s) {
		panic(fmt.Sprintf("insert: dim %d out of range for rank %d", dim, len(s)))
	}
	out := make(Shape, 0, len(s)+1)
	out = append(out, s[:dim]...)
	out = append(out, size)
	return append(out, s[dim:]...)
}

// Remove returns a new shape with dimension dim dropped.
func (s Shape) Remove(dim int) Shape {
	if dim < 0 || dim >= len(s) {
		panic(fmt.Sprintf("remove: dim %d out of range for rank %d", dim, len(s)))
	}
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:dim]...)
	return append(out, s[dim+1:]...)
}

// normalizeDim resolves a possibly negative dimension index against rank.
func normalizeDim(dim, rank int) int {
	if dim < 0 {
		dim += rank
	}
	return dim
}
