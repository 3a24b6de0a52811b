package tensor

import "fmt"

// Tensor is a generic dense tensor with element type T.
//
// Type Parameters:
//   - T: Data type (must satisfy DType constraint)
//
// Example:
//
//	fm := tensor.Zeros[float32](Shape{3, 28, 28})
//	fm.Set(1, 0, 14, 14)
type Tensor[T DType] struct {
	raw *RawTensor
}

// New creates a Tensor from a RawTensor.
// Panics if the raw tensor's dtype does not match T.
func New[T DType](raw *RawTensor) *Tensor[T] {
	var dummy T
	if dt := inferDataType(dummy); raw.DType() != dt {
		panic(fmt.Sprintf("tensor: raw dtype %s does not match %s", raw.DType(), dt))
	}
	return &Tensor[T]{raw: raw}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	t := New[T](raw)
	copy(t.Data(), data)

	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.raw.Shape()
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return t.raw.Shape().Rank()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[T]) Raw() *RawTensor {
	return t.raw
}

// Data returns a typed slice view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor
// and every view sharing its storage.
func (t *Tensor[T]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	case int32:
		return any(t.raw.AsInt32()).([]T)
	case int64:
		return any(t.raw.AsInt64()).([]T)
	case uint8:
		return any(t.raw.AsUint8()).([]T)
	default:
		panic("unsupported type")
	}
}

// offset computes the flat index for the given indices.
func (t *Tensor[T]) offset(indices []int) int {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	off := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		off += idx * strides[i]
	}
	return off
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	fm := tensor.Zeros[float32](Shape{1, 3, 4})
//	value := fm.At(0, 1, 2) // channel 0, row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	return t.Data()[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T]) Set(value T, indices ...int) {
	t.Data()[t.offset(indices)] = value
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.raw.DType(), t.raw.Shape())
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{raw: t.raw.Copy()}
}
