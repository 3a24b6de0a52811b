package tensor

import (
	"fmt"
	"unsafe"
)

// storage is the element memory behind a tensor. Views hold the same
// *storage, which is what SharesBuffer compares.
type storage struct {
	data []byte
}

// RawTensor is the untyped tensor representation: a shape and row-major
// strides over a shared buffer.
type RawTensor struct {
	buffer *storage // Shared with every view
	shape  Shape    // Tensor dimensions
	stride []int    // Memory strides (row-major)
	dtype  DataType // Runtime type information
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawTensor{
		buffer: &storage{data: make([]byte, byteSize)},
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.buffer.data
}

// elements reinterprets the storage as a slice of E without copying.
// Panics if the tensor's dtype is not want.
func elements[E DType](r *RawTensor, want DataType) []E {
	if r.dtype != want {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, want))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*E)(unsafe.Pointer(&r.buffer.data[0])), r.NumElements())
}

// AsFloat32 returns the elements of a Float32 tensor. Zero-copy.
func (r *RawTensor) AsFloat32() []float32 { return elements[float32](r, Float32) }

// AsFloat64 returns the elements of a Float64 tensor. Zero-copy.
func (r *RawTensor) AsFloat64() []float64 { return elements[float64](r, Float64) }

// AsInt32 returns the elements of an Int32 tensor. Zero-copy.
func (r *RawTensor) AsInt32() []int32 { return elements[int32](r, Int32) }

// AsInt64 returns the elements of an Int64 tensor. Zero-copy.
func (r *RawTensor) AsInt64() []int64 { return elements[int64](r, Int64) }

// AsUint8 returns the elements of a Uint8 tensor. Zero-copy.
func (r *RawTensor) AsUint8() []uint8 { return elements[uint8](r, Uint8) }

// View returns a RawTensor with a new shape over the same buffer.
// The element count must match; no data is copied.
func (r *RawTensor) View(shape Shape) *RawTensor {
	if shape.NumElements() != r.NumElements() {
		panic(fmt.Sprintf("view: cannot view shape %v (%d elements) as %v (%d elements)",
			r.shape, r.NumElements(), shape, shape.NumElements()))
	}
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("view: %v", err))
	}
	return &RawTensor{
		buffer: r.buffer,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  r.dtype,
	}
}

// Copy returns a deep copy backed by a fresh buffer.
func (r *RawTensor) Copy() *RawTensor {
	buf := &storage{data: make([]byte, len(r.buffer.data))}
	copy(buf.data, r.buffer.data)
	return &RawTensor{
		buffer: buf,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
}

// SharesBuffer reports whether r and other are backed by the same storage.
func (r *RawTensor) SharesBuffer(other *RawTensor) bool {
	return other != nil && r.buffer == other.buffer
}
