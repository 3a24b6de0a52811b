package tensor

// Zeros creates a tensor filled with zeros.
// Panics on an invalid shape.
//
// Example:
//
//	fm := tensor.Zeros[float32](Shape{3, 4, 4})
func Zeros[T DType](shape Shape) *Tensor[T] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		panic(err)
	}

	// Data is already zero-initialized by make()
	return New[T](raw)
}

// Ones creates a tensor filled with ones.
//
// Example:
//
//	t := tensor.Ones[float64](Shape{2, 3})
func Ones[T DType](shape Shape) *Tensor[T] {
	return Full[T](shape, 1)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14)
func Full[T DType](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order,
// shaped as requested. Handy for building feature maps with distinct values.
//
// Example:
//
//	t := tensor.Arange[int32](Shape{2, 3}) // [[0 1 2] [3 4 5]]
func Arange[T DType](shape Shape) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.Data()
	for i := range data {
		data[i] = T(i)
	}
	return t
}
