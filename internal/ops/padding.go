package ops

import "fmt"

// Padding holds the elements to add before and after the data along each
// spatial axis: Height is (top, bottom), Width is (left, right).
type Padding struct {
	Height [2]int
	Width  [2]int
}

// Total returns the summed padding per axis.
func (p Padding) Total() (h, w int) {
	return p.Height[0] + p.Height[1], p.Width[0] + p.Width[1]
}

// IsZero reports whether the padding adds nothing.
func (p Padding) IsZero() bool {
	return p == Padding{}
}

// Validate rejects negative entries.
func (p Padding) Validate() error {
	values := [4]int{p.Height[0], p.Height[1], p.Width[0], p.Width[1]}
	names := [4]string{"top", "bottom", "left", "right"}
	for i, v := range values {
		if v < 0 {
			return &DimensionError{Op: "padding", Name: names[i], Value: v}
		}
	}
	return nil
}

// String formats the padding as (top,bottom),(left,right).
func (p Padding) String() string {
	return fmt.Sprintf("(%d,%d),(%d,%d)", p.Height[0], p.Height[1], p.Width[0], p.Width[1])
}

// SameOutputSize returns ceil(dim / stride), the output extent of a "same"
// convolution. Both arguments must be positive. It does not overflow for any
// positive int inputs.
func SameOutputSize(dim, stride int) int {
	out := dim / stride
	if dim%stride != 0 {
		out++
	}
	return out
}

// ComputeSamePadding returns the padding that makes a strided convolution
// produce ceil(H/stride) x ceil(W/stride) outputs.
//
// Per axis the total is max(0, (ceil(dim/stride)-1)*stride + kernel - dim).
// The leading side gets the floor half and the trailing side the rest, so
// bottom and right receive the extra unit when the total is odd.
// A kernel larger than the input is legal.
//
// Example:
//
//	pad, _ := ops.ComputeSamePadding(5, 5, 3, 3, 2) // (1,1),(1,1)
func ComputeSamePadding(height, width, kernelHeight, kernelWidth, stride int) (Padding, error) {
	args := []struct {
		name  string
		value int
	}{
		{"height", height},
		{"width", width},
		{"kernel height", kernelHeight},
		{"kernel width", kernelWidth},
		{"stride", stride},
	}
	for _, a := range args {
		if a.value <= 0 {
			return Padding{}, &DimensionError{Op: "same padding", Name: a.name, Value: a.value}
		}
	}

	return Padding{
		Height: splitPadding(samePaddingTotal(height, kernelHeight, stride)),
		Width:  splitPadding(samePaddingTotal(width, kernelWidth, stride)),
	}, nil
}

// samePaddingTotal is max(0, (out-1)*stride + kernel - dim) rearranged so that
// every intermediate stays in range: the last window starts covering
// dim - (out-1)*stride elements, a value in [1, stride].
func samePaddingTotal(dim, kernel, stride int) int {
	out := SameOutputSize(dim, stride)
	covered := dim - (out-1)*stride
	return max(0, kernel-covered)
}

func splitPadding(total int) [2]int {
	before := total / 2
	return [2]int{before, total - before}
}
