package ops

import (
	"fmt"

	"github.com/born-ml/neocognitron/internal/parallel"
	"github.com/born-ml/neocognitron/internal/tensor"
)

// PadOption configures a padding call.
type PadOption func(*padOptions)

type padOptions struct {
	parallel parallel.Config
}

// WithParallel sets how the (batch, channel) planes are filled.
// Without it, parallel.DefaultConfig() is used.
func WithParallel(cfg parallel.Config) PadOption {
	return func(o *padOptions) {
		o.parallel = cfg
	}
}

func newPadOptions(opts []PadOption) padOptions {
	o := padOptions{parallel: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyPadding returns a zero-filled padded copy of a rank-3 or rank-4
// feature map. Padding is applied to the last two (spatial) axes and the
// result keeps the input's rank. The input is never modified.
func ApplyPadding[T tensor.DType](fm *tensor.Tensor[T], pad Padding, opts ...PadOption) (*tensor.Tensor[T], error) {
	var zero T
	return ApplyPaddingWithFill(fm, pad, zero, opts...)
}

// ApplyPaddingWithFill is ApplyPadding with a caller-chosen border value.
//
// Example:
//
//	fm := tensor.Ones[float32](tensor.Shape{1, 2, 2})
//	out, _ := ops.ApplyPaddingWithFill(fm, ops.Padding{Height: [2]int{1, 1}, Width: [2]int{1, 1}}, -1)
//	// out has shape [1, 4, 4] with -1 around a 2x2 block of ones.
func ApplyPaddingWithFill[T tensor.DType](fm *tensor.Tensor[T], pad Padding, fill T, opts ...PadOption) (*tensor.Tensor[T], error) {
	options := newPadOptions(opts)

	if err := pad.Validate(); err != nil {
		return nil, fmt.Errorf("apply padding: %w", err)
	}

	batch, promoted, err := AsBatch(fm)
	if err != nil {
		return nil, fmt.Errorf("apply padding: %w", err)
	}

	shape := batch.Shape()
	n, c, h, w := shape[0], shape[1], shape[2], shape[3]
	padH, padW := pad.Total()
	outH, outW := h+padH, w+padW

	out := tensor.Full[T](tensor.Shape{n, c, outH, outW}, fill)
	src := batch.Data()
	dst := out.Data()

	parallel.ForBatch(n, c, func(b, ch int) {
		plane := b*c + ch
		srcBase := plane * h * w
		dstBase := plane*outH*outW + pad.Height[0]*outW + pad.Width[0]
		for y := 0; y < h; y++ {
			copy(dst[dstBase+y*outW:dstBase+y*outW+w], src[srcBase+y*w:srcBase+(y+1)*w])
		}
	}, options.parallel)

	return Unbatch(out, promoted)
}

// PadSame computes the "same" padding for fm's spatial size and the given
// kernel and stride, and applies it with zero fill.
func PadSame[T tensor.DType](fm *tensor.Tensor[T], kernelHeight, kernelWidth, stride int, opts ...PadOption) (*tensor.Tensor[T], Padding, error) {
	batch, _, err := AsBatch(fm)
	if err != nil {
		return nil, Padding{}, fmt.Errorf("pad same: %w", err)
	}

	shape := batch.Shape()
	pad, err := ComputeSamePadding(shape[2], shape[3], kernelHeight, kernelWidth, stride)
	if err != nil {
		return nil, Padding{}, fmt.Errorf("pad same: %w", err)
	}

	out, err := ApplyPadding(fm, pad, opts...)
	if err != nil {
		return nil, Padding{}, fmt.Errorf("pad same: %w", err)
	}
	return out, pad, nil
}
