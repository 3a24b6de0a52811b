package ops

import "github.com/born-ml/neocognitron/internal/tensor"

// Feature map ranks.
const (
	SingleRank = 3 // [C, H, W]
	BatchRank  = 4 // [N, C, H, W]
)

// AsBatch brings a feature map into batch form.
//
// A layer may receive a single feature map (the original image) or a batch of
// maps from a previous layer. A rank-3 map is returned as a [1, C, H, W] view
// sharing its storage, with promoted set. A rank-4 map is returned as is.
// Any other rank fails with ErrInvalidRank.
//
// Example:
//
//	batch, promoted, err := ops.AsBatch(fm)
//	out := layer(batch)
//	out, err = ops.Unbatch(out, promoted)
func AsBatch[T tensor.DType](fm *tensor.Tensor[T]) (*tensor.Tensor[T], bool, error) {
	if fm == nil {
		return nil, false, &RankError{Op: "as batch", Rank: 0, Want: "3 or 4"}
	}

	switch fm.Rank() {
	case SingleRank:
		return fm.Unsqueeze(0), true, nil
	case BatchRank:
		return fm, false, nil
	default:
		return nil, false, &RankError{Op: "as batch", Rank: fm.Rank(), Want: "3 or 4"}
	}
}

// Unbatch undoes AsBatch: when promoted is true it drops the singleton batch
// dimension, otherwise it returns t unchanged.
func Unbatch[T tensor.DType](t *tensor.Tensor[T], promoted bool) (*tensor.Tensor[T], error) {
	if !promoted {
		return t, nil
	}
	if t == nil {
		return nil, &RankError{Op: "unbatch", Rank: 0, Want: "4 with batch size 1"}
	}
	if t.Rank() != BatchRank || t.Shape()[0] != 1 {
		return nil, &RankError{Op: "unbatch", Rank: t.Rank(), Want: "4 with batch size 1"}
	}
	return t.Squeeze(0), nil
}
