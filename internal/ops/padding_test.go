package ops

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSamePadding(t *testing.T) {
	tests := []struct {
		name          string
		h, w, kh, kw  int
		stride        int
		height, width [2]int
	}{
		{"odd kernel stride 1", 5, 5, 3, 3, 1, [2]int{1, 1}, [2]int{1, 1}},
		{"odd kernel stride 2", 5, 5, 3, 3, 2, [2]int{1, 1}, [2]int{1, 1}},
		{"1x1 kernel", 4, 4, 1, 1, 1, [2]int{0, 0}, [2]int{0, 0}},
		{"even kernel favors trailing side", 6, 6, 4, 4, 1, [2]int{1, 2}, [2]int{1, 2}},
		{"stride 2 even input", 4, 4, 3, 3, 2, [2]int{0, 1}, [2]int{0, 1}},
		{"independent axes", 7, 10, 5, 2, 3, [2]int{2, 2}, [2]int{0, 1}},
		{"kernel larger than input", 2, 3, 7, 9, 1, [2]int{3, 3}, [2]int{4, 4}},
		{"stride larger than input", 3, 3, 3, 3, 5, [2]int{0, 0}, [2]int{0, 0}},
		{"large stride clamps to zero", 8, 8, 1, 1, 3, [2]int{0, 0}, [2]int{0, 0}},
		{"max int stride", 5, 5, 3, 3, math.MaxInt, [2]int{0, 0}, [2]int{0, 0}},
		{"near max int height", math.MaxInt - 1, 5, 3, 3, 4, [2]int{0, 1}, [2]int{1, 1}},
		{"max int height stride 1", math.MaxInt, 1, 3, 3, 1, [2]int{1, 1}, [2]int{1, 1}},
		{"max int kernel", 1, 1, math.MaxInt, 1, 1, [2]int{math.MaxInt / 2, math.MaxInt - 1 - math.MaxInt/2}, [2]int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad, err := ComputeSamePadding(tt.h, tt.w, tt.kh, tt.kw, tt.stride)
			require.NoError(t, err)
			assert.Equal(t, tt.height, pad.Height)
			assert.Equal(t, tt.width, pad.Width)
		})
	}
}

// TestComputeSamePadding_Properties sweeps small sizes and checks totals and split.
func TestComputeSamePadding_Properties(t *testing.T) {
	for dim := 1; dim <= 12; dim++ {
		for k := 1; k <= 7; k++ {
			for s := 1; s <= 4; s++ {
				pad, err := ComputeSamePadding(dim, dim+1, k, k+1, s)
				require.NoError(t, err)

				out := (dim + s - 1) / s
				want := max(0, (out-1)*s+k-dim)
				h, _ := pad.Total()
				require.Equal(t, want, h, "dim=%d k=%d s=%d", dim, k, s)

				top, bottom := pad.Height[0], pad.Height[1]
				require.GreaterOrEqual(t, top, 0)
				require.GreaterOrEqual(t, bottom, top)
				require.LessOrEqual(t, bottom-top, 1)

				outW := (dim + 1 + s - 1) / s
				wantW := max(0, (outW-1)*s+k+1-(dim+1))
				_, w := pad.Total()
				require.Equal(t, wantW, w)

				// A valid convolution over the padded input yields ceil(dim/s) outputs.
				require.Equal(t, out, (dim+h-k)/s+1, "dim=%d k=%d s=%d", dim, k, s)
			}
		}
	}
}

func TestComputeSamePadding_Invalid(t *testing.T) {
	tests := []struct {
		name         string
		h, w, kh, kw int
		stride       int
		field        string
	}{
		{"zero stride", 5, 5, 3, 3, 0, "stride"},
		{"negative stride", 5, 5, 3, 3, -1, "stride"},
		{"zero height", 0, 5, 3, 3, 1, "height"},
		{"negative width", 5, -2, 3, 3, 1, "width"},
		{"zero kernel height", 5, 5, 0, 3, 1, "kernel height"},
		{"zero kernel width", 5, 5, 3, 0, 1, "kernel width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad, err := ComputeSamePadding(tt.h, tt.w, tt.kh, tt.kw, tt.stride)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDimension)
			assert.True(t, pad.IsZero())

			var dimErr *DimensionError
			require.True(t, errors.As(err, &dimErr))
			assert.Equal(t, tt.field, dimErr.Name)
		})
	}
}

func TestPadding_Helpers(t *testing.T) {
	pad := Padding{Height: [2]int{1, 2}, Width: [2]int{0, 1}}

	h, w := pad.Total()
	assert.Equal(t, 3, h)
	assert.Equal(t, 1, w)
	assert.False(t, pad.IsZero())
	assert.Equal(t, "(1,2),(0,1)", pad.String())
	assert.NoError(t, pad.Validate())

	bad := Padding{Width: [2]int{0, -1}}
	err := bad.Validate()
	assert.ErrorIs(t, err, ErrInvalidDimension)
	assert.Contains(t, err.Error(), "right")
}

func TestSameOutputSize(t *testing.T) {
	assert.Equal(t, math.MaxInt/2+1, SameOutputSize(math.MaxInt, 2))
	assert.Equal(t, 1, SameOutputSize(math.MaxInt, math.MaxInt))
	assert.Equal(t, 1, SameOutputSize(1, math.MaxInt))
	assert.Equal(t, 3, SameOutputSize(5, 2))
	assert.Equal(t, 2, SameOutputSize(4, 2))
	assert.Equal(t, 1, SameOutputSize(3, 5))
	assert.Equal(t, 7, SameOutputSize(7, 1))
}
