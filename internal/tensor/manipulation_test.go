package tensor

import "testing"

func TestUnsqueeze(t *testing.T) {
	fm := Arange[float32](Shape{3, 4, 5})

	tests := []struct {
		dim  int
		want Shape
	}{
		{0, Shape{1, 3, 4, 5}},
		{1, Shape{3, 1, 4, 5}},
		{3, Shape{3, 4, 5, 1}},
		{-1, Shape{3, 4, 5, 1}},
		{-4, Shape{1, 3, 4, 5}},
	}

	for _, tt := range tests {
		got := fm.Unsqueeze(tt.dim)
		assertEqualShape(t, tt.want, got.Shape(), "Unsqueeze")
		if !got.SharesStorage(fm) {
			t.Errorf("Unsqueeze(%d) should be a view", tt.dim)
		}
	}
}

func TestUnsqueezeOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Unsqueeze(5) on rank 3 should panic")
		}
	}()
	Zeros[float32](Shape{1, 2, 2}).Unsqueeze(5)
}

func TestSqueeze(t *testing.T) {
	batch := Arange[int32](Shape{1, 2, 3, 1})

	assertEqualShape(t, Shape{2, 3, 1}, batch.Squeeze(0).Shape(), "Squeeze(0)")
	assertEqualShape(t, Shape{1, 2, 3}, batch.Squeeze(-1).Shape(), "Squeeze(-1)")

	defer func() {
		if recover() == nil {
			t.Error("Squeeze of a non-singleton dim should panic")
		}
	}()
	batch.Squeeze(1)
}

func TestReshapeView(t *testing.T) {
	fm := Arange[float64](Shape{2, 6})
	view := fm.Reshape(Shape{2, 2, 3})

	view.Set(-1, 1, 1, 2)
	if fm.At(1, 5) != -1 {
		t.Error("Reshape should share data with the source")
	}
}

func TestEqual(t *testing.T) {
	a := Arange[float32](Shape{2, 2})
	b := Arange[float32](Shape{2, 2})

	if !a.Equal(b) {
		t.Error("identical tensors should be equal")
	}
	if a.Equal(a.Reshape(Shape{4})) {
		t.Error("tensors of different shape should differ")
	}
	b.Set(9, 0, 0)
	if a.Equal(b) {
		t.Error("tensors with different data should differ")
	}
	if a.Equal(nil) {
		t.Error("nil should never be equal")
	}
}
