package motion

import "testing"

func TestImageAtSet(t *testing.T) {
	img := NewImage(4, 3)
	img.Set(1, 2, 42)
	if got := img.At(1, 2); got != 42 {
		t.Fatalf("At(1,2) = %d, want 42", got)
	}
	if got := img.Pix[1*4+2]; got != 42 {
		t.Fatalf("row-major offset mismatch: Pix[6] = %d, want 42", got)
	}
}

func TestImageAtPad(t *testing.T) {
	img := View([]byte{1, 2, 3, 4}, 2, 2)
	cases := []struct {
		r, c int
		want byte
	}{
		{0, 0, 1}, {0, 1, 2}, {1, 0, 3}, {1, 1, 4},
		{-1, 0, 9}, {0, -1, 9}, {2, 0, 9}, {0, 2, 9},
	}
	for _, c := range cases {
		if got := img.AtPad(c.r, c.c, 9); got != c.want {
			t.Errorf("AtPad(%d,%d,9) = %d, want %d", c.r, c.c, got, c.want)
		}
	}
}

func TestImageCopyFrom(t *testing.T) {
	src := View([]byte{1, 2, 3, 4, 5, 6}, 3, 2)
	dst := NewImage(3, 2)
	dst.CopyFrom(src)
	for i := range src.Pix {
		if dst.Pix[i] != src.Pix[i] {
			t.Fatalf("byte %d: got %d want %d", i, dst.Pix[i], src.Pix[i])
		}
	}
	// Mutating src afterward must not affect dst: CopyFrom is a deep copy.
	src.Set(0, 0, 99)
	if dst.At(0, 0) == 99 {
		t.Fatal("CopyFrom aliased src instead of copying")
	}
}

func TestImageCopyFromShapeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on shape mismatch")
		}
	}()
	dst := NewImage(3, 2)
	src := NewImage(2, 3)
	dst.CopyFrom(src)
}

func TestViewRejectsShortBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on undersized buffer")
		}
	}()
	View([]byte{1, 2, 3}, 2, 2)
}
