package motion

import "testing"

func TestAbsDiffCommutative(t *testing.T) {
	a := View([]byte{10, 200, 0, 255}, 2, 2)
	b := View([]byte{50, 20, 5, 0}, 2, 2)
	dstAB := NewImage(2, 2)
	dstBA := NewImage(2, 2)
	AbsDiff(dstAB, a, b)
	AbsDiff(dstBA, b, a)
	for i := range dstAB.Pix {
		if dstAB.Pix[i] != dstBA.Pix[i] {
			t.Fatalf("absdiff not commutative at %d: %d vs %d", i, dstAB.Pix[i], dstBA.Pix[i])
		}
	}
	want := []byte{40, 180, 5, 255}
	for i, w := range want {
		if dstAB.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, dstAB.Pix[i], w)
		}
	}
}

func TestAbsDiffAliasesDst(t *testing.T) {
	a := NewImage(2, 2)
	copy(a.Pix, []byte{10, 200, 0, 255})
	b := View([]byte{50, 20, 5, 0}, 2, 2)
	AbsDiff(a, a, b) // dst aliases src a
	want := []byte{40, 180, 5, 255}
	for i, w := range want {
		if a.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, a.Pix[i], w)
		}
	}
}

func TestThresholdIdempotent(t *testing.T) {
	src := View([]byte{0, 50, 127, 128, 200, 255}, 6, 1)
	once := NewImage(6, 1)
	twice := NewImage(6, 1)
	Threshold(once, src, 127)
	Threshold(twice, once, 127)
	for i := range once.Pix {
		if once.Pix[i] != twice.Pix[i] {
			t.Fatalf("threshold not idempotent at %d: %d vs %d", i, once.Pix[i], twice.Pix[i])
		}
	}
	want := []byte{0, 0, 0, 255, 255, 255}
	for i, w := range want {
		if once.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, once.Pix[i], w)
		}
	}
}

func TestThresholdAliasesSrc(t *testing.T) {
	buf := NewImage(3, 1)
	copy(buf.Pix, []byte{0, 127, 128})
	Threshold(buf, buf, 127)
	want := []byte{0, 0, 255}
	for i, w := range want {
		if buf.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, buf.Pix[i], w)
		}
	}
}

func TestDownscale4x(t *testing.T) {
	src := NewImage(8, 4)
	for i := range src.Pix {
		src.Pix[i] = 16 // every cell 16, 16 cells per 4x4 block sum=256, /16=16
	}
	w, h := DownscaledSize(8, 4, 4)
	dst := NewImage(w, h)
	Downscale(dst, src, 4)
	for i, v := range dst.Pix {
		if v != 16 {
			t.Errorf("dst.Pix[%d] = %d, want 16", i, v)
		}
	}
}

func TestDilateSquareSpreadsNonZero(t *testing.T) {
	src := NewImage(5, 5)
	src.Set(2, 2, 255)
	dst := NewImage(5, 5)
	Dilate(dst, src, DilateSquare(3))
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			inBlock := r >= 1 && r <= 3 && c >= 1 && c <= 3
			got := dst.At(r, c)
			if inBlock && got != 255 {
				t.Errorf("(%d,%d) = %d, want 255", r, c, got)
			}
			if !inBlock && got != 0 {
				t.Errorf("(%d,%d) = %d, want 0", r, c, got)
			}
		}
	}
}

func TestPadCentersAndFillsMargin(t *testing.T) {
	src := View([]byte{1, 2, 3, 4}, 2, 2)
	dst := NewImage(4, 4)
	Pad(dst, src, 9, 1)
	want := []byte{
		9, 9, 9, 9,
		9, 1, 2, 9,
		9, 3, 4, 9,
		9, 9, 9, 9,
	}
	for i, w := range want {
		if dst.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, dst.Pix[i], w)
		}
	}
}
