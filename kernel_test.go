package motion

import "testing"

func TestKernelHomogeneousStamp(t *testing.T) {
	// 2x2 all-ones summed over a 4x4 source, stride 2, anchor (0,0):
	// a plain box-filter downscale by 2.
	src := View([]byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}, 4, 4)
	k := NewHomogeneousKernel(1, 2, 2, 0, 0, 2, 2, func(acc int) byte { return byte(acc) })
	dst := NewImage(2, 2)
	k.Convolve(dst, src, 0)

	want := []byte{
		1 + 2 + 5 + 6, 3 + 4 + 7 + 8,
		9 + 10 + 13 + 14, 11 + 12 + 15 + 16,
	}
	for i, w := range want {
		if dst.Pix[i] != w {
			t.Errorf("dst.Pix[%d] = %d, want %d", i, dst.Pix[i], w)
		}
	}
}

func TestKernelHeterogeneousStamp(t *testing.T) {
	// A 1x3 horizontal [1,0,-1] edge kernel, anchor (1,0), stride (1,1).
	src := View([]byte{10, 20, 30, 40}, 4, 1)
	k := NewKernel([]int{1, 0, -1}, 3, 1, 1, 0, 1, 1, func(acc int) byte {
		if acc < 0 {
			acc = -acc
		}
		return byte(acc)
	})
	dst := NewImage(4, 1)
	k.Convolve(dst, src, 0)
	// dst[0]: window covers pad(0),10,20 -> 1*0 + 0*10 + -1*20 = -20 -> abs 20
	// dst[1]: 10,20,30 -> 10-30 = -20 -> abs 20
	// dst[2]: 20,30,40 -> 20-40 = -20 -> abs 20
	// dst[3]: 30,40,pad -> 30-0 = 30
	want := []byte{20, 20, 20, 30}
	for i, w := range want {
		if dst.Pix[i] != w {
			t.Errorf("dst.Pix[%d] = %d, want %d", i, dst.Pix[i], w)
		}
	}
}

func TestKernelPaddedReadsNeverGoOutOfBounds(t *testing.T) {
	src := View([]byte{5}, 1, 1)
	k := NewHomogeneousKernel(1, 3, 3, 1, 1, 1, 1, func(acc int) byte { return byte(acc) })
	dst := NewImage(1, 1)
	k.Convolve(dst, src, 7) // should not panic; 8 pad cells at value 7, center at 5
	want := byte(5 + 8*7)
	if dst.Pix[0] != want {
		t.Errorf("dst.Pix[0] = %d, want %d", dst.Pix[0], want)
	}
}

func TestKernelInvalidAnchorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range anchor")
		}
	}()
	NewHomogeneousKernel(1, 3, 3, 3, 0, 1, 1, func(acc int) byte { return 0 })
}

func TestKernelInvalidStridePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero stride")
		}
	}()
	NewHomogeneousKernel(1, 3, 3, 0, 0, 0, 1, func(acc int) byte { return 0 })
}
