package motion

// round13Mask is a row-major transcription of filters.h's round_kernel
// constant table, shared verbatim by that file's dilate() and erode().
// 121 of its 169 cells are set.
var round13Mask = [13 * 13]int{
	0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0,
	0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0,
	0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
	0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0,
	0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0,
	0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0,
}

func nonZeroPostprocess(acc int) byte {
	if acc == 0 {
		return 0
	}
	return 255
}

// DilateSquare builds a flat n x n structuring element, centered
// (anchor n/2, n/2), stride 1, for use with [Kernel.Convolve] against a
// same-shape destination: any non-zero cell in the window turns the
// output on.
func DilateSquare(n int) Kernel[int] {
	return NewHomogeneousKernel(1, n, n, n/2, n/2, 1, 1, nonZeroPostprocess)
}

// DilateRound13 builds the 13x13 round structuring element dilate recipe,
// the round-kernel counterpart to DilateSquare. Not used by Detector's
// pipeline (which dilates with a flat square element); exercised directly
// by its own unit test.
func DilateRound13() Kernel[int] {
	elements := append([]int(nil), round13Mask[:]...)
	return NewKernel(elements, 13, 13, 6, 6, 1, 1, nonZeroPostprocess)
}

// Erode13 builds the 13x13 round structuring element erode recipe. The
// 120*255 cutoff is filters.h's erode() postprocess lambda
// (x < 120*numeric_limits<T>::max()) carried over unchanged: 120 of the
// mask's 121 set cells must agree before a pixel survives. Not wired into
// Detector.Detect; exercised by its own unit test and by the CLI's
// --erode-preview debug flag.
func Erode13() Kernel[int] {
	elements := append([]int(nil), round13Mask[:]...)
	postprocess := func(acc int) byte {
		if acc < 120*255 {
			return 0
		}
		return 255
	}
	return NewKernel(elements, 13, 13, 6, 6, 1, 1, postprocess)
}

// downscaleKernel builds the box-filter-and-stride kernel for a given
// integer downscale factor: a factor x factor all-ones kernel, anchor
// (0,0), stride (factor,factor), postprocess floor(acc / factor^2).
func downscaleKernel(factor int) Kernel[int] {
	area := factor * factor
	postprocess := func(acc int) byte {
		return byte(acc / area)
	}
	return NewHomogeneousKernel(1, factor, factor, 0, 0, factor, factor, postprocess)
}

// DownscaledSize returns the destination shape produced by downscaling a
// w x h image by the given integer factor, i.e. floor division per axis.
func DownscaledSize(w, h, factor int) (int, int) {
	return w / factor, h / factor
}
