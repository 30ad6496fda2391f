package motion

// AbsDiff sets dst[i] = |a[i] - b[i]| for every pixel. a, b, and dst must
// share shape; dst may alias a or b.
func AbsDiff(dst, a, b Image) {
	shapeCheck("AbsDiff", a.Width, a.Height, b.Width, b.Height)
	shapeCheck("AbsDiff", a.Width, a.Height, dst.Width, dst.Height)
	for i := range dst.Pix[:a.Width*a.Height] {
		av, bv := int(a.Pix[i]), int(b.Pix[i])
		d := av - bv
		if d < 0 {
			d = -d
		}
		dst.Pix[i] = byte(d)
	}
}

// Threshold sets dst[i] = 0 if src[i] <= t, else 255. dst may alias src.
// Applying Threshold twice with the same t is idempotent.
func Threshold(dst, src Image, t byte) {
	shapeCheck("Threshold", dst.Width, dst.Height, src.Width, src.Height)
	for i, v := range src.Pix[:src.Width*src.Height] {
		if v <= t {
			dst.Pix[i] = 0
		} else {
			dst.Pix[i] = 255
		}
	}
}

// Pad copies src, centered, into dst, which must have shape
// (src.Width+2*padSize, src.Height+2*padSize); every margin cell added
// around src is set to padValue. Used only where the convolution engine
// cannot supply padded reads virtually; Kernel.Stamp reads
// through AtPad directly, so the pipeline itself never needs Pad.
func Pad(dst, src Image, padValue byte, padSize int) {
	shapeCheck("Pad", dst.Width, dst.Height, src.Width+2*padSize, src.Height+2*padSize)
	for i := range dst.Pix[:dst.Width*dst.Height] {
		dst.Pix[i] = padValue
	}
	for r := 0; r < src.Height; r++ {
		for c := 0; c < src.Width; c++ {
			dst.Set(r+padSize, c+padSize, src.At(r, c))
		}
	}
}

// Downscale box-filters and strides src down by the given integer
// factor: a factor x factor all-ones kernel, stride (factor, factor),
// postprocess floor(acc/factor^2). dst must have shape
// DownscaledSize(src.Width, src.Height, factor).
func Downscale(dst, src Image, factor int) {
	if factor < 1 {
		panic(&KernelError{Reason: "downscale factor must be at least 1"})
	}
	wantW, wantH := DownscaledSize(src.Width, src.Height, factor)
	shapeCheck("Downscale", dst.Width, dst.Height, wantW, wantH)
	downscaleKernel(factor).Convolve(dst, src, 0)
}

// Dilate expands non-zero regions of src by structuring, writing the
// result to dst. dst must be the same shape as src and must not alias
// src's storage: the strided/structuring convolutions require disjoint
// source and destination.
func Dilate(dst, src Image, structuring Kernel[int]) {
	shapeCheck("Dilate", dst.Width, dst.Height, src.Width, src.Height)
	structuring.Convolve(dst, src, 0)
}

// Erode shrinks non-zero regions of src by structuring. Provided as a
// standalone transform; not used by Detector.Detect. Same aliasing rule
// as Dilate.
func Erode(dst, src Image, structuring Kernel[int]) {
	shapeCheck("Erode", dst.Width, dst.Height, src.Width, src.Height)
	structuring.Convolve(dst, src, 0)
}
