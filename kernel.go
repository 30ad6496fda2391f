package motion

// Accumulator is the set of numeric types a Kernel may accumulate into.
// The pipeline uses int for every built-in transform (downscale, dilate,
// erode); the type parameter exists so callers can plug in a wider or
// floating-point accumulator without touching the convolution engine.
type Accumulator interface {
	~int | ~int32 | ~int64 | ~float64
}

// Kernel describes a 2D convolution kernel in one of two shapes:
// Heterogeneous (Elements holds Width*Height distinct weights, row-major)
// or Homogeneous (Elements holds a single repeating weight, summed over
// the window and multiplied once). Anchor and Stride place and step the
// kernel over a source image; Postprocess maps the raw accumulator to an
// output byte.
type Kernel[T Accumulator] struct {
	Elements []T // len == Width*Height (heterogeneous) or len == 1 (homogeneous)
	Width    int
	Height   int
	AnchorX  int
	AnchorY  int
	StrideX  int
	StrideY  int

	// Postprocess maps the stamp accumulator to an output pixel. Must be
	// non-nil.
	Postprocess func(T) byte
}

func (k Kernel[T]) homogeneous() bool {
	return len(k.Elements) == 1
}

func validateKernel[T Accumulator](k Kernel[T]) {
	if k.Width <= 0 || k.Height <= 0 {
		panic(&KernelError{Reason: "width and height must be positive"})
	}
	if k.AnchorX < 0 || k.AnchorX >= k.Width || k.AnchorY < 0 || k.AnchorY >= k.Height {
		panic(&KernelError{Reason: "anchor must lie within the kernel"})
	}
	if k.StrideX < 1 || k.StrideY < 1 {
		panic(&KernelError{Reason: "stride must be at least 1"})
	}
	if k.Postprocess == nil {
		panic(&KernelError{Reason: "postprocess must be set"})
	}
	n := len(k.Elements)
	if n != 1 && n != k.Width*k.Height {
		panic(&KernelError{Reason: "elements must have length 1 or width*height"})
	}
}

// NewKernel builds a heterogeneous kernel: elements must have exactly
// width*height entries, row-major. Panics on any violated invariant.
func NewKernel[T Accumulator](elements []T, width, height, anchorX, anchorY, strideX, strideY int, postprocess func(T) byte) Kernel[T] {
	k := Kernel[T]{
		Elements: elements, Width: width, Height: height,
		AnchorX: anchorX, AnchorY: anchorY,
		StrideX: strideX, StrideY: strideY,
		Postprocess: postprocess,
	}
	validateKernel(k)
	return k
}

// NewHomogeneousKernel builds a kernel whose cells all share weight e —
// the stamp sums the overlaid window and multiplies by e once.
func NewHomogeneousKernel[T Accumulator](e T, width, height, anchorX, anchorY, strideX, strideY int, postprocess func(T) byte) Kernel[T] {
	k := Kernel[T]{
		Elements: []T{e}, Width: width, Height: height,
		AnchorX: anchorX, AnchorY: anchorY,
		StrideX: strideX, StrideY: strideY,
		Postprocess: postprocess,
	}
	validateKernel(k)
	return k
}

// Stamp computes a single kernel application with its anchor placed at
// source coordinates (sr, sc), reading src through AtPad(..., padValue)
// so the window may legally extend past src's edges.
func (k Kernel[T]) Stamp(src Image, sr, sc int, padValue byte) T {
	var acc T
	if k.homogeneous() {
		var sum T
		for kr := 0; kr < k.Height; kr++ {
			row := sr - k.AnchorY + kr
			for kc := 0; kc < k.Width; kc++ {
				col := sc - k.AnchorX + kc
				sum += T(src.AtPad(row, col, padValue))
			}
		}
		acc = sum * k.Elements[0]
	} else {
		for kr := 0; kr < k.Height; kr++ {
			row := sr - k.AnchorY + kr
			base := kr * k.Width
			for kc := 0; kc < k.Width; kc++ {
				col := sc - k.AnchorX + kc
				acc += k.Elements[base+kc] * T(src.AtPad(row, col, padValue))
			}
		}
	}
	return acc
}

// Convolve fills dst by stamping k over src once per destination cell:
// dst(dr,dc)'s anchor lands at source coordinates (dr*StrideY, dc*StrideX).
// dst's shape determines how far the convolution proceeds; padValue
// supplies reads that fall outside src.
func (k Kernel[T]) Convolve(dst, src Image, padValue byte) {
	for dr := 0; dr < dst.Height; dr++ {
		sr := dr * k.StrideY
		for dc := 0; dc < dst.Width; dc++ {
			sc := dc * k.StrideX
			dst.Set(dr, dc, k.Postprocess(k.Stamp(src, sr, sc, padValue)))
		}
	}
}
