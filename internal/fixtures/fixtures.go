// Package fixtures builds synthetic grayscale frames and binary masks for
// the motion package's tests.
package fixtures

// SolidFrame returns a width*height byte buffer filled with value.
func SolidFrame(width, height int, value byte) []byte {
	buf := make([]byte, width*height)
	for i := range buf {
		buf[i] = value
	}
	return buf
}

// Rect describes a rectangular region, in the same half-open convention
// as motion.BoundingBox, used to stamp patches into synthetic frames.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// FrameWithPatch returns a width*height buffer of base everywhere except
// the given rectangle, which is set to patch.
func FrameWithPatch(width, height int, base byte, r Rect, patch byte) []byte {
	buf := SolidFrame(width, height, base)
	for y := r.Y0; y < r.Y1; y++ {
		for x := r.X0; x < r.X1; x++ {
			buf[y*width+x] = patch
		}
	}
	return buf
}

// MaskWithRects returns a width*height 0/255 mask with every given
// rectangle painted 255 and everything else 0.
func MaskWithRects(width, height int, rects ...Rect) []byte {
	buf := make([]byte, width*height)
	for _, r := range rects {
		for y := r.Y0; y < r.Y1; y++ {
			for x := r.X0; x < r.X1; x++ {
				buf[y*width+x] = 255
			}
		}
	}
	return buf
}

// Checkerboard returns a width*height mask with n isolated single-pixel
// components, spaced at least two cells apart on both axes so no two are
// adjacent even under 8-connectivity, used to exercise label-capacity
// saturation.
func Checkerboard(width, height, n int) []byte {
	buf := make([]byte, width*height)
	placed := 0
	for y := 1; y < height && placed < n; y += 2 {
		for x := 1; x < width && placed < n; x += 2 {
			buf[y*width+x] = 255
			placed++
		}
	}
	return buf
}
