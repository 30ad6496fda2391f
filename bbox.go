package motion

// BoundingBox is an axis-aligned rectangle, half-open on both axes: it
// covers columns [TopLeftX, BottomRightX) and rows [TopLeftY, BottomRightY).
// The zero value is the "null" box used as an end-of-sequence sentinel by
// the labeler's cursor.
type BoundingBox struct {
	TopLeftX     int
	TopLeftY     int
	BottomRightX int
	BottomRightY int
}

// NewBoundingBox builds a single-pixel box at (x, y): [x, x+1) x [y, y+1).
// This is the shape every newly-labeled pixel starts as in the labeler.
func NewBoundingBox(x, y int) BoundingBox {
	return BoundingBox{TopLeftX: x, TopLeftY: y, BottomRightX: x + 1, BottomRightY: y + 1}
}

// IsZero reports whether b is the null box (all fields zero), the
// sentinel meaning "no more boxes" when iterating.
func (b BoundingBox) IsZero() bool {
	return b == BoundingBox{}
}

// Width returns BottomRightX - TopLeftX.
func (b BoundingBox) Width() int {
	return b.BottomRightX - b.TopLeftX
}

// Height returns BottomRightY - TopLeftY.
func (b BoundingBox) Height() int {
	return b.BottomRightY - b.TopLeftY
}

// ShorterSide returns min(Width(), Height()), the quantity the
// descending-by-shorter-side ordering compares.
func (b BoundingBox) ShorterSide() int {
	w, h := b.Width(), b.Height()
	if w < h {
		return w
	}
	return h
}

// Merge returns the smallest box containing both b and other: elementwise
// min for the top-left corner, elementwise max for the bottom-right
// corner. Merge is commutative and associative.
func (b BoundingBox) Merge(other BoundingBox) BoundingBox {
	return BoundingBox{
		TopLeftX:     min(b.TopLeftX, other.TopLeftX),
		TopLeftY:     min(b.TopLeftY, other.TopLeftY),
		BottomRightX: max(b.BottomRightX, other.BottomRightX),
		BottomRightY: max(b.BottomRightY, other.BottomRightY),
	}
}

// Greater orders boxes by shorter side: a > b iff a's shorter side
// exceeds b's. Used to sort boxes by decreasing shorter side.
func (b BoundingBox) Greater(other BoundingBox) bool {
	return b.ShorterSide() > other.ShorterSide()
}

// ExpandToSquare grows the shorter side of b until Width() == Height(),
// clamped so the result stays within outer. It reports
// false, leaving b unchanged, if even the longer side of b already
// exceeds outer's shorter side (the square cannot fit). Rounding of an
// odd side-length difference is half-up: a one-pixel excess is added to
// the leading (left/top) margin.
func (b BoundingBox) ExpandToSquare(outer BoundingBox) (BoundingBox, bool) {
	w, h := b.Width(), b.Height()
	if w == h {
		return b, true
	}
	d := w - h
	if d < 0 {
		d = -d
	}
	longer := max(w, h)
	if longer > min(outer.Width(), outer.Height()) {
		return b, false
	}

	out := b
	lead := (d + 1) / 2 // half-up
	if w < h {
		out.TopLeftX = max(outer.TopLeftX, b.TopLeftX-lead)
		out.BottomRightX = min(outer.BottomRightX, out.TopLeftX+h)
		out.TopLeftX = out.BottomRightX - h
	} else {
		out.TopLeftY = max(outer.TopLeftY, b.TopLeftY-lead)
		out.BottomRightY = min(outer.BottomRightY, out.TopLeftY+w)
		out.TopLeftY = out.BottomRightY - w
	}
	return out, true
}
