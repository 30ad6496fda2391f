package motion

import "slices"

// Connectivity selects which already-scanned neighbors the labeler
// consults when deciding whether a pixel joins an existing component.
// FourConnected consults only the West and North neighbors; EightConnected
// additionally consults the two diagonal neighbors (NW, NE) so a dilated
// mask that only touches corner-to-corner still merges into one component.
type Connectivity int

const (
	FourConnected Connectivity = iota
	EightConnected
)

// maxLabels bounds the labeler's forwarding table to what an 8-bit
// scratch label plane can address: labels run 1..255, with 0 reserved as
// the background/no-label sentinel.
const maxLabels = 255

// BBoxer is a single-pass connected-components labeler: it scans a
// binary (0/255) mask once, merging equivalence classes on the
// fly through a one-hop forwarding table, and returns a tight bounding
// box per surviving component. A BBoxer is constructed once for a given
// mask shape and reused for every frame; its scratch label plane and
// forwarding tables are allocated at construction, never resized.
type BBoxer struct {
	connectivity Connectivity
	minDim       int

	scratch Image // M: per-pixel assigned label, 0 == unlabeled
	labels  [maxLabels + 1]int
	bboxes  [maxLabels + 1]BoundingBox
	next    int

	out    []BoundingBox
	cursor int
}

// NewBBoxer allocates a labeler for width x height masks. minDim is the
// minimum of a surviving box's width and height that survives filtering.
func NewBBoxer(width, height int, connectivity Connectivity, minDim int) *BBoxer {
	return &BBoxer{
		connectivity: connectivity,
		minDim:       minDim,
		scratch:      NewImage(width, height),
	}
}

// Label scans mask (which must match the BBoxer's configured shape) and
// returns the filtered, unsorted list of surviving bounding boxes. The
// returned slice is owned by the BBoxer and is overwritten by the next
// call to Label; callers that need to retain it must copy it.
func (lb *BBoxer) Label(mask Image) []BoundingBox {
	shapeCheck("Label", lb.scratch.Width, lb.scratch.Height, mask.Width, mask.Height)
	width, height := mask.Width, mask.Height

	lb.labels[0] = 0
	lb.next = 1
	lb.cursor = 0

	var nb [4]byte
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			if mask.At(r, c) == 0 {
				lb.scratch.Set(r, c, 0)
				continue
			}

			n := 0
			if c > 0 {
				if w := lb.scratch.At(r, c-1); w != 0 {
					nb[n] = w
					n++
				}
			}
			if r > 0 {
				if raw := lb.scratch.At(r-1, c); raw != 0 {
					nb[n] = byte(lb.labels[raw])
					n++
				}
				if lb.connectivity == EightConnected {
					if c > 0 {
						if raw := lb.scratch.At(r-1, c-1); raw != 0 {
							nb[n] = byte(lb.labels[raw])
							n++
						}
					}
					if c < width-1 {
						if raw := lb.scratch.At(r-1, c+1); raw != 0 {
							nb[n] = byte(lb.labels[raw])
							n++
						}
					}
				}
			}

			if n == 0 {
				if lb.next > maxLabels {
					// Label capacity exhausted: leave this pixel (and the
					// component it would start) unlabeled. Documented
					// soft-failure behavior, not a panic.
					lb.scratch.Set(r, c, 0)
					continue
				}
				l := lb.next
				lb.next++
				lb.labels[l] = l
				lb.bboxes[l] = NewBoundingBox(c, r)
				lb.scratch.Set(r, c, byte(l))
				continue
			}

			root := int(nb[0])
			for _, v := range nb[1:n] {
				if int(v) < root {
					root = int(v)
				}
			}
			lb.scratch.Set(r, c, byte(root))
			lb.bboxes[root] = lb.bboxes[root].Merge(NewBoundingBox(c, r))
			for _, v := range nb[:n] {
				l := int(v)
				if l == root || lb.labels[l] == root {
					continue
				}
				lb.bboxes[root] = lb.bboxes[root].Merge(lb.bboxes[l])
				lb.labels[l] = root
			}
		}
	}

	lb.out = lb.out[:0]
	for l := 1; l < lb.next; l++ {
		if lb.labels[l] != l {
			continue
		}
		b := lb.bboxes[l]
		if b.ShorterSide() >= lb.minDim {
			lb.out = append(lb.out, b)
		}
	}
	return lb.out
}

// SortDescending sorts boxes by decreasing shorter side (a > b iff
// min(a.w,a.h) > min(b.w,b.h)).
func SortDescending(boxes []BoundingBox) {
	slices.SortFunc(boxes, func(a, b BoundingBox) int {
		switch {
		case a.Greater(b):
			return -1
		case b.Greater(a):
			return 1
		default:
			return 0
		}
	})
}

// Next pulls the next box from the most recent Label call, returning the
// null box (BoundingBox{}) once exhausted and resetting the cursor so the
// following call restarts from the first box.
func (lb *BBoxer) Next() BoundingBox {
	if lb.cursor >= len(lb.out) {
		lb.cursor = 0
		return BoundingBox{}
	}
	b := lb.out[lb.cursor]
	lb.cursor++
	return b
}
