package motion

import "github.com/rs/zerolog"

// ReferenceMode selects how often Detector.Detect rolls the reference
// frame forward. Always updating every frame tracks slow lighting drift
// well but "ghosts" a box onto the frame right after a moving object
// stops; the choice is exposed here rather than hard-coded.
type ReferenceMode int

const (
	// EveryFrame replaces the reference with the current frame after
	// every Detect call, matching ausocean-av's filter/basic.go, which
	// unconditionally overwrites its background image every Write.
	EveryFrame ReferenceMode = iota
	// EveryNFrames replaces the reference once every N calls, damping
	// ghosting at the cost of slower background adaptation.
	EveryNFrames
	// Manual never replaces the reference automatically; the caller must
	// call Detector.SetReference explicitly.
	Manual
)

// ReferencePolicy configures Detector's reference-update behavior. N is
// only meaningful when Mode is EveryNFrames.
type ReferencePolicy struct {
	Mode ReferenceMode
	N    int
}

// Config holds the immutable shape and tuning parameters for a Detector.
// There is no compiled-in Threshold default: a zero Config.Threshold is a
// valid, literal threshold of 0, and callers that want the commonly-used
// 127 must set it themselves (cmd/motion's CLI flag defaults to 127 at
// the driver layer).
type Config struct {
	Width, Height int

	// Downscale is the internal downscaling factor. Zero or one means no
	// downscaling.
	Downscale int

	// Threshold is the absdiff cutoff passed to Threshold. No implicit
	// default.
	Threshold byte

	// Granularity is the edge length of the flat square dilation
	// structuring element. Zero selects a default of
	// 1 + min(downscaled W, downscaled H)/8.
	Granularity int

	// MinBBoxDim is the minimum of a surviving box's width and height.
	// Zero selects a default of 30.
	MinBBoxDim int

	Connectivity    Connectivity
	ReferencePolicy ReferencePolicy

	// Logger, if non-nil, receives a warning when the labeler's label
	// capacity is exhausted for a frame. This is a diagnostic only — the
	// caller-visible contract is unchanged: Detect simply returns fewer
	// boxes.
	Logger *zerolog.Logger
}

// Detector orchestrates the motion-detection pipeline: downscale, absdiff
// against a reference frame, threshold, dilate, label. It is constructed
// once per camera shape; every working buffer is allocated at
// construction and reused by every Detect call. A Detector owns its
// buffers exclusively and has no shared mutable state with any other
// Detector: it is safe to run one per camera on a dedicated goroutine
// with no cross-instance coordination.
type Detector struct {
	cfg    Config
	factor int

	reference Image // tracks the background; rolled forward per ReferencePolicy
	current   Image // this call's (downscaled) input frame
	mask      Image // absdiff destination, then threshold destination in place
	dilated   Image // dilate destination; fed to the labeler

	structuring Kernel[int]
	bboxer      *BBoxer
	frameCount  int

	logger *zerolog.Logger
}

// NewDetector allocates a Detector for the given configuration. Width and
// Height must be positive; all other fields fall back to their documented
// defaults when zero.
func NewDetector(cfg Config) *Detector {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		panic(&ShapeError{Op: "NewDetector", WantW: cfg.Width, WantH: cfg.Height, GotW: cfg.Width, GotH: cfg.Height})
	}
	factor := cfg.Downscale
	if factor <= 0 {
		factor = 1
	}
	dw, dh := DownscaledSize(cfg.Width, cfg.Height, factor)
	if dw <= 0 || dh <= 0 {
		panic(&ShapeError{Op: "NewDetector: downscale factor too large", WantW: cfg.Width, WantH: cfg.Height, GotW: dw, GotH: dh})
	}

	granularity := cfg.Granularity
	if granularity <= 0 {
		granularity = 1 + min(dw, dh)/8
	}
	minDim := cfg.MinBBoxDim
	if minDim <= 0 {
		minDim = 30
	}

	return &Detector{
		cfg:         cfg,
		factor:      factor,
		reference:   NewImage(dw, dh),
		current:     NewImage(dw, dh),
		mask:        NewImage(dw, dh),
		dilated:     NewImage(dw, dh),
		structuring: DilateSquare(granularity),
		bboxer:      NewBBoxer(dw, dh, cfg.Connectivity, minDim),
		logger:      cfg.Logger,
	}
}

// SetReference loads frame as the current reference (background). frame
// must be Width x Height (full resolution); it is downscaled internally
// if the Detector was configured with a downscale factor.
func (d *Detector) SetReference(frame Image) {
	shapeCheck("SetReference", d.cfg.Width, d.cfg.Height, frame.Width, frame.Height)
	if d.factor > 1 {
		Downscale(d.reference, frame, d.factor)
	} else {
		d.reference.CopyFrom(frame)
	}
}

// Detect runs one frame through the pipeline and returns the surviving
// bounding boxes, in the downscaled coordinate system: callers addressing
// the full-resolution frame must scale by the configured downscale
// factor. frame must be Width x Height.
func (d *Detector) Detect(frame Image) []BoundingBox {
	shapeCheck("Detect", d.cfg.Width, d.cfg.Height, frame.Width, frame.Height)

	if d.factor > 1 {
		Downscale(d.current, frame, d.factor)
	} else {
		d.current.CopyFrom(frame)
	}

	AbsDiff(d.mask, d.current, d.reference)
	Threshold(d.mask, d.mask, d.cfg.Threshold)
	Dilate(d.dilated, d.mask, d.structuring)

	boxes := d.bboxer.Label(d.dilated)
	if d.logger != nil && d.bboxer.next > maxLabels {
		d.logger.Warn().
			Int("capacity", maxLabels).
			Msg("motion: label capacity exhausted for this frame; some components were not reported")
	}

	d.rollReference()
	return boxes
}

// rollReference advances the reference frame according to cfg.ReferencePolicy.
func (d *Detector) rollReference() {
	switch d.cfg.ReferencePolicy.Mode {
	case EveryFrame:
		d.reference.CopyFrom(d.current)
	case EveryNFrames:
		n := d.cfg.ReferencePolicy.N
		if n <= 0 {
			n = 1
		}
		d.frameCount++
		if d.frameCount >= n {
			d.reference.CopyFrom(d.current)
			d.frameCount = 0
		}
	case Manual:
		// Caller owns reference updates via SetReference.
	}
}

// NextBoundingBox pulls the next box from the most recent Detect call via
// the reset-on-exhaustion cursor.
func (d *Detector) NextBoundingBox() BoundingBox {
	return d.bboxer.Next()
}

// DownscaleFactor returns the Detector's effective downscale factor (at
// least 1).
func (d *Detector) DownscaleFactor() int {
	return d.factor
}

// DilatedMask returns the most recent Detect call's post-dilation mask, in
// the downscaled coordinate system, as a read-only view over the
// Detector's own buffer: callers must not mutate it and it is only valid
// until the next Detect call. Exposed for the CLI's --erode-preview debug
// path; Detect's caller-visible contract remains the returned box slice.
func (d *Detector) DilatedMask() Image {
	return d.dilated
}

// MotionPixelCount reports how many downscaled pixels survived thresholding
// in the most recent Detect call, mirroring ausocean-av's filter/basic.go
// debug counter. It is a diagnostic only; Detect's caller-visible contract
// is the returned box slice.
func (d *Detector) MotionPixelCount() int {
	n := 0
	for _, p := range d.mask.Pix {
		if p != 0 {
			n++
		}
	}
	return n
}
