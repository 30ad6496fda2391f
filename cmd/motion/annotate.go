package main

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/otterlab/motion"
)

var boxColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
var textColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}

// annotate draws a green outline rectangle per box, scaled from the
// detector's downscaled coordinate system back to full resolution, plus a
// motion-pixel-count overlay in the top-left corner.
func annotate(gray *image.Gray, boxes []motion.BoundingBox, factor, motionPixels int) *image.RGBA {
	bounds := gray.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := gray.GrayAt(x, y).Y
			rgba.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	for _, b := range boxes {
		r := image.Rect(b.TopLeftX*factor, b.TopLeftY*factor, b.BottomRightX*factor, b.BottomRightY*factor)
		drawRectOutline(rgba, r, boxColor)
	}

	drawLabel(rgba, fmt.Sprintf("Motion: %d", motionPixels))
	return rgba
}

func drawRectOutline(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

func drawLabel(img *image.RGBA, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 14),
	}
	d.DrawString(s)
}

// rotate90 rotates src 90 degrees clockwise via an affine transform, the
// way the reference driver's CImg rotate(-90) step does before saving.
func rotate90(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))

	// destination (dx,dy) from source (sx,sy): dx = h - 1 - sy, dy = sx.
	// Transform samples at pixel centres, so the translation is h, not h-1.
	aff := f64.Aff3{
		0, -1, float64(h),
		1, 0, 0,
	}
	xdraw.NearestNeighbor.Transform(dst, aff, src, b, xdraw.Src, nil)
	return dst
}
