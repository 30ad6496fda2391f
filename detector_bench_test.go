package motion

import (
	"testing"

	"github.com/otterlab/motion/internal/fixtures"
)

// BenchmarkLabelerConnectivity compares the two labeler connectivity
// modes on the same synthetic mask via sub-benchmarks.
func BenchmarkLabelerConnectivity(b *testing.B) {
	const w, h = 256, 256
	mask := View(fixtures.Checkerboard(w, h, 200), w, h)

	modes := []struct {
		name string
		conn Connectivity
	}{
		{"FourConnected", FourConnected},
		{"EightConnected", EightConnected},
	}

	for _, m := range modes {
		b.Run(m.name, func(b *testing.B) {
			lb := NewBBoxer(w, h, m.conn, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				lb.Label(mask)
			}
		})
	}
}

// BenchmarkDetectorDetect measures the full per-frame pipeline cost at a
// representative embedded resolution.
func BenchmarkDetectorDetect(b *testing.B) {
	const w, h = 640, 480
	d := NewDetector(Config{Width: w, Height: h, Downscale: 8, Threshold: 127})
	frame := View(fixtures.FrameWithPatch(w, h, 40, fixtures.Rect{X0: 100, Y0: 100, X1: 200, Y1: 200}, 220), w, h)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Detect(frame)
	}
}
