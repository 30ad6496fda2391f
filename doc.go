// Package motion implements frame-to-frame motion detection over grayscale
// byte buffers: downscale, absolute difference against a reference frame,
// threshold, dilate, and a single-pass connected-components labeler that
// fits tight bounding boxes around the surviving regions.
//
// The package is built for on-device use: every working buffer is
// allocated once, at construction of a [Detector], and reused for every
// call to [Detector.Detect]. There is no hot-path allocation and no
// shared mutable state between Detector instances.
package motion
