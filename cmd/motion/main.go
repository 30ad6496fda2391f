// Command motion walks a directory of JPEG frames in sorted order, runs
// each one through the motion-detection pipeline, and writes an annotated,
// rotated copy of every frame that contains at least one surviving bounding
// box into an output directory. It mirrors the reference driver this tool
// was distilled from: first frame seeds the reference, every later frame is
// diffed against the current reference, and the reference itself advances
// per the configured policy.
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/otterlab/motion"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "motion:", err)
		os.Exit(1)
	}
}

type cliOptions struct {
	threshold       uint8
	minDim          int
	downscale       int
	granularity     int
	referencePolicy string
	everyN          int
	connectivity    string
	quiet           bool
	erodePreview    bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "motion <input-dir> <output-dir>",
		Short: "Detect motion across a directory of JPEG frames",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], opts)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.Uint8Var(&opts.threshold, "threshold", 127, "absdiff threshold (0-255)")
	flags.IntVar(&opts.minDim, "min-dim", 30, "minimum surviving box dimension")
	flags.IntVar(&opts.downscale, "downscale", 8, "internal downscale factor")
	flags.IntVar(&opts.granularity, "granularity", 0, "dilation structuring element edge length (0 = auto)")
	flags.StringVar(&opts.referencePolicy, "reference-policy", "every-frame", "reference update policy: every-frame|every-n-frames|manual")
	flags.IntVar(&opts.everyN, "every-n", 5, "N for --reference-policy=every-n-frames")
	flags.StringVar(&opts.connectivity, "connectivity", "four", "labeler connectivity: four|eight")
	flags.BoolVar(&opts.quiet, "quiet", false, "suppress per-frame log lines")
	flags.BoolVar(&opts.erodePreview, "erode-preview", false, "save a debug preview of the post-dilation mask eroded with the round 13x13 structuring element, alongside every annotated frame")

	return cmd
}

func parseConnectivity(s string) (motion.Connectivity, error) {
	switch s {
	case "four", "":
		return motion.FourConnected, nil
	case "eight":
		return motion.EightConnected, nil
	default:
		return 0, errors.Errorf("unknown --connectivity %q (want four|eight)", s)
	}
}

func parseReferencePolicy(s string, n int) (motion.ReferencePolicy, error) {
	switch s {
	case "every-frame", "":
		return motion.ReferencePolicy{Mode: motion.EveryFrame}, nil
	case "every-n-frames":
		return motion.ReferencePolicy{Mode: motion.EveryNFrames, N: n}, nil
	case "manual":
		return motion.ReferencePolicy{Mode: motion.Manual}, nil
	default:
		return motion.ReferencePolicy{}, errors.Errorf("unknown --reference-policy %q", s)
	}
}

func run(inputDir, outputDir string, opts *cliOptions) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if opts.quiet {
		logger = logger.Level(zerolog.WarnLevel)
	}

	paths, err := listJPEGs(inputDir)
	if err != nil {
		return errors.Wrapf(err, "reading input directory %q", inputDir)
	}
	if len(paths) == 0 {
		return errors.Errorf("no .jpg files found in %q", inputDir)
	}

	connectivity, err := parseConnectivity(opts.connectivity)
	if err != nil {
		return err
	}
	refPolicy, err := parseReferencePolicy(opts.referencePolicy, opts.everyN)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %q", outputDir)
	}

	firstImg, err := decodeGray(paths[0])
	if err != nil {
		return errors.Wrapf(err, "decoding reference frame %q", paths[0])
	}
	bounds := firstImg.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	det := motion.NewDetector(motion.Config{
		Width:           width,
		Height:          height,
		Downscale:       opts.downscale,
		Threshold:       opts.threshold,
		Granularity:     opts.granularity,
		MinBBoxDim:      opts.minDim,
		Connectivity:    connectivity,
		ReferencePolicy: refPolicy,
		Logger:          &logger,
	})
	det.SetReference(motion.View(firstImg.Pix, width, height))

	for _, path := range paths[1:] {
		logger.Info().Str("frame", filepath.Base(path)).Msg("processing frame")

		gray, err := decodeGray(path)
		if err != nil {
			return errors.Wrapf(err, "decoding frame %q", path)
		}
		if gray.Bounds().Dx() != width || gray.Bounds().Dy() != height {
			return errors.Errorf("frame %q is %dx%d, want %dx%d", path, gray.Bounds().Dx(), gray.Bounds().Dy(), width, height)
		}

		boxes := det.Detect(motion.View(gray.Pix, width, height))
		if len(boxes) == 0 {
			continue
		}

		annotated := annotate(gray, boxes, det.DownscaleFactor(), det.MotionPixelCount())
		rotated := rotate90(annotated)

		outPath := filepath.Join(outputDir, filepath.Base(path))
		if err := saveJPEG(outPath, rotated); err != nil {
			return errors.Wrapf(err, "saving annotated frame %q", outPath)
		}

		if opts.erodePreview {
			previewPath := erodePreviewPath(outputDir, path)
			if err := saveErodePreview(previewPath, det.DilatedMask()); err != nil {
				return errors.Wrapf(err, "saving erode preview %q", previewPath)
			}
		}
	}

	return nil
}

// listJPEGs returns the .jpg files directly inside dir, sorted
// lexicographically by filename.
func listJPEGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".jpg" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

func decodeGray(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return nil, err
	}
	if g, ok := img.(*image.Gray); ok {
		return g, nil
	}

	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}
	return gray, nil
}

func saveJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// erodePreviewPath derives the debug preview's output path from the
// source frame's path: same base name, "-erode-preview" suffix before the
// extension, written under outputDir.
func erodePreviewPath(outputDir, srcPath string) string {
	base := filepath.Base(srcPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext) + "-erode-preview" + ext
	return filepath.Join(outputDir, name)
}

// saveErodePreview erodes mask with the round 13x13 structuring element
// and saves the result as a grayscale JPEG, in the detector's downscaled
// coordinate system. Erode is never part of Detector.Detect's pipeline;
// this is its only exercised caller outside of tests.
func saveErodePreview(path string, mask motion.Image) error {
	eroded := motion.NewImage(mask.Width, mask.Height)
	motion.Erode(eroded, mask, motion.Erode13())

	gray := image.NewGray(image.Rect(0, 0, mask.Width, mask.Height))
	copy(gray.Pix, eroded.Pix)
	return saveJPEG(path, gray)
}
