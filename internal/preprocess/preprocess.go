// Package preprocess prepares scanned report images for OCR. The stages
// run in a fixed order: upscale to the target DPI, grayscale, deskew,
// binarize, denoise, sharpen. The whole chain is a pure function of the
// input image; it never mutates its argument.
package preprocess

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// TargetDPI is the resolution OCR engines are tuned for. Images reported
// at a lower DPI are upscaled with Lanczos resampling.
const TargetDPI = 300

// ProcessError represents a failure in one preprocessing stage.
type ProcessError struct {
	Stage string
	Err   error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("preprocessing %s: %v", e.Stage, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// Preprocess runs the full preparation chain on img. sourceDPI describes
// the capture resolution; values <= 0 are treated as already at target.
func Preprocess(img image.Image, sourceDPI int) (image.Image, error) {
	if img == nil {
		return nil, &ProcessError{Stage: "input", Err: errors.New("nil image")}
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, &ProcessError{
			Stage: "input",
			Err:   fmt.Errorf("invalid dimensions %dx%d", bounds.Dx(), bounds.Dy()),
		}
	}

	out := img
	if sourceDPI > 0 && sourceDPI < TargetDPI {
		scale := float64(TargetDPI) / float64(sourceDPI)
		out = imaging.Resize(out,
			int(float64(bounds.Dx())*scale),
			int(float64(bounds.Dy())*scale),
			imaging.Lanczos)
	}

	gray := toGray(out)
	gray = Deskew(gray)
	gray = Binarize(gray)
	gray = median3x3(gray)
	return imaging.Sharpen(gray, 1.0), nil
}

// toGray converts any image to a tightly packed grayscale buffer anchored
// at the origin, so later stages can index Pix rows directly.
func toGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Rect, img, bounds.Min, draw.Src)
	return gray
}

// Binarize thresholds a grayscale image to pure black and white using
// Otsu's method, falling back to the global mean when the histogram is
// degenerate (e.g. a single-tone image).
func Binarize(gray *image.Gray) *image.Gray {
	var hist [256]int
	for _, p := range gray.Pix {
		hist[p]++
	}

	threshold, ok := otsuThreshold(hist, len(gray.Pix))
	if !ok {
		threshold = meanThreshold(hist, len(gray.Pix))
	}

	out := image.NewGray(gray.Rect)
	for i, p := range gray.Pix {
		if p > threshold {
			out.Pix[i] = 255
		}
	}
	return out
}

// otsuThreshold maximizes between-class variance over a 256-bin
// histogram. ok is false when no split separates two classes.
func otsuThreshold(hist [256]int, total int) (uint8, bool) {
	var sum float64
	for i, c := range hist {
		sum += float64(i * c)
	}

	var sumB, wB float64
	bestVar := -1.0
	best := 0
	for t := range 256 {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t * hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		between := wB * wF * (mB - mF) * (mB - mF)
		if between > bestVar {
			bestVar = between
			best = t
		}
	}
	if bestVar <= 0 {
		return 0, false
	}
	return uint8(best), true
}

func meanThreshold(hist [256]int, total int) uint8 {
	if total == 0 {
		return 127
	}
	var sum float64
	for i, c := range hist {
		sum += float64(i * c)
	}
	return uint8(sum / float64(total))
}

// median3x3 applies a 3x3 median filter, removing salt-and-pepper noise
// left over from binarization. Edge pixels use their clamped neighborhood.
func median3x3(gray *image.Gray) *image.Gray {
	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	out := image.NewGray(gray.Rect)

	var window [9]uint8
	for y := range h {
		for x := range w {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				yy := min(max(y+dy, 0), h-1)
				for dx := -1; dx <= 1; dx++ {
					xx := min(max(x+dx, 0), w-1)
					window[n] = gray.Pix[yy*gray.Stride+xx]
					n++
				}
			}
			out.Pix[y*out.Stride+x] = median9(window)
		}
	}
	return out
}

func median9(w [9]uint8) uint8 {
	// Insertion sort; nine elements.
	for i := 1; i < len(w); i++ {
		for j := i; j > 0 && w[j-1] > w[j]; j-- {
			w[j-1], w[j] = w[j], w[j-1]
		}
	}
	return w[4]
}

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
