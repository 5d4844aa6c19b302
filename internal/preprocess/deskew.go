package preprocess

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Deskew sweep parameters: a coarse pass over +-15 degrees at 1 degree
// steps, then a fine pass over +-1 degree at 0.25 degree steps around the
// coarse winner.
const (
	coarseSweepDeg = 15.0
	coarseStepDeg  = 1.0
	fineSweepDeg   = 1.0
	fineStepDeg    = 0.25
)

// searchWidth bounds the image size used during the angle search; the
// chosen angle is then applied to the full-resolution image.
const searchWidth = 1000

// Deskew straightens a rotated scan. The skew angle is found by rotating
// a downscaled copy through the sweep range and picking the angle that
// maximizes the variance of the row-projection gradient: text lines band
// sharply when level.
func Deskew(gray *image.Gray) *image.Gray {
	search := gray
	if gray.Rect.Dx() > searchWidth {
		search = toGray(imaging.Resize(gray, searchWidth, 0, imaging.Linear))
	}

	angle := bestAngle(search, -coarseSweepDeg, coarseSweepDeg, coarseStepDeg)
	angle = bestAngle(search, angle-fineSweepDeg, angle+fineSweepDeg, fineStepDeg)

	if math.Abs(angle) < fineStepDeg/2 {
		return gray
	}
	return toGray(imaging.Rotate(gray, angle, white))
}

// bestAngle returns the rotation in [lo, hi] maximizing the banding score.
func bestAngle(gray *image.Gray, lo, hi, step float64) float64 {
	best := 0.0
	bestScore := -1.0
	for a := lo; a <= hi+1e-9; a += step {
		rotated := gray
		if math.Abs(a) > 1e-9 {
			rotated = toGray(imaging.Rotate(gray, a, white))
		}
		if score := bandingScore(rotated); score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best
}

// bandingScore measures how sharply row intensity sums alternate: the
// variance of the discrete gradient of per-row pixel sums.
func bandingScore(gray *image.Gray) float64 {
	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	if h < 2 || w == 0 {
		return 0
	}

	sums := make([]float64, h)
	for y := range h {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		total := 0
		for _, p := range row {
			total += int(p)
		}
		sums[y] = float64(total)
	}

	grad := make([]float64, h-1)
	mean := 0.0
	for i := range grad {
		grad[i] = sums[i+1] - sums[i]
		mean += grad[i]
	}
	mean /= float64(len(grad))

	variance := 0.0
	for _, d := range grad {
		variance += (d - mean) * (d - mean)
	}
	return variance / float64(len(grad))
}
