package preprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bandedPage draws alternating dark text bands on a white background,
// approximating lines of print.
func bandedPage(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		v := uint8(255)
		if (y/8)%3 == 0 {
			v = 20
		}
		for x := range w {
			img.Pix[y*img.Stride+x] = v
		}
	}
	return img
}

func TestPreprocessNilImage(t *testing.T) {
	_, err := Preprocess(nil, 300)
	require.Error(t, err)
	var perr *ProcessError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "input", perr.Stage)
}

func TestPreprocessUpscalesLowDPI(t *testing.T) {
	out, err := Preprocess(bandedPage(100, 80), 150)
	require.NoError(t, err)
	// 150 -> 300 DPI doubles both dimensions.
	assert.Equal(t, 200, out.Bounds().Dx())
	assert.Equal(t, 160, out.Bounds().Dy())
}

func TestPreprocessKeepsTargetDPISize(t *testing.T) {
	out, err := Preprocess(bandedPage(100, 80), 300)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 80, out.Bounds().Dy())
}

func TestPreprocessDeterministic(t *testing.T) {
	src := bandedPage(60, 60)
	first, err := Preprocess(src, 300)
	require.NoError(t, err)
	second, err := Preprocess(src, 300)
	require.NoError(t, err)

	a := imaging.Clone(first)
	b := imaging.Clone(second)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestBinarizeBimodal(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		if i%2 == 0 {
			img.Pix[i] = 30
		} else {
			img.Pix[i] = 220
		}
	}
	out := Binarize(img)
	for _, p := range out.Pix {
		assert.Contains(t, []uint8{0, 255}, p)
	}
}

func TestBinarizeUniformFallsBackToMean(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 128
	}
	// Degenerate histogram: Otsu finds no split, the mean fallback maps
	// everything to one class instead of panicking or erroring.
	out := Binarize(img)
	first := out.Pix[0]
	for _, p := range out.Pix {
		assert.Equal(t, first, p)
	}
}

func TestOtsuThresholdSeparatesClasses(t *testing.T) {
	var hist [256]int
	hist[40] = 500
	hist[200] = 500
	threshold, ok := otsuThreshold(hist, 1000)
	require.True(t, ok)
	assert.GreaterOrEqual(t, threshold, uint8(40))
	assert.Less(t, threshold, uint8(200))
}

func TestMedianRemovesSaltNoise(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 9, 9))
	// White page with a single black speck in the middle.
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.Pix[4*img.Stride+4] = 0

	out := median3x3(img)
	assert.Equal(t, uint8(255), out.Pix[4*out.Stride+4])
}

func TestDeskewRecoversRotation(t *testing.T) {
	page := bandedPage(300, 300)
	rotated := toGray(imaging.Rotate(page, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 255}))

	straightened := Deskew(rotated)
	// Straightened bands score at least as well as the rotated input.
	assert.GreaterOrEqual(t, bandingScore(straightened), bandingScore(rotated))
}

func TestDeskewLeavesLevelPageAlone(t *testing.T) {
	page := bandedPage(200, 200)
	out := Deskew(page)
	assert.Equal(t, page.Rect, out.Rect)
	assert.Equal(t, page.Pix, out.Pix)
}
