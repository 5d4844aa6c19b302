package testutil

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	pageMargin = 20
	lineGap    = 4
)

// RenderReportPage rasterizes report text onto a white page, one text line
// per image row, approximating a clean scan.
func RenderReportPage(text string, width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}

	lineHeight := face.Metrics().Height.Ceil() + lineGap
	y := pageMargin + lineHeight
	for _, line := range strings.Split(text, "\n") {
		if y > height-pageMargin {
			break
		}
		drawer.Dot = fixed.P(pageMargin, y)
		drawer.DrawString(line)
		y += lineHeight
	}
	return img
}

// RenderSkewedReportPage renders the text and rotates the page, simulating
// a crooked scan. White fills the rotation margins.
func RenderSkewedReportPage(text string, width, height int, angleDeg float64) image.Image {
	page := RenderReportPage(text, width, height)
	return imaging.Rotate(page, angleDeg, color.White)
}

// WritePNG writes img to dir/name and returns the full path.
func WritePNG(t *testing.T, img image.Image, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()
	require.NoError(t, png.Encode(f, img))
	return path
}
