package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReportPageHasInk(t *testing.T) {
	img := RenderReportPage(SampleEchoReport, 600, 400)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	dark := 0
	for _, p := range img.Pix {
		if p < 128 {
			dark++
		}
	}
	assert.Positive(t, dark, "rendered page should contain dark text pixels")
}

func TestRenderSkewedReportPageGrows(t *testing.T) {
	img := RenderSkewedReportPage(SampleCarotidReport, 600, 400, 3.0)
	assert.Greater(t, img.Bounds().Dx(), 600)
	assert.Greater(t, img.Bounds().Dy(), 400)
}

func TestWritePNG(t *testing.T) {
	img := RenderReportPage("LVEF: 60%", 200, 100)
	path := WritePNG(t, img, t.TempDir(), "page.png")
	require.FileExists(t, path)
}
