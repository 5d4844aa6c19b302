package pdfimage

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     int
		ok       bool
	}{
		{"page_1_Im0.png", 1, true},
		{"page_12_Im3.jpg", 12, true},
		{"report_3_Im0.png", 3, true},
		{"thumbnail.png", 0, false},
		{"page_x_Im0.png", 0, false},
	}
	for _, tt := range tests {
		got, err := parsePageFromFilename(tt.filename)
		if tt.ok {
			require.NoError(t, err, tt.filename)
			assert.Equal(t, tt.want, got, tt.filename)
		} else {
			assert.Error(t, err, tt.filename)
		}
	}
}

func TestPageImagePicksLargest(t *testing.T) {
	small := image.NewGray(image.Rect(0, 0, 10, 10))
	large := image.NewGray(image.Rect(0, 0, 100, 100))
	images := map[int][]image.Image{1: {small, large}}

	assert.Equal(t, image.Image(large), PageImage(images, 1))
	assert.Nil(t, PageImage(images, 2))
}

func TestExtractPageImagesCollectsByPage(t *testing.T) {
	// Stub the pdfcpu call: write two page images into the output dir
	// the way pdfcpu names them.
	orig := extractImagesFile
	defer func() { extractImagesFile = orig }()
	extractImagesFile = func(_, outDir string, _ []string) error {
		for _, name := range []string{"page_1_Im0.png", "page_2_Im0.png", "notes.txt"} {
			path := filepath.Join(outDir, name)
			if filepath.Ext(name) == ".png" {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 4, 4))); err != nil {
					f.Close()
					return err
				}
				f.Close()
			} else if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
				return err
			}
		}
		return nil
	}

	images, err := ExtractPageImages("dummy.pdf", []int{1, 2})
	require.NoError(t, err)
	assert.Len(t, images, 2)
	assert.Len(t, images[1], 1)
	assert.Len(t, images[2], 1)
}
