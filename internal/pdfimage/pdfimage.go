// Package pdfimage pulls embedded page images out of a PDF. Scanned
// documents are usually one full-page raster per page; these feed the
// OCR stage.
package pdfimage

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// extractImagesFile is swappable for tests; production uses pdfcpu.
var extractImagesFile = pdfcpuExtractImagesFile

// ExtractPageImages extracts the embedded images of the given pages
// (1-based), grouped by page number. Pages without embedded images are
// absent from the result.
func ExtractPageImages(path string, pageNumbers []int) (map[int][]image.Image, error) {
	tempDir, err := os.MkdirTemp("", "medscan-pdfimg-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	var pageStrings []string
	if len(pageNumbers) > 0 {
		pageStrings = make([]string, len(pageNumbers))
		for i, n := range pageNumbers {
			pageStrings[i] = strconv.Itoa(n)
		}
	}

	if err := extractImagesFile(path, tempDir, pageStrings); err != nil {
		return nil, fmt.Errorf("extracting images from %q: %w", path, err)
	}

	result, err := collectExtractedImages(tempDir)
	if err != nil {
		return nil, fmt.Errorf("reading extracted images: %w", err)
	}
	return result, nil
}

// PageImage returns the largest embedded image of a page, which for
// scanned documents is the page raster itself. Nil when the page has no
// embedded images.
func PageImage(images map[int][]image.Image, pageNumber int) image.Image {
	candidates := images[pageNumber]
	var best image.Image
	bestArea := 0
	for _, img := range candidates {
		b := img.Bounds()
		if area := b.Dx() * b.Dy(); area > bestArea {
			bestArea = area
			best = img
		}
	}
	return best
}

// collectExtractedImages walks dir and groups decoded images by the page
// number encoded in pdfcpu's output filenames (page_<n>_... or <stem>_<n>_...).
func collectExtractedImages(dir string) (map[int][]image.Image, error) {
	result := make(map[int][]image.Image)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		pageNum, err := parsePageFromFilename(info.Name())
		if err != nil {
			return nil
		}
		img, err := loadImageFile(path)
		if err != nil || img == nil {
			return nil
		}
		result[pageNum] = append(result[pageNum], img)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// parsePageFromFilename recovers the page number from an extracted image
// filename. pdfcpu writes names like "page_3_Im0.png" or "<stem>_3_Im0.png";
// the first numeric underscore-delimited token is the page.
func parsePageFromFilename(filename string) (int, error) {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	for _, part := range strings.Split(name, "_") {
		if n, err := strconv.Atoi(part); err == nil && n > 0 {
			return n, nil
		}
	}
	return 0, errors.New("no page number in filename")
}

func loadImageFile(path string) (image.Image, error) {
	file, err := os.Open(path) //nolint:gosec // extracted under our own temp dir
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	img, _, err := image.Decode(file)
	return img, err
}
