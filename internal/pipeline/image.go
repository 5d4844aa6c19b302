package pipeline

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/MeKo-Tech/medscan/internal/metrics"
	"github.com/MeKo-Tech/medscan/internal/ocr"
	"github.com/MeKo-Tech/medscan/internal/preprocess"
	"github.com/MeKo-Tech/medscan/internal/report"
)

// FromImage extracts a standalone image (photo or scan of a report). Every
// frame is preprocessed and OCRed; multi-frame GIFs become one page per
// frame. No page-type detection or table recovery runs on this path, the
// raster has no native text layer to mine.
func (p *Pipeline) FromImage(ctx context.Context, path string) (*report.ExtractionResult, error) {
	start := time.Now()
	res, err := p.fromImage(ctx, path)
	metrics.RecordExtraction(string(report.InputImage), time.Since(start), err)
	return res, err
}

func (p *Pipeline) fromImage(ctx context.Context, path string) (*report.ExtractionResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}

	frames, err := loadFrames(path)
	if err != nil {
		return nil, fmt.Errorf("decoding image %q: %w", path, err)
	}

	warnings := []string{}
	pages := make([]report.ExtractedPage, 0, len(frames))
	for i, frame := range frames {
		pageNum := i + 1
		processed, err := preprocess.Preprocess(frame, p.imageDPI)
		if err != nil {
			slog.Warn("Image preprocessing failed", "page", pageNum, "error", err)
			processed = frame
		}
		pg := ocr.ExtractPage(ctx, p.engine, processed, pageNum, p.corrections)
		pages = append(pages, pg)

		metrics.RecordPage(string(pg.Method))
		metrics.RecordOCRConfidence(pg.Confidence)

		if pg.Text == "" && len(frames) == 1 {
			warnings = append(warnings, "No text could be extracted from this image.")
		}
	}
	noText := warnings
	warnings = []string{}
	warnings = append(warnings, ocrWarnings(pages)...)
	warnings = append(warnings, noText...)

	fullText := joinPages(pages)
	if strings.TrimSpace(fullText) == "" && len(frames) > 1 {
		warnings = append(warnings, "No text could be extracted from this image.")
	}

	return &report.ExtractionResult{
		InputMode:  report.InputImage,
		FullText:   fullText,
		Pages:      pages,
		Tables:     []report.ExtractedTable{},
		TotalPages: len(frames),
		TotalChars: charCount(fullText),
		Filename:   filepath.Base(path),
		Warnings:   warnings,
	}, nil
}

// loadFrames decodes path into one image per page. GIF is the only
// multi-frame format the decoders expose; everything else is one frame.
func loadFrames(path string) ([]image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		g, err := gif.DecodeAll(f)
		if err != nil {
			return nil, err
		}
		frames := make([]image.Image, 0, len(g.Image))
		for _, frame := range g.Image {
			frames = append(frames, frame)
		}
		return frames, nil
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return []image.Image{img}, nil
}
