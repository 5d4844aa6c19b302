// Package pipeline orchestrates document ingestion: page-type detection,
// native text extraction, OCR of scanned pages, table recovery, and EMR
// fingerprinting, producing one ExtractionResult per document.
package pipeline

import (
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/MeKo-Tech/medscan/internal/ocr"
	"github.com/MeKo-Tech/medscan/internal/report"
)

// Options configures a Pipeline. Zero values select sensible defaults.
type Options struct {
	// Engine performs OCR on scanned pages. Defaults to Tesseract with
	// English language data.
	Engine ocr.Engine

	// Corrections are applied to OCR output. Defaults to the built-in
	// medical correction list.
	Corrections []ocr.Correction

	// Workers bounds concurrent OCR pages. Defaults to runtime.NumCPU.
	Workers int

	// ImageDPI is the assumed resolution of standalone image inputs,
	// used to decide preprocessing upscale. Defaults to 72.
	ImageDPI int

	// MaxPages caps how many PDF pages are processed. 0 means no cap;
	// TotalPages still reports the document's real page count.
	MaxPages int
}

// Pipeline runs extractions. Safe for concurrent use.
type Pipeline struct {
	engine      ocr.Engine
	corrections []ocr.Correction
	workers     int
	imageDPI    int
	maxPages    int
}

// New builds a Pipeline from opts.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		engine:      opts.Engine,
		corrections: opts.Corrections,
		workers:     opts.Workers,
		imageDPI:    opts.ImageDPI,
		maxPages:    opts.MaxPages,
	}
	if p.engine == nil {
		p.engine = ocr.NewTesseract("eng")
	}
	if p.corrections == nil {
		p.corrections = ocr.DefaultCorrections()
	}
	if p.workers <= 0 {
		p.workers = runtime.NumCPU()
	}
	if p.imageDPI <= 0 {
		p.imageDPI = 72
	}
	return p
}

// joinPages concatenates nonempty page texts with blank lines between
// pages, preserving page order.
func joinPages(pages []report.ExtractedPage) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func charCount(s string) int {
	return utf8.RuneCountInString(s)
}
