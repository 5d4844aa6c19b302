package pipeline

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MeKo-Tech/medscan/internal/emr"
	"github.com/MeKo-Tech/medscan/internal/metrics"
	"github.com/MeKo-Tech/medscan/internal/ocr"
	"github.com/MeKo-Tech/medscan/internal/pagetype"
	"github.com/MeKo-Tech/medscan/internal/pdfimage"
	"github.com/MeKo-Tech/medscan/internal/pdftext"
	"github.com/MeKo-Tech/medscan/internal/preprocess"
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/tables"
)

// OCR confidence floors for user-facing warnings.
const (
	veryLowOCRConfidence = 0.3
	lowOCRConfidence     = 0.5
)

// FromPDF extracts a PDF: page types are detected from the native text
// layer, text pages keep their native extraction, scanned pages go through
// OCR, and tables are recovered from text pages only.
func (p *Pipeline) FromPDF(ctx context.Context, path string) (*report.ExtractionResult, error) {
	start := time.Now()
	res, err := p.fromPDF(ctx, path)
	metrics.RecordExtraction(string(report.InputPDF), time.Since(start), err)
	return res, err
}

func (p *Pipeline) fromPDF(ctx context.Context, path string) (*report.ExtractionResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}

	total, err := pdftext.PageCount(path)
	if err != nil {
		return nil, err
	}
	processed := total
	if p.maxPages > 0 && processed > p.maxPages {
		processed = p.maxPages
	}
	allPages := make([]int, processed)
	for i := range allPages {
		allPages[i] = i + 1
	}

	native, err := pdftext.ExtractPages(path, allPages)
	if err != nil {
		return nil, err
	}

	// One classification pass drives both routing and the summary.
	detections := make([]report.PageDetection, 0, len(native))
	nativeByPage := make(map[int]report.ExtractedPage, len(native))
	var textPages, scannedPages []int
	for _, pg := range native {
		d := pagetype.Classify(pg.PageNumber, pg.Text)
		detections = append(detections, d)
		nativeByPage[pg.PageNumber] = pg
		if d.Type == report.PageText {
			textPages = append(textPages, pg.PageNumber)
		} else {
			scannedPages = append(scannedPages, pg.PageNumber)
		}
	}
	detection := pagetype.Summarize(detections)

	warnings := []string{}
	pages := make([]report.ExtractedPage, 0, total)
	for _, n := range textPages {
		pages = append(pages, nativeByPage[n])
	}

	if len(scannedPages) > 0 {
		ocrPages, err := p.ocrPDFPages(ctx, path, scannedPages)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf(
				"OCR failed for scanned pages: %v. Only text-based pages were extracted.", err))
		} else {
			pages = append(pages, ocrPages...)
			warnings = append(warnings, ocrWarnings(ocrPages)...)
		}
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].PageNumber < pages[j].PageNumber })
	for _, pg := range pages {
		metrics.RecordPage(string(pg.Method))
		if pg.Method == report.MethodOCR {
			metrics.RecordOCRConfidence(pg.Confidence)
		}
	}

	fullText := joinPages(pages)
	if strings.TrimSpace(fullText) == "" {
		warnings = append(warnings, "No text could be extracted from this PDF.")
	}

	fp := emr.Detect(fullText, pdftext.Metadata(path)...)

	var docTables []report.ExtractedTable
	if len(textPages) > 0 {
		textOnly := make([]report.ExtractedPage, 0, len(textPages))
		for _, n := range textPages {
			textOnly = append(textOnly, nativeByPage[n])
		}
		docTables = tables.FromPages(textOnly, fp.Source)
	}

	return &report.ExtractionResult{
		InputMode:           report.InputPDF,
		FullText:            fullText,
		Pages:               pages,
		Tables:              docTables,
		Detection:           detection,
		TotalPages:          total,
		TotalChars:          charCount(fullText),
		Filename:            filepath.Base(path),
		Warnings:            warnings,
		EMRSource:           fp.Source,
		EMRSourceConfidence: fp.Confidence,
	}, nil
}

// ocrPDFPages runs OCR over the given scanned page numbers using a worker
// pool. A page with no extractable raster, or whose OCR fails, degrades to
// an empty page rather than failing the document.
func (p *Pipeline) ocrPDFPages(ctx context.Context, path string, pageNumbers []int) ([]report.ExtractedPage, error) {
	images, err := pdfimage.ExtractPageImages(path, pageNumbers)
	if err != nil {
		return nil, err
	}

	workers := min(p.workers, len(pageNumbers))
	jobs := make(chan int, len(pageNumbers))
	results := make(chan report.ExtractedPage, len(pageNumbers))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pageNum := range jobs {
				results <- p.ocrOnePage(ctx, pdfimage.PageImage(images, pageNum), pageNum)
			}
		}()
	}

	for _, n := range pageNumbers {
		jobs <- n
	}
	close(jobs)
	wg.Wait()
	close(results)

	pages := make([]report.ExtractedPage, 0, len(pageNumbers))
	for pg := range results {
		pages = append(pages, pg)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].PageNumber < pages[j].PageNumber })
	return pages, nil
}

func (p *Pipeline) ocrOnePage(ctx context.Context, img image.Image, pageNum int) report.ExtractedPage {
	if img == nil {
		slog.Warn("No raster image found for scanned page", "page", pageNum)
		return ocr.EmptyPage(pageNum)
	}
	processed, err := preprocess.Preprocess(img, 0)
	if err != nil {
		slog.Warn("Page preprocessing failed", "page", pageNum, "error", err)
		processed = img
	}
	return ocr.ExtractPage(ctx, p.engine, processed, pageNum, p.corrections)
}

// ocrWarnings flags pages whose mean OCR confidence is low enough that the
// text should not be trusted blindly.
func ocrWarnings(pages []report.ExtractedPage) []string {
	var warnings []string
	for _, pg := range pages {
		switch {
		case pg.Confidence < veryLowOCRConfidence:
			warnings = append(warnings, fmt.Sprintf(
				"Page %d: very low OCR confidence (%.0f%%). Text is likely unreliable — consider re-scanning at higher resolution.",
				pg.PageNumber, pg.Confidence*100))
		case pg.Confidence < lowOCRConfidence:
			warnings = append(warnings, fmt.Sprintf(
				"Page %d: low OCR confidence (%.0f%%). Some text may be inaccurate.",
				pg.PageNumber, pg.Confidence*100))
		}
	}
	return warnings
}
