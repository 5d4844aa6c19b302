// Package pagetype classifies PDF pages as machine text or scanned
// images based on the text their native text layer yields. Garbled text
// layers (encoding damage, vector soup) are rejected by a printable
// character ratio so they fall through to OCR.
package pagetype

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MeKo-Tech/medscan/internal/report"
)

const (
	// TextCharThreshold is the minimum extracted character count for a
	// page to count as machine text.
	TextCharThreshold = 50
	// PrintableRatioThreshold rejects text layers dominated by control
	// or replacement characters.
	PrintableRatioThreshold = 0.70
	// Text-page confidence saturates at this many characters.
	confidenceSaturationChars = 200
)

// Classify produces the page-type verdict for one page's extracted text.
func Classify(pageNumber int, text string) report.PageDetection {
	trimmed := strings.TrimSpace(text)
	charCount := utf8.RuneCountInString(trimmed)
	ratio := PrintableRatio(trimmed)

	d := report.PageDetection{
		PageNumber:     pageNumber,
		CharCount:      charCount,
		PrintableRatio: round3(ratio),
	}

	if charCount >= TextCharThreshold && ratio >= PrintableRatioThreshold {
		d.Type = report.PageText
		d.Confidence = round3(math.Min(1, float64(charCount)/confidenceSaturationChars) * ratio)
		return d
	}

	d.Type = report.PageScanned
	if charCount < TextCharThreshold {
		d.Confidence = round3(1 - float64(charCount)/TextCharThreshold)
	} else {
		d.Confidence = round3(1 - ratio)
	}
	return d
}

// Summarize aggregates page verdicts into the document-level type: TEXT
// when every page is machine text, SCANNED when none is, MIXED otherwise.
// An empty document counts as SCANNED.
func Summarize(pages []report.PageDetection) *report.DetectionSummary {
	summary := &report.DetectionSummary{
		TotalPages: len(pages),
		Pages:      pages,
	}
	if len(pages) == 0 {
		summary.OverallType = report.PageScanned
		return summary
	}

	textPages := 0
	for _, p := range pages {
		if p.Type == report.PageText {
			textPages++
		}
	}
	switch textPages {
	case len(pages):
		summary.OverallType = report.PageText
	case 0:
		summary.OverallType = report.PageScanned
	default:
		summary.OverallType = report.PageMixed
	}
	return summary
}

// PrintableRatio is the fraction of runes that are graphic or ordinary
// whitespace. Zero for empty text.
func PrintableRatio(text string) float64 {
	if text == "" {
		return 0
	}
	total, printable := 0, 0
	for _, r := range text {
		total++
		if r == utf8.RuneError {
			continue
		}
		if unicode.IsGraphic(r) || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			printable++
		}
	}
	return float64(printable) / float64(total)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
