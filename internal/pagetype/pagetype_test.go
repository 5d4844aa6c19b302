package pagetype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeKo-Tech/medscan/internal/report"
)

func TestClassifyTextPage(t *testing.T) {
	text := strings.Repeat("Normal left ventricular systolic function. ", 5)
	d := Classify(1, text)

	assert.Equal(t, report.PageText, d.Type)
	assert.Equal(t, 1, d.PageNumber)
	assert.GreaterOrEqual(t, d.CharCount, TextCharThreshold)
	assert.Greater(t, d.Confidence, 0.9)
}

func TestClassifyShortTextIsScanned(t *testing.T) {
	d := Classify(2, "Page 2")
	assert.Equal(t, report.PageScanned, d.Type)
	// Starved of characters: confidence approaches 1 as count drops.
	assert.InDelta(t, 1-6.0/TextCharThreshold, d.Confidence, 1e-9)
}

func TestClassifyEmptyPage(t *testing.T) {
	d := Classify(3, "   \n\t ")
	assert.Equal(t, report.PageScanned, d.Type)
	assert.Zero(t, d.CharCount)
	assert.InDelta(t, 1.0, d.Confidence, 1e-9)
}

func TestClassifyGarbledTextIsScanned(t *testing.T) {
	// Long enough to pass the char threshold but dominated by control
	// characters, as broken text layers produce.
	garbled := strings.Repeat("a\x00\x01\x02", 30)
	d := Classify(1, garbled)

	assert.Equal(t, report.PageScanned, d.Type)
	assert.Less(t, d.PrintableRatio, PrintableRatioThreshold)
	// Garbled rather than starved: confidence mirrors the junk fraction.
	assert.InDelta(t, 1-d.PrintableRatio, d.Confidence, 1e-3)
}

func TestClassifyThresholdBoundary(t *testing.T) {
	// Exactly at the char threshold with clean text: machine text.
	text := strings.Repeat("a", TextCharThreshold)
	d := Classify(1, text)
	assert.Equal(t, report.PageText, d.Type)

	// One below: scanned, regardless of cleanliness.
	d = Classify(1, strings.Repeat("a", TextCharThreshold-1))
	assert.Equal(t, report.PageScanned, d.Type)
}

func TestTextConfidenceSaturates(t *testing.T) {
	short := Classify(1, strings.Repeat("a", 100))
	long := Classify(1, strings.Repeat("a", 500))

	assert.Less(t, short.Confidence, long.Confidence)
	assert.InDelta(t, 1.0, long.Confidence, 1e-9)
}

func TestSummarizeOverallTypes(t *testing.T) {
	text := report.PageDetection{Type: report.PageText}
	scan := report.PageDetection{Type: report.PageScanned}

	tests := []struct {
		name  string
		pages []report.PageDetection
		want  report.PageType
	}{
		{"all text", []report.PageDetection{text, text}, report.PageText},
		{"all scanned", []report.PageDetection{scan, scan}, report.PageScanned},
		{"mixed", []report.PageDetection{text, scan}, report.PageMixed},
		{"empty", nil, report.PageScanned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.pages)
			assert.Equal(t, tt.want, got.OverallType)
			assert.Equal(t, len(tt.pages), got.TotalPages)
		})
	}
}

func TestPrintableRatio(t *testing.T) {
	assert.InDelta(t, 1.0, PrintableRatio("clean text with spaces"), 1e-9)
	assert.Zero(t, PrintableRatio(""))
	assert.InDelta(t, 0.5, PrintableRatio("ab\x00\x01"), 1e-9)
}
