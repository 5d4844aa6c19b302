package pipeline

import (
	"errors"
	"strings"

	"github.com/MeKo-Tech/medscan/internal/emr"
	"github.com/MeKo-Tech/medscan/internal/metrics"
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/tables"
)

// ErrEmptyText is returned when pasted input contains no usable text.
var ErrEmptyText = errors.New("no text provided: pasted input is empty")

// FromText wraps pasted report text as a single fully-trusted page and
// recovers tabular structure from it.
func (p *Pipeline) FromText(text string) (*report.ExtractionResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	page := report.ExtractedPage{
		PageNumber: 1,
		Text:       text,
		Method:     report.MethodDirectInput,
		Confidence: 1.0,
		CharCount:  charCount(text),
	}
	metrics.RecordPage(string(report.MethodDirectInput))

	fp := emr.Detect(text)

	return &report.ExtractionResult{
		InputMode:           report.InputText,
		FullText:            text,
		Pages:               []report.ExtractedPage{page},
		Tables:              tables.ParseText(text, fp.Source),
		TotalPages:          1,
		TotalChars:          charCount(text),
		Warnings:            []string{},
		EMRSource:           fp.Source,
		EMRSourceConfidence: fp.Confidence,
	}, nil
}
