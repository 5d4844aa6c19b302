// Package generic is the catch-all handler for reports no specialized
// family claims. It still produces sections and findings so downstream
// consumers get something useful, but extracts no measurements.
package generic

import (
	"strings"

	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

// Vocabulary shared by most clinical documents. A weak match here keeps the
// score low enough that any specialized handler beats it outright, while
// still claiming documents nothing else recognizes.
var medicalKeywords = []string{
	"patient", "physician", "provider", "clinic", "hospital", "medical",
	"diagnosis", "impression", "findings", "history", "exam", "report",
	"test", "result", "normal", "abnormal", "study",
}

var sectionSplitter = testtypes.NewSectionSplitter([]string{
	`HISTORY|CLINICAL\s+HISTORY`,
	`INDICATION|REASON\s+FOR\s+(?:TEST|STUDY|EXAM|VISIT)`,
	`TECHNIQUE|PROTOCOL|PROCEDURE`,
	`COMPARISON`,
	`RESULTS?|DATA`,
	`CONCLUSION|IMPRESSION|SUMMARY|INTERPRETATION|FINDINGS|DIAGNOSIS`,
})

// Handler is the fallback for otherwise unrecognized medical documents.
type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) ID() string          { return "generic" }
func (h *Handler) DisplayName() string { return "Medical Report" }
func (h *Handler) Category() string    { return "general" }
func (h *Handler) Fallback() bool      { return true }

func (h *Handler) Keywords() []string {
	return []string{"medical report", "clinical report", "medical record"}
}

// Detect scores any document with medical vocabulary at a flat 0.3 so the
// disambiguation window can hand close calls to a specialized handler.
func (h *Handler) Detect(res *report.ExtractionResult) float64 {
	text := strings.ToLower(res.FullText)
	if strings.TrimSpace(text) == "" {
		return 0
	}

	hits := 0
	for _, k := range medicalKeywords {
		if strings.Contains(text, k) {
			hits++
		}
	}
	if hits >= 2 {
		return 0.3
	}
	if hits == 1 {
		return 0.1
	}
	return 0
}

func (h *Handler) Parse(res *report.ExtractionResult, _ report.Demographics) *report.ParsedReport {
	return &report.ParsedReport{
		TestType:            h.ID(),
		TestTypeDisplay:     h.DisplayName(),
		DetectionConfidence: h.Detect(res),
		Measurements:        []report.ParsedMeasurement{},
		Sections:            sectionSplitter.Split(res.FullText),
		Findings:            testtypes.ExtractFindings(res.FullText),
		Warnings:            []string{testtypes.NoMeasurementsWarning},
	}
}

func (h *Handler) ReferenceRanges() map[string]testtypes.RangeInfo {
	return map[string]testtypes.RangeInfo{}
}

func (h *Handler) Glossary() map[string]string { return map[string]string{} }
