// Package testtypes defines the report-family handler contract and the
// shared machinery every family is built from: zone-weighted keyword
// scoring, declarative measurement definitions with table-first extraction,
// reference-range classification, and section/finding splitting.
package testtypes

import "github.com/MeKo-Tech/medscan/internal/report"

// Handler is the extraction/classification strategy for one report family.
// Implementations are stateless; a single instance serves all documents.
type Handler interface {
	// ID returns the stable type identifier, e.g. "echocardiogram".
	ID() string
	// DisplayName returns the human-readable name.
	DisplayName() string
	// Category groups the family ("cardiac", "vascular", "laboratory", ...).
	Category() string
	// Keywords lists detection keywords, also used for free-text resolution.
	Keywords() []string
	// Detect scores how likely the document belongs to this family, in [0,1].
	Detect(res *report.ExtractionResult) float64
	// Parse extracts measurements, sections and findings into a ParsedReport.
	// A document yielding zero measurements is not an error; the report
	// carries a warning instead.
	Parse(res *report.ExtractionResult, demo report.Demographics) *report.ParsedReport
	// ReferenceRanges exposes this family's threshold table.
	ReferenceRanges() map[string]RangeInfo
	// Glossary maps family jargon to plain-language definitions.
	Glossary() map[string]string
}

// SubtypeResolver is implemented by family handlers that refine themselves
// into a more specific variant (e.g. stress test → pharmacologic SPECT).
type SubtypeResolver interface {
	// ResolveSubtype returns the resolved (id, display name) for the
	// document, or ok=false when the family has no applicable subtype.
	ResolveSubtype(res *report.ExtractionResult) (id, display string, ok bool)
}

// Fallback marks a handler as a generic catch-all. During disambiguation a
// specialized runner-up within 0.15 of a fallback leader wins.
type Fallback interface {
	Fallback() bool
}

// RangeInfo is the externally visible form of one reference range entry.
type RangeInfo struct {
	NormalMin *float64 `json:"min,omitempty"`
	NormalMax *float64 `json:"max,omitempty"`
	Unit      string   `json:"unit"`
	Source    string   `json:"source"`
}

// Metadata describes a registered handler for type listings.
type Metadata struct {
	ID          string   `json:"test_type_id"`
	DisplayName string   `json:"display_name"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
}

// Describe builds listing metadata for a handler.
func Describe(h Handler) Metadata {
	return Metadata{
		ID:          h.ID(),
		DisplayName: h.DisplayName(),
		Category:    h.Category(),
		Keywords:    h.Keywords(),
	}
}

// NoMeasurementsWarning is attached to reports where extraction found
// nothing; the format is likely unsupported rather than the document empty.
const NoMeasurementsWarning = "No measurements could be extracted. " +
	"The report format may not be supported."
