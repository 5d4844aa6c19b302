// Package registry holds the test-type handler registry and the detection
// logic that picks a handler for a document: an explicit-header pre-pass,
// per-handler keyword scoring adjusted by historical user corrections, and
// generic-vs-specialized disambiguation.
package registry

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

// HeaderConfidence is assigned when an explicit report-type label in the
// document header resolves to a registered handler.
const HeaderConfidence = 0.85

// headerWindow limits the header pre-pass to the start of the document.
const headerWindow = 500

var headerPatterns = []*regexp.Regexp{
	// Labeled formats: "Report: ...", "Exam Type: ...", "Study: ...".
	regexp.MustCompile(`(?im)(?:report|exam(?:ination)?|test|study|procedure|modality)\s*(?:type)?[:\-]\s*(.+)`),
	regexp.MustCompile(`(?im)^(?:IMPRESSION|INDICATION|FINDINGS)\s+(?:FOR|OF)\s+(.+)`),
	// Standalone modality on its own line, e.g. "MRI BRAIN WITHOUT CONTRAST".
	regexp.MustCompile(`(?im)^[ \t]*((?:MRI|MR|CT|CTA|MRA|X-?RAY|ULTRASOUND|US|ECHO|PET|SPECT|DEXA|EKG|ECG|EEG|EMG)[ \t]+.{3,60})[ \t]*$`),
}

// Candidate is one (type id, confidence) pair from multi-detection.
type Candidate struct {
	TypeID     string  `json:"test_type_id"`
	Confidence float64 `json:"confidence"`
}

// Registry maps test type IDs to handlers and detects which handler a
// document belongs to. The zero value is not usable; construct with New.
// Register and RegisterSubtype are not safe for concurrent use with
// detection; populate the registry before serving.
type Registry struct {
	handlers map[string]testtypes.Handler
	// Registration order, so detection and listings are deterministic.
	order []string
	// Subtype id -> parent family handler.
	subtypeParents map[string]testtypes.Handler
	// Family parents replaced by their subtypes, hidden from ListTypes.
	hiddenIDs map[string]struct{}

	corrections *CorrectionCache
}

// New returns an empty registry. A nil cache disables correction-based
// score adjustment.
func New(corrections *CorrectionCache) *Registry {
	return &Registry{
		handlers:       make(map[string]testtypes.Handler),
		subtypeParents: make(map[string]testtypes.Handler),
		hiddenIDs:      make(map[string]struct{}),
		corrections:    corrections,
	}
}

// Register adds a handler under its own ID, replacing any previous one.
func (r *Registry) Register(h testtypes.Handler) {
	id := h.ID()
	if _, exists := r.handlers[id]; exists {
		slog.Warn("Overwriting existing test type handler", "test_type_id", id)
	} else {
		r.order = append(r.order, id)
	}
	r.handlers[id] = h
	slog.Info("Registered test type handler", "test_type_id", id)
}

// RegisterSubtype maps a subtype ID to its parent family handler and hides
// the parent from type listings; the subtypes stand in for it.
func (r *Registry) RegisterSubtype(subtypeID string, parent testtypes.Handler) {
	r.subtypeParents[subtypeID] = parent
	r.hiddenIDs[parent.ID()] = struct{}{}
}

// DetectFromHeader scans the start of the document for an explicit report
// type label ("Exam Type: Echocardiogram", a standalone modality line) and
// resolves it against registered handlers. Returns ("", 0) when no label
// resolves.
func (r *Registry) DetectFromHeader(res *report.ExtractionResult) (string, float64) {
	header := res.FullText
	if len(header) > headerWindow {
		header = header[:headerWindow]
	}
	for _, pat := range headerPatterns {
		m := pat.FindStringSubmatch(header)
		if m == nil {
			continue
		}
		label := strings.TrimRight(strings.TrimSpace(m[1]), ".")
		if id, h := r.Resolve(label); h != nil {
			return id, HeaderConfidence
		}
	}
	return "", 0
}

// Detect auto-detects the document's test type. Returns ("", 0) when no
// handler scores above zero. The context bounds the correction cache
// refresh, not handler scoring.
func (r *Registry) Detect(ctx context.Context, res *report.ExtractionResult) (string, float64) {
	if id, conf := r.DetectFromHeader(res); id != "" {
		return id, conf
	}

	type scored struct {
		id         string
		confidence float64
		handler    testtypes.Handler
	}
	var scores []scored
	for _, id := range r.order {
		h := r.handlers[id]
		if conf := h.Detect(res); conf > 0 {
			scores = append(scores, scored{id, conf, h})
		}
	}
	if len(scores) == 0 {
		return "", 0
	}

	// Adjust by historical user corrections, then rank.
	if r.corrections != nil {
		snap := r.corrections.Snapshot(ctx)
		for i := range scores {
			scores[i].confidence = snap.Adjust(scores[i].id, scores[i].confidence)
		}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].confidence > scores[j].confidence
	})
	best := scores[0]

	// Disambiguation: a specialized runner-up close behind a generic
	// catch-all leader wins.
	if len(scores) >= 2 {
		second := scores[1]
		if best.confidence-second.confidence <= 0.15 &&
			isFallback(best.handler) && !isFallback(second.handler) {
			best = second
		}
	}

	// Family handlers may refine the winner to a specific subtype.
	if sr, ok := best.handler.(testtypes.SubtypeResolver); ok {
		if subID, _, ok := sr.ResolveSubtype(res); ok {
			best.id = subID
		}
	}
	return best.id, best.confidence
}

// DetectMulti returns every test type scoring at or above threshold,
// sorted descending by confidence; the first entry is the primary type.
// A resolving header label is included at HeaderConfidence. No correction
// adjustment or disambiguation is applied.
func (r *Registry) DetectMulti(res *report.ExtractionResult, threshold float64) []Candidate {
	var results []Candidate
	if id, conf := r.DetectFromHeader(res); id != "" {
		results = append(results, Candidate{TypeID: id, Confidence: conf})
	}
	for _, id := range r.order {
		h := r.handlers[id]
		conf := h.Detect(res)
		if conf < threshold {
			continue
		}
		resolved := id
		if sr, ok := h.(testtypes.SubtypeResolver); ok {
			if subID, _, ok := sr.ResolveSubtype(res); ok {
				resolved = subID
			}
		}
		results = append(results, Candidate{TypeID: resolved, Confidence: conf})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Confidence > results[j].Confidence
	})
	return results
}

// Get returns the handler for a type ID, or nil. Subtype IDs resolve to
// their parent family handler.
func (r *Registry) Get(typeID string) testtypes.Handler {
	if parent, ok := r.subtypeParents[typeID]; ok {
		return parent
	}
	return r.handlers[typeID]
}

// Resolve maps a type ID or free-text name to a handler: subtype parent,
// then exact ID, then keyword containment where the longest matching
// keyword wins. Returns ("", nil) when nothing matches.
func (r *Registry) Resolve(idOrName string) (string, testtypes.Handler) {
	if parent, ok := r.subtypeParents[idOrName]; ok {
		return idOrName, parent
	}
	if h, ok := r.handlers[idOrName]; ok {
		return idOrName, h
	}

	query := strings.ToLower(idOrName)
	var (
		bestID      string
		bestHandler testtypes.Handler
		bestScore   int
	)
	for _, id := range r.order {
		h := r.handlers[id]
		for _, kw := range h.Keywords() {
			lkw := strings.ToLower(kw)
			if !strings.Contains(query, lkw) && !strings.Contains(lkw, query) {
				continue
			}
			if len(kw) > bestScore {
				bestScore = len(kw)
				bestID = id
				bestHandler = h
			}
		}
	}
	return bestID, bestHandler
}

// ListTypes returns metadata for registered handlers in registration
// order, skipping family parents that subtypes have replaced.
func (r *Registry) ListTypes() []testtypes.Metadata {
	out := make([]testtypes.Metadata, 0, len(r.order))
	for _, id := range r.order {
		if _, hidden := r.hiddenIDs[id]; hidden {
			continue
		}
		out = append(out, testtypes.Describe(r.handlers[id]))
	}
	return out
}

// ReferenceRanges returns the range table for a type ID, or nil when the
// type is unknown.
func (r *Registry) ReferenceRanges(typeID string) map[string]testtypes.RangeInfo {
	h := r.Get(typeID)
	if h == nil {
		return nil
	}
	return h.ReferenceRanges()
}

// Glossary returns plain-language term definitions for a type ID, or nil
// when the type is unknown.
func (r *Registry) Glossary(typeID string) map[string]string {
	h := r.Get(typeID)
	if h == nil {
		return nil
	}
	return h.Glossary()
}

func isFallback(h testtypes.Handler) bool {
	f, ok := h.(testtypes.Fallback)
	return ok && f.Fallback()
}
