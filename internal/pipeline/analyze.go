package pipeline

import (
	"context"
	"fmt"

	"github.com/MeKo-Tech/medscan/internal/demographics"
	"github.com/MeKo-Tech/medscan/internal/metrics"
	"github.com/MeKo-Tech/medscan/internal/registry"
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

// ParseReport runs test-type detection over an extraction and hands the
// document to the winning family parser. A non-empty typeID pins the family
// instead, for callers that already know the type or are re-parsing after a
// user correction; pinned parses report full confidence.
func (p *Pipeline) ParseReport(ctx context.Context, reg *registry.Registry, res *report.ExtractionResult, typeID string) (*report.ParsedReport, error) {
	if res == nil {
		return nil, fmt.Errorf("nil extraction result")
	}

	var (
		handler    testtypes.Handler
		id         string
		confidence float64
	)
	if typeID != "" {
		id, handler = reg.Resolve(typeID)
		if handler == nil {
			return nil, fmt.Errorf("unknown test type %q", typeID)
		}
		confidence = 1.0
	} else {
		id, confidence = reg.Detect(ctx, res)
		if id == "" {
			return nil, fmt.Errorf("no test type handler matched the document")
		}
		handler = reg.Get(id)
		if handler == nil {
			return nil, fmt.Errorf("no handler registered for detected type %q", id)
		}
	}

	demo := demographics.Extract(res.FullText)
	parsed := handler.Parse(res, demo)

	// The registry's verdict wins over what the family parser stamped:
	// it carries subtype resolution and correction-adjusted confidence.
	parsed.TestType = id
	parsed.DetectionConfidence = confidence
	if id != handler.ID() {
		if sr, ok := handler.(testtypes.SubtypeResolver); ok {
			if subID, display, ok := sr.ResolveSubtype(res); ok && subID == id {
				parsed.TestTypeDisplay = display
			}
		}
	}

	// Extraction warnings ride along so downstream consumers see low-OCR
	// and empty-document notices without holding both artifacts.
	if len(res.Warnings) > 0 {
		parsed.Warnings = append(append([]string{}, res.Warnings...), parsed.Warnings...)
	}

	metrics.RecordDetection(id, confidence)
	metrics.RecordParse(id, len(parsed.Measurements), len(res.Tables))
	return parsed, nil
}
