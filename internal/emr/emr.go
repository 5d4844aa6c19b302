// Package emr fingerprints which EMR/PACS system produced a report.
// Downstream table detection biases its strategy order on the result:
// Epic exports lean pipe-delimited, Meditech fixed-width.
package emr

import (
	"strings"

	"github.com/MeKo-Tech/medscan/internal/report"
)

// Fingerprint is the identified source system and how sure we are.
type Fingerprint struct {
	Source     string  `json:"source,omitempty"` // "" when unknown
	Confidence float64 `json:"confidence"`
}

// minConfidence below which the source stays unknown.
const minConfidence = 0.3

// marker is one keyword pointing at a source system. Product names weigh
// more than the vendor name alone, which can appear in prose.
type marker struct {
	keyword string
	weight  float64
}

// sourceOrder fixes tie-breaking so repeated runs on the same text agree.
var sourceOrder = []string{report.EMREpic, report.EMRCerner, report.EMRMeditech}

var markers = map[string][]marker{
	report.EMREpic: {
		{"epic systems", 0.9},
		{"hyperspace", 0.8},
		{"epiccare", 0.8},
		{"mychart", 0.7},
		{"epic", 0.4},
	},
	report.EMRCerner: {
		{"cerner", 0.7},
		{"powerchart", 0.8},
		{"cerner millennium", 0.9},
		{"oracle health", 0.6},
	},
	report.EMRMeditech: {
		{"meditech", 0.8},
		{"meditech expanse", 0.9},
		{"mt-client", 0.6},
	},
}

// Detect fingerprints the report text plus any document metadata strings
// (PDF creator/producer fields). Returns an empty source when no system
// scores above the floor.
func Detect(text string, metadata ...string) Fingerprint {
	haystack := strings.ToLower(text)
	for _, m := range metadata {
		haystack += "\n" + strings.ToLower(m)
	}

	best := Fingerprint{}
	for _, source := range sourceOrder {
		score := 0.0
		for _, m := range markers[source] {
			if strings.Contains(haystack, m.keyword) {
				score = max(score, m.weight)
			}
		}
		if score > best.Confidence {
			best = Fingerprint{Source: source, Confidence: score}
		}
	}

	if best.Confidence < minConfidence {
		return Fingerprint{}
	}
	return best
}
