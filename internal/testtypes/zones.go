package testtypes

import (
	"regexp"
	"strings"
)

// TitleZoneSize is how many leading characters count as the title zone.
// Report headers carry the modality label; keywords found there are far
// stronger evidence than the same keyword deep in the body.
const TitleZoneSize = 500

// Zone weights. A keyword found only inside a "comparison with prior study"
// block most likely names a different historical modality, not this report.
const (
	titleWeight          = 1.5
	bodyWeight           = 1.0
	comparisonOnlyWeight = 0.3
)

var comparisonHeaderRe = regexp.MustCompile(
	`(?im)^\s*(?:COMPARISON|COMPARED?\s+(?:TO|WITH)|PRIOR\s+STUD(?:Y|IES))\s*[:\-]`)

// nextSectionRe ends a comparison block at the next all-caps section header.
var nextSectionRe = regexp.MustCompile(`(?m)^\s*[A-Z][A-Z /]{3,}\s*[:\-]`)

// Zones splits document text into title, comparison, and body regions for
// positionally weighted keyword detection.
type Zones struct {
	Title      string
	Comparison string
	Body       string
}

// SplitZones carves the title zone off the front of the text and collects
// any comparison-with-prior sections. Body is the full text minus the
// comparison blocks (the title remains part of the body for containment
// checks; Weight prefers the title score when both hit).
func SplitZones(text string) Zones {
	z := Zones{Body: text}
	if len(text) > TitleZoneSize {
		z.Title = text[:TitleZoneSize]
	} else {
		z.Title = text
	}

	var comparison strings.Builder
	body := text
	for {
		loc := comparisonHeaderRe.FindStringIndex(body)
		if loc == nil {
			break
		}
		rest := body[loc[1]:]
		end := len(rest)
		if next := nextSectionRe.FindStringIndex(rest); next != nil {
			end = next[0]
		}
		comparison.WriteString(rest[:end])
		comparison.WriteString("\n")
		body = body[:loc[0]] + rest[end:]
	}
	z.Comparison = comparison.String()
	z.Body = body
	return z
}

// Weight returns the positional weight for kw: title hits score highest,
// plain body hits score 1.0, and keywords present only inside comparison
// sections are heavily discounted. Matching is case-insensitive substring
// containment, same as the tier scorer.
func (z Zones) Weight(kw string) float64 {
	k := strings.ToLower(kw)
	switch {
	case strings.Contains(strings.ToLower(z.Title), k):
		return titleWeight
	case strings.Contains(strings.ToLower(z.Body), k):
		return bodyWeight
	case strings.Contains(strings.ToLower(z.Comparison), k):
		return comparisonOnlyWeight
	default:
		return 0
	}
}

// Contains reports whether kw occurs in the title or body zone (weight ≥ 1),
// i.e. it counts as real evidence for this report rather than a prior study.
func (z Zones) Contains(kw string) bool {
	return z.Weight(kw) >= bodyWeight
}
