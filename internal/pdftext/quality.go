package pdftext

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/MeKo-Tech/medscan/internal/pagetype"
)

// Weights of the quality score components. The printable ratio dominates;
// token shape and vocabulary only refine it.
const (
	printableWeight = 0.6
	tokenWeight     = 0.3
	vocabBonusStep  = 0.02
	vocabBonusCap   = 0.10

	// Text this non-printable is treated as a broken text layer and
	// capped low no matter how long it is.
	garbageRatioCutoff = 0.5
	garbageScoreCap    = 0.2

	// Average token length of ordinary prose; longer adds nothing.
	typicalTokenLen = 6.0
)

// Medical report vocabulary; hits nudge the score up for text that reads
// like an actual report rather than decoded glyph soup.
var medicalVocab = []string{
	"patient", "report", "impression", "findings", "history", "clinical",
	"exam", "study", "normal", "physician", "diagnosis", "procedure",
	"left", "right", "moderate", "severe", "mg/dl", "mmhg",
}

// QualityScore rates extracted text in [0,1]: printable-character ratio
// (dominant), average token length, and a small medical-vocabulary bonus.
// The text is NFKC-normalized first so ligatures and compatibility forms
// from PDF fonts do not skew the ratio.
func QualityScore(text string) float64 {
	t := norm.NFKC.String(strings.TrimSpace(text))
	if t == "" {
		return 0
	}

	ratio := pagetype.PrintableRatio(t)
	if ratio < garbageRatioCutoff {
		return math.Min(ratio*garbageScoreCap/garbageRatioCutoff, garbageScoreCap)
	}

	score := printableWeight * ratio

	tokens := strings.Fields(t)
	if len(tokens) > 0 {
		total := 0
		for _, tok := range tokens {
			total += len(tok)
		}
		avg := float64(total) / float64(len(tokens))
		score += tokenWeight * math.Min(avg/typicalTokenLen, 1.0)
	}

	lower := strings.ToLower(t)
	hits := 0
	for _, w := range medicalVocab {
		if strings.Contains(lower, w) {
			hits++
		}
	}
	score += math.Min(float64(hits)*vocabBonusStep, vocabBonusCap)

	return math.Min(score, 1.0)
}
