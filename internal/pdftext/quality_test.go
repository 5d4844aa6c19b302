package pdftext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeKo-Tech/medscan/internal/report"
)

func TestQualityScoreEmpty(t *testing.T) {
	assert.Zero(t, QualityScore(""))
	assert.Zero(t, QualityScore("   \n\t"))
}

func TestQualityScoreCleanReportText(t *testing.T) {
	text := "Patient presents with normal findings. Clinical history reviewed. " +
		"Impression: no acute abnormality identified on this exam."
	score := QualityScore(text)
	assert.Greater(t, score, 0.8)
	assert.LessOrEqual(t, score, 1.0)
}

func TestQualityScoreGarbledTextCappedLow(t *testing.T) {
	// Mostly control characters: a broken text layer, however long.
	garbled := strings.Repeat("\x00\x01\x02a", 200)
	assert.LessOrEqual(t, QualityScore(garbled), garbageScoreCap)
}

func TestQualityScoreShortTokensScoreLower(t *testing.T) {
	prose := "The patient underwent routine echocardiographic examination today"
	chopped := "a b c d e f g h i j k l m n o p q r s t u v w x y z"
	assert.Greater(t, QualityScore(prose), QualityScore(chopped))
}

func TestQualityScoreMedicalVocabularyBonus(t *testing.T) {
	neutral := "quarterly revenue figures exceeded projections across segments"
	medical := "clinical impression documented findings patient history reviewed"
	assert.Greater(t, QualityScore(medical), QualityScore(neutral))
}

func TestMergeResultsPrefersMoreText(t *testing.T) {
	primary := []report.ExtractedPage{
		{PageNumber: 1, Text: "short", CharCount: 5},
		{PageNumber: 2, Text: "a much longer primary extraction", CharCount: 32},
	}
	secondary := []report.ExtractedPage{
		{PageNumber: 1, Text: "a fuller secondary extraction", CharCount: 29},
		{PageNumber: 2, Text: "tiny", CharCount: 4},
	}

	merged := mergeResults(primary, secondary)
	assert.Equal(t, 29, merged[0].CharCount)
	assert.Equal(t, 32, merged[1].CharCount)
}

func TestMergeResultsNoSecondary(t *testing.T) {
	primary := []report.ExtractedPage{{PageNumber: 1, CharCount: 10}}
	merged := mergeResults(primary, nil)
	assert.Equal(t, primary, merged)
}

func TestBuildPage(t *testing.T) {
	p := buildPage(3, "Patient exam findings normal.")
	assert.Equal(t, 3, p.PageNumber)
	assert.Equal(t, report.MethodNativeText, p.Method)
	assert.Equal(t, 29, p.CharCount)
	assert.Greater(t, p.Confidence, 0.5)
}
