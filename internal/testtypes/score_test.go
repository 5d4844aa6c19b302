package testtypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordTiersScore(t *testing.T) {
	tiers := KeywordTiers{
		Strong:   []string{"complete blood count"},
		Moderate: []string{"hemoglobin", "hematocrit", "platelet", "wbc"},
		Weak:     []string{"mg/dl", "g/dl"},
	}

	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "no keywords",
			text: "quarterly revenue summary",
			want: 0,
		},
		{
			name: "strong hit gives base 0.7",
			text: "COMPLETE BLOOD COUNT",
			want: 0.7,
		},
		{
			name: "strong plus moderates adds bonus",
			text: "Complete Blood Count: hemoglobin 13.2 hematocrit 40",
			want: 0.7 + 2*0.05,
		},
		{
			name: "single moderate gives 0.2 plus bonus",
			text: "hemoglobin 13.2",
			want: 0.2 + 0.05,
		},
		{
			name: "three moderates give 0.4 plus bonus",
			text: "hemoglobin hematocrit platelet",
			want: 0.4 + 3*0.05,
		},
		{
			name: "weak only gives bonus without base",
			text: "value reported in mg/dl",
			want: 0.02,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tiers.Score(tt.text), 1e-9)
		})
	}
}

func TestKeywordTiersScoreCapped(t *testing.T) {
	var moderate []string
	for _, w := range []string{"aa", "bb", "cc", "dd", "ee", "ff", "gg", "hh"} {
		moderate = append(moderate, w)
	}
	tiers := KeywordTiers{Strong: []string{"zz"}, Moderate: moderate}

	// 8 moderate hits would add 0.40 of bonus, capped at 0.30.
	score := tiers.Score("zz aa bb cc dd ee ff gg hh")
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScoreZonesDiscountsComparison(t *testing.T) {
	tiers := KeywordTiers{Moderate: []string{"myocardial perfusion", "spect", "ischemia"}}

	current := SplitZones("MYOCARDIAL PERFUSION IMAGING\nSPECT images show no ischemia.")
	assert.InDelta(t, 0.4+3*1.5*0.05, tiers.ScoreZones(current), 1e-9)

	// The same three keywords appearing only in a comparison block are
	// weighted 0.3 each, too little to cross the >=1 moderate tier.
	padding := strings.Repeat("Carotid ultrasound findings follow. ", 20)
	prior := SplitZones(padding + "\n\nCOMPARISON: prior myocardial perfusion SPECT showed ischemia.")
	assert.InDelta(t, 3*0.3*0.05, tiers.ScoreZones(prior), 1e-9)
}

func TestScoreZonesTitleWeighting(t *testing.T) {
	tiers := KeywordTiers{Moderate: []string{"echocardiogram"}}

	// One moderate in the title weighs 1.5, crossing the >=1 tier and
	// raising the bonus above the plain-text variant.
	z := SplitZones("TRANSTHORACIC ECHOCARDIOGRAM REPORT")
	assert.InDelta(t, 0.2+1.5*0.05, tiers.ScoreZones(z), 1e-9)
}

func TestScoreDeterministic(t *testing.T) {
	tiers := KeywordTiers{
		Strong:   []string{"duplex"},
		Moderate: []string{"velocity", "stenosis", "plaque"},
	}
	text := "Carotid duplex: velocity elevated, calcified plaque, 50% stenosis"

	first := tiers.Score(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tiers.Score(text))
	}
}
