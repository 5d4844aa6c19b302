package testtypes

import "strings"

// KeywordTiers is the tiered keyword set driving family detection. Strong
// keywords are near-definitive phrases ("complete blood count"); moderate
// ones are suggestive terms; weak ones are units and incidental vocabulary
// that only contribute a small bonus.
type KeywordTiers struct {
	Strong   []string
	Moderate []string
	Weak     []string
}

// Score computes the detection confidence for plain text, without zone
// weighting: base 0.7 for any strong hit, 0.4 for ≥3 moderate hits, 0.2 for
// ≥1, plus a capped bonus of 0.05 per moderate and 0.02 per weak hit.
func (t KeywordTiers) Score(text string) float64 {
	lower := strings.ToLower(text)
	strong := float64(countHits(lower, t.Strong))
	moderate := float64(countHits(lower, t.Moderate))
	weak := float64(countHits(lower, t.Weak))
	return tierScore(strong, moderate, weak)
}

// ScoreZones computes detection confidence with positional weighting: a
// keyword in the title zone counts 1.5x, in the body 1.0x, and a keyword
// that appears only in a comparison section counts 0.3x. This keeps a prior
// study's vocabulary from hijacking detection of the current one.
func (t KeywordTiers) ScoreZones(z Zones) float64 {
	strong := sumZoneWeights(z, t.Strong)
	moderate := sumZoneWeights(z, t.Moderate)
	weak := sumZoneWeights(z, t.Weak)
	return tierScore(strong, moderate, weak)
}

func tierScore(strong, moderate, weak float64) float64 {
	var base float64
	switch {
	case strong > 0:
		base = 0.7
	case moderate >= 3:
		base = 0.4
	case moderate >= 1:
		base = 0.2
	}
	bonus := moderate*0.05 + weak*0.02
	if bonus > 0.3 {
		bonus = 0.3
	}
	score := base + bonus
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func countHits(lower string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			n++
		}
	}
	return n
}

func sumZoneWeights(z Zones, keywords []string) float64 {
	var n float64
	for _, k := range keywords {
		n += z.Weight(k)
	}
	return n
}
