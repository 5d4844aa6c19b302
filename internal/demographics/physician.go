package demographics

import (
	"regexp"
	"strings"
)

// Referring/ordering labels outrank attending ones: the product attributes
// findings back to whoever ordered the study.
var (
	referringLabels = []string{
		`Referred\s+by`,
		`Referring\s+Physician`,
		`Referring\s+Provider`,
		`Ordering\s+Physician`,
		`Ordered\s+by`,
		`Requesting\s+Physician`,
		`Primary\s+Care\s+Physician`,
	}
	secondaryLabels = []string{
		`Attending\s+Physician`,
		`Clinician`,
	}
)

// [^\S\n] is whitespace minus newline so the captured name cannot leak
// across lines in the same-line form.
const (
	samelineTemplate = `(?i)(?:%s)[^\S\n]*[:\-]?[^\S\n]*(?:Dr\.?[^\S\n]*)?([A-Za-z][A-Za-z \t.\-']+)`
	nextlineTemplate = `(?i)(?:%s)[^\S\n]*[:\-]?[^\S\n]*\n[^\S\n]*(?:Dr\.?[^\S\n]*)?([A-Za-z][A-Za-z \t.\-']+)`
)

var (
	suffixPattern = regexp.MustCompile(
		`(?i)\b(?:MD|DO|NP|PA|Ph\.?D|FACC|FACS|Jr|Sr|II|III|IV)\b\.?`)
	// Fields that commonly trail the name on the same header line.
	boundaryPattern = regexp.MustCompile(
		`(?i)\b(?:age|dob|date|patient|sex|gender|mrn|acct|account|location|dept)\b`)
	trailingJunk = regexp.MustCompile(`[,.\s]+$`)
)

var (
	referringPatterns = compileLabelPatterns(referringLabels)
	secondaryPatterns = compileLabelPatterns(secondaryLabels)
)

func compileLabelPatterns(labels []string) []*regexp.Regexp {
	joined := strings.Join(labels, "|")
	return []*regexp.Regexp{
		regexp.MustCompile(strings.Replace(samelineTemplate, "%s", joined, 1)),
		regexp.MustCompile(strings.Replace(nextlineTemplate, "%s", joined, 1)),
	}
}

// ExtractPhysician finds the referring or ordering physician and returns
// "Dr. LastName", or "" when no labeled name is present.
func ExtractPhysician(text string) string {
	if text == "" {
		return ""
	}
	if name := tryPatterns(text, referringPatterns); name != "" {
		return name
	}
	return tryPatterns(text, secondaryPatterns)
}

func tryPatterns(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if name := cleanName(m[1]); name != "" {
				return name
			}
		}
	}
	return ""
}

// cleanName reduces a raw capture like "Sarah Chen, MD Age: 62" to
// "Dr. Chen". Returns "" when nothing name-like survives the cleanup.
func cleanName(raw string) string {
	raw = strings.TrimSpace(raw)

	if loc := boundaryPattern.FindStringIndex(raw); loc != nil {
		raw = strings.TrimSpace(raw[:loc[0]])
	}
	cleaned := strings.TrimSpace(suffixPattern.ReplaceAllString(raw, ""))
	cleaned = strings.TrimSpace(trailingJunk.ReplaceAllString(cleaned, ""))
	if cleaned == "" {
		return ""
	}

	tokens := strings.Fields(cleaned)
	lastName := strings.Trim(tokens[len(tokens)-1], ".,")
	if lastName == "" {
		return ""
	}

	parts := strings.Split(lastName, "-")
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return "Dr. " + strings.Join(parts, "-")
}

// capitalize title-cases one name token, normalizing SMITH and smith alike.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
