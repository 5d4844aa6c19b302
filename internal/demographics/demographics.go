// Package demographics recovers patient context (age, sex, report date,
// physician) from free report text. Everything here is best-effort pattern
// matching over messy OCR output, so absent fields stay zero rather than
// failing the parse.
package demographics

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MeKo-Tech/medscan/internal/report"
)

const (
	maxAge = 120

	// Generic "Date:" labels are only trusted in the report header, where
	// they almost always mean the study date. Deeper in the body they can
	// be signature dates, prior-study references, or print timestamps.
	headerWindow = 500
)

var agePatterns = []*regexp.Regexp{
	// "Age: 45", "Age 45", "Age/Sex: 45/M"
	regexp.MustCompile(`(?i)\bage\s*(?:/\s*sex)?\s*[:=]?\s*(\d{1,3})\b`),
	// "45 yo", "45 y/o", "45 y.o."
	regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:yo|y\.?o\.?|y/o)\b`),
	// "45 year old", "45-year-old", "45 years old"
	regexp.MustCompile(`(?i)\b(\d{1,3})\s*-?\s*years?\s*-?\s*old\b`),
	// header shorthand: "45M", "45 M", "45/M"
	regexp.MustCompile(`(?i)\b(\d{1,3})\s*/?\s*[MF]\b`),
}

var dobPattern = regexp.MustCompile(
	`(?i)(?:DOB|date\s+of\s+birth|birth\s*date)\s*[:=]\s*(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`)

// sexPatterns and sexByToken map the many ways reports spell patient sex.
// The bare "45M" pattern stays case sensitive so prose like "45 ft" or
// "45 for" never matches a lowercase letter.
var sexPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:sex|gender)\s*[:=]\s*(male|female|m|f)\b`),
	regexp.MustCompile(`(?i)\b\d{1,3}\s*(?:yo|y\.?o\.?|y/o|years?\s*-?\s*old)\s+(male|female|man|woman|m|f)\b`),
	regexp.MustCompile(`\b\d{1,3}\s*/?\s*(M|F)\b`),
	regexp.MustCompile(`(?i)age\s*/\s*sex\s*[:=]?\s*\d{1,3}\s*/?\s*(M|F)\b`),
}

var sexByToken = map[string]report.Sex{
	"m":      report.SexMale,
	"male":   report.SexMale,
	"man":    report.SexMale,
	"f":      report.SexFemale,
	"female": report.SexFemale,
	"woman":  report.SexFemale,
}

const dateLabels = `(?:study\s+date|date\s+of\s+(?:study|exam(?:ination)?|procedure|report|service|test)` +
	`|exam(?:ination)?\s+date|procedure\s+date|report\s+date|service\s+date` +
	`|test\s+date|date\s+performed|performed\s+(?:on|date))`

// Ordered by specificity. The first two carry an explicit study/exam label
// and may match anywhere; the generic "Date:" forms are header-only.
var reportDatePatterns = []struct {
	re         *regexp.Regexp
	headerOnly bool
}{
	{regexp.MustCompile(`(?i)` + dateLabels + `\s*[:=]\s*(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`), false},
	{regexp.MustCompile(`(?i)` + dateLabels + `\s*[:=]\s*([A-Z][a-z]+\.?\s+\d{1,2},?\s+\d{4})`), false},
	{regexp.MustCompile(`(?i)\bdate\s*[:=]\s*(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`), true},
	{regexp.MustCompile(`(?i)\bdate\s*[:=]\s*([A-Z][a-z]+\.?\s+\d{1,2},?\s+\d{4})`), true},
}

// Extract pulls whatever demographics the text yields. Missing fields are
// left at their zero values.
func Extract(text string) report.Demographics {
	return extractAt(text, time.Now())
}

func extractAt(text string, now time.Time) report.Demographics {
	var d report.Demographics
	if text == "" {
		return d
	}

	for _, re := range agePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		age, err := strconv.Atoi(m[1])
		if err == nil && age >= 0 && age <= maxAge {
			d.Age = age
			break
		}
	}
	if d.Age == 0 {
		if m := dobPattern.FindStringSubmatch(text); m != nil {
			month, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			d.Age = ageFromDOB(month, day, year, now)
		}
	}

	for _, re := range sexPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if sex, ok := sexByToken[strings.ToLower(m[1])]; ok {
			d.Sex = sex
			break
		}
	}

	header := text
	if len(header) > headerWindow {
		header = header[:headerWindow]
	}
	for _, p := range reportDatePatterns {
		scope := text
		if p.headerOnly {
			scope = header
		}
		if m := p.re.FindStringSubmatch(scope); m != nil {
			d.ReportDate = strings.TrimSpace(m[1])
			break
		}
	}

	d.Physician = ExtractPhysician(text)
	return d
}

// ageFromDOB turns date-of-birth components into a current age. Two-digit
// years pivot at 30: 31..99 map to 19xx, 00..30 to 20xx. Returns 0 when the
// date is invalid or the resulting age is out of range.
func ageFromDOB(month, day, year int, now time.Time) int {
	if year < 100 {
		if year > 30 {
			year += 1900
		} else {
			year += 2000
		}
	}
	dob := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if int(dob.Month()) != month || dob.Day() != day || dob.Year() != year {
		return 0
	}

	age := now.Year() - year
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 || age > maxAge {
		return 0
	}
	return age
}
