package carotid

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

const (
	num = `(?P<value>\d+\.?\d*)`
	sep = `[\s:=]+\s*`
)

func pats(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// Inline labeled measurements. The side-by-side velocity table is handled
// separately by extractTabularVelocities.
var measurementDefs = []testtypes.MeasurementDef{
	{
		Name: "Right ICA/CCA Velocity Ratio", Code: "R_ICA_CCA_Ratio", Unit: "",
		Patterns: pats(
			`(?i)(?:right|rt\.?)\s+.*?ICA[/\\]CCA\s+(?:velocity\s+)?ratio\s*[:\s=]*(?P<value>\d+\.?\d*)`,
		),
		Min: 0.3, Max: 10.0,
	},
	{
		Name: "Left ICA/CCA Velocity Ratio", Code: "L_ICA_CCA_Ratio", Unit: "",
		Patterns: pats(
			`(?i)(?:left|lt\.?)\s+.*?ICA[/\\]CCA\s+(?:velocity\s+)?ratio\s*[:\s=]*(?P<value>\d+\.?\d*)`,
		),
		Min: 0.3, Max: 10.0,
	},
	{
		Name: "Right IMT", Code: "R_IMT", Unit: "mm",
		Patterns: pats(
			`(?i)(?:right|rt\.?)\s+(?:CCA\s+)?(?:intima[- ]media\s+thickness|IMT)` + sep + num + `\s*(?:mm)?`,
		),
		Min: 0.2, Max: 3.0,
	},
	{
		Name: "Left IMT", Code: "L_IMT", Unit: "mm",
		Patterns: pats(
			`(?i)(?:left|lt\.?)\s+(?:CCA\s+)?(?:intima[- ]media\s+thickness|IMT)` + sep + num + `\s*(?:mm)?`,
		),
		Min: 0.2, Max: 3.0,
	},
}

var defSet = testtypes.NewDefSet(measurementDefs)

type segment struct {
	re   *regexp.Regexp
	code string
}

// Segment order matters: the more specific labels come first so "Dist CCA"
// is not consumed by the bare "CCA" pattern.
var segments = []segment{
	{regexp.MustCompile(`(?i)(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)\s+(?:cm/s\s+)?Dist\s+CCA\s+(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)`), "Dist_CCA"},
	{regexp.MustCompile(`(?i)(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)\s+(?:cm/s\s+)?Prox\s+ICA\s+(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)`), "Prox_ICA"},
	{regexp.MustCompile(`(?i)(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)\s+(?:cm/s\s+)?Mid\s+ICA\s+(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)`), "Mid_ICA"},
	{regexp.MustCompile(`(?i)(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)\s+(?:cm/s\s+)?Dist\s+ICA\s+(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)`), "Dist_ICA"},
	{regexp.MustCompile(`(?i)(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)\s+(?:cm/s\s+)?(?:Prox\s+)?CCA\s+(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)`), "CCA"},
	{regexp.MustCompile(`(?i)(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)\s+(?:cm/s\s+)?(?:Bulb|Bifurcation)\s+(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)`), "Bulb"},
	{regexp.MustCompile(`(?i)(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)\s+(?:cm/s\s+)?(?:Prox\s+)?ECA\s+(\d+\.?\d*)\s+(?:cm/s\s+)?(\d+\.?\d*)`), "ECA"},
}

func velocity(name, code string, value float64, raw string, page *int) report.RawMeasurement {
	return report.RawMeasurement{
		Name: name, Code: code, Value: value, Unit: "cm/s",
		RawText: raw, PageNumber: page,
	}
}

// extractTabularVelocities handles the side-by-side layout where right and
// left measurements flank each segment label:
//
//	Right               Carotid             Left
//	PSV      EDV                       PSV      EDV
//	63.8     4.0    Dist CCA          66.9     7.4
//	82.0    16.8    Prox ICA          96.6    14.9
//
// Group order per match: right PSV, right EDV, left PSV, left EDV.
func extractTabularVelocities(fullText string, pages []report.ExtractedPage) []report.RawMeasurement {
	var results []report.RawMeasurement

	for _, seg := range segments {
		m := seg.re.FindStringSubmatch(fullText)
		if m == nil {
			continue
		}
		raw := strings.TrimSpace(m[0])
		page := testtypes.FindPage(m[0], pages)

		vals := make([]float64, 4)
		ok := true
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}

		if vals[0] >= 5.0 && vals[0] <= 500.0 {
			results = append(results, velocity("Right "+seg.code+" PSV", "R_"+seg.code+"_PSV", vals[0], raw, page))
		}
		if vals[1] >= 0.0 && vals[1] <= 200.0 {
			results = append(results, velocity("Right "+seg.code+" EDV", "R_"+seg.code+"_EDV", vals[1], raw, page))
		}
		if vals[2] >= 5.0 && vals[2] <= 500.0 {
			results = append(results, velocity("Left "+seg.code+" PSV", "L_"+seg.code+"_PSV", vals[2], raw, page))
		}
		if vals[3] >= 0.0 && vals[3] <= 200.0 {
			results = append(results, velocity("Left "+seg.code+" EDV", "L_"+seg.code+"_EDV", vals[3], raw, page))
		}
	}

	return results
}

var tableRatioRe = regexp.MustCompile(`(?i)(\d+\.?\d*)\s+ICA[/\\]CCA\s+velocity\s+ratio\s+(\d+\.?\d*)`)

// extractTableRatio pulls the right and left ICA/CCA ratio from the same
// side-by-side layout.
func extractTableRatio(fullText string, pages []report.ExtractedPage) []report.RawMeasurement {
	m := tableRatioRe.FindStringSubmatch(fullText)
	if m == nil {
		return nil
	}
	raw := strings.TrimSpace(m[0])
	page := testtypes.FindPage(m[0], pages)

	var results []report.RawMeasurement
	if r, err := strconv.ParseFloat(m[1], 64); err == nil && r >= 0.3 && r <= 10.0 {
		results = append(results, report.RawMeasurement{
			Name: "Right ICA/CCA Velocity Ratio", Code: "R_ICA_CCA_Ratio",
			Value: r, RawText: raw, PageNumber: page,
		})
	}
	if l, err := strconv.ParseFloat(m[2], 64); err == nil && l >= 0.3 && l <= 10.0 {
		results = append(results, report.RawMeasurement{
			Name: "Left ICA/CCA Velocity Ratio", Code: "L_ICA_CCA_Ratio",
			Value: l, RawText: raw, PageNumber: page,
		})
	}
	return results
}

func extractMeasurements(res *report.ExtractionResult) []report.RawMeasurement {
	var results []report.RawMeasurement
	seen := make(map[string]bool)

	for _, m := range extractTabularVelocities(res.FullText, res.Pages) {
		if !seen[m.Code] {
			results = append(results, m)
			seen[m.Code] = true
		}
	}
	for _, m := range extractTableRatio(res.FullText, res.Pages) {
		if !seen[m.Code] {
			results = append(results, m)
			seen[m.Code] = true
		}
	}

	results = append(results, defSet.ExtractFromText(res.FullText, res.Pages, seen)...)
	return results
}
