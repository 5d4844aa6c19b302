package coronary

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

// Labeled hemodynamic pressures and IVUS values. Systolic/diastolic pairs
// like "RV 30/8" are handled first by extractPressurePairs.
var measurementDefs = []testtypes.MeasurementDef{
	{
		Name: "RA Mean Pressure", Code: "RA_mean", Unit: "mmHg",
		Patterns: pats(
			`(?i)RA\s+(?:mean|m)`+sep+num+`\s*(?:mmHg)?`,
			`(?i)(?:right\s+atri(?:um|al))\s+(?:mean\s+)?(?:pressure)?`+sep+num+`\s*(?:mmHg)?`,
			`(?i)RA`+sep+num+`\s*(?:mmHg)`,
		),
		Min: 0, Max: 40,
	},
	{
		Name: "RV Systolic Pressure", Code: "RV_systolic", Unit: "mmHg",
		Patterns: pats(
			`(?i)RV`+sep+num+`\s*/`,
			`(?i)(?:right\s+ventricl(?:e|ar))\s+(?:systolic\s+)?(?:pressure)?`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 10, Max: 120,
	},
	{
		Name: "RV Diastolic Pressure", Code: "RV_diastolic", Unit: "mmHg",
		Patterns: pats(
			`(?i)RV\s+\d+\s*/\s*`+num,
			`(?i)(?:right\s+ventricl(?:e|ar))\s+(?:end[- ]?)?diastolic\s+(?:pressure)?`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 0, Max: 40,
	},
	{
		Name: "PA Systolic Pressure", Code: "PA_systolic", Unit: "mmHg",
		Patterns: pats(
			`(?i)PA`+sep+num+`\s*/`,
			`(?i)(?:pulmonary\s+artery)\s+(?:systolic\s+)?(?:pressure)?`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 10, Max: 120,
	},
	{
		Name: "PA Diastolic Pressure", Code: "PA_diastolic", Unit: "mmHg",
		Patterns: pats(
			`(?i)PA\s+\d+\s*/\s*`+num,
			`(?i)(?:pulmonary\s+artery)\s+diastolic\s+(?:pressure)?`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 0, Max: 50,
	},
	{
		Name: "PA Mean Pressure", Code: "PA_mean", Unit: "mmHg",
		Patterns: pats(
			`(?i)PA\s+(?:mean|m)`+sep+num+`\s*(?:mmHg)?`,
			`(?i)(?:pulmonary\s+artery)\s+mean\s+(?:pressure)?`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 5, Max: 80,
	},
	{
		Name: "Pulmonary Capillary Wedge Pressure", Code: "PCWP", Unit: "mmHg",
		Patterns: pats(
			`(?i)(?:PCWP|PCP|PCW|wedge)`+sep+num+`\s*(?:mmHg)?`,
			`(?i)(?:pulmonary\s+capillary\s+wedge\s+pressure)`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 0, Max: 50,
	},
	{
		Name: "Aortic Systolic Pressure", Code: "AO_systolic", Unit: "mmHg",
		Patterns: pats(
			`(?i)AO`+sep+num+`\s*/`,
			`(?i)(?:aort(?:a|ic))\s+(?:systolic\s+)?(?:pressure)?`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 50, Max: 250,
	},
	{
		Name: "Aortic Diastolic Pressure", Code: "AO_diastolic", Unit: "mmHg",
		Patterns: pats(
			`(?i)AO\s+\d+\s*/\s*`+num,
			`(?i)(?:aort(?:a|ic))\s+diastolic\s+(?:pressure)?`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 20, Max: 150,
	},
	{
		Name: "LV Systolic Pressure", Code: "LV_systolic", Unit: "mmHg",
		Patterns: pats(
			`(?i)LV`+sep+num+`\s*/`,
			`(?i)(?:left\s+ventricl(?:e|ar))\s+(?:systolic\s+)?(?:pressure)?`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 50, Max: 250,
	},
	{
		Name: "LV Diastolic Pressure", Code: "LV_diastolic", Unit: "mmHg",
		Patterns: pats(
			`(?i)LV\s+\d+\s*/\s*`+num,
			`(?i)(?:left\s+ventricl(?:e|ar))\s+(?:end[- ]?)?diastolic\s+(?:pressure)?`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 0, Max: 50,
	},
	{
		Name: "LV End-Diastolic Pressure", Code: "LVEDP", Unit: "mmHg",
		Patterns: pats(
			`(?i)LVEDP`+sep+num+`\s*(?:mmHg)?`,
			`(?i)(?:LV|left\s+ventricl(?:e|ar))\s+end[- ]?diastolic\s+pressure`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 0, Max: 50,
	},
	{
		Name: "Minimum Lumen Area", Code: "MLA", Unit: "mm²",
		Patterns: pats(
			`(?i)MLA`+sep+num+`\s*(?:mm2|mm²)?`,
			`(?i)(?:minimum|min)\s+lumen\s+area`+sep+num+`\s*(?:mm2|mm²)?`,
		),
		Min: 0.5, Max: 25,
	},
}

var defSet = testtypes.NewDefSet(measurementDefs)

const vesselAlt = `LAD|LCx|RCA|left\s+main|LM|` +
	`(?:left\s+anterior\s+descending)|` +
	`(?:left\s+circumflex)|` +
	`(?:right\s+coronary(?:\s+artery)?)|` +
	`(?:diagonal|D1|D2)|` +
	`(?:obtuse\s+marginal|OM1|OM2|OM)|` +
	`(?:ramus)|` +
	`(?:PDA|posterior\s+descending)|` +
	`(?:PLB|posterolateral)|` +
	`(?:SVG(?:\s+to\s+\w+)?)|` +
	`(?:LIMA(?:\s+to\s+\w+)?)|` +
	`(?:RIMA(?:\s+to\s+\w+)?)|` +
	`(?:graft(?:\s+to\s+\w+)?)`

// "LAD 50%", "RCA 70-80%", "LCx: 40%", "Left main 30%"
var stenosisRe = regexp.MustCompile(
	`(?i)(?P<vessel>(?:` + vesselAlt + `))\s*[:\-]?\s*(?P<pct1>\d+)\s*(?:[-–to]+\s*(?P<pct2>\d+)\s*)?%`)

// "LAD total occlusion", "RCA CTO", "SVG to LAD occluded"
var totalOcclusionRe = regexp.MustCompile(
	`(?i)(?P<vessel>(?:LAD|LCx|RCA|left\s+main|LM|` +
		`(?:left\s+anterior\s+descending)|` +
		`(?:left\s+circumflex)|` +
		`(?:right\s+coronary(?:\s+artery)?)|` +
		`(?:SVG|LIMA|RIMA|graft)(?:\s+to\s+\w+)?))` +
		`\s*(?:[:\-]?\s*)` +
		`(?:total(?:ly)?\s+occlu(?:ded|sion)|100\s*%\s*(?:occlu(?:ded|sion))?|` +
		`CTO|completely?\s+(?:blocked|occluded))`)

var calciumArcRe = regexp.MustCompile(
	`(?i)(?:calcium\s+arc|arc\s+(?:of\s+)?calcium)\s*[:\-]?\s*(?P<value>\d+)\s*(?:degrees?|°)?`)

var ivusObstructionRe = regexp.MustCompile(
	`(?i)(?:obstruction|area\s+stenosis)\s*[:\-=]?\s*(?P<value>\d+\.?\d*)\s*%`)

// "RV 30/8", "PA 25/12", "AO 120/80", "LV 130/12"
var sdPairRe = regexp.MustCompile(
	`(?i)(?P<chamber>RA|RV|PA|AO|LV)\s*[:\s=]+\s*(?P<systolic>\d+)\s*/\s*(?P<diastolic>\d+)`)

var vesselNames = map[string]string{
	"left anterior descending": "LAD",
	"left circumflex":          "LCx",
	"right coronary artery":    "RCA",
	"right coronary":           "RCA",
	"left main":                "Left Main",
	"lm":                       "Left Main",
	"diagonal":                 "Diagonal",
	"d1":                       "D1",
	"d2":                       "D2",
	"obtuse marginal":          "OM",
	"om1":                      "OM1",
	"om2":                      "OM2",
	"ramus":                    "Ramus",
	"posterior descending":     "PDA",
	"pda":                      "PDA",
	"posterolateral":           "PLB",
	"plb":                      "PLB",
	"svg":                      "SVG",
	"lima":                     "LIMA",
	"rima":                     "RIMA",
	"graft":                    "Graft",
}

func normalizeVessel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(strings.Join(strings.Fields(trimmed), " "))
	if name, ok := vesselNames[lower]; ok {
		return name
	}
	return strings.ToUpper(trimmed)
}

func findDef(code string) *testtypes.MeasurementDef {
	for i := range measurementDefs {
		if measurementDefs[i].Code == code {
			return &measurementDefs[i]
		}
	}
	return nil
}

// extractPressurePairs handles the systolic/diastolic table notation. Bounds
// come from the matching labeled def when one exists.
func extractPressurePairs(fullText string, pages []report.ExtractedPage, seen map[string]bool) []report.RawMeasurement {
	var results []report.RawMeasurement

	for _, m := range sdPairRe.FindAllStringSubmatch(fullText, -1) {
		chamber := strings.ToUpper(m[1])
		systolic, err1 := strconv.ParseFloat(m[2], 64)
		diastolic, err2 := strconv.ParseFloat(m[3], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		raw := strings.TrimSpace(m[0])
		page := testtypes.FindPage(m[0], pages)

		sysCode := chamber + "_systolic"
		if !seen[sysCode] {
			if def := findDef(sysCode); def == nil || def.InBounds(systolic) {
				results = append(results, report.RawMeasurement{
					Name: chamber + " Systolic Pressure", Code: sysCode,
					Value: systolic, Unit: "mmHg", RawText: raw, PageNumber: page,
				})
				seen[sysCode] = true
			}
		}

		diaCode := chamber + "_diastolic"
		if !seen[diaCode] {
			if def := findDef(diaCode); def == nil || def.InBounds(diastolic) {
				results = append(results, report.RawMeasurement{
					Name: chamber + " Diastolic Pressure", Code: diaCode,
					Value: diastolic, Unit: "mmHg", RawText: raw, PageNumber: page,
				})
				seen[diaCode] = true
			}
		}
	}

	return results
}

// extractStenoses collects per-vessel stenosis percentages. Ranges like
// "70-80%" are reduced to their midpoint; occlusion phrasings count as 100%.
func extractStenoses(fullText string, pages []report.ExtractedPage, seen map[string]bool) []report.RawMeasurement {
	var results []report.RawMeasurement

	for _, m := range stenosisRe.FindAllStringSubmatch(fullText, -1) {
		vessel := normalizeVessel(m[stenosisRe.SubexpIndex("vessel")])
		pct1, err := strconv.ParseFloat(m[stenosisRe.SubexpIndex("pct1")], 64)
		if err != nil {
			continue
		}
		value := pct1
		if pct2Str := m[stenosisRe.SubexpIndex("pct2")]; pct2Str != "" {
			if pct2, err := strconv.ParseFloat(pct2Str, 64); err == nil {
				value = (pct1 + pct2) / 2.0
			}
		}
		if value < 0 || value > 100 {
			continue
		}

		code := "stenosis_" + vessel
		if seen[code] {
			continue
		}
		results = append(results, report.RawMeasurement{
			Name: vessel + " Stenosis", Code: code, Value: value, Unit: "%",
			RawText: strings.TrimSpace(m[0]), PageNumber: testtypes.FindPage(m[0], pages),
		})
		seen[code] = true
	}

	for _, m := range totalOcclusionRe.FindAllStringSubmatch(fullText, -1) {
		vessel := normalizeVessel(m[totalOcclusionRe.SubexpIndex("vessel")])
		code := "stenosis_" + vessel
		if seen[code] {
			continue
		}
		results = append(results, report.RawMeasurement{
			Name: vessel + " Stenosis", Code: code, Value: 100.0, Unit: "%",
			RawText: strings.TrimSpace(m[0]), PageNumber: testtypes.FindPage(m[0], pages),
		})
		seen[code] = true
	}

	return results
}

func extractMeasurements(res *report.ExtractionResult) []report.RawMeasurement {
	var results []report.RawMeasurement
	seen := make(map[string]bool)

	results = append(results, extractPressurePairs(res.FullText, res.Pages, seen)...)
	results = append(results, defSet.ExtractFromText(res.FullText, res.Pages, seen)...)
	results = append(results, extractStenoses(res.FullText, res.Pages, seen)...)

	if m := calciumArcRe.FindStringSubmatch(res.FullText); m != nil && !seen["calcium_arc"] {
		if v, err := strconv.ParseFloat(m[calciumArcRe.SubexpIndex("value")], 64); err == nil && v >= 0 && v <= 360 {
			results = append(results, report.RawMeasurement{
				Name: "Calcium Arc", Code: "calcium_arc", Value: v, Unit: "°",
				RawText: strings.TrimSpace(m[0]), PageNumber: testtypes.FindPage(m[0], res.Pages),
			})
			seen["calcium_arc"] = true
		}
	}

	if m := ivusObstructionRe.FindStringSubmatch(res.FullText); m != nil && !seen["ivus_obstruction"] {
		if v, err := strconv.ParseFloat(m[ivusObstructionRe.SubexpIndex("value")], 64); err == nil && v >= 0 && v <= 100 {
			results = append(results, report.RawMeasurement{
				Name: "IVUS Obstruction", Code: "ivus_obstruction", Value: v, Unit: "%",
				RawText: strings.TrimSpace(m[0]), PageNumber: testtypes.FindPage(m[0], res.Pages),
			})
			seen["ivus_obstruction"] = true
		}
	}

	return results
}
