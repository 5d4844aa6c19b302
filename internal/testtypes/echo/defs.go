package echo

import (
	"math"
	"regexp"
	"strconv"

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

var measurementDefs = []testtypes.MeasurementDef{
	// LV dimensions
	{
		Name: "LV Internal Diameter, Diastole", Code: "LVIDd", Unit: "cm",
		TableAliases: []string{"lvidd", "lv (d)", "lv diastolic diameter"},
		Patterns: pats(
			`(?i)LVIDd`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)LV\s*\(D\)`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)LV\s+(?:internal\s+)?(?:diameter|dimension)[\s,]*(?:diastol|end[- ]?diastol)`+sep+num+`\s*(?:cm|mm)?`,
		),
		Min: 1, Max: 10,
	},
	{
		Name: "LV Internal Diameter, Systole", Code: "LVIDs", Unit: "cm",
		TableAliases: []string{"lvids", "lv (s)", "lv systolic diameter"},
		Patterns: pats(
			`(?i)LVIDs`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)LV\s*\(S\)`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)LV\s+(?:internal\s+)?(?:diameter|dimension)[\s,]*(?:systol|end[- ]?systol)`+sep+num+`\s*(?:cm|mm)?`,
		),
		Min: 1, Max: 8,
	},
	{
		Name: "Interventricular Septum, Diastole", Code: "IVSd", Unit: "cm",
		TableAliases: []string{"ivsd", "ivs (d)", "septal thickness"},
		Patterns: pats(
			`(?i)IVSd`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)IVS\s*\(D\)`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)(?:interventricular|IV)\s+sept(?:um|al)[\s,]*(?:diastol|d\.?)`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)septal\s+(?:wall\s+)?thickness`+sep+num+`\s*(?:cm|mm)?`,
		),
		Min: 0.3, Max: 3,
	},
	{
		Name: "LV Posterior Wall, Diastole", Code: "LVPWd", Unit: "cm",
		TableAliases: []string{"lvpwd", "lvpw (d)", "posterior wall thickness"},
		Patterns: pats(
			`(?i)LVPWd`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)LVPW\s*\(D\)`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)(?:LV\s+)?(?:posterior|post)\s+wall[\s,]*(?:diastol|d\.?)`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)PW\s*d`+sep+num+`\s*(?:cm|mm)?`,
		),
		Min: 0.3, Max: 3,
	},

	// LV function
	{
		Name: "Left Ventricular Ejection Fraction", Code: "LVEF", Unit: "%",
		TableAliases: []string{"lvef", "ef", "ejection fraction"},
		Patterns: pats(
			`(?i)(?:LVEF|EF)`+sep+num+`\s*%?`,
			`(?i)ejection\s+fraction`+sep+num+`\s*%?`,
			`(?i)(?:LVEF|EF|ejection\s+fraction)\s+(?:is\s+|of\s+|estimated\s+(?:at\s+)?)?`+num+`\s*%?`,
		),
		Min: 5, Max: 95,
	},
	{
		Name: "Fractional Shortening", Code: "FS", Unit: "%",
		TableAliases: []string{"fractional shortening", "fs"},
		Patterns: pats(
			`(?i)(?:fractional\s+shortening|FS)` + sep + num + `\s*%?`,
		),
		Min: 5, Max: 60,
	},

	// Left atrium
	{
		Name: "Left Atrial Diameter", Code: "LA", Unit: "cm",
		TableAliases: []string{"la diameter", "la dimension", "left atrium"},
		Patterns: pats(
			`(?i)(?:LA|left\s+atri(?:um|al))\s+(?:diam(?:eter)?|dimension|size)`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)LA`+sep+num+`\s*cm`,
		),
		Min: 1, Max: 8,
	},
	{
		Name: "LA Volume Index", Code: "LAVI", Unit: "mL/m2",
		TableAliases: []string{"la volume index", "lavi"},
		Patterns: pats(
			`(?i)(?:LA\s+volume\s+index|LAVI)`+sep+num+`\s*(?:ml/m2|mL/m2|ml/m²)?`,
			`(?i)left\s+atrial\s+volume\s+index`+sep+num,
		),
		Min: 10, Max: 80,
	},

	// Right side
	{
		Name: "RV Basal Diameter", Code: "RVD", Unit: "cm",
		TableAliases: []string{"rv diameter", "rv basal diameter"},
		Patterns: pats(
			`(?i)(?:RV|right\s+ventricl(?:e|ar))\s+(?:basal\s+)?(?:diameter|dimension)` + sep + num + `\s*(?:cm|mm)?`,
		),
		Min: 1, Max: 6,
	},
	{
		Name: "RA Area", Code: "RAA", Unit: "cm2",
		TableAliases: []string{"ra area", "right atrial area"},
		Patterns: pats(
			`(?i)(?:RA|right\s+atri(?:um|al))\s+area` + sep + num + `\s*(?:cm2|cm²)?`,
		),
		Min: 5, Max: 40,
	},

	// Aortic root
	{
		Name: "Aortic Root Diameter", Code: "AoRoot", Unit: "cm",
		TableAliases: []string{"aortic root", "ao root", "sinus of valsalva"},
		Patterns: pats(
			`(?i)aort(?:a|ic)\s+(?:root|sinus)`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)sinus\s+(?:of\s+)?valsalva`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)Ao\s+root`+sep+num+`\s*(?:cm|mm)?`,
		),
		Min: 1, Max: 6,
	},

	// Valvular
	{
		Name: "Aortic Valve Area", Code: "AVA", Unit: "cm2",
		TableAliases: []string{"aortic valve area", "ava"},
		Patterns: pats(
			`(?i)(?:aortic\s+valve\s+area|AVA)` + sep + num + `\s*(?:cm2|cm²)?`,
		),
		Min: 0.3, Max: 5,
	},
	{
		Name: "Mitral Valve E/A Ratio", Code: "E/A", Unit: "",
		TableAliases: []string{"e/a ratio", "e/a"},
		Patterns: pats(
			`(?i)E/A\s*(?:ratio)?`+sep+num,
			`(?i)mitral\s+(?:inflow\s+)?E/A`+sep+num,
		),
		Min: 0.3, Max: 4,
	},
	{
		Name: "E/e' Ratio", Code: "E/e'", Unit: "",
		TableAliases: []string{"e/e' ratio", "e/e'"},
		Patterns: pats(
			`(?i)E/e['’]\s*(?:ratio)?`+sep+num,
			`(?i)E/e['’]\s*(?:\(average\))?\s*`+sep+num,
		),
		Min: 2, Max: 30,
	},
	{
		Name: "Tricuspid Regurgitation Velocity", Code: "TRV", Unit: "m/s",
		TableAliases: []string{"tr velocity", "tr vmax"},
		Patterns: pats(
			`(?i)(?:TR|tricuspid\s+regurgit(?:ation|ant))\s+(?:peak\s+)?velocity`+sep+num+`\s*(?:m/s)?`,
			`(?i)TR\s+(?:Vmax|jet\s+velocity)`+sep+num+`\s*(?:m/s)?`,
		),
		Min: 1, Max: 6,
	},

	// Hemodynamics
	{
		Name: "RV Systolic Pressure", Code: "RVSP", Unit: "mmHg",
		TableAliases: []string{"rvsp", "pasp", "pa systolic pressure"},
		Patterns: pats(
			`(?i)RVSP`+sep+num+`\s*(?:mmHg)?`,
			`(?i)(?:RV|right\s+ventricular)\s+systolic\s+pressure`+sep+num+`\s*(?:mmHg)?`,
			`(?i)(?:PA|pulmonary\s+artery)\s+systolic\s+pressure`+sep+num+`\s*(?:mmHg)?`,
			`(?i)PASP`+sep+num+`\s*(?:mmHg)?`,
		),
		Min: 10, Max: 120,
	},

	// Diastolic function
	{
		Name: "Mitral E Velocity", Code: "MV_E", Unit: "cm/s",
		TableAliases: []string{"e velocity", "mitral e"},
		Patterns: pats(
			`(?i)(?:mitral\s+)?E\s+(?:wave\s+)?velocity`+sep+num+`\s*(?:cm/s|m/s)?`,
			`(?i)E\s+vel(?:ocity)?`+sep+num+`\s*(?:cm/s|m/s)?`,
		),
		Min: 20, Max: 200,
	},
	{
		Name: "Mitral A Velocity", Code: "MV_A", Unit: "cm/s",
		TableAliases: []string{"a velocity", "mitral a"},
		Patterns: pats(
			`(?i)(?:mitral\s+)?A\s+(?:wave\s+)?velocity`+sep+num+`\s*(?:cm/s|m/s)?`,
			`(?i)A\s+vel(?:ocity)?`+sep+num+`\s*(?:cm/s|m/s)?`,
		),
		Min: 20, Max: 200,
	},
	{
		Name: "Deceleration Time", Code: "DT", Unit: "ms",
		TableAliases: []string{"deceleration time", "dt"},
		Patterns: pats(
			`(?i)(?:deceleration|decel)\s+time`+sep+num+`\s*(?:ms|msec)?`,
			`(?i)DT`+sep+num+`\s*(?:ms|msec)?`,
		),
		Min: 50, Max: 500,
	},
	{
		Name: "IVRT", Code: "IVRT", Unit: "ms",
		TableAliases: []string{"ivrt", "isovolumic relaxation time"},
		Patterns: pats(
			`(?i)IVRT`+sep+num+`\s*(?:ms|msec)?`,
			`(?i)isovolumic\s+relaxation\s+time`+sep+num+`\s*(?:ms|msec)?`,
		),
		Min: 30, Max: 200,
	},
	{
		Name: "e' Septal", Code: "e'_septal", Unit: "cm/s",
		TableAliases: []string{"e' septal", "septal e'", "medial e'"},
		Patterns: pats(
			`(?i)e['’]\s*(?:\()?septal(?:\))?`+sep+num+`\s*(?:cm/s)?`,
			`(?i)septal\s+e['’]`+sep+num+`\s*(?:cm/s)?`,
			`(?i)medial\s+e['’]`+sep+num+`\s*(?:cm/s)?`,
		),
		Min: 2, Max: 20,
	},
	{
		Name: "e' Lateral", Code: "e'_lateral", Unit: "cm/s",
		TableAliases: []string{"e' lateral", "lateral e'"},
		Patterns: pats(
			`(?i)e['’]\s*(?:\()?lateral(?:\))?`+sep+num+`\s*(?:cm/s)?`,
			`(?i)lateral\s+e['’]`+sep+num+`\s*(?:cm/s)?`,
		),
		Min: 2, Max: 25,
	},
	{
		Name: "TAPSE", Code: "TAPSE", Unit: "cm",
		TableAliases: []string{"tapse"},
		Patterns: pats(
			`(?i)TAPSE`+sep+num+`\s*(?:cm|mm)?`,
			`(?i)tricuspid\s+annular\s+plane\s+systolic\s+excursion`+sep+num,
		),
		Min: 0.5, Max: 4,
	},
}

var defSet = testtypes.NewDefSet(measurementDefs)

// efRangeRe matches EF reported as a range, e.g. "LVEF: 55-60%".
var efRangeRe = regexp.MustCompile(
	`(?i)(?:LVEF|EF|ejection\s+fraction)[\s:=]+\s*(\d+\.?\d*)\s*(?:-|–|to)+\s*(\d+\.?\d*)\s*%?`)

// extractMeasurements runs the EF-range special case first (midpoint of the
// reported range), then the standard table-first extraction.
func extractMeasurements(res *report.ExtractionResult) []report.RawMeasurement {
	var results []report.RawMeasurement
	seen := make(map[string]bool)

	if m := efRangeRe.FindStringSubmatch(res.FullText); m != nil {
		low, err1 := strconv.ParseFloat(m[1], 64)
		high, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil && low >= 5 && low <= 95 && high >= 5 && high <= 95 && low < high {
			mid := math.Round((low+high)/2.0*10) / 10
			results = append(results, report.RawMeasurement{
				Name:       "Left Ventricular Ejection Fraction",
				Code:       "LVEF",
				Value:      mid,
				Unit:       "%",
				RawText:    m[0],
				PageNumber: testtypes.FindPage(m[0], res.Pages),
			})
			seen["LVEF"] = true
		}
	}

	tableResults := defSet.ExtractFromTables(res.Tables)
	for _, m := range tableResults {
		if seen[m.Code] {
			continue
		}
		results = append(results, m)
		seen[m.Code] = true
	}
	return append(results, defSet.ExtractFromText(res.FullText, res.Pages, seen)...)
}
