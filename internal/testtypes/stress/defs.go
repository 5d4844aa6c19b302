package stress

import (
	"regexp"

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
	{
		Name: "Metabolic Equivalents", Code: "METs", Unit: "METs",
		TableAliases: []string{"mets", "metabolic equivalents", "exercise capacity"},
		Patterns: pats(
			`(?i)METs?`+sep+num,
			`(?i)metabolic\s+equivalents?`+sep+num,
			`(?i)exercise\s+capacity`+sep+num+`\s*METs?`,
			`(?i)functional\s+capacity`+sep+num+`\s*METs?`,
			`(?i)`+num+`\s*METs?\s+(?:achieved|attained|reached)`,
		),
		Min: 1, Max: 25,
	},
	{
		Name: "Resting Heart Rate", Code: "Rest_HR", Unit: "bpm",
		TableAliases: []string{"resting heart rate", "rest hr", "baseline heart rate"},
		Patterns: pats(
			`(?i)resting\s+(?:heart\s+rate|HR|pulse)`+sep+num+`\s*(?:bpm)?`,
			`(?i)(?:baseline|pre[- ]?exercise)\s+(?:heart\s+rate|HR)`+sep+num+`\s*(?:bpm)?`,
			`(?i)rest(?:ing)?\s+HR`+sep+num+`\s*(?:bpm)?`,
		),
		Min: 30, Max: 150,
	},
	{
		Name: "Peak Heart Rate", Code: "Peak_HR", Unit: "bpm",
		TableAliases: []string{"peak heart rate", "peak hr", "max heart rate"},
		Patterns: pats(
			`(?i)peak\s+(?:heart\s+rate|HR|pulse)`+sep+num+`\s*(?:bpm)?`,
			`(?i)max(?:imum|imal)?\s+(?:heart\s+rate|HR)`+sep+num+`\s*(?:bpm)?`,
			`(?i)(?:heart\s+rate|HR)\s+(?:at\s+)?peak`+sep+num+`\s*(?:bpm)?`,
		),
		Min: 50, Max: 250,
	},
	{
		Name: "% Max Predicted Heart Rate", Code: "MPHR%", Unit: "%",
		TableAliases: []string{"% mphr", "% max predicted", "percent predicted"},
		Patterns: pats(
			`(?i)`+num+`\s*%\s*(?:of\s+)?(?:MPHR|max(?:imum|imal)?\s+predicted)`,
			`(?i)%\s*(?:MPHR|max\s+predicted)`+sep+num,
			`(?i)(?:MPHR|max(?:imum)?\s+predicted\s+(?:heart\s+rate|HR))`+sep+num+`\s*%`,
			`(?i)(?:achieved|attained|reached)\s+`+num+`\s*%\s*(?:of\s+)?(?:max|MPHR|predicted)`,
		),
		Min: 30, Max: 120,
	},
	{
		Name: "Resting Systolic BP", Code: "Rest_SBP", Unit: "mmHg",
		TableAliases: []string{"resting blood pressure", "rest sbp"},
		Patterns: pats(
			`(?i)resting\s+(?:blood\s+pressure|BP|SBP)`+sep+num+`\s*/`,
			`(?i)(?:baseline|pre[- ]?exercise)\s+(?:blood\s+pressure|BP)`+sep+num+`\s*/`,
			`(?i)rest(?:ing)?\s+SBP`+sep+num,
		),
		Min: 60, Max: 250,
	},
	{
		Name: "Peak Systolic BP", Code: "Peak_SBP", Unit: "mmHg",
		TableAliases: []string{"peak blood pressure", "peak sbp"},
		Patterns: pats(
			`(?i)peak\s+(?:blood\s+pressure|BP|SBP)`+sep+num+`\s*/`,
			`(?i)max(?:imum|imal)?\s+(?:blood\s+pressure|BP|SBP)`+sep+num,
			`(?i)(?:blood\s+pressure|BP)\s+(?:at\s+)?peak`+sep+num+`\s*/`,
			`(?i)peak\s+SBP`+sep+num,
		),
		Min: 80, Max: 300,
	},
	{
		Name: "Exercise Duration", Code: "Exercise_Duration", Unit: "min",
		TableAliases: []string{"exercise duration", "exercise time", "treadmill time"},
		Patterns: pats(
			`(?i)(?:exercise|total)\s+(?:duration|time)`+sep+num+`\s*(?:min(?:utes?)?)?`,
			`(?i)duration\s+of\s+exercise`+sep+num+`\s*(?:min(?:utes?)?)?`,
			`(?i)exercised?\s+(?:for\s+)?`+num+`\s*min(?:utes?)?`,
			`(?i)treadmill\s+time`+sep+num+`\s*(?:min(?:utes?)?)?`,
		),
		Min: 0.5, Max: 30,
	},
	{
		Name: "ST Depression", Code: "ST_Depression", Unit: "mm",
		TableAliases: []string{"st depression"},
		Patterns: pats(
			`(?i)ST\s+(?:segment\s+)?depression`+sep+num+`\s*(?:mm)?`,
			`(?i)`+num+`\s*mm\s+(?:of\s+)?ST\s+depression`,
			`(?i)ST\s+(?:changes?\s+(?:of\s+)?)?`+num+`\s*mm\s+depression`,
		),
		Min: 0, Max: 10,
	},
	{
		Name: "Duke Treadmill Score", Code: "Duke_Score", Unit: "",
		TableAliases: []string{"duke treadmill score", "duke score", "dts"},
		Patterns: pats(
			`(?i)duke\s+(?:treadmill\s+)?score`+sep+`(?P<value>-?\d+\.?\d*)`,
			`(?i)DTS`+sep+`(?P<value>-?\d+\.?\d*)`,
		),
		Min: -25, Max: 25,
	},
	{
		Name: "Rate-Pressure Product", Code: "RPP", Unit: "",
		TableAliases: []string{"rate-pressure product", "rpp", "double product"},
		Patterns: pats(
			`(?i)(?:rate[- ]?pressure\s+product|RPP|double\s+product)` + sep + num,
		),
		Min: 5000, Max: 50000,
	},
}

var defSet = testtypes.NewDefSet(measurementDefs)

// PET perfusion studies also report absolute flow numbers. Kept separate so
// treadmill reports never pick up a stray "CFR" from a prior cath note.
var petDefs = testtypes.NewDefSet([]testtypes.MeasurementDef{
	{
		Name: "Left Ventricular Ejection Fraction", Code: "LVEF", Unit: "%",
		TableAliases: []string{"lvef", "ef", "ejection fraction"},
		Patterns: pats(
			`(?i)(?:LVEF|EF)`+sep+num+`\s*%?`,
			`(?i)ejection\s+fraction`+sep+num+`\s*%?`,
		),
		Min: 5, Max: 95,
	},
	{
		Name: "Rest Myocardial Blood Flow", Code: "Rest_MBF", Unit: "mL/min/g",
		TableAliases: []string{"rest mbf", "resting myocardial blood flow"},
		Patterns: pats(
			`(?i)rest(?:ing)?\s+(?:global\s+)?(?:MBF|myocardial\s+blood\s+flow)` + sep + num,
		),
		Min: 0.2, Max: 3,
	},
	{
		Name: "Stress Myocardial Blood Flow", Code: "Stress_MBF", Unit: "mL/min/g",
		TableAliases: []string{"stress mbf", "peak mbf"},
		Patterns: pats(
			`(?i)(?:stress|peak|hyperemic)\s+(?:global\s+)?(?:MBF|myocardial\s+blood\s+flow)` + sep + num,
		),
		Min: 0.5, Max: 6,
	},
	{
		Name: "Coronary Flow Reserve", Code: "CFR", Unit: "",
		TableAliases: []string{"cfr", "coronary flow reserve", "mfr", "myocardial flow reserve"},
		Patterns: pats(
			`(?i)(?:CFR|MFR|coronary\s+flow\s+reserve|myocardial\s+flow\s+reserve)(?:\s*\(global\))?` + sep + num,
		),
		Min: 0.5, Max: 6,
	},
})
