package labs

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

// measurementDefs covers the common outpatient panels: CMP, CBC, lipids,
// thyroid, iron studies, HbA1c, and urinalysis numerics.
var measurementDefs = []testtypes.MeasurementDef{
	// Comprehensive Metabolic Panel
	{
		Name: "Glucose", Code: "GLU", Unit: "mg/dL",
		TableAliases: []string{"glucose", "glu", "fasting glucose", "blood glucose"},
		Patterns: pats(
			`(?i)(?:fasting\s+)?glucose`+sep+num+`\s*(?:mg/dL|mg/dl)?`,
			`(?i)\bGLU\b`+sep+num+`\s*(?:mg/dL|mg/dl)?`,
		),
		Min: 10, Max: 900,
	},
	{
		Name: "BUN", Code: "BUN", Unit: "mg/dL",
		TableAliases: []string{"bun", "blood urea nitrogen", "urea nitrogen"},
		Patterns: pats(
			`(?i)\bBUN\b`+sep+num+`\s*(?:mg/dL|mg/dl)?`,
			`(?i)blood\s+urea\s+nitrogen`+sep+num+`\s*(?:mg/dL)?`,
			`(?i)urea\s+nitrogen`+sep+num+`\s*(?:mg/dL)?`,
		),
		Min: 1, Max: 150,
	},
	{
		Name: "Creatinine", Code: "CREAT", Unit: "mg/dL",
		TableAliases: []string{"creatinine", "creat", "serum creatinine"},
		Patterns: pats(
			`(?i)creatinine`+sep+num+`\s*(?:mg/dL|mg/dl)?`,
			`(?i)\bCREAT\b`+sep+num+`\s*(?:mg/dL)?`,
		),
		Min: 0.1, Max: 20,
	},
	{
		Name: "eGFR", Code: "EGFR", Unit: "mL/min/1.73m2",
		TableAliases: []string{"egfr", "gfr", "estimated gfr", "est. gfr", "estimated glomerular filtration rate"},
		Patterns: pats(
			`(?i)e?GFR`+sep+num+`\s*(?:mL/min)?`,
			`(?i)glomerular\s+filtration\s+rate`+sep+num,
		),
		Min: 1, Max: 200,
	},
	{
		Name: "Sodium", Code: "NA", Unit: "mEq/L",
		TableAliases: []string{"sodium", "na"},
		Patterns: pats(
			`(?i)sodium`+sep+num+`\s*(?:mEq/L|mmol/L)?`,
			`(?i)\bNa\b`+sep+num+`\s*(?:mEq/L|mmol/L)?`,
		),
		Min: 100, Max: 180,
	},
	{
		Name: "Potassium", Code: "K", Unit: "mEq/L",
		TableAliases: []string{"potassium", "k"},
		Patterns: pats(
			`(?i)potassium`+sep+num+`\s*(?:mEq/L|mmol/L)?`,
			`(?i)\bK\b`+sep+num+`\s*(?:mEq/L|mmol/L)?`,
		),
		Min: 1.5, Max: 9,
	},
	{
		Name: "Chloride", Code: "CL", Unit: "mEq/L",
		TableAliases: []string{"chloride", "cl"},
		Patterns: pats(
			`(?i)chloride`+sep+num+`\s*(?:mEq/L|mmol/L)?`,
			`(?i)\bCl\b`+sep+num+`\s*(?:mEq/L|mmol/L)?`,
		),
		Min: 70, Max: 140,
	},
	{
		Name: "CO2/Bicarbonate", Code: "CO2", Unit: "mEq/L",
		TableAliases: []string{"co2", "carbon dioxide", "bicarbonate", "bicarb", "hco3"},
		Patterns: pats(
			`(?i)(?:CO2|carbon\s+dioxide|bicarbonate|bicarb|HCO3)` + sep + num + `\s*(?:mEq/L|mmol/L)?`,
		),
		Min: 5, Max: 50,
	},
	{
		Name: "Calcium", Code: "CA", Unit: "mg/dL",
		TableAliases: []string{"calcium", "ca", "total calcium"},
		Patterns: pats(
			`(?i)(?:total\s+)?calcium`+sep+num+`\s*(?:mg/dL)?`,
			`(?i)\bCa\b`+sep+num+`\s*(?:mg/dL)?`,
		),
		Min: 4, Max: 18,
	},
	{
		Name: "Total Protein", Code: "TP", Unit: "g/dL",
		TableAliases: []string{"total protein", "protein, total", "tp"},
		Patterns: pats(
			`(?i)total\s+protein`+sep+num+`\s*(?:g/dL|g/dl)?`,
			`(?i)\bTP\b`+sep+num+`\s*(?:g/dL)?`,
		),
		Min: 2, Max: 15,
	},
	{
		Name: "Albumin", Code: "ALB", Unit: "g/dL",
		TableAliases: []string{"albumin", "alb"},
		Patterns: pats(
			`(?i)albumin`+sep+num+`\s*(?:g/dL|g/dl)?`,
			`(?i)\bALB\b`+sep+num+`\s*(?:g/dL)?`,
		),
		Min: 1, Max: 8,
	},
	{
		Name: "Total Bilirubin", Code: "TBILI", Unit: "mg/dL",
		TableAliases: []string{"total bilirubin", "bilirubin, total", "bilirubin total", "t. bilirubin", "tbili", "t. bili", "t bili"},
		Patterns: pats(
			`(?i)(?:total\s+)?bilirubin`+sep+num+`\s*(?:mg/dL)?`,
			`(?i)\bTBILI?\b`+sep+num+`\s*(?:mg/dL)?`,
			`(?i)T\.?\s*Bili`+sep+num+`\s*(?:mg/dL)?`,
		),
		Min: 0, Max: 30,
	},
	{
		Name: "AST", Code: "AST", Unit: "U/L",
		TableAliases: []string{"ast", "sgot", "aspartate aminotransferase", "ast (sgot)"},
		Patterns: pats(
			`(?i)\bAST\b`+sep+num+`\s*(?:U/L|u/l|IU/L)?`,
			`(?i)\bSGOT\b`+sep+num+`\s*(?:U/L)?`,
			`(?i)aspartate\s+aminotransferase`+sep+num,
		),
		Min: 1, Max: 5000,
	},
	{
		Name: "ALT", Code: "ALT", Unit: "U/L",
		TableAliases: []string{"alt", "sgpt", "alanine aminotransferase", "alt (sgpt)"},
		Patterns: pats(
			`(?i)\bALT\b`+sep+num+`\s*(?:U/L|u/l|IU/L)?`,
			`(?i)\bSGPT\b`+sep+num+`\s*(?:U/L)?`,
			`(?i)alanine\s+aminotransferase`+sep+num,
		),
		Min: 1, Max: 5000,
	},
	{
		Name: "Alkaline Phosphatase", Code: "ALP", Unit: "U/L",
		TableAliases: []string{"alkaline phosphatase", "alk phos", "alk. phos.", "alp", "alkp"},
		Patterns: pats(
			`(?i)(?:alkaline\s+phosphatase|alk\.?\s*phos\.?|ALP|ALKP)` + sep + num + `\s*(?:U/L|u/l|IU/L)?`,
		),
		Min: 1, Max: 2000,
	},

	// Complete Blood Count
	{
		Name: "WBC", Code: "WBC", Unit: "K/uL",
		TableAliases: []string{"wbc", "white blood cell count", "white blood cells", "leukocytes", "leucocytes", "tlc", "total leucocyte count", "total leukocyte count"},
		Patterns: pats(
			`(?i)\bWBC\b`+sep+num+`\s*(?:K/uL|k/ul|x10[³^]3/uL|10\*3/uL)?`,
			`(?i)white\s+blood\s+cell(?:s)?(?:\s+count)?`+sep+num,
		),
		Min: 0.1, Max: 100,
	},
	// Indian labs report WBC as an absolute count in /cumm (e.g. 13100).
	// Separate def so the bounds can differ; folded into WBC (K/uL) during
	// unit normalization.
	{
		Name: "WBC", Code: "WBC_CUMM", Unit: "/cumm",
		TableAliases: []string{"tlc", "total leucocyte count", "total leukocyte count"},
		Patterns: pats(
			`(?i)\bTLC\b(?:\s*\(.*?\))?`+sep+num+`\s*(?:/\s*cumm|/\s*cu\s*mm)`,
			`(?i)total\s+le[u]?cocyte\s+count`+sep+num+`\s*(?:/\s*cumm|/\s*cu\s*mm)?`,
		),
		Min: 100, Max: 100000,
	},
	{
		Name: "RBC", Code: "RBC", Unit: "M/uL",
		TableAliases: []string{"rbc", "red blood cell count", "red blood cells", "erythrocytes"},
		Patterns: pats(
			`(?i)\bRBC\b`+sep+num+`\s*(?:M/uL|m/ul|x10[⁶^]6/uL|10\*6/uL|mill/\s*cumm)?`,
			`(?i)red\s+blood\s+cell(?:s)?(?:\s+count)?`+sep+num,
		),
		Min: 1, Max: 10,
	},
	{
		Name: "Hemoglobin", Code: "HGB", Unit: "g/dL",
		TableAliases: []string{"hemoglobin", "haemoglobin", "hgb", "hb"},
		Patterns: pats(
			`(?i)ha?emoglobin`+sep+num+`\s*(?:g/dL|g/dl|gm/\s*dl)?`,
			`(?i)\bHGB\b`+sep+num+`\s*(?:g/dL|gm/\s*dl)?`,
			`(?i)\bHb\b`+sep+num+`\s*(?:g/dL|gm/\s*dl)?`,
		),
		Min: 3, Max: 25,
	},
	{
		Name: "Hematocrit", Code: "HCT", Unit: "%",
		TableAliases: []string{"hematocrit", "haematocrit", "hct", "pcv", "pcv/haematocrit", "pcv/hematocrit", "packed cell volume"},
		Patterns: pats(
			`(?i)ha?ematocrit`+sep+num+`\s*%?`,
			`(?i)\bHCT\b`+sep+num+`\s*%?`,
			`(?i)\bPCV\b(?:/ha?ematocrit)?`+sep+num+`\s*%?`,
			`(?i)packed\s+cell\s+volume`+sep+num+`\s*%?`,
		),
		Min: 10, Max: 75,
	},
	{
		Name: "MCV", Code: "MCV", Unit: "fL",
		TableAliases: []string{"mcv", "mean corpuscular volume"},
		Patterns: pats(
			`(?i)\bMCV\b`+sep+num+`\s*(?:fL|fl)?`,
			`(?i)mean\s+corpuscular\s+volume`+sep+num,
		),
		Min: 40, Max: 150,
	},
	{
		Name: "MCH", Code: "MCH", Unit: "pg",
		TableAliases: []string{"mch", "mean corpuscular hemoglobin"},
		Patterns: pats(
			`(?i)\bMCH\b`+sep+num+`\s*(?:pg)?`,
			`(?i)mean\s+corpuscular\s+hemoglobin`+sep+num,
		),
		Min: 10, Max: 55,
	},
	{
		Name: "MCHC", Code: "MCHC", Unit: "g/dL",
		TableAliases: []string{"mchc", "mean corpuscular hemoglobin concentration"},
		Patterns: pats(
			`(?i)\bMCHC\b`+sep+num+`\s*(?:g/dL|g/dl|%)?`,
			`(?i)mean\s+corpuscular\s+hemoglobin\s+conc(?:entration)?`+sep+num,
		),
		Min: 20, Max: 45,
	},
	{
		Name: "RDW", Code: "RDW", Unit: "%",
		TableAliases: []string{"rdw", "red cell distribution width", "rdw-cv"},
		Patterns: pats(
			`(?i)\bRDW\b(?:-CV)?`+sep+num+`\s*%?`,
			`(?i)red\s+cell\s+distribution\s+width`+sep+num,
		),
		Min: 5, Max: 35,
	},
	{
		Name: "Platelet Count", Code: "PLT", Unit: "K/uL",
		TableAliases: []string{"platelet count", "platelets", "plt"},
		Patterns: pats(
			`(?i)platelet(?:s)?(?:\s+count)?`+sep+num+`\s*(?:K/uL|k/ul|x10[³^]3/uL|lakh/\s*cumm|lac/cumm)?`,
			`(?i)\bPLT\b`+sep+num+`\s*(?:K/uL|k/ul|lakh/\s*cumm)?`,
		),
		Min: 0.5, Max: 2000,
	},
	{
		Name: "MPV", Code: "MPV", Unit: "fL",
		TableAliases: []string{"mpv", "mean platelet volume"},
		Patterns: pats(
			`(?i)\bMPV\b`+sep+num+`\s*(?:fL|fl)?`,
			`(?i)mean\s+platelet\s+volume`+sep+num,
		),
		Min: 3, Max: 25,
	},

	// Lipid panel
	{
		Name: "Total Cholesterol", Code: "CHOL", Unit: "mg/dL",
		TableAliases: []string{"total cholesterol", "cholesterol, total", "cholesterol total", "cholesterol"},
		Patterns: pats(
			`(?i)(?:total\s+)?cholesterol` + sep + num + `\s*(?:mg/dL)?`,
		),
		Min: 50, Max: 500,
	},
	{
		Name: "HDL Cholesterol", Code: "HDL", Unit: "mg/dL",
		TableAliases: []string{"hdl", "hdl cholesterol", "hdl-c", "hdl chol"},
		Patterns: pats(
			`(?i)HDL(?:\s+cholesterol|\s+chol\.?|-C)?` + sep + num + `\s*(?:mg/dL)?`,
		),
		Min: 10, Max: 150,
	},
	{
		Name: "LDL Cholesterol", Code: "LDL", Unit: "mg/dL",
		TableAliases: []string{"ldl", "ldl cholesterol", "ldl-c", "ldl chol", "ldl calculated", "ldl calc", "ldl cholesterol calculated", "direct ldl", "ldl direct", "ldl cholesterol direct"},
		Patterns: pats(
			`(?i)(?:direct\s+)?LDL(?:\s+cholesterol)?(?:\s+(?:calc(?:ulated)?|direct))?(?:\s+chol\.?|-C)?` + sep + num + `\s*(?:mg/dL)?`,
		),
		Min: 10, Max: 400,
	},
	{
		Name: "Triglycerides", Code: "TRIG", Unit: "mg/dL",
		TableAliases: []string{"triglycerides", "trig", "triglyceride"},
		Patterns: pats(
			`(?i)triglycerides?`+sep+num+`\s*(?:mg/dL)?`,
			`(?i)\bTRIG\b`+sep+num+`\s*(?:mg/dL)?`,
		),
		Min: 10, Max: 2000,
	},
	{
		Name: "VLDL Cholesterol", Code: "VLDL", Unit: "mg/dL",
		TableAliases: []string{"vldl", "vldl cholesterol", "vldl-c", "vldl chol"},
		Patterns: pats(
			`(?i)VLDL(?:\s+cholesterol|\s+chol\.?|-C)?` + sep + num + `\s*(?:mg/dL)?`,
		),
		Min: 1, Max: 200,
	},

	// Thyroid panel
	{
		Name: "TSH", Code: "TSH", Unit: "uIU/mL",
		TableAliases: []string{"tsh", "thyroid stimulating hormone", "thyrotropin"},
		Patterns: pats(
			`(?i)\bTSH\b`+sep+num+`\s*(?:uIU/mL|mIU/L|uU/mL)?`,
			`(?i)thyroid\s+stimulating\s+hormone`+sep+num,
		),
		Min: 0.001, Max: 100,
	},
	{
		Name: "Free T4", Code: "FT4", Unit: "ng/dL",
		TableAliases: []string{"free t4", "ft4", "free thyroxine", "t4, free"},
		Patterns: pats(
			`(?i)free\s+T4`+sep+num+`\s*(?:ng/dL|ng/dl)?`,
			`(?i)\bFT4\b`+sep+num+`\s*(?:ng/dL)?`,
			`(?i)free\s+thyroxine`+sep+num,
		),
		Min: 0.1, Max: 10,
	},
	{
		Name: "Free T3", Code: "FT3", Unit: "pg/mL",
		TableAliases: []string{"free t3", "ft3", "free triiodothyronine", "t3, free"},
		Patterns: pats(
			`(?i)free\s+T3`+sep+num+`\s*(?:pg/mL|pg/ml)?`,
			`(?i)\bFT3\b`+sep+num+`\s*(?:pg/mL)?`,
			`(?i)free\s+triiodothyronine`+sep+num,
		),
		Min: 0.5, Max: 20,
	},
	{
		Name: "Total T4", Code: "TT4", Unit: "ug/dL",
		TableAliases: []string{"total t4", "t4, total", "t4 total", "thyroxine"},
		Patterns: pats(
			`(?i)total\s+T4`+sep+num+`\s*(?:ug/dL|mcg/dL)?`,
			`(?i)\bT4\b(?:\s*,?\s*total)?`+sep+num+`\s*(?:ug/dL|mcg/dL)?`,
			`(?i)thyroxine`+sep+num+`\s*(?:ug/dL|mcg/dL)?`,
		),
		Min: 0.5, Max: 30,
	},

	// Iron studies
	{
		Name: "Iron", Code: "FE", Unit: "ug/dL",
		TableAliases: []string{"iron", "serum iron", "fe", "iron, serum"},
		Patterns: pats(
			`(?i)(?:serum\s+)?iron`+sep+num+`\s*(?:ug/dL|mcg/dL)?`,
			`(?i)\bFe\b`+sep+num+`\s*(?:ug/dL)?`,
		),
		Min: 5, Max: 500,
	},
	{
		Name: "TIBC", Code: "TIBC", Unit: "ug/dL",
		TableAliases: []string{"tibc", "total iron binding capacity", "iron binding capacity"},
		Patterns: pats(
			`(?i)\bTIBC\b`+sep+num+`\s*(?:ug/dL|mcg/dL)?`,
			`(?i)total\s+iron[\s-]+binding\s+capacity`+sep+num,
		),
		Min: 50, Max: 800,
	},
	{
		Name: "Ferritin", Code: "FERR", Unit: "ng/mL",
		TableAliases: []string{"ferritin"},
		Patterns: pats(
			`(?i)ferritin` + sep + num + `\s*(?:ng/mL|ng/ml)?`,
		),
		Min: 1, Max: 5000,
	},
	{
		Name: "Transferrin Saturation", Code: "TSAT", Unit: "%",
		TableAliases: []string{"transferrin saturation", "tsat", "iron saturation", "transferrin sat", "% saturation"},
		Patterns: pats(
			`(?i)transferrin\s+sat(?:uration)?`+sep+num+`\s*%?`,
			`(?i)\bTSAT\b`+sep+num+`\s*%?`,
			`(?i)iron\s+saturation`+sep+num+`\s*%?`,
		),
		Min: 1, Max: 100,
	},

	// HbA1c
	{
		Name: "HbA1c", Code: "A1C", Unit: "%",
		TableAliases: []string{"hba1c", "hemoglobin a1c", "a1c", "hgb a1c", "glycated hemoglobin", "glycosylated hemoglobin"},
		Patterns: pats(
			`(?i)(?:HbA1c|Hgb\s+A1c|hemoglobin\s+A1c|A1C)`+sep+num+`\s*%?`,
			`(?i)glyc(?:ated|osylated)\s+hemoglobin`+sep+num+`\s*%?`,
		),
		Min: 3, Max: 20,
	},

	// Urinalysis numerics
	{
		Name: "Urine pH", Code: "UA_PH", Unit: "",
		TableAliases: []string{"ph", "urine ph"},
		Patterns: pats(
			`(?i)(?:urine\s+)?pH` + sep + num,
		),
		Min: 2, Max: 11,
	},
	{
		Name: "Specific Gravity", Code: "UA_SG", Unit: "",
		TableAliases: []string{"specific gravity", "sp. gravity", "sp gravity", "spec gravity", "sg"},
		Patterns: pats(
			`(?i)(?:urine\s+)?(?:specific|sp\.?)\s+gravity` + sep + num,
		),
		Min: 0.999, Max: 1.060,
	},
	{
		Name: "Urine Protein", Code: "UA_PROT", Unit: "mg/dL",
		TableAliases: []string{"urine protein", "protein (urine)", "ua protein"},
		Patterns: pats(
			`(?i)(?:urine|ua)\s+protein` + sep + num + `\s*(?:mg/dL)?`,
		),
		Min: 0, Max: 1000,
	},
	{
		Name: "Urine Glucose", Code: "UA_GLU", Unit: "mg/dL",
		TableAliases: []string{"urine glucose", "glucose (urine)", "ua glucose"},
		Patterns: pats(
			`(?i)(?:urine|ua)\s+glucose` + sep + num + `\s*(?:mg/dL)?`,
		),
		Min: 0, Max: 5000,
	},
	{
		Name: "Urine WBC", Code: "UA_WBC", Unit: "/HPF",
		TableAliases: []string{"wbc (urine)", "urine wbc", "ua wbc"},
		Patterns: pats(
			`(?i)(?:urine|ua)\s+WBC` + sep + num + `\s*(?:/HPF|/hpf)?`,
		),
		Min: 0, Max: 500,
	},
	{
		Name: "Urine RBC", Code: "UA_RBC", Unit: "/HPF",
		TableAliases: []string{"rbc (urine)", "urine rbc", "ua rbc"},
		Patterns: pats(
			`(?i)(?:urine|ua)\s+RBC` + sep + num + `\s*(?:/HPF|/hpf)?`,
		),
		Min: 0, Max: 500,
	},
}

var defSet = testtypes.NewDefSet(measurementDefs)
