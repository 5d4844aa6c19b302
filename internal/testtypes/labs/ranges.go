package labs

import (
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

var n = testtypes.Num

// referenceRanges holds standard adult reference ranges. Sex-dependent
// analytes (hemoglobin, hematocrit, RBC, iron, ferritin) carry per-sex
// overrides; the base entry is the combined adult range used when sex is
// unknown.
var referenceRanges = &testtypes.RangeTable{
	Ranges: map[string]testtypes.Range{
		// CMP
		"GLU":   {NormalMin: n(70), NormalMax: n(99), MildMax: n(125), ModerateMax: n(200), SevereHigh: n(400), MildMin: n(60), SevereLow: n(40), Unit: "mg/dL", Source: "ADA criteria"},
		"BUN":   {NormalMin: n(7), NormalMax: n(20), MildMax: n(30), ModerateMax: n(60), Unit: "mg/dL", Source: "Standard adult reference"},
		"CREAT": {NormalMin: n(0.6), NormalMax: n(1.3), MildMax: n(1.8), ModerateMax: n(3.0), Unit: "mg/dL", Source: "Standard adult reference"},
		"EGFR":  {NormalMin: n(60), MildMin: n(45), ModerateMin: n(30), SevereLow: n(15), Unit: "mL/min/1.73m2", Source: "KDIGO CKD staging"},
		"NA":    {NormalMin: n(135), NormalMax: n(145), MildMin: n(130), ModerateMin: n(125), MildMax: n(150), ModerateMax: n(155), Unit: "mEq/L", Source: "Standard adult reference"},
		"K":     {NormalMin: n(3.5), NormalMax: n(5.0), MildMin: n(3.0), ModerateMin: n(2.5), MildMax: n(5.5), ModerateMax: n(6.0), Unit: "mEq/L", Source: "Standard adult reference"},
		"CL":    {NormalMin: n(98), NormalMax: n(107), Unit: "mEq/L", Source: "Standard adult reference"},
		"CO2":   {NormalMin: n(22), NormalMax: n(29), Unit: "mEq/L", Source: "Standard adult reference"},
		"CA":    {NormalMin: n(8.5), NormalMax: n(10.5), MildMin: n(8.0), ModerateMin: n(7.0), MildMax: n(11.0), ModerateMax: n(12.0), Unit: "mg/dL", Source: "Standard adult reference"},
		"TP":    {NormalMin: n(6.0), NormalMax: n(8.3), Unit: "g/dL", Source: "Standard adult reference"},
		"ALB":   {NormalMin: n(3.5), NormalMax: n(5.0), MildMin: n(3.0), ModerateMin: n(2.5), Unit: "g/dL", Source: "Standard adult reference"},
		"TBILI": {NormalMax: n(1.2), MildMax: n(2.0), ModerateMax: n(5.0), Unit: "mg/dL", Source: "Standard adult reference"},
		"AST":   {NormalMin: n(10), NormalMax: n(40), MildMax: n(80), ModerateMax: n(200), Unit: "U/L", Source: "Standard adult reference"},
		"ALT":   {NormalMin: n(7), NormalMax: n(56), MildMax: n(112), ModerateMax: n(280), Unit: "U/L", Source: "Standard adult reference"},
		"ALP":   {NormalMin: n(44), NormalMax: n(147), MildMax: n(220), ModerateMax: n(440), Unit: "U/L", Source: "Standard adult reference"},

		// CBC (combined adult ranges; HGB/HCT/RBC refined per sex)
		"WBC":  {NormalMin: n(4.5), NormalMax: n(11.0), MildMin: n(3.0), ModerateMin: n(1.5), MildMax: n(15.0), ModerateMax: n(30.0), Unit: "K/uL", Source: "Standard adult reference"},
		"RBC":  {NormalMin: n(4.0), NormalMax: n(5.9), Unit: "M/uL", Source: "Standard adult reference"},
		"HGB":  {NormalMin: n(12.0), NormalMax: n(17.5), MildMin: n(10.0), ModerateMin: n(8.0), SevereLow: n(7.0), Unit: "g/dL", Source: "WHO anemia grading"},
		"HCT":  {NormalMin: n(36.0), NormalMax: n(52.0), MildMin: n(30.0), ModerateMin: n(24.0), Unit: "%", Source: "Standard adult reference"},
		"MCV":  {NormalMin: n(80), NormalMax: n(100), Unit: "fL", Source: "Standard adult reference"},
		"MCH":  {NormalMin: n(27), NormalMax: n(33), Unit: "pg", Source: "Standard adult reference"},
		"MCHC": {NormalMin: n(32), NormalMax: n(36), Unit: "g/dL", Source: "Standard adult reference"},
		"RDW":  {NormalMin: n(11.5), NormalMax: n(14.5), Unit: "%", Source: "Standard adult reference"},
		"PLT":  {NormalMin: n(150), NormalMax: n(450), MildMin: n(100), ModerateMin: n(50), SevereLow: n(20), MildMax: n(600), ModerateMax: n(1000), Unit: "K/uL", Source: "Standard adult reference"},
		"MPV":  {NormalMin: n(7.5), NormalMax: n(11.5), Unit: "fL", Source: "Standard adult reference"},

		// Lipids
		"CHOL": {NormalMax: n(200), MildMax: n(240), ModerateMax: n(300), Unit: "mg/dL", Source: "ATP III guidelines"},
		"HDL":  {NormalMin: n(40), MildMin: n(30), Unit: "mg/dL", Source: "ATP III guidelines"},
		"LDL":  {NormalMax: n(100), MildMax: n(160), ModerateMax: n(190), Unit: "mg/dL", Source: "ATP III guidelines"},
		"TRIG": {NormalMax: n(150), MildMax: n(200), ModerateMax: n(500), Unit: "mg/dL", Source: "ATP III guidelines"},
		"VLDL": {NormalMin: n(5), NormalMax: n(40), Unit: "mg/dL", Source: "Standard adult reference"},

		// Thyroid
		"TSH": {NormalMin: n(0.4), NormalMax: n(4.5), MildMin: n(0.1), ModerateMin: n(0.05), MildMax: n(10.0), ModerateMax: n(20.0), Unit: "uIU/mL", Source: "ATA guidelines"},
		"FT4": {NormalMin: n(0.8), NormalMax: n(1.8), MildMin: n(0.5), MildMax: n(2.5), Unit: "ng/dL", Source: "ATA guidelines"},
		"FT3": {NormalMin: n(2.3), NormalMax: n(4.2), Unit: "pg/mL", Source: "ATA guidelines"},
		"TT4": {NormalMin: n(4.5), NormalMax: n(12.0), Unit: "ug/dL", Source: "Standard adult reference"},

		// Iron studies
		"FE":   {NormalMin: n(50), NormalMax: n(170), MildMin: n(30), Unit: "ug/dL", Source: "Standard adult reference"},
		"TIBC": {NormalMin: n(250), NormalMax: n(450), Unit: "ug/dL", Source: "Standard adult reference"},
		"FERR": {NormalMin: n(20), NormalMax: n(300), MildMin: n(12), Unit: "ng/mL", Source: "WHO iron deficiency criteria"},
		"TSAT": {NormalMin: n(20), NormalMax: n(50), MildMin: n(15), Unit: "%", Source: "Standard adult reference"},

		// HbA1c
		"A1C": {NormalMax: n(5.7), MildMax: n(6.4), ModerateMax: n(9.0), SevereHigh: n(12.0), Unit: "%", Source: "ADA criteria"},

		// Urinalysis
		"UA_PH":   {NormalMin: n(4.5), NormalMax: n(8.0), Unit: "", Source: "Standard adult reference"},
		"UA_SG":   {NormalMin: n(1.005), NormalMax: n(1.030), Unit: "", Source: "Standard adult reference"},
		"UA_PROT": {NormalMax: n(14), MildMax: n(30), ModerateMax: n(100), Unit: "mg/dL", Source: "Standard adult reference"},
		"UA_GLU":  {NormalMax: n(15), Unit: "mg/dL", Source: "Standard adult reference"},
		"UA_WBC":  {NormalMax: n(5), MildMax: n(10), Unit: "/HPF", Source: "Standard adult reference"},
		"UA_RBC":  {NormalMax: n(3), MildMax: n(10), Unit: "/HPF", Source: "Standard adult reference"},
	},
	BySex: map[report.Sex]map[string]testtypes.Range{
		report.SexMale: {
			"HGB":  {NormalMin: n(13.5), NormalMax: n(17.5), MildMin: n(10.0), ModerateMin: n(8.0), SevereLow: n(7.0), Unit: "g/dL", Source: "WHO anemia grading"},
			"HCT":  {NormalMin: n(41.0), NormalMax: n(52.0), MildMin: n(30.0), ModerateMin: n(24.0), Unit: "%", Source: "Standard adult reference"},
			"RBC":  {NormalMin: n(4.5), NormalMax: n(5.9), Unit: "M/uL", Source: "Standard adult reference"},
			"FE":   {NormalMin: n(65), NormalMax: n(175), MildMin: n(40), Unit: "ug/dL", Source: "Standard adult reference"},
			"FERR": {NormalMin: n(24), NormalMax: n(336), MildMin: n(15), Unit: "ng/mL", Source: "WHO iron deficiency criteria"},
		},
		report.SexFemale: {
			"HGB":  {NormalMin: n(12.0), NormalMax: n(15.5), MildMin: n(10.0), ModerateMin: n(8.0), SevereLow: n(7.0), Unit: "g/dL", Source: "WHO anemia grading"},
			"HCT":  {NormalMin: n(36.0), NormalMax: n(48.0), MildMin: n(30.0), ModerateMin: n(24.0), Unit: "%", Source: "Standard adult reference"},
			"RBC":  {NormalMin: n(4.0), NormalMax: n(5.2), Unit: "M/uL", Source: "Standard adult reference"},
			"FE":   {NormalMin: n(50), NormalMax: n(170), MildMin: n(30), Unit: "ug/dL", Source: "Standard adult reference"},
			"FERR": {NormalMin: n(11), NormalMax: n(307), MildMin: n(8), Unit: "ng/mL", Source: "WHO iron deficiency criteria"},
		},
	},
}
