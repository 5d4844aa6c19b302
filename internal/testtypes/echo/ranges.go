package echo

import (
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

var n = testtypes.Num

// referenceRanges follow the ASE chamber quantification cut-points, with
// per-sex overrides where the guidelines qualify them.
var referenceRanges = &testtypes.RangeTable{
	Ranges: map[string]testtypes.Range{
		"LVIDd": {NormalMin: n(3.8), NormalMax: n(5.8), MildMax: n(6.3), ModerateMax: n(6.8), Unit: "cm", Source: "ASE Chamber Quantification"},
		"LVIDs": {NormalMin: n(2.0), NormalMax: n(4.0), Unit: "cm", Source: "ASE Chamber Quantification"},
		"IVSd":  {NormalMin: n(0.6), NormalMax: n(1.1), MildMax: n(1.3), ModerateMax: n(1.6), Unit: "cm", Source: "ASE Chamber Quantification"},
		"LVPWd": {NormalMin: n(0.6), NormalMax: n(1.1), MildMax: n(1.3), ModerateMax: n(1.6), Unit: "cm", Source: "ASE Chamber Quantification"},

		"LVEF": {NormalMin: n(52), NormalMax: n(75), MildMin: n(41), ModerateMin: n(30), Unit: "%", Source: "ASE Chamber Quantification"},
		"FS":   {NormalMin: n(25), NormalMax: n(45), Unit: "%", Source: "ASE Chamber Quantification"},

		"LA":   {NormalMin: n(2.7), NormalMax: n(4.0), MildMax: n(4.6), ModerateMax: n(5.2), Unit: "cm", Source: "ASE Chamber Quantification"},
		"LAVI": {NormalMin: n(16), NormalMax: n(34), MildMax: n(41), ModerateMax: n(48), Unit: "mL/m2", Source: "ASE Chamber Quantification"},

		"RVD": {NormalMin: n(2.5), NormalMax: n(4.1), Unit: "cm", Source: "ASE Chamber Quantification"},
		"RAA": {NormalMax: n(18), Unit: "cm2", Source: "ASE Chamber Quantification"},

		"AoRoot": {NormalMin: n(2.0), NormalMax: n(3.7), MildMax: n(4.5), ModerateMax: n(5.5), Unit: "cm", Source: "ASE Chamber Quantification"},

		"AVA":  {NormalMin: n(2.5), NormalMax: n(4.5), MildMin: n(1.5), ModerateMin: n(1.0), Unit: "cm2", Source: "ASE/EACVI Valve Stenosis Guidelines"},
		"E/A":  {NormalMin: n(0.8), NormalMax: n(2.0), Unit: "", Source: "ASE Diastolic Function Guidelines"},
		"E/e'": {NormalMax: n(13), MildMax: n(20), Unit: "", Source: "ASE Diastolic Function Guidelines"},
		"TRV":  {NormalMax: n(2.8), MildMax: n(3.4), ModerateMax: n(4.0), Unit: "m/s", Source: "ASE/ESC Pulmonary Hypertension Criteria"},

		"RVSP": {NormalMax: n(35), MildMax: n(50), ModerateMax: n(70), Unit: "mmHg", Source: "ASE/ESC Pulmonary Hypertension Criteria"},

		"MV_E": {NormalMin: n(50), NormalMax: n(130), Unit: "cm/s", Source: "ASE Diastolic Function Guidelines"},
		"MV_A": {NormalMin: n(30), NormalMax: n(100), Unit: "cm/s", Source: "ASE Diastolic Function Guidelines"},
		"DT":   {NormalMin: n(140), NormalMax: n(240), Unit: "ms", Source: "ASE Diastolic Function Guidelines"},
		"IVRT": {NormalMin: n(50), NormalMax: n(100), Unit: "ms", Source: "ASE Diastolic Function Guidelines"},

		"e'_septal":  {NormalMin: n(7), MildMin: n(4), Unit: "cm/s", Source: "ASE Diastolic Function Guidelines"},
		"e'_lateral": {NormalMin: n(10), MildMin: n(6), Unit: "cm/s", Source: "ASE Diastolic Function Guidelines"},
		"TAPSE":      {NormalMin: n(1.7), MildMin: n(1.3), ModerateMin: n(1.0), Unit: "cm", Source: "ASE Right Heart Guidelines"},
	},
	BySex: map[report.Sex]map[string]testtypes.Range{
		report.SexMale: {
			"LVIDd": {NormalMin: n(4.2), NormalMax: n(5.8), MildMax: n(6.3), ModerateMax: n(6.8), Unit: "cm", Source: "ASE Chamber Quantification"},
			"LVEF":  {NormalMin: n(52), NormalMax: n(75), MildMin: n(41), ModerateMin: n(30), Unit: "%", Source: "ASE Chamber Quantification"},
		},
		report.SexFemale: {
			"LVIDd": {NormalMin: n(3.8), NormalMax: n(5.2), MildMax: n(5.7), ModerateMax: n(6.2), Unit: "cm", Source: "ASE Chamber Quantification"},
			"LVEF":  {NormalMin: n(54), NormalMax: n(75), MildMin: n(41), ModerateMin: n(30), Unit: "%", Source: "ASE Chamber Quantification"},
		},
	},
}
