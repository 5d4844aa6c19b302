package coronary

import "github.com/MeKo-Tech/medscan/internal/testtypes"

var n = testtypes.Num

const cathSource = "Cardiac Catheterization Handbook"

var referenceRanges = &testtypes.RangeTable{
	Ranges: map[string]testtypes.Range{
		"RA_mean": {
			NormalMin: n(0), NormalMax: n(8), MildMax: n(12), ModerateMax: n(16), SevereHigh: n(16),
			Unit: "mmHg", Source: cathSource,
		},
		"RV_systolic": {
			NormalMin: n(15), NormalMax: n(30), MildMax: n(40), ModerateMax: n(55), SevereHigh: n(55),
			Unit: "mmHg", Source: cathSource,
		},
		"RV_diastolic": {
			NormalMin: n(0), NormalMax: n(8), MildMax: n(12), ModerateMax: n(16), SevereHigh: n(16),
			Unit: "mmHg", Source: cathSource,
		},
		"PA_systolic": {
			NormalMin: n(15), NormalMax: n(30), MildMax: n(40), ModerateMax: n(55), SevereHigh: n(55),
			Unit: "mmHg", Source: cathSource,
		},
		"PA_diastolic": {
			NormalMin: n(4), NormalMax: n(12), MildMax: n(18), ModerateMax: n(25), SevereHigh: n(25),
			Unit: "mmHg", Source: cathSource,
		},
		"PA_mean": {
			NormalMin: n(9), NormalMax: n(18), MildMax: n(25), ModerateMax: n(35), SevereHigh: n(35),
			Unit: "mmHg", Source: cathSource,
		},
		"PCWP": {
			NormalMin: n(4), NormalMax: n(12), MildMax: n(18), ModerateMax: n(25), SevereHigh: n(25),
			Unit: "mmHg", Source: cathSource,
		},
		"AO_systolic": {
			NormalMin: n(90), NormalMax: n(140),
			MildMax: n(160), ModerateMax: n(180), SevereHigh: n(180),
			MildMin: n(80), ModerateMin: n(70), SevereLow: n(70),
			Unit: "mmHg", Source: cathSource,
		},
		"AO_diastolic": {
			NormalMin: n(60), NormalMax: n(90),
			MildMax: n(100), ModerateMax: n(110), SevereHigh: n(110),
			MildMin: n(50), ModerateMin: n(40), SevereLow: n(40),
			Unit: "mmHg", Source: cathSource,
		},
		"LV_systolic": {
			NormalMin: n(90), NormalMax: n(140),
			MildMax: n(160), ModerateMax: n(180), SevereHigh: n(180),
			MildMin: n(80), ModerateMin: n(70), SevereLow: n(70),
			Unit: "mmHg", Source: cathSource,
		},
		"LV_diastolic": {
			NormalMin: n(0), NormalMax: n(12), MildMax: n(18), ModerateMax: n(25), SevereHigh: n(25),
			Unit: "mmHg", Source: cathSource,
		},
		"LVEDP": {
			NormalMin: n(4), NormalMax: n(12), MildMax: n(18), ModerateMax: n(25), SevereHigh: n(25),
			Unit: "mmHg", Source: cathSource,
		},
		// Clinically significant stenosis is 70% or more (50% for left main).
		"stenosis_pct": {
			NormalMin: n(0), NormalMax: n(29), MildMax: n(49), ModerateMax: n(69), SevereHigh: n(70),
			Unit: "%", Source: "ACC/AHA Revascularization Guidelines",
		},
		// MLA under 4.0 mm2 is significant (6.0 mm2 for left main).
		"MLA": {
			NormalMin: n(4.0), MildMin: n(3.0), ModerateMin: n(2.0), SevereLow: n(2.0),
			Unit: "mm²", Source: "IVUS Consensus Guidelines",
		},
	},
}
