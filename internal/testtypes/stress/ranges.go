package stress

import "github.com/MeKo-Tech/medscan/internal/testtypes"

var n = testtypes.Num

const accSource = "ACC/AHA Exercise Testing Guidelines"

var referenceRanges = &testtypes.RangeTable{
	Ranges: map[string]testtypes.Range{
		// METs: >= 10 excellent, 7-9 good, 5-6 fair, < 5 poor
		"METs": {NormalMin: n(7), MildMin: n(5), ModerateMin: n(3), SevereLow: n(3), Unit: "METs", Source: accSource},
		// Target heart rate is >= 85% of max predicted
		"MPHR%":   {NormalMin: n(85), MildMin: n(75), ModerateMin: n(65), SevereLow: n(65), Unit: "%", Source: accSource},
		"Peak_HR": {NormalMin: n(100), NormalMax: n(220), Unit: "bpm", Source: accSource},
		"Rest_HR": {NormalMin: n(50), NormalMax: n(100), Unit: "bpm", Source: accSource},
		// Exaggerated systolic response above 250 mmHg
		"Peak_SBP": {NormalMax: n(210), MildMax: n(230), ModerateMax: n(250), SevereHigh: n(250), Unit: "mmHg", Source: accSource},
		// Horizontal/downsloping depression >= 1mm is the positivity criterion
		"ST_Depression": {NormalMax: n(0.5), MildMax: n(1.0), ModerateMax: n(2.0), SevereHigh: n(2.0), Unit: "mm", Source: accSource},
		// Bruce protocol: >= 9 minutes is good capacity
		"Exercise_Duration": {NormalMin: n(9), MildMin: n(6), ModerateMin: n(3), SevereLow: n(3), Unit: "min", Source: accSource},
		// Duke: >= 5 low risk, -10..4 moderate, < -10 high risk
		"Duke_Score": {NormalMin: n(5), MildMin: n(-10), SevereLow: n(-10), Unit: "", Source: accSource},
		"RPP":        {NormalMin: n(20000), NormalMax: n(35000), Unit: "", Source: accSource},
	},
}

var petReferenceRanges = &testtypes.RangeTable{
	Ranges: map[string]testtypes.Range{
		"LVEF":       {NormalMin: n(52), NormalMax: n(75), MildMin: n(41), ModerateMin: n(30), Unit: "%", Source: "ASE Chamber Quantification"},
		"Rest_MBF":   {NormalMin: n(0.6), NormalMax: n(1.3), Unit: "mL/min/g", Source: "ASNC PET Guidelines"},
		"Stress_MBF": {NormalMin: n(1.8), MildMin: n(1.5), Unit: "mL/min/g", Source: "ASNC PET Guidelines"},
		// CFR >= 2.0 normal; < 1.5 significantly reduced
		"CFR": {NormalMin: n(2.0), MildMin: n(1.5), ModerateMin: n(1.0), Unit: "", Source: "ASNC PET Guidelines"},
	},
}
