package arterial

import "github.com/MeKo-Tech/medscan/internal/testtypes"

var n = testtypes.Num

// ABI grading per ACC/AHA 2016: 1.00-1.40 normal, 0.71-0.90 mild PAD,
// 0.41-0.70 moderate, <= 0.40 severe, above 1.40 non-compressible.
var abiRange = testtypes.Range{
	NormalMin: n(1.0), NormalMax: n(1.4),
	MildMin: n(0.71), ModerateMin: n(0.41), SevereLow: n(0.40),
	Source: "ACC/AHA 2016 PAD Guidelines",
}

var referenceRanges = &testtypes.RangeTable{
	Ranges: map[string]testtypes.Range{
		"R_ABI": abiRange,
		"L_ABI": abiRange,
	},
}
