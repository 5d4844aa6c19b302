package venous

import "github.com/MeKo-Tech/medscan/internal/testtypes"

var n = testtypes.Num

const svsSource = "SVS/AVF Clinical Practice Guidelines"

// Superficial vein reflux: under 500 ms is normal, 1000 ms is the common
// cutoff for clinically significant reflux.
var gsvReflux = testtypes.Range{
	NormalMax: n(500), MildMax: n(1000), ModerateMax: n(2000), SevereHigh: n(2000),
	Unit: "ms", Source: svsSource,
}

var gsvDiameter = testtypes.Range{
	NormalMax: n(4.0), MildMax: n(6.0), ModerateMax: n(8.0), SevereHigh: n(8.0),
	Unit: "mm", Source: svsSource,
}

var referenceRanges = buildRanges()

func buildRanges() *testtypes.RangeTable {
	ranges := make(map[string]testtypes.Range)
	for _, seg := range []string{"GSV_Prox", "GSV_Mid", "GSV_Dist"} {
		for _, side := range []string{"R", "L"} {
			ranges[side+"_"+seg+"_Reflux"] = gsvReflux
			ranges[side+"_"+seg+"_Diam"] = gsvDiameter
		}
	}
	return &testtypes.RangeTable{Ranges: ranges}
}
