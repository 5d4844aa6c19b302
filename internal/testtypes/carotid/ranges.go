package carotid

import "github.com/MeKo-Tech/medscan/internal/testtypes"

var n = testtypes.Num

const sruSource = "SRU Consensus Criteria"

// SRU criteria for ICA stenosis grading: PSV < 125 cm/s is under 50%
// stenosis, 125-230 is 50-69%, above 230 is 70% or more.
var icaPSV = testtypes.Range{
	NormalMax: n(125), MildMax: n(125), ModerateMin: n(125), ModerateMax: n(230), SevereHigh: n(230),
	Unit: "cm/s", Source: sruSource,
}

var ccaPSV = testtypes.Range{
	NormalMin: n(50), NormalMax: n(120),
	Unit: "cm/s", Source: sruSource,
}

var icaEDV = testtypes.Range{
	NormalMax: n(40), MildMax: n(40), ModerateMin: n(40), ModerateMax: n(100), SevereHigh: n(100),
	Unit: "cm/s", Source: sruSource,
}

var icaCCARatio = testtypes.Range{
	NormalMax: n(2.0), MildMax: n(2.0), ModerateMin: n(2.0), ModerateMax: n(4.0), SevereHigh: n(4.0),
	Source: sruSource,
}

var imt = testtypes.Range{
	NormalMax: n(0.9), MildMax: n(1.2), ModerateMax: n(1.5), SevereHigh: n(1.5),
	Unit: "mm", Source: "ASE/AIUM Guidelines",
}

var referenceRanges = &testtypes.RangeTable{
	Ranges: map[string]testtypes.Range{
		"R_Prox_ICA_PSV": icaPSV,
		"R_Mid_ICA_PSV":  icaPSV,
		"R_Dist_ICA_PSV": icaPSV,
		"L_Prox_ICA_PSV": icaPSV,
		"L_Mid_ICA_PSV":  icaPSV,
		"L_Dist_ICA_PSV": icaPSV,

		"R_Dist_CCA_PSV": ccaPSV,
		"R_CCA_PSV":      ccaPSV,
		"L_Dist_CCA_PSV": ccaPSV,
		"L_CCA_PSV":      ccaPSV,

		"R_Prox_ICA_EDV": icaEDV,
		"R_Mid_ICA_EDV":  icaEDV,
		"R_Dist_ICA_EDV": icaEDV,
		"L_Prox_ICA_EDV": icaEDV,
		"L_Mid_ICA_EDV":  icaEDV,
		"L_Dist_ICA_EDV": icaEDV,

		"R_ICA_CCA_Ratio": icaCCARatio,
		"L_ICA_CCA_Ratio": icaCCARatio,

		"R_IMT": imt,
		"L_IMT": imt,
	},
}
