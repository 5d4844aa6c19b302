package labs

import (
	"math"
	"strings"

	"github.com/MeKo-Tech/medscan/internal/report"
)

// normalizeUnits converts regional unit variants to standard units:
// WBC_CUMM (absolute /cumm count) becomes WBC in K/uL divided by 1000, and
// platelet counts reported in Lakh/cumm are multiplied by 100 into K/uL.
// Only one WBC survives, whichever variant was extracted first.
func normalizeUnits(in []report.RawMeasurement) []report.RawMeasurement {
	out := make([]report.RawMeasurement, 0, len(in))
	seenWBC := false

	for _, m := range in {
		switch {
		case m.Code == "WBC_CUMM":
			if seenWBC {
				continue
			}
			m.Code = "WBC"
			m.Value = math.Round(m.Value/1000.0*10) / 10
			m.Unit = "K/uL"
			m.PriorValues = nil
			out = append(out, m)
			seenWBC = true
		case m.Code == "WBC":
			if seenWBC {
				continue
			}
			out = append(out, m)
			seenWBC = true
		case m.Code == "PLT" && strings.Contains(strings.ToLower(m.RawText), "lakh"):
			m.Value = math.Round(m.Value * 100.0)
			m.Unit = "K/uL"
			out = append(out, m)
		default:
			out = append(out, m)
		}
	}
	return out
}
