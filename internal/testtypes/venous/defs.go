package venous

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

type segment struct {
	re   *regexp.Regexp
	code string
}

// GSV mapping table pairs right and left reflux time and diameter per
// segment:
//
//	Right                    Leg         Left
//	Reflux Time  Diameter   Mapping    Reflux Time  Diameter
//	0 ms         0.48 mm    GSV Prox   131 ms       0.46 mm
func seg(label, code string) segment {
	return segment{
		regexp.MustCompile(`(?i)(\d+)\s*ms\s+(\d+\.?\d*)\s*mm\s+` + label + `\s+(\d+)\s*ms\s+(\d+\.?\d*)\s*mm`),
		code,
	}
}

var segments = []segment{
	seg(`GSV\s+Prox`, "GSV_Prox"),
	seg(`GSV\s+Mid`, "GSV_Mid"),
	seg(`GSV\s+Dist`, "GSV_Dist"),
}

func extractGSVTable(fullText string, pages []report.ExtractedPage) []report.RawMeasurement {
	var results []report.RawMeasurement

	for _, s := range segments {
		m := s.re.FindStringSubmatch(fullText)
		if m == nil {
			continue
		}
		rReflux, err1 := strconv.ParseFloat(m[1], 64)
		rDiam, err2 := strconv.ParseFloat(m[2], 64)
		lReflux, err3 := strconv.ParseFloat(m[3], 64)
		lDiam, err4 := strconv.ParseFloat(m[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		raw := strings.TrimSpace(m[0])
		page := testtypes.FindPage(m[0], pages)

		results = append(results,
			report.RawMeasurement{
				Name: "Right " + s.code + " Reflux Time", Code: "R_" + s.code + "_Reflux",
				Value: rReflux, Unit: "ms", RawText: raw, PageNumber: page,
			},
			report.RawMeasurement{
				Name: "Right " + s.code + " Diameter", Code: "R_" + s.code + "_Diam",
				Value: rDiam, Unit: "mm", RawText: raw, PageNumber: page,
			},
			report.RawMeasurement{
				Name: "Left " + s.code + " Reflux Time", Code: "L_" + s.code + "_Reflux",
				Value: lReflux, Unit: "ms", RawText: raw, PageNumber: page,
			},
			report.RawMeasurement{
				Name: "Left " + s.code + " Diameter", Code: "L_" + s.code + "_Diam",
				Value: lDiam, Unit: "mm", RawText: raw, PageNumber: page,
			},
		)
	}

	return results
}

func extractMeasurements(res *report.ExtractionResult) []report.RawMeasurement {
	var results []report.RawMeasurement
	seen := make(map[string]bool)

	for _, m := range extractGSVTable(res.FullText, res.Pages) {
		if !seen[m.Code] {
			results = append(results, m)
			seen[m.Code] = true
		}
	}

	return results
}
