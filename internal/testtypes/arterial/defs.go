package arterial

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

// Tabular layout pairs each segment with right and left velocity plus
// waveform and lumen status:
//
//	CFA    90.91 cm/s  Triphasic  Patent    86.03 cm/s  Triphasic  Patent
const segTail = `\s+(\d+\.?\d*)\s*(?:cm/s)?\s+(?:Triphasic|Biphasic|Monophasic)\s+(?:Patent|Occluded|Stenosed)\s+(\d+\.?\d*)\s*(?:cm/s)?`

func seg(label, code string) segment {
	return segment{regexp.MustCompile(`(?i)` + label + segTail), code}
}

var segments = []segment{
	seg(`CFA`, "CFA"),
	seg(`PFA`, "PFA"),
	seg(`Prox\s+Femoral`, "Prox_Fem"),
	seg(`Mid\s+Femoral`, "Mid_Fem"),
	seg(`Dist\s+Femoral`, "Dist_Fem"),
	seg(`Pop\s*A`, "Pop_A"),
	seg(`PTA`, "PTA"),
	seg(`ATA`, "ATA"),
	seg(`DPA`, "DPA"),
	seg(`Peroneal`, "Peroneal"),
}

func extractTabularVelocities(fullText string, pages []report.ExtractedPage) []report.RawMeasurement {
	var results []report.RawMeasurement

	for _, s := range segments {
		m := s.re.FindStringSubmatch(fullText)
		if m == nil {
			continue
		}
		rVel, errR := strconv.ParseFloat(m[1], 64)
		lVel, errL := strconv.ParseFloat(m[2], 64)
		if errR != nil || errL != nil {
			continue
		}
		raw := strings.TrimSpace(m[0])
		page := testtypes.FindPage(m[0], pages)

		if rVel >= 5.0 && rVel <= 600.0 {
			results = append(results, report.RawMeasurement{
				Name: "Right " + s.code + " Velocity", Code: "R_" + s.code + "_Vel",
				Value: rVel, Unit: "cm/s", RawText: raw, PageNumber: page,
			})
		}
		if lVel >= 5.0 && lVel <= 600.0 {
			results = append(results, report.RawMeasurement{
				Name: "Left " + s.code + " Velocity", Code: "L_" + s.code + "_Vel",
				Value: lVel, Unit: "cm/s", RawText: raw, PageNumber: page,
			})
		}
	}

	return results
}

var (
	brachialRe = regexp.MustCompile(`(?i)brachial\s+artery\s+pressure\s+(\d+)\s*(?:mmHg)?`)
	abiRe      = regexp.MustCompile(`(?i)ankle[- ]brachial\s+index(?:\s+PT)?\s+(\d+\.?\d*)\s+(\d+\.?\d*)`)
)

func extractABI(fullText string, pages []report.ExtractedPage) []report.RawMeasurement {
	var results []report.RawMeasurement

	if m := brachialRe.FindStringSubmatch(fullText); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= 50 && v <= 300 {
			results = append(results, report.RawMeasurement{
				Name: "Brachial Artery Pressure", Code: "Brachial_BP",
				Value: v, Unit: "mmHg",
				RawText: strings.TrimSpace(m[0]), PageNumber: testtypes.FindPage(m[0], pages),
			})
		}
	}

	// Right and left ABI appear as two values on the same line.
	if m := abiRe.FindStringSubmatch(fullText); m != nil {
		raw := strings.TrimSpace(m[0])
		page := testtypes.FindPage(m[0], pages)
		if r, err := strconv.ParseFloat(m[1], 64); err == nil && r >= 0.1 && r <= 2.0 {
			results = append(results, report.RawMeasurement{
				Name: "Right Ankle-Brachial Index", Code: "R_ABI",
				Value: r, RawText: raw, PageNumber: page,
			})
		}
		if l, err := strconv.ParseFloat(m[2], 64); err == nil && l >= 0.1 && l <= 2.0 {
			results = append(results, report.RawMeasurement{
				Name: "Left Ankle-Brachial Index", Code: "L_ABI",
				Value: l, RawText: raw, PageNumber: page,
			})
		}
	}

	return results
}

func extractMeasurements(res *report.ExtractionResult) []report.RawMeasurement {
	var results []report.RawMeasurement
	seen := make(map[string]bool)

	for _, m := range extractTabularVelocities(res.FullText, res.Pages) {
		if !seen[m.Code] {
			results = append(results, m)
			seen[m.Code] = true
		}
	}
	for _, m := range extractABI(res.FullText, res.Pages) {
		if !seen[m.Code] {
			results = append(results, m)
			seen[m.Code] = true
		}
	}

	return results
}
