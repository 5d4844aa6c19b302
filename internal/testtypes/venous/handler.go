// Package venous handles lower extremity venous duplex reports: DVT
// screening, GSV reflux mapping, and vein diameters.
package venous

import (
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

var detectionTiers = testtypes.KeywordTiers{
	Strong: []string{
		"venous duplex", "venous doppler", "lower extremity venous",
		"venous ultrasound", "dvt study", "deep vein thrombosis",
		"venous reflux study", "vein mapping", "venous insufficiency",
	},
	Moderate: []string{
		"reflux time", "gsv", "saphenous", "femoral vein", "popliteal vein",
		"compressibility", "compressible", "phasic", "augmentation",
		"thrombus", "dvt", "varicose", "valsalva", "greater saphenous",
		"saphenofemoral",
	},
	Weak: []string{
		"reflux", "vein", "patent", "doppler", "duplex", "diameter",
	},
}

var sectionSplitter = testtypes.NewSectionSplitter([]string{
	`INDICATION|REASON\s+FOR\s+(?:TEST|STUDY|EXAM)`,
	`TECHNIQUE|PROTOCOL|PROCEDURE`,
	`RIGHT\s+(?:LEG|LOWER\s+EXTREMITY)`,
	`LEFT\s+(?:LEG|LOWER\s+EXTREMITY)`,
	`DEEP\s+(?:VEINS|VENOUS\s+SYSTEM)`,
	`SUPERFICIAL\s+(?:VEINS|VENOUS\s+SYSTEM)`,
	`(?:GSV|VEIN)\s+MAPPING`,
	`REFLUX\s+(?:DATA|TIMES|STUDY)`,
	`CONCLUSION|IMPRESSION|SUMMARY|INTERPRETATION|FINDINGS`,
})

// Handler implements the lower extremity venous duplex family.
type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) ID() string          { return "venous_doppler" }
func (h *Handler) DisplayName() string { return "Lower Extremity Venous Duplex" }
func (h *Handler) Category() string    { return "vascular" }

func (h *Handler) Keywords() []string {
	return []string{
		"venous duplex", "venous doppler", "venous ultrasound",
		"lower extremity venous", "deep vein thrombosis", "dvt",
		"venous reflux", "vein mapping", "saphenous vein",
		"venous insufficiency",
	}
}

func (h *Handler) Detect(res *report.ExtractionResult) float64 {
	return detectionTiers.ScoreZones(testtypes.SplitZones(res.FullText))
}

func (h *Handler) Parse(res *report.ExtractionResult, demo report.Demographics) *report.ParsedReport {
	raw := extractMeasurements(res)

	measurements := make([]report.ParsedMeasurement, 0, len(raw))
	for _, m := range raw {
		c := referenceRanges.Classify(m.Code, m.Value, demo.Sex)
		measurements = append(measurements, report.Classified(m, c))
	}

	var warnings []string
	if len(measurements) == 0 {
		warnings = append(warnings, testtypes.NoMeasurementsWarning)
	}

	return &report.ParsedReport{
		TestType:            h.ID(),
		TestTypeDisplay:     h.DisplayName(),
		DetectionConfidence: h.Detect(res),
		Measurements:        measurements,
		Sections:            sectionSplitter.Split(res.FullText),
		Findings:            testtypes.ExtractFindings(res.FullText),
		Warnings:            warnings,
	}
}

func (h *Handler) ReferenceRanges() map[string]testtypes.RangeInfo {
	return referenceRanges.RangeInfoMap()
}

func (h *Handler) Glossary() map[string]string { return glossary }
