// Package arterial handles lower extremity arterial doppler reports:
// segment velocities with waveform and lumen status, plus ankle-brachial
// index grading.
package arterial

import (
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

var detectionTiers = testtypes.KeywordTiers{
	Strong: []string{
		"lower extremity arterial", "arterial doppler", "arterial duplex",
		"ankle-brachial index", "ankle brachial index", "abi",
		"peripheral arterial", "lower extremity artery",
		"arterial ultrasound",
	},
	Moderate: []string{
		"claudication", "femoral artery", "popliteal artery",
		"tibial artery", "dorsalis pedis", "peroneal", "triphasic",
		"biphasic", "monophasic", "brachial artery pressure", "pad",
		"cfa", "pfa", "pta", "ata", "dpa", "pop a", "stenosed",
	},
	Weak: []string{
		"patent", "occluded", "waveform", "cm/s", "doppler", "duplex",
		"velocity", "lumen",
	},
}

var sectionSplitter = testtypes.NewSectionSplitter([]string{
	`INDICATION|REASON\s+FOR\s+(?:TEST|STUDY|EXAM)`,
	`TECHNIQUE|PROTOCOL|PROCEDURE`,
	`RIGHT\s+(?:LEG|LOWER\s+EXTREMITY)`,
	`LEFT\s+(?:LEG|LOWER\s+EXTREMITY)`,
	`ABI|ANKLE[- ]BRACHIAL|PRESSURES`,
	`WAVEFORMS|VELOCITIES|DOPPLER\s+(?:DATA|VELOCITIES)`,
	`CONCLUSION|IMPRESSION|SUMMARY|INTERPRETATION|FINDINGS`,
})

// Handler implements the lower extremity arterial doppler family.
type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) ID() string          { return "arterial_doppler" }
func (h *Handler) DisplayName() string { return "Lower Extremity Arterial Doppler" }
func (h *Handler) Category() string    { return "vascular" }

func (h *Handler) Keywords() []string {
	return []string{
		"arterial doppler", "arterial duplex", "lower extremity arterial",
		"ankle-brachial index", "abi", "peripheral arterial disease",
		"claudication", "femoral artery", "popliteal artery",
		"arterial ultrasound",
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
