// Package carotid handles carotid doppler / cerebrovascular duplex reports,
// including the side-by-side right/left velocity table layout.
package carotid

import (
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

var detectionTiers = testtypes.KeywordTiers{
	Strong: []string{
		"carotid doppler", "carotid duplex", "carotid ultrasound",
		"cerebrovascular duplex", "carotid artery duplex",
		"carotid artery ultrasound", "bilateral carotid",
		"extracranial duplex", "carotid study",
	},
	Moderate: []string{
		"ica/cca", "ica/cca ratio", "internal carotid", "common carotid",
		"external carotid", "vertebral artery", "peak systolic velocity",
		"end diastolic velocity", "intima-media thickness", "intima media",
		"stenosis", "bulb", "bifurcation", "prox ica", "mid ica", "dist ica",
		"dist cca", "plaque",
	},
	Weak: []string{
		"psv", "edv", "cm/s", "doppler", "duplex", "antegrade", "velocity",
		"imt", "occlusion",
	},
}

var sectionSplitter = testtypes.NewSectionSplitter([]string{
	`INDICATION|REASON\s+FOR\s+(?:TEST|STUDY|EXAM)`,
	`TECHNIQUE|PROTOCOL|PROCEDURE`,
	`RIGHT\s+(?:CAROTID|SIDE|ICA|CCA)`,
	`LEFT\s+(?:CAROTID|SIDE|ICA|CCA)`,
	`VERTEBRAL\s+(?:ARTERIES|ARTERY)`,
	`PLAQUE\s+(?:CHARACTERIZATION|DESCRIPTION)`,
	`VELOCITIES|DOPPLER\s+(?:DATA|VELOCITIES)`,
	`CONCLUSION|IMPRESSION|SUMMARY|INTERPRETATION|FINDINGS`,
})

// Handler implements the carotid doppler family.
type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) ID() string          { return "carotid_doppler" }
func (h *Handler) DisplayName() string { return "Carotid Doppler Ultrasound" }
func (h *Handler) Category() string    { return "vascular" }

func (h *Handler) Keywords() []string {
	return []string{
		"carotid doppler", "carotid duplex", "carotid ultrasound",
		"cerebrovascular duplex", "carotid artery", "internal carotid",
		"common carotid", "ica/cca ratio", "carotid stenosis",
		"intima-media thickness", "bilateral carotid",
	}
}

func (h *Handler) Detect(res *report.ExtractionResult) float64 {
	return detectionTiers.ScoreZones(testtypes.SplitZones(res.FullText))
}

// Parse extracts the side-by-side velocity table first, then inline labeled
// values, and grades each against SRU stenosis criteria.
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
