// Package stress handles exercise and pharmacologic stress test reports:
// treadmill ECG, SPECT and PET nuclear perfusion, and stress echo, with
// subtype resolution across the pharmacologic/modality grid.
package stress

import (
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

var detectionTiers = testtypes.KeywordTiers{
	Strong: []string{
		"stress test", "exercise stress test", "exercise treadmill test",
		"exercise tolerance test", "treadmill stress", "cardiac stress test",
		"exercise stress echocardiogram", "bruce protocol",
		"modified bruce protocol", "graded exercise test", "exercise ecg",
		"exercise ekg", "exercise electrocardiogram", "treadmill exercise test",
		"nuclear stress test", "myocardial perfusion imaging",
		"pharmacologic stress", "cardiac pet", "myocardial blood flow",
		"coronary flow reserve", "stress echocardiogram", "dobutamine stress",
	},
	Moderate: []string{
		"mets achieved", "mets attained", "metabolic equivalents",
		"peak heart rate", "target heart rate", "max predicted heart rate",
		"mphr", "% predicted", "st depression", "st elevation",
		"st segment changes", "st changes", "duke treadmill score",
		"rate pressure product", "double product", "chronotropic",
		"exercise capacity", "exercise duration", "treadmill time",
		"exercise stage", "recovery phase", "peak exercise",
		"spect", "sestamibi", "technetium", "tc-99m", "myoview", "thallium",
		"pet/ct", "pet-ct", "rb-82", "rubidium", "positron",
		"lexiscan", "regadenoson", "adenosine", "dipyridamole", "dobutamine",
		"wall motion at stress", "bicycle stress", "stress echo",
	},
	Weak: []string{
		"treadmill", "bruce", "angina", "chest pain during exercise",
		"dyspnea on exertion", "exercise", "mets", "arrhythmia", "pvcs",
		"perfusion", "ischemia", "nuclear",
	},
}

var sectionSplitter = testtypes.NewSectionSplitter([]string{
	`INDICATION|REASON\s+FOR\s+(?:TEST|STUDY)`,
	`PROTOCOL|EXERCISE\s+PROTOCOL|PROCEDURE`,
	`BASELINE|RESTING|PRE[- ]?EXERCISE`,
	`EXERCISE\s+(?:DATA|RESPONSE|RESULTS|PHASE)`,
	`HEMODYNAMIC\s+(?:DATA|RESPONSE)`,
	`ECG\s+(?:FINDINGS|CHANGES|RESPONSE|INTERPRETATION)`,
	`EKG\s+(?:FINDINGS|CHANGES|RESPONSE|INTERPRETATION)`,
	`ELECTROCARDIOGRAPHIC\s+(?:FINDINGS|CHANGES|RESPONSE)`,
	`ST\s+(?:SEGMENT\s+)?(?:ANALYSIS|CHANGES)`,
	`SYMPTOMS|SYMPTOM\s+RESPONSE`,
	`ARRHYTHMIA|RHYTHM`,
	`RECOVERY|POST[- ]?EXERCISE`,
	`PERFUSION|PERFUSION\s+(?:FINDINGS|IMAGES|RESULTS)`,
	`GATED\s+(?:IMAGES|SPECT|DATA)`,
	`WALL\s+MOTION`,
	`STRESS\s+(?:IMAGES|DATA|RESULTS)`,
	`REST\s+(?:IMAGES|DATA|RESULTS)`,
	`FLOW\s+(?:DATA|QUANTIFICATION|RESERVE)`,
	`CONCLUSION|IMPRESSION|SUMMARY|INTERPRETATION|FINDINGS`,
})

// Handler implements the stress test family.
type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) ID() string          { return "stress_test" }
func (h *Handler) DisplayName() string { return "Stress Test" }
func (h *Handler) Category() string    { return "cardiac" }

func (h *Handler) Keywords() []string {
	return []string{
		"stress test", "exercise stress", "treadmill test",
		"exercise tolerance test", "bruce protocol", "modified bruce",
		"exercise treadmill", "cardiac stress", "exercise ecg",
		"exercise ekg", "graded exercise test", "mets", "peak heart rate",
		"target heart rate", "st depression", "duke treadmill",
		"nuclear stress", "myocardial perfusion", "spect", "sestamibi",
		"cardiac pet", "pet/ct", "rb-82", "rubidium",
		"coronary flow reserve", "lexiscan", "regadenoson",
		"pharmacologic stress", "stress echocardiogram", "stress echo",
		"dobutamine stress", "bicycle stress",
	}
}

func (h *Handler) Detect(res *report.ExtractionResult) float64 {
	return detectionTiers.ScoreZones(testtypes.SplitZones(res.FullText))
}

// ResolveSubtype refines the generic stress type into the pharma/exercise x
// modality grid.
func (h *Handler) ResolveSubtype(res *report.ExtractionResult) (id, display string, ok bool) {
	id, display = classifySubtype(res.FullText)
	return id, display, true
}

// Parse resolves the subtype first: PET studies use the flow-quantification
// definitions, everything else the treadmill/SPECT/echo set.
func (h *Handler) Parse(res *report.ExtractionResult, demo report.Demographics) *report.ParsedReport {
	subtypeID, subtypeDisplay := classifySubtype(res.FullText)

	defs, ranges := defSet, referenceRanges
	if isPETSubtype(subtypeID) {
		defs, ranges = petDefs, petReferenceRanges
	}

	raw := defs.Extract(res)
	measurements := make([]report.ParsedMeasurement, 0, len(raw))
	for _, m := range raw {
		c := ranges.Classify(m.Code, m.Value, demo.Sex)
		measurements = append(measurements, report.Classified(m, c))
	}

	var warnings []string
	if len(measurements) == 0 {
		warnings = append(warnings, testtypes.NoMeasurementsWarning)
	}

	return &report.ParsedReport{
		TestType:            subtypeID,
		TestTypeDisplay:     subtypeDisplay,
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
