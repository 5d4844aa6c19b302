// Package echo handles transthoracic echocardiogram reports.
package echo

import (
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

var detectionTiers = testtypes.KeywordTiers{
	Strong: []string{
		"echocardiogram", "echocardiography", "echocardiographic",
		"transthoracic echo", "transesophageal echo", "2d echo",
		"doppler echo", "stress echo findings",
	},
	Moderate: []string{
		"ejection fraction", "lvef", "lvidd", "lvids", "ivsd", "lvpwd",
		"left ventricle", "left atrium", "mitral valve", "aortic valve",
		"tricuspid valve", "pulmonic valve", "wall motion",
		"diastolic function", "regurgitation", "valve area", "tapse",
		"pericardial effusion",
	},
	Weak: []string{
		"cm/s", "mmhg", "m/s", "doppler", "color flow", "systolic",
		"diastolic", "ml/m2",
	},
}

var sectionSplitter = testtypes.NewSectionSplitter([]string{
	`INDICATION|REASON\s+FOR\s+(?:TEST|STUDY)`,
	`LEFT\s+VENTRICLE|LV\s+(?:FUNCTION|SIZE)`,
	`RIGHT\s+VENTRICLE|RV\s+(?:FUNCTION|SIZE)`,
	`LEFT\s+ATRIUM`,
	`RIGHT\s+ATRIUM`,
	`MITRAL\s+VALVE`,
	`AORTIC\s+VALVE|AORTA|AORTIC\s+ROOT`,
	`TRICUSPID\s+VALVE`,
	`PULMONIC\s+VALVE|PULMONARY\s+(?:VALVE|ARTERY)`,
	`PERICARDIUM`,
	`DIASTOLIC\s+FUNCTION`,
	`MEASUREMENTS`,
	`CONCLUSION|IMPRESSION|SUMMARY|INTERPRETATION|FINDINGS`,
})

// Handler implements the echocardiogram family.
type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) ID() string          { return "echocardiogram" }
func (h *Handler) DisplayName() string { return "Echocardiogram" }
func (h *Handler) Category() string    { return "cardiac" }

func (h *Handler) Keywords() []string {
	return []string{
		"echocardiogram", "echocardiography", "echo", "transthoracic",
		"ejection fraction", "lvef", "mitral valve", "aortic valve",
		"diastolic function", "wall motion",
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
