// Package coronary handles coronary angiogram / cath lab diagram reports:
// hemodynamic pressure tables, per-vessel stenosis annotations, and IVUS
// findings transcribed from hand-drawn forms.
package coronary

import (
	"strings"

	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

var detectionTiers = testtypes.KeywordTiers{
	Strong: []string{
		"coronary diagram", "coronary angiogram", "cardiac catheterization",
		"cath lab", "hemodynamics", "coronary angiography",
	},
	Moderate: []string{
		"lvedp", "ivus", "guide catheter", "guide wire", "ventriculogram",
		"pcwp", "pcp", "pci", "left main", "non-obstructive cad",
		"obstructive cad", "xb4", "xb3.5", "jr4", "jl4", "jl4.5",
		"sion blue", "edp",
	},
	Weak: []string{
		"rca", "lad", "lcx", "stenosis", "angiogram", "coronary artery",
		"catheter", "stent", "large root", "0.014", "phillips",
		"medical rx", "findings", "diagnosis",
	},
}

// Cardiac MRI reports share vocabulary with cath reports (hemodynamics,
// vessel names). When CMR-specific terms appear, the score is suppressed
// proportionally.
var cmrNegatives = []string{
	"cardiac mri", "cardiac magnetic", "cmr", "mr cardiac",
	"mri cardiac", "mri heart", "late gadolinium", "t1 mapping",
	"t2 mapping", "delayed enhancement", "gadolinium",
	"cine imaging", "t2 stir",
}

var sectionSplitter = testtypes.NewSectionSplitter([]string{
	`HEMODYNAMICS?`,
	`CORONARY\s+(?:ANATOMY|ANGIOGRAPH?Y|FINDINGS?)`,
	`LEFT\s+(?:CORONARY|MAIN|SYSTEM)`,
	`RIGHT\s+(?:CORONARY|SYSTEM)`,
	`VENTRICULOGRA(?:M|PHY)`,
	`IVUS(?:\s+FINDINGS?)?`,
	`FINDINGS?`,
	`DIAGNOSIS|DX`,
	`EQUIPMENT|CATHETERS?`,
	`PROCEDURE`,
	`CONCLUSION|IMPRESSION|SUMMARY`,
})

var findingsExtractor = testtypes.NewFindingsExtractor(
	`DIAGNOSIS|DX|CONCLUSION|IMPRESSION|SUMMARY|FINDINGS`)

// Handler implements the coronary diagram family.
type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) ID() string          { return "coronary_diagram" }
func (h *Handler) DisplayName() string { return "Coronary Diagram" }
func (h *Handler) Category() string    { return "cardiac" }

func (h *Handler) Keywords() []string {
	return []string{
		"coronary diagram", "coronary angiogram", "cath lab",
		"cardiac catheterization", "hemodynamics", "rca", "lad", "lcx",
		"left main", "stenosis", "ivus", "lvedp", "guide catheter",
		"guide wire", "angiogram", "ventriculogram", "pci", "pcwp", "pcp",
		"coronary artery",
	}
}

func (h *Handler) Detect(res *report.ExtractionResult) float64 {
	z := testtypes.SplitZones(res.FullText)
	score := detectionTiers.ScoreZones(z)

	cmrCount := 0
	for _, k := range cmrNegatives {
		if z.Weight(k) >= 1.0 {
			cmrCount++
		}
	}
	if cmrCount > 0 {
		factor := 1.0 - float64(cmrCount)*0.3
		if factor < 0 {
			factor = 0
		}
		score *= factor
	}

	return score
}

// Parse grades all vessel stenoses against the shared percentage range
// regardless of which vessel carries them.
func (h *Handler) Parse(res *report.ExtractionResult, demo report.Demographics) *report.ParsedReport {
	raw := extractMeasurements(res)

	measurements := make([]report.ParsedMeasurement, 0, len(raw))
	for _, m := range raw {
		refCode := m.Code
		if strings.HasPrefix(refCode, "stenosis_") {
			refCode = "stenosis_pct"
		}
		c := referenceRanges.Classify(refCode, m.Value, demo.Sex)
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
		Findings:            findingsExtractor.Extract(res.FullText),
		Warnings:            warnings,
	}
}

func (h *Handler) ReferenceRanges() map[string]testtypes.RangeInfo {
	return referenceRanges.RangeInfoMap()
}

func (h *Handler) Glossary() map[string]string { return glossary }
