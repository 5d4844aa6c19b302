// Package labs handles blood laboratory reports: chemistry, CBC, lipids,
// thyroid, iron studies, HbA1c, and urinalysis numerics.
package labs

import (
	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

var detectionTiers = testtypes.KeywordTiers{
	Strong: []string{
		"laboratory results", "lab results", "lab report",
		"complete blood count", "comprehensive metabolic panel",
		"basic metabolic panel", "lipid panel", "chemistry panel",
		"metabolic panel", "thyroid panel", "iron studies",
		"hematology", "haematology", "cbc with differential",
		"complete haemogram", "complete hemogram",
	},
	Moderate: []string{
		"cbc", "cmp", "bmp", "glucose", "creatinine", "hemoglobin",
		"haemoglobin", "hematocrit", "haematocrit", "wbc", "rbc",
		"potassium", "sodium", "cholesterol", "triglycerides", "tsh",
		"hba1c", "a1c", "alt", "ast", "bun", "egfr", "ferritin", "albumin",
		"bilirubin", "platelet", "hdl", "ldl", "alkaline phosphatase",
		"haemogram", "leucocyte", "erythrocyte",
	},
	Weak: []string{
		"mg/dl", "g/dl", "meq/l", "k/ul", "u/l", "ng/ml", "ng/dl",
		"gm/dl", "gm/ dl", "reference range", "flag", "abnormal",
		"out of range", "/cumm", "lakh/",
	},
}

var sectionSplitter = testtypes.NewSectionSplitter([]string{
	`CHEMISTRY|CHEM\s+PANEL`,
	`HA?EMATOLOGY`,
	`(?:COMPLETE\s+)?(?:BLOOD\s+COUNT|HA?EMOGRAM)|CBC`,
	`(?:COMPREHENSIVE|BASIC)\s+METABOLIC\s+PANEL|CMP|BMP`,
	`LIPID\s+(?:PANEL|PROFILE)`,
	`THYROID\s+(?:PANEL|FUNCTION|STUDIES)`,
	`IRON\s+STUDIES|IRON\s+PANEL`,
	`LIVER\s+(?:FUNCTION|PANEL|ENZYMES)|HEPATIC\s+(?:FUNCTION|PANEL)`,
	`RENAL\s+(?:FUNCTION|PANEL)|KIDNEY\s+FUNCTION`,
	`URINALYSIS|UA\b`,
	`DIFFERENTIAL\s+LE[U]?COCYTE\s+COUNT`,
	`PERIPHERAL\s+SMEAR`,
	`COMMENT|INTERPRETATION|NOTE|CLINICAL\s+NOTE|IMPRESSION|ADVISED`,
})

var findingsExtractor = testtypes.NewFindingsExtractor(
	`COMMENT|INTERPRETATION|NOTE|CLINICAL\s+NOTE|IMPRESSION|ADVISED`)

// Handler implements the lab-results family.
type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) ID() string          { return "lab_results" }
func (h *Handler) DisplayName() string { return "Blood Lab Results" }
func (h *Handler) Category() string    { return "laboratory" }

func (h *Handler) Keywords() []string {
	return []string{
		"laboratory results", "lab results", "complete blood count",
		"comprehensive metabolic panel", "basic metabolic panel",
		"lipid panel", "cbc", "cmp", "bmp", "glucose", "creatinine",
		"hemoglobin", "hematocrit", "cholesterol", "triglycerides",
		"tsh", "hba1c", "ferritin",
	}
}

func (h *Handler) Detect(res *report.ExtractionResult) float64 {
	return detectionTiers.ScoreZones(testtypes.SplitZones(res.FullText))
}

// Parse runs table-first extraction, regional unit normalization, then
// classifies each analyte against sex-qualified reference ranges.
func (h *Handler) Parse(res *report.ExtractionResult, demo report.Demographics) *report.ParsedReport {
	raw := normalizeUnits(defSet.Extract(res))

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
		Findings:            findingsExtractor.Extract(res.FullText),
		Warnings:            warnings,
	}
}

func (h *Handler) ReferenceRanges() map[string]testtypes.RangeInfo {
	return referenceRanges.RangeInfoMap()
}

func (h *Handler) Glossary() map[string]string { return glossary }
