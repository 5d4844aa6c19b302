package coronary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/medscan/internal/report"
)

const cathReport = `CARDIAC CATHETERIZATION / CORONARY ANGIOGRAM

HEMODYNAMICS:
RA m: 8
RV 30/8
PA 25/12
PCW 11
AO 120/80
LV 130/12
LVEDP 14

CORONARY ANATOMY:
Left main: 30%
LAD 70-80% stenosis, heavily calcified
RCA CTO

IVUS FINDINGS:
MLA 2.5 mm2, calcium arc 270 degrees, area stenosis 80%

DIAGNOSIS:
Three vessel coronary artery disease.
`

func extraction(text string) *report.ExtractionResult {
	return &report.ExtractionResult{
		InputMode: report.InputText,
		FullText:  text,
		Pages: []report.ExtractedPage{
			{PageNumber: 1, Text: text, Method: report.MethodDirectInput, Confidence: 1.0},
		},
	}
}

func TestDetect(t *testing.T) {
	h := New()

	assert.GreaterOrEqual(t, h.Detect(extraction(cathReport)), 0.7)
	assert.Less(t, h.Detect(extraction("COMPLETE BLOOD COUNT\nWBC 6.8 K/uL")), 0.3)
}

func TestDetectCMRSuppression(t *testing.T) {
	h := New()

	cath := "HEMODYNAMICS:\nRV 30/8\nPA 25/12"
	cmr := cath + "\nCardiac MRI with late gadolinium enhancement. T1 mapping normal."

	base := h.Detect(extraction(cath))
	suppressed := h.Detect(extraction(cmr))

	assert.GreaterOrEqual(t, base, 0.7)
	assert.Less(t, suppressed, base)
	assert.Less(t, suppressed, 0.1)
}

func TestParseHemodynamics(t *testing.T) {
	h := New()

	parsed := h.Parse(extraction(cathReport), report.Demographics{})
	require.NotNil(t, parsed)
	assert.Equal(t, "coronary_diagram", parsed.TestType)

	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "RV_systolic")
	assert.InDelta(t, 30, byCode["RV_systolic"].Value, 1e-9)
	assert.Equal(t, report.SeverityNormal, byCode["RV_systolic"].Status)

	require.Contains(t, byCode, "RV_diastolic")
	assert.InDelta(t, 8, byCode["RV_diastolic"].Value, 1e-9)

	require.Contains(t, byCode, "PA_systolic")
	assert.Equal(t, report.SeverityNormal, byCode["PA_systolic"].Status)

	require.Contains(t, byCode, "AO_systolic")
	assert.InDelta(t, 120, byCode["AO_systolic"].Value, 1e-9)

	require.Contains(t, byCode, "RA_mean")
	assert.InDelta(t, 8, byCode["RA_mean"].Value, 1e-9)
	assert.Equal(t, report.SeverityNormal, byCode["RA_mean"].Status)

	require.Contains(t, byCode, "PCWP")
	assert.InDelta(t, 11, byCode["PCWP"].Value, 1e-9)

	require.Contains(t, byCode, "LVEDP")
	assert.InDelta(t, 14, byCode["LVEDP"].Value, 1e-9)
	assert.Equal(t, report.SeverityMild, byCode["LVEDP"].Status)
	assert.Equal(t, report.DirectionAbove, byCode["LVEDP"].Direction)
}

func TestParseStenoses(t *testing.T) {
	h := New()

	parsed := h.Parse(extraction(cathReport), report.Demographics{})
	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "stenosis_Left Main")
	assert.InDelta(t, 30, byCode["stenosis_Left Main"].Value, 1e-9)
	assert.Equal(t, report.SeverityMild, byCode["stenosis_Left Main"].Status)

	// "70-80%" collapses to the midpoint.
	require.Contains(t, byCode, "stenosis_LAD")
	assert.InDelta(t, 75, byCode["stenosis_LAD"].Value, 1e-9)
	assert.Equal(t, report.SeveritySevere, byCode["stenosis_LAD"].Status)

	// CTO counts as a 100% stenosis.
	require.Contains(t, byCode, "stenosis_RCA")
	assert.InDelta(t, 100, byCode["stenosis_RCA"].Value, 1e-9)
	assert.Equal(t, report.SeveritySevere, byCode["stenosis_RCA"].Status)
}

func TestParseIVUS(t *testing.T) {
	h := New()

	parsed := h.Parse(extraction(cathReport), report.Demographics{})
	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "MLA")
	assert.InDelta(t, 2.5, byCode["MLA"].Value, 1e-9)
	assert.Equal(t, report.SeverityModerate, byCode["MLA"].Status)
	assert.Equal(t, report.DirectionBelow, byCode["MLA"].Direction)

	require.Contains(t, byCode, "calcium_arc")
	assert.InDelta(t, 270, byCode["calcium_arc"].Value, 1e-9)

	require.Contains(t, byCode, "ivus_obstruction")
	assert.InDelta(t, 80, byCode["ivus_obstruction"].Value, 1e-9)

	require.NotEmpty(t, parsed.Findings)
	found := false
	for _, f := range parsed.Findings {
		if strings.Contains(f, "Three vessel") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNormalizeVessel(t *testing.T) {
	assert.Equal(t, "LAD", normalizeVessel("left anterior descending"))
	assert.Equal(t, "Left Main", normalizeVessel("Left  main"))
	assert.Equal(t, "RCA", normalizeVessel("right coronary artery"))
	assert.Equal(t, "SVG", normalizeVessel("svg"))
	assert.Equal(t, "OM1", normalizeVessel("om1"))
}
