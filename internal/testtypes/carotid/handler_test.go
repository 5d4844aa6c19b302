package carotid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/medscan/internal/report"
)

const carotidReport = `CAROTID DOPPLER ULTRASOUND

INDICATION: Left-sided bruit.

          Right               Carotid             Left
          PSV      EDV                       PSV      EDV
          63.8     4.0    Dist CCA          66.9     7.4
          82.0    16.8    Prox ICA          96.6    14.9
          75.2    20.1    Mid ICA          140.3    30.5
          1.3  ICA/CCA velocity ratio  2.1

Right CCA intima-media thickness: 0.7 mm
Left CCA intima-media thickness: 1.0 mm

IMPRESSION:
1. Moderate stenosis of the left mid internal carotid artery.
2. No hemodynamically significant stenosis on the right.
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

	assert.GreaterOrEqual(t, h.Detect(extraction(carotidReport)), 0.7)
	assert.Less(t, h.Detect(extraction("COMPLETE BLOOD COUNT\nWBC 6.8 K/uL")), 0.3)
}

func TestParseSideBySideTable(t *testing.T) {
	h := New()

	parsed := h.Parse(extraction(carotidReport), report.Demographics{})
	require.NotNil(t, parsed)
	assert.Equal(t, "carotid_doppler", parsed.TestType)

	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "R_Dist_CCA_PSV")
	assert.InDelta(t, 63.8, byCode["R_Dist_CCA_PSV"].Value, 1e-9)
	assert.Equal(t, report.SeverityNormal, byCode["R_Dist_CCA_PSV"].Status)

	require.Contains(t, byCode, "L_Dist_CCA_PSV")
	assert.InDelta(t, 66.9, byCode["L_Dist_CCA_PSV"].Value, 1e-9)

	require.Contains(t, byCode, "R_Prox_ICA_PSV")
	assert.InDelta(t, 82.0, byCode["R_Prox_ICA_PSV"].Value, 1e-9)
	assert.Equal(t, report.SeverityNormal, byCode["R_Prox_ICA_PSV"].Status)

	// 140.3 cm/s sits in the 50-69% stenosis band.
	require.Contains(t, byCode, "L_Mid_ICA_PSV")
	assert.InDelta(t, 140.3, byCode["L_Mid_ICA_PSV"].Value, 1e-9)
	assert.Equal(t, report.SeverityModerate, byCode["L_Mid_ICA_PSV"].Status)
	assert.Equal(t, report.DirectionAbove, byCode["L_Mid_ICA_PSV"].Direction)
	assert.Equal(t, "< 125 cm/s", byCode["L_Mid_ICA_PSV"].ReferenceRange)

	require.Contains(t, byCode, "R_ICA_CCA_Ratio")
	assert.InDelta(t, 1.3, byCode["R_ICA_CCA_Ratio"].Value, 1e-9)
	assert.Equal(t, report.SeverityNormal, byCode["R_ICA_CCA_Ratio"].Status)

	require.Contains(t, byCode, "L_ICA_CCA_Ratio")
	assert.Equal(t, report.SeverityModerate, byCode["L_ICA_CCA_Ratio"].Status)

	require.Contains(t, byCode, "R_IMT")
	assert.Equal(t, report.SeverityNormal, byCode["R_IMT"].Status)

	require.Contains(t, byCode, "L_IMT")
	assert.InDelta(t, 1.0, byCode["L_IMT"].Value, 1e-9)
	assert.Equal(t, report.SeverityMild, byCode["L_IMT"].Status)

	require.NotEmpty(t, parsed.Findings)
	assert.Contains(t, parsed.Findings[0], "Moderate stenosis")
}

func TestParseSevereStenosis(t *testing.T) {
	h := New()

	text := `CAROTID DUPLEX
          280.0    110.0    Prox ICA          90.0    20.0
          4.5  ICA/CCA velocity ratio  1.2
`
	parsed := h.Parse(extraction(text), report.Demographics{})
	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "R_Prox_ICA_PSV")
	assert.Equal(t, report.SeveritySevere, byCode["R_Prox_ICA_PSV"].Status)

	require.Contains(t, byCode, "R_Prox_ICA_EDV")
	assert.Equal(t, report.SeveritySevere, byCode["R_Prox_ICA_EDV"].Status)

	require.Contains(t, byCode, "R_ICA_CCA_Ratio")
	assert.Equal(t, report.SeveritySevere, byCode["R_ICA_CCA_Ratio"].Status)

	require.Contains(t, byCode, "L_Prox_ICA_PSV")
	assert.Equal(t, report.SeverityNormal, byCode["L_Prox_ICA_PSV"].Status)
}

func TestExtractTabularVelocitiesBounds(t *testing.T) {
	// Out-of-range numbers (page artifacts) are dropped, in-range kept.
	text := "999.9  4.0  Dist CCA  66.9  7.4"
	got := extractTabularVelocities(text, nil)

	codes := map[string]bool{}
	for _, m := range got {
		codes[m.Code] = true
	}
	assert.False(t, codes["R_Dist_CCA_PSV"])
	assert.True(t, codes["R_Dist_CCA_EDV"])
	assert.True(t, codes["L_Dist_CCA_PSV"])
}
