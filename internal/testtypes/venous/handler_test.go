package venous

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/medscan/internal/report"
)

const venousReport = `LOWER EXTREMITY VENOUS DUPLEX / REFLUX STUDY

INDICATION: Left leg varicose veins and aching.

            Right                    Leg         Left
            Reflux Time  Diameter   Mapping    Reflux Time  Diameter
            0 ms         0.48 mm    GSV Prox   131 ms       0.46 mm
            0 ms         0.42 mm    GSV Mid    1350 ms      5.1 mm
            0 ms         0.38 mm    GSV Dist   820 ms       4.4 mm

All deep veins are compressible with phasic flow and normal augmentation.

IMPRESSION:
1. Significant reflux in the left mid greater saphenous vein.
2. No evidence of deep vein thrombosis.
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

	assert.GreaterOrEqual(t, h.Detect(extraction(venousReport)), 0.7)
	assert.Less(t, h.Detect(extraction("Exercise treadmill test, Bruce protocol.")), 0.3)
}

func TestParseGSVTable(t *testing.T) {
	h := New()

	parsed := h.Parse(extraction(venousReport), report.Demographics{})
	require.NotNil(t, parsed)
	assert.Equal(t, "venous_doppler", parsed.TestType)

	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "R_GSV_Prox_Reflux")
	assert.InDelta(t, 0, byCode["R_GSV_Prox_Reflux"].Value, 1e-9)
	assert.Equal(t, report.SeverityNormal, byCode["R_GSV_Prox_Reflux"].Status)

	// 131 ms is still under the 500 ms cutoff.
	require.Contains(t, byCode, "L_GSV_Prox_Reflux")
	assert.InDelta(t, 131, byCode["L_GSV_Prox_Reflux"].Value, 1e-9)
	assert.Equal(t, report.SeverityNormal, byCode["L_GSV_Prox_Reflux"].Status)

	require.Contains(t, byCode, "L_GSV_Mid_Reflux")
	assert.InDelta(t, 1350, byCode["L_GSV_Mid_Reflux"].Value, 1e-9)
	assert.Equal(t, report.SeverityModerate, byCode["L_GSV_Mid_Reflux"].Status)
	assert.Equal(t, report.DirectionAbove, byCode["L_GSV_Mid_Reflux"].Direction)
	assert.Equal(t, "< 500 ms", byCode["L_GSV_Mid_Reflux"].ReferenceRange)

	require.Contains(t, byCode, "L_GSV_Dist_Reflux")
	assert.Equal(t, report.SeverityMild, byCode["L_GSV_Dist_Reflux"].Status)

	require.Contains(t, byCode, "L_GSV_Mid_Diam")
	assert.InDelta(t, 5.1, byCode["L_GSV_Mid_Diam"].Value, 1e-9)
	assert.Equal(t, report.SeverityMild, byCode["L_GSV_Mid_Diam"].Status)

	require.Contains(t, byCode, "R_GSV_Dist_Diam")
	assert.Equal(t, report.SeverityNormal, byCode["R_GSV_Dist_Diam"].Status)

	require.NotEmpty(t, parsed.Findings)
}

func TestSevereReflux(t *testing.T) {
	h := New()

	text := `VENOUS DUPLEX
            0 ms  0.44 mm  GSV Prox  2400 ms  9.2 mm
`
	parsed := h.Parse(extraction(text), report.Demographics{})
	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "L_GSV_Prox_Reflux")
	assert.Equal(t, report.SeveritySevere, byCode["L_GSV_Prox_Reflux"].Status)

	require.Contains(t, byCode, "L_GSV_Prox_Diam")
	assert.Equal(t, report.SeveritySevere, byCode["L_GSV_Prox_Diam"].Status)
}

func TestParseNoMeasurements(t *testing.T) {
	h := New()

	parsed := h.Parse(extraction("Venous duplex ordered."), report.Demographics{})
	assert.Empty(t, parsed.Measurements)
	assert.NotEmpty(t, parsed.Warnings)
}
