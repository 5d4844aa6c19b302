package stress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

const treadmillReport = `EXERCISE TREADMILL TEST

INDICATION: Chest pain, rule out ischemia.

PROTOCOL: Bruce protocol.

EXERCISE DATA:
Exercise duration: 9.5 minutes
Exercise capacity: 10.1 METs
Resting heart rate: 72 bpm
Peak heart rate: 162 bpm
Achieved 94% of max predicted heart rate
Resting blood pressure: 124/80
Peak blood pressure: 188/84

ST ANALYSIS:
ST depression: 0.4 mm, upsloping.

Duke treadmill score: 8

CONCLUSION:
1. Good exercise capacity.
2. No ischemic ECG changes.
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

	assert.GreaterOrEqual(t, h.Detect(extraction(treadmillReport)), 0.7)
	assert.Less(t, h.Detect(extraction("COMPLETE BLOOD COUNT\nWBC 6.8 K/uL")), 0.3)
}

func TestClassifySubtype(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"treadmill ecg only", "Exercise treadmill test, Bruce protocol, 10 METs achieved.", "exercise_treadmill_test"},
		{"pharma without imaging defaults to spect", "Lexiscan stress test performed. Regadenoson 0.4 mg injected.", "pharma_spect_stress"},
		{"pharma spect", "Regadenoson stress with Tc-99m sestamibi SPECT imaging.", "pharma_spect_stress"},
		{"exercise spect", "Exercise treadmill stress with sestamibi myocardial perfusion imaging.", "exercise_spect_stress"},
		{"pharma pet", "Rb-82 cardiac PET with regadenoson. Global coronary flow reserve 2.4.", "pharma_pet_stress"},
		{"exercise pet", "Supine bicycle exercise with N-13 ammonia PET perfusion.", "exercise_pet_stress"},
		{"pharma stress echo", "Dobutamine stress echocardiogram, peak dose 40 mcg/kg/min.", "pharma_stress_echo"},
		{"exercise stress echo", "Exercise stress echocardiogram with treadmill, wall motion at stress normal.", "exercise_stress_echo"},
		{"pet wins over spect", "SPECT was nondiagnostic; repeat Rb-82 PET/CT with adenosine performed.", "pharma_pet_stress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, display := classifySubtype(tt.text)
			assert.Equal(t, tt.want, id)
			assert.NotEmpty(t, display)
		})
	}
}

func TestParseTreadmill(t *testing.T) {
	h := New()

	parsed := h.Parse(extraction(treadmillReport), report.Demographics{Sex: report.SexMale})
	require.NotNil(t, parsed)
	assert.Equal(t, "exercise_treadmill_test", parsed.TestType)
	assert.Equal(t, "Exercise Treadmill Test", parsed.TestTypeDisplay)

	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "METs")
	assert.InDelta(t, 10.1, byCode["METs"].Value, 1e-9)
	assert.Equal(t, report.SeverityNormal, byCode["METs"].Status)

	require.Contains(t, byCode, "Peak_HR")
	assert.InDelta(t, 162, byCode["Peak_HR"].Value, 1e-9)

	require.Contains(t, byCode, "MPHR%")
	assert.InDelta(t, 94, byCode["MPHR%"].Value, 1e-9)
	assert.Equal(t, report.SeverityNormal, byCode["MPHR%"].Status)

	require.Contains(t, byCode, "ST_Depression")
	assert.Equal(t, report.SeverityNormal, byCode["ST_Depression"].Status)

	require.Contains(t, byCode, "Duke_Score")
	assert.Equal(t, report.SeverityNormal, byCode["Duke_Score"].Status)

	require.Contains(t, byCode, "Exercise_Duration")
	assert.InDelta(t, 9.5, byCode["Exercise_Duration"].Value, 1e-9)

	require.NotEmpty(t, parsed.Findings)
	assert.Empty(t, parsed.Warnings)
}

func TestParsePoorCapacity(t *testing.T) {
	h := New()

	text := `EXERCISE TREADMILL TEST
Exercise duration: 4.2 minutes
Exercise capacity: 4.0 METs
Peak heart rate: 118 bpm
Achieved 70% of max predicted heart rate
ST depression: 1.5 mm horizontal
Duke treadmill score: -12
`
	parsed := h.Parse(extraction(text), report.Demographics{})
	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "METs")
	assert.Equal(t, report.SeverityModerate, byCode["METs"].Status)
	assert.Equal(t, report.DirectionBelow, byCode["METs"].Direction)

	require.Contains(t, byCode, "MPHR%")
	assert.Equal(t, report.SeverityModerate, byCode["MPHR%"].Status)

	require.Contains(t, byCode, "ST_Depression")
	assert.Equal(t, report.SeverityModerate, byCode["ST_Depression"].Status)
	assert.Equal(t, report.DirectionAbove, byCode["ST_Depression"].Direction)

	require.Contains(t, byCode, "Duke_Score")
	assert.Equal(t, report.SeveritySevere, byCode["Duke_Score"].Status)
}

func TestParsePET(t *testing.T) {
	h := New()

	text := `CARDIAC PET/CT MYOCARDIAL PERFUSION STUDY

Pharmacologic stress with regadenoson (Lexiscan).

FLOW QUANTIFICATION:
Rest MBF: 0.9
Stress MBF: 2.1
CFR (global): 2.3
LVEF: 62 %

IMPRESSION:
1. Normal perfusion and flow reserve.
`
	parsed := h.Parse(extraction(text), report.Demographics{Sex: report.SexFemale})
	assert.Equal(t, "pharma_pet_stress", parsed.TestType)

	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "CFR")
	assert.InDelta(t, 2.3, byCode["CFR"].Value, 1e-9)
	assert.Equal(t, report.SeverityNormal, byCode["CFR"].Status)

	require.Contains(t, byCode, "Stress_MBF")
	assert.Equal(t, report.SeverityNormal, byCode["Stress_MBF"].Status)

	require.Contains(t, byCode, "LVEF")
	assert.Equal(t, report.SeverityNormal, byCode["LVEF"].Status)

	// Treadmill-only codes never come out of a PET parse.
	assert.NotContains(t, byCode, "METs")
}

func TestParseReducedFlowReserve(t *testing.T) {
	h := New()

	text := `CARDIAC PET RB-82 STUDY with adenosine.
CFR (global): 1.2
Stress MBF: 1.3
`
	parsed := h.Parse(extraction(text), report.Demographics{})
	byCode := map[string]report.ParsedMeasurement{}
	for _, m := range parsed.Measurements {
		byCode[m.Code] = m
	}

	require.Contains(t, byCode, "CFR")
	assert.Equal(t, report.SeverityModerate, byCode["CFR"].Status)
	assert.Equal(t, report.DirectionBelow, byCode["CFR"].Direction)

	require.Contains(t, byCode, "Stress_MBF")
	assert.Equal(t, report.SeverityModerate, byCode["Stress_MBF"].Status)
}

func TestParseNoMeasurements(t *testing.T) {
	h := New()

	parsed := h.Parse(extraction("Stress test scheduled for next week."), report.Demographics{})
	assert.Empty(t, parsed.Measurements)
	assert.Contains(t, parsed.Warnings, testtypes.NoMeasurementsWarning)
}
