package testtypes

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/medscan/internal/report"
)

func testDefs() *DefSet {
	return NewDefSet([]MeasurementDef{
		{
			Name: "Hemoglobin", Code: "HGB", Unit: "g/dL",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)ha?emoglobin[\s:=]+\s*(?P<value>\d+\.?\d*)`),
				regexp.MustCompile(`(?i)\bHGB\b[\s:=]+\s*(?P<value>\d+\.?\d*)`),
			},
			TableAliases: []string{"hemoglobin", "haemoglobin", "hgb", "hb"},
			Min:          3.0, Max: 25.0,
		},
		{
			Name: "Glucose", Code: "GLU", Unit: "mg/dL",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)glucose[\s:=]+\s*(?P<value>\d+\.?\d*)`),
			},
			TableAliases: []string{"glucose", "glu"},
			Min:          10.0, Max: 900.0,
		},
	})
}

func TestExtractFromText(t *testing.T) {
	defs := testDefs()
	pages := []report.ExtractedPage{
		{PageNumber: 1, Text: "Chemistry panel\nGlucose: 105 mg/dL"},
		{PageNumber: 2, Text: "CBC\nHemoglobin: 13.4 g/dL"},
	}
	full := pages[0].Text + "\n" + pages[1].Text

	got := defs.ExtractFromText(full, pages, map[string]bool{})
	require.Len(t, got, 2)

	byCode := map[string]report.RawMeasurement{}
	for _, m := range got {
		byCode[m.Code] = m
	}
	assert.InDelta(t, 13.4, byCode["HGB"].Value, 1e-9)
	require.NotNil(t, byCode["HGB"].PageNumber)
	assert.Equal(t, 2, *byCode["HGB"].PageNumber)
	assert.InDelta(t, 105.0, byCode["GLU"].Value, 1e-9)
}

func TestExtractFromTextSanityBoundsDiscard(t *testing.T) {
	defs := testDefs()

	// 134 g/dL is outside bounds: the candidate is dropped, not clamped.
	got := defs.ExtractFromText("Hemoglobin: 134", nil, map[string]bool{})
	assert.Empty(t, got)
}

func TestExtractFromTextSkipsSeen(t *testing.T) {
	defs := testDefs()
	seen := map[string]bool{"HGB": true}

	got := defs.ExtractFromText("Hemoglobin: 13.4\nGlucose: 99", nil, seen)
	require.Len(t, got, 1)
	assert.Equal(t, "GLU", got[0].Code)
	assert.True(t, seen["GLU"])
}

func TestExtractFromTables(t *testing.T) {
	defs := testDefs()
	tables := []report.ExtractedTable{
		{
			PageNumber: 1,
			Headers:    []string{"Test", "Result", "Units", "Reference Range"},
			Rows: [][]string{
				{"Hemoglobin", "13.4", "g/dL", "12.0-16.0"},
				{"Glucose", "105", "mg/dL", "70-99"},
				{"Unknown Analyte", "5.0", "", ""},
			},
		},
	}

	got := defs.ExtractFromTables(tables)
	require.Len(t, got, 2)
	assert.Equal(t, "HGB", got[0].Code)
	assert.InDelta(t, 13.4, got[0].Value, 1e-9)
	assert.Equal(t, "Hemoglobin | 13.4 | g/dL | 12.0-16.0", got[0].RawText)
	require.NotNil(t, got[0].PageNumber)
	assert.Equal(t, 1, *got[0].PageNumber)
}

func TestExtractFromTablesPriorColumns(t *testing.T) {
	defs := testDefs()
	tables := []report.ExtractedTable{
		{
			PageNumber: 1,
			Headers:    []string{"Component", "Result", "6 months ago", "1 yr ago"},
			Rows: [][]string{
				{"Hemoglobin", "13.4", "12.8", "14.1"},
			},
		},
	}

	got := defs.ExtractFromTables(tables)
	require.Len(t, got, 1)
	require.Len(t, got[0].PriorValues, 2)
	assert.InDelta(t, 12.8, got[0].PriorValues[0].Value, 1e-9)
	assert.Equal(t, "6 months ago", got[0].PriorValues[0].TimeLabel)
	assert.InDelta(t, 14.1, got[0].PriorValues[1].Value, 1e-9)
}

func TestExtractFromTablesIgnoresNonResultTables(t *testing.T) {
	defs := testDefs()
	tables := []report.ExtractedTable{
		{
			PageNumber: 1,
			Headers:    []string{"Patient", "DOB"},
			Rows:       [][]string{{"Hemoglobin", "13.4"}},
		},
	}
	assert.Empty(t, defs.ExtractFromTables(tables))
}

func TestExtractTableFirstWins(t *testing.T) {
	defs := testDefs()
	res := &report.ExtractionResult{
		FullText: "Hemoglobin: 11.0\nGlucose: 99",
		Tables: []report.ExtractedTable{
			{
				PageNumber: 1,
				Headers:    []string{"Test", "Result", "Flag"},
				Rows:       [][]string{{"HGB", "13.4", ""}},
			},
		},
	}

	got := defs.Extract(res)
	require.Len(t, got, 2)

	byCode := map[string]float64{}
	for _, m := range got {
		byCode[m.Code] = m.Value
	}
	// Table value beats the text match for HGB; GLU falls back to text.
	assert.InDelta(t, 13.4, byCode["HGB"], 1e-9)
	assert.InDelta(t, 99.0, byCode["GLU"], 1e-9)
}

func TestMatchAliasPartial(t *testing.T) {
	defs := testDefs()

	require.NotNil(t, defs.MatchAlias("Hemoglobin (HGB):"))
	assert.Equal(t, "HGB", defs.MatchAlias("Hemoglobin (HGB):").Code)
	assert.Nil(t, defs.MatchAlias("Lymphocytes"))
}

func TestExtractNumeric(t *testing.T) {
	v, ok := ExtractNumeric("  13.4 g/dL (L)")
	assert.True(t, ok)
	assert.InDelta(t, 13.4, v, 1e-9)

	_, ok = ExtractNumeric("negative")
	assert.False(t, ok)
}
