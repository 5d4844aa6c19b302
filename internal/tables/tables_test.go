package tables

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/medscan/internal/report"
)

func TestParsePipeDelimited(t *testing.T) {
	text := strings.Join([]string{
		"Component | Value | Units | Range",
		"----------|-------|-------|------",
		"Glucose | 95 | mg/dL | 70-100",
		"Sodium | 140 | mmol/L | 136-145",
	}, "\n")

	tables := ParseText(text, "")
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Component", "Value", "Units", "Range"}, tables[0].Headers)
	require.Len(t, tables[0].Rows, 2)
	assert.Equal(t, []string{"Glucose", "95", "mg/dL", "70-100"}, tables[0].Rows[0])
}

func TestParsePipeOuterPipes(t *testing.T) {
	text := "| Test | Result |\n| HGB | 14.2 |\n| WBC | 7.5 |"
	tables := ParseText(text, "")
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Test", "Result"}, tables[0].Headers)
	assert.Len(t, tables[0].Rows, 2)
}

func TestParseTabDelimitedWithHeader(t *testing.T) {
	text := "Test\tResult\tUnits\nGlucose\t95\tmg/dL\nSodium\t140\tmmol/L"
	tables := ParseText(text, "")
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Test", "Result", "Units"}, tables[0].Headers)
	assert.Len(t, tables[0].Rows, 2)
}

func TestParseTabDelimitedSynthesizesHeaders(t *testing.T) {
	text := "Glucose\t95\tmg/dL\nSodium\t140\tmmol/L"
	tables := ParseText(text, "")
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Name", "Value", "Units"}, tables[0].Headers)
	// Headerless: the first line is data, not a header.
	assert.Len(t, tables[0].Rows, 2)
	assert.Equal(t, "Glucose", tables[0].Rows[0][0])
}

func TestParseFixedWidth(t *testing.T) {
	text := strings.Join([]string{
		"Test          Result    Units     Range",
		"Hemoglobin    14.2      g/dL      12.0-16.0",
		"Hematocrit    42.1      %         36-46",
	}, "\n")

	tables := ParseText(text, "")
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Test", "Result", "Units", "Range"}, tables[0].Headers)
	require.Len(t, tables[0].Rows, 2)
	assert.Equal(t, []string{"Hemoglobin", "14.2", "g/dL", "12.0-16.0"}, tables[0].Rows[0])
}

func TestColumnMismatchTolerance(t *testing.T) {
	text := strings.Join([]string{
		"Component | Value | Units",
		"Glucose | 95 | mg/dL",
		"Sodium | 140",             // one short: padded
		"Potassium | 4.1 | mmol/L | H", // one over: truncated
		"Junk | a | b | c | d",     // two over: dropped
	}, "\n")

	tables := ParseText(text, "")
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Rows, 3)
	assert.Equal(t, []string{"Sodium", "140", ""}, tables[0].Rows[1])
	assert.Equal(t, []string{"Potassium", "4.1", "mmol/L"}, tables[0].Rows[2])
}

func TestNoTabularStructure(t *testing.T) {
	assert.Nil(t, ParseText("The left ventricle is normal in size and function.", ""))
	assert.Nil(t, ParseText("", ""))
	assert.Nil(t, ParseText("   \n\n  ", ""))
}

func TestSeparatorLinesSkipped(t *testing.T) {
	text := "Test | Result\n=====|======\nHGB | 14.2\n-----|-----\nWBC | 7.5"
	tables := ParseText(text, "")
	require.Len(t, tables, 1)
	assert.Len(t, tables[0].Rows, 2)
}

func TestMeditechBiasPrefersFixedWidth(t *testing.T) {
	// Ambiguous text parseable as fixed-width; the Meditech bias routes
	// it there first.
	text := strings.Join([]string{
		"Test          Result",
		"Glucose       95",
		"Sodium        140",
	}, "\n")

	tables := ParseText(text, report.EMRMeditech)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Test", "Result"}, tables[0].Headers)
}

func TestFromPagesStampsPageNumbers(t *testing.T) {
	pages := []report.ExtractedPage{
		{PageNumber: 1, Text: "no table here"},
		{PageNumber: 2, Text: "Test | Result\nHGB | 14.2\nWBC | 7.5"},
	}
	tables := FromPages(pages, "")
	require.Len(t, tables, 1)
	assert.Equal(t, 2, tables[0].PageNumber)
	assert.Equal(t, 0, tables[0].TableIndex)
}

func TestSynthesizeHeaders(t *testing.T) {
	assert.Equal(t, []string{"Name", "Value"}, SynthesizeHeaders(2))
	assert.Equal(t, []string{"Name", "Value", "Units", "Range", "Flag", "Col5", "Col6"},
		SynthesizeHeaders(7))
}
