package cmd

import (
	"bytes"
	"context"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/medscan/internal/ocr"
	"github.com/MeKo-Tech/medscan/internal/pipeline"
	"github.com/MeKo-Tech/medscan/internal/report"
)

type stubEngine struct{}

func (stubEngine) Recognize(context.Context, image.Image, ocr.Mode) (string, []float64, error) {
	return "", nil, nil
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	root := GetRootCommand()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootShowsHelp(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "medscan")
	assert.Contains(t, out, "extract")
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "medscan version")
}

func TestExtractRequiresInput(t *testing.T) {
	_, err := execute(t, "extract")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input file")
}

func TestIngestUnsupportedExtension(t *testing.T) {
	_, err := ingest(context.Background(), nil, "report.docx", strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input type")
}

func TestIngestStdinText(t *testing.T) {
	p := pipeline.New(pipeline.Options{Engine: stubEngine{}})
	res, err := ingest(context.Background(), p, "-", strings.NewReader("LVEF: 60%\n"))
	require.NoError(t, err)
	assert.Equal(t, report.InputText, res.InputMode)
	assert.Equal(t, "LVEF: 60%", res.FullText)
}

func TestIngestStdinEmptyText(t *testing.T) {
	p := pipeline.New(pipeline.Options{Engine: stubEngine{}})
	_, err := ingest(context.Background(), p, "-", strings.NewReader("   \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text provided")
}

func TestWriteExtractionText(t *testing.T) {
	res := &report.ExtractionResult{
		InputMode:  report.InputText,
		FullText:   "LVEF: 60%",
		TotalPages: 1,
		TotalChars: 9,
		Warnings:   []string{"Page 1: low OCR confidence (45%). Some text may be inaccurate."},
		EMRSource:  report.EMREpic,
	}
	buf := new(bytes.Buffer)
	require.NoError(t, writeExtraction(buf, res, "text"))
	out := buf.String()
	assert.Contains(t, out, "1 page(s)")
	assert.Contains(t, out, "EMR source: epic")
	assert.Contains(t, out, "Warning: Page 1")
	assert.Contains(t, out, "LVEF: 60%")
}

func TestWriteExtractionJSON(t *testing.T) {
	res := &report.ExtractionResult{InputMode: report.InputText, FullText: "x", Warnings: []string{}}
	buf := new(bytes.Buffer)
	require.NoError(t, writeExtraction(buf, res, "json"))
	assert.Contains(t, buf.String(), `"input_mode": "text"`)
}

func TestTypesCommand(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "echocardiogram")
	assert.Contains(t, out, "lab_results")
	assert.NotContains(t, out, `"stress_test"`)
}

func TestTypesGlossaryUnknown(t *testing.T) {
	_, err := execute(t, "types", "--glossary", "colonoscopy")
	require.Error(t, err)
}

func TestCorrectWithoutDatabase(t *testing.T) {
	_, err := execute(t, "correct", "stress_test", "echocardiogram")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrections database")
}
