// Package tables recovers tabular structure from report text. Physicians
// paste lab results out of EMRs as pipe-delimited, tab-delimited, or
// fixed-width column text; these detectors turn that into normalized
// tables the measurement extractors can match rows against.
//
// Detection priority is pipe > tab > fixed-width, biased by the EMR
// fingerprint when one is known: Epic favors pipes, Meditech fixed-width.
package tables

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MeKo-Tech/medscan/internal/report"
)

// minCols is the minimum column count for a line to be considered tabular.
const minCols = 2

// scanWindow limits how many leading lines the detectors sample.
const scanWindow = 30

var (
	separatorLine = regexp.MustCompile(`^[\s\-=_|+]+$`)
	blankLine     = regexp.MustCompile(`^\s*$`)
	multiSpaceGap = regexp.MustCompile(`\S\s{2,}\S`)
	multiSpace    = regexp.MustCompile(`\s{2,}`)
)

// Header cells that identify a row as a column header rather than data.
var headerKeywords = map[string]struct{}{
	"test": {}, "result": {}, "value": {}, "units": {}, "unit": {},
	"reference": {}, "range": {}, "flag": {}, "status": {}, "analyte": {},
	"component": {}, "name": {}, "investigation": {}, "parameter": {},
	"observed": {}, "normal": {},
}

// ParseText detects and parses tabular structure in pasted text.
// emrSource biases which detector runs first; pass "" when unknown.
func ParseText(text, emrSource string) []report.ExtractedTable {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lines := strings.Split(text, "\n")

	var order []func([]string) []report.ExtractedTable
	switch emrSource {
	case report.EMREpic:
		order = []func([]string) []report.ExtractedTable{tryPipe, tryTab, tryFixedWidth}
	case report.EMRMeditech:
		order = []func([]string) []report.ExtractedTable{tryFixedWidth, tryPipe, tryTab}
	default:
		order = []func([]string) []report.ExtractedTable{tryPipe, tryTab, tryFixedWidth}
	}

	for _, try := range order {
		if tables := try(lines); len(tables) > 0 {
			return tables
		}
	}
	return nil
}

// FromPages runs table detection over each extracted page, stamping page
// numbers and per-page table indices.
func FromPages(pages []report.ExtractedPage, emrSource string) []report.ExtractedTable {
	var out []report.ExtractedTable
	for _, p := range pages {
		for i, tbl := range ParseText(p.Text, emrSource) {
			tbl.PageNumber = p.PageNumber
			tbl.TableIndex = i
			out = append(out, tbl)
		}
	}
	return out
}

func isDataLine(line string) bool {
	return !blankLine.MatchString(line) && !separatorLine.MatchString(line)
}

func tryPipe(lines []string) []report.ExtractedTable {
	pipeLines := 0
	for _, l := range lines[:min(scanWindow, len(lines))] {
		if strings.Contains(l, "|") && isDataLine(l) {
			pipeLines++
		}
	}
	if pipeLines < 2 {
		return nil
	}

	headerIdx := -1
	for i, l := range lines {
		if strings.Contains(l, "|") && isDataLine(l) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	headers := splitPipe(lines[headerIdx])
	if len(headers) < minCols {
		return nil
	}

	var rows [][]string
	for _, l := range lines[headerIdx+1:] {
		if !isDataLine(l) || !strings.Contains(l, "|") {
			continue
		}
		cells := splitPipe(l)
		if row, ok := fitColumns(cells, len(headers)); ok {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return []report.ExtractedTable{{PageNumber: 1, Headers: headers, Rows: rows}}
}

// splitPipe splits a pipe-delimited line, trimming cells and dropping the
// empty edge cells produced by outer pipes ("| a | b |").
func splitPipe(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	for len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func tryTab(lines []string) []report.ExtractedTable {
	tabLines := 0
	for _, l := range lines[:min(scanWindow, len(lines))] {
		if strings.Contains(l, "\t") && isDataLine(l) {
			tabLines++
		}
	}
	if tabLines < 2 {
		return nil
	}

	firstIdx := -1
	for i, l := range lines {
		if strings.Contains(l, "\t") && isDataLine(l) {
			firstIdx = i
			break
		}
	}
	if firstIdx < 0 {
		return nil
	}

	firstCells := splitTab(lines[firstIdx])
	headers := firstCells
	dataStart := firstIdx + 1
	if !looksLikeHeader(firstCells) {
		headers = SynthesizeHeaders(len(firstCells))
		dataStart = firstIdx
	}
	if len(headers) < minCols {
		return nil
	}

	var rows [][]string
	for _, l := range lines[dataStart:] {
		if !isDataLine(l) || !strings.Contains(l, "\t") {
			continue
		}
		if row, ok := fitColumns(splitTab(l), len(headers)); ok {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return []report.ExtractedTable{{PageNumber: 1, Headers: headers, Rows: rows}}
}

func splitTab(line string) []string {
	parts := strings.Split(line, "\t")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// tryFixedWidth detects column-aligned tables by consistent multi-space
// gaps, using the modal column count across lines.
func tryFixedWidth(lines []string) []report.ExtractedTable {
	var dataLines []string
	for _, l := range lines {
		if isDataLine(l) {
			dataLines = append(dataLines, l)
		}
	}
	if len(dataLines) < 2 {
		return nil
	}

	gapLines := 0
	for _, l := range dataLines[:min(scanWindow, len(dataLines))] {
		if multiSpaceGap.MatchString(l) {
			gapLines++
		}
	}
	if gapLines < 2 {
		return nil
	}

	var parsed [][]string
	for _, l := range dataLines {
		var cells []string
		for _, c := range multiSpace.Split(strings.TrimSpace(l), -1) {
			if c = strings.TrimSpace(c); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) >= minCols {
			parsed = append(parsed, cells)
		}
	}
	if len(parsed) < 2 {
		return nil
	}

	modal := modalColumnCount(parsed)
	var filtered [][]string
	for _, row := range parsed {
		if abs(len(row)-modal) <= 1 {
			filtered = append(filtered, row)
		}
	}
	if len(filtered) < 2 {
		return nil
	}

	headers := filtered[0]
	dataRows := filtered[1:]
	if !looksLikeHeader(filtered[0]) {
		headers = SynthesizeHeaders(modal)
		dataRows = filtered
	}

	var rows [][]string
	for _, row := range dataRows {
		fitted, _ := fitColumns(row, len(headers))
		rows = append(rows, fitted)
	}
	if len(rows) == 0 {
		return nil
	}
	return []report.ExtractedTable{{PageNumber: 1, Headers: headers, Rows: rows}}
}

func modalColumnCount(rows [][]string) int {
	counts := make(map[int]int)
	for _, row := range rows {
		counts[len(row)]++
	}
	modal, best := 0, 0
	for n, c := range counts {
		if c > best || (c == best && n > modal) {
			modal, best = n, c
		}
	}
	return modal
}

func looksLikeHeader(cells []string) bool {
	for _, c := range cells {
		if _, ok := headerKeywords[strings.ToLower(strings.TrimSpace(c))]; ok {
			return true
		}
	}
	return false
}

// fitColumns pads or truncates cells to the expected width, rejecting
// rows off by more than one column.
func fitColumns(cells []string, expected int) ([]string, bool) {
	if abs(len(cells)-expected) > 1 {
		return nil, false
	}
	out := make([]string, expected)
	copy(out, cells)
	return out, true
}

// SynthesizeHeaders names columns of a headerless table using the common
// lab column order.
func SynthesizeHeaders(n int) []string {
	defaults := []string{"Name", "Value", "Units", "Range", "Flag"}
	if n <= len(defaults) {
		return defaults[:n]
	}
	out := make([]string, 0, n)
	out = append(out, defaults...)
	for i := len(defaults); i < n; i++ {
		out = append(out, fmt.Sprintf("Col%d", i))
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
