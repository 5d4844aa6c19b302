package testtypes

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/medscan/internal/report"
)

// MeasurementDef describes one analyte or metric to extract: how it appears
// in running text (regex patterns with a "value" capture group), how its row
// is named in tables, and the sanity bounds outside which a candidate value
// is discarded rather than clamped.
type MeasurementDef struct {
	Name         string
	Code         string
	Unit         string
	Patterns     []*regexp.Regexp
	TableAliases []string
	Min          float64
	Max          float64
}

// InBounds reports whether v passes the definition's sanity check.
func (d MeasurementDef) InBounds(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// DefSet is an ordered collection of measurement definitions with an alias
// index for table row matching. Order matters: the first definition whose
// pattern matches wins for a given code.
type DefSet struct {
	Defs    []MeasurementDef
	aliases map[string]*MeasurementDef
}

// NewDefSet builds the alias lookup. Aliases are matched case-insensitively.
func NewDefSet(defs []MeasurementDef) *DefSet {
	s := &DefSet{Defs: defs, aliases: make(map[string]*MeasurementDef)}
	for i := range s.Defs {
		for _, a := range s.Defs[i].TableAliases {
			s.aliases[strings.ToLower(a)] = &s.Defs[i]
		}
	}
	return s
}

// MatchAlias resolves a table row name to a definition, first by exact alias
// then by substring containment.
func (s *DefSet) MatchAlias(rowName string) *MeasurementDef {
	normalized := strings.TrimSuffix(strings.TrimSpace(strings.ToLower(rowName)), ":")
	if d, ok := s.aliases[normalized]; ok {
		return d
	}
	for _, d := range s.Defs {
		for _, a := range d.TableAliases {
			if strings.Contains(normalized, strings.ToLower(a)) {
				return &d
			}
		}
	}
	return nil
}

var (
	numericRe = regexp.MustCompile(`(\d+\.?\d*)`)

	tableHeaderKeywords = []string{
		"test", "result", "value", "units", "unit", "reference", "range",
		"flag", "status", "analyte", "component", "name",
	}

	temporalHeaderRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+\s*mo(?:nth)?s?\s*ago`),
		regexp.MustCompile(`(?i)\d+\s*yr?s?\s*ago`),
		regexp.MustCompile(`(?i)\d+\s*(?:week|wk)s?\s*ago`),
		regexp.MustCompile(`(?i)\d+\s*days?\s*ago`),
		regexp.MustCompile(`(?i)\bprevious\b`),
		regexp.MustCompile(`(?i)\bprior\b`),
		regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
		regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\w*\s+\d{1,2}`),
	}
)

// ExtractNumeric returns the first numeric value found in s.
func ExtractNumeric(s string) (float64, bool) {
	m := numericRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsResultTable reports whether the headers look like a results table: at
// least two headers contain a known results-table keyword.
func IsResultTable(headers []string) bool {
	matched := 0
	for _, h := range headers {
		hl := strings.ToLower(strings.TrimSpace(h))
		for _, kw := range tableHeaderKeywords {
			if strings.Contains(hl, kw) {
				matched++
				break
			}
		}
	}
	return matched >= 2
}

// ResultColumn returns the index of the column holding current results, or
// -1 if no header names one explicitly.
func ResultColumn(headers []string) int {
	for i, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "result", "value", "results", "values":
			return i
		}
	}
	return -1
}

// PriorColumn pairs a column index with the header text used as its time
// label ("6 months ago", "03/12/2024").
type PriorColumn struct {
	Index int
	Label string
}

// PriorColumns identifies columns holding historical values by their
// temporal-looking headers.
func PriorColumns(headers []string) []PriorColumn {
	var cols []PriorColumn
	for i, h := range headers {
		hl := strings.TrimSpace(h)
		for _, re := range temporalHeaderRes {
			if re.MatchString(hl) {
				cols = append(cols, PriorColumn{Index: i, Label: hl})
				break
			}
		}
	}
	return cols
}

// ExtractFromTables walks structured tables, matching the first cell of each
// row against the definition aliases. The result column is preferred; when
// absent, the first numeric cell outside prior-value columns wins. Values
// outside a definition's bounds are discarded. The first hit per code wins
// across all tables.
func (s *DefSet) ExtractFromTables(tables []report.ExtractedTable) []report.RawMeasurement {
	var results []report.RawMeasurement
	seen := make(map[string]bool)

	for _, table := range tables {
		if len(table.Headers) == 0 || !IsResultTable(table.Headers) {
			continue
		}
		resultCol := ResultColumn(table.Headers)
		priorCols := PriorColumns(table.Headers)
		priorIdx := make(map[int]bool, len(priorCols))
		for _, pc := range priorCols {
			priorIdx[pc.Index] = true
		}

		for _, row := range table.Rows {
			if len(row) == 0 {
				continue
			}
			def := s.MatchAlias(row[0])
			if def == nil || seen[def.Code] {
				continue
			}

			var value float64
			found := false
			if resultCol >= 0 && resultCol < len(row) {
				value, found = ExtractNumeric(row[resultCol])
			}
			if !found {
				for i := 1; i < len(row); i++ {
					if priorIdx[i] {
						continue
					}
					if v, ok := ExtractNumeric(row[i]); ok {
						value, found = v, true
						break
					}
				}
			}
			if !found || !def.InBounds(value) {
				continue
			}

			var priors []report.PriorValue
			for _, pc := range priorCols {
				if pc.Index >= len(row) {
					continue
				}
				if pv, ok := ExtractNumeric(row[pc.Index]); ok && def.InBounds(pv) {
					priors = append(priors, report.PriorValue{Value: pv, TimeLabel: pc.Label})
				}
			}

			page := table.PageNumber
			results = append(results, report.RawMeasurement{
				Name:        def.Name,
				Code:        def.Code,
				Value:       value,
				Unit:        def.Unit,
				RawText:     strings.TrimSpace(strings.Join(row, " | ")),
				PageNumber:  &page,
				PriorValues: priors,
			})
			seen[def.Code] = true
		}
	}
	return results
}

// ExtractFromText pattern-matches definitions against raw text, skipping
// codes already present in seen. seen is updated in place.
func (s *DefSet) ExtractFromText(fullText string, pages []report.ExtractedPage, seen map[string]bool) []report.RawMeasurement {
	var results []report.RawMeasurement

	for _, def := range s.Defs {
		if seen[def.Code] {
			continue
		}
		for _, re := range def.Patterns {
			m := re.FindStringSubmatch(fullText)
			if m == nil {
				continue
			}
			idx := re.SubexpIndex("value")
			if idx < 0 || idx >= len(m) {
				continue
			}
			value, err := strconv.ParseFloat(m[idx], 64)
			if err != nil || !def.InBounds(value) {
				continue
			}
			results = append(results, report.RawMeasurement{
				Name:       def.Name,
				Code:       def.Code,
				Value:      value,
				Unit:       def.Unit,
				RawText:    strings.TrimSpace(m[0]),
				PageNumber: FindPage(m[0], pages),
			})
			seen[def.Code] = true
			break
		}
	}
	return results
}

// Extract runs the table-first, text-fallback strategy over a full
// extraction result.
func (s *DefSet) Extract(res *report.ExtractionResult) []report.RawMeasurement {
	tableResults := s.ExtractFromTables(res.Tables)
	seen := make(map[string]bool, len(tableResults))
	for _, m := range tableResults {
		seen[m.Code] = true
	}
	textResults := s.ExtractFromText(res.FullText, res.Pages, seen)
	return append(tableResults, textResults...)
}

// FindPage locates the page whose whitespace-normalized text contains the
// matched snippet. Returns nil when no page contains it.
func FindPage(snippet string, pages []report.ExtractedPage) *int {
	normalized := strings.Join(strings.Fields(snippet), " ")
	for _, p := range pages {
		if strings.Contains(strings.Join(strings.Fields(p.Text), " "), normalized) {
			n := p.PageNumber
			return &n
		}
	}
	return nil
}
