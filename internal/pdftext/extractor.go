// Package pdftext extracts the native text layer of PDF pages. Two
// independent backends run: the primary always, the secondary only for
// pages where the primary found almost nothing. Whichever yields more
// text wins; each result carries a quality-derived confidence.
package pdftext

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	dpdf "github.com/dslipak/pdf"
	lpdf "github.com/ledongthuc/pdf"

	"github.com/MeKo-Tech/medscan/internal/report"
)

// FallbackCharThreshold triggers the secondary backend when the primary
// extracts fewer characters than this for a page.
const FallbackCharThreshold = 20

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	reader, err := dpdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening PDF %q: %w", path, err)
	}
	return reader.NumPage(), nil
}

// ExtractPages extracts the text layer of the given pages (1-based),
// returning results sorted by page number. Pages outside the document are
// skipped. Opening the document is the only fatal failure; a page whose
// extraction fails yields an empty-text result.
func ExtractPages(path string, pageNumbers []int) ([]report.ExtractedPage, error) {
	primary, err := extractPrimary(path, pageNumbers)
	if err != nil {
		return nil, err
	}

	var starved []int
	for _, p := range primary {
		if p.CharCount < FallbackCharThreshold {
			starved = append(starved, p.PageNumber)
		}
	}
	if len(starved) > 0 {
		// The secondary backend is best effort; on failure the primary
		// results stand.
		if secondary, err := extractSecondary(path, starved); err == nil {
			primary = mergeResults(primary, secondary)
		}
	}

	sort.Slice(primary, func(i, j int) bool {
		return primary[i].PageNumber < primary[j].PageNumber
	})
	return primary, nil
}

// mergeResults replaces primary pages with their secondary counterpart
// when the secondary extracted more characters.
func mergeResults(primary, secondary []report.ExtractedPage) []report.ExtractedPage {
	byPage := make(map[int]report.ExtractedPage, len(secondary))
	for _, p := range secondary {
		byPage[p.PageNumber] = p
	}
	out := make([]report.ExtractedPage, 0, len(primary))
	for _, p := range primary {
		if alt, ok := byPage[p.PageNumber]; ok && alt.CharCount > p.CharCount {
			out = append(out, alt)
			continue
		}
		out = append(out, p)
	}
	return out
}

func extractPrimary(path string, pageNumbers []int) ([]report.ExtractedPage, error) {
	reader, err := dpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %q: %w", path, err)
	}

	total := reader.NumPage()
	var results []report.ExtractedPage
	for _, pageNum := range pageNumbers {
		if pageNum < 1 || pageNum > total {
			continue
		}
		page := reader.Page(pageNum)
		text := ""
		if !page.V.IsNull() {
			text = primaryPageText(page)
		}
		results = append(results, buildPage(pageNum, text))
	}
	return results, nil
}

// primaryPageText prefers row-grouped extraction, which keeps line
// structure intact for the downstream table parsers.
func primaryPageText(page dpdf.Page) string {
	rows, err := page.GetTextByRow()
	if err == nil && len(rows) > 0 {
		var b strings.Builder
		for _, row := range rows {
			for i, txt := range row.Content {
				if i > 0 {
					b.WriteString(" ")
				}
				b.WriteString(txt.S)
			}
			b.WriteString("\n")
		}
		return b.String()
	}

	fonts := make(map[string]*dpdf.Font)
	text, err := page.GetPlainText(fonts)
	if err != nil {
		return ""
	}
	return text
}

func extractSecondary(path string, pageNumbers []int) ([]report.ExtractedPage, error) {
	f, reader, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %q: %w", path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	var results []report.ExtractedPage
	for _, pageNum := range pageNumbers {
		if pageNum < 1 || pageNum > total {
			continue
		}
		page := reader.Page(pageNum)
		text := ""
		if !page.V.IsNull() {
			if s, err := page.GetPlainText(nil); err == nil {
				text = s
			}
		}
		results = append(results, buildPage(pageNum, text))
	}
	return results, nil
}

// Metadata returns the document info strings (Creator, Producer, Title,
// Author) of the PDF at path. EMR fingerprinting matches against these;
// Epic and Cerner exports usually stamp their print service here. Best
// effort, returns nil on any failure.
func Metadata(path string) []string {
	f, reader, err := lpdf.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return nil
	}
	var out []string
	for _, key := range []string{"Creator", "Producer", "Title", "Author"} {
		if v := info.Key(key); v.Kind() == lpdf.String {
			if s := v.RawString(); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func buildPage(pageNum int, text string) report.ExtractedPage {
	return report.ExtractedPage{
		PageNumber: pageNum,
		Text:       text,
		Method:     report.MethodNativeText,
		Confidence: QualityScore(text),
		CharCount:  utf8.RuneCountInString(text),
	}
}
