package testtypes

import (
	"regexp"
	"strings"

	"github.com/MeKo-Tech/medscan/internal/report"
)

// SectionSplitter slices report text into labeled sections by a set of
// header patterns. Each family supplies its own header vocabulary.
type SectionSplitter struct {
	headerRe *regexp.Regexp
}

// NewSectionSplitter compiles the header patterns into a single multiline
// matcher. Patterns are plain regex alternatives without anchors.
func NewSectionSplitter(headerPatterns []string) *SectionSplitter {
	parts := make([]string, len(headerPatterns))
	for i, p := range headerPatterns {
		parts[i] = "(?:" + p + ")"
	}
	combined := strings.Join(parts, "|")
	return &SectionSplitter{
		headerRe: regexp.MustCompile(`(?im)(?:^|\n)[ \t]*(` + combined + `)[ \t]*[:\-]?[ \t]*`),
	}
}

// Split returns the labeled sections in document order. A header with no
// content before the next header is dropped.
func (s *SectionSplitter) Split(text string) []report.ReportSection {
	matches := s.headerRe.FindAllStringSubmatchIndex(text, -1)
	var sections []report.ReportSection

	for i, m := range matches {
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		name := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(text[m[2]:m[3]]), ":-"))
		content := strings.TrimSpace(text[start:end])
		if content != "" {
			sections = append(sections, report.ReportSection{
				Name:    strings.ToUpper(name),
				Content: content,
			})
		}
	}
	return sections
}

// DefaultFindingsHeaders open the conclusion-style blocks most imaging
// reports end with. Lab reports use their own comment vocabulary.
const DefaultFindingsHeaders = `CONCLUSION|IMPRESSION|SUMMARY|INTERPRETATION|FINDINGS`

var findingsItemRe = regexp.MustCompile(`\n\s*(?:\d+[.)]\s*|[-*]\s*)`)

// FindingsExtractor pulls individual statements out of conclusion-style
// blocks. Numbered and bulleted lists are split into separate findings;
// fragments of ten characters or fewer are noise and dropped.
type FindingsExtractor struct {
	blockRe *regexp.Regexp
}

// NewFindingsExtractor takes the header alternatives (regex alternation,
// no capture groups required) that open a findings block.
func NewFindingsExtractor(headerAlt string) *FindingsExtractor {
	return &FindingsExtractor{
		blockRe: regexp.MustCompile(
			`(?i)(?:` + headerAlt + `)[ \t]*[:\-]?[ \t]*\n([\s\S]*?)(?:\n[ \t]*\n|\z)`),
	}
}

func (e *FindingsExtractor) Extract(text string) []string {
	var findings []string
	for _, m := range e.blockRe.FindAllStringSubmatch(text, -1) {
		block := strings.TrimSpace(m[1])
		for _, line := range findingsItemRe.Split(block, -1) {
			line = strings.TrimSpace(line)
			if len(line) > 10 {
				findings = append(findings, line)
			}
		}
	}
	return findings
}

var defaultFindings = NewFindingsExtractor(DefaultFindingsHeaders)

// ExtractFindings extracts findings using the default imaging-report
// headers.
func ExtractFindings(text string) []string {
	return defaultFindings.Extract(text)
}
