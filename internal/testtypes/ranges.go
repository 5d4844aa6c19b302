package testtypes

import (
	"fmt"

	"github.com/MeKo-Tech/medscan/internal/report"
)

// Num returns a pointer to v, for building range tables inline.
func Num(v float64) *float64 { return &v }

// Range holds graded thresholds for one measurement. Nil thresholds are not
// checked. Values between NormalMin and NormalMax are normal; outside that,
// severity walks outward through the mild and moderate bands, with SevereLow
// and SevereHigh as hard cut-offs.
type Range struct {
	NormalMin   *float64
	NormalMax   *float64
	MildMin     *float64
	MildMax     *float64
	ModerateMin *float64
	ModerateMax *float64
	SevereLow   *float64
	SevereHigh  *float64
	Unit        string
	Source      string
}

// Format renders the normal range as a human-readable string.
func (r Range) Format() string {
	unit := ""
	if r.Unit != "" {
		unit = " " + r.Unit
	}
	switch {
	case r.NormalMin != nil && r.NormalMax != nil:
		return fmt.Sprintf("%v-%v%s", *r.NormalMin, *r.NormalMax, unit)
	case r.NormalMin != nil:
		return fmt.Sprintf(">= %v%s", *r.NormalMin, unit)
	case r.NormalMax != nil:
		return fmt.Sprintf("< %v%s", *r.NormalMax, unit)
	default:
		return "N/A"
	}
}

// Classify grades value against the range.
func (r Range) Classify(value float64) report.Classification {
	ref := r.Format()
	if r.NormalMax != nil && value > *r.NormalMax {
		return report.Classification{
			Status:         r.classifyAbove(value),
			Direction:      report.DirectionAbove,
			ReferenceRange: ref,
		}
	}
	if r.NormalMin != nil && value < *r.NormalMin {
		return report.Classification{
			Status:         r.classifyBelow(value),
			Direction:      report.DirectionBelow,
			ReferenceRange: ref,
		}
	}
	return report.Classification{
		Status:         report.SeverityNormal,
		Direction:      report.DirectionNormal,
		ReferenceRange: ref,
	}
}

func (r Range) classifyAbove(value float64) report.Severity {
	if r.SevereHigh != nil && value >= *r.SevereHigh {
		return report.SeveritySevere
	}
	if r.ModerateMax != nil && value > *r.ModerateMax {
		return report.SeveritySevere
	}
	if r.MildMax != nil && value > *r.MildMax {
		return report.SeverityModerate
	}
	return report.SeverityMild
}

func (r Range) classifyBelow(value float64) report.Severity {
	if r.SevereLow != nil && value <= *r.SevereLow {
		return report.SeveritySevere
	}
	if r.ModerateMin != nil && value < *r.ModerateMin {
		return report.SeveritySevere
	}
	if r.MildMin != nil && value < *r.MildMin {
		return report.SeverityModerate
	}
	return report.SeverityMild
}

// RangeTable maps measurement codes to ranges, with optional per-sex
// overrides for analytes whose normal limits differ between males and
// females.
type RangeTable struct {
	Ranges map[string]Range
	BySex  map[report.Sex]map[string]Range
}

// Lookup resolves the range for code, preferring a sex-specific override.
func (t *RangeTable) Lookup(code string, sex report.Sex) (Range, bool) {
	if sex != "" {
		if overrides, ok := t.BySex[sex]; ok {
			if r, ok := overrides[code]; ok {
				return r, true
			}
		}
	}
	r, ok := t.Ranges[code]
	return r, ok
}

// Classify grades a measurement by code. Unknown codes come back
// undetermined with direction normal, never an error.
func (t *RangeTable) Classify(code string, value float64, sex report.Sex) report.Classification {
	r, ok := t.Lookup(code, sex)
	if !ok {
		return report.Classification{
			Status:         report.SeverityUndetermined,
			Direction:      report.DirectionNormal,
			ReferenceRange: "No reference range available",
		}
	}
	return r.Classify(value)
}

// RangeInfoMap converts a table to the handler-facing summary form.
func (t *RangeTable) RangeInfoMap() map[string]RangeInfo {
	out := make(map[string]RangeInfo, len(t.Ranges))
	for code, r := range t.Ranges {
		out[code] = RangeInfo{
			NormalMin: r.NormalMin,
			NormalMax: r.NormalMax,
			Unit:      r.Unit,
			Source:    r.Source,
		}
	}
	return out
}
