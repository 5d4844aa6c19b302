package testtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeKo-Tech/medscan/internal/report"
)

func icaPSVRange() Range {
	return Range{
		NormalMax:   Num(125),
		MildMax:     Num(125),
		ModerateMin: Num(125),
		ModerateMax: Num(230),
		SevereHigh:  Num(230),
		Unit:        "cm/s",
		Source:      "SRU Consensus Criteria",
	}
}

func TestRangeClassifyGraded(t *testing.T) {
	r := icaPSVRange()

	tests := []struct {
		value     float64
		status    report.Severity
		direction report.Direction
	}{
		{90, report.SeverityNormal, report.DirectionNormal},
		{125, report.SeverityNormal, report.DirectionNormal},
		{180, report.SeverityModerate, report.DirectionAbove},
		{230, report.SeveritySevere, report.DirectionAbove},
		{310, report.SeveritySevere, report.DirectionAbove},
	}
	for _, tt := range tests {
		c := r.Classify(tt.value)
		assert.Equal(t, tt.status, c.Status, "value %v", tt.value)
		assert.Equal(t, tt.direction, c.Direction, "value %v", tt.value)
		assert.Equal(t, "< 125 cm/s", c.ReferenceRange)
	}
}

func TestRangeClassifyBelow(t *testing.T) {
	r := Range{
		NormalMin: Num(12.0),
		NormalMax: Num(16.0),
		MildMin:   Num(10.0),
		SevereLow: Num(7.0),
		Unit:      "g/dL",
	}

	tests := []struct {
		value  float64
		status report.Severity
	}{
		{13.5, report.SeverityNormal},
		{11.0, report.SeverityMild},
		{9.0, report.SeverityModerate},
		{6.5, report.SeveritySevere},
	}
	for _, tt := range tests {
		c := r.Classify(tt.value)
		assert.Equal(t, tt.status, c.Status, "value %v", tt.value)
		if tt.status != report.SeverityNormal {
			assert.Equal(t, report.DirectionBelow, c.Direction)
		}
	}
}

func TestRangeTableUnknownCode(t *testing.T) {
	tbl := &RangeTable{Ranges: map[string]Range{"HGB": {NormalMin: Num(12), NormalMax: Num(16)}}}

	c := tbl.Classify("XYZZY", 42, "")
	assert.Equal(t, report.SeverityUndetermined, c.Status)
	assert.Equal(t, report.DirectionNormal, c.Direction)
	assert.Equal(t, "No reference range available", c.ReferenceRange)
}

func TestRangeTableSexOverride(t *testing.T) {
	tbl := &RangeTable{
		Ranges: map[string]Range{
			"HGB": {NormalMin: Num(12.0), NormalMax: Num(17.5), Unit: "g/dL"},
		},
		BySex: map[report.Sex]map[string]Range{
			report.SexMale:   {"HGB": {NormalMin: Num(13.5), NormalMax: Num(17.5), Unit: "g/dL"}},
			report.SexFemale: {"HGB": {NormalMin: Num(12.0), NormalMax: Num(15.5), Unit: "g/dL"}},
		},
	}

	// 13.0 g/dL is low for a male, normal for a female, and normal when
	// sex is unknown (falls back to the combined range).
	assert.Equal(t, report.SeverityMild, tbl.Classify("HGB", 13.0, report.SexMale).Status)
	assert.Equal(t, report.SeverityNormal, tbl.Classify("HGB", 13.0, report.SexFemale).Status)
	assert.Equal(t, report.SeverityNormal, tbl.Classify("HGB", 13.0, "").Status)
}

func TestRangeClassifyIdempotent(t *testing.T) {
	r := icaPSVRange()
	first := r.Classify(180)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Classify(180))
	}
}

func TestRangeFormat(t *testing.T) {
	assert.Equal(t, "12-16 g/dL", Range{NormalMin: Num(12), NormalMax: Num(16), Unit: "g/dL"}.Format())
	assert.Equal(t, ">= 50 cm/s", Range{NormalMin: Num(50), Unit: "cm/s"}.Format())
	assert.Equal(t, "< 2", Range{NormalMax: Num(2)}.Format())
	assert.Equal(t, "N/A", Range{}.Format())
}
