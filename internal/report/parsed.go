package report

// Severity is the clinical severity tier assigned to a measurement.
type Severity string

const (
	SeverityNormal       Severity = "normal"
	SeverityMild         Severity = "mildly_abnormal"
	SeverityModerate     Severity = "moderately_abnormal"
	SeveritySevere       Severity = "severely_abnormal"
	SeverityUndetermined Severity = "undetermined"
)

// Direction indicates which side of the normal range a value falls on.
type Direction string

const (
	DirectionNormal Direction = "normal"
	DirectionAbove  Direction = "above_normal"
	DirectionBelow  Direction = "below_normal"
)

// PriorValue is a historical value for the same measurement, recovered from
// a temporal table column ("3 months ago", a date, ...).
type PriorValue struct {
	Value     float64 `json:"value"`
	TimeLabel string  `json:"time_label"`
}

// RawMeasurement is a named numeric value extracted from report text or a
// table, before severity classification. Extractors guarantee the value lies
// within the definition's sanity bounds.
type RawMeasurement struct {
	Name        string       `json:"name"`
	Code        string       `json:"abbreviation"`
	Value       float64      `json:"value"`
	Unit        string       `json:"unit"`
	RawText     string       `json:"raw_text"`
	PageNumber  *int         `json:"page_number,omitempty"` // nil = unknown
	PriorValues []PriorValue `json:"prior_values,omitempty"`
}

// Classification is the severity judgment for one measurement value.
type Classification struct {
	Status         Severity  `json:"status"`
	Direction      Direction `json:"direction"`
	ReferenceRange string    `json:"reference_range"`
}

// ParsedMeasurement is a RawMeasurement joined with its classification.
type ParsedMeasurement struct {
	Name           string       `json:"name"`
	Code           string       `json:"abbreviation"`
	Value          float64      `json:"value"`
	Unit           string       `json:"unit"`
	Status         Severity     `json:"status"`
	Direction      Direction    `json:"direction"`
	ReferenceRange string       `json:"reference_range"`
	RawText        string       `json:"raw_text"`
	PageNumber     *int         `json:"page_number,omitempty"`
	PriorValues    []PriorValue `json:"prior_values,omitempty"`
}

// ReportSection is a labeled text span ("FINDINGS", "HEMATOLOGY", ...).
type ReportSection struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ParsedReport is the terminal artifact of the core: a typed, structured,
// severity-annotated report handed unchanged to downstream consumers.
type ParsedReport struct {
	TestType            string              `json:"test_type"`
	TestTypeDisplay     string              `json:"test_type_display"`
	DetectionConfidence float64             `json:"detection_confidence"`
	Measurements        []ParsedMeasurement `json:"measurements"`
	Sections            []ReportSection     `json:"sections"`
	Findings            []string            `json:"findings"`
	Warnings            []string            `json:"warnings"`
}

// Classified joins a raw measurement with a classification result.
func Classified(m RawMeasurement, c Classification) ParsedMeasurement {
	return ParsedMeasurement{
		Name:           m.Name,
		Code:           m.Code,
		Value:          m.Value,
		Unit:           m.Unit,
		Status:         c.Status,
		Direction:      c.Direction,
		ReferenceRange: c.ReferenceRange,
		RawText:        m.RawText,
		PageNumber:     m.PageNumber,
		PriorValues:    m.PriorValues,
	}
}
