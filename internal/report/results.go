package report

import (
	"encoding/json"
	"errors"
)

// ToJSON serializes a ParsedReport to pretty JSON.
func ToJSON(r *ParsedReport) (string, error) {
	if r == nil {
		return "", errors.New("nil report")
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ExtractionToJSON serializes an ExtractionResult to pretty JSON.
func ExtractionToJSON(r *ExtractionResult) (string, error) {
	if r == nil {
		return "", errors.New("nil result")
	}
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DetectionToJSON serializes a DetectionSummary to pretty JSON.
func DetectionToJSON(d *DetectionSummary) (string, error) {
	if d == nil {
		return "", errors.New("nil detection")
	}
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
