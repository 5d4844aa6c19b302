// Package ocr recognizes text on scanned report pages. The external OCR
// engine sits behind the Engine interface as a text-plus-confidence
// producer; this package owns strategy selection (page segmentation
// modes), early stopping, and medical-vocabulary misread correction.
package ocr

import (
	"context"
	"image"
)

// Mode is a page segmentation strategy, tried in a fixed order.
type Mode int

const (
	// ModeBlockOfText treats the page as one uniform block of text.
	ModeBlockOfText Mode = iota
	// ModeAuto lets the engine segment the page fully automatically.
	ModeAuto
	// ModeSingleColumn assumes a single column of variable-size text.
	ModeSingleColumn
)

func (m Mode) String() string {
	switch m {
	case ModeBlockOfText:
		return "block_of_text"
	case ModeAuto:
		return "auto"
	case ModeSingleColumn:
		return "single_column"
	default:
		return "unknown"
	}
}

// Engine recognizes text on a preprocessed page image. Token confidences
// are in [0,1], one per recognized token; an empty slice means the engine
// found nothing.
type Engine interface {
	Recognize(ctx context.Context, img image.Image, mode Mode) (text string, tokenConfidences []float64, err error)
}
