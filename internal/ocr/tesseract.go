package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// gosseract page segmentation modes for each strategy.
var psmFor = map[Mode]gosseract.PageSegMode{
	ModeBlockOfText:  gosseract.PSM_SINGLE_BLOCK,
	ModeAuto:         gosseract.PSM_AUTO,
	ModeSingleColumn: gosseract.PSM_SINGLE_COLUMN,
}

// Tesseract recognizes text via the Tesseract engine. Each Recognize call
// uses its own client, so a single Tesseract value is safe to share
// across page workers.
type Tesseract struct {
	// Language passed to the engine; empty means the engine default.
	Language string
}

// NewTesseract returns a Tesseract engine for the given language ("" for
// the engine default, typically English).
func NewTesseract(language string) *Tesseract {
	return &Tesseract{Language: language}
}

// Recognize runs Tesseract on img under the given segmentation mode and
// returns the recognized text with per-word confidences in [0,1]. The
// engine itself is not interruptible; the context is checked before the
// expensive call so cancelled pages return promptly.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image, mode Mode) (string, []float64, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	psm, ok := psmFor[mode]
	if !ok {
		return "", nil, fmt.Errorf("unsupported segmentation mode %v", mode)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", nil, fmt.Errorf("encoding page image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.Language != "" {
		if err := client.SetLanguage(t.Language); err != nil {
			return "", nil, fmt.Errorf("setting OCR language: %w", err)
		}
	}
	if err := client.SetPageSegMode(psm); err != nil {
		return "", nil, fmt.Errorf("setting segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", nil, fmt.Errorf("loading page image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", nil, fmt.Errorf("recognizing text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Text without word confidences is still usable; treat it as
		// a single low-trust token.
		return text, nil, nil
	}
	confs := make([]float64, 0, len(boxes))
	for _, b := range boxes {
		if b.Confidence > 0 {
			confs = append(confs, b.Confidence/100.0)
		}
	}
	return text, confs, nil
}
