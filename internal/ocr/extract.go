package ocr

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/MeKo-Tech/medscan/internal/report"
)

// GoodEnoughConfidence stops the segmentation-mode sweep early.
const GoodEnoughConfidence = 0.70

// modeOrder is the sweep order: block-of-text first because medical
// reports are usually a single dense block, then fully automatic, then
// single column.
var modeOrder = []Mode{ModeBlockOfText, ModeAuto, ModeSingleColumn}

// RecognizeBest runs the engine under each segmentation mode, keeps the
// highest-confidence text, and applies misread corrections to the winner
// only. It errors only when every mode fails; callers treat that as a
// page-local failure, not a document abort.
func RecognizeBest(ctx context.Context, engine Engine, img image.Image, corrections []Correction) (string, float64, error) {
	bestText := ""
	bestConf := 0.0
	succeeded := false
	var lastErr error

	for _, mode := range modeOrder {
		text, confs, err := engine.Recognize(ctx, img, mode)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return "", 0, err
			}
			slog.Debug("OCR mode failed", "mode", mode.String(), "error", err)
			lastErr = err
			continue
		}
		succeeded = true

		avg := avgConfidence(confs)
		if avg > bestConf {
			bestConf = avg
			bestText = text
		}
		if avg >= GoodEnoughConfidence {
			break
		}
	}

	if !succeeded {
		return "", 0, lastErr
	}

	corrected := ApplyCorrections(strings.TrimSpace(bestText), corrections)
	return corrected, bestConf, nil
}

// ExtractPage recognizes one preprocessed page image into an extracted
// page. Recognition failure degrades to an empty zero-confidence page.
func ExtractPage(ctx context.Context, engine Engine, img image.Image, pageNumber int, corrections []Correction) report.ExtractedPage {
	text, conf, err := RecognizeBest(ctx, engine, img, corrections)
	if err != nil {
		slog.Warn("OCR failed for page", "page", pageNumber, "error", err)
		return EmptyPage(pageNumber)
	}
	return report.ExtractedPage{
		PageNumber: pageNumber,
		Text:       text,
		Method:     report.MethodOCR,
		Confidence: math.Round(conf*1000) / 1000,
		CharCount:  utf8.RuneCountInString(text),
	}
}

// EmptyPage is the degraded result for a page OCR could not read.
func EmptyPage(pageNumber int) report.ExtractedPage {
	return report.ExtractedPage{
		PageNumber: pageNumber,
		Method:     report.MethodOCR,
	}
}

func avgConfidence(confs []float64) float64 {
	if len(confs) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range confs {
		total += c
	}
	return total / float64(len(confs))
}
