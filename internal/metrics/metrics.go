// Package metrics exposes Prometheus instrumentation for the extraction
// pipeline. Collectors register on the default registerer; serving them is
// the embedding application's concern.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Extraction metrics
	extractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medscan_extractions_total",
			Help: "Total number of report extractions",
		},
		[]string{"mode", "status"}, // mode: pdf, image, text
	)

	extractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medscan_extraction_duration_seconds",
			Help:    "Report extraction duration in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 25, 50, 100},
		},
		[]string{"mode"},
	)

	pagesExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medscan_pages_extracted_total",
			Help: "Total number of pages extracted, by extraction method",
		},
		[]string{"method"}, // method: native_text, ocr, direct_input
	)

	// OCR metrics
	ocrPageConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "medscan_ocr_page_confidence",
			Help:    "Mean word confidence of OCR pages",
			Buckets: []float64{0, .1, .2, .3, .4, .5, .6, .7, .8, .9, 1},
		},
	)

	// Detection metrics
	detectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medscan_detections_total",
			Help: "Total number of test type detections",
		},
		[]string{"type"},
	)

	detectionConfidence = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medscan_detection_confidence",
			Help:    "Confidence of the winning test type detection",
			Buckets: []float64{0, .1, .2, .3, .4, .5, .6, .7, .8, .9, 1},
		},
		[]string{"type"},
	)

	correctionsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "medscan_detection_corrections_total",
			Help: "Total number of user detection corrections recorded",
		},
	)

	// Parse metrics
	measurementsParsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "medscan_measurements_parsed",
			Help:    "Number of measurements parsed per report",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
		[]string{"type"},
	)

	tablesParsed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "medscan_tables_parsed",
			Help:    "Number of tables recovered per report",
			Buckets: []float64{0, 1, 2, 5, 10, 25},
		},
	)
)

// RecordExtraction counts one extraction attempt and its wall time.
func RecordExtraction(mode string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	extractionsTotal.WithLabelValues(mode, status).Inc()
	extractionDuration.WithLabelValues(mode).Observe(d.Seconds())
}

// RecordPage counts one extracted page by method.
func RecordPage(method string) {
	pagesExtracted.WithLabelValues(method).Inc()
}

// RecordOCRConfidence observes the mean word confidence of one OCR page.
func RecordOCRConfidence(confidence float64) {
	ocrPageConfidence.Observe(confidence)
}

// RecordDetection counts a detection outcome and its confidence.
func RecordDetection(typeID string, confidence float64) {
	detectionsTotal.WithLabelValues(typeID).Inc()
	detectionConfidence.WithLabelValues(typeID).Observe(confidence)
}

// RecordCorrection counts one user correction of a detected type.
func RecordCorrection() {
	correctionsRecorded.Inc()
}

// RecordParse observes per-report parse yield.
func RecordParse(typeID string, measurements, tables int) {
	measurementsParsed.WithLabelValues(typeID).Observe(float64(measurements))
	tablesParsed.Observe(float64(tables))
}
