package emr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MeKo-Tech/medscan/internal/report"
)

func TestDetectEpicFooter(t *testing.T) {
	fp := Detect("ECHOCARDIOGRAM REPORT\n...\nGenerated by Epic Systems Corporation")
	assert.Equal(t, report.EMREpic, fp.Source)
	assert.InDelta(t, 0.9, fp.Confidence, 1e-9)
}

func TestDetectCernerProductName(t *testing.T) {
	fp := Detect("Printed from PowerChart on 01/02/2024")
	assert.Equal(t, report.EMRCerner, fp.Source)
	assert.InDelta(t, 0.8, fp.Confidence, 1e-9)
}

func TestDetectMeditech(t *testing.T) {
	fp := Detect("MEDITECH Expanse v2.1\nLAB RESULTS")
	assert.Equal(t, report.EMRMeditech, fp.Source)
	assert.InDelta(t, 0.9, fp.Confidence, 1e-9)
}

func TestDetectFromMetadataOnly(t *testing.T) {
	fp := Detect("STRESS TEST REPORT", "Producer: Hyperspace Print Service")
	assert.Equal(t, report.EMREpic, fp.Source)
	assert.InDelta(t, 0.8, fp.Confidence, 1e-9)
}

func TestDetectUnknown(t *testing.T) {
	fp := Detect("CAROTID DUPLEX ULTRASOUND\nRight ICA PSV 120 cm/s")
	assert.Empty(t, fp.Source)
	assert.Zero(t, fp.Confidence)
}

func TestDetectVendorNameAloneIsWeak(t *testing.T) {
	// "epic" alone scores 0.4, above the floor but below product markers.
	fp := Detect("patient described an epic headache")
	assert.Equal(t, report.EMREpic, fp.Source)
	assert.InDelta(t, 0.4, fp.Confidence, 1e-9)
}

func TestDetectStrongestMarkerWins(t *testing.T) {
	fp := Detect("Epic MyChart portal through Hyperspace")
	assert.Equal(t, report.EMREpic, fp.Source)
	assert.InDelta(t, 0.8, fp.Confidence, 1e-9)
}

func TestDetectCaseInsensitive(t *testing.T) {
	fp := Detect("CERNER MILLENNIUM")
	assert.Equal(t, report.EMRCerner, fp.Source)
	assert.InDelta(t, 0.9, fp.Confidence, 1e-9)
}
