package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/medscan/internal/report"
	"github.com/MeKo-Tech/medscan/internal/testtypes"
)

// stubHandler scores a fixed confidence, independent of the document.
type stubHandler struct {
	id       string
	keywords []string
	score    float64
	fallback bool
	subtype  string
}

func (h *stubHandler) ID() string          { return h.id }
func (h *stubHandler) DisplayName() string { return h.id }
func (h *stubHandler) Category() string    { return "test" }
func (h *stubHandler) Keywords() []string  { return h.keywords }

func (h *stubHandler) Detect(_ *report.ExtractionResult) float64 { return h.score }

func (h *stubHandler) Parse(_ *report.ExtractionResult, _ report.Demographics) *report.ParsedReport {
	return &report.ParsedReport{TestType: h.id}
}

func (h *stubHandler) ReferenceRanges() map[string]testtypes.RangeInfo { return nil }
func (h *stubHandler) Glossary() map[string]string                     { return nil }
func (h *stubHandler) Fallback() bool                                  { return h.fallback }

func (h *stubHandler) ResolveSubtype(_ *report.ExtractionResult) (string, string, bool) {
	if h.subtype == "" {
		return "", "", false
	}
	return h.subtype, h.subtype, true
}

func textResult(text string) *report.ExtractionResult {
	return &report.ExtractionResult{
		InputMode: report.InputText,
		FullText:  text,
		Pages: []report.ExtractedPage{{
			PageNumber: 1,
			Text:       text,
			Method:     report.MethodDirectInput,
			Confidence: 1.0,
			CharCount:  len(text),
		}},
		TotalPages: 1,
		TotalChars: len(text),
	}
}

func TestRegisterAndGet(t *testing.T) {
	r := New(nil)
	h := &stubHandler{id: "alpha"}
	r.Register(h)

	assert.Same(t, testtypes.Handler(h), r.Get("alpha"))
	assert.Nil(t, r.Get("missing"))
}

func TestDetectPicksHighestScore(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "low", score: 0.3})
	r.Register(&stubHandler{id: "high", score: 0.8})

	id, conf := r.Detect(context.Background(), textResult("some report body"))
	assert.Equal(t, "high", id)
	assert.InDelta(t, 0.8, conf, 1e-9)
}

func TestDetectNoHandlers(t *testing.T) {
	r := New(nil)
	id, conf := r.Detect(context.Background(), textResult("anything"))
	assert.Empty(t, id)
	assert.Zero(t, conf)
}

func TestDetectZeroScoresIgnored(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "silent", score: 0})

	id, conf := r.Detect(context.Background(), textResult("anything"))
	assert.Empty(t, id)
	assert.Zero(t, conf)
}

func TestDetectSpecializedBeatsCloseFallback(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "catchall", score: 0.4, fallback: true})
	r.Register(&stubHandler{id: "special", score: 0.3})

	id, conf := r.Detect(context.Background(), textResult("body"))
	assert.Equal(t, "special", id)
	assert.InDelta(t, 0.3, conf, 1e-9)
}

func TestDetectFallbackKeepsClearLead(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "catchall", score: 0.6, fallback: true})
	r.Register(&stubHandler{id: "special", score: 0.3})

	id, _ := r.Detect(context.Background(), textResult("body"))
	assert.Equal(t, "catchall", id)
}

func TestDetectResolvesSubtype(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "family", score: 0.7, subtype: "family_variant"})

	id, conf := r.Detect(context.Background(), textResult("body"))
	assert.Equal(t, "family_variant", id)
	assert.InDelta(t, 0.7, conf, 1e-9)
}

func TestDetectFromHeaderLabel(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "echocardiogram", keywords: []string{"echocardiogram"}})

	res := textResult("Exam Type: Echocardiogram\n\nPatient: ...")
	id, conf := r.Detect(context.Background(), res)
	assert.Equal(t, "echocardiogram", id)
	assert.InDelta(t, HeaderConfidence, conf, 1e-9)
}

func TestDetectFromHeaderModalityLine(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "carotid_doppler", keywords: []string{"carotid"}})

	res := textResult("ULTRASOUND CAROTID BILATERAL\n\nFindings follow.")
	id, conf := r.DetectFromHeader(res)
	assert.Equal(t, "carotid_doppler", id)
	assert.InDelta(t, HeaderConfidence, conf, 1e-9)
}

func TestDetectFromHeaderUnresolvedLabel(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "echocardiogram", keywords: []string{"echocardiogram"}})

	id, conf := r.DetectFromHeader(textResult("Exam Type: Colonoscopy\n"))
	assert.Empty(t, id)
	assert.Zero(t, conf)
}

func TestDetectHeaderOutsideWindowIgnored(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "echocardiogram", keywords: []string{"echocardiogram"}})

	padding := make([]byte, 600)
	for i := range padding {
		padding[i] = 'x'
	}
	res := textResult(string(padding) + "\nExam Type: Echocardiogram\n")
	id, _ := r.DetectFromHeader(res)
	assert.Empty(t, id)
}

func TestDetectCorrectionAdjustment(t *testing.T) {
	// "often" was corrected to "actual" three times: penalty 0.09 on the
	// former, boost 0.09 on the latter, flipping the ranking.
	store := &fakeStore{stats: []CorrectionStat{
		{DetectedType: "often", CorrectedType: "actual", Count: 3},
	}}
	r := New(NewCorrectionCache(store))
	r.Register(&stubHandler{id: "often", score: 0.50})
	r.Register(&stubHandler{id: "actual", score: 0.45})

	id, conf := r.Detect(context.Background(), textResult("body"))
	assert.Equal(t, "actual", id)
	assert.InDelta(t, 0.54, conf, 1e-9)
}

func TestDetectMulti(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "weak", score: 0.2})
	r.Register(&stubHandler{id: "mid", score: 0.4, subtype: "mid_variant"})
	r.Register(&stubHandler{id: "strong", score: 0.9})

	got := r.DetectMulti(textResult("body"), 0.3)
	require.Len(t, got, 2)
	assert.Equal(t, Candidate{TypeID: "strong", Confidence: 0.9}, got[0])
	assert.Equal(t, Candidate{TypeID: "mid_variant", Confidence: 0.4}, got[1])
}

func TestDetectMultiIncludesHeaderResult(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "echocardiogram", keywords: []string{"echocardiogram"}, score: 0.5})

	got := r.DetectMulti(textResult("Study: Echocardiogram\nLVEF normal."), 0.3)
	require.Len(t, got, 2)
	assert.Equal(t, "echocardiogram", got[0].TypeID)
	assert.InDelta(t, HeaderConfidence, got[0].Confidence, 1e-9)
}

func TestResolvePrefersLongestKeyword(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "short", keywords: []string{"echo"}})
	r.Register(&stubHandler{id: "long", keywords: []string{"echocardiogram"}})

	id, h := r.Resolve("Echocardiogram report")
	require.NotNil(t, h)
	assert.Equal(t, "long", id)
}

func TestResolveExactIDBeforeKeywords(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "lab_results", keywords: []string{"lab results"}})

	id, h := r.Resolve("lab_results")
	require.NotNil(t, h)
	assert.Equal(t, "lab_results", id)
}

func TestResolveUnknown(t *testing.T) {
	r := New(nil)
	r.Register(&stubHandler{id: "alpha", keywords: []string{"alpha report"}})

	id, h := r.Resolve("completely unrelated")
	assert.Empty(t, id)
	assert.Nil(t, h)
}

func TestSubtypeRegistration(t *testing.T) {
	r := New(nil)
	parent := &stubHandler{id: "family"}
	r.Register(parent)
	r.Register(&stubHandler{id: "other"})
	r.RegisterSubtype("family_variant", parent)

	// Subtype IDs resolve to the family handler.
	assert.Same(t, testtypes.Handler(parent), r.Get("family_variant"))
	id, h := r.Resolve("family_variant")
	assert.Equal(t, "family_variant", id)
	assert.Same(t, testtypes.Handler(parent), h)

	// The parent is hidden from listings once subtypes replace it.
	types := r.ListTypes()
	require.Len(t, types, 1)
	assert.Equal(t, "other", types[0].ID)
}

func TestDefaultRegistryListing(t *testing.T) {
	r := Default(nil)

	ids := make(map[string]bool)
	for _, m := range r.ListTypes() {
		ids[m.ID] = true
	}
	for _, want := range []string{
		"echocardiogram", "lab_results", "carotid_doppler",
		"arterial_doppler", "venous_doppler", "coronary_diagram", "generic",
	} {
		assert.True(t, ids[want], "missing %s", want)
	}
	// Stress is listed through its subtypes, not as a family.
	assert.False(t, ids["stress_test"])

	assert.NotNil(t, r.Get("pharma_spect_stress"))
	assert.NotEmpty(t, r.Glossary("exercise_treadmill_test"))
	assert.NotEmpty(t, r.ReferenceRanges("echocardiogram"))
	assert.Nil(t, r.ReferenceRanges("unknown_type"))
}

func TestDefaultRegistryDeterministic(t *testing.T) {
	res := textResult("CAROTID DUPLEX ULTRASOUND\n\n" +
		"Dist CCA 63.8 12.1 Dist CCA 70.7 15.9\n" +
		"Prox ICA 80.2 20.1 Prox ICA 90.7 25.9\n" +
		"Moderate plaque at the left carotid bulb.")

	r := Default(nil)
	firstID, firstConf := r.Detect(context.Background(), res)
	require.NotEmpty(t, firstID)
	for range 10 {
		id, conf := r.Detect(context.Background(), res)
		assert.Equal(t, firstID, id)
		assert.InDelta(t, firstConf, conf, 1e-12)
	}
}

// fakeStore serves canned stats and counts queries.
type fakeStore struct {
	stats   []CorrectionStat
	queries int
	err     error
}

func (f *fakeStore) Record(_ context.Context, _, _ string) error { return nil }

func (f *fakeStore) Stats(_ context.Context) ([]CorrectionStat, error) {
	f.queries++
	return f.stats, f.err
}
