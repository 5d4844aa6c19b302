package stress

import "strings"

// Subtype axes: pharmacologic vs exercise, crossed with imaging modality.
// Modality keywords are checked in priority order PET > SPECT > Echo; a
// report with none of them is an ECG-only treadmill test.
type subtypeKey struct {
	pharma   bool
	modality string
}

var subtypes = map[subtypeKey][2]string{
	{false, "ecg"}: {"exercise_treadmill_test", "Exercise Treadmill Test"},
	// pharma without imaging keywords defaults to SPECT
	{true, "ecg"}:    {"pharma_spect_stress", "Pharmacologic SPECT Nuclear Stress"},
	{true, "spect"}:  {"pharma_spect_stress", "Pharmacologic SPECT Nuclear Stress"},
	{false, "spect"}: {"exercise_spect_stress", "Exercise SPECT Nuclear Stress"},
	{true, "pet"}:    {"pharma_pet_stress", "Pharmacologic PET/PET-CT Stress"},
	{false, "pet"}:   {"exercise_pet_stress", "Exercise PET/PET-CT Stress"},
	{false, "echo"}:  {"exercise_stress_echo", "Exercise Stress Echocardiogram"},
	{true, "echo"}:   {"pharma_stress_echo", "Pharmacologic Stress Echocardiogram"},
}

// Vasodilators and dobutamine.
var pharmaAgents = []string{
	"lexiscan", "regadenoson", "adenosine", "dipyridamole",
	"persantine", "dobutamine",
	"pharmacologic stress test", "pharmacological stress test",
	"pharmacologic stress was", "pharmacological stress was",
	"pharmacologic stress protocol",
}

var petKeywords = []string{
	"pet/ct", "pet-ct", "pet ct", "rb-82", "rubidium",
	"n-13", "ammonia pet", "positron emission", "cardiac pet",
	"myocardial blood flow", "mbf", "coronary flow reserve", "cfr",
	"positron", "n-13 ammonia",
}

var spectKeywords = []string{
	"spect", "sestamibi", "technetium", "tc-99m", "myoview",
	"cardiolite", "thallium", "nuclear stress", "myocardial perfusion imaging",
	"nuclear cardiology", "mpi",
}

var echoKeywords = []string{
	"stress echo", "stress echocardiogram", "dobutamine echo",
	"dobutamine stress echo", "exercise echo", "bicycle stress",
	"wall motion at stress", "exercise echocardiogram",
	"treadmill echo", "dobutamine echocardiogram",
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// classifySubtype determines the specific stress test variant.
func classifySubtype(text string) (id, display string) {
	lower := strings.ToLower(text)

	pharma := containsAny(lower, pharmaAgents)

	modality := "ecg"
	switch {
	case containsAny(lower, petKeywords):
		modality = "pet"
	case containsAny(lower, spectKeywords):
		modality = "spect"
	case containsAny(lower, echoKeywords):
		modality = "echo"
	}

	st := subtypes[subtypeKey{pharma, modality}]
	return st[0], st[1]
}

func isPETSubtype(id string) bool {
	return id == "pharma_pet_stress" || id == "exercise_pet_stress"
}

// SubtypeIDs returns the distinct stress test subtype identifiers, in a
// stable order. Registries use it to map each subtype back to this family.
func SubtypeIDs() []string {
	return []string{
		"exercise_treadmill_test",
		"pharma_spect_stress",
		"exercise_spect_stress",
		"pharma_pet_stress",
		"exercise_pet_stress",
		"exercise_stress_echo",
		"pharma_stress_echo",
	}
}
