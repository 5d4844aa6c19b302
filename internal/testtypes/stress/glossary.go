package stress

var glossary = map[string]string{
	"METs":              "Metabolic equivalents, a measure of exercise workload. One MET is the energy used at rest; higher values mean better exercise capacity.",
	"Peak Heart Rate":   "The highest heart rate reached during exercise, usually compared against an age-predicted maximum.",
	"MPHR":              "Percent of maximum predicted heart rate achieved. Reaching at least 85% is generally considered an adequate stress level.",
	"ST Depression":     "A downward shift of the ST segment on the ECG during exercise that may indicate reduced blood flow to the heart muscle.",
	"Duke Score":        "The Duke treadmill score combines exercise time, ST changes, and angina into a single prognostic number. Higher is better.",
	"Rate Pressure Product": "Peak heart rate multiplied by peak systolic blood pressure, reflecting the workload placed on the heart.",
	"Bruce Protocol":    "A standard treadmill protocol where speed and incline increase every three minutes.",
	"Perfusion Defect":  "An area of the heart muscle that receives less blood on nuclear imaging, either only at stress (ischemia) or at both rest and stress (scar).",
	"Ischemia":          "Reduced blood supply to the heart muscle, typically from narrowed coronary arteries.",
	"SPECT":             "Single-photon emission computed tomography, a nuclear imaging method used to picture blood flow in the heart muscle.",
	"PET":               "Positron emission tomography, a nuclear imaging method that can also measure absolute blood flow in the heart muscle.",
	"Myocardial Blood Flow": "The amount of blood delivered to the heart muscle, reported in mL per minute per gram of tissue.",
	"Coronary Flow Reserve": "The ratio of blood flow at peak stress to blood flow at rest. Values of 2.0 or higher are considered normal.",
	"LVEF":              "Left ventricular ejection fraction, the percentage of blood the main pumping chamber ejects with each beat.",
	"Regadenoson":       "A medication (brand name Lexiscan) used to simulate exercise stress in patients who cannot exercise adequately.",
	"Dobutamine":        "A medication that increases heart rate and contraction strength, used for pharmacologic stress echocardiography.",
	"Wall Motion":       "How well each region of the heart muscle contracts. New wall motion abnormalities during stress suggest ischemia.",
	"Chronotropic Response": "How appropriately the heart rate rises with exercise. A blunted rise is called chronotropic incompetence.",
}
