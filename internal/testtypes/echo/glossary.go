package echo

// glossary maps echocardiography terms to plain-English explanations.
var glossary = map[string]string{
	"Echocardiogram": "An ultrasound test that uses sound waves to create pictures of the " +
		"heart. It shows the heart's size, shape, and how well it is pumping.",
	"Transthoracic Echocardiogram": "An echocardiogram performed by placing an ultrasound " +
		"probe on the chest wall. This is the most common type of heart ultrasound.",
	"Doppler": "A technique used during an echocardiogram to measure the speed and " +
		"direction of blood flow through the heart and blood vessels.",
	"Left Ventricle": "The heart's main pumping chamber, located in the lower left. It " +
		"pumps oxygen-rich blood out to the body through the aorta.",
	"Left Atrium": "The upper left chamber of the heart. It receives oxygen-rich blood " +
		"returning from the lungs and passes it to the left ventricle.",
	"Interventricular Septum": "The muscular wall between the left and right ventricles. " +
		"If this wall is thicker than normal, it may suggest high blood pressure or other " +
		"conditions.",
	"Ejection Fraction": "The percentage of blood pumped out of the heart's main pumping " +
		"chamber (left ventricle) with each heartbeat. A normal ejection fraction is about " +
		"52-70%. A lower number means the heart is not pumping as strongly as it should.",
	"LVEF": "Left Ventricular Ejection Fraction, the percentage of blood the left " +
		"ventricle pumps out with each beat. Normal is typically 52-70%.",
	"Fractional Shortening": "Another way to measure how well the left ventricle squeezes " +
		"with each beat, based on how much its diameter changes.",
	"Diastolic Function": "How well the heart relaxes and fills with blood between beats. " +
		"Problems with relaxation can cause symptoms even when the pumping strength is " +
		"normal.",
	"Regurgitation": "When a heart valve does not close completely and some blood leaks " +
		"backward. Small amounts are common and often harmless.",
	"Stenosis": "When a heart valve is narrowed and does not open fully, making the heart " +
		"work harder to push blood through.",
	"TAPSE": "A measurement of how well the right ventricle is pumping, taken at the " +
		"tricuspid valve. A lower value can mean the right side of the heart is weakened.",
	"RVSP": "Right ventricular systolic pressure, an estimate of the blood pressure in " +
		"the arteries of the lungs. High values can indicate pulmonary hypertension.",
	"Pericardial Effusion": "Extra fluid in the sac that surrounds the heart. Small " +
		"amounts may not cause problems; larger amounts can press on the heart.",
}
