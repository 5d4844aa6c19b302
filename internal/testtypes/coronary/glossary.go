package coronary

var glossary = map[string]string{
	"RCA":                     "Right Coronary Artery, the artery that supplies blood to the right side and bottom of the heart. It runs along the right side of the heart.",
	"LAD":                     "Left Anterior Descending artery, which supplies blood to the front and bottom of the left side of the heart. It is the largest coronary artery and blockages here are often called 'widow-maker' lesions.",
	"LCx":                     "Left Circumflex artery, which wraps around the left side of the heart and supplies blood to the back and side walls of the heart.",
	"Left Main":               "The short trunk artery that branches into the LAD and LCx. A blockage here is very serious because it affects blood supply to most of the left side of the heart.",
	"Cardiac Catheterization": "A procedure where a thin tube (catheter) is inserted into a blood vessel, usually in the wrist or groin, and threaded to the heart. It is used to diagnose and sometimes treat heart conditions.",
	"Coronary Angiogram":      "An X-ray test that uses dye to visualize the coronary arteries and identify any blockages. It is considered the gold standard for diagnosing coronary artery disease.",
	"Ventriculogram":          "An X-ray image of the left ventricle taken during catheterization by injecting dye into the pumping chamber. It shows how well the heart is squeezing.",
	"PCI":                     "Percutaneous Coronary Intervention, a procedure to open up blocked coronary arteries using a balloon and often a stent, performed through a catheter.",
	"Stenosis":                "Narrowing of a blood vessel, usually caused by plaque buildup. The percentage tells how much of the artery opening is blocked.",
	"CTO":                     "Chronic Total Occlusion, a coronary artery that has been completely blocked for more than three months.",
	"Stent":                   "A small metal mesh tube placed inside a narrowed artery to hold it open after a balloon procedure.",
	"SVG":                     "Saphenous Vein Graft, a vein taken from the leg and used during bypass surgery to route blood around a blocked coronary artery.",
	"LIMA":                    "Left Internal Mammary Artery, a chest wall artery commonly used as a bypass graft to the LAD. It has excellent long-term durability.",
	"IVUS":                    "Intravascular Ultrasound, a tiny ultrasound probe on a catheter that images the inside of a coronary artery during the procedure.",
	"LVEDP":                   "Left Ventricular End-Diastolic Pressure, the pressure inside the main pumping chamber just before it contracts. Elevated values can indicate heart failure.",
	"PCWP":                    "Pulmonary Capillary Wedge Pressure, an indirect measure of the pressure in the left side of the heart, obtained with a balloon-tipped catheter.",
	"Hemodynamics":            "The measurement of blood pressures inside the heart chambers and major vessels during catheterization.",
	"Calcification":           "Calcium deposits that harden plaque inside artery walls. Heavy calcification can make arteries harder to treat with stents.",
}
