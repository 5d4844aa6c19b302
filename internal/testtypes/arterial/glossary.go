package arterial

var glossary = map[string]string{
	"Lower Extremity Arterial Ultrasound": "An ultrasound test that checks the blood flow in the arteries of your legs. It helps detect blockages that could cause leg pain or poor circulation.",
	"Claudication":                        "Pain, cramping, or tiredness in the legs during walking that goes away with rest. It is caused by reduced blood flow to the leg muscles.",
	"Peripheral Arterial Disease (PAD)":   "A condition where the arteries in the legs become narrowed or blocked, reducing blood flow to the feet and legs.",
	"Common Femoral Artery (CFA)":         "The main artery in the upper thigh that supplies blood to the leg. It is one of the first arteries checked in a leg arterial ultrasound.",
	"Profunda Femoris Artery (PFA)":       "A deep artery in the thigh that supplies blood to the thigh muscles. Also called the deep femoral artery.",
	"Superficial Femoral Artery (SFA)":    "The artery that runs along the inner thigh, carrying blood from the groin down toward the knee.",
	"Popliteal Artery (Pop A)":            "The artery behind the knee. It is a continuation of the femoral artery and supplies blood to the lower leg.",
	"Posterior Tibial Artery (PTA)":       "An artery in the lower leg that runs behind the shin bone and supplies blood to the foot. Its pulse can be felt near the inner ankle.",
	"Dorsalis Pedis Artery (DPA)":         "An artery on top of the foot. Its pulse can be felt between the first and second toe tendons.",
	"Anterior Tibial Artery (ATA)":        "An artery in the front of the lower leg that carries blood down toward the top of the foot.",
	"Ankle-Brachial Index (ABI)":          "A comparison of the blood pressure at your ankle to the pressure in your arm. A lower number suggests narrowed leg arteries.",
	"Triphasic Waveform":                  "A normal blood flow pattern in leg arteries with three phases per heartbeat. It indicates healthy, elastic arteries.",
	"Monophasic Waveform":                 "A blood flow pattern with only one phase per heartbeat. It can indicate significant narrowing upstream in the artery.",
	"Patent":                              "Open and unblocked. A patent artery means blood can flow through it normally.",
	"Stenosis":                            "Narrowing of a blood vessel, usually caused by plaque buildup on the artery wall.",
}
