package venous

var glossary = map[string]string{
	"Venous Duplex Scan":           "An ultrasound test that checks the veins in your legs for blood clots and abnormal blood flow. It combines a regular ultrasound image with Doppler flow measurements.",
	"Deep Vein Thrombosis (DVT)":   "A blood clot that forms in a deep vein, usually in the leg. DVT can be dangerous if the clot breaks loose and travels to the lungs.",
	"Venous Reflux":                "When blood flows backward in a vein instead of moving toward the heart. This happens when the valves inside the vein are not working properly.",
	"Greater Saphenous Vein (GSV)": "The longest vein in the body, running from the foot up the inner leg to the groin. Problems with this vein are a common cause of varicose veins.",
	"Lesser Saphenous Vein (LSV)":  "A vein that runs along the back of the lower leg. Like the greater saphenous vein, it can develop reflux leading to varicose veins.",
	"Common Femoral Vein (CFV)":    "A large vein in the upper thigh that carries blood back to the heart. It is one of the main veins checked for blood clots.",
	"Popliteal Vein":               "The vein behind the knee. Blood clots here are clinically significant and typically require treatment.",
	"Compressibility":              "The ability of a vein to be squeezed flat with the ultrasound probe. A normal vein compresses easily. If it does not compress, a blood clot may be present.",
	"Phasic Flow":                  "Blood flow in a vein that changes with breathing. This is a normal finding showing the vein is open.",
	"Reflux Time":                  "How long blood flows backward in a vein after a squeeze test. Longer times mean the vein valves are leaking more.",
	"Augmentation":                 "A brief increase in blood flow when the lower leg is squeezed during the exam. Normal augmentation shows the vein is open between the probe and the squeeze.",
	"Varicose Veins":               "Enlarged, twisted veins visible under the skin, usually in the legs. They often result from venous reflux.",
	"Venous Insufficiency":         "A condition where leg veins have trouble sending blood back to the heart, causing swelling, aching, or skin changes.",
}
