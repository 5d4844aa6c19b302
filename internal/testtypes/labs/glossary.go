package labs

// glossary maps lab terms to plain-English explanations, written at a
// 6th-8th grade reading level for patient-facing output.
var glossary = map[string]string{
	"Laboratory Results": "A report showing the results of blood or urine tests. These tests " +
		"measure different substances in your body to check how well your organs are working " +
		"and to look for signs of disease.",
	"Reference Range": "The range of values that is considered normal for a particular test. " +
		"Results outside this range may need further evaluation, but a single out-of-range " +
		"result does not always mean something is wrong.",
	"Flag": "A marker on a lab result (usually 'H' for high or 'L' for low) that shows the " +
		"value is outside the normal reference range.",
	"Comprehensive Metabolic Panel": "A group of 14 blood tests that gives your doctor " +
		"important information about your body's chemical balance, blood sugar, and how well " +
		"your kidneys and liver are working. It is often abbreviated as CMP.",
	"Complete Blood Count": "A common blood test that counts your red blood cells, white " +
		"blood cells, and platelets. It is often abbreviated as CBC and helps find conditions " +
		"like anemia and infection.",
	"Glucose": "The amount of sugar in your blood. High levels can be a sign of diabetes or " +
		"prediabetes, especially when measured after fasting.",
	"Creatinine": "A waste product made by your muscles that is removed by your kidneys. " +
		"High levels can mean your kidneys are not filtering blood as well as they should.",
	"eGFR": "An estimate of how well your kidneys filter waste from your blood. A lower " +
		"number means reduced kidney function.",
	"Hemoglobin": "The protein in red blood cells that carries oxygen. Low hemoglobin is " +
		"called anemia and can make you feel tired or short of breath.",
	"Hematocrit": "The percentage of your blood that is made up of red blood cells. It is " +
		"usually checked together with hemoglobin.",
	"Platelet Count": "The number of platelets in your blood. Platelets help your blood " +
		"clot. Too few can cause easy bruising or bleeding; too many can increase clot risk.",
	"White Blood Cells": "Cells that fight infection. A high count often means your body is " +
		"fighting an infection or inflammation; a low count can make infections more likely.",
	"HDL Cholesterol": "Often called 'good' cholesterol. Higher levels help protect against " +
		"heart disease by carrying cholesterol away from your arteries.",
	"LDL Cholesterol": "Often called 'bad' cholesterol. High levels can build up in your " +
		"arteries and raise your risk of heart attack and stroke.",
	"Triglycerides": "A type of fat in your blood. High levels are linked to heart disease " +
		"and can be raised by diet, alcohol, and some medical conditions.",
	"TSH": "Thyroid stimulating hormone, made by a gland in your brain to control your " +
		"thyroid. A high TSH usually means an underactive thyroid; a low TSH usually means " +
		"an overactive thyroid.",
	"Free T4": "The active thyroid hormone available to your body. It is checked together " +
		"with TSH to understand how your thyroid is working.",
	"Ferritin": "A protein that stores iron. Low ferritin is one of the earliest signs of " +
		"iron deficiency; high ferritin can occur with inflammation or iron overload.",
	"TIBC": "Total iron binding capacity, a measure of how much iron your blood can carry. " +
		"It is usually high when your body is low on iron.",
	"HbA1c": "A measure of your average blood sugar over the past 2-3 months. It is used to " +
		"diagnose and monitor diabetes.",
	"Urinalysis": "A set of tests on a urine sample that checks for signs of infection, " +
		"kidney disease, and diabetes.",
	"Anemia": "A condition where you have fewer red blood cells or less hemoglobin than " +
		"normal, which can make you feel tired, weak, or short of breath.",
}
