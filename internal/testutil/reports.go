// Package testutil provides synthetic medical report fixtures and page
// image rendering shared by package tests.
package testutil

// SampleEchoReport is a transthoracic echocardiogram with a normal left
// ventricle and mild aortic regurgitation.
const SampleEchoReport = `ECHOCARDIOGRAM REPORT
Patient: John Doe
Age/Sex: 67/M
Study Date: 01/15/2024
Referred by: Dr. Sarah Chen, MD

FINDINGS:
Left ventricle is normal in size. LVEF: 60%.
IVSd: 1.0 cm. LVIDd: 4.8 cm.
Left atrium mildly dilated, LA: 4.2 cm.
Aortic valve is trileaflet with mild regurgitation.

IMPRESSION:
1. Normal left ventricular systolic function.
2. Mild aortic regurgitation.
`

// SampleCarotidReport is a bilateral carotid duplex with moderate right
// ICA stenosis.
const SampleCarotidReport = `CAROTID DUPLEX ULTRASOUND
Age/Sex: 72/F
Study Date: 02/20/2024

FINDINGS:
Right ICA PSV 180 cm/s, EDV 60 cm/s. ICA/CCA ratio 2.5.
Left ICA PSV 90 cm/s, EDV 30 cm/s.
Moderate plaque at the right carotid bulb.

IMPRESSION:
Moderate (50-69%) stenosis of the right internal carotid artery.
`

// SampleLabReport is a pipe-delimited Epic lab export with one low and
// one high analyte.
const SampleLabReport = `LABORATORY RESULTS
Generated by Epic Systems Corporation
Collected: 03/10/2024

Component | Value | Units | Reference Range
----------|-------|-------|----------------
Hemoglobin | 10.2 | g/dL | 12.0-16.0
WBC | 7.2 | K/uL | 4.5-11.0
Platelets | 520 | K/uL | 150-400
Sodium | 139 | mmol/L | 136-145
`

// SampleStressReport is an exercise treadmill stress test.
const SampleStressReport = `EXERCISE TREADMILL STRESS TEST
Age/Sex: 55/M
Test Date: 04/05/2024

Protocol: Bruce. Exercise duration 9:30. 10.1 METS achieved.
Max HR 155 bpm (94% of predicted). Peak BP 180/90 mmHg.
No chest pain. No significant ST changes.

IMPRESSION:
Negative for ischemia at achieved workload. Good exercise capacity.
`
