package records

// seedPatients returns the demo patient set the store is initialized with.
// The store is never empty: these three records exist from startup and the
// first one is the initial current patient.
func seedPatients() []*Patient {
	return []*Patient{
		{
			ID:     1,
			Name:   "John Doe",
			Age:    42,
			Gender: "Male",
			MedicalHistory: MedicalHistory{
				ChronicConditions: []Condition{
					{Name: "Type 2 Diabetes", DiagnosedYear: "2018"},
					{Name: "Hypertension", DiagnosedYear: "2019"},
					{Name: "Mild Asthma", DiagnosedYear: "childhood"},
				},
				Surgeries: []Surgery{
					{Name: "Appendectomy", Year: 2010},
					{Name: "Knee arthroscopy", Year: 2015},
				},
				Allergies: []Allergy{
					{Name: "Penicillin", Severity: "moderate"},
					{Name: "Shellfish", Severity: "severe"},
					{Name: "Pollen", Severity: "mild, seasonal"},
				},
				Medications: []Medication{
					{Name: "Metformin", Dosage: "500mg, twice daily", Purpose: "For diabetes"},
					{Name: "Lisinopril", Dosage: "10mg, once daily", Purpose: "For hypertension"},
					{Name: "Albuterol", Dosage: "As needed", Purpose: "For asthma"},
					{Name: "Atorvastatin", Dosage: "20mg, once daily", Purpose: "For cholesterol"},
				},
			},
			Diagnoses: []Diagnosis{
				{
					Name:   "Type 2 Diabetes Mellitus",
					Date:   "March 15, 2018",
					Status: DiagnosisOngoing,
					Notes:  "Patient has been managing Type 2 Diabetes with medication and lifestyle changes. Recent HbA1c levels show moderate control at 7.2% (target <7.0%).",
				},
				{
					Name:   "Hypertension",
					Date:   "June 22, 2019",
					Status: DiagnosisOngoing,
					Notes:  "Blood pressure has been generally well-controlled with medication. Recent readings average 138/85 mmHg (target <130/80 mmHg).",
				},
				{
					Name:   "Upper Respiratory Infection",
					Date:   "January 5, 2023",
					Status: DiagnosisResolved,
					Notes:  "Patient presented with cough, congestion, and low-grade fever. Treated with rest, fluids, and over-the-counter medications. Symptoms resolved within 10 days.",
				},
			},
			LabResults: map[string]LabPanel{
				"cbc": {
					Date: "March 10, 2023",
					Results: []LabValue{
						{Name: "WBC", Value: "7.2 K/uL"},
						{Name: "RBC", Value: "4.8 M/uL"},
						{Name: "Hemoglobin", Value: "14.2 g/dL"},
						{Name: "Hematocrit", Value: "42%"},
					},
				},
				"lipidPanel": {
					Date: "March 10, 2023",
					Results: []LabValue{
						{Name: "Total Cholesterol", Value: "195 mg/dL"},
						{Name: "HDL", Value: "45 mg/dL"},
						{Name: "LDL", Value: "120 mg/dL"},
						{Name: "Triglycerides", Value: "150 mg/dL"},
					},
				},
				"diabetesMonitoring": {
					Date: "March 10, 2023",
					Results: []LabValue{
						{Name: "Fasting Glucose", Value: "135 mg/dL"},
						{Name: "HbA1c", Value: "7.2%"},
					},
				},
			},
			Appointments: Appointments{
				Upcoming: []Appointment{
					{Type: "Annual Physical Examination", Provider: "Dr. Sarah Johnson", Date: "July 15, 2023", Time: "10:30 AM"},
					{Type: "Diabetes Follow-up", Provider: "Dr. Michael Chen", Date: "August 3, 2023", Time: "2:15 PM"},
				},
				Past: []Appointment{
					{Type: "Quarterly Diabetes Check", Provider: "Dr. Michael Chen", Date: "March 10, 2023", Time: "1:45 PM"},
					{Type: "Blood Pressure Follow-up", Provider: "Dr. Sarah Johnson", Date: "January 22, 2023", Time: "9:15 AM"},
				},
			},
		},
		{
			ID:     2,
			Name:   "Sarah Smith",
			Age:    35,
			Gender: "Female",
			MedicalHistory: MedicalHistory{
				ChronicConditions: []Condition{
					{Name: "Migraine", DiagnosedYear: "2015"},
					{Name: "Anxiety Disorder", DiagnosedYear: "2017"},
				},
				Surgeries: []Surgery{
					{Name: "Tonsillectomy", Year: 2010},
				},
				Allergies: []Allergy{
					{Name: "Dust mites", Severity: "moderate"},
					{Name: "Latex", Severity: "mild"},
				},
				Medications: []Medication{
					{Name: "Sumatriptan", Dosage: "50mg, as needed", Purpose: "For migraines"},
					{Name: "Escitalopram", Dosage: "10mg, once daily", Purpose: "For anxiety"},
				},
			},
			Diagnoses: []Diagnosis{
				{
					Name:   "Chronic Migraine",
					Date:   "April 10, 2015",
					Status: DiagnosisOngoing,
					Notes:  "Patient experiences 3-4 migraine episodes per month, typically lasting 6-12 hours. Triggers include stress, lack of sleep, and certain foods.",
				},
				{
					Name:   "Generalized Anxiety Disorder",
					Date:   "September 5, 2017",
					Status: DiagnosisOngoing,
					Notes:  "Patient reports persistent worry and difficulty relaxing. Currently managed with medication and cognitive behavioral therapy.",
				},
			},
			LabResults: map[string]LabPanel{
				"cbc": {
					Date: "February 15, 2023",
					Results: []LabValue{
						{Name: "WBC", Value: "6.8 K/uL"},
						{Name: "RBC", Value: "4.5 M/uL"},
						{Name: "Hemoglobin", Value: "13.8 g/dL"},
						{Name: "Hematocrit", Value: "41%"},
					},
				},
				"thyroidPanel": {
					Date: "February 15, 2023",
					Results: []LabValue{
						{Name: "TSH", Value: "2.4 mIU/L"},
						{Name: "Free T4", Value: "1.1 ng/dL"},
					},
				},
			},
			Appointments: Appointments{
				Upcoming: []Appointment{
					{Type: "Anxiety Management Follow-up", Provider: "Dr. Sarah Johnson", Date: "July 20, 2023", Time: "1:00 PM"},
				},
				Past: []Appointment{
					{Type: "Annual Physical", Provider: "Dr. Sarah Johnson", Date: "February 15, 2023", Time: "10:00 AM"},
					{Type: "Migraine Consultation", Provider: "Dr. Robert Lee", Date: "November 12, 2022", Time: "3:30 PM"},
				},
			},
		},
		{
			ID:     3,
			Name:   "Michael Johnson",
			Age:    58,
			Gender: "Male",
			MedicalHistory: MedicalHistory{
				ChronicConditions: []Condition{
					{Name: "Coronary Artery Disease", DiagnosedYear: "2016"},
					{Name: "Osteoarthritis", DiagnosedYear: "2019"},
				},
				Surgeries: []Surgery{
					{Name: "Coronary Bypass Surgery", Year: 2017},
					{Name: "Knee Replacement (Right)", Year: 2020},
				},
				Allergies: []Allergy{
					{Name: "Sulfa drugs", Severity: "severe"},
				},
				Medications: []Medication{
					{Name: "Atorvastatin", Dosage: "40mg, once daily", Purpose: "For cholesterol"},
					{Name: "Aspirin", Dosage: "81mg, once daily", Purpose: "For heart health"},
					{Name: "Metoprolol", Dosage: "25mg, twice daily", Purpose: "For blood pressure"},
					{Name: "Acetaminophen", Dosage: "500mg, as needed", Purpose: "For joint pain"},
				},
			},
			Diagnoses: []Diagnosis{
				{
					Name:   "Coronary Artery Disease",
					Date:   "October 3, 2016",
					Status: DiagnosisOngoing,
					Notes:  "Patient underwent CABG in 2017. Currently stable with medication management and lifestyle modifications.",
				},
				{
					Name:   "Osteoarthritis",
					Date:   "March 15, 2019",
					Status: DiagnosisOngoing,
					Notes:  "Primarily affecting knees and hands. Right knee replacement in 2020 with good recovery. Left knee shows moderate degeneration.",
				},
			},
			LabResults: map[string]LabPanel{
				"cbc": {
					Date: "April 5, 2023",
					Results: []LabValue{
						{Name: "WBC", Value: "7.5 K/uL"},
						{Name: "RBC", Value: "4.6 M/uL"},
						{Name: "Hemoglobin", Value: "14.5 g/dL"},
						{Name: "Hematocrit", Value: "43%"},
					},
				},
				"lipidPanel": {
					Date: "April 5, 2023",
					Results: []LabValue{
						{Name: "Total Cholesterol", Value: "165 mg/dL"},
						{Name: "HDL", Value: "42 mg/dL"},
						{Name: "LDL", Value: "95 mg/dL"},
						{Name: "Triglycerides", Value: "140 mg/dL"},
					},
				},
				"cardiacEnzymes": {
					Date: "April 5, 2023",
					Results: []LabValue{
						{Name: "Troponin I", Value: "<0.01 ng/mL"},
						{Name: "CK-MB", Value: "3.1 ng/mL"},
					},
				},
			},
			Appointments: Appointments{
				Upcoming: []Appointment{
					{Type: "Cardiology Follow-up", Provider: "Dr. James Wilson", Date: "July 25, 2023", Time: "9:00 AM"},
					{Type: "Orthopedic Evaluation", Provider: "Dr. Lisa Chen", Date: "August 10, 2023", Time: "11:30 AM"},
				},
				Past: []Appointment{
					{Type: "Annual Physical", Provider: "Dr. Sarah Johnson", Date: "April 5, 2023", Time: "2:00 PM"},
					{Type: "Cardiac Stress Test", Provider: "Dr. James Wilson", Date: "January 15, 2023", Time: "10:30 AM"},
				},
			},
		},
	}
}
