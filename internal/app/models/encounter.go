package models

type Vitals struct {
	Temperature      string `json:"temperature,omitempty"`
	BloodPressure    string `json:"blood_pressure,omitempty"`
	HeartRate        string `json:"heart_rate,omitempty"`
	RespiratoryRate  string `json:"respiratory_rate,omitempty"`
	OxygenSaturation string `json:"oxygen_saturation,omitempty"`
}

func (v Vitals) IsEmpty() bool {
	return v == Vitals{}
}

type Encounter struct {
	ID             string `json:"id"`
	EncounterID    string `json:"encounter_id"`
	PatientID      string `json:"patient_id"`
	PatientName    string `json:"patient_name"`
	DoctorID       string `json:"doctor_id"`
	DoctorName     string `json:"doctor_name"`
	AppointmentID  string `json:"appointment_id,omitempty"`
	ChiefComplaint string `json:"chief_complaint"`
	Vitals         Vitals `json:"vitals,omitempty"`
	Diagnosis      string `json:"diagnosis,omitempty"`
	ClinicalNotes  string `json:"clinical_notes,omitempty"`
	TreatmentPlan  string `json:"treatment_plan,omitempty"`
	FollowUp       string `json:"follow_up,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	CreatedBy      string `json:"created_by,omitempty"`
}
