package models

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type Prescription struct {
	ID             string       `json:"id"`
	PrescriptionID string       `json:"prescription_id"`
	PatientID      string       `json:"patient_id"`
	PatientName    string       `json:"patient_name"`
	DoctorID       string       `json:"doctor_id"`
	DoctorName     string       `json:"doctor_name"`
	EncounterID    string       `json:"encounter_id,omitempty"`
	Medications    []Medication `json:"medications"`
	Instructions   string       `json:"instructions,omitempty"`
	CreatedAt      string       `json:"created_at,omitempty"`
	CreatedBy      string       `json:"created_by,omitempty"`
}
