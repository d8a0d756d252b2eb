package models

type Patient struct {
	ID               string `json:"id"`
	PatientID        string `json:"patient_id"`
	FullName         string `json:"full_name"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	Address          string `json:"address,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	InsuranceInfo    string `json:"insurance_info,omitempty"`
	MedicalHistory   string `json:"medical_history,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
	CreatedBy        string `json:"created_by,omitempty"`
}
