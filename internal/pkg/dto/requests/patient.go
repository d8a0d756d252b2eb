package requests

type CreatePatient struct {
	FullName         string `json:"full_name" validate:"required"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"`
	Gender           string `json:"gender" validate:"required,oneof=Male Female Other"`
	Phone            string `json:"phone" validate:"required"`
	Email            string `json:"email,omitempty" validate:"omitempty,email"`
	Address          string `json:"address,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	InsuranceInfo    string `json:"insurance_info,omitempty"`
	MedicalHistory   string `json:"medical_history,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
}
