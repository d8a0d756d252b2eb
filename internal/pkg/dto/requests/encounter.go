package requests

import "gangosri-portal/internal/app/models"

type CreateEncounter struct {
	PatientID      string        `json:"patient_id" validate:"required"`
	AppointmentID  string        `json:"appointment_id,omitempty"`
	ChiefComplaint string        `json:"chief_complaint" validate:"required"`
	Vitals         models.Vitals `json:"vitals"`
	Diagnosis      string        `json:"diagnosis,omitempty"`
	ClinicalNotes  string        `json:"clinical_notes,omitempty"`
	TreatmentPlan  string        `json:"treatment_plan,omitempty"`
	FollowUp       string        `json:"follow_up,omitempty"`
}
