package requests

import "gangosri-portal/internal/app/models"

type CreatePrescription struct {
	PatientID    string              `json:"patient_id" validate:"required"`
	EncounterID  string              `json:"encounter_id,omitempty"`
	Medications  []models.Medication `json:"medications" validate:"required,min=1,dive"`
	Instructions string              `json:"instructions,omitempty"`
}
