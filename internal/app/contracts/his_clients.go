package contracts

import (
	"context"

	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
)

// One client per HIS backend collection. Every call carries the session's
// bearer token; none of them retries, caches, or mutates shared state.

type AuthHisClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Token, error)
	Register(ctx context.Context, token string, request *requests.RegisterUser) (*models.UserProfile, error)
}

type PatientHisClient interface {
	FindAll(ctx context.Context, token, search string) ([]models.Patient, error)
	FindByID(ctx context.Context, token, patientID string) (*models.Patient, error)
	Create(ctx context.Context, token string, request *requests.CreatePatient) (*models.Patient, error)
}

type UserHisClient interface {
	FindAll(ctx context.Context, token string) ([]models.UserProfile, error)
	FindDoctors(ctx context.Context, token string) ([]models.UserProfile, error)
	UpdateStatus(ctx context.Context, token, userID string, request *requests.UpdateUserStatus) error
}

type AppointmentHisClient interface {
	FindAll(ctx context.Context, token, date string) ([]models.Appointment, error)
	Create(ctx context.Context, token string, request *requests.CreateAppointment) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, token, appointmentID, status string) error
}

type EncounterHisClient interface {
	FindAll(ctx context.Context, token, patientID string) ([]models.Encounter, error)
	Create(ctx context.Context, token string, request *requests.CreateEncounter) (*models.Encounter, error)
}

type PrescriptionHisClient interface {
	FindAll(ctx context.Context, token, patientID string) ([]models.Prescription, error)
	Create(ctx context.Context, token string, request *requests.CreatePrescription) (*models.Prescription, error)
}

type InvoiceHisClient interface {
	FindAll(ctx context.Context, token string) ([]models.Invoice, error)
	Create(ctx context.Context, token string, request *requests.CreateInvoice) (*models.Invoice, error)
}

type ReportHisClient interface {
	FindAll(ctx context.Context, token, patientID string) ([]models.Report, error)
}

type DashboardHisClient interface {
	Stats(ctx context.Context, token string) (*models.DashboardStats, error)
}
