package responses

import (
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/dto/requests"
)

// Per-page view data. A failed form submission re-renders the page with the
// submitted values back in Form, so nothing the user typed is lost.

type LoginPage struct {
	Email string
}

type DashboardPage struct {
	Stats models.DashboardStats
}

type PatientsPage struct {
	Patients []models.Patient
	Search   string
	Form     *requests.CreatePatient
	ShowForm bool
}

type PatientProfilePage struct {
	Patient       *models.Patient
	Encounters    []models.Encounter
	Prescriptions []models.Prescription
	Reports       []models.Report
}

type AppointmentsPage struct {
	Appointments []models.Appointment
	Date         string
	Patients     []models.Patient
	Doctors      []models.UserProfile
	Form         *requests.CreateAppointment
	ShowForm     bool
}

type ConsultationPage struct {
	Encounters []models.Encounter
	Patients   []models.Patient
	Form       *requests.CreateEncounter
	ShowForm   bool
}

type PrescriptionsPage struct {
	Prescriptions []models.Prescription
	Patients      []models.Patient
	Form          *requests.CreatePrescription
	ShowForm      bool
}

type BillingPage struct {
	Invoices []models.Invoice
	Patients []models.Patient
	Form     *requests.CreateInvoice
	ShowForm bool
}

type UserManagementPage struct {
	Users    []models.UserProfile
	Form     *requests.RegisterUser
	ShowForm bool
}
