package routers

import (
	"time"

	"gangosri-portal/internal/app/config"
	"gangosri-portal/internal/app/delivery/http/middlewares"
	"gangosri-portal/internal/app/services/appointments"
	"gangosri-portal/internal/app/services/auth"
	"gangosri-portal/internal/app/services/dashboard"
	"gangosri-portal/internal/app/services/encounters"
	"gangosri-portal/internal/app/services/invoices"
	"gangosri-portal/internal/app/services/patients"
	"gangosri-portal/internal/app/services/prescriptions"
	"gangosri-portal/internal/app/services/users"
	"gangosri-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	authController *auth.AuthController,
	dashboardController *dashboard.DashboardController,
	patientController *patients.PatientController,
	appointmentController *appointments.AppointmentController,
	encounterController *encounters.EncounterController,
	prescriptionController *prescriptions.PrescriptionController,
	invoiceController *invoices.InvoiceController,
	userController *users.UserController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(mw.RequestID)
	router.Use(mw.Logging)
	router.Use(mw.PanicRecovery)
	router.Use(mw.Guard)

	router.Get(constvars.PathLanding, authController.LandingPage)
	router.Get(constvars.PathLogin, authController.LoginPage)
	router.Post(constvars.PathLogin, authController.Login)
	router.Post(constvars.PathLogout, authController.Logout)

	router.Get(constvars.PathDashboard, dashboardController.DashboardPage)

	router.Route(constvars.PathPatients, func(r chi.Router) {
		r.Get("/", patientController.PatientsPage)
		r.Post("/", patientController.RegisterPatient)
		r.Get("/{patientID}", patientController.PatientProfilePage)
	})

	router.Route(constvars.PathAppointments, func(r chi.Router) {
		r.Get("/", appointmentController.AppointmentsPage)
		r.Post("/", appointmentController.ScheduleAppointment)
		r.Post("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)
	})

	router.Route(constvars.PathConsultation, func(r chi.Router) {
		r.Get("/", encounterController.ConsultationPage)
		r.Post("/", encounterController.SaveConsultationNotes)
	})

	router.Route(constvars.PathPrescriptions, func(r chi.Router) {
		r.Get("/", prescriptionController.PrescriptionsPage)
		r.Post("/", prescriptionController.CreatePrescription)
	})

	router.Route(constvars.PathBilling, func(r chi.Router) {
		r.Get("/", invoiceController.BillingPage)
		r.Post("/", invoiceController.CreateInvoice)
	})

	router.Route(constvars.PathUserManagement, func(r chi.Router) {
		r.Get("/", userController.UserManagementPage)
		r.Post("/", userController.CreateUser)
		r.Post("/{userID}/status", userController.UpdateUserStatus)
	})
}
