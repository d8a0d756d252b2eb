package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gangosri-portal/internal/app/config"
	"gangosri-portal/internal/app/delivery/http/middlewares"
	"gangosri-portal/internal/app/delivery/http/routers"
	"gangosri-portal/internal/app/delivery/http/views"
	"gangosri-portal/internal/app/drivers/database"
	"gangosri-portal/internal/app/drivers/logger"
	"gangosri-portal/internal/app/services/appointments"
	"gangosri-portal/internal/app/services/auth"
	"gangosri-portal/internal/app/services/core/session"
	"gangosri-portal/internal/app/services/dashboard"
	"gangosri-portal/internal/app/services/encounters"
	"gangosri-portal/internal/app/services/invoices"
	"gangosri-portal/internal/app/services/patients"
	"gangosri-portal/internal/app/services/prescriptions"
	"gangosri-portal/internal/app/services/reports"
	sharedredis "gangosri-portal/internal/app/services/shared/redis"
	"gangosri-portal/internal/app/services/users"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Portal listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Printf("Error closing drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	hisBaseUrl := bootstrap.InternalConfig.HIS.BaseUrl

	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger, bootstrap.InternalConfig)
	renderer := views.NewRenderer(bootstrap.InternalConfig, bootstrap.Logger)
	mw := middlewares.NewMiddlewares(bootstrap.Logger, renderer, sessionService, bootstrap.InternalConfig)

	// HIS clients
	authHisClient := auth.NewAuthHisClient(hisBaseUrl, bootstrap.Logger)
	patientHisClient := patients.NewPatientHisClient(hisBaseUrl, bootstrap.Logger)
	userHisClient := users.NewUserHisClient(hisBaseUrl, bootstrap.Logger)
	appointmentHisClient := appointments.NewAppointmentHisClient(hisBaseUrl, bootstrap.Logger)
	encounterHisClient := encounters.NewEncounterHisClient(hisBaseUrl, bootstrap.Logger)
	prescriptionHisClient := prescriptions.NewPrescriptionHisClient(hisBaseUrl, bootstrap.Logger)
	invoiceHisClient := invoices.NewInvoiceHisClient(hisBaseUrl, bootstrap.Logger)
	reportHisClient := reports.NewReportHisClient(hisBaseUrl, bootstrap.Logger)
	dashboardHisClient := dashboard.NewDashboardHisClient(hisBaseUrl, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(authHisClient, sessionService, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, renderer, authUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(dashboardHisClient, bootstrap.Logger)
	dashboardController := dashboard.NewDashboardController(bootstrap.Logger, renderer, sessionService, dashboardUsecase)

	// Patients
	patientUsecase := patients.NewPatientUsecase(patientHisClient, encounterHisClient, prescriptionHisClient, reportHisClient, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, renderer, sessionService, patientUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentHisClient, patientHisClient, userHisClient, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, renderer, sessionService, appointmentUsecase)

	// Encounters
	encounterUsecase := encounters.NewEncounterUsecase(encounterHisClient, patientHisClient, bootstrap.Logger)
	encounterController := encounters.NewEncounterController(bootstrap.Logger, renderer, sessionService, encounterUsecase)

	// Prescriptions
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionHisClient, patientHisClient, bootstrap.Logger)
	prescriptionController := prescriptions.NewPrescriptionController(bootstrap.Logger, renderer, sessionService, prescriptionUsecase)

	// Invoices
	invoiceUsecase := invoices.NewInvoiceUsecase(invoiceHisClient, patientHisClient, bootstrap.Logger)
	invoiceController := invoices.NewInvoiceController(bootstrap.Logger, renderer, sessionService, invoiceUsecase)

	// Users
	userUsecase := users.NewUserUsecase(userHisClient, authHisClient, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, renderer, sessionService, userUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		dashboardController,
		patientController,
		appointmentController,
		encounterController,
		prescriptionController,
		invoiceController,
		userController,
	)
}
