package routers

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"gangosri-portal/internal/app/config"
	"gangosri-portal/internal/app/delivery/http/middlewares"
	"gangosri-portal/internal/app/delivery/http/views"
	"gangosri-portal/internal/app/services/appointments"
	"gangosri-portal/internal/app/services/auth"
	"gangosri-portal/internal/app/services/core/session"
	"gangosri-portal/internal/app/services/dashboard"
	"gangosri-portal/internal/app/services/encounters"
	"gangosri-portal/internal/app/services/invoices"
	"gangosri-portal/internal/app/services/patients"
	"gangosri-portal/internal/app/services/prescriptions"
	"gangosri-portal/internal/app/services/reports"
	"gangosri-portal/internal/app/services/users"
	"gangosri-portal/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryRedisRepository() *memoryRedisRepository {
	return &memoryRedisRepository{values: make(map[string]string)}
}

func (m *memoryRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = string(data)
	return nil
}

func (m *memoryRedisRepository) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *memoryRedisRepository) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *memoryRedisRepository) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.values)
}

// fakeHisBackend stands in for the HIS REST API and records the bearer
// tokens presented on patient listings.
type fakeHisBackend struct {
	mu             sync.Mutex
	patientTokens  []string
	patientQueries int
}

func (f *fakeHisBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST "+constvars.HisResourceLogin, func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if credentials.Email != "nurse@hospital.test" || credentials.Password != "ward-rounds" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
			return
		}
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "t1",
			"token_type":   "bearer",
			"user": map[string]interface{}{
				"id":        "user-7",
				"email":     "nurse@hospital.test",
				"full_name": "Anita Verma",
				"role":      constvars.RoleNurse,
				"is_active": true,
			},
		})
	})

	mux.HandleFunc("GET "+constvars.HisResourcePatients, func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.patientQueries++
		f.patientTokens = append(f.patientTokens, r.Header.Get(constvars.HeaderAuthorization))
		f.mu.Unlock()

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id":            "pat-1",
				"patient_id":    "P-0001",
				"full_name":     "Ramesh Gupta",
				"date_of_birth": "1980-04-02",
				"gender":        "male",
				"phone":         "+91-9000000001",
			},
		})
	})

	return mux
}

type testApp struct {
	portal  *httptest.Server
	backend *fakeHisBackend
	redis   *memoryRedisRepository
	client  *http.Client
}

var (
	appOnce sync.Once
	app     *testApp
)

// newTestApp wires the full router the way cmd/http does, against an
// in-memory session store and a fake HIS backend. The service constructors
// are process-wide singletons, so the whole assembly is built once per test
// binary.
func newTestApp(t *testing.T) *testApp {
	appOnce.Do(func() {
		backend := &fakeHisBackend{}
		backendServer := httptest.NewServer(backend.handler())
		t.Cleanup(backendServer.Close)

		internalConfig := &config.InternalConfig{
			App: config.App{
				Env:          "test",
				CookieSecret: "router-test-secret",
				MaxRequests:  1000,
			},
			HIS:     config.HIS{BaseUrl: backendServer.URL},
			Session: config.Session{ExpiredTimeInHours: 8},
		}
		logger := zap.NewNop()

		redisRepository := newMemoryRedisRepository()
		sessionService := session.NewSessionService(redisRepository, logger, internalConfig)
		renderer := views.NewRenderer(internalConfig, logger)
		mw := middlewares.NewMiddlewares(logger, renderer, sessionService, internalConfig)

		hisBaseUrl := internalConfig.HIS.BaseUrl
		authHisClient := auth.NewAuthHisClient(hisBaseUrl, logger)
		patientHisClient := patients.NewPatientHisClient(hisBaseUrl, logger)
		userHisClient := users.NewUserHisClient(hisBaseUrl, logger)
		appointmentHisClient := appointments.NewAppointmentHisClient(hisBaseUrl, logger)
		encounterHisClient := encounters.NewEncounterHisClient(hisBaseUrl, logger)
		prescriptionHisClient := prescriptions.NewPrescriptionHisClient(hisBaseUrl, logger)
		invoiceHisClient := invoices.NewInvoiceHisClient(hisBaseUrl, logger)
		reportHisClient := reports.NewReportHisClient(hisBaseUrl, logger)
		dashboardHisClient := dashboard.NewDashboardHisClient(hisBaseUrl, logger)

		authUsecase := auth.NewAuthUsecase(authHisClient, sessionService, logger)
		authController := auth.NewAuthController(logger, renderer, authUsecase)
		dashboardUsecase := dashboard.NewDashboardUsecase(dashboardHisClient, logger)
		dashboardController := dashboard.NewDashboardController(logger, renderer, sessionService, dashboardUsecase)
		patientUsecase := patients.NewPatientUsecase(patientHisClient, encounterHisClient, prescriptionHisClient, reportHisClient, logger)
		patientController := patients.NewPatientController(logger, renderer, sessionService, patientUsecase)
		appointmentUsecase := appointments.NewAppointmentUsecase(appointmentHisClient, patientHisClient, userHisClient, logger)
		appointmentController := appointments.NewAppointmentController(logger, renderer, sessionService, appointmentUsecase)
		encounterUsecase := encounters.NewEncounterUsecase(encounterHisClient, patientHisClient, logger)
		encounterController := encounters.NewEncounterController(logger, renderer, sessionService, encounterUsecase)
		prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionHisClient, patientHisClient, logger)
		prescriptionController := prescriptions.NewPrescriptionController(logger, renderer, sessionService, prescriptionUsecase)
		invoiceUsecase := invoices.NewInvoiceUsecase(invoiceHisClient, patientHisClient, logger)
		invoiceController := invoices.NewInvoiceController(logger, renderer, sessionService, invoiceUsecase)
		userUsecase := users.NewUserUsecase(userHisClient, authHisClient, logger)
		userController := users.NewUserController(logger, renderer, sessionService, userUsecase)

		router := chi.NewRouter()
		SetupRoutes(
			router,
			internalConfig,
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

		portal := httptest.NewServer(router)
		t.Cleanup(portal.Close)

		jar, err := cookiejar.New(nil)
		require.NoError(t, err)
		app = &testApp{
			portal:  portal,
			backend: backend,
			redis:   redisRepository,
			client: &http.Client{
				Jar: jar,
				CheckRedirect: func(req *http.Request, via []*http.Request) error {
					return http.ErrUseLastResponse
				},
			},
		}
	})
	return app
}

func (a *testApp) get(t *testing.T, path string) *http.Response {
	resp, err := a.client.Get(a.portal.URL + path)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) *http.Response {
	resp, err := a.client.Post(
		a.portal.URL+path,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestPortalSessionFlow(t *testing.T) {
	a := newTestApp(t)

	t.Run("unauthenticated workspace request bounces to landing", func(t *testing.T) {
		resp := a.get(t, constvars.PathPatients)
		assert.Equal(t, constvars.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, constvars.PathLanding, resp.Header.Get("Location"))
	})

	t.Run("rejected credentials stay on the login page", func(t *testing.T) {
		resp := a.postForm(t, constvars.PathLogin, url.Values{
			"email":    {"nurse@hospital.test"},
			"password": {"wrong"},
		})
		assert.Equal(t, constvars.StatusOK, resp.StatusCode)
		assert.Zero(t, a.redis.size())
	})

	t.Run("login establishes the session and admits the workspace", func(t *testing.T) {
		resp := a.postForm(t, constvars.PathLogin, url.Values{
			"email":    {"nurse@hospital.test"},
			"password": {"ward-rounds"},
		})
		require.Equal(t, constvars.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, constvars.PathDashboard, resp.Header.Get("Location"))
		require.Equal(t, 1, a.redis.size())

		resp = a.get(t, constvars.PathPatients)
		assert.Equal(t, constvars.StatusOK, resp.StatusCode)

		a.backend.mu.Lock()
		defer a.backend.mu.Unlock()
		require.Equal(t, 1, a.backend.patientQueries)
		assert.Equal(t, constvars.BearerPrefix+"t1", a.backend.patientTokens[0])
	})

	t.Run("authenticated guest pages bounce to the dashboard", func(t *testing.T) {
		resp := a.get(t, constvars.PathLogin)
		assert.Equal(t, constvars.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, constvars.PathDashboard, resp.Header.Get("Location"))
	})

	t.Run("nurse is kept out of user management", func(t *testing.T) {
		// Role mismatches bounce to the landing page just like missing
		// sessions do; the landing page then forwards the authenticated
		// nurse on to the dashboard.
		resp := a.get(t, constvars.PathUserManagement)
		require.Equal(t, constvars.StatusSeeOther, resp.StatusCode)
		require.Equal(t, constvars.PathLanding, resp.Header.Get("Location"))

		resp = a.get(t, resp.Header.Get("Location"))
		assert.Equal(t, constvars.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, constvars.PathDashboard, resp.Header.Get("Location"))
	})

	t.Run("logout destroys the session", func(t *testing.T) {
		resp := a.postForm(t, constvars.PathLogout, url.Values{})
		require.Equal(t, constvars.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, constvars.PathLogin, resp.Header.Get("Location"))
		assert.Zero(t, a.redis.size())

		resp = a.get(t, constvars.PathPatients)
		assert.Equal(t, constvars.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, constvars.PathLanding, resp.Header.Get("Location"))
	})
}
