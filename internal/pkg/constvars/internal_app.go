package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "requestID"
	CONTEXT_SESSION_KEY    ContextKey = "session"
	CONTEXT_SESSION_ID_KEY ContextKey = "sessionID"
)

const (
	// CookieSessionName is the gorilla/sessions cookie holding the session ID
	// and one-shot toast flashes. The session payload itself lives in Redis.
	CookieSessionName = "ghis_session"

	SessionValueID = "session_id"

	FlashKeySuccess = "toast_success"
	FlashKeyError   = "toast_error"

	RedisSessionKeyPrefix = "portal:session:"
)

// Navigable paths. The access policy table and the routers both build on these.
const (
	PathLanding        = "/"
	PathLogin          = "/login"
	PathLogout         = "/logout"
	PathDashboard      = "/dashboard"
	PathPatients       = "/patients"
	PathPatientProfile = "/patients/{patientID}"
	PathAppointments   = "/appointments"
	PathConsultation   = "/consultation"
	PathPrescriptions  = "/prescriptions"
	PathBilling        = "/billing"
	PathUserManagement = "/user-management"
)

// HIS backend resource paths, relative to the configured API base URL.
const (
	HisResourceLogin          = "/auth/login"
	HisResourceRegister       = "/auth/register"
	HisResourcePatients       = "/patients"
	HisResourceUsers          = "/users"
	HisResourceDoctors        = "/users/doctors"
	HisResourceAppointments   = "/appointments"
	HisResourceEncounters     = "/encounters"
	HisResourcePrescriptions  = "/prescriptions"
	HisResourceInvoices       = "/invoices"
	HisResourceReports        = "/reports"
	HisResourceDashboardStats = "/dashboard/stats"
)

const (
	QueryParamSearch    = "search"
	QueryParamDate      = "date"
	QueryParamPatientID = "patient_id"
	QueryParamStatus    = "status"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)
