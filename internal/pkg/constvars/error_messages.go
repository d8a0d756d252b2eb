package constvars

// Client messages surface as toast notifications; Dev messages go to the logs only.
const (
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientServerLongRespond             = "the app taking too long to respond"

	ErrClientLoginFailed             = "Login failed"
	ErrClientRegistrationFailed      = "Registration failed"
	ErrClientFetchData               = "Failed to fetch data"
	ErrClientFetchPatients           = "Failed to fetch patients"
	ErrClientFetchPatientData        = "Failed to fetch patient data"
	ErrClientFetchAppointments       = "Failed to fetch appointments"
	ErrClientFetchDashboardStats     = "Failed to fetch dashboard stats"
	ErrClientFetchUsers              = "Failed to fetch users"
	ErrClientRegisterPatient         = "Failed to register patient"
	ErrClientScheduleAppointment     = "Failed to schedule appointment"
	ErrClientUpdateAppointmentStatus = "Failed to update status"
	ErrClientSaveConsultationNotes   = "Failed to save consultation notes"
	ErrClientCreatePrescription      = "Failed to create prescription"
	ErrClientCreateInvoice           = "Failed to create invoice"
	ErrClientCreateUser              = "Failed to create user"
	ErrClientUpdateUserStatus        = "Failed to update user status"
)

const (
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseForm   = "cannot parse form body"
	ErrDevValidationFailed  = "request validation failed"
	ErrDevBuildRequest      = "encountering error while building request DTO"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevServerDeadline    = "server deadline exceeded, the process takes too long to finish"

	ErrDevHisRequestRejected = "HIS backend rejected %s %s with status %d"
	ErrDevHisDecodeResponse  = "failed to decode HIS backend response for %s"
	ErrDevHisUnauthorized    = "HIS backend returned 401, session credentials are no longer valid"
)

const (
	ErrDevRedisSet    = "failed to SET value to redis"
	ErrDevRedisGet    = "failed to GET value from redis"
	ErrDevRedisDelete = "failed to DEL key from redis"
)
