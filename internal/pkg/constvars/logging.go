package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingHisUrlKey    = "his_url"
	LoggingSessionIDKey = "session_id"
	LoggingUserRoleKey  = "user_role"
	LoggingPatientIDKey = "patient_id"
	LoggingCountKey     = "count"
)
