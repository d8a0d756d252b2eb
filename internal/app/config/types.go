package config

type (
	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App     App
	HIS     HIS
	Session Session
}

type App struct {
	Env                      string
	Port                     string
	Address                  string
	Timezone                 string
	CookieSecret             string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
}

type HIS struct {
	// BaseUrl is the HIS backend API prefix, e.g. http://localhost:8001/api.
	BaseUrl string
}

type Session struct {
	ExpiredTimeInHours int
}
