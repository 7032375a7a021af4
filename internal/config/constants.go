package config

// Environment variable keys
const (
	EnvKeyPort             = "PORT"
	EnvKeyEnvironment      = "ENVIRONMENT"
	EnvKeyServiceName      = "SERVICE_NAME"
	EnvKeyVersion          = "VERSION"
	EnvKeyLogLevel         = "LOG_LEVEL"
	EnvKeyLogFormat        = "LOG_FORMAT"
	EnvKeyDBUser           = "DB_USER"
	EnvKeyDBPassword       = "DB_PASSWORD"
	EnvKeyDBHost           = "DB_HOST"
	EnvKeyDBPort           = "DB_PORT"
	EnvKeyDBName           = "DB_NAME"
	EnvKeyDBMaxConns       = "DB_MAX_CONNS"
	EnvKeyDBMaxIdleMinutes = "DB_MAX_IDLE_MINUTES"
	EnvKeyDBMaxLifeMinutes = "DB_MAX_LIFE_MINUTES"
	EnvKeyAPIKey           = "API_KEY"
	EnvKeyTrustedProxies   = "TRUSTED_PROXIES"
	EnvKeyNotifyBaseURL    = "NOTIFY_BASE_URL"
	EnvKeyNotifyProjectID  = "NOTIFY_PROJECT_ID"
	EnvKeyNotifyAPIKey     = "NOTIFY_API_KEY"
	EnvKeyGoalSweepMinutes = "GOAL_SWEEP_MINUTES"

	EnvKeyEventMaxRetries     = "EVENT_MAX_RETRIES"
	EnvKeyEventRetrySeconds   = "EVENT_RETRY_SECONDS"
	EnvKeyEventDeadLetterPath = "EVENT_DEADLETTER_PATH"
)

// Default values
const (
	DefaultPort             = 8080
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "engage-backend"
	DefaultVersion          = "dev"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultDBUser           = "postgres"
	DefaultDBPassword       = "postgres"
	DefaultDBHost           = "localhost"
	DefaultDBPort           = "5432"
	DefaultDBName           = "engage"
	DefaultDBMaxConns       = 10
	DefaultDBMaxIdleMinutes = 5
	DefaultDBMaxLifeMinutes = 60
	DefaultGoalSweepMinutes = 60
)
