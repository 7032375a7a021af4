package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	ServiceName string
	Version     string

	LogLevel  string
	LogFormat string

	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBMaxConns    int
	DBMaxIdleTime time.Duration
	DBMaxLifetime time.Duration

	APIKey         string // API key for authenticating callers (controllers, cron triggers)
	TrustedProxies []string

	// Notification provider settings. The provider is an external
	// collaborator; credentials are always injected, never embedded.
	NotifyBaseURL   string
	NotifyProjectID string
	NotifyAPIKey    string

	// GoalSweepInterval controls how often expired goals are purged
	GoalSweepInterval time.Duration

	// Event publishing resilience settings
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:     getEnv(EnvKeyEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvKeyServiceName, DefaultServiceName),
		Version:         getEnv(EnvKeyVersion, DefaultVersion),
		LogLevel:        getEnv(EnvKeyLogLevel, DefaultLogLevel),
		LogFormat:       getEnv(EnvKeyLogFormat, DefaultLogFormat),
		DBUser:          getEnv(EnvKeyDBUser, DefaultDBUser),
		DBPassword:      getEnv(EnvKeyDBPassword, DefaultDBPassword),
		DBHost:          getEnv(EnvKeyDBHost, DefaultDBHost),
		DBPort:          getEnv(EnvKeyDBPort, DefaultDBPort),
		DBName:          getEnv(EnvKeyDBName, DefaultDBName),
		APIKey:          getEnv(EnvKeyAPIKey, ""),
		NotifyBaseURL:   getEnv(EnvKeyNotifyBaseURL, ""),
		NotifyProjectID: getEnv(EnvKeyNotifyProjectID, ""),
		NotifyAPIKey:    getEnv(EnvKeyNotifyAPIKey, ""),
	}

	port, err := getEnvInt(EnvKeyPort, DefaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.DBMaxConns, err = getEnvInt(EnvKeyDBMaxConns, DefaultDBMaxConns)
	if err != nil {
		return nil, err
	}

	idleMin, err := getEnvInt(EnvKeyDBMaxIdleMinutes, DefaultDBMaxIdleMinutes)
	if err != nil {
		return nil, err
	}
	cfg.DBMaxIdleTime = time.Duration(idleMin) * time.Minute

	lifeMin, err := getEnvInt(EnvKeyDBMaxLifeMinutes, DefaultDBMaxLifeMinutes)
	if err != nil {
		return nil, err
	}
	cfg.DBMaxLifetime = time.Duration(lifeMin) * time.Minute

	sweepMin, err := getEnvInt(EnvKeyGoalSweepMinutes, DefaultGoalSweepMinutes)
	if err != nil {
		return nil, err
	}
	cfg.GoalSweepInterval = time.Duration(sweepMin) * time.Minute

	cfg.EventMaxRetries, err = getEnvInt(EnvKeyEventMaxRetries, 0)
	if err != nil {
		return nil, err
	}

	retrySec, err := getEnvInt(EnvKeyEventRetrySeconds, 0)
	if err != nil {
		return nil, err
	}
	cfg.EventRetryDelay = time.Duration(retrySec) * time.Second
	cfg.EventDeadLetterPath = getEnv(EnvKeyEventDeadLetterPath, "")

	if proxies := getEnv(EnvKeyTrustedProxies, ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s environment variable must be set for security", EnvKeyAPIKey)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
