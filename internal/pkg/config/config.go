package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Square SquareConfig
	Cron   CronConfig
	Sync   SyncConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Cron-Secret"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// SquareConfig carries the provider app credentials. AppID and AppSecret are
// empty when the integration is not configured for this deployment; connect
// fails fast in that case instead of erroring at the provider.
type SquareConfig struct {
	AppID      string `envconfig:"SQUARE_APP_ID"`
	AppSecret  string `envconfig:"SQUARE_APP_SECRET"`
	UseSandbox bool   `envconfig:"SQUARE_USE_SANDBOX" default:"false"`
	AppURL     string `envconfig:"APP_URL" default:"http://localhost:4002"`
}

func (c SquareConfig) Configured() bool {
	return c.AppID != "" && c.AppSecret != ""
}

type CronConfig struct {
	Secret string `envconfig:"CRON_SECRET" required:"true"`
}

type SyncConfig struct {
	Workers        int           `envconfig:"SYNC_WORKERS" default:"4"`
	TenantTimeout  time.Duration `envconfig:"SYNC_TENANT_TIMEOUT" default:"2m"`
	RunDeadline    time.Duration `envconfig:"SYNC_RUN_DEADLINE" default:"30m"`
	BackfillWindow time.Duration `envconfig:"SYNC_BACKFILL_WINDOW" default:"168h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Square: SquareConfig{
			AppID:      "sq0idp-test",
			AppSecret:  "sq0csp-test",
			UseSandbox: true,
			AppURL:     "http://localhost:4002",
		},
		Cron: CronConfig{
			Secret: "test-cron-secret",
		},
		Sync: SyncConfig{
			Workers:        2,
			TenantTimeout:  30 * time.Second,
			RunDeadline:    5 * time.Minute,
			BackfillWindow: 168 * time.Hour,
		},
	}
}
