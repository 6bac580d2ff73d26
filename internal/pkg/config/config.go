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
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Cadence   CadenceConfig
	Dispatch  DispatchConfig
	Mail      MailConfig
	KeepAlive KeepAliveConfig
	Tracing   TracingConfig
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
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// CadenceConfig controls how follow-up dates are computed.
// TimeZone decides where "today" and weekends begin.
type CadenceConfig struct {
	TimeZone     string        `envconfig:"CADENCE_TIMEZONE" default:"America/New_York"`
	RuleCacheTTL time.Duration `envconfig:"CADENCE_RULE_CACHE_TTL" default:"5m"`
}

type DispatchConfig struct {
	Enabled      bool          `envconfig:"DISPATCH_ENABLED" default:"true"`
	PollInterval time.Duration `envconfig:"DISPATCH_POLL_INTERVAL" default:"30s"`
	BatchSize    int32         `envconfig:"DISPATCH_BATCH_SIZE" default:"50"`
	Concurrency  int           `envconfig:"DISPATCH_CONCURRENCY" default:"8"`
	SendTimeout  time.Duration `envconfig:"DISPATCH_SEND_TIMEOUT" default:"20s"`
	ClaimLease   time.Duration `envconfig:"DISPATCH_CLAIM_LEASE" default:"5m"`
	WorkerID     string        `envconfig:"DISPATCH_WORKER_ID"`
}

type MailConfig struct {
	Driver      string `envconfig:"MAIL_DRIVER" default:"log"`
	From        string `envconfig:"MAIL_FROM" default:"orders@example.com"`
	AWSRegion   string `envconfig:"AWS_REGION" default:"us-east-1"`
	SESEndpoint string `envconfig:"SES_ENDPOINT"`
}

type KeepAliveConfig struct {
	Enabled         bool          `envconfig:"KEEPALIVE_ENABLED" default:"true"`
	ChannelID       string        `envconfig:"KEEPALIVE_CHANNEL_ID" default:"inbox"`
	StartDelay      time.Duration `envconfig:"KEEPALIVE_START_DELAY" default:"5s"`
	RenewWithin     time.Duration `envconfig:"KEEPALIVE_RENEW_WITHIN" default:"24h"`
	BackfillCap     time.Duration `envconfig:"KEEPALIVE_BACKFILL_CAP" default:"72h"`
	SessionInterval time.Duration `envconfig:"KEEPALIVE_SESSION_INTERVAL" default:"0s"`
	APIURL          string        `envconfig:"CHANNEL_API_URL" default:"http://localhost:9090"`
	APIToken        string        `envconfig:"CHANNEL_API_TOKEN"`
	APITimeout      time.Duration `envconfig:"CHANNEL_API_TIMEOUT" default:"15s"`
}

// TracingConfig turns on OTLP/HTTP span export. Without an endpoint spans are dropped.
type TracingConfig struct {
	Enabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint    string `envconfig:"OTEL_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"order-followup"`
}

func (c TracingConfig) Active() bool {
	return c.Enabled && c.Endpoint != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadLocation returns UTC together with the load error when CADENCE_TIMEZONE is unknown.
func (c CadenceConfig) LoadLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC, fmt.Errorf("load cadence timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Location falls back to UTC so a typo in CADENCE_TIMEZONE never stops the server.
// Startup logs the fallback.
func (c CadenceConfig) Location() *time.Location {
	loc, _ := c.LoadLocation()
	return loc
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
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cadence: CadenceConfig{
			TimeZone:     "UTC",
			RuleCacheTTL: time.Minute,
		},
		Dispatch: DispatchConfig{
			Enabled:      false,
			PollInterval: time.Second,
			BatchSize:    10,
			Concurrency:  2,
			SendTimeout:  2 * time.Second,
			ClaimLease:   time.Minute,
			WorkerID:     "test-worker",
		},
		Mail: MailConfig{
			Driver: "log",
			From:   "orders@example.com",
		},
		KeepAlive: KeepAliveConfig{
			Enabled:     false,
			ChannelID:   "inbox",
			StartDelay:  0,
			RenewWithin: 24 * time.Hour,
			BackfillCap: 72 * time.Hour,
			APITimeout:  time.Second,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "order-followup-test",
		},
	}
}
