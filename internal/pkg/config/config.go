package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, project, secrets)
// - default: Values common across all environments (timeouts, endpoints)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Identity IdentityConfig
	Events   EventsConfig
	CORS     CORSConfig
	Cookie   CookieConfig
	Log      LogConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig points at the external document store holding the
// equipment and bookings collections.
type StoreConfig struct {
	ProjectID       string `envconfig:"STORE_PROJECT_ID" required:"true"`
	CredentialsFile string `envconfig:"STORE_CREDENTIALS_FILE" default:""`
	EmulatorHost    string `envconfig:"FIRESTORE_EMULATOR_HOST" default:""`
}

// IdentityConfig points at the hosted identity provider.
type IdentityConfig struct {
	APIKey   string        `envconfig:"IDENTITY_API_KEY" required:"true"`
	Endpoint string        `envconfig:"IDENTITY_ENDPOINT" default:"https://identitytoolkit.googleapis.com/v1"`
	Timeout  time.Duration `envconfig:"IDENTITY_TIMEOUT" default:"10s"`
}

// EventsConfig configures the booking event publisher. An empty URL
// disables publishing entirely.
type EventsConfig struct {
	URL      string `envconfig:"EVENTS_AMQP_URL" default:""`
	Exchange string `envconfig:"EVENTS_EXCHANGE" default:"gymbook.bookings"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
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
		Store: StoreConfig{
			ProjectID:    "gymbook-test",
			EmulatorHost: "localhost:8085",
		},
		Identity: IdentityConfig{
			APIKey:   "test-api-key",
			Endpoint: "http://localhost:9099/identitytoolkit.googleapis.com/v1",
			Timeout:  10 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
	}
}
