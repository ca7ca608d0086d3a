package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (pricing constants, policy windows, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Dispatch DispatchConfig
	Routing  RoutingConfig
	Pricing  PricingConfig
	Policy   PolicyConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Chicago"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"CST"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// DispatchConfig is the fixed origin every visit departs from. Injected
// rather than hard-coded so tests and future depots can vary it.
type DispatchConfig struct {
	Latitude   float64 `envconfig:"DISPATCH_LAT" default:"30.2672"`
	Longitude  float64 `envconfig:"DISPATCH_LNG" default:"-97.7431"`
	PostalCode string  `envconfig:"DISPATCH_POSTAL_CODE" default:"78701"`
}

// RoutingConfig points at the live routing provider. An empty base URL
// disables the live path and every estimate uses the zone fallback.
type RoutingConfig struct {
	BaseURL string        `envconfig:"ROUTING_BASE_URL" default:""`
	APIKey  string        `envconfig:"ROUTING_API_KEY" default:""`
	Timeout time.Duration `envconfig:"ROUTING_TIMEOUT" default:"5s"`
}

type PricingConfig struct {
	BaseFeeCents    int64   `envconfig:"PRICING_BASE_FEE_CENTS" default:"7999"`
	PerMileCents    int64   `envconfig:"PRICING_PER_MILE_CENTS" default:"500"`
	FreeRadiusMiles float64 `envconfig:"PRICING_FREE_RADIUS_MILES" default:"10"`
	MaxFeeCents     int64   `envconfig:"PRICING_MAX_FEE_CENTS" default:"50000"`
}

type PolicyConfig struct {
	CancelWindow     time.Duration `envconfig:"POLICY_CANCEL_WINDOW" default:"24h"`
	RescheduleWindow time.Duration `envconfig:"POLICY_RESCHEDULE_WINDOW" default:"48h"`
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
			TimeZone: "America/Chicago",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "CST",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -21600,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Dispatch: DispatchConfig{
			Latitude:   30.2672,
			Longitude:  -97.7431,
			PostalCode: "78701",
		},
		Routing: RoutingConfig{
			Timeout: 5 * time.Second,
		},
		Pricing: PricingConfig{
			BaseFeeCents:    7999,
			PerMileCents:    500,
			FreeRadiusMiles: 10,
			MaxFeeCents:     50000,
		},
		Policy: PolicyConfig{
			CancelWindow:     24 * time.Hour,
			RescheduleWindow: 48 * time.Hour,
		},
	}
}
