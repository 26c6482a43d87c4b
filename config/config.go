package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
	"github.com/Temutjin2k/ubar/pkg/configparser"
	"github.com/Temutjin2k/ubar/pkg/logger"
)

// Flags
var (
	modeFlag = flag.String("mode", "", "application mode")
)

// Errors
var (
	ErrModeNotProvided = errors.New("mode flag not provided")
	ErrInvalidMode     = errors.New("invalid mode")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode types.ServiceMode

		Log         LogConfig
		Database    DatabaseConfig
		RabbitMQ    RabbitMQConfig
		Services    ServicesConfig
		Store       StoreConfig
		Credentials CredentialsConfig
		Simulation  SimulationConfig
		ExternalAPI ExternalAPIConfig
		Auth        Auth
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"INFO"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"ubar_user"`
		Password string `env:"DATABASE_PASSWORD" default:"ubar_pass"`
		Database string `env:"DATABASE_DATABASE" default:"ubar_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"10"`        // максимум открытых соединений
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"` // макс. "время простоя" соединения
	}

	RabbitMQConfig struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED" default:"true"`
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
	}

	ServicesConfig struct {
		BookingService string `env:"SERVICES_BOOKING_SERVICE" default:"3000"`
		DriverService  string `env:"SERVICES_DRIVER_SERVICE" default:"3001"`
		ContentService string `env:"SERVICES_CONTENT_SERVICE" default:"3002"`
	}

	// StoreConfig selects where driver sessions survive restarts.
	StoreConfig struct {
		Backend  types.StoreBackend `env:"STORE_BACKEND" default:"badger"`
		Path     string             `env:"STORE_PATH" default:"./data/sessions"`
		InMemory bool               `env:"STORE_IN_MEMORY" default:"false"`
	}

	CredentialsConfig struct {
		Source types.CredentialSource `env:"CREDENTIALS_SOURCE" default:"static"`
	}

	SimulationConfig struct {
		SearchDelay   time.Duration `env:"SIMULATION_SEARCH_DELAY" default:"2500ms"`
		PositionTick  time.Duration `env:"SIMULATION_POSITION_TICK" default:"1s"`
		LoadDelay     time.Duration `env:"SIMULATION_LOAD_DELAY" default:"800ms"`
		LoginDelay    time.Duration `env:"SIMULATION_LOGIN_DELAY" default:"1500ms"`
		RegisterDelay time.Duration `env:"SIMULATION_REGISTER_DELAY" default:"2s"`
		JitterPeriod  time.Duration `env:"SIMULATION_JITTER_PERIOD" default:"1500ms"`
	}

	ExternalAPIConfig struct {
		LocationIQapiKey string `env:"EXTERNALAPI_LOCATIONIQ_API_KEY"`
		GeminiAPIKey     string `env:"EXTERNALAPI_GEMINI_API_KEY"`
		GeminiModel      string `env:"EXTERNALAPI_GEMINI_MODEL" default:"gemini-3-flash-preview"`
		PodcastRSSURL    string `env:"EXTERNALAPI_PODCAST_RSS_URL"`
	}

	Auth struct {
		AccessTokenTTL time.Duration `env:"AUTH_ACCESS_TOKEN_TTL" default:"24h"`
		JWTSecret      string        `env:"AUTH_JWT_SECRET" default:"supersecretkey"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c DatabaseConfig) GetMaxConns() int32 {
	return c.MaxConns
}

func (c DatabaseConfig) GetConnMaxIdle() time.Duration {
	return c.MaxConnIdleTime
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
	)
}

// UsesPostgres reports whether the running mode needs a database connection.
func (c *Config) UsesPostgres() bool {
	return c.Mode == types.DriverService &&
		(c.Store.Backend == types.StorePostgres || c.Credentials.Source == types.CredentialsPostgres)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	// Parsing flags
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return ErrModeNotProvided
	}

	cfg.Mode = types.ServiceMode(*modeFlag)

	return nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case types.BookingService, types.DriverService, types.ContentService:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidMode, c.Mode)
	}

	if !logger.ValidateLogLevel(c.Log.Level) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	switch c.Store.Backend {
	case types.StoreBadger, types.StorePostgres:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	switch c.Credentials.Source {
	case types.CredentialsStatic, types.CredentialsPostgres:
	default:
		return fmt.Errorf("unknown credential source %q", c.Credentials.Source)
	}

	for name, d := range map[string]time.Duration{
		"simulation.search_delay":   c.Simulation.SearchDelay,
		"simulation.position_tick":  c.Simulation.PositionTick,
		"simulation.load_delay":     c.Simulation.LoadDelay,
		"simulation.login_delay":    c.Simulation.LoginDelay,
		"simulation.register_delay": c.Simulation.RegisterDelay,
		"simulation.jitter_period":  c.Simulation.JitterPeriod,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if c.Mode == types.DriverService && len(c.Auth.JWTSecret) < 8 {
		return errors.New("auth.jwt_secret must be at least 8 characters")
	}
	return nil
}

// LoadDatabase reads only the database section. Tools that run outside a service mode use it.
func LoadDatabase(filepath string) (*DatabaseConfig, error) {
	cfg := &DatabaseConfig{}
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}
	return cfg, nil
}
