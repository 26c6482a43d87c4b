package config

import (
	"strings"
	"testing"
	"time"

	"github.com/Temutjin2k/ubar/internal/domain/types"
)

func validConfig() *Config {
	return &Config{
		Mode:        types.DriverService,
		Log:         LogConfig{Level: "INFO"},
		Store:       StoreConfig{Backend: types.StoreBadger},
		Credentials: CredentialsConfig{Source: types.CredentialsStatic},
		Simulation: SimulationConfig{
			SearchDelay:   2500 * time.Millisecond,
			PositionTick:  time.Second,
			LoadDelay:     800 * time.Millisecond,
			LoginDelay:    1500 * time.Millisecond,
			RegisterDelay: 2 * time.Second,
			JitterPeriod:  1500 * time.Millisecond,
		},
		Auth: Auth{JWTSecret: "supersecretkey", AccessTokenTTL: time.Hour},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad mode", mutate: func(c *Config) { c.Mode = "ride-service" }, wantErr: "invalid mode"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "LOUD" }, wantErr: "log level"},
		{name: "bad backend", mutate: func(c *Config) { c.Store.Backend = "redis" }, wantErr: "store backend"},
		{name: "bad credentials", mutate: func(c *Config) { c.Credentials.Source = "ldap" }, wantErr: "credential source"},
		{name: "zero delay", mutate: func(c *Config) { c.Simulation.LoginDelay = 0 }, wantErr: "login_delay"},
		{name: "short secret", mutate: func(c *Config) { c.Auth.JWTSecret = "x" }, wantErr: "jwt_secret"},
		{name: "short secret outside driver service", mutate: func(c *Config) {
			c.Mode = types.ContentService
			c.Auth.JWTSecret = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestUsesPostgres(t *testing.T) {
	c := validConfig()
	if c.UsesPostgres() {
		t.Fatal("badger + static credentials must not need postgres")
	}
	c.Credentials.Source = types.CredentialsPostgres
	if !c.UsesPostgres() {
		t.Fatal("postgres credentials need postgres")
	}
	c.Mode = types.BookingService
	if c.UsesPostgres() {
		t.Fatal("booking service never needs postgres")
	}
}

func TestDSN(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p@ss", Database: "ubar"}
	if got, want := db.GetDSN(), "postgres://u:p%40ss@db:5432/ubar?sslmode=disable"; got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}

	mq := RabbitMQConfig{Host: "mq", Port: "5672", User: "guest", Password: "guest"}
	if got, want := mq.GetDSN(), "amqp://guest:guest@mq:5672/"; got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}
