// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Ebay      EbayConfig      `yaml:"ebay"`
	Refresh   RefreshConfig   `yaml:"refresh"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// DashboardURL is where the OAuth callback redirects after storing
	// a credential.
	DashboardURL string `yaml:"dashboard_url"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// EbayConfig defines eBay API settings.
type EbayConfig struct {
	AppID    string `yaml:"app_id"`
	CertID   string `yaml:"cert_id"`
	TokenURL string `yaml:"token_url"`
	AuthURL  string `yaml:"auth_url"`
	// APIBaseURL is the root of the Sell Inventory API
	// (https://api.ebay.com by default; the sandbox host for testing).
	APIBaseURL string `yaml:"api_base_url"`
	// RedirectURI is the eBay RuName registered for the OAuth flow.
	RedirectURI string `yaml:"redirect_uri"`
	Marketplace string `yaml:"marketplace"`

	Policies  PolicyConfig    `yaml:"policies"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// PolicyConfig holds the seller's pre-created eBay business policy ids,
// referenced when creating offers.
type PolicyConfig struct {
	FulfillmentPolicyID string `yaml:"fulfillment_policy_id"`
	PaymentPolicyID     string `yaml:"payment_policy_id"`
	ReturnPolicyID      string `yaml:"return_policy_id"`
	MerchantLocationKey string `yaml:"merchant_location_key"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// RefreshConfig defines the credential refresh sweep.
type RefreshConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	// Window is how far ahead of expiry a credential is considered
	// due for refresh.
	Window time.Duration `yaml:"window"`
}

// TelemetryConfig defines OTLP export settings.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyEbayDefaults(&cfg.Ebay)
	applyRefreshDefaults(&cfg.Refresh)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.DashboardURL == "" {
		s.DashboardURL = "/dashboard"
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.TokenURL == "" {
		e.TokenURL = "https://api.ebay.com/identity/v1/oauth2/token"
	}
	if e.AuthURL == "" {
		e.AuthURL = "https://auth.ebay.com/oauth2/authorize"
	}
	if e.APIBaseURL == "" {
		e.APIBaseURL = "https://api.ebay.com"
	}
	if e.Marketplace == "" {
		e.Marketplace = "EBAY_US"
	}
	if e.Policies.MerchantLocationKey == "" {
		e.Policies.MerchantLocationKey = "default"
	}
	applyRateLimitDefaults(&e.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyRefreshDefaults(r *RefreshConfig) {
	if r.Interval == 0 {
		r.Interval = 15 * time.Minute
	}
	if r.Window == 0 {
		r.Window = time.Hour
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Ebay.AppID == "" {
		errs = append(errs, fmt.Errorf("ebay.app_id is required"))
	}
	if cfg.Ebay.CertID == "" {
		errs = append(errs, fmt.Errorf("ebay.cert_id is required"))
	}
	if cfg.Ebay.RedirectURI == "" {
		errs = append(errs, fmt.Errorf("ebay.redirect_uri is required"))
	}

	return errors.Join(errs...)
}
