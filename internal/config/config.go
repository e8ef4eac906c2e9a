package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	JWT           JWTConfig           `yaml:"jwt"`
	Log           LogConfig           `yaml:"log"`
	Rental        RentalConfig        `yaml:"rental"`
	Pricing       PricingConfig       `yaml:"pricing"`
	Gateway       GatewayConfig       `yaml:"gateway"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Scheduler     SchedulerConfig     `yaml:"scheduler"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

// ServerConfig contains gRPC and HTTP listener settings
type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`      // gRPC
	HTTPPort int    `yaml:"http_port"` // gateway callback, health, metrics
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Database        string `yaml:"database"`
	SSLMode         string `yaml:"ssl_mode"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	TxRetryAttempts uint   `yaml:"tx_retry_attempts"`
}

// JWTConfig contains JWT token settings
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// RentalConfig controls the rental creation flow
type RentalConfig struct {
	// PaymentFirst creates rentals in pending_payment instead of pending_approval.
	PaymentFirst     bool `yaml:"payment_first"`
	MaxAddressLength int  `yaml:"max_address_length"`
}

// PricingConfig holds the placeholder rates used until equipment pricing lands
type PricingConfig struct {
	HourlyRate string `yaml:"hourly_rate"`
	DailyRate  string `yaml:"daily_rate"`
}

// GatewayConfig contains payment gateway settings
type GatewayConfig struct {
	BaseURL         string `yaml:"base_url"`
	APIKey          string `yaml:"api_key"`
	CheckoutBaseURL string `yaml:"checkout_base_url"`
	WebhookSecret   string `yaml:"webhook_secret"` // empty disables signature checks
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	RetryAttempts   uint   `yaml:"retry_attempts"`
}

// NotificationsConfig selects and configures notification channels
type NotificationsConfig struct {
	EmailProvider string         `yaml:"email_provider"` // "smtp", "sendgrid" or "none"
	SMTP          SMTPConfig     `yaml:"smtp"`
	SendGrid      SendGridConfig `yaml:"sendgrid"`
	Firebase      FirebaseConfig `yaml:"firebase"`
	Kafka         KafkaConfig    `yaml:"kafka"`
	Workers       int            `yaml:"workers"`
	QueueSize     int            `yaml:"queue_size"`
	MaxRetries    int            `yaml:"max_retries"`
}

// SMTPConfig contains email service settings
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type SendGridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

type FirebaseConfig struct {
	Enabled         bool   `yaml:"enabled"`
	CredentialsFile string `yaml:"credentials_file"`
}

type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ReconcileEquipment       string `yaml:"reconcile_equipment"`
	ReportStalePayments      string `yaml:"report_stale_payments"`
	StalePaymentAfterMinutes int    `yaml:"stale_payment_after_minutes"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse builds a configuration from YAML bytes, applying environment
// overrides and defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("HTTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.HTTPPort)
	}

	// Rental
	if val := os.Getenv("RENTAL_PAYMENT_FIRST"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.Rental.PaymentFirst = b
		}
	}

	// Gateway
	if val := os.Getenv("GATEWAY_BASE_URL"); val != "" {
		c.Gateway.BaseURL = val
	}
	if val := os.Getenv("GATEWAY_API_KEY"); val != "" {
		c.Gateway.APIKey = val
	}
	if val := os.Getenv("GATEWAY_WEBHOOK_SECRET"); val != "" {
		c.Gateway.WebhookSecret = val
	}

	// Notifications
	if val := os.Getenv("EMAIL_PROVIDER"); val != "" {
		c.Notifications.EmailProvider = val
	}
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.Notifications.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Notifications.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.Notifications.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.Notifications.SMTP.Password = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Notifications.SendGrid.APIKey = val
	}
	if val := os.Getenv("FIREBASE_CREDENTIALS_FILE"); val != "" {
		c.Notifications.Firebase.CredentialsFile = val
	}
	if val := os.Getenv("KAFKA_BROKERS"); val != "" {
		c.Notifications.Kafka.Brokers = strings.Split(val, ",")
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port: %d", c.Server.HTTPPort)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.TxRetryAttempts == 0 {
		c.Database.TxRetryAttempts = 3
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	// Rental defaults
	if c.Rental.MaxAddressLength == 0 {
		c.Rental.MaxAddressLength = 500
	}

	// Pricing
	if c.Pricing.HourlyRate == "" {
		c.Pricing.HourlyRate = "0"
	}
	if c.Pricing.DailyRate == "" {
		c.Pricing.DailyRate = "0"
	}
	if _, err := decimal.NewFromString(c.Pricing.HourlyRate); err != nil {
		return fmt.Errorf("invalid pricing hourly_rate %q: %w", c.Pricing.HourlyRate, err)
	}
	if _, err := decimal.NewFromString(c.Pricing.DailyRate); err != nil {
		return fmt.Errorf("invalid pricing daily_rate %q: %w", c.Pricing.DailyRate, err)
	}

	// Gateway
	if c.Gateway.BaseURL == "" {
		return fmt.Errorf("gateway base_url is required")
	}
	if c.Gateway.CheckoutBaseURL == "" {
		c.Gateway.CheckoutBaseURL = strings.TrimRight(c.Gateway.BaseURL, "/") + "/checkout/"
	}
	if c.Gateway.TimeoutSeconds == 0 {
		c.Gateway.TimeoutSeconds = 10
	}
	if c.Gateway.RetryAttempts == 0 {
		c.Gateway.RetryAttempts = 3
	}

	// Notifications
	switch c.Notifications.EmailProvider {
	case "":
		c.Notifications.EmailProvider = "none"
	case "none":
	case "smtp":
		if c.Notifications.SMTP.Host == "" {
			return fmt.Errorf("SMTP host is required")
		}
		if c.Notifications.SMTP.Port <= 0 || c.Notifications.SMTP.Port > 65535 {
			return fmt.Errorf("invalid SMTP port: %d", c.Notifications.SMTP.Port)
		}
	case "sendgrid":
		if c.Notifications.SendGrid.APIKey == "" {
			return fmt.Errorf("sendgrid api_key is required")
		}
	default:
		return fmt.Errorf("unknown email provider: %s", c.Notifications.EmailProvider)
	}
	if c.Notifications.Firebase.Enabled && c.Notifications.Firebase.CredentialsFile == "" {
		return fmt.Errorf("firebase credentials_file is required when firebase is enabled")
	}
	if c.Notifications.Kafka.Enabled {
		if len(c.Notifications.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka brokers are required when kafka is enabled")
		}
		if c.Notifications.Kafka.Topic == "" {
			c.Notifications.Kafka.Topic = "rental-events"
		}
	}
	if c.Notifications.Workers == 0 {
		c.Notifications.Workers = 4
	}
	if c.Notifications.QueueSize == 0 {
		c.Notifications.QueueSize = 256
	}
	if c.Notifications.MaxRetries == 0 {
		c.Notifications.MaxRetries = 3
	}

	// Scheduler defaults
	if c.Scheduler.ReconcileEquipment == "" {
		c.Scheduler.ReconcileEquipment = "0 */15 * * * *" // every 15 minutes
	}
	if c.Scheduler.ReportStalePayments == "" {
		c.Scheduler.ReportStalePayments = "0 0 * * * *" // hourly
	}
	if c.Scheduler.StalePaymentAfterMinutes == 0 {
		c.Scheduler.StalePaymentAfterMinutes = 60
	}

	// Metrics
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the gRPC server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetHTTPAddress returns the HTTP listener address
func (c *Config) GetHTTPAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.HTTPPort)
}
