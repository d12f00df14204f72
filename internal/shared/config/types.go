// Package config defines the typed configuration structs shared across the
// application. Values are loaded by internal/infrastructure/config and passed
// into components at construction; nothing reads the environment directly.
package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GetAddr returns the listen address in host:port form.
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds MySQL connection settings.
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	OutputPath string `mapstructure:"output_path"`
}

// RedisConfig holds Redis connection settings for the session store and
// rate limiter.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GetAddr returns the Redis address in host:port form.
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	BcryptCost          int    `mapstructure:"bcrypt_cost"`
	JWTSecret           string `mapstructure:"jwt_secret"`
	AccessExpMinutes    int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays      int    `mapstructure:"refresh_exp_days"`
	ResetExpiresMinutes int    `mapstructure:"reset_expires_minutes"`
}

// EmailConfig holds SMTP settings for transactional mail.
type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	ResetBaseURL string `mapstructure:"reset_base_url"`
}

// QuotaConfig holds the plan limits applied to new accounts.
type QuotaConfig struct {
	MaxSites           int `mapstructure:"max_sites"`
	MaxPagesPerSite    int `mapstructure:"max_pages_per_site"`
	MaxSectionsPerPage int `mapstructure:"max_sections_per_page"`
	SignupCredits      int `mapstructure:"signup_credits"`
}

// BillingConfig holds the external payment processor settings.
type BillingConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	Currency       string `mapstructure:"currency"`
}

// AdminConfig holds the bootstrap administrator credentials used by
// `webloom migrate seed-admin`.
type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// RateLimitConfig holds per-window request limits for sensitive endpoints.
type RateLimitConfig struct {
	LoginPerMinute    int `mapstructure:"login_per_minute"`
	RegisterPerMinute int `mapstructure:"register_per_minute"`
}
