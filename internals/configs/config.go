package configs

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"Reach'24"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"3000"`

	Database DatabaseConfig
	Auth     AuthConfig
	Email    EmailConfig
	Logging  LoggingConfig
	Files    FilesConfig

	CorsAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

type DatabaseConfig struct {
	Host         string `env:"DB_HOST" envDefault:"localhost"`
	Port         string `env:"DB_PORT" envDefault:"5432"`
	User         string `env:"DB_USER"`
	Password     string `env:"DB_PASSWORD"`
	Name         string `env:"DB_NAME"`
	SSLMode      string `env:"DB_SSLMODE" envDefault:"require"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
}

// DSN builds the pgx connection string with a per-statement timeout.
func (d DatabaseConfig) DSN(appName string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=%s&options=-c statement_timeout=3000",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode, sanitizeAppName(appName),
	)
}

type AuthConfig struct {
	JWTSecret  string `env:"JWT_SECRET"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`
}

type EmailConfig struct {
	Provider     string `env:"EMAIL_PROVIDER" envDefault:"log"`
	From         string `env:"EMAIL_FROM"`
	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	ResendAPIKey string `env:"RESEND_API_KEY"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type FilesConfig struct {
	WorkshopsFile string `env:"WORKSHOPS_FILE" envDefault:"workshops.json"`
	ImagesDir     string `env:"IMAGES_DIR" envDefault:"images"`
}

// LoadEnv loads a local .env file unless the process runs on Railway,
// where variables come from the platform.
func LoadEnv() bool {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		return false
	}
	return godotenv.Load() == nil
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.Auth.BcryptCost)
	}
	switch strings.ToLower(c.Email.Provider) {
	case "log":
	case "smtp":
		if c.Email.From == "" || c.Email.SMTPUser == "" {
			return fmt.Errorf("EMAIL_FROM and SMTP_USER are required for the smtp provider")
		}
	case "resend":
		if c.Email.From == "" || c.Email.ResendAPIKey == "" {
			return fmt.Errorf("EMAIL_FROM and RESEND_API_KEY are required for the resend provider")
		}
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER %q", c.Email.Provider)
	}
	return nil
}

func sanitizeAppName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "reach"
	}
	return b.String()
}
