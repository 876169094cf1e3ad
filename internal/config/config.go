package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port       uint16 `env:"PORT" envDefault:"8000"`
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`

	Secret                   string `env:"SECRET,required,notEmpty"`
	PasswordResetTokenSecret string `env:"PASSWORD_RESET_TOKEN_SECRET,required,notEmpty"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required,notEmpty"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	AutoMigrate    bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	BcryptHasherCost              int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordResetValidDuration    time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`
	PasswordResetTokenPurgePeriod time.Duration `env:"PASSWORD_RESET_TOKEN_PURGE_PERIOD" envDefault:"1h"`

	UsersPageDefaultLimit uint `env:"USERS_PAGE_DEFAULT_LIMIT" envDefault:"25"`
	UsersPageMaxLimit     uint `env:"USERS_PAGE_MAX_LIMIT" envDefault:"100"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	AwsConfig

	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

// AwsConfig is loaded on its own by tools that only talk to AWS.
type AwsConfig struct {
	AwsRegion                     string   `env:"AWS_REGION"`
	AwsAccessKey                  string   `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string   `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string   `env:"AWS_EMAIL_SENDER"`
	AwsEmailPasswordResetTemplate string   `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE"`
	AwsEmailPasswordResetBaseUrl  *url.URL `env:"AWS_EMAIL_PASSWORD_RESET_BASE_URL"`
}

// IsEmailSendingEnabled reports whether reset tokens can be delivered by SES.
func (c *AwsConfig) IsEmailSendingEnabled() bool {
	return c.AwsEmailSender != "" &&
		c.AwsEmailPasswordResetTemplate != "" &&
		c.AwsEmailPasswordResetBaseUrl != nil
}

func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not read .env file: %w", err)
	}
	return nil
}

func LoadAws() (*AwsConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	cfg := &AwsConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.UsersPageDefaultLimit == 0 || cfg.UsersPageDefaultLimit > cfg.UsersPageMaxLimit {
		return nil, fmt.Errorf(
			"USERS_PAGE_DEFAULT_LIMIT must be in range [1, %d], got %d",
			cfg.UsersPageMaxLimit,
			cfg.UsersPageDefaultLimit,
		)
	}
	if cfg.PasswordResetValidDuration <= 0 {
		return nil, fmt.Errorf("PASSWORD_RESET_VALID_DURATION must be positive")
	}
	if cfg.PasswordResetTokenPurgePeriod <= 0 {
		return nil, fmt.Errorf("PASSWORD_RESET_TOKEN_PURGE_PERIOD must be positive")
	}
	return cfg, nil
}
