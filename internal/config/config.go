package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Locale sources.
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourcePostgres = "postgres"
)

type Config struct {
	Env string `env:"APP_ENV" envDefault:"development"`
	// DefaultLanguage is the BCP 47 tag the root table is written in.
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	// LocaleSource selects where non-root locale content is read from.
	LocaleSource string `env:"LOCALE_SOURCE" envDefault:"embedded"`
	// LocalesDir replaces the embedded resources when LocaleSource is "dir".
	LocalesDir string `env:"LOCALES_DIR"`
	// StrictI18n ("true"/"false") fails loudly on missing keys. Unset means
	// strict outside production.
	StrictI18n     string        `env:"STRICT_I18N"`
	LoadTimeout    time.Duration `env:"LOAD_TIMEOUT" envDefault:"5s"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	MigrationsPath string        `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	Token          string        `env:"DISCORD_TOKEN"`
	GuildID        string        `env:"GUILD_ID"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Strict reports whether missing translations should fail loudly.
func (c *Config) Strict() bool {
	if strict, err := strconv.ParseBool(c.StrictI18n); err == nil {
		return strict
	}
	return c.Env != EnvProduction
}

// RequireBot checks the settings only the Discord adapter needs.
func (c *Config) RequireBot() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: DISCORD_TOKEN is required")
	}
	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild id (digits only)")
		}
	}
	return nil
}

// validate applies every rule on the loaded configuration.
func (c *Config) validate() error {
	switch c.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("config: APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Env)
	}

	if _, err := language.Parse(c.DefaultLanguage); err != nil {
		return fmt.Errorf("config: DEFAULT_LANGUAGE %q: %w", c.DefaultLanguage, err)
	}

	if c.StrictI18n != "" {
		if _, err := strconv.ParseBool(c.StrictI18n); err != nil {
			return fmt.Errorf("config: STRICT_I18N must be a boolean, got %q", c.StrictI18n)
		}
	}

	if c.LoadTimeout <= 0 {
		return fmt.Errorf("config: LOAD_TIMEOUT must be positive")
	}

	switch c.LocaleSource {
	case SourceEmbedded:
	case SourceDir:
		if strings.TrimSpace(c.LocalesDir) == "" {
			return fmt.Errorf("config: LOCALES_DIR is required when LOCALE_SOURCE=%s", SourceDir)
		}
	case SourcePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required when LOCALE_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("config: unknown LOCALE_SOURCE %q", c.LocaleSource)
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	return nil
}
