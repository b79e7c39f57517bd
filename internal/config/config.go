package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"msgsource/pkg/locale"
)

type Config struct {
	Token          string `env:"TOKEN"`
	GuildID        string `env:"GUILD_ID"`
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	// DefaultLocale accepts BCP 47 tags and POSIX values such as ko_KR.UTF-8.
	// It falls back to the POSIX locale of the process when empty.
	DefaultLocale           string   `env:"DEFAULT_LOCALE"`
	Basenames               []string `env:"MESSAGES_BASENAMES" envDefault:"messages" envSeparator:","`
	MessagesDir             string   `env:"MESSAGES_DIR"`
	UseCodeAsDefaultMessage bool     `env:"USE_CODE_AS_DEFAULT_MESSAGE" envDefault:"false"`
	FallbackToSystemLocale  bool     `env:"FALLBACK_TO_SYSTEM_LOCALE" envDefault:"true"`
	AlwaysUseMessageFormat  bool     `env:"ALWAYS_USE_MESSAGE_FORMAT" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	locale language.Tag
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Locale returns the parsed default locale.
func (c *Config) Locale() language.Tag {
	return c.locale
}

// RequireBot checks the settings only the Discord bot needs.
func (c *Config) RequireBot() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}
	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}
	return nil
}

// RequireDatabase checks the settings the migrate command needs.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: DATABASE_URL is required and cannot be empty")
	}
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.locale = locale.System()
		c.DefaultLocale = c.locale.String()
	} else {
		tag, ok := locale.FromPOSIX(c.DefaultLocale)
		if !ok {
			return fmt.Errorf("config: DEFAULT_LOCALE invalid (%q): not a language tag or POSIX locale", c.DefaultLocale)
		}
		c.locale = tag
	}

	basenames := make([]string, 0, len(c.Basenames))
	for _, b := range c.Basenames {
		if b = strings.TrimSpace(b); b != "" {
			basenames = append(basenames, b)
		}
	}
	if len(basenames) == 0 {
		return fmt.Errorf("config: MESSAGES_BASENAMES must name at least one bundle")
	}
	c.Basenames = basenames

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	return nil
}
