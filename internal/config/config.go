package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/jeanpaul/contacts/internal/contact"
)

type Config struct {
	DataFile  string          `yaml:"data_file" mapstructure:"data_file"`
	Birthdays BirthdaysConfig `yaml:"birthdays" mapstructure:"birthdays"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Color     bool            `yaml:"color" mapstructure:"color"`
}

type BirthdaysConfig struct {
	WindowDays int    `yaml:"window_days" mapstructure:"window_days"`
	LeapDay    string `yaml:"leap_day" mapstructure:"leap_day"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"`
}

var envVarRe = regexp.MustCompile(`\$([A-Z_][A-Z0-9_]*)`)

func expandEnv(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "$")
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

func DefaultConfig() *Config {
	return &Config{
		DataFile: "addressbook.json",
		Birthdays: BirthdaysConfig{
			WindowDays: contact.DefaultWindow,
			LeapDay:    string(contact.LeapDayMarch1),
		},
		Log: LogConfig{
			Level: "info",
		},
		Color: true,
	}
}

// Dir is the per-user config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "contacts")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "contacts")
}

// Load reads config.yaml from ./, then the user config dir. If file is not
// empty it is read instead and must exist. CONTACTS_* environment variables
// override both (CONTACTS_BIRTHDAYS_WINDOW_DAYS for birthdays.window_days).
func Load(file string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("data_file", cfg.DataFile)
	v.SetDefault("birthdays.window_days", cfg.Birthdays.WindowDays)
	v.SetDefault("birthdays.leap_day", cfg.Birthdays.LeapDay)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("color", cfg.Color)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix("CONTACTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
		// no config file; defaults and env only
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.DataFile = expandEnv(cfg.DataFile)
	cfg.Log.File = expandEnv(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LeapDayPolicy returns the parsed birthdays.leap_day value. Call after Validate.
func (c *Config) LeapDayPolicy() contact.LeapDayPolicy {
	p, _ := contact.ParseLeapDayPolicy(c.Birthdays.LeapDay)
	return p
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("config: data_file is required")
	}
	if _, err := contact.ParseLeapDayPolicy(c.Birthdays.LeapDay); err != nil {
		return fmt.Errorf("config: birthdays.leap_day: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid (must be debug, info, warn or error)", c.Log.Level)
	}
	if c.Birthdays.WindowDays < 1 {
		c.Birthdays.WindowDays = contact.DefaultWindow
	}
	return nil
}
