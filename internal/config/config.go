// Package config loads screener settings from an optional YAML file and
// SCREENER_* environment variables.
package config

import (
	"strings"

	"github.com/mindcheck/screener/internal/clinic"
	"github.com/mindcheck/screener/internal/report"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment override, e.g.
// SCREENER_STORE_PATH for store.path.
const EnvPrefix = "SCREENER"

// Config holds the full application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
	Clinic ClinicConfig `yaml:"clinic" mapstructure:"clinic"`

	// File is the config file that was read, empty when none was found.
	File string `yaml:"-" mapstructure:"-"`
}

// StoreConfig locates the SQLite database. A leading ~ is expanded when the
// database is opened.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

type ReportConfig struct {
	Dir           string `yaml:"dir" mapstructure:"dir"`
	DefaultFormat string `yaml:"default_format" mapstructure:"default_format"`
}

type ClinicConfig struct {
	DefaultRegion string `yaml:"default_region" mapstructure:"default_region"`
}

// Load reads configuration from file and environment. With an empty
// explicitPath, screener.yaml is looked up in the working directory and then
// $HOME/.screener; not finding one is fine. An explicit path must exist.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName("screener")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.screener")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("store.path", "~/.screener/screener.db")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("report.dir", ".")
	v.SetDefault("report.default_format", string(report.FormatText))
	v.SetDefault("clinic.default_region", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late, after a screening
// has already been started.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return eris.New("config: store.path is required")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return eris.Wrapf(err, "config: log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return eris.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}
	if _, err := report.ParseFormat(c.Report.DefaultFormat); err != nil {
		return eris.Wrap(err, "config: report.default_format")
	}
	region, ok := clinic.NormalizeRegion(c.Clinic.DefaultRegion)
	if !ok {
		return eris.Errorf("config: clinic.default_region %q is not a known region", c.Clinic.DefaultRegion)
	}
	c.Clinic.DefaultRegion = region
	return nil
}

// ReportFormat is the parsed report.default_format. Load has already
// validated it.
func (c *Config) ReportFormat() report.Format {
	f, err := report.ParseFormat(c.Report.DefaultFormat)
	if err != nil {
		return report.FormatText
	}
	return f
}
