// Package config loads easycv settings from, in increasing precedence:
// built-in defaults, a YAML config file, a .env file and EASYCV_*
// environment variables. Nested keys map to variables with dots replaced by
// underscores, so log.level is EASYCV_LOG_LEVEL.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/ironsheep/easycv/internal/logging"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "EASYCV"

// Config is the full set of runtime settings.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Download DownloadConfig `mapstructure:"download"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Output   OutputConfig   `mapstructure:"output"`
	OCR      OCRConfig      `mapstructure:"ocr"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DownloadConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// OutputConfig sets where relative output paths are resolved.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// OCRConfig overrides the Tesseract language data directory when Tessdata
// is set.
type OCRConfig struct {
	Tessdata string `mapstructure:"tessdata"`
}

// Options selects the files Load reads. Empty fields use the defaults:
// $HOME/.easycv.yaml (optional) and ./.env (optional).
type Options struct {
	ConfigFile string
	EnvFile    string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("download.timeout", 30*time.Second)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("output.dir", ".")
	v.SetDefault("ocr.tessdata", "")
}

// Load reads the configuration. An explicitly named config or env file must
// exist; the default ones are skipped when missing.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if opts.EnvFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName(".easycv")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if !lo.Contains(logging.Formats, c.Log.Format) {
		return fmt.Errorf("invalid log.format %q, must be one of: %s", c.Log.Format, strings.Join(logging.Formats, ", "))
	}
	if c.Download.Timeout <= 0 {
		return fmt.Errorf("invalid download.timeout %s, must be positive", c.Download.Timeout)
	}
	if c.Output.Dir == "" {
		return errors.New("output.dir must not be empty")
	}
	return nil
}
