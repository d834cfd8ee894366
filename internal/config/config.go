// Package config loads the settings of the iterdemo command.
//
// Sources in order of precedence: command line flags, environment variables
// (ITERDEMO_ prefix, optionally loaded from a .env file), the YAML config file, and the defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go.llib.dev/iterable/internal/errorkit"
)

const EnvPrefix = "ITERDEMO"

const ErrInvalidConfig errorkit.Error = "invalid config"

const (
	KeySize      = "size"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	// Size is the length of the number range every demo pipeline starts from.
	Size int `mapstructure:"size" validate:"gte=0"`
	Log  Log `mapstructure:"log"`
}

type Log struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console pretty json"`
}

func Defaults() Config {
	return Config{
		Size: 4,
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoaderConfig tells Load where to look for the configuration.
// Every field is optional.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
	Flags      *pflag.FlagSet
}

// RegisterFlags adds the flags that Load knows how to bind.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Defaults()
	fs.Int("size", def.Size, "length of the input range")
	fs.String("log-level", def.Log.Level, "log level (debug, info, warn, error)")
	fs.String("log-format", def.Log.Format, "log format (console, json)")
}

func Load(opts LoaderConfig) (Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	def := Defaults()
	v.SetDefault(KeySize, def.Size)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogFormat, def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", opts.ConfigFile)
		}
	}

	if opts.Flags != nil {
		for key, name := range map[string]string{
			KeySize:      "size",
			KeyLogLevel:  "log-level",
			KeyLogFormat: "log-format",
		} {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, errors.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	return cfg, cfg.Validate()
}

// Validate checks the values against the `validate` struct tags.
// Every violation is listed in the returned ErrInvalidConfig.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ErrInvalidConfig.Wrap(err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s", fe.Namespace(), fe.Value(), constraint(fe)))
	}
	return ErrInvalidConfig.F("%s", strings.Join(msgs, "; "))
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// loadEnvFile loads an explicitly given env file, or the .env in the working directory when there is one.
// Variables that are already set in the environment are not overridden.
func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load env file %s", path)
	}
	return nil
}
