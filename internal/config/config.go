// Package config loads timespan settings from a config file, the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/jparise/timespan/internal/timeparse"
)

// EnvPrefix prefixes environment variable overrides, e.g. TIMESPAN_JOBS.
const EnvPrefix = "TIMESPAN"

// Settings holds user configuration shared by all commands.
type Settings struct {
	Color       string           `mapstructure:"color"`
	Jobs        int              `mapstructure:"jobs"`
	LogLevel    string           `mapstructure:"log_level"`
	LogFormat   string           `mapstructure:"log_format"`
	UnitsFile   string           `mapstructure:"units_file"`
	DefaultUnit string           `mapstructure:"default_unit"`
	SleepLimit  timeparse.Period `mapstructure:"-"` // decoded with the configured unit table
}

// ApplyDefaults fills in zero-valued settings.
func (s *Settings) ApplyDefaults() {
	if s.Color == "" {
		s.Color = "auto"
	}
	if s.Jobs <= 0 {
		s.Jobs = 8
	}
	if s.LogLevel == "" {
		s.LogLevel = "warn"
	}
	if s.LogFormat == "" {
		s.LogFormat = "text"
	}
	if s.SleepLimit.IsZero() {
		s.SleepLimit = timeparse.FromSeconds(timeparse.Day)
	}
}

// LoadOptions controls where settings are read from.
type LoadOptions struct {
	ConfigFile string   // explicit config file; must exist when set
	SearchDirs []string // directories searched for config.yaml when ConfigFile is empty
	EnvFile    string   // dotenv file, default ".env"; a missing file is ignored

	// Overrides take precedence over every other source, e.g. values from
	// command line flags. Keys are setting names such as "default_unit".
	Overrides map[string]string
}

// DefaultSearchDirs returns the directories searched for config.yaml.
func DefaultSearchDirs() []string {
	var dirs []string
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "timespan"))
	}
	return append(dirs, ".")
}

// Load reads settings. Values come from, in increasing priority: defaults,
// the config file, TIMESPAN_* environment variables (including those set by
// the dotenv file), and opts.Overrides. SleepLimit is parsed with the unit
// table the other settings describe.
func Load(opts LoadOptions) (*Settings, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s failed: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		for _, dir := range opts.SearchDirs {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about.
	for _, key := range []string{"color", "jobs", "log_level", "log_format", "units_file", "default_unit", "sleep_limit"} {
		v.SetDefault(key, "")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	// Unitless numbers and custom units in sleep_limit depend on the
	// configured table, so it is decoded once the table is known.
	table, err := s.UnitTable()
	if err != nil {
		return nil, err
	}
	if err := v.UnmarshalKey("sleep_limit", &s.SleepLimit, viper.DecodeHook(PeriodHook(table))); err != nil {
		return nil, fmt.Errorf("invalid sleep_limit: %w", err)
	}
	s.ApplyDefaults()

	return &s, nil
}

var periodType = reflect.TypeOf(timeparse.Period{})

// PeriodHook decodes strings and integers into timeparse.Period using table.
// Integers are unitless numbers in the table's default unit. An empty string
// decodes to the zero Period.
func PeriodHook(table timeparse.UnitTable) mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != periodType {
			return data, nil
		}
		switch from.Kind() {
		case reflect.String:
			return table.Parse(reflect.ValueOf(data).String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return table.Parse(fmt.Sprint(data))
		}
		return data, nil
	}
}
