package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Cleaning CleaningConfig `yaml:"cleaning"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputConfig describes the raw file to load
type InputConfig struct {
	Path      string `yaml:"path" validate:"required"`
	Delimiter string `yaml:"delimiter" validate:"required,len=1"`
	Encoding  string `yaml:"encoding" validate:"required,oneof=utf-8 utf8 utf-8-sig windows-1252 cp1252 iso-8859-1 latin-1 latin1"`
	Sheet     string `yaml:"sheet"`
}

// OutputConfig describes the cleaned file to write
type OutputConfig struct {
	Path      string `yaml:"path" validate:"required"`
	Delimiter string `yaml:"delimiter" validate:"required,len=1"`
	BOM       bool   `yaml:"bom"`
	Sheet     string `yaml:"sheet"`
}

// CleaningConfig controls the validation stage
type CleaningConfig struct {
	RequiredColumns []string `yaml:"required_columns" validate:"min=1,dive,required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"required,oneof=debug info warn warning error"`
	Format   string `yaml:"format" validate:"required,oneof=text json"`
	Output   string `yaml:"output" validate:"required,oneof=console file both"`
	FilePath string `yaml:"file_path" validate:"required"`
}

// EnvConfig holds the environment overrides. Only paths and logging can be
// set from the environment; everything else comes from flags or the
// config file.
type EnvConfig struct {
	InputPath   string `envconfig:"INPUT_PATH"`
	OutputPath  string `envconfig:"OUTPUT_PATH"`
	LogLevel    string `envconfig:"LOG_LEVEL"`
	LogFormat   string `envconfig:"LOG_FORMAT"`
	LogOutput   string `envconfig:"LOG_OUTPUT"`
	LogFilePath string `envconfig:"LOG_FILE_PATH"`
}

// Defaults returns the built-in configuration, matching the conventional
// data layout: raw input under data/raw, cleaned output under
// data/processed.
func Defaults() Config {
	return Config{
		Input: InputConfig{
			Path:      filepath.Join("data", "raw", DefaultInputFile),
			Delimiter: ",",
			Encoding:  "utf-8",
		},
		Output: OutputConfig{
			Path:      filepath.Join("data", "processed", DefaultOutputFile),
			Delimiter: ",",
		},
		Cleaning: CleaningConfig{
			RequiredColumns: []string{"price", "quantity"},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: filepath.Join("logs", DefaultLogFile),
		},
	}
}

// Load builds the configuration from its three sources, lowest precedence
// first: built-in defaults, an optional YAML file, then SALESCLEAN_*
// environment variables. An empty configFile means the conventional file
// names are probed and silently skipped when absent; a named file that
// cannot be read is an error.
func Load(configFile string) (*Config, error) {
	cfg := Defaults()

	path := configFile
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(&cfg, path); err != nil {
			return nil, err
		}
	}

	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	cfg.applyEnv(env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// findConfigFile probes the conventional config file names in the working
// directory.
func findConfigFile() string {
	for _, name := range []string{"salesclean.yaml", "salesclean.yml"} {
		if FileExists(name) {
			return name
		}
	}
	return ""
}

func (c *Config) applyEnv(env EnvConfig) {
	if env.InputPath != "" {
		c.Input.Path = env.InputPath
	}
	if env.OutputPath != "" {
		c.Output.Path = env.OutputPath
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Logging.Format = env.LogFormat
	}
	if env.LogOutput != "" {
		c.Logging.Output = env.LogOutput
	}
	if env.LogFilePath != "" {
		c.Logging.FilePath = env.LogFilePath
	}
}

// Validate checks the configuration against its struct rules
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = formatFieldError(fe)
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// formatFieldError converts a validator error into a readable message
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Namespace(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s character", fe.Namespace(), fe.Param())
	case "min":
		return fmt.Sprintf("%s needs at least %s entry", fe.Namespace(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag())
	}
}

// DelimiterRune returns the configured input field separator
func (c InputConfig) DelimiterRune() rune {
	return firstRune(c.Delimiter)
}

// DelimiterRune returns the configured output field separator
func (c OutputConfig) DelimiterRune() rune {
	return firstRune(c.Delimiter)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ','
}
