package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/euromillions-csv/internal/extract"
	"github.com/pfrederiksen/euromillions-csv/internal/logger"
)

const (
	DefaultInputDir = "results"
	DefaultOutput   = "lottery_results.csv"
	DefaultMatcher  = extract.MatcherSource
	DefaultLogLevel = "info"

	EnvInputDir   = "EUROMILLIONS_INPUT_DIR"
	EnvOutput     = "EUROMILLIONS_OUTPUT"
	EnvExtensions = "EUROMILLIONS_EXTENSIONS"
	EnvMatcher    = "EUROMILLIONS_MATCHER"
	EnvLogLevel   = "EUROMILLIONS_LOG_LEVEL"
)

// DefaultExtensions are the snapshot file types read from the input directory
var DefaultExtensions = []string{".html", ".htm"}

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid configuration")

// Config holds converter settings
type Config struct {
	InputDir   string   `yaml:"input_dir"`
	Output     string   `yaml:"output"`
	Extensions []string `yaml:"extensions"`
	Matcher    string   `yaml:"matcher"`
	Sort       bool     `yaml:"sort"`
	LogLevel   string   `yaml:"log_level"`
}

// Default returns a Config populated with default values
func Default() Config {
	return Config{
		InputDir:   DefaultInputDir,
		Output:     DefaultOutput,
		Extensions: append([]string(nil), DefaultExtensions...),
		Matcher:    DefaultMatcher,
		Sort:       true,
		LogLevel:   DefaultLogLevel,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	cfg.mergeEnv(os.Getenv)

	return cfg, nil
}

// loadDotEnv exports the variables in path that are not already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvInputDir)); v != "" {
		c.InputDir = v
	}
	if v := strings.TrimSpace(getenv(EnvOutput)); v != "" {
		c.Output = v
	}
	if v := strings.TrimSpace(getenv(EnvExtensions)); v != "" {
		c.Extensions = SplitList(v)
	}
	if v := strings.TrimSpace(getenv(EnvMatcher)); v != "" {
		c.Matcher = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that the configuration can drive a conversion
func (c Config) Validate() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return fmt.Errorf("%w: input directory is empty", ErrInvalid)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: no file extensions configured", ErrInvalid)
	}
	if _, err := extract.MatcherFor(c.Matcher); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SplitList splits a comma-separated list, dropping empty items
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
