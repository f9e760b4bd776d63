// Package config loads service settings from defaults, an optional YAML file
// and the environment, in that order of precedence (last wins).
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the YAML config file location
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

// DotenvFiles are loaded before anything else; missing files are ignored
var DotenvFiles = []string{".env.local", ".env"}

// Config is the injected configuration for the service
type Config struct {
	APIKey        string `koanf:"api_key" validate:"required"`
	AllowedOrigin string `koanf:"allowed_origin" validate:"required,origin"`
	ModelID       string `koanf:"model_id" validate:"required"`
	Port          int    `koanf:"port" validate:"gt=0,lt=65536"`
	Env           string `koanf:"env"`
	LogLevel      string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat     string `koanf:"log_format" validate:"oneof=json console"`
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func defaultConfig() *Config {
	return &Config{
		AllowedOrigin: "http://localhost:3000",
		ModelID:       "gemini-2.5-flash",
		Port:          8000,
		Env:           "development",
		LogLevel:      "info",
		LogFormat:     "json",
	}
}

// envMappings maps environment variables to config keys; others are ignored
var envMappings = map[string]string{
	"gemini_api_key": "api_key",
	"allowed_origin": "allowed_origin",
	"model_id":       "model_id",
	"port":           "port",
	"env":            "env",
	"log_level":      "log_level",
	"log_format":     "log_format",
}

// aliasEnvMappings are loaded before envMappings, so GEMINI_API_KEY wins over API_KEY
var aliasEnvMappings = map[string]string{
	"api_key": "api_key",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

func aliasEnvTransformFunc(key string) string {
	return aliasEnvMappings[strings.ToLower(key)]
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("origin", isOrigin)
	return v
}

// isOrigin accepts a bare scheme://host[:port], the form browsers send in Origin
func isOrigin(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && u.User == nil && u.Path == "" && u.RawQuery == "" && u.Fragment == "" && !u.ForceQuery
}

// Load reads .env files, defaults, the config file and the environment
func Load() (*Config, error) {
	for _, f := range DotenvFiles {
		// godotenv never overrides variables that are already set
		_ = godotenv.Load(f)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", aliasEnvTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
