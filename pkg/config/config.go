// Package config provides configuration loading for the StatusWise Core
// SDK. It resolves the classifier and catalog settings in a layered
// priority order:
//
//	built-in defaults      (lowest priority)
//	YAML config file       (medium priority)
//	Environment variables  (highest priority)
//
// This priority order mirrors how Kubernetes deployments typically work:
// sensible defaults are baked into the code, config files provide
// environment-specific overrides, and env vars (from ConfigMaps or
// Secrets) take final precedence.
//
// # Environment variables
//
// Variables are read with the configured prefix (default "STATUSWISE"):
//
//	STATUSWISE_DEBUG            bool   — enable diagnostic logging
//	STATUSWISE_SERVER_ONLY      bool   — log only in server contexts
//	STATUSWISE_LOCALE           string — requested message locale
//	STATUSWISE_FALLBACK_LOCALE  string — fallback message locale
//	STATUSWISE_CATALOG_PATH     string — optional catalog YAML file
//
// # Usage
//
//	cfg, err := config.New().WithFile("statuswise.yaml").Load()
//	if err != nil {
//	    return err
//	}
//	classifier := errstatus.New(
//	    catalog.Default().Translator(cfg.Locale),
//	    errstatus.WithOptions(cfg.ClassifierOptions()),
//	)
package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	sserr "github.com/StatusWise/statuswise-core/pkg/errors"
	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

// DefaultEnvPrefix is the environment variable prefix used when none is
// configured via [Loader.WithEnvPrefix].
const DefaultEnvPrefix = "STATUSWISE"

// Config holds the SDK settings consumed by the classifier and catalog.
type Config struct {
	// Debug enables diagnostic logging of every classification.
	Debug bool `yaml:"debug"`

	// ServerOnly restricts diagnostic logging to server execution
	// contexts. Meaningful only when Debug is true.
	ServerOnly bool `yaml:"server_only"`

	// Locale is the requested message locale (e.g. "en", "de").
	Locale string `yaml:"locale"`

	// FallbackLocale is consulted for keys the requested locale does not
	// define.
	FallbackLocale string `yaml:"fallback_locale"`

	// CatalogPath optionally points to a YAML catalog file merged over
	// the built-in messages. Empty means built-ins only.
	CatalogPath string `yaml:"catalog_path"`
}

// Default returns the built-in configuration: English messages, no debug
// logging, no catalog file.
func Default() *Config {
	return &Config{
		Locale:         "en",
		FallbackLocale: "en",
	}
}

// Validate checks the configuration for consistency. It returns a
// [sserr.CodeValidationRequired] error for missing required values and
// [sserr.CodeValidation] for invalid ones.
func (c *Config) Validate() error {
	if c.Locale == "" {
		return sserr.New(sserr.CodeValidationRequired,
			"config: locale must not be empty")
	}
	if c.FallbackLocale == "" {
		return sserr.New(sserr.CodeValidationRequired,
			"config: fallback_locale must not be empty")
	}
	if strings.Contains(c.CatalogPath, "..") {
		return sserr.Newf(sserr.CodeValidation,
			"config: catalog_path %q must not contain directory traversal", c.CatalogPath)
	}
	return nil
}

// ClassifierOptions converts the configuration into classifier options.
func (c *Config) ClassifierOptions() errstatus.Options {
	return errstatus.Options{
		Debug:      c.Debug,
		ServerOnly: c.ServerOnly,
	}
}

// Loader builds and executes configuration loading with the layered
// resolution strategy. Use [New] to create a Loader and configure it with
// [Loader.WithEnvPrefix] and [Loader.WithFile] before calling
// [Loader.Load].
//
// Loader is not safe for concurrent use. Create a new Loader for each
// Load call, or synchronize access externally.
type Loader struct {
	envPrefix string
	filePath  string
}

// New creates a new [Loader] with default settings: [DefaultEnvPrefix]
// and no file.
func New() *Loader {
	return &Loader{envPrefix: DefaultEnvPrefix}
}

// WithEnvPrefix overrides the environment variable prefix. The prefix is
// automatically uppercased. WithEnvPrefix returns the Loader for fluent
// chaining.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = strings.ToUpper(prefix)
	return l
}

// WithFile sets the path to a YAML configuration file. If the file does
// not exist, loading proceeds without file-based values (file
// configuration is optional). WithFile returns the Loader for fluent
// chaining.
func (l *Loader) WithFile(path string) *Loader {
	l.filePath = path
	return l
}

// Load resolves the configuration (defaults, then file, then environment)
// and validates it. Loading failures return a [sserr.Error] with code
// [sserr.CodeInternalConfiguration]; validation failures carry the
// validation codes documented on [Config.Validate].
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	if l.filePath != "" {
		if strings.Contains(l.filePath, "..") {
			return nil, sserr.Newf(sserr.CodeValidation,
				"config: file path %q must not contain directory traversal", l.filePath)
		}
		data, err := os.ReadFile(l.filePath)
		switch {
		case os.IsNotExist(err):
			// Optional file; fall through to env.
		case err != nil:
			return nil, sserr.Wrapf(err, sserr.CodeInternalConfiguration,
				"config: failed to read %q", l.filePath)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, sserr.Wrapf(err, sserr.CodeInternalConfiguration,
					"config: failed to parse %q", l.filePath)
			}
		}
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
func (l *Loader) applyEnv(cfg *Config) error {
	if err := l.envBool("DEBUG", &cfg.Debug); err != nil {
		return err
	}
	if err := l.envBool("SERVER_ONLY", &cfg.ServerOnly); err != nil {
		return err
	}
	l.envString("LOCALE", &cfg.Locale)
	l.envString("FALLBACK_LOCALE", &cfg.FallbackLocale)
	l.envString("CATALOG_PATH", &cfg.CatalogPath)
	return nil
}

func (l *Loader) envName(name string) string {
	if l.envPrefix == "" {
		return name
	}
	return l.envPrefix + "_" + name
}

func (l *Loader) envString(name string, dst *string) {
	if v, ok := os.LookupEnv(l.envName(name)); ok {
		*dst = v
	}
}

func (l *Loader) envBool(name string, dst *bool) error {
	v, ok := os.LookupEnv(l.envName(name))
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return sserr.Wrapf(err, sserr.CodeInternalConfiguration,
			"config: %s must be a boolean, got %q", l.envName(name), v)
	}
	*dst = parsed
	return nil
}
