package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "CANVAS"

// newViper builds a pre-configured Viper instance with the application's
// standard settings: YAML file type, CANVAS_ env prefix, automatic env
// binding, and a key replacer that maps "." → "_" so that nested keys like
// "dataset.path" resolve to "CANVAS_DATASET_PATH".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerKeys(v)
	return v
}

// registerKeys declares every configuration key to viper with a zero default.
// AutomaticEnv only resolves environment variables for keys viper already
// knows about, so without this step env-only deployments would see none of
// their CANVAS_* settings.  Real defaults are applied later by ApplyDefaults.
func registerKeys(v *viper.Viper) {
	for _, key := range []string{
		"server.host", "server.port", "server.mode",
		"server.read_timeout", "server.write_timeout", "server.shutdown_timeout",
		"dataset.path", "dataset.watch", "dataset.watch_debounce",
		"dashboard.title", "dashboard.theme", "dashboard.opportunity", "dashboard.author",
		"log.level", "log.format",
		"metrics.enabled", "metrics.path",
	} {
		v.SetDefault(key, nil)
	}
}

// Load reads the YAML file at configPath, merges any CANVAS_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.  It returns a fully-populated *Config or a descriptive error.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from CANVAS_* environment variables,
// with no config file required.  This is the preferred loading strategy for
// containerised deployments.
//
// Environment variable naming convention:
//
//	CANVAS_<SECTION>_<FIELD>   e.g.  CANVAS_DATASET_PATH, CANVAS_SERVER_PORT
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	// WeaklyTypedInput lets numeric and boolean settings arrive as strings
	// from environment variables.
	weak := func(dc *mapstructure.DecoderConfig) { dc.WeaklyTypedInput = true }
	if err := v.Unmarshal(cfg, weak); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// MustLoad is a convenience wrapper around Load that panics on any error.
// It is intended for use in main() where a config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
