package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment
// variables. The data source URL and refresh interval themselves live in the
// user preferences, not here.
type Config struct {
	Env             string        `mapstructure:"env"`              // current application environment (local, production etc)
	PreferencesPath string        `mapstructure:"preferences_path"` // preferences file location, empty means the user config dir
	Reachability    string        `mapstructure:"reachability"`     // connectivity probe: "always" or "dial"
	DialTimeout     time.Duration `mapstructure:"dial_timeout"`     // probe timeout when reachability is "dial"
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("preferences_path", "")
	v.SetDefault("reachability", "always")
	v.SetDefault("dial_timeout", "3s")

	// Configure environment variable handling and key mapping.
	v.SetEnvPrefix("iquiz")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
