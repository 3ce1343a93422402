package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultTransition     = 200 * time.Millisecond
	DefaultNoticeDuration = 2 * time.Second
)

// Config holds sfmodal settings.
type Config struct {
	// Transition is how long a closed dialog keeps its payload for the exit render.
	Transition     time.Duration `mapstructure:"transition"`
	NoticeDuration time.Duration `mapstructure:"notice_duration"`
	DebugLog       string        `mapstructure:"debug_log"`
}

// Load reads configuration from file and env. Env var overrides use prefix SFMODAL_.
// An explicit path must exist; the default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("transition", DefaultTransition)
	v.SetDefault("notice_duration", DefaultNoticeDuration)
	v.SetDefault("debug_log", "")

	if path == "" {
		path = os.Getenv("SFMODAL_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sfmodal"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SFMODAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects durations that cannot be scheduled.
func (c Config) Validate() error {
	if c.Transition < 0 {
		return fmt.Errorf("transition must not be negative, got %s", c.Transition)
	}
	if c.NoticeDuration < 0 {
		return fmt.Errorf("notice_duration must not be negative, got %s", c.NoticeDuration)
	}
	return nil
}
