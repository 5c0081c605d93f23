package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const dirName = ".jortask-app"

var (
	instance *viper.Viper
	once     sync.Once
)

// Settings are the user-tunable knobs. Endpoints, title and size are
// compiled in and not configurable.
type Settings struct {
	LogLevel        string `mapstructure:"log_level"`
	StartHidden     bool   `mapstructure:"start_hidden"`
	CloseToTray     bool   `mapstructure:"close_to_tray"`
	LaunchOnStartup bool   `mapstructure:"launch_on_startup"`
}

var defaults = map[string]interface{}{
	"log_level":         "info",
	"start_hidden":      false,
	"close_to_tray":     true,
	"launch_on_startup": false,
}

// Get returns the process-wide config backed by ~/.jortask-app/config.yaml.
func Get() *viper.Viper {
	once.Do(func() {
		instance = Open(GetConfigDir())
	})
	return instance
}

// Open loads (creating if missing) config.yaml in dir. Read errors leave
// the defaults in place.
func Open(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := os.MkdirAll(dir, 0755); err != nil {
		dir = "."
	}
	v.AddConfigPath(dir)

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	configFile := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		// Ignore write errors on first run
		_ = v.SafeWriteConfigAs(configFile)
	}
	// Use defaults if config file can't be read
	_ = v.ReadInConfig()
	return v
}

// Defaults are the settings of a fresh install.
func Defaults() Settings {
	return Settings{LogLevel: "info", CloseToTray: true}
}

// Load decodes v into Settings.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// CheckKey returns the normalised key, or an error for unknown keys.
func CheckKey(key string) (string, error) {
	key = NormalizeKey(key)
	if _, ok := defaults[key]; !ok {
		return "", fmt.Errorf("unknown config key: %s (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return key, nil
}

// Set validates key and value against the known settings and stores the
// typed value, so a bad value never reaches the file.
func Set(v *viper.Viper, key, value string) error {
	key, err := CheckKey(key)
	if err != nil {
		return err
	}

	switch defaults[key].(type) {
	case bool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q is not a boolean", key, value)
		}
		v.Set(key, b)
	default:
		if key == "log_level" {
			level := strings.ToLower(strings.TrimSpace(value))
			if _, err := zerolog.ParseLevel(level); err != nil || level == "" {
				return fmt.Errorf("invalid value for %s: %q is not a log level", key, value)
			}
			value = level
		}
		v.Set(key, value)
	}
	return nil
}

// Keys lists the settable keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func NormalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "-", "_"))
}

func GetConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, dirName)
}
