package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/common"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	UI          UIConfig          `mapstructure:"ui"`
	Colors      ColorsConfig      `mapstructure:"colors"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Board BoardConfig `mapstructure:"board"`
	Unit  UnitConfig  `mapstructure:"unit"`
}

// BoardConfig holds board generation settings
type BoardConfig struct {
	Shape  string `mapstructure:"shape"`
	Radius int    `mapstructure:"radius"`
	File   string `mapstructure:"file"`
}

// UnitConfig holds the player unit's starting tile
type UnitConfig struct {
	StartQ int `mapstructure:"start_q"`
	StartR int `mapstructure:"start_r"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
	Hex    HexConfig    `mapstructure:"hex"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// HexConfig holds hex drawing settings
type HexConfig struct {
	Size        float64 `mapstructure:"size"`
	UnitRadius  float64 `mapstructure:"unit_radius"`
	StrokeWidth float64 `mapstructure:"stroke_width"`
}

// ColorsConfig holds all color configurations
type ColorsConfig struct {
	Tile       [3]int `mapstructure:"tile"`
	Hover      [3]int `mapstructure:"hover"`
	Unit       [3]int `mapstructure:"unit"`
	Background [3]int `mapstructure:"background"`
	Label      [3]int `mapstructure:"label"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string            `mapstructure:"level"`
	Format string            `mapstructure:"format"`
	File   LogFileConfig     `mapstructure:"file"`
	Events EventLoggerConfig `mapstructure:"events"`
}

// LogFileConfig holds rolling log file settings
type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// EventLoggerConfig controls how game events are logged
type EventLoggerConfig struct {
	Level string `mapstructure:"level"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	ShowCoordinates bool `mapstructure:"show_coordinates"`
	ShowHover       bool `mapstructure:"show_hover"`
	VerboseEvents   bool `mapstructure:"verbose_events"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	mu  sync.RWMutex

	// overlay holds the merged environment settings so a reload of the
	// base file can re-apply them.
	overlay map[string]interface{}
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.board.shape", "parallelogram")
	v.SetDefault("game.board.radius", 2)
	v.SetDefault("game.board.file", "")
	v.SetDefault("game.unit.start_q", 0)
	v.SetDefault("game.unit.start_r", 0)

	v.SetDefault("ui.window.width", 800)
	v.SetDefault("ui.window.height", 600)
	v.SetDefault("ui.window.title", "Devastating Slash")
	v.SetDefault("ui.hex.size", 30.0)
	v.SetDefault("ui.hex.unit_radius", 10.0)
	v.SetDefault("ui.hex.stroke_width", 1.0)

	v.SetDefault("colors.tile", []int{100, 200, 255})
	v.SetDefault("colors.hover", []int{255, 255, 255})
	v.SetDefault("colors.unit", []int{144, 238, 144})
	v.SetDefault("colors.background", []int{27, 27, 27})
	v.SetDefault("colors.label", []int{160, 160, 160})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "devastating-slash.log")
	v.SetDefault("logging.file.max_size_mb", 10)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age_days", 7)
	v.SetDefault("logging.file.compress", false)
	v.SetDefault("logging.events.level", "debug")

	v.SetDefault("development.show_coordinates", false)
	v.SetDefault("development.show_hover", true)
	v.SetDefault("development.verbose_events", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	mu.Lock()
	defer mu.Unlock()

	v = viper.New()
	overlay = nil
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/devastating-slash")
	}

	v.SetEnvPrefix("DSL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configPath == "" && errors.As(err, &notFound):
		case configPath != "" && errors.Is(err, os.ErrNotExist):
			// A missing explicit file falls back to defaults.
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	loaded, err := decode(v)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// decode unmarshals and validates a fresh Config from v
func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// Get returns the current config. The returned value is never mutated in
// place; reloads swap in a new one.
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// EnvironmentConfigPath returns where the overlay for env is looked up: next
// to the loaded config file, or in the working directory when there is none.
func EnvironmentConfigPath(env string) string {
	dir := "."
	if used := GetViper().ConfigFileUsed(); used != "" {
		dir = filepath.Dir(used)
	}
	return filepath.Join(dir, fmt.Sprintf("config.%s.yaml", env))
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config. The
// base file stays the one that is watched and reported by ConfigFilePath.
// A missing overlay is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}
	envFile := EnvironmentConfigPath(env)

	ov := viper.New()
	ov.SetConfigFile(envFile)
	if err := ov.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading environment config %s: %w", envFile, err)
	}

	mu.Lock()
	defer mu.Unlock()

	settings := ov.AllSettings()
	if err := v.MergeConfigMap(settings); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}
	overlay = settings

	loaded, err := decode(v)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// Set allows runtime config updates. Invalid values are rejected and the
// previous config stays active.
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()

	v.Set(key, value)
	loaded, err := decode(v)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// GetString gets a string value from config
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return GetViper().GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// GetFloat64 gets a float64 value from config
func GetFloat64(key string) float64 {
	return GetViper().GetFloat64(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return GetViper().ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange runs on the
// watcher goroutine with the newly loaded config, or with the error that
// kept the old one in place.
func WatchConfig(onChange func(*Config, error)) {
	w := GetViper()
	w.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		mu.Lock()
		var err error
		if overlay != nil {
			err = w.MergeConfigMap(overlay)
		}
		var loaded *Config
		if err == nil {
			loaded, err = decode(w)
		}
		if err == nil {
			cfg = loaded
		}
		mu.Unlock()
		if onChange != nil {
			onChange(loaded, err)
		}
	})
	w.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	switch c.Game.Board.Shape {
	case "parallelogram", "hexagon":
		if c.Game.Board.Radius < 0 {
			return fmt.Errorf("game.board.radius must be non-negative")
		}
	case "file":
		if c.Game.Board.File == "" {
			return fmt.Errorf("game.board.file is required when game.board.shape is file")
		}
	default:
		return fmt.Errorf("game.board.shape must be one of parallelogram, hexagon, file")
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.Hex.Size <= 0 {
		return fmt.Errorf("ui.hex.size must be positive")
	}
	if c.UI.Hex.UnitRadius <= 0 {
		return fmt.Errorf("ui.hex.unit_radius must be positive")
	}
	if c.UI.Hex.StrokeWidth <= 0 {
		return fmt.Errorf("ui.hex.stroke_width must be positive")
	}

	colors := []struct {
		rgb  [3]int
		name string
	}{
		{c.Colors.Tile, "colors.tile"},
		{c.Colors.Hover, "colors.hover"},
		{c.Colors.Unit, "colors.unit"},
		{c.Colors.Background, "colors.background"},
		{c.Colors.Label, "colors.label"},
	}
	for _, col := range colors {
		if i := common.InvalidRGBComponent(col.rgb); i >= 0 {
			return fmt.Errorf("%s[%d] must be between 0 and 255", col.name, i)
		}
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Events.Level); err != nil {
		return fmt.Errorf("logging.events.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}
	if c.Logging.File.Enabled {
		if c.Logging.File.Path == "" {
			return fmt.Errorf("logging.file.path is required when file logging is enabled")
		}
		if c.Logging.File.MaxSizeMB <= 0 {
			return fmt.Errorf("logging.file.max_size_mb must be positive")
		}
		if c.Logging.File.MaxBackups < 0 || c.Logging.File.MaxAgeDays < 0 {
			return fmt.Errorf("logging.file retention settings must be non-negative")
		}
	}

	return nil
}
