// Package config provides Viper-based configuration loading for the reveal agent.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File is the path of a rotating log file. Empty = standard error.
	File string `mapstructure:"file"`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated files to keep. 0 = keep all.
	MaxBackups int `mapstructure:"max_backups"`
	// MaxAgeDays is the age after which rotated files are removed. 0 = never.
	MaxAgeDays int `mapstructure:"max_age_days"`
}

// PollConfig holds polling loop settings.
type PollConfig struct {
	// Interval is the delay between ticks.
	Interval time.Duration `mapstructure:"interval"`
}

// HostConfig describes the host process the agent is loaded into.
type HostConfig struct {
	// Module is the file name of the agent library, used in log messages.
	Module string `mapstructure:"module"`
	// UnloadKey is the virtual key code whose release stops the agent. 0 disables it.
	UnloadKey int `mapstructure:"unload_key"`
}

// OffsetsConfig holds host routine and data offsets relative to the module base.
// They are specific to one client build.
type OffsetsConfig struct {
	InitSubArea    uint64 `mapstructure:"init_subarea"`
	RegisterRoom   uint64 `mapstructure:"register_room"`
	UnregisterRoom uint64 `mapstructure:"unregister_room"`
	RevealRoom     uint64 `mapstructure:"reveal_room"`
	PlayerIndex    uint64 `mapstructure:"player_index"`
	GetPlayer      uint64 `mapstructure:"get_player"`
}

// Validate checks that every offset is set.
//
// Postcondition: Returns nil if all offsets are non-zero, or an error naming the missing ones.
func (o OffsetsConfig) Validate() error {
	var missing []string
	for _, f := range []struct {
		name string
		v    uint64
	}{
		{"init_subarea", o.InitSubArea},
		{"register_room", o.RegisterRoom},
		{"unregister_room", o.UnregisterRoom},
		{"reveal_room", o.RevealRoom},
		{"player_index", o.PlayerIndex},
		{"get_player", o.GetPlayer},
	} {
		if f.v == 0 {
			missing = append(missing, "offsets."+f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s must be set", strings.Join(missing, ", "))
	}
	return nil
}

// LayoutConfig holds struct field offsets of the host's world graph.
type LayoutConfig struct {
	AreaMisc          uint64 `mapstructure:"area_misc"`
	MiscArea          uint64 `mapstructure:"misc_area"`
	MiscFirstSubArea  uint64 `mapstructure:"misc_first_subarea"`
	SubAreaFirstRoom  uint64 `mapstructure:"subarea_first_room"`
	SubAreaBounds     uint64 `mapstructure:"subarea_bounds"`
	SubAreaNext       uint64 `mapstructure:"subarea_next"`
	SubAreaMisc       uint64 `mapstructure:"subarea_misc"`
	SubAreaID         uint64 `mapstructure:"subarea_id"`
	RoomNeighbors     uint64 `mapstructure:"room_neighbors"`
	RoomNeighborCount uint64 `mapstructure:"room_neighbor_count"`
	RoomNext          uint64 `mapstructure:"room_next"`
	RoomGeometry      uint64 `mapstructure:"room_geometry"`
	RoomBounds        uint64 `mapstructure:"room_bounds"`
	RoomSubArea       uint64 `mapstructure:"room_subarea"`
	GeometryRoom      uint64 `mapstructure:"geometry_room"`
	UnitType          uint64 `mapstructure:"unit_type"`
	UnitID            uint64 `mapstructure:"unit_id"`
	UnitPath          uint64 `mapstructure:"unit_path"`
	PathGeometry      uint64 `mapstructure:"path_geometry"`
}

// DefaultLayout returns the field offsets of the 64-bit client.
func DefaultLayout() LayoutConfig {
	return LayoutConfig{
		AreaMisc:          0x78,
		MiscArea:          0xA30,
		MiscFirstSubArea:  0xA40,
		SubAreaFirstRoom:  0x10,
		SubAreaBounds:     0x28,
		SubAreaNext:       0x1B8,
		SubAreaMisc:       0x1C8,
		SubAreaID:         0x1F8,
		RoomNeighbors:     0x10,
		RoomNeighborCount: 0x18,
		RoomNext:          0x48,
		RoomGeometry:      0x58,
		RoomBounds:        0x60,
		RoomSubArea:       0x90,
		GeometryRoom:      0x18,
		UnitType:          0x00,
		UnitID:            0x08,
		UnitPath:          0x38,
		PathGeometry:      0x20,
	}
}

// RevealConfig holds reveal policy settings.
type RevealConfig struct {
	// SkipTowns marks towns as revealed without walking them.
	SkipTowns bool `mapstructure:"skip_towns"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Poll    PollConfig    `mapstructure:"poll"`
	Host    HostConfig    `mapstructure:"host"`
	Offsets OffsetsConfig `mapstructure:"offsets"`
	Layout  LayoutConfig  `mapstructure:"layout"`
	Reveal  RevealConfig  `mapstructure:"reveal"`
}

// Validate checks all configuration invariants. Offsets are checked
// separately because only the in-process agent needs them.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePoll(c.Poll); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateHost(c.Host); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.File != "" && l.MaxSizeMB < 1 {
		errs = append(errs, fmt.Sprintf("logging.max_size_mb must be >= 1, got %d", l.MaxSizeMB))
	}
	if l.MaxBackups < 0 {
		errs = append(errs, "logging.max_backups must not be negative")
	}
	if l.MaxAgeDays < 0 {
		errs = append(errs, "logging.max_age_days must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validatePoll(p PollConfig) error {
	if p.Interval < time.Millisecond {
		return fmt.Errorf("poll.interval must be >= 1ms, got %s", p.Interval)
	}
	return nil
}

func validateHost(h HostConfig) error {
	var errs []string
	if h.Module == "" {
		errs = append(errs, "host.module must not be empty")
	}
	if h.UnloadKey < 0 || h.UnloadKey > 0xFE {
		errs = append(errs, fmt.Sprintf("host.unload_key must be 0-254, got %d", h.UnloadKey))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// LoadOptional behaves like Load when path exists, and otherwise builds the
// configuration from defaults and environment overrides alone.
//
// Postcondition: Returns a valid Config or a non-nil error.
func LoadOptional(path string) (Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return LoadFromViper(newViper())
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with D2REVEAL_ prefix
	v.SetEnvPrefix("D2REVEAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 7)

	v.SetDefault("poll.interval", "100ms")

	v.SetDefault("host.module", "d2reveal.dll")
	v.SetDefault("host.unload_key", 0x2E) // VK_DELETE

	// Offsets have no defaults; they must match the running client build.
	for _, key := range []string{"init_subarea", "register_room", "unregister_room", "reveal_room", "player_index", "get_player"} {
		v.SetDefault("offsets."+key, 0)
	}

	l := DefaultLayout()
	v.SetDefault("layout.area_misc", l.AreaMisc)
	v.SetDefault("layout.misc_area", l.MiscArea)
	v.SetDefault("layout.misc_first_subarea", l.MiscFirstSubArea)
	v.SetDefault("layout.subarea_first_room", l.SubAreaFirstRoom)
	v.SetDefault("layout.subarea_bounds", l.SubAreaBounds)
	v.SetDefault("layout.subarea_next", l.SubAreaNext)
	v.SetDefault("layout.subarea_misc", l.SubAreaMisc)
	v.SetDefault("layout.subarea_id", l.SubAreaID)
	v.SetDefault("layout.room_neighbors", l.RoomNeighbors)
	v.SetDefault("layout.room_neighbor_count", l.RoomNeighborCount)
	v.SetDefault("layout.room_next", l.RoomNext)
	v.SetDefault("layout.room_geometry", l.RoomGeometry)
	v.SetDefault("layout.room_bounds", l.RoomBounds)
	v.SetDefault("layout.room_subarea", l.RoomSubArea)
	v.SetDefault("layout.geometry_room", l.GeometryRoom)
	v.SetDefault("layout.unit_type", l.UnitType)
	v.SetDefault("layout.unit_id", l.UnitID)
	v.SetDefault("layout.unit_path", l.UnitPath)
	v.SetDefault("layout.path_geometry", l.PathGeometry)

	v.SetDefault("reveal.skip_towns", false)
}
