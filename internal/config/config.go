// ABOUTME: Daylog configuration management with backend selection.
// ABOUTME: Handles settings, device identity, and the storage backend factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/daylog/internal/storage"
	"github.com/harperreed/daylog/internal/tracker"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Backend names accepted in the config file and on the command line.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// File and directory names below the data directory.
const (
	SQLiteFile = "daylog.db"
	BadgerDir  = "badger"
)

// Backends lists the supported backend names.
var Backends = []string{BackendSQLite, BackendBadger, BackendMemory}

// Config stores daylog configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger" or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts daylog.db here. Badger puts its files in a badger/ folder.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/daylog.
	DataDir string `json:"data_dir,omitempty"`

	// SummaryWindow is how many wellbeing entries the summary averages over.
	SummaryWindow int `json:"summary_window,omitempty"`

	// WellbeingRetention caps the wellbeing log. Unset means 30; 0 keeps everything.
	WellbeingRetention *int `json:"wellbeing_retention,omitempty"`

	// LogLevel is a zap level name (debug, info, warn, error). Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`

	// DeviceID identifies this installation on exports.
	DeviceID string `json:"device_id,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetSummaryWindow returns the summary window, defaulting to 7.
func (c *Config) GetSummaryWindow() int {
	if c.SummaryWindow <= 0 {
		return tracker.DefaultWindow
	}
	return c.SummaryWindow
}

// GetWellbeingRetention returns the wellbeing retention, defaulting to 30.
func (c *Config) GetWellbeingRetention() int {
	if c.WellbeingRetention == nil || *c.WellbeingRetention < 0 {
		return tracker.DefaultRetention
	}
	return *c.WellbeingRetention
}

// GetLogLevel parses LogLevel, defaulting to warn.
func (c *Config) GetLogLevel() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.WarnLevel, nil
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// TrackerOptions returns the component options derived from this config.
func (c *Config) TrackerOptions() tracker.Options {
	return tracker.Options{
		Window:    c.GetSummaryWindow(),
		Retention: c.GetWellbeingRetention(),
	}
}

// EnsureDeviceID assigns a new ULID when none is set and reports whether it did.
func (c *Config) EnsureDeviceID() bool {
	if c.DeviceID != "" {
		return false
	}
	c.DeviceID = ulid.Make().String()
	return true
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenBackend opens the named backend rooted at dataDir.
func OpenBackend(name, dataDir string, logger *zap.Logger) (storage.Backend, error) {
	switch name {
	case BackendSQLite:
		return storage.Open(filepath.Join(dataDir, SQLiteFile))
	case BackendBadger:
		return storage.OpenBadger(filepath.Join(dataDir, BadgerDir), logger)
	case BackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q (use %s)", name, strings.Join(Backends, ", "))
	}
}

// OpenStorage creates a RecordStore over the configured backend.
func (c *Config) OpenStorage(logger *zap.Logger) (*storage.RecordStore, error) {
	backend, err := OpenBackend(c.GetBackend(), c.GetDataDir(), logger)
	if err != nil {
		return nil, err
	}
	return storage.NewRecordStore(backend, logger), nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "daylog", "config.json")
}

// Load reads config from the default path.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads config from path. A missing file yields an empty config.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to the default path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes config to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
