// Package prefs persists small user preferences such as the dark-mode flag.
package prefs

import (
	"context"
	"fmt"
	"strconv"
)

// DarkModeKey is the slot the dark-mode flag lives in.
const DarkModeKey = "darkMode"

// Store is a durable key-value slot store.
type Store interface {
	// Get returns the value for key and whether it was set.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases the backend.
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Type   string       `mapstructure:"type" yaml:"type"`
	File   FileConfig   `mapstructure:"file" yaml:"file"`
	SQLite SQLiteConfig `mapstructure:"sqlite" yaml:"sqlite"`
	Redis  RedisConfig  `mapstructure:"redis" yaml:"redis"`
}

type FileConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	DB       int    `mapstructure:"db" yaml:"db"`
	Username string `mapstructure:"username" yaml:"username,omitempty"`
	Password string `mapstructure:"password" yaml:"password,omitempty"`
	Prefix   string `mapstructure:"prefix" yaml:"prefix"`
}

// Backend names accepted in Config.Type.
const (
	TypeFile   = "file"
	TypeSQLite = "sqlite"
	TypeRedis  = "redis"
	TypeMemory = "memory"
)

// NewStore creates a store based on the provided configuration.
func NewStore(cfg Config) (Store, error) {
	switch cfg.Type {
	case TypeFile, "":
		return NewFileStore(cfg.File.Path)
	case TypeSQLite:
		return NewSQLiteStore(cfg.SQLite)
	case TypeRedis:
		return NewRedisStore(cfg.Redis)
	case TypeMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported prefs store type: %s", cfg.Type)
	}
}

// LoadDarkMode reports whether dark mode was last saved as on. Only the
// exact value "true" counts; anything else, or an unset slot, reads as off.
func LoadDarkMode(ctx context.Context, s Store) (bool, error) {
	v, ok, err := s.Get(ctx, DarkModeKey)
	if err != nil || !ok {
		return false, err
	}
	return v == "true", nil
}

// SaveDarkMode writes the dark-mode flag.
func SaveDarkMode(ctx context.Context, s Store, on bool) error {
	return s.Set(ctx, DarkModeKey, strconv.FormatBool(on))
}
