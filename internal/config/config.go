package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"keycards/internal/catalog"
	"keycards/internal/prefs"
)

// EnvPrefix prefixes environment overrides, e.g. KEYCARDS_PREFS_TYPE.
const EnvPrefix = "KEYCARDS"

// Search modes.
const (
	SearchSubstring = "substring"
	SearchFuzzy     = "fuzzy"
)

// Config represents the application configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Prefs   prefs.Config  `mapstructure:"prefs" yaml:"prefs"`
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	View    ViewConfig    `mapstructure:"view" yaml:"view"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// CatalogConfig points at an external catalog. An empty Dir selects the
// catalog compiled into the binary.
type CatalogConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir"`
	Pattern string `mapstructure:"pattern" yaml:"pattern"`
}

type SearchConfig struct {
	Mode  string      `mapstructure:"mode" yaml:"mode"`
	Fuzzy FuzzyConfig `mapstructure:"fuzzy" yaml:"fuzzy"`
}

type FuzzyConfig struct {
	MinCoverage float64 `mapstructure:"min_coverage" yaml:"min_coverage"`
	MaxSpread   int     `mapstructure:"max_spread" yaml:"max_spread"`
}

// ViewConfig holds layout knobs for the card list.
type ViewConfig struct {
	ImageWidth      int `mapstructure:"image_width" yaml:"image_width"`
	ImageHeight     int `mapstructure:"image_height" yaml:"image_height"`
	ScrollThreshold int `mapstructure:"scroll_threshold" yaml:"scroll_threshold"`
}

type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Dir returns the per-user configuration directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".keycards"
	}
	return filepath.Join(home, ".config", "keycards")
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the configuration used when no file or env override exists.
func Default() Config {
	return Config{
		Catalog: CatalogConfig{Pattern: catalog.DefaultPattern},
		Prefs: prefs.Config{
			Type:   prefs.TypeFile,
			File:   prefs.FileConfig{Path: filepath.Join(Dir(), "prefs.yaml")},
			SQLite: prefs.SQLiteConfig{Path: filepath.Join(Dir(), "prefs.db")},
			Redis:  prefs.RedisConfig{Host: "localhost", Port: 6379, Prefix: prefs.DefaultRedisPrefix},
		},
		Search: SearchConfig{
			Mode:  SearchSubstring,
			Fuzzy: FuzzyConfig{MinCoverage: 0.6, MaxSpread: 40},
		},
		View: ViewConfig{ImageWidth: 48, ImageHeight: 12, ScrollThreshold: 10},
		Log:  LogConfig{Level: "warn"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("catalog.dir", d.Catalog.Dir)
	v.SetDefault("catalog.pattern", d.Catalog.Pattern)
	v.SetDefault("prefs.type", d.Prefs.Type)
	v.SetDefault("prefs.file.path", d.Prefs.File.Path)
	v.SetDefault("prefs.sqlite.path", d.Prefs.SQLite.Path)
	v.SetDefault("prefs.redis.host", d.Prefs.Redis.Host)
	v.SetDefault("prefs.redis.port", d.Prefs.Redis.Port)
	v.SetDefault("prefs.redis.db", d.Prefs.Redis.DB)
	v.SetDefault("prefs.redis.username", "")
	v.SetDefault("prefs.redis.password", "")
	v.SetDefault("prefs.redis.prefix", d.Prefs.Redis.Prefix)
	v.SetDefault("search.mode", d.Search.Mode)
	v.SetDefault("search.fuzzy.min_coverage", d.Search.Fuzzy.MinCoverage)
	v.SetDefault("search.fuzzy.max_spread", d.Search.Fuzzy.MaxSpread)
	v.SetDefault("view.image_width", d.View.ImageWidth)
	v.SetDefault("view.image_height", d.View.ImageHeight)
	v.SetDefault("view.scroll_threshold", d.View.ScrollThreshold)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads the file at path (if it exists) and applies KEYCARDS_* env
// overrides on top of the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values no component can act on.
func (c Config) Validate() error {
	switch c.Prefs.Type {
	case prefs.TypeFile, prefs.TypeSQLite, prefs.TypeRedis, prefs.TypeMemory:
	default:
		return fmt.Errorf("prefs.type: unsupported store %q", c.Prefs.Type)
	}
	switch c.Search.Mode {
	case SearchSubstring, SearchFuzzy:
	default:
		return fmt.Errorf("search.mode: unsupported mode %q", c.Search.Mode)
	}
	if c.View.ImageWidth <= 0 || c.View.ImageHeight <= 0 {
		return errors.New("view: image size must be positive")
	}
	if c.View.ScrollThreshold < 0 {
		return errors.New("view.scroll_threshold: must not be negative")
	}
	return nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
