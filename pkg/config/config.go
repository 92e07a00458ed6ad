// Package config loads application configuration from a TOML file, layered
// over defaults. Geometry tolerances live here too, so a deployment can tune
// layout spacing or detection thresholds without a rebuild.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/rickerduniya/Sayanho-sub002/pkg/errors"
	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan/rooms"
	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan/stitch"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic/arrange"
)

// Duration wraps time.Duration with TOML text decoding ("5m", "1h30m").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Cache backend names accepted in [cache] backend.
const (
	CacheBackendNone  = "none"
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

// Store backend names accepted in [store] backend.
const (
	StoreBackendMemory = "memory"
	StoreBackendMongo  = "mongo"
)

// CacheConfig selects and parameterizes the result cache.
type CacheConfig struct {
	Backend       string   `toml:"backend"`
	Dir           string   `toml:"dir"`
	TTL           Duration `toml:"ttl"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
}

// StoreConfig selects and parameterizes design persistence.
type StoreConfig struct {
	Backend    string `toml:"backend"`
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig parameterizes the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Config is the full application configuration.
type Config struct {
	Cache   CacheConfig    `toml:"cache"`
	Store   StoreConfig    `toml:"store"`
	Server  ServerConfig   `toml:"server"`
	Arrange arrange.Config `toml:"arrange"`
	Stitch  stitch.Config  `toml:"stitch"`
	Rooms   rooms.Config   `toml:"rooms"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend: CacheBackendFile,
			TTL:     Duration(24 * time.Hour),
		},
		Store: StoreConfig{
			Backend:    StoreBackendMemory,
			Database:   "sldkit",
			Collection: "designs",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Arrange: arrange.DefaultConfig(),
		Stitch:  stitch.DefaultConfig(),
		Rooms:   rooms.DefaultConfig(),
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults unchanged; a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Cache.Backend {
	case CacheBackendNone, CacheBackendFile, CacheBackendRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", cfg.Cache.Backend)
	}
	switch cfg.Store.Backend {
	case StoreBackendMemory, StoreBackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", cfg.Store.Backend)
	}
	if cfg.Store.Backend == StoreBackendMongo && cfg.Store.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "store backend %q requires mongo_uri", cfg.Store.Backend)
	}
	if cfg.Cache.Backend == CacheBackendRedis && cfg.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend %q requires redis_addr", cfg.Cache.Backend)
	}
	return nil
}
