package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rickerduniya/Sayanho-sub002/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sldkit.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, CacheBackendFile)
	}
	if cfg.Store.Backend != StoreBackendMemory {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, StoreBackendMemory)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Arrange.SiblingGapX != 100 {
		t.Errorf("Arrange.SiblingGapX = %v, want 100", cfg.Arrange.SiblingGapX)
	}
	if cfg.Stitch.AlignTolerance != 15 {
		t.Errorf("Stitch.AlignTolerance = %v, want 15", cfg.Stitch.AlignTolerance)
	}
	if cfg.Rooms.GridStep != 4 {
		t.Errorf("Rooms.GridStep = %v, want 4", cfg.Rooms.GridStep)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9090"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
ttl = "5m"

[stitch]
align_tolerance = 20.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
	if cfg.Cache.Backend != CacheBackendRedis {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, CacheBackendRedis)
	}
	if cfg.Cache.TTL.Std() != 5*time.Minute {
		t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL.Std())
	}
	if cfg.Stitch.AlignTolerance != 20 {
		t.Errorf("Stitch.AlignTolerance = %v, want 20", cfg.Stitch.AlignTolerance)
	}
	// Untouched sections keep their defaults.
	if cfg.Stitch.BridgeTolerance != 45 {
		t.Errorf("Stitch.BridgeTolerance = %v, want default 45", cfg.Stitch.BridgeTolerance)
	}
	if cfg.Arrange.ComponentGapX != 250 {
		t.Errorf("Arrange.ComponentGapX = %v, want default 250", cfg.Arrange.ComponentGapX)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[server]
adress = ":9090"
`)
	_, err := Load(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG for misspelled key", err)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown cache backend",
			content: "[cache]\nbackend = \"memcached\"\n",
		},
		{
			name:    "unknown store backend",
			content: "[store]\nbackend = \"postgres\"\n",
		},
		{
			name:    "mongo without uri",
			content: "[store]\nbackend = \"mongo\"\n",
		},
		{
			name:    "redis without addr",
			content: "[cache]\nbackend = \"redis\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}
