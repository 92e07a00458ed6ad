// Package cli implements the sldkit command-line interface.
//
// This package provides commands for running the geometry pipeline over
// design files (arrange, stitch, rooms), rendering designs to images, and
// serving the HTTP API. The CLI is built using cobra with structured
// logging via charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - arrange: Lay out a schematic snapshot from its connectivity
//   - stitch: Merge fragmented floor-plan walls
//   - rooms: Detect rooms from a floor plan
//   - render: Draw a plan or schematic to PNG, SVG, or DOT
//   - serve: Run the HTTP API
//   - cache: Manage the geometry result cache
//
// All commands support --verbose (-v) for debug-level logging and --config
// for a TOML configuration file.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rickerduniya/Sayanho-sub002/pkg/buildinfo"
	"github.com/rickerduniya/Sayanho-sub002/pkg/cache"
	"github.com/rickerduniya/Sayanho-sub002/pkg/config"
	"github.com/rickerduniya/Sayanho-sub002/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "sldkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag value; empty means built-in defaults.
	configPath string

	// cfg is loaded in PersistentPreRunE before any command runs.
	cfg config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		cfg: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "sldkit",
		Short:        "sldkit computes layout geometry for electrical designs",
		Long:         `sldkit is the geometry toolchain for single-line diagrams and floor plans: it auto-arranges schematics from their connectivity, stitches fragmented walls into sealed skeletons, and detects rooms from wall geometry.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")

	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.stitchCommand())
	root.AddCommand(c.roomsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// pipelineOptions builds pipeline options from the loaded config.
func (c *CLI) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Arrange: c.cfg.Arrange,
		Stitch:  c.cfg.Stitch,
		Rooms:   c.cfg.Rooms,
		Logger:  c.Logger,
	}
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	backend, err := c.newCacheBackend(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(backend, nil, c.Logger), nil
}

// newCacheBackend picks the cache from config, with --no-cache overriding.
func (c *CLI) newCacheBackend(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.cfg.Cache.Backend {
	case config.CacheBackendNone:
		return cache.NewNullCache(), nil
	case config.CacheBackendRedis:
		return cache.NewRedisCache(ctx, c.cfg.Cache.RedisAddr, c.cfg.Cache.RedisPassword, c.cfg.Cache.RedisDB)
	default:
		dir := c.cfg.Cache.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/sldkit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
