// Package runtime wires the per-invocation application context for FastPilot.
package runtime

import (
	"os"
	"time"

	"github.com/manav03panchal/fastpilot/internal/catalog"
	"github.com/manav03panchal/fastpilot/internal/config"
	"github.com/manav03panchal/fastpilot/internal/logging"
	"github.com/manav03panchal/fastpilot/internal/output"
	"github.com/manav03panchal/fastpilot/internal/storage"
	"github.com/manav03panchal/fastpilot/internal/timer"
	"github.com/manav03panchal/fastpilot/internal/tracker"
)

// EnvDatabase overrides the database directory; ":memory:" selects an in-memory store.
const EnvDatabase = "FASTPILOT_DATABASE"

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Gateway   *storage.Gateway
	Catalog   *catalog.Catalog
	Tracker   *tracker.Tracker
	Ticker    *timer.Ticker
	Formatter *output.Formatter
	Config    *config.RuntimeConfig
	Prefs     config.Prefs

	// Now returns the current time. Tests replace it.
	Now func() time.Time

	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
	Prefs     *config.Prefs
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
		Debug:     false,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	if envPath := os.Getenv(EnvDatabase); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}
	if opts.DBPath == "" && !opts.InMemory {
		opts.DBPath = storage.DefaultPath()
	}

	cfg := config.Global

	db, err := storage.Open(storage.Options{
		Path:      opts.DBPath,
		InMemory:  opts.InMemory,
		KeyPrefix: cfg.Storage.KeyPrefix,
	})
	if err != nil {
		return nil, WrapDiskFullError(err, "open", opts.DBPath)
	}

	cat := catalog.New()
	gw := storage.NewGateway(db, cat)

	formatter := output.NewFormatter()
	if opts.Format != "" {
		formatter.Format = opts.Format
	}
	if opts.ColorMode != "" {
		formatter.ColorMode = opts.ColorMode
	}

	prefs := config.DefaultPrefs()
	if opts.Prefs != nil {
		prefs = *opts.Prefs
	}

	logging.DebugLog("runtime opened",
		logging.KeyOperation, "open",
		"path", db.Path(),
		"in_memory", opts.InMemory)

	return &Context{
		DB:        db,
		Gateway:   gw,
		Catalog:   cat,
		Tracker:   tracker.New(gw, cat),
		Ticker:    timer.NewTicker(cfg.Timer.RefreshInterval),
		Formatter: formatter,
		Config:    cfg,
		Prefs:     prefs,
		Now:       time.Now,
		Debug:     opts.Debug,
	}, nil
}

// Close stops the refresh ticker and closes the database.
func (c *Context) Close() error {
	if c.Ticker != nil {
		c.Ticker.Stop()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Clock returns the current time from the context clock.
func (c *Context) Clock() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI or plain text.
func (c *Context) IsCLI() bool {
	return !c.IsJSON()
}
