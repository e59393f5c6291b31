package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

const MaxLimit = 100

type rawCfg struct {
	// Pipeline configuration
	Limit       int    `short:"l" long:"limit" env:"LIMIT" default:"25" description:"Number of posts to fetch per source (max 100)"`
	DBPath      string `long:"db" env:"DB_PATH" default:"reddit_pulse.db" description:"SQLite database path"`
	Output      string `short:"o" long:"output" env:"REPORT_OUTPUT" default:"report.html" description:"Output path for the HTML report"`
	SourcesFile string `long:"sources-file" env:"SOURCES_FILE" description:"YAML file with additional source definitions"`

	// HTTP client configuration
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"reddit-pulse/1.0" description:"User agent string for HTTP requests"`
	Timeout   int    `long:"timeout" env:"TIMEOUT" default:"30" description:"Source fetch timeout in seconds"`

	// Server configuration
	Serve           bool   `long:"serve" env:"SERVE" description:"Run as a server with periodic source refresh instead of a one-shot pipeline"`
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (serve mode)"`
	WorkerCount     int    `long:"worker-count" env:"WORKER_COUNT" default:"3" description:"Number of background workers (serve mode)"`
	RefreshInterval int    `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"900" description:"Source refresh interval in seconds (serve mode)"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		Sources []string `positional-arg-name:"source" description:"Subreddit names to fetch"`
	} `positional-args:"yes"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Sources:         raw.Args.Sources,
		Limit:           raw.Limit,
		DBPath:          raw.DBPath,
		Output:          raw.Output,
		SourcesFile:     raw.SourcesFile,
		UserAgent:       raw.UserAgent,
		Timeout:         raw.Timeout,
		Serve:           raw.Serve,
		Port:            raw.Port,
		WorkerCount:     raw.WorkerCount,
		RefreshInterval: raw.RefreshInterval,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func validate(cfg *Cfg) error {
	if cfg.Limit < 1 || cfg.Limit > MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxLimit, cfg.Limit)
	}
	if cfg.Timeout < 1 {
		return fmt.Errorf("timeout must be positive, got %d", cfg.Timeout)
	}
	if cfg.WorkerCount < 1 {
		return fmt.Errorf("worker count must be positive, got %d", cfg.WorkerCount)
	}
	if cfg.RefreshInterval < 1 {
		return fmt.Errorf("refresh interval must be positive, got %d", cfg.RefreshInterval)
	}
	return nil
}

// SetForTesting installs a configuration without going through flag
// parsing. Test helper only.
func SetForTesting(cfg *Cfg) {
	globalCfg = cfg
}
