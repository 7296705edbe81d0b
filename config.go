package aliscout

import "time"

// DefaultSearchURL is the wholesale search endpoint the collector pages
// through. %s is the URL-form keyword, %d the page number.
const DefaultSearchURL = "https://www.aliexpress.com/wholesale?SearchText=%s&page=%d"

// Config is the root configuration loaded once at process start.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Fetcher   FetcherConfig   `mapstructure:"fetcher"`
	Collector CollectorConfig `mapstructure:"collector"`
}

// DatabaseConfig locates the relational store.
type DatabaseConfig struct {
	// Path is the SQLite database file. ":memory:" is accepted for an
	// in-memory database.
	Path string `mapstructure:"path"`
}

// FetcherConfig holds the render tuning knobs for page fetches.
type FetcherConfig struct {
	RenderWait       time.Duration `mapstructure:"render_wait"`
	ScrollIterations int           `mapstructure:"scroll_iterations"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

// CollectorConfig controls the pagination loop.
type CollectorConfig struct {
	SearchURL string `mapstructure:"search_url"`
	MaxPages  int    `mapstructure:"max_pages"`
	// OutputDir is where CSV snapshots are written.
	OutputDir string `mapstructure:"output_dir"`
}

// DefaultConfig returns a Config with working defaults for everything
// except the database section, which has no sensible default and must be
// provided.
func DefaultConfig() Config {
	return Config{
		Fetcher: FetcherConfig{
			RenderWait:       time.Second,
			ScrollIterations: 10,
			Timeout:          20 * time.Second,
		},
		Collector: CollectorConfig{
			SearchURL: DefaultSearchURL,
			MaxPages:  60,
			OutputDir: ".",
		},
	}
}

// Validate returns an error if the configuration is incomplete. A missing
// database section is fatal at startup; no partial operation is attempted.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return Errorf(EINVALID, "database section required in configuration")
	}
	if c.Collector.MaxPages <= 0 {
		return Errorf(EINVALID, "collector max_pages must be positive")
	}
	if c.Collector.SearchURL == "" {
		return Errorf(EINVALID, "collector search_url required")
	}
	return nil
}

// FetchOptions converts the fetcher section to fetch options.
func (c *FetcherConfig) FetchOptions() FetchOptions {
	return FetchOptions{
		RenderWait:       c.RenderWait,
		ScrollIterations: c.ScrollIterations,
		Timeout:          c.Timeout,
	}
}
