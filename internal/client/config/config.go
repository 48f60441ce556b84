package config

import (
	"fmt"
	"time"
)

// Session store kinds.
const (
	SessionStoreSQLite = "sqlite"
	SessionStoreMemory = "memory"
)

// Config holds runtime settings for the synckeeper CLI.
//
// Fields:
//   - APIBaseURL: root of the REST API (posts, products, auth).
//   - DebounceInterval: quiet period before a search query is sent.
//   - PageSize: how many rows one "more" reveals.
//   - TokenLifetime: session lifetime requested at login.
//   - DBPath: SQLite file that keeps the session between runs.
//   - SessionStore: "sqlite" or "memory".
//   - LogFile: when set, logs go to this rotated file (zap) instead of stderr.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL       string
	DebounceInterval time.Duration
	PageSize         int
	TokenLifetime    time.Duration
	DBPath           string
	SessionStore     string
	LogFile          string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://dummyjson.com"
	c.DebounceInterval = 300 * time.Millisecond
	c.PageSize = 6
	c.TokenLifetime = 60 * time.Minute
	c.DBPath = "session.db"
	c.SessionStore = SessionStoreSQLite
	c.LogFile = ""
	c.LogLevel = "info"
}

// Validate rejects settings the CLI cannot start with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is empty")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.DebounceInterval < 0 {
		return fmt.Errorf("debounce interval must not be negative, got %s", c.DebounceInterval)
	}
	switch c.SessionStore {
	case SessionStoreSQLite, SessionStoreMemory:
	default:
		return fmt.Errorf("unknown session store %q", c.SessionStore)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
