package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/synckeeper/internal/flagx"
	"github.com/dmitrijs2005/synckeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Intervals use timex.Duration, so they can be strings like "300ms" or
// integer nanoseconds.
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	DebounceInterval timex.Duration `json:"debounce_interval"`
	PageSize         int            `json:"page_size"`
	TokenLifetime    timex.Duration `json:"token_lifetime"`
	DBPath           string         `json:"db_path"`
	SessionStore     string         `json:"session_store"`
	LogFile          string         `json:"log_file"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from -c/-config (or $SYNCKEEPER_CONFIG); without one
// nothing is loaded. Keys that are absent or zero keep their current value.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DebounceInterval.Duration > 0 {
		cfg.DebounceInterval = jc.DebounceInterval.Duration
	}
	if jc.PageSize > 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.TokenLifetime.Duration > 0 {
		cfg.TokenLifetime = jc.TokenLifetime.Duration
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.SessionStore != "" {
		cfg.SessionStore = jc.SessionStore
	}
	if jc.LogFile != "" {
		cfg.LogFile = jc.LogFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
