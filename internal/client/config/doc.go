// Package config loads runtime configuration for the synckeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c/-config or $SYNCKEEPER_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://dummyjson.com",
//	  "debounce_interval": "300ms",
//	  "page_size": 6,
//	  "token_lifetime": "1h",
//	  "db_path": "session.db",
//	  "session_store": "sqlite",
//	  "log_file": "",
//	  "log_level": "info"
//	}
package config
