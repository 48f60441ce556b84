package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/synckeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   REST API base URL
//	-d int      search debounce interval (milliseconds)
//	-p int      page size
//	-t int      requested session lifetime (minutes)
//	-db string  session database file
//	-s string   session store: sqlite or memory
//	-l string   log file (rotated); empty logs to stderr
//	-v string   log level
//
// os.Args is filtered with flagx.FilterArgs so flags owned by other
// components do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-p", "-t", "-db", "-s", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "REST API base URL")
	debounce := fs.Int("d", int(cfg.DebounceInterval.Milliseconds()), "search debounce interval (in milliseconds)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "page size")
	lifetime := fs.Int("t", int(cfg.TokenLifetime.Minutes()), "session lifetime (in minutes)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "session database file")
	fs.StringVar(&cfg.SessionStore, "s", cfg.SessionStore, "session store (sqlite|memory)")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.DebounceInterval = time.Duration(*debounce) * time.Millisecond
	cfg.TokenLifetime = time.Duration(*lifetime) * time.Minute
}
