// Package cli provides the interactive synckeeper command-line client.
//
// App reads commands in a REPL (see runREPL) and drives the core services:
// posts are listed with a local title filter and a page-by-page window,
// products through a debounced remote search, and posts can be created,
// edited and deleted once logged in. Every list is rendered from the
// store's current snapshot after the command completes.
package cli
