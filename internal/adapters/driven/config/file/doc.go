// Package file implements the ConfigStore port on a TOML file.
// Nested TOML tables are flattened into dot-notation keys
// ("server.addr"), and a fsnotify watcher can reload the store when
// the file changes on disk.
package file
