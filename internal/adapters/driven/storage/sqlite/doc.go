// Package sqlite implements the driven storage ports on SQLite using
// the pure-Go modernc.org/sqlite driver. Schema changes are applied
// through embedded, versioned SQL migrations at startup.
package sqlite
