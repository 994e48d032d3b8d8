package kv

import (
	"fmt"
	"os"
	"path/filepath"
)

// SQLiteFileName is the database file a sqlite-backed data dir carries.
const SQLiteFileName = "listo.sqlite"

// Open picks a backend for the data dir. backend is "file", "sqlite",
// or "" to autodetect: dirs that already carry a listo.sqlite keep
// using it, everything else gets the file backend.
func Open(dir, backend string) (KV, error) {
	sqlitePath := filepath.Join(dir, SQLiteFileName)

	switch backend {
	case "file":
		return OpenFile(dir)
	case "sqlite":
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return OpenSQLite(sqlitePath)
	case "":
		if _, err := os.Stat(sqlitePath); err == nil {
			return OpenSQLite(sqlitePath)
		}
		return OpenFile(dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
