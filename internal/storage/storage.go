// Package storage prepares the sqlite metrics database the Sentra
// server writes its samples to.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// pragmas match what the server applies on startup, so the file is
// usable as-is the first time the monitor opens it.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

var tables = []string{
	`CREATE TABLE IF NOT EXISTS sysinfo (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		cpu_usage REAL NOT NULL,
		ram_usage REAL NOT NULL,
		total_ram REAL NOT NULL,
		free_ram REAL NOT NULL,
		used_swap REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS diskinfo (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sysinfo_id INTEGER NOT NULL REFERENCES sysinfo(id),
		filesystem TEXT NOT NULL,
		size INTEGER NOT NULL,
		used INTEGER NOT NULL,
		available INTEGER NOT NULL,
		used_percentage INTEGER NOT NULL,
		mounted_path TEXT NOT NULL
	)`,
}

// Init creates the database file at dbPath together with any missing
// parent directories, applies the server's pragmas and creates the
// metrics tables. It is idempotent.
func Init(dbPath string) error {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", dbPath, err)
	}
	defer db.Close()

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("apply %q: %w", pragma, err)
		}
	}
	for _, ddl := range tables {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("create metrics table: %w", err)
		}
	}
	return nil
}
