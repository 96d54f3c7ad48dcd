// Package backend selects and builds the persistence backend for the
// ledger slot.
package backend

import (
	"duit/internal/config"
)

// Type identifies a blob slot implementation.
type Type string

const (
	// FileBackend keeps the serialized ledger in a plain JSON file.
	FileBackend Type = "file"
	// SQLiteBackend keeps it in a one-row SQLite table.
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{FileBackend, SQLiteBackend}
}

// Config holds what the factory needs to build a blob slot.
type Config struct {
	Type Type

	// File backend
	LedgerFilePath string

	// SQLite backend
	SQLiteDBPath string
}

// FromAppConfig converts the application config to backend config.
func FromAppConfig(appConfig *config.Config) Config {
	return Config{
		Type:           Type(appConfig.DataBackend),
		LedgerFilePath: appConfig.LedgerFilePath,
		SQLiteDBPath:   appConfig.SQLiteDBPath,
	}
}
