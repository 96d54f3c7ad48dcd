package backend

import (
	"context"
	"fmt"
	"log/slog"

	"duit/internal/storage"
)

// Open builds the configured blob slot and loads the ledger store from it.
// The returned store owns the slot; Close releases it.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*storage.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	var (
		blob storage.BlobStore
		err  error
	)
	switch cfg.Type {
	case FileBackend:
		blob, err = storage.NewFileBlob(cfg.LedgerFilePath)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file backend", "path", cfg.LedgerFilePath)
	case SQLiteBackend:
		blob, err = storage.NewSQLiteBlob(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
	}

	store, err := storage.NewStore(ctx, blob)
	if err != nil {
		blob.Close()
		return nil, err
	}
	return store, nil
}
