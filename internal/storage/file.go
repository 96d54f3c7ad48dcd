package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBlob keeps the ledger slot in a plain file on disk.
type FileBlob struct {
	path string
}

func NewFileBlob(path string) (*FileBlob, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
	}
	return &FileBlob{path: path}, nil
}

func (f *FileBlob) Read(ctx context.Context) (string, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read ledger file: %w", err)
	}
	return string(data), true, nil
}

func (f *FileBlob) Write(ctx context.Context, payload string) error {
	// Write to a sibling temp file and rename so a crash mid-write cannot
	// leave a truncated blob behind.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(payload), 0644); err != nil {
		return fmt.Errorf("write ledger file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}

func (f *FileBlob) Close() error { return nil }
