package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"duit/internal/core"
)

// Store owns the in-memory ledger and keeps the blob slot in sync: every
// mutation rewrites the whole persisted blob before returning, so storage
// and memory never diverge for longer than one operation.
//
// The mutex exists only because the HTTP adapter serves concurrent requests;
// the ledger model itself is single-session, single-writer.
type Store struct {
	mu     sync.Mutex
	blob   BlobStore
	txs    []core.Transaction
	lastID int64

	now func() time.Time
}

// NewStore loads the persisted ledger from the blob slot. An absent slot
// yields an empty ledger; a corrupt one is logged and treated as empty. Only
// an unavailable backend is an error.
func NewStore(ctx context.Context, blob BlobStore) (*Store, error) {
	s := &Store{blob: blob, now: time.Now}

	payload, ok, err := blob.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	if !ok {
		slog.InfoContext(ctx, "No persisted ledger found, starting empty")
		return s, nil
	}

	s.txs = DecodeLedger(payload)
	if len(s.txs) == 0 && payload != "" && payload != "[]" {
		slog.WarnContext(ctx, "Persisted ledger is malformed, starting empty",
			"payload_bytes", len(payload))
	}
	for _, t := range s.txs {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	slog.InfoContext(ctx, "Ledger loaded", "transactions", len(s.txs))
	return s, nil
}

// All returns a copy of the ledger in storage order.
func (s *Store) All() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Find returns the transaction with the given id.
func (s *Store) Find(id int64) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.txs {
		if t.ID == id {
			return t, true
		}
	}
	return core.Transaction{}, false
}

// Add assigns a fresh id, appends the transaction and persists. Ids are
// UnixMilli-derived but strictly monotonic, so rapid successive adds within
// one clock tick can never collide.
func (s *Store) Add(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextIDLocked()
	s.txs = append(s.txs, t)
	if err := s.persistLocked(ctx); err != nil {
		s.txs = s.txs[:len(s.txs)-1]
		return core.Transaction{}, err
	}

	slog.InfoContext(ctx, "Transaction added",
		"id", t.ID,
		"type", string(t.Type),
		"amount", int64(t.Amount),
		"category", t.Category)
	return t, nil
}

// Update replaces type/amount/category/description/date of the transaction
// with the given id. Returns core.ErrNotFound, without touching storage,
// when no transaction has that id.
func (s *Store) Update(ctx context.Context, id int64, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.txs {
		if s.txs[i].ID != id {
			continue
		}
		prev := s.txs[i]
		t.ID = id
		s.txs[i] = t
		if err := s.persistLocked(ctx); err != nil {
			s.txs[i] = prev
			return err
		}
		slog.InfoContext(ctx, "Transaction updated", "id", id)
		return nil
	}
	return core.ErrNotFound
}

// Remove deletes the transaction with the given id and persists. Removing
// an unknown id is a no-op, not an error.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.txs {
		if s.txs[i].ID != id {
			continue
		}
		prev := s.txs
		s.txs = append(append([]core.Transaction{}, s.txs[:i]...), s.txs[i+1:]...)
		if err := s.persistLocked(ctx); err != nil {
			s.txs = prev
			return err
		}
		slog.InfoContext(ctx, "Transaction removed", "id", id)
		return nil
	}
	return nil
}

// Clear empties the ledger and persists.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.txs
	s.txs = nil
	if err := s.persistLocked(ctx); err != nil {
		s.txs = prev
		return err
	}
	slog.InfoContext(ctx, "Ledger cleared", "removed", len(prev))
	return nil
}

// ReplaceAll swaps in a whole new ledger and persists. Existing ids are
// kept; the id generator continues past the highest one present.
func (s *Store) ReplaceAll(ctx context.Context, txs []core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, prevLast := s.txs, s.lastID
	s.txs = make([]core.Transaction, len(txs))
	copy(s.txs, txs)
	for _, t := range s.txs {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	if err := s.persistLocked(ctx); err != nil {
		s.txs, s.lastID = prev, prevLast
		return err
	}
	return nil
}

func (s *Store) Close() error {
	return s.blob.Close()
}

func (s *Store) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) persistLocked(ctx context.Context) error {
	payload, err := EncodeLedger(s.txs)
	if err != nil {
		return err
	}
	if err := s.blob.Write(ctx, payload); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}
