package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"duit/internal/core"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.json")
	blob, err := NewFileBlob(path)
	if err != nil {
		t.Fatalf("NewFileBlob: %v", err)
	}
	s, err := NewStore(context.Background(), blob)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s, path
}

func TestStoreStartsEmptyWithoutFile(t *testing.T) {
	s, _ := newTestStore(t)
	if got := s.All(); len(got) != 0 {
		t.Fatalf("All() = %d transactions, want 0", len(got))
	}
}

func TestStoreAddPersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	added, err := s.Add(ctx, core.Transaction{
		Type: core.Income, Amount: 5000000, Category: "Gaji",
		Description: "Gaji bulanan", Date: core.NewDate(2024, 1, 5),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == 0 {
		t.Fatal("Add did not assign an id")
	}

	blob, err := NewFileBlob(path)
	if err != nil {
		t.Fatalf("NewFileBlob: %v", err)
	}
	reloaded, err := NewStore(ctx, blob)
	if err != nil {
		t.Fatalf("NewStore reload: %v", err)
	}
	got := reloaded.All()
	if len(got) != 1 || got[0] != added {
		t.Fatalf("reloaded = %+v, want [%+v]", got, added)
	}
}

func TestStoreIDsAreStrictlyMonotonic(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// Frozen clock: every add sees the same millisecond.
	frozen := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return frozen }

	var prev int64
	for i := 0; i < 5; i++ {
		tx, err := s.Add(ctx, core.Transaction{
			Type: core.Expense, Amount: 100, Category: "Makanan",
			Date: core.NewDate(2024, 6, 15),
		})
		if err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
		if tx.ID <= prev {
			t.Fatalf("id %d not greater than previous %d", tx.ID, prev)
		}
		prev = tx.ID
	}
	if prev != frozen.UnixMilli()+4 {
		t.Fatalf("last id = %d, want %d", prev, frozen.UnixMilli()+4)
	}
}

func TestStoreIDGeneratorContinuesPastLoadedIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	high := time.Now().Add(24 * time.Hour).UnixMilli()
	if err := s.ReplaceAll(ctx, []core.Transaction{
		{ID: high, Type: core.Expense, Amount: 100, Category: "Makanan", Date: core.NewDate(2024, 6, 15)},
	}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	tx, err := s.Add(ctx, core.Transaction{
		Type: core.Expense, Amount: 200, Category: "Makanan", Date: core.NewDate(2024, 6, 16),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if tx.ID != high+1 {
		t.Fatalf("id = %d, want %d", tx.ID, high+1)
	}
}

func TestStoreRemoveIsInverseOfAdd(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	keep, err := s.Add(ctx, core.Transaction{
		Type: core.Income, Amount: 5000000, Category: "Gaji", Date: core.NewDate(2024, 1, 5),
	})
	if err != nil {
		t.Fatalf("Add keep: %v", err)
	}
	extra, err := s.Add(ctx, core.Transaction{
		Type: core.Expense, Amount: 100, Category: "Makanan", Date: core.NewDate(2024, 1, 6),
	})
	if err != nil {
		t.Fatalf("Add extra: %v", err)
	}

	if err := s.Remove(ctx, extra.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	got := s.All()
	if len(got) != 1 || got[0] != keep {
		t.Fatalf("All() = %+v, want [%+v]", got, keep)
	}
}

func TestStoreRemoveUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	tx, err := s.Add(ctx, core.Transaction{
		Type: core.Expense, Amount: 100, Category: "Makanan", Date: core.NewDate(2024, 1, 6),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Remove(ctx, tx.ID+999); err != nil {
		t.Fatalf("Remove unknown id: %v", err)
	}
	if got := s.All(); len(got) != 1 {
		t.Fatalf("All() = %d transactions, want 1", len(got))
	}
}

func TestStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	tx, err := s.Add(ctx, core.Transaction{
		Type: core.Expense, Amount: 100, Category: "Makanan", Date: core.NewDate(2024, 1, 6),
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	updated := core.Transaction{
		Type: core.Expense, Amount: 250, Category: "Transportasi",
		Description: "Bensin", Date: core.NewDate(2024, 1, 7),
	}
	if err := s.Update(ctx, tx.ID, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, ok := s.Find(tx.ID)
	if !ok {
		t.Fatal("updated transaction not found")
	}
	if got.ID != tx.ID || got.Amount != 250 || got.Category != "Transportasi" {
		t.Fatalf("got %+v", got)
	}
}

func TestStoreUpdateUnknownIDDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	if _, err := s.Add(ctx, core.Transaction{
		Type: core.Expense, Amount: 100, Category: "Makanan", Date: core.NewDate(2024, 1, 6),
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ledger file: %v", err)
	}

	err = s.Update(ctx, 424242, core.Transaction{
		Type: core.Expense, Amount: 1, Category: "Makanan", Date: core.NewDate(2024, 1, 6),
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Update unknown id err = %v, want core.ErrNotFound", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ledger file: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("blob changed after failed update")
	}
}

func TestStoreClear(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := s.Add(ctx, core.Transaction{
			Type: core.Expense, Amount: 100, Category: "Makanan", Date: core.NewDate(2024, 1, 6),
		}); err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := s.All(); len(got) != 0 {
		t.Fatalf("All() = %d transactions, want 0", len(got))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ledger file: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("persisted payload = %q, want []", data)
	}
}

func TestStoreSurvivesCorruptBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	if err := os.WriteFile(path, []byte("definitely not json"), 0644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	blob, err := NewFileBlob(path)
	if err != nil {
		t.Fatalf("NewFileBlob: %v", err)
	}
	s, err := NewStore(context.Background(), blob)
	if err != nil {
		t.Fatalf("NewStore on corrupt blob: %v", err)
	}
	if got := s.All(); len(got) != 0 {
		t.Fatalf("All() = %d transactions, want 0", len(got))
	}
}

func TestStoreAddRollsBackOnPersistFailure(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.blob = failingBlob{}
	_, err := s.Add(ctx, core.Transaction{
		Type: core.Expense, Amount: 100, Category: "Makanan", Date: core.NewDate(2024, 1, 6),
	})
	if err == nil {
		t.Fatal("Add succeeded with failing backend")
	}
	if got := s.All(); len(got) != 0 {
		t.Fatalf("All() = %d transactions after rollback, want 0", len(got))
	}
}

type failingBlob struct{}

func (failingBlob) Read(context.Context) (string, bool, error) { return "", false, nil }
func (failingBlob) Write(context.Context, string) error        { return errors.New("backend down") }
func (failingBlob) Close() error                               { return nil }
