package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MaxParkR/StepMoney/internal/core"
	"github.com/MaxParkR/StepMoney/internal/storage"
)

// TransactionService owns the transaction lifecycle. Each write stamps
// the transaction with a snapshot of its category so the history keeps
// rendering correctly after category edits or deletions.
type TransactionService struct {
	storage *storage.SQLiteRepository
}

func NewTransactionService(storage *storage.SQLiteRepository) *TransactionService {
	return &TransactionService{storage: storage}
}

// Create validates t, snapshots its category and persists it. The ID,
// snapshot fields and creation time are assigned here; values supplied
// by the caller for those fields are ignored.
func (s *TransactionService) Create(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	if err := s.snapshotCategory(ctx, &t); err != nil {
		return core.Transaction{}, err
	}

	t.ID = core.NewID("txn")
	t.CreatedAt = time.Now().UTC()

	if err := s.storage.CreateTransaction(ctx, t); err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

func (s *TransactionService) Get(ctx context.Context, id string) (core.Transaction, error) {
	return s.storage.GetTransaction(ctx, id)
}

func (s *TransactionService) List(ctx context.Context) ([]core.Transaction, error) {
	return s.storage.ListTransactions(ctx)
}

// Update replaces the mutable fields of an existing transaction. The
// category snapshot is refreshed from the current category record.
func (s *TransactionService) Update(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	existing, err := s.storage.GetTransaction(ctx, t.ID)
	if err != nil {
		return core.Transaction{}, err
	}
	t.CreatedAt = existing.CreatedAt

	if err := s.snapshotCategory(ctx, &t); err != nil {
		return core.Transaction{}, err
	}

	if err := s.storage.UpdateTransaction(ctx, t); err != nil {
		return core.Transaction{}, err
	}

	slog.InfoContext(ctx, "Transaction updated", "id", t.ID)
	return t, nil
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	return s.storage.DeleteTransaction(ctx, id)
}

// DeleteAll clears the whole ledger.
func (s *TransactionService) DeleteAll(ctx context.Context) error {
	return s.storage.DeleteAllTransactions(ctx)
}

// Summarize aggregates all stored transactions through the optional
// filter.
func (s *TransactionService) Summarize(ctx context.Context, filter *core.Filter) (core.Summary, error) {
	transactions, err := s.storage.ListTransactions(ctx)
	if err != nil {
		return core.Summary{}, err
	}
	return core.Summarize(transactions, filter), nil
}

func (s *TransactionService) snapshotCategory(ctx context.Context, t *core.Transaction) error {
	cat, err := s.storage.GetCategory(ctx, t.CategoryID)
	if err != nil {
		return fmt.Errorf("resolve category %s: %w", t.CategoryID, err)
	}
	if cat.Kind != t.Kind {
		return fmt.Errorf("category %s is a %s category: %w", cat.ID, cat.Kind, core.ErrInvalidKind)
	}
	t.CategoryName = cat.Name
	t.CategoryIcon = cat.Icon
	t.CategoryColor = cat.Color
	return nil
}
