package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MaxParkR/StepMoney/internal/core"
	"github.com/MaxParkR/StepMoney/internal/storage"
)

func newTestStorage(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestTransactionCreateSnapshotsCategory(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Transaction{
		Kind:       core.Expense,
		Amount:     core.Money{Units: 2500},
		CategoryID: "cat-1",
		Date:       core.NewDate(2025, 3, 15),
		Note:       "mercado",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == "" {
		t.Error("ID should be assigned")
	}
	if created.CategoryName != "Alimentación" || created.CategoryIcon != "fast-food-outline" || created.CategoryColor != "#FF6B6B" {
		t.Errorf("snapshot = %q/%q/%q", created.CategoryName, created.CategoryIcon, created.CategoryColor)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt should be stamped")
	}
}

func TestTransactionCreateUnknownCategory(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))

	_, err := svc.Create(context.Background(), core.Transaction{
		Kind:       core.Expense,
		Amount:     core.Money{Units: 100},
		CategoryID: "cat-nope",
		Date:       core.NewDate(2025, 1, 1),
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTransactionCreateKindMismatch(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))

	// cat-9 (Salario) is an income category.
	_, err := svc.Create(context.Background(), core.Transaction{
		Kind:       core.Expense,
		Amount:     core.Money{Units: 100},
		CategoryID: "cat-9",
		Date:       core.NewDate(2025, 1, 1),
	})
	if !errors.Is(err, core.ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}

func TestTransactionCreateInvalid(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))
	ctx := context.Background()

	cases := []core.Transaction{
		{Kind: "other", Amount: core.Money{Units: 1}, CategoryID: "cat-1", Date: core.NewDate(2025, 1, 1)},
		{Kind: core.Expense, Amount: core.Money{Units: 0}, CategoryID: "cat-1", Date: core.NewDate(2025, 1, 1)},
		{Kind: core.Expense, Amount: core.Money{Units: -5}, CategoryID: "cat-1", Date: core.NewDate(2025, 1, 1)},
		{Kind: core.Expense, Amount: core.Money{Units: 1}, CategoryID: "cat-1"},
	}
	for i, tx := range cases {
		if _, err := svc.Create(ctx, tx); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestTransactionUpdateRefreshesSnapshot(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Transaction{
		Kind:       core.Expense,
		Amount:     core.Money{Units: 2500},
		CategoryID: "cat-1",
		Date:       core.NewDate(2025, 3, 15),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.CategoryID = "cat-2"
	created.Amount = core.Money{Units: 1200}
	updated, err := svc.Update(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CategoryName != "Transporte" || updated.CategoryIcon != "car-outline" {
		t.Errorf("snapshot not refreshed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt changed on update")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Amount.Units != 1200 {
		t.Errorf("amount = %d, want 1200", got.Amount.Units)
	}
}

func TestTransactionSnapshotSurvivesCategoryEdits(t *testing.T) {
	repo := newTestStorage(t)
	svc := NewTransactionService(repo)
	cats := NewCategoryService(repo)
	ctx := context.Background()

	custom, err := cats.Create(ctx, core.Category{Name: "Mascotas", Icon: "paw-outline", Color: "#ABCDEF", Kind: core.Expense})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	created, err := svc.Create(ctx, core.Transaction{
		Kind:       core.Expense,
		Amount:     core.Money{Units: 900},
		CategoryID: custom.ID,
		Date:       core.NewDate(2025, 4, 1),
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	// Rebuild the catalog from scratch; the stored transaction keeps
	// its snapshot even though the category is gone.
	if err := cats.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := cats.Get(ctx, custom.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("custom category should be gone, got %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CategoryName != "Mascotas" || got.CategoryIcon != "paw-outline" {
		t.Errorf("snapshot = %q/%q, want Mascotas/paw-outline", got.CategoryName, got.CategoryIcon)
	}
}

func TestTransactionSummarize(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))
	ctx := context.Background()

	seed := []core.Transaction{
		{Kind: core.Income, Amount: core.Money{Units: 1000}, CategoryID: "cat-9", Date: core.NewDate(2025, 1, 5)},
		{Kind: core.Expense, Amount: core.Money{Units: 300}, CategoryID: "cat-1", Date: core.NewDate(2025, 1, 10)},
		{Kind: core.Expense, Amount: core.Money{Units: 200}, CategoryID: "cat-1", Date: core.NewDate(2025, 1, 20)},
	}
	for _, tx := range seed {
		if _, err := svc.Create(ctx, tx); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	s, err := svc.Summarize(ctx, nil)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if s.TotalIncome.Units != 1000 || s.TotalExpense.Units != 500 || s.Balance.Units != 500 {
		t.Errorf("summary = %+v", s)
	}
	if s.TransactionCount != 3 {
		t.Errorf("count = %d, want 3", s.TransactionCount)
	}

	filtered, err := svc.Summarize(ctx, &core.Filter{Kind: core.Expense})
	if err != nil {
		t.Fatalf("summarize filtered: %v", err)
	}
	if filtered.TransactionCount != 2 || filtered.TotalIncome.Units != 0 {
		t.Errorf("filtered = %+v", filtered)
	}
}

func TestTransactionDelete(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, core.Transaction{
		Kind:       core.Expense,
		Amount:     core.Money{Units: 100},
		CategoryID: "cat-1",
		Date:       core.NewDate(2025, 1, 1),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("double delete: expected ErrNotFound, got %v", err)
	}
}
