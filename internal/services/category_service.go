package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/MaxParkR/StepMoney/internal/core"
	"github.com/MaxParkR/StepMoney/internal/storage"
)

// CategoryService manages the category catalog. The seed set is
// installed by migration; this service only adds, removes and restores.
type CategoryService struct {
	storage *storage.SQLiteRepository
}

func NewCategoryService(storage *storage.SQLiteRepository) *CategoryService {
	return &CategoryService{storage: storage}
}

// Create adds a custom category.
func (s *CategoryService) Create(ctx context.Context, c core.Category) (core.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return core.Category{}, fmt.Errorf("validate category: %w", err)
	}

	c.ID = core.NewID("cat")
	if err := s.storage.CreateCategory(ctx, c); err != nil {
		return core.Category{}, err
	}
	return c, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (core.Category, error) {
	return s.storage.GetCategory(ctx, id)
}

// List returns all categories, or only those of kind when it is set.
func (s *CategoryService) List(ctx context.Context, kind core.Kind) ([]core.Category, error) {
	if kind != "" {
		if err := kind.Validate(); err != nil {
			return nil, err
		}
	}
	return s.storage.ListCategories(ctx, kind)
}

// Search matches category names case-insensitively. An empty term
// returns everything.
func (s *CategoryService) Search(ctx context.Context, term string) ([]core.Category, error) {
	return s.storage.SearchCategories(ctx, term)
}

// Delete removes a category unless transactions still reference it.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.storage.DeleteCategory(ctx, id)
}

// Reset restores the seed catalog, discarding custom categories.
func (s *CategoryService) Reset(ctx context.Context) error {
	return s.storage.ResetCategories(ctx)
}
