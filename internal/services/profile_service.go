package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MaxParkR/StepMoney/internal/core"
	"github.com/MaxParkR/StepMoney/internal/storage"
)

// ProfileService manages the single local user profile and the read-only
// financial tips catalog.
type ProfileService struct {
	storage *storage.SQLiteRepository
}

func NewProfileService(storage *storage.SQLiteRepository) *ProfileService {
	return &ProfileService{storage: storage}
}

func (s *ProfileService) Get(ctx context.Context) (core.UserProfile, error) {
	return s.storage.GetProfile(ctx)
}

// Save creates or updates the profile. The first save assigns the ID
// and creation time.
func (s *ProfileService) Save(ctx context.Context, p core.UserProfile) (core.UserProfile, error) {
	if err := p.Validate(); err != nil {
		return core.UserProfile{}, fmt.Errorf("validate profile: %w", err)
	}

	now := time.Now().UTC()
	existing, err := s.storage.GetProfile(ctx)
	switch {
	case err == nil:
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	case errors.Is(err, core.ErrNotFound):
		p.ID = core.NewID("user")
		p.CreatedAt = now
	default:
		return core.UserProfile{}, err
	}
	p.UpdatedAt = now

	if err := s.storage.SaveProfile(ctx, p); err != nil {
		return core.UserProfile{}, err
	}
	return p, nil
}

func (s *ProfileService) Tips(ctx context.Context) ([]core.FinancialTip, error) {
	return s.storage.ListTips(ctx)
}

func (s *ProfileService) Tip(ctx context.Context, id string) (core.FinancialTip, error) {
	return s.storage.GetTip(ctx, id)
}
