package service

import (
	"context"

	"github.com/alexanderramin/folio/internal/domain"
)

// ProfileService manages saved rate profiles.
type ProfileService interface {
	Save(ctx context.Context, name string, base domain.Complexity, rates domain.RateConfig, notes string) (*domain.RateProfile, error)
	Get(ctx context.Context, name string) (*domain.RateProfile, error)
	List(ctx context.Context) ([]domain.RateProfile, error)
	Rename(ctx context.Context, oldName, newName string) (*domain.RateProfile, error)
	Delete(ctx context.Context, name string) error
}
