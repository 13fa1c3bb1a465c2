package repository

import (
	"context"

	"github.com/alexanderramin/folio/internal/domain"
)

// RateProfileRepo stores named rate profiles. Names are unique without
// regard to case.
type RateProfileRepo interface {
	Upsert(ctx context.Context, p *domain.RateProfile) error
	GetByName(ctx context.Context, name string) (*domain.RateProfile, error)
	List(ctx context.Context) ([]domain.RateProfile, error)
	Delete(ctx context.Context, name string) error
}
