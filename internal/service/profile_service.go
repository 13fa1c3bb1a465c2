package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/repository"
)

type profileService struct {
	uow      db.UnitOfWork
	profiles repository.RateProfileRepo
	newRepo  func(db.DBTX) repository.RateProfileRepo
	observer UseCaseObserver
}

// NewProfileService creates a ProfileService. conn serves reads; writes run
// through uow with repositories scoped to the transaction.
func NewProfileService(conn db.DBTX, uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	newRepo := func(tx db.DBTX) repository.RateProfileRepo {
		return repository.NewSQLiteRateProfileRepo(tx)
	}
	return &profileService{
		uow:      uow,
		profiles: newRepo(conn),
		newRepo:  newRepo,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Save(ctx context.Context, name string, base domain.Complexity, rates domain.RateConfig, notes string) (_ *domain.RateProfile, err error) {
	defer s.observe(ctx, "profile.save", time.Now(), &err, map[string]any{"name": name})

	p := &domain.RateProfile{
		Name:           strings.TrimSpace(name),
		BaseComplexity: base,
		Rates:          rates,
		Notes:          notes,
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return s.newRepo(tx).Upsert(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Get(ctx context.Context, name string) (*domain.RateProfile, error) {
	return s.profiles.GetByName(ctx, strings.TrimSpace(name))
}

func (s *profileService) List(ctx context.Context) ([]domain.RateProfile, error) {
	return s.profiles.List(ctx)
}

// Rename moves a profile to a new name keeping its ID, rates and creation time.
func (s *profileService) Rename(ctx context.Context, oldName, newName string) (_ *domain.RateProfile, err error) {
	defer s.observe(ctx, "profile.rename", time.Now(), &err, map[string]any{"from": oldName, "to": newName})

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, fmt.Errorf("%w: profile name is required", ErrInvalidProfile)
	}

	var renamed *domain.RateProfile
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := s.newRepo(tx)
		p, err := repo.GetByName(ctx, strings.TrimSpace(oldName))
		if err != nil {
			return err
		}
		if !strings.EqualFold(p.Name, newName) {
			_, err := repo.GetByName(ctx, newName)
			if err == nil {
				return fmt.Errorf("%q: %w", newName, ErrProfileExists)
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
		}
		if err := repo.Delete(ctx, p.Name); err != nil {
			return err
		}
		p.Name = newName
		if err := repo.Upsert(ctx, p); err != nil {
			return err
		}
		renamed = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return renamed, nil
}

func (s *profileService) Delete(ctx context.Context, name string) (err error) {
	defer s.observe(ctx, "profile.delete", time.Now(), &err, map[string]any{"name": name})
	return s.profiles.Delete(ctx, strings.TrimSpace(name))
}

func (s *profileService) observe(ctx context.Context, name string, start time.Time, errp *error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(start),
		Success:   *errp == nil,
		Err:       *errp,
		Fields:    fields,
		StartedAt: start,
	})
}
