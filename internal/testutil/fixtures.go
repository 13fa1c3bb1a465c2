package testutil

import (
	"github.com/alexanderramin/folio/internal/domain"
)

// ProfileOption customises a test rate profile.
type ProfileOption func(*domain.RateProfile)

func WithComplexity(c domain.Complexity) ProfileOption {
	return func(p *domain.RateProfile) {
		p.BaseComplexity = c
		p.Rates = domain.PresetRates(c)
	}
}

func WithRate(id domain.StageID, v float64) ProfileOption {
	return func(p *domain.RateProfile) {
		p.Rates = p.Rates.WithRate(id, v)
	}
}

func WithNotes(notes string) ProfileOption {
	return func(p *domain.RateProfile) {
		p.Notes = notes
	}
}

// NewTestProfile returns an unsaved profile based on the Simple preset.
func NewTestProfile(name string, opts ...ProfileOption) *domain.RateProfile {
	p := &domain.RateProfile{
		Name:           name,
		BaseComplexity: domain.ComplexitySimple,
		Rates:          domain.RatesSimple,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProjectOption customises a test project.
type ProjectOption func(*domain.ProjectConfig)

func WithBooks(n int) ProjectOption {
	return func(p *domain.ProjectConfig) { p.NumberOfBooks = n }
}

func WithPages(n int) ProjectOption {
	return func(p *domain.ProjectConfig) { p.PagesPerBook = n }
}

func WithProjectComplexity(c domain.Complexity) ProjectOption {
	return func(p *domain.ProjectConfig) { p.Complexity = c }
}

// NewTestProject returns the 3 x 160 page Mathematics collection.
func NewTestProject(opts ...ProjectOption) domain.ProjectConfig {
	p := domain.ProjectConfig{
		Name:          "Test Collection",
		Subject:       domain.SubjectMathematics,
		Complexity:    domain.ComplexitySimple,
		NumberOfBooks: 3,
		PagesPerBook:  160,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestTeam returns two writers and one person on every other stage.
func NewTestTeam() domain.TeamConfig {
	return domain.TeamConfig{
		ContentDev:   2,
		Illustration: 1,
		Design:       1,
		Review:       1,
		Corrections:  1,
		FinalReview:  1,
	}
}
