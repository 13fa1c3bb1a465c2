// Package draft holds the editable estimate configuration that input layers
// (flags, forms, request bodies) mutate before handing immutable values to
// the calculator.
package draft

import (
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/estimator"
)

// Draft is a mutable project, team and rate configuration.
//
// Rates follow a derived-default-with-override policy: they track the
// preset of the current complexity tier until they are edited, after which
// tier changes keep the edited rates. ResetRates returns to the preset.
type Draft struct {
	project     domain.ProjectConfig
	team        domain.TeamConfig
	rates       domain.RateConfig
	ratesEdited bool
}

// New returns a draft with the default collection setup.
func New() *Draft {
	return &Draft{
		project: domain.ProjectConfig{
			Name:          "New Collection",
			Subject:       domain.SubjectMathematics,
			Complexity:    domain.ComplexitySimple,
			NumberOfBooks: 3,
			PagesPerBook:  160,
		},
		team: domain.TeamConfig{
			ContentDev:   2,
			Illustration: 1,
			Design:       1,
			Review:       1,
			Corrections:  1,
			FinalReview:  1,
		},
		rates: domain.RatesSimple,
	}
}

// FromConfig builds a draft from already-validated values. Headcounts are
// not clamped so callers can model stages nobody is assigned to.
func FromConfig(project domain.ProjectConfig, team domain.TeamConfig, rates *domain.RateConfig) *Draft {
	d := &Draft{project: project, team: team, rates: domain.PresetRates(project.Complexity)}
	if rates != nil {
		d.ApplyRates(*rates)
	}
	return d
}

func (d *Draft) Project() domain.ProjectConfig { return d.project }
func (d *Draft) Team() domain.TeamConfig       { return d.team }
func (d *Draft) Rates() domain.RateConfig      { return d.rates }

// RatesCustomized reports whether the rates differ from the tier preset
// because of a manual edit since the last reset.
func (d *Draft) RatesCustomized() bool { return d.ratesEdited }

func (d *Draft) SetName(name string) { d.project.Name = name }

func (d *Draft) SetSubject(s domain.Subject) { d.project.Subject = s }

// SetBooks sets the number of books, clamped to [1, domain.MaxBooks].
func (d *Draft) SetBooks(n int) { d.project.NumberOfBooks = min(atLeastOne(n), domain.MaxBooks) }

// SetPages sets the pages per book, clamped to [1, domain.MaxPagesPerBook].
func (d *Draft) SetPages(n int) { d.project.PagesPerBook = min(atLeastOne(n), domain.MaxPagesPerBook) }

// SetComplexity changes the tier. Unedited rates follow the new preset;
// edited rates are kept.
func (d *Draft) SetComplexity(c domain.Complexity) {
	if d.project.Complexity == c {
		return
	}
	d.project.Complexity = c
	if !d.ratesEdited {
		d.rates = domain.PresetRates(c)
	}
}

// SetHeadcount assigns people to a stage, clamped to at least one.
func (d *Draft) SetHeadcount(id domain.StageID, n int) {
	d.team = d.team.WithHeadcount(id, atLeastOne(n))
}

// SetRate overrides a single stage rate.
func (d *Draft) SetRate(id domain.StageID, v float64) {
	d.rates = d.rates.WithRate(id, v)
	d.ratesEdited = true
}

// ApplyRates replaces the whole rate table, e.g. from a saved profile.
func (d *Draft) ApplyRates(r domain.RateConfig) {
	d.rates = r
	d.ratesEdited = r != domain.PresetRates(d.project.Complexity)
}

// ResetRates discards manual edits and applies the current tier preset.
func (d *Draft) ResetRates() {
	d.rates = domain.PresetRates(d.project.Complexity)
	d.ratesEdited = false
}

// Result computes the timeline for the current configuration.
func (d *Draft) Result() domain.CalculationResult {
	return estimator.Calculate(d.project, d.team, d.rates)
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
