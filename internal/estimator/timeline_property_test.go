package estimator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func randomInputs(rng *rand.Rand) (domain.ProjectConfig, domain.TeamConfig, domain.RateConfig) {
	project := domain.ProjectConfig{
		Complexity:    domain.ComplexitySimple,
		NumberOfBooks: rng.Intn(50) + 1,
		PagesPerBook:  rng.Intn(400) + 1,
	}
	var team domain.TeamConfig
	var rates domain.RateConfig
	for _, s := range domain.Stages {
		team = team.WithHeadcount(s.ID, rng.Intn(8)-1) // -1..6
		rates = rates.WithRate(s.ID, rng.Float64()*40-2)
	}
	return project, team, rates
}

// TestCalculate_Invariants_RandomInputs checks the structural guarantees of
// the timeline over many random configurations.
func TestCalculate_Invariants_RandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		project, team, rates := randomInputs(rng)
		r := Calculate(project, team, rates)

		// Invariant 1: exactly six stages in fixed order
		if !assert.Len(t, r.Stages, 6, "trial %d", trial) {
			continue
		}
		sum := 0
		for i, s := range r.Stages {
			assert.Equal(t, domain.Stages[i].ID, s.ID, "trial %d stage %d", trial, i)

			// Invariant 2: end = start + duration, durations non-negative
			assert.GreaterOrEqual(t, s.DurationDays, 0, "trial %d stage %s", trial, s.ID)
			assert.Equal(t, s.StartDate+s.DurationDays, s.EndDate, "trial %d stage %s", trial, s.ID)

			// Invariant 3: strict chaining from day zero
			if i == 0 {
				assert.Equal(t, 0, s.StartDate, "trial %d", trial)
			} else {
				assert.Equal(t, r.Stages[i-1].EndDate, s.StartDate, "trial %d stage %s", trial, s.ID)
			}

			// Invariant 4: zero-throughput rule
			if team.Headcount(s.ID) <= 0 || rates.Rate(s.ID) <= 0 {
				assert.Equal(t, 0, s.DurationDays, "trial %d stage %s", trial, s.ID)
			}
			sum += s.DurationDays
		}

		// Invariant 5: totals
		assert.Equal(t, sum, r.TotalDays, "trial %d", trial)
		assert.Equal(t, r.Stages[5].EndDate, r.TotalDays, "trial %d", trial)
		assert.Equal(t, math.Round(float64(r.TotalDays)/5*10)/10, r.TotalWeeks, "trial %d", trial)
		assert.Equal(t, math.Round(float64(r.TotalDays)/21.6*10)/10, r.TotalMonths, "trial %d", trial)
	}
}

func TestCalculate_Idempotent_RandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		project, team, rates := randomInputs(rng)
		assert.Equal(t, Calculate(project, team, rates), Calculate(project, team, rates), "trial %d", trial)
	}
}

func TestCalculate_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	stageGen := gen.IntRange(0, len(domain.Stages)-1)

	properties.Property("adding headcount to a stage never lengthens it or the total", prop.ForAll(
		func(books, pages, stageIdx, people, extra int) bool {
			project := domain.ProjectConfig{NumberOfBooks: books, PagesPerBook: pages}
			id := domain.Stages[stageIdx].ID

			base := domain.TeamConfig{ContentDev: 1, Illustration: 1, Design: 1, Review: 1, Corrections: 1, FinalReview: 1}
			fewer := base.WithHeadcount(id, people)
			more := base.WithHeadcount(id, people+extra)

			a := Calculate(project, fewer, domain.RatesComplex)
			b := Calculate(project, more, domain.RatesComplex)

			sa, _ := a.Stage(id)
			sb, _ := b.Stage(id)
			return sb.DurationDays <= sa.DurationDays && b.TotalDays <= a.TotalDays
		},
		gen.IntRange(1, 50),
		gen.IntRange(1, 500),
		stageGen,
		gen.IntRange(1, 10),
		gen.IntRange(0, 10),
	))

	properties.Property("non-positive headcount makes a stage take zero days", prop.ForAll(
		func(books, pages, stageIdx, people int) bool {
			project := domain.ProjectConfig{NumberOfBooks: books, PagesPerBook: pages}
			id := domain.Stages[stageIdx].ID
			team := domain.TeamConfig{ContentDev: 2, Illustration: 2, Design: 2, Review: 2, Corrections: 2, FinalReview: 2}.
				WithHeadcount(id, people)

			s, ok := Calculate(project, team, domain.RatesSimple).Stage(id)
			return ok && s.DurationDays == 0
		},
		gen.IntRange(1, 50),
		gen.IntRange(1, 500),
		stageGen,
		gen.IntRange(-5, 0),
	))

	properties.Property("rate-driven stages cover the page volume", prop.ForAll(
		func(books, pages, people int, rate float64) bool {
			project := domain.ProjectConfig{NumberOfBooks: books, PagesPerBook: pages}
			team := domain.TeamConfig{Design: people}
			rates := domain.RateConfig{DesignPagesPerDay: rate}

			s, _ := Calculate(project, team, rates).Stage(domain.StageDesign)
			capacity := float64(s.DurationDays) * rate * float64(people)
			// One day less would not have been enough.
			shortfall := float64(s.DurationDays-1) * rate * float64(people)
			total := float64(project.TotalPages())
			return capacity >= total-1e-9 && shortfall < total+1e-9
		},
		gen.IntRange(1, 50),
		gen.IntRange(1, 500),
		gen.IntRange(1, 10),
		gen.Float64Range(0.5, 60),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
