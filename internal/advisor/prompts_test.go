package advisor

import (
	"testing"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/estimator"
	"github.com/stretchr/testify/assert"
)

func scenarioA() (domain.ProjectConfig, domain.TeamConfig, domain.CalculationResult) {
	project := domain.ProjectConfig{
		Name:          "Algebra I",
		Subject:       domain.SubjectMathematics,
		Complexity:    domain.ComplexitySimple,
		NumberOfBooks: 3,
		PagesPerBook:  160,
	}
	team := domain.TeamConfig{ContentDev: 2, Illustration: 1, Design: 1, Review: 1, Corrections: 1, FinalReview: 1}
	return project, team, estimator.Calculate(project, team, domain.RatesSimple)
}

func TestBuildPrompt_IncludesPlanDetails(t *testing.T) {
	project, team, result := scenarioA()

	prompt := BuildPrompt(project, team, result)

	assert.Contains(t, prompt, "Subject: Mathematics (complexity: simple)")
	assert.Contains(t, prompt, "3 books, 160 pages each (480 pages total)")
	assert.Contains(t, prompt, "87 working days (~17.4 weeks, ~4.0 months)")
	assert.Contains(t, prompt, "Layout Design: 40 (day 14 to 54)")
	assert.Contains(t, prompt, "Longest stage: Layout Design, 46% of the schedule.")
}

func TestBuildPrompt_ListsEveryStageHeadcount(t *testing.T) {
	project, team, result := scenarioA()
	team.FinalReview = 4

	prompt := BuildPrompt(project, team, result)

	for _, s := range domain.Stages {
		assert.Contains(t, prompt, s.Name)
	}
	assert.Contains(t, prompt, "Final Review (final reviewers): 4")
	assert.Contains(t, prompt, "Content Development (writers): 2")
}

func TestBuildPrompt_NoBottleneckForEmptyPlan(t *testing.T) {
	project, team, _ := scenarioA()

	prompt := BuildPrompt(project, team, estimator.Calculate(project, domain.TeamConfig{}, domain.RatesSimple))

	assert.NotContains(t, prompt, "Longest stage")
}
