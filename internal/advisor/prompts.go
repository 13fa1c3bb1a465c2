package advisor

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/estimator"
)

// adviceSystemPrompt fixes role, output shape and tone.
const adviceSystemPrompt = `You are an experienced editorial project manager for textbook and book-collection production.
Given a production plan, reply with exactly three short, high-impact points:
1. One potential risk in the current schedule.
2. One staffing optimisation (where to add or remove people).
3. One efficiency suggestion (for example parallel workflows or tooling).

Output format:
- Valid HTML only: a single <ul> containing three <li> items. <strong> and <em> are allowed inside items.
- Do NOT wrap the answer in markdown code fences.
- No headings, no preamble, no closing remarks.

Keep the tone professional, encouraging and specific to the publishing industry. Answer in English.`

// BuildPrompt renders the plan details the model reasons about.
func BuildPrompt(project domain.ProjectConfig, team domain.TeamConfig, results domain.CalculationResult) string {
	var b strings.Builder

	b.WriteString("Project details:\n")
	fmt.Fprintf(&b, "- Name: %s\n", project.Name)
	fmt.Fprintf(&b, "- Subject: %s (complexity: %s)\n", project.Subject, project.Complexity)
	fmt.Fprintf(&b, "- Scale: %d books, %d pages each (%d pages total)\n",
		project.NumberOfBooks, project.PagesPerBook, project.TotalPages())
	fmt.Fprintf(&b, "- Estimated total duration: %d working days (~%.1f weeks, ~%.1f months)\n",
		results.TotalDays, results.TotalWeeks, results.TotalMonths)

	b.WriteString("\nTeam allocation:\n")
	for _, s := range domain.Stages {
		fmt.Fprintf(&b, "- %s (%s): %d\n", s.Name, strings.ToLower(s.Role), team.Headcount(s.ID))
	}

	b.WriteString("\nStage durations (working days):\n")
	for _, r := range results.Stages {
		fmt.Fprintf(&b, "- %s: %d (day %d to %d)\n", r.Name, r.DurationDays, r.StartDate, r.EndDate)
	}

	if slow, ok := estimator.Bottleneck(results); ok {
		fmt.Fprintf(&b, "\nLongest stage: %s, %.0f%% of the schedule.\n",
			slow.Name, estimator.Share(results, slow)*100)
	}

	return b.String()
}
