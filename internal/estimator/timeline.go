package estimator

import (
	"math"

	"github.com/alexanderramin/folio/internal/domain"
)

const (
	// WorkDaysPerWeek converts working days to weeks.
	WorkDaysPerWeek = 5.0
	// WorkDaysPerMonth approximates the average working days in a month.
	WorkDaysPerMonth = 21.6
	// MaxStageDays caps a single stage so six stages sum without overflow
	// even where int is 32 bits.
	MaxStageDays = 1 << 28
)

// Calculate derives the sequential six-stage schedule for a project. It is
// pure and total: any input produces exactly one result per stage in
// production order, and non-positive headcounts or rates yield zero-day
// stages instead of faults. Stage durations never exceed MaxStageDays.
func Calculate(project domain.ProjectConfig, team domain.TeamConfig, rates domain.RateConfig) domain.CalculationResult {
	totalPages := project.PageVolume()
	totalBooks := float64(project.NumberOfBooks)

	stages := make([]domain.StageResult, 0, len(domain.Stages))
	currentDay := 0

	for _, s := range domain.Stages {
		people := team.Headcount(s.ID)
		rate := rates.Rate(s.ID)

		var days int
		switch s.Model {
		case domain.FixedEffort:
			days = fixedEffortDays(rate, totalBooks, people)
		case domain.RateDriven:
			days = rateDrivenDays(totalPages, rate, people)
		}

		stages = append(stages, domain.StageResult{
			ID:           s.ID,
			Name:         s.Name,
			DurationDays: days,
			StartDate:    currentDay,
			EndDate:      currentDay + days,
			Color:        s.Color,
		})
		currentDay += days
	}

	return domain.CalculationResult{
		Stages:      stages,
		TotalDays:   currentDay,
		TotalWeeks:  roundTenth(float64(currentDay) / WorkDaysPerWeek),
		TotalMonths: roundTenth(float64(currentDay) / WorkDaysPerMonth),
	}
}

// rateDrivenDays returns ceil(workload / (pagesPerDay × people)).
func rateDrivenDays(workload, pagesPerDay float64, people int) int {
	if people <= 0 || pagesPerDay <= 0 {
		return 0
	}
	return ceilDays(workload / (pagesPerDay * float64(people)))
}

// fixedEffortDays spreads daysPerBook × books person-days across people.
func fixedEffortDays(daysPerBook, books float64, people int) int {
	if people <= 0 || daysPerBook <= 0 {
		return 0
	}
	return ceilDays(daysPerBook * books / float64(people))
}

// ceilDays rounds a partial day up. Non-positive and NaN workloads take no
// time; anything past MaxStageDays, +Inf included, is capped there.
func ceilDays(d float64) int {
	if math.IsNaN(d) || d <= 0 {
		return 0
	}
	if d >= MaxStageDays {
		return MaxStageDays
	}
	return int(math.Ceil(d))
}

// roundTenth rounds v to one decimal place.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
