package domain

// StageResult is the computed schedule for a single stage. StartDate and
// EndDate are working-day offsets from the project start.
type StageResult struct {
	ID           StageID `json:"id"`
	Name         string  `json:"name"`
	DurationDays int     `json:"durationDays"`
	StartDate    int     `json:"startDate"`
	EndDate      int     `json:"endDate"`
	Color        string  `json:"color"`
}

// CalculationResult is the full six-stage timeline plus aggregates.
type CalculationResult struct {
	Stages      []StageResult `json:"stages"`
	TotalDays   int           `json:"totalDays"`
	TotalWeeks  float64       `json:"totalWeeks"`
	TotalMonths float64       `json:"totalMonths"`
}

// Stage returns the result for stage id.
func (r CalculationResult) Stage(id StageID) (StageResult, bool) {
	for _, s := range r.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return StageResult{}, false
}
