package estimator

import "github.com/alexanderramin/folio/internal/domain"

// Bottleneck returns the longest stage of a result. Ties go to the earlier
// stage. The second return is false when every stage takes zero days.
func Bottleneck(result domain.CalculationResult) (domain.StageResult, bool) {
	var longest domain.StageResult
	found := false
	for _, s := range result.Stages {
		if s.DurationDays > longest.DurationDays {
			longest = s
			found = true
		}
	}
	return longest, found
}

// Share returns the fraction of the total timeline taken by a stage.
func Share(result domain.CalculationResult, stage domain.StageResult) float64 {
	if result.TotalDays == 0 {
		return 0
	}
	return float64(stage.DurationDays) / float64(result.TotalDays)
}
