package domain

// StageID identifies one of the six sequential production stages. The ids
// double as the schema contract between the calculator and any renderer.
type StageID string

const (
	StageContent      StageID = "content"
	StageIllustration StageID = "illustration"
	StageDesign       StageID = "design"
	StageReview       StageID = "review"
	StageCorrections  StageID = "corrections"
	StageFinal        StageID = "final"
)

// DurationModel selects which formula produces a stage's duration.
type DurationModel string

const (
	// RateDriven stages scale with page volume: pages / (pagesPerDay × people).
	RateDriven DurationModel = "rate_driven"
	// FixedEffort stages scale with book count: (daysPerBook × books) / people.
	FixedEffort DurationModel = "fixed_effort"
)

// Stage describes the fixed properties of a production stage.
type Stage struct {
	ID       StageID       `json:"id"`
	Name     string        `json:"name"`
	Color    string        `json:"color"`
	Model    DurationModel `json:"model"`
	RateUnit string        `json:"rateUnit"`
	Role     string        `json:"role"`
}

const (
	unitPagesPerDay = "pages per person-day"
	unitDaysPerBook = "days per book per person"
)

// Stages lists every stage in production order. Each stage starts when the
// previous one ends.
var Stages = []Stage{
	{ID: StageContent, Name: "Content Development", Color: "#3b82f6", Model: RateDriven, RateUnit: unitPagesPerDay, Role: "Writers"},
	{ID: StageIllustration, Name: "Illustration", Color: "#a855f7", Model: FixedEffort, RateUnit: unitDaysPerBook, Role: "Illustrators"},
	{ID: StageDesign, Name: "Layout Design", Color: "#eab308", Model: RateDriven, RateUnit: unitPagesPerDay, Role: "Designers"},
	{ID: StageReview, Name: "Review", Color: "#f97316", Model: RateDriven, RateUnit: unitPagesPerDay, Role: "Reviewers"},
	{ID: StageCorrections, Name: "Corrections (Second Layout)", Color: "#ef4444", Model: RateDriven, RateUnit: unitPagesPerDay, Role: "Correctors"},
	{ID: StageFinal, Name: "Final Review", Color: "#10b981", Model: FixedEffort, RateUnit: unitDaysPerBook, Role: "Final reviewers"},
}

// StageByID returns the stage definition for id.
func StageByID(id StageID) (Stage, bool) {
	for _, s := range Stages {
		if s.ID == id {
			return s, true
		}
	}
	return Stage{}, false
}

// stageAliases maps the team and rate field names used on the wire to the
// stage they belong to, so "contentDev=2" and "content=2" both resolve.
var stageAliases = map[string]StageID{
	"content":                 StageContent,
	"contentDev":              StageContent,
	"contentPagesPerDay":      StageContent,
	"illustration":            StageIllustration,
	"illustrationDaysPerBook": StageIllustration,
	"design":                  StageDesign,
	"designPagesPerDay":       StageDesign,
	"review":                  StageReview,
	"reviewPagesPerDay":       StageReview,
	"corrections":             StageCorrections,
	"correctionPagesPerDay":   StageCorrections,
	"final":                   StageFinal,
	"finalReview":             StageFinal,
	"finalReviewDaysPerBook":  StageFinal,
}

// ParseStageID resolves a stage id or one of its field-name aliases.
func ParseStageID(s string) (StageID, bool) {
	id, ok := stageAliases[s]
	return id, ok
}
