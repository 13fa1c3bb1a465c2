package domain

import (
	"fmt"
	"math"
	"strings"
)

type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityComplex Complexity = "complex"
)

// ParseComplexity accepts a complexity tier name, case-insensitively.
func ParseComplexity(s string) (Complexity, error) {
	switch Complexity(strings.ToLower(strings.TrimSpace(s))) {
	case ComplexitySimple:
		return ComplexitySimple, nil
	case ComplexityComplex:
		return ComplexityComplex, nil
	default:
		return "", fmt.Errorf("unknown complexity %q (want simple or complex)", s)
	}
}

// Subject is display-only; it never affects the calculation.
type Subject string

const (
	SubjectLiterature  Subject = "Literature"
	SubjectMathematics Subject = "Mathematics"
	SubjectScience     Subject = "Science"
	SubjectHistory     Subject = "History"
	SubjectArt         Subject = "Art"
	SubjectLanguages   Subject = "Languages"
)

// Subjects is the canonical ordered set of accepted subjects.
var Subjects = []Subject{
	SubjectLiterature, SubjectMathematics, SubjectScience,
	SubjectHistory, SubjectArt, SubjectLanguages,
}

// ParseSubject matches s against Subjects, case-insensitively.
func ParseSubject(s string) (Subject, error) {
	for _, sub := range Subjects {
		if strings.EqualFold(string(sub), strings.TrimSpace(s)) {
			return sub, nil
		}
	}
	return "", fmt.Errorf("unknown subject %q", s)
}

// Input bounds for a collection. The validate tags on ProjectConfig repeat
// these values.
const (
	MaxBooks        = 1000
	MaxPagesPerBook = 10000
)

type ProjectConfig struct {
	Name          string     `json:"name"`
	Subject       Subject    `json:"subject" validate:"required,oneof=Literature Mathematics Science History Art Languages"`
	Complexity    Complexity `json:"complexity" validate:"required,oneof=simple complex"`
	NumberOfBooks int        `json:"numberOfBooks" validate:"min=1,max=1000"`
	PagesPerBook  int        `json:"pagesPerBook" validate:"min=1,max=10000"`
}

// TotalPages is the page count shown to users. Within the input bounds it
// cannot overflow.
func (p ProjectConfig) TotalPages() int {
	return p.NumberOfBooks * p.PagesPerBook
}

// PageVolume is the page workload as a float, exact for any int inputs
// below 2^53 and free of integer wraparound.
func (p ProjectConfig) PageVolume() float64 {
	return float64(p.NumberOfBooks) * float64(p.PagesPerBook)
}

// TeamConfig holds the headcount assigned to each stage.
type TeamConfig struct {
	ContentDev   int `json:"contentDev"`
	Illustration int `json:"illustration"`
	Design       int `json:"design"`
	Review       int `json:"review"`
	Corrections  int `json:"corrections"`
	FinalReview  int `json:"finalReview"`
}

// Headcount returns the number of people assigned to stage id.
func (t TeamConfig) Headcount(id StageID) int {
	switch id {
	case StageContent:
		return t.ContentDev
	case StageIllustration:
		return t.Illustration
	case StageDesign:
		return t.Design
	case StageReview:
		return t.Review
	case StageCorrections:
		return t.Corrections
	case StageFinal:
		return t.FinalReview
	default:
		return 0
	}
}

// WithHeadcount returns a copy of t with stage id set to n. No clamping is
// applied here; input layers clamp before calling.
func (t TeamConfig) WithHeadcount(id StageID, n int) TeamConfig {
	switch id {
	case StageContent:
		t.ContentDev = n
	case StageIllustration:
		t.Illustration = n
	case StageDesign:
		t.Design = n
	case StageReview:
		t.Review = n
	case StageCorrections:
		t.Corrections = n
	case StageFinal:
		t.FinalReview = n
	}
	return t
}

// RateConfig holds per-stage throughput. Rate-driven stages are expressed in
// pages per person-day, fixed-effort stages in days per book per person.
type RateConfig struct {
	ContentPagesPerDay      float64 `json:"contentPagesPerDay" yaml:"contentPagesPerDay"`
	IllustrationDaysPerBook float64 `json:"illustrationDaysPerBook" yaml:"illustrationDaysPerBook"`
	DesignPagesPerDay       float64 `json:"designPagesPerDay" yaml:"designPagesPerDay"`
	ReviewPagesPerDay       float64 `json:"reviewPagesPerDay" yaml:"reviewPagesPerDay"`
	CorrectionPagesPerDay   float64 `json:"correctionPagesPerDay" yaml:"correctionPagesPerDay"`
	FinalReviewDaysPerBook  float64 `json:"finalReviewDaysPerBook" yaml:"finalReviewDaysPerBook"`
}

// Rate returns the throughput constant for stage id.
func (r RateConfig) Rate(id StageID) float64 {
	switch id {
	case StageContent:
		return r.ContentPagesPerDay
	case StageIllustration:
		return r.IllustrationDaysPerBook
	case StageDesign:
		return r.DesignPagesPerDay
	case StageReview:
		return r.ReviewPagesPerDay
	case StageCorrections:
		return r.CorrectionPagesPerDay
	case StageFinal:
		return r.FinalReviewDaysPerBook
	default:
		return 0
	}
}

// WithRate returns a copy of r with stage id set to v.
func (r RateConfig) WithRate(id StageID, v float64) RateConfig {
	switch id {
	case StageContent:
		r.ContentPagesPerDay = v
	case StageIllustration:
		r.IllustrationDaysPerBook = v
	case StageDesign:
		r.DesignPagesPerDay = v
	case StageReview:
		r.ReviewPagesPerDay = v
	case StageCorrections:
		r.CorrectionPagesPerDay = v
	case StageFinal:
		r.FinalReviewDaysPerBook = v
	}
	return r
}

// Validate rejects negative rates. Zero is allowed and means the stage
// takes no time.
func (r RateConfig) Validate() error {
	for _, s := range Stages {
		v := r.Rate(s.ID)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("rate for %s must be a finite number, got %g", s.ID, v)
		}
		if v < 0 {
			return fmt.Errorf("rate for %s must not be negative, got %g", s.ID, v)
		}
	}
	return nil
}

// RatesSimple is the preset for the Simple complexity tier.
var RatesSimple = RateConfig{
	ContentPagesPerDay:      22,
	IllustrationDaysPerBook: 1,
	DesignPagesPerDay:       12,
	ReviewPagesPerDay:       34, // ~170 pages per five-day week
	CorrectionPagesPerDay:   30,
	FinalReviewDaysPerBook:  0.5,
}

// RatesComplex is the preset for the Complex complexity tier.
var RatesComplex = RateConfig{
	ContentPagesPerDay:      5.5, // a quarter of the simple pace
	IllustrationDaysPerBook: 3,
	DesignPagesPerDay:       8,
	ReviewPagesPerDay:       34,
	CorrectionPagesPerDay:   20,
	FinalReviewDaysPerBook:  0.5,
}

// PresetRates returns the canonical rate table for a complexity tier.
// Unknown tiers fall back to the simple preset.
func PresetRates(c Complexity) RateConfig {
	if c == ComplexityComplex {
		return RatesComplex
	}
	return RatesSimple
}
