package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStages_FixedOrder(t *testing.T) {
	var ids []StageID
	for _, s := range Stages {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []StageID{
		StageContent, StageIllustration, StageDesign,
		StageReview, StageCorrections, StageFinal,
	}, ids)
}

func TestStages_DurationModels(t *testing.T) {
	fixed := map[StageID]bool{StageIllustration: true, StageFinal: true}
	for _, s := range Stages {
		if fixed[s.ID] {
			assert.Equal(t, FixedEffort, s.Model, "stage %s", s.ID)
		} else {
			assert.Equal(t, RateDriven, s.Model, "stage %s", s.ID)
		}
	}
}

func TestStageByID(t *testing.T) {
	s, ok := StageByID(StageFinal)
	require.True(t, ok)
	assert.Equal(t, "Final Review", s.Name)
	assert.Equal(t, "#10b981", s.Color)

	_, ok = StageByID("printing")
	assert.False(t, ok)
}

func TestParseStageID_Aliases(t *testing.T) {
	cases := map[string]StageID{
		"content":                 StageContent,
		"contentDev":              StageContent,
		"finalReview":             StageFinal,
		"final":                   StageFinal,
		"correctionPagesPerDay":   StageCorrections,
		"illustrationDaysPerBook": StageIllustration,
	}
	for in, want := range cases {
		got, ok := ParseStageID(in)
		require.True(t, ok, "alias %q", in)
		assert.Equal(t, want, got, "alias %q", in)
	}

	_, ok := ParseStageID("printing")
	assert.False(t, ok)
}

func TestTeamConfig_HeadcountRoundTrip(t *testing.T) {
	var team TeamConfig
	for i, s := range Stages {
		team = team.WithHeadcount(s.ID, i+1)
	}
	for i, s := range Stages {
		assert.Equal(t, i+1, team.Headcount(s.ID), "stage %s", s.ID)
	}
	assert.Equal(t, TeamConfig{1, 2, 3, 4, 5, 6}, team)
}

func TestRateConfig_RateRoundTrip(t *testing.T) {
	var rates RateConfig
	for i, s := range Stages {
		rates = rates.WithRate(s.ID, float64(i)+0.5)
	}
	for i, s := range Stages {
		assert.Equal(t, float64(i)+0.5, rates.Rate(s.ID), "stage %s", s.ID)
	}
}

func TestRateConfig_WithRateDoesNotMutateReceiver(t *testing.T) {
	base := RatesSimple
	_ = base.WithRate(StageDesign, 99)
	assert.Equal(t, 12.0, base.DesignPagesPerDay)
	assert.Equal(t, 12.0, RatesSimple.DesignPagesPerDay)
}

func TestRateConfig_Validate(t *testing.T) {
	assert.NoError(t, RatesSimple.Validate())
	assert.NoError(t, RateConfig{}.Validate())

	err := RatesSimple.WithRate(StageReview, -1).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "review")

	err = RatesSimple.WithRate(StageDesign, math.NaN()).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finite")

	assert.Error(t, RatesSimple.WithRate(StageIllustration, math.Inf(1)).Validate())
	assert.NoError(t, RatesSimple.WithRate(StageContent, 1e-300).Validate())
}

func TestPresetRates(t *testing.T) {
	assert.Equal(t, RatesSimple, PresetRates(ComplexitySimple))
	assert.Equal(t, RatesComplex, PresetRates(ComplexityComplex))
	assert.Equal(t, RatesSimple, PresetRates("unknown"))
}

func TestParseComplexity(t *testing.T) {
	c, err := ParseComplexity(" Complex ")
	require.NoError(t, err)
	assert.Equal(t, ComplexityComplex, c)

	_, err = ParseComplexity("medium")
	assert.Error(t, err)
}

func TestParseSubject(t *testing.T) {
	s, err := ParseSubject("mathematics")
	require.NoError(t, err)
	assert.Equal(t, SubjectMathematics, s)

	_, err = ParseSubject("Astrology")
	assert.Error(t, err)
}

func TestProjectConfig_TotalPages(t *testing.T) {
	p := ProjectConfig{NumberOfBooks: 3, PagesPerBook: 160}
	assert.Equal(t, 480, p.TotalPages())
	assert.Equal(t, 480.0, p.PageVolume())
}

func TestProjectConfig_PageVolumeDoesNotWrap(t *testing.T) {
	p := ProjectConfig{NumberOfBooks: math.MaxInt, PagesPerBook: math.MaxInt}
	want := float64(math.MaxInt) * float64(math.MaxInt)
	assert.Equal(t, want, p.PageVolume())
	assert.Greater(t, p.PageVolume(), 0.0)
}

func TestRateProfile_Validate(t *testing.T) {
	p := &RateProfile{Name: "house style", BaseComplexity: ComplexitySimple, Rates: RatesSimple}
	assert.NoError(t, p.Validate())

	p.Name = "  "
	assert.Error(t, p.Validate())

	p.Name = "house style"
	p.BaseComplexity = "medium"
	assert.Error(t, p.Validate())
}
