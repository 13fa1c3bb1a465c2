package cli

import (
	"testing"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/draft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardValues_RoundTrip(t *testing.T) {
	d := draft.New()
	v := wizardValuesFrom(d)

	assert.Equal(t, "New Collection", v.name)
	assert.Equal(t, "3", v.books)
	assert.Equal(t, "160", v.pages)
	require.Len(t, v.team, len(domain.Stages))
	assert.Equal(t, "2", v.team[0])

	require.NoError(t, v.apply(d))
	assert.Equal(t, 87, d.Result().TotalDays)
}

func TestWizardValues_ApplyGoesThroughDraft(t *testing.T) {
	d := draft.New()
	v := wizardValuesFrom(d)
	v.name = "  Atlas  "
	v.complexity = domain.ComplexityComplex
	v.team[2] = "2"

	require.NoError(t, v.apply(d))
	assert.Equal(t, "Atlas", d.Project().Name)
	assert.Equal(t, domain.RatesComplex, d.Rates())
	assert.Equal(t, 2, d.Team().Design)
}

func TestWizardValues_ApplyRejectsBadNumbers(t *testing.T) {
	tests := []struct {
		name string
		edit func(v *wizardValues)
		want string
	}{
		{"books not a number", func(v *wizardValues) { v.books = "three" }, "books: enter a whole number"},
		{"zero pages", func(v *wizardValues) { v.pages = "0" }, "pages: must be at least 1"},
		{"too many books", func(v *wizardValues) { v.books = "1001" }, "books: must be at most 1000"},
		{"too many pages", func(v *wizardValues) { v.pages = "20000" }, "pages: must be at most 10000"},
		{"zero reviewers", func(v *wizardValues) { v.team[3] = "0" }, "reviewers: must be at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draft.New()
			v := wizardValuesFrom(d)
			tt.edit(v)
			err := v.apply(d)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestNewDraftForm_Builds(t *testing.T) {
	v := wizardValuesFrom(draft.New())
	assert.NotNil(t, newDraftForm(v))
	assert.NoError(t, validatePositive("4"))
	assert.Error(t, validatePositive("-1"))
	assert.NoError(t, validateAtMost(domain.MaxBooks)("1000"))
	assert.Error(t, validateAtMost(domain.MaxBooks)("1001"))
}
