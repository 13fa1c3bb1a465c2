package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateProfileRepo_UpsertAndGet(t *testing.T) {
	repo := NewSQLiteRateProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile("House Style",
		testutil.WithComplexity(domain.ComplexityComplex),
		testutil.WithRate(domain.StageDesign, 10),
		testutil.WithNotes("2026 catalogue"))
	require.NoError(t, repo.Upsert(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.GetByName(ctx, "House Style")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, domain.ComplexityComplex, got.BaseComplexity)
	assert.Equal(t, 10.0, got.Rates.DesignPagesPerDay)
	assert.Equal(t, domain.RatesComplex.ContentPagesPerDay, got.Rates.ContentPagesPerDay)
	assert.Equal(t, "2026 catalogue", got.Notes)
	assert.WithinDuration(t, time.Now(), got.UpdatedAt, time.Minute)
}

func TestRateProfileRepo_UpsertSameNameReplacesRates(t *testing.T) {
	repo := NewSQLiteRateProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.NewTestProfile("Fast")
	require.NoError(t, repo.Upsert(ctx, first))

	second := testutil.NewTestProfile("fast", testutil.WithRate(domain.StageReview, 50))
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, 50.0, second.Rates.ReviewPagesPerDay)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRateProfileRepo_GetByName_CaseInsensitive(t *testing.T) {
	repo := NewSQLiteRateProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile("House Style")))

	got, err := repo.GetByName(ctx, "HOUSE STYLE")
	require.NoError(t, err)
	assert.Equal(t, "House Style", got.Name)
}

func TestRateProfileRepo_GetByName_NotFound(t *testing.T) {
	repo := NewSQLiteRateProfileRepo(testutil.NewTestDB(t))

	_, err := repo.GetByName(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRateProfileRepo_List_SortedByName(t *testing.T) {
	repo := NewSQLiteRateProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	for _, name := range []string{"beta", "Alpha", "gamma"} {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile(name)))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Alpha", all[0].Name)
	assert.Equal(t, "beta", all[1].Name)
	assert.Equal(t, "gamma", all[2].Name)
}

func TestRateProfileRepo_List_Empty(t *testing.T) {
	repo := NewSQLiteRateProfileRepo(testutil.NewTestDB(t))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRateProfileRepo_Delete(t *testing.T) {
	repo := NewSQLiteRateProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile("Temp")))

	require.NoError(t, repo.Delete(ctx, "temp"))

	_, err := repo.GetByName(ctx, "Temp")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "Temp"), ErrNotFound)
}
