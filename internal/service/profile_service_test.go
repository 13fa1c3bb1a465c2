package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/alexanderramin/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestProfileService(t *testing.T, observers ...UseCaseObserver) ProfileService {
	t.Helper()
	conn, uow := testutil.NewTestStore(t)
	return NewProfileService(conn, uow, observers...)
}

func TestProfileService_SaveAndGet(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()

	rates := domain.RatesComplex.WithRate(domain.StageDesign, 9)
	saved, err := svc.Save(ctx, "  Atlas  ", domain.ComplexityComplex, rates, "maps heavy")
	require.NoError(t, err)
	assert.Equal(t, "Atlas", saved.Name)
	assert.NotEmpty(t, saved.ID)

	got, err := svc.Get(ctx, "atlas")
	require.NoError(t, err)
	assert.Equal(t, rates, got.Rates)
	assert.Equal(t, "maps heavy", got.Notes)
}

func TestProfileService_SaveOverwritesByName(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, "Atlas", domain.ComplexitySimple, domain.RatesSimple, "")
	require.NoError(t, err)
	second, err := svc.Save(ctx, "Atlas", domain.ComplexityComplex, domain.RatesComplex, "")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.RatesComplex, all[0].Rates)
}

func TestProfileService_SaveRejectsInvalid(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, "   ", domain.ComplexitySimple, domain.RatesSimple, "")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = svc.Save(ctx, "Neg", domain.ComplexitySimple, domain.RatesSimple.WithRate(domain.StageReview, -1), "")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = svc.Save(ctx, "Tier", domain.Complexity("medium"), domain.RatesSimple, "")
	assert.ErrorIs(t, err, ErrInvalidProfile)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProfileService_Rename(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()
	orig, err := svc.Save(ctx, "Draft", domain.ComplexitySimple, domain.RatesSimple, "n")
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, "draft", "Final")
	require.NoError(t, err)

	assert.Equal(t, orig.ID, renamed.ID)
	assert.Equal(t, orig.CreatedAt, renamed.CreatedAt)
	assert.Equal(t, "Final", renamed.Name)
	_, err = svc.Get(ctx, "Draft")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_RenameCaseOnly(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()
	_, err := svc.Save(ctx, "atlas", domain.ComplexitySimple, domain.RatesSimple, "")
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, "atlas", "Atlas")
	require.NoError(t, err)
	assert.Equal(t, "Atlas", renamed.Name)
}

func TestProfileService_RenameConflicts(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()
	_, err := svc.Save(ctx, "A", domain.ComplexitySimple, domain.RatesSimple, "")
	require.NoError(t, err)
	_, err = svc.Save(ctx, "B", domain.ComplexitySimple, domain.RatesSimple, "")
	require.NoError(t, err)

	_, err = svc.Rename(ctx, "A", "b")
	assert.ErrorIs(t, err, ErrProfileExists)

	_, err = svc.Rename(ctx, "missing", "C")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Rename(ctx, "A", " ")
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestProfileService_RenameRollsBackOnWriteFailure(t *testing.T) {
	conn, uow := testutil.NewTestStore(t)
	ctx := context.Background()
	_, err := NewProfileService(conn, uow).
		Save(ctx, "Keep", domain.ComplexitySimple, domain.RatesSimple, "")
	require.NoError(t, err)

	boom := errors.New("disk full")
	svc := NewProfileService(conn, &testutil.FailOnNthExecUoW{DB: conn, FailOn: 2, Err: boom})

	_, err = svc.Rename(ctx, "Keep", "Moved")
	require.ErrorIs(t, err, boom)

	got, err := svc.Get(ctx, "Keep")
	require.NoError(t, err)
	assert.Equal(t, "Keep", got.Name)
	_, err = svc.Get(ctx, "Moved")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileService_Delete(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()
	_, err := svc.Save(ctx, "Gone", domain.ComplexitySimple, domain.RatesSimple, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "Gone"))
	assert.ErrorIs(t, svc.Delete(ctx, "Gone"), repository.ErrNotFound)
}

func TestProfileService_ObservesWrites(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := newTestProfileService(t, NewZapUseCaseObserver(zap.New(core).Sugar()))
	ctx := context.Background()

	_, err := svc.Save(ctx, "Obs", domain.ComplexitySimple, domain.RatesSimple, "")
	require.NoError(t, err)
	_ = svc.Delete(ctx, "missing")

	entries := logs.FilterMessage("service_use_case").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "profile.save", entries[0].ContextMap()["use_case"])
	assert.Equal(t, true, entries[0].ContextMap()["success"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestNewZapUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewZapUseCaseObserver(nil))
}
