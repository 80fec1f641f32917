package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/repository"
	"github.com/mindcheck/screener/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

var clock = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, observers ...UseCaseObserver) (*screeningService, repository.ScreeningRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScreeningRepo(database)
	svc := NewScreeningService(repo, testutil.NewTestUoW(database), observers...).(*screeningService)
	svc.now = func() time.Time { return clock }
	return svc, repo
}

func TestStart_ValidatesName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, " a ")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = svc.Start(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidName)

	sc, err := svc.Start(ctx, "  Kim Minji  ")
	require.NoError(t, err)
	assert.Equal(t, "Kim Minji", sc.RespondentName)
	assert.Equal(t, domain.ScreeningInProgress, sc.Status)
	assert.Equal(t, clock, sc.CreatedAt)
}

func TestRecord_PersistsAnswers(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	sc, err := svc.Start(ctx, "Lee")
	require.NoError(t, err)

	require.NoError(t, svc.RecordASRS(ctx, sc.ID, 1, 4))
	require.NoError(t, svc.RecordASRS(ctx, sc.ID, 1, 3))
	require.NoError(t, svc.RecordImpairment(ctx, sc.ID, 2, domain.Yes))
	require.NoError(t, svc.RecordWURS(ctx, sc.ID, 25, 2))

	stored, err := repo.GetByID(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrdinalAnswers{1: 3}, stored.Answers.ASRS)
	assert.Equal(t, domain.ImpairmentAnswers{2: domain.Yes}, stored.Answers.Impairment)
	assert.Equal(t, domain.OrdinalAnswers{25: 2}, stored.Answers.WURS)
}

func TestRecord_RejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sc, err := svc.Start(ctx, "Lee")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RecordASRS(ctx, sc.ID, 19, 1), ErrInvalidAnswer)
	assert.ErrorIs(t, svc.RecordASRS(ctx, sc.ID, 1, 5), ErrInvalidAnswer)
	assert.ErrorIs(t, svc.RecordWURS(ctx, sc.ID, 26, 0), ErrInvalidAnswer)
	assert.ErrorIs(t, svc.RecordWURS(ctx, sc.ID, 3, -1), ErrInvalidAnswer)
	assert.ErrorIs(t, svc.RecordImpairment(ctx, sc.ID, 4, domain.Yes), ErrInvalidAnswer)
	assert.ErrorIs(t, svc.RecordImpairment(ctx, sc.ID, 1, domain.YesNo("maybe")), ErrInvalidAnswer)
	assert.ErrorIs(t, svc.RecordASRS(ctx, "missing", 1, 1), repository.ErrNotFound)
}

func TestProgress_NextInstrument(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sc, err := svc.Start(ctx, "Park")
	require.NoError(t, err)

	p, err := svc.Progress(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InstrumentASRS, p.Next)
	assert.Equal(t, 46, p.Total)
	assert.Equal(t, 0, p.Answered)

	answers := testutil.AnswerSet(10, 10, 0, 0)
	answers.WURS = domain.OrdinalAnswers{}
	require.NoError(t, svc.SaveAnswers(ctx, sc.ID, answers))

	p, err = svc.Progress(ctx, sc.DisplayID())
	require.NoError(t, err)
	assert.Equal(t, domain.InstrumentWURS, p.Next)
	assert.Equal(t, 21, p.Answered)
	require.Len(t, p.Instruments, 3)
	assert.True(t, p.Instruments[0].Done())
	assert.True(t, p.Instruments[1].Done())
	assert.False(t, p.Instruments[2].Done())
}

func TestComplete_RequiresEveryInstrument(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sc, err := svc.Start(ctx, "Choi")
	require.NoError(t, err)

	require.NoError(t, svc.RecordASRS(ctx, sc.ID, 1, 4))
	_, err = svc.Complete(ctx, sc.ID)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "Impairment")
}

func TestComplete_ScoresAndLocks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sc, err := svc.Start(ctx, "Jung")
	require.NoError(t, err)
	require.NoError(t, svc.SaveAnswers(ctx, sc.ID, testutil.AnswerSet(18, 12, 2, 50)))

	out, err := svc.Complete(ctx, sc.ID)
	require.NoError(t, err)
	require.NotNil(t, out.Result)
	assert.Equal(t, domain.ScreeningCompleted, out.Screening.Status)
	assert.Equal(t, domain.RiskVeryHigh, out.Result.Composite.Tier)
	assert.Equal(t, clock, out.Result.ComputedAt)

	_, err = svc.Complete(ctx, sc.ID)
	assert.ErrorIs(t, err, ErrScreeningCompleted)
	assert.ErrorIs(t, svc.RecordASRS(ctx, sc.ID, 1, 0), ErrScreeningCompleted)
	assert.ErrorIs(t, svc.SaveAnswers(ctx, sc.ID, domain.NewAnswerSet()), ErrScreeningCompleted)

	again, err := svc.Get(ctx, sc.ID)
	require.NoError(t, err)
	require.NotNil(t, again.Result)
	assert.Equal(t, out.Result.Composite, again.Result.Composite)
}

func TestGet_InProgressHasNoResult(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	sc, err := svc.Start(ctx, "Han")
	require.NoError(t, err)

	out, err := svc.Get(ctx, sc.DisplayID())
	require.NoError(t, err)
	assert.Equal(t, sc.ID, out.Screening.ID)
	assert.Nil(t, out.Result)
}

func TestImport_StoresCompletedFileScreening(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	answers := testutil.AnswerSet(5, 0, 0, 10)
	out, err := svc.Import(ctx, "Yoon", answers)
	require.NoError(t, err)
	require.NotNil(t, out.Result)
	assert.Equal(t, domain.RiskLow, out.Result.Composite.Tier)

	stored, err := repo.GetByID(ctx, out.Screening.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFile, stored.Source)
	assert.Equal(t, domain.ScreeningCompleted, stored.Status)

	_, err = svc.Import(ctx, "x", answers)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestListDeleteReset(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Start(ctx, "Kang")
	require.NoError(t, err)
	_, err = svc.Start(ctx, "Seo")
	require.NoError(t, err)
	_, err = svc.Import(ctx, "Oh", testutil.AnswerSet(1, 1, 1, 1))
	require.NoError(t, err)

	completed, err := svc.List(ctx, repository.ScreeningFilter{Status: domain.ScreeningCompleted})
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	require.NoError(t, svc.Delete(ctx, a.DisplayID()))
	_, err = svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestScoreOnly_DoesNotPersist(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	r := svc.ScoreOnly(testutil.AnswerSet(16, 10, 0, 20))
	assert.Equal(t, domain.RiskModerate, r.Composite.Tier)
	assert.Equal(t, clock, r.ComputedAt)

	all, err := repo.List(ctx, repository.ScreeningFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecord_RollbackOnUpdateFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteScreeningRepo(database)
	ctx := context.Background()

	sc := testutil.NewTestScreening("Rollback")
	sc.Answers.ASRS[1] = 2
	require.NoError(t, repo.Create(ctx, sc))

	injected := errors.New("injected update failure")
	svc := NewScreeningService(repo, &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: injected})

	err := svc.RecordASRS(ctx, sc.ID, 1, 4)
	require.ErrorIs(t, err, injected)

	stored, err := repo.GetByID(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Answers.ASRS[1], "answer should be unchanged after rollback")
}

func TestObserver_ReportsUseCases(t *testing.T) {
	obs := &recordingObserver{}
	svc, _ := newTestService(t, obs)
	ctx := context.Background()

	sc, err := svc.Start(ctx, "Moon")
	require.NoError(t, err)
	ev := obs.last()
	assert.Equal(t, "start-screening", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, sc.ID, ev.Fields["screening_id"])

	_, err = svc.Complete(ctx, sc.ID)
	require.Error(t, err)
	ev = obs.last()
	assert.Equal(t, "complete-screening", ev.Name)
	assert.False(t, ev.Success)
	assert.ErrorIs(t, ev.Err, ErrIncomplete)
}
