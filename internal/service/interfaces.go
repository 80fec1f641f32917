package service

import (
	"context"

	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/repository"
	"github.com/mindcheck/screener/internal/scoring"
)

// Outcome pairs a stored screening with its scored result. Result is nil
// while the screening is still in progress.
type Outcome struct {
	Screening *domain.Screening
	Result    *scoring.Result
}

type InstrumentProgress struct {
	Instrument domain.Instrument
	Answered   int
	Total      int
}

func (p InstrumentProgress) Done() bool { return p.Answered >= p.Total }

// Progress summarizes how far a screening has got. Next is the first
// instrument with unanswered items, or empty when everything is answered.
type Progress struct {
	Instruments []InstrumentProgress
	Answered    int
	Total       int
	Next        domain.Instrument
}

type ScreeningService interface {
	Start(ctx context.Context, respondentName string) (*domain.Screening, error)
	RecordASRS(ctx context.Context, id string, itemID, value int) error
	RecordImpairment(ctx context.Context, id string, itemID int, answer domain.YesNo) error
	RecordWURS(ctx context.Context, id string, itemID, value int) error
	SaveAnswers(ctx context.Context, id string, answers domain.AnswerSet) error
	Progress(ctx context.Context, id string) (*Progress, error)
	Complete(ctx context.Context, id string) (*Outcome, error)
	// Import stores an already complete answer set as a finished screening.
	Import(ctx context.Context, respondentName string, answers domain.AnswerSet) (*Outcome, error)
	// Get accepts a full ID or a unique prefix such as the display ID.
	Get(ctx context.Context, id string) (*Outcome, error)
	List(ctx context.Context, filter repository.ScreeningFilter) ([]*domain.Screening, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) (int64, error)
	ScoreOnly(answers domain.AnswerSet) scoring.Result
}
