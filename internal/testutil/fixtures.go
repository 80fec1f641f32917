package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
)

// Screening options
type ScreeningOption func(*domain.Screening)

func WithAnswers(a domain.AnswerSet) ScreeningOption {
	return func(s *domain.Screening) {
		s.Answers = a
	}
}

func WithCompletedAt(t time.Time) ScreeningOption {
	return func(s *domain.Screening) {
		s.Status = domain.ScreeningCompleted
		s.CompletedAt = &t
		s.UpdatedAt = t
	}
}

func WithCreatedAt(t time.Time) ScreeningOption {
	return func(s *domain.Screening) {
		s.CreatedAt = t
		s.UpdatedAt = t
	}
}

func WithSource(src domain.ScreeningSource) ScreeningOption {
	return func(s *domain.Screening) {
		s.Source = src
	}
}

func NewTestScreening(name string, opts ...ScreeningOption) *domain.Screening {
	now := time.Now().UTC()
	s := &domain.Screening{
		ID:             uuid.New().String(),
		RespondentName: name,
		Status:         domain.ScreeningInProgress,
		Source:         domain.SourceWizard,
		Answers:        domain.NewAnswerSet(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Answer builders. Totals are spread over the item ids in order, filling each
// item to 4 before moving on.

func ASRSAnswers(partA, partB int) domain.OrdinalAnswers {
	a := domain.OrdinalAnswers{}
	fill(a, instrument.ASRSPartA, partA)
	fill(a, instrument.ASRSPartB, partB)
	return a
}

func WURSAnswers(total int) domain.OrdinalAnswers {
	a := domain.OrdinalAnswers{}
	fill(a, instrument.WURSIDs, total)
	return a
}

// ImpairmentAnswers answers the first yes items with yes and the rest no.
func ImpairmentAnswers(yes int) domain.ImpairmentAnswers {
	a := domain.ImpairmentAnswers{}
	for i, id := range instrument.ImpairmentIDs {
		if i < yes {
			a[id] = domain.Yes
		} else {
			a[id] = domain.No
		}
	}
	return a
}

// AnswerSet builds a complete answer set from the three headline numbers.
func AnswerSet(partA, partB, yes, wurs int) domain.AnswerSet {
	return domain.AnswerSet{
		ASRS:       ASRSAnswers(partA, partB),
		Impairment: ImpairmentAnswers(yes),
		WURS:       WURSAnswers(wurs),
	}
}

func fill(a domain.OrdinalAnswers, ids []int, total int) {
	for _, id := range ids {
		v := min(total, instrument.MaxItemValue)
		a[id] = v
		total -= v
	}
}
