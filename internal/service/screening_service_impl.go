package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mindcheck/screener/internal/db"
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
	"github.com/mindcheck/screener/internal/repository"
	"github.com/mindcheck/screener/internal/scoring"
)

type screeningService struct {
	screenings repository.ScreeningRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
	now        func() time.Time
}

func NewScreeningService(screenings repository.ScreeningRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ScreeningService {
	return &screeningService{
		screenings: screenings,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *screeningService) Start(ctx context.Context, respondentName string) (sc *domain.Screening, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "start-screening", s.now(), fields, &err)

	name, err := domain.ValidateRespondentName(respondentName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	now := s.now()
	sc = &domain.Screening{
		ID:             uuid.New().String(),
		RespondentName: name,
		Status:         domain.ScreeningInProgress,
		Source:         domain.SourceWizard,
		Answers:        domain.NewAnswerSet(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	fields["screening_id"] = sc.ID
	if err = s.screenings.Create(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *screeningService) RecordASRS(ctx context.Context, id string, itemID, value int) error {
	if err := checkOrdinal(domain.InstrumentASRS, itemID, value); err != nil {
		return err
	}
	return s.mutate(ctx, "record-asrs", id, func(sc *domain.Screening) {
		sc.Answers.ASRS[itemID] = value
	})
}

func (s *screeningService) RecordWURS(ctx context.Context, id string, itemID, value int) error {
	if err := checkOrdinal(domain.InstrumentWURS, itemID, value); err != nil {
		return err
	}
	return s.mutate(ctx, "record-wurs", id, func(sc *domain.Screening) {
		sc.Answers.WURS[itemID] = value
	})
}

func (s *screeningService) RecordImpairment(ctx context.Context, id string, itemID int, answer domain.YesNo) error {
	if !knownItem(domain.InstrumentImpairment, itemID) {
		return fmt.Errorf("%w: impairment has no item %d", ErrInvalidAnswer, itemID)
	}
	if !answer.Valid() {
		return fmt.Errorf("%w: %q is not yes or no", ErrInvalidAnswer, answer)
	}
	return s.mutate(ctx, "record-impairment", id, func(sc *domain.Screening) {
		sc.Answers.Impairment[itemID] = answer
	})
}

// SaveAnswers replaces all three answer maps at once.
func (s *screeningService) SaveAnswers(ctx context.Context, id string, answers domain.AnswerSet) error {
	replacement := answers.Clone()
	return s.mutate(ctx, "save-answers", id, func(sc *domain.Screening) {
		sc.Answers = replacement
	})
}

// mutate runs a read-modify-write of one in-progress screening in a
// transaction.
func (s *screeningService) mutate(ctx context.Context, name, id string, apply func(*domain.Screening)) (err error) {
	defer observe(ctx, s.observer, name, s.now(), map[string]any{"screening_id": id}, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteScreeningRepo(tx)
		sc, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sc.IsCompleted() {
			return fmt.Errorf("screening %s: %w", sc.DisplayID(), ErrScreeningCompleted)
		}
		apply(sc)
		sc.UpdatedAt = s.now()
		return repo.Update(ctx, sc)
	})
}

func (s *screeningService) Progress(ctx context.Context, id string) (*Progress, error) {
	sc, err := s.screenings.GetByPrefix(ctx, id)
	if err != nil {
		return nil, err
	}
	return progressOf(sc.Answers), nil
}

func (s *screeningService) Complete(ctx context.Context, id string) (out *Outcome, err error) {
	fields := map[string]any{"screening_id": id}
	defer observe(ctx, s.observer, "complete-screening", s.now(), fields, &err)

	var completed *domain.Screening
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteScreeningRepo(tx)
		sc, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sc.IsCompleted() {
			return fmt.Errorf("screening %s: %w", sc.DisplayID(), ErrScreeningCompleted)
		}
		for _, inst := range domain.Instruments {
			if sc.Answers.Answered(inst) == 0 {
				return fmt.Errorf("%w: no %s answers recorded", ErrIncomplete, instrument.Describe(inst).ShortName)
			}
		}
		if err := sc.Complete(s.now()); err != nil {
			return err
		}
		if err := repo.Update(ctx, sc); err != nil {
			return err
		}
		completed = sc
		return nil
	})
	if err != nil {
		return nil, err
	}

	out = outcomeOf(completed)
	fields["tier"] = string(out.Result.Composite.Tier)
	return out, nil
}

func (s *screeningService) Import(ctx context.Context, respondentName string, answers domain.AnswerSet) (out *Outcome, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import-screening", s.now(), fields, &err)

	name, err := domain.ValidateRespondentName(respondentName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidName, err)
	}

	now := s.now()
	sc := &domain.Screening{
		ID:             uuid.New().String(),
		RespondentName: name,
		Status:         domain.ScreeningCompleted,
		Source:         domain.SourceFile,
		Answers:        answers.Clone(),
		CreatedAt:      now,
		UpdatedAt:      now,
		CompletedAt:    &now,
	}
	fields["screening_id"] = sc.ID
	if err = s.screenings.Create(ctx, sc); err != nil {
		return nil, err
	}
	return outcomeOf(sc), nil
}

func (s *screeningService) Get(ctx context.Context, id string) (*Outcome, error) {
	sc, err := s.screenings.GetByPrefix(ctx, id)
	if err != nil {
		return nil, err
	}
	return outcomeOf(sc), nil
}

func (s *screeningService) List(ctx context.Context, filter repository.ScreeningFilter) ([]*domain.Screening, error) {
	return s.screenings.List(ctx, filter)
}

func (s *screeningService) Delete(ctx context.Context, id string) (err error) {
	fields := map[string]any{"screening_id": id}
	defer observe(ctx, s.observer, "delete-screening", s.now(), fields, &err)

	sc, err := s.screenings.GetByPrefix(ctx, id)
	if err != nil {
		return err
	}
	fields["screening_id"] = sc.ID
	return s.screenings.Delete(ctx, sc.ID)
}

func (s *screeningService) Reset(ctx context.Context) (n int64, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "reset-screenings", s.now(), fields, &err)

	n, err = s.screenings.DeleteAll(ctx)
	fields["deleted"] = n
	return n, err
}

func (s *screeningService) ScoreOnly(answers domain.AnswerSet) scoring.Result {
	return scoring.Assemble(answers, s.now())
}

// outcomeOf scores completed screenings as of their completion time, so the
// result is stable across reads.
func outcomeOf(sc *domain.Screening) *Outcome {
	out := &Outcome{Screening: sc}
	if sc.IsCompleted() && sc.CompletedAt != nil {
		r := scoring.Assemble(sc.Answers, *sc.CompletedAt)
		out.Result = &r
	}
	return out
}

func progressOf(answers domain.AnswerSet) *Progress {
	p := &Progress{}
	for _, inst := range domain.Instruments {
		ip := InstrumentProgress{Instrument: inst}
		for _, itemID := range instrument.ItemIDs(inst) {
			ip.Total++
			if answered(answers, inst, itemID) {
				ip.Answered++
			}
		}
		p.Instruments = append(p.Instruments, ip)
		p.Answered += ip.Answered
		p.Total += ip.Total
		if p.Next == "" && !ip.Done() {
			p.Next = inst
		}
	}
	return p
}

func answered(answers domain.AnswerSet, inst domain.Instrument, itemID int) bool {
	switch inst {
	case domain.InstrumentASRS:
		_, ok := answers.ASRS[itemID]
		return ok
	case domain.InstrumentImpairment:
		_, ok := answers.Impairment[itemID]
		return ok
	case domain.InstrumentWURS:
		_, ok := answers.WURS[itemID]
		return ok
	}
	return false
}

func knownItem(inst domain.Instrument, itemID int) bool {
	for _, id := range instrument.ItemIDs(inst) {
		if id == itemID {
			return true
		}
	}
	return false
}

func checkOrdinal(inst domain.Instrument, itemID, value int) error {
	if !knownItem(inst, itemID) {
		return fmt.Errorf("%w: %s has no item %d", ErrInvalidAnswer, inst, itemID)
	}
	if value < 0 || value > instrument.MaxItemValue {
		return fmt.Errorf("%w: %s item %d value %d outside 0-%d", ErrInvalidAnswer, inst, itemID, value, instrument.MaxItemValue)
	}
	return nil
}
