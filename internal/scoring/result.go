package scoring

import (
	"time"

	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
)

// Result is the full outcome of one screening. It holds its own copy of the
// answers it was computed from.
type Result struct {
	ASRS       ASRSResult       `json:"asrs" yaml:"asrs"`
	Impairment ImpairmentResult `json:"impairment" yaml:"impairment"`
	WURS       WURSResult       `json:"wurs" yaml:"wurs"`
	Composite  Composite        `json:"composite" yaml:"composite"`
	ComputedAt time.Time        `json:"computed_at" yaml:"computed_at"`

	answers domain.AnswerSet
}

// Answers returns a copy of the answers behind the result.
func (r Result) Answers() domain.AnswerSet {
	return r.answers.Clone()
}

// ASRSCategories breaks the current-symptom answers down by category.
func (r Result) ASRSCategories() []CategoryScore {
	return AnalyzeCategories(r.answers.ASRS, instrument.Categories(domain.InstrumentASRS))
}

// WURSCategories breaks the childhood-recall answers down by category.
func (r Result) WURSCategories() []CategoryScore {
	return AnalyzeCategories(r.answers.WURS, instrument.Categories(domain.InstrumentWURS))
}

// Assemble scores all three instruments and interprets them together.
// Incomplete answers are scored as if the missing items were 0 or no.
func Assemble(answers domain.AnswerSet, now time.Time) Result {
	own := answers.Clone()

	asrs := ScoreASRS(own.ASRS)
	imp := ScoreImpairment(own.Impairment)
	wurs := ScoreWURS(own.WURS)

	composite := Interpret(CompositeInput{
		Criteria: Criteria{A: asrs.CriterionA, B: wurs.CriterionB, D: imp.CriterionD},
		ASRS:     asrs.Level,
		WURS:     wurs.Level,
		YesCount: imp.YesCount,
	})

	return Result{
		ASRS:       asrs,
		Impairment: imp,
		WURS:       wurs,
		Composite:  composite,
		ComputedAt: now,
		answers:    own,
	}
}

// Compute is Assemble stamped with the current UTC time.
func Compute(answers domain.AnswerSet) Result {
	return Assemble(answers, time.Now().UTC())
}
