package scoring

import (
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
)

const (
	// WURSCriterionThreshold is the total at which criterion B is met.
	WURSCriterionThreshold = 36
	wursHighThreshold      = 46
)

type WURSResult struct {
	Total          int                 `json:"total" yaml:"total"`
	Level          domain.SymptomLevel `json:"level" yaml:"level"`
	CriterionB     bool                `json:"criterion_b" yaml:"criterion_b"`
	Description    string              `json:"description" yaml:"description"`
	Recommendation string              `json:"recommendation" yaml:"recommendation"`
}

// ScoreWURS sums items 1..25. Keys outside that range are ignored.
func ScoreWURS(answers domain.OrdinalAnswers) WURSResult {
	total := Sum(answers, instrument.WURSIDs)

	var level domain.SymptomLevel
	switch {
	case total >= wursHighThreshold:
		level = domain.SymptomHigh
	case total >= WURSCriterionThreshold:
		level = domain.SymptomModerate
	default:
		level = domain.SymptomLow
	}

	text := wursTexts[level]
	return WURSResult{
		Total:          total,
		Level:          level,
		CriterionB:     total >= WURSCriterionThreshold,
		Description:    text[0],
		Recommendation: text[1],
	}
}

var wursTexts = map[domain.SymptomLevel][2]string{
	domain.SymptomHigh: {
		"Clear ADHD symptoms appear to have been present at ages 7 to 10.",
		"Adult ADHD is likely. A specialist diagnosis is strongly recommended.",
	},
	domain.SymptomModerate: {
		"Some ADHD symptoms appear to have been present at ages 7 to 10.",
		"A professional consultation is recommended.",
	},
	domain.SymptomLow: {
		"Few ADHD symptoms appear to have been present at ages 7 to 10.",
		"Childhood ADHD is unlikely.",
	},
}
