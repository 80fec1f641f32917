package scoring

import (
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
)

const (
	// ASRSCriterionThreshold is the Part A score at which criterion A is met.
	ASRSCriterionThreshold = 14
	asrsModerateThreshold  = 10
	// SubtypeThreshold is the subtype score at which a presentation counts.
	SubtypeThreshold = 18
)

type ASRSResult struct {
	PartA         int                 `json:"part_a" yaml:"part_a"`
	PartB         int                 `json:"part_b" yaml:"part_b"`
	Total         int                 `json:"total" yaml:"total"`
	Inattention   int                 `json:"inattention" yaml:"inattention"`
	Hyperactivity int                 `json:"hyperactivity" yaml:"hyperactivity"`
	Level         domain.SymptomLevel `json:"level" yaml:"level"`
	Subtype       domain.Subtype      `json:"subtype" yaml:"subtype"`
	CriterionA    bool                `json:"criterion_a" yaml:"criterion_a"`
	Summary       string              `json:"summary" yaml:"summary"`
}

func ScoreASRS(answers domain.OrdinalAnswers) ASRSResult {
	partA := Sum(answers, instrument.ASRSPartA)
	partB := Sum(answers, instrument.ASRSPartB)
	inatt := Sum(answers, instrument.ASRSInattention)
	hyper := Sum(answers, instrument.ASRSHyperactivity)

	level := asrsLevel(partA)
	return ASRSResult{
		PartA:         partA,
		PartB:         partB,
		Total:         partA + partB,
		Inattention:   inatt,
		Hyperactivity: hyper,
		Level:         level,
		Subtype:       classifySubtype(inatt, hyper),
		CriterionA:    partA >= ASRSCriterionThreshold,
		Summary:       asrsSummaries[level],
	}
}

// Only Part A drives the level.
func asrsLevel(partA int) domain.SymptomLevel {
	switch {
	case partA >= ASRSCriterionThreshold:
		return domain.SymptomHigh
	case partA >= asrsModerateThreshold:
		return domain.SymptomModerate
	default:
		return domain.SymptomLow
	}
}

// combined is checked first so a tie favors it over either single subtype.
func classifySubtype(inattention, hyperactivity int) domain.Subtype {
	switch {
	case inattention >= SubtypeThreshold && hyperactivity >= SubtypeThreshold:
		return domain.SubtypeCombined
	case inattention >= SubtypeThreshold:
		return domain.SubtypeInattentive
	case hyperactivity >= SubtypeThreshold:
		return domain.SubtypeHyperactive
	default:
		return domain.SubtypeUnknown
	}
}

var asrsSummaries = map[domain.SymptomLevel]string{
	domain.SymptomHigh:     "ADHD symptoms are likely",
	domain.SymptomModerate: "Some ADHD symptoms are present",
	domain.SymptomLow:      "ADHD symptoms are unlikely",
}
