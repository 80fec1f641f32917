package scoring

import (
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
)

// ImpairmentCriterionThreshold is the yes count at which criterion D is met.
const ImpairmentCriterionThreshold = 2

// Domains records which life domains were reported as impaired.
type Domains struct {
	AcademicWork bool `json:"academic_work" yaml:"academic_work"`
	Relationship bool `json:"relationship" yaml:"relationship"`
	DailyLife    bool `json:"daily_life" yaml:"daily_life"`
}

type ImpairmentResult struct {
	YesCount       int                    `json:"yes_count" yaml:"yes_count"`
	Domains        Domains                `json:"domains" yaml:"domains"`
	Level          domain.ImpairmentLevel `json:"level" yaml:"level"`
	CriterionD     bool                   `json:"criterion_d" yaml:"criterion_d"`
	Description    string                 `json:"description" yaml:"description"`
	Recommendation string                 `json:"recommendation" yaml:"recommendation"`
}

type impairmentBand struct {
	level          domain.ImpairmentLevel
	description    string
	recommendation string
}

// Indexed by yes count.
var impairmentBands = [...]impairmentBand{
	{domain.ImpairmentNone, "No clear difficulty in daily life was reported.", "There is no functional impairment at this time."},
	{domain.ImpairmentMild, "Difficulty was reported in one area of life.", "Consider talking to a professional if it persists."},
	{domain.ImpairmentSignificant, "Meaningful difficulty was reported in several areas of life.", "A specialist consultation is strongly recommended."},
	{domain.ImpairmentSevere, "Serious difficulty was reported in every area of life.", "Please consult a specialist as soon as possible."},
}

func ScoreImpairment(answers domain.ImpairmentAnswers) ImpairmentResult {
	yes := CountYes(answers, instrument.ImpairmentIDs)
	band := impairmentBands[min(yes, len(impairmentBands)-1)]
	return ImpairmentResult{
		YesCount: yes,
		Domains: Domains{
			AcademicWork: answers[1] == domain.Yes,
			Relationship: answers[2] == domain.Yes,
			DailyLife:    answers[3] == domain.Yes,
		},
		Level:          band.level,
		CriterionD:     yes >= ImpairmentCriterionThreshold,
		Description:    band.description,
		Recommendation: band.recommendation,
	}
}
