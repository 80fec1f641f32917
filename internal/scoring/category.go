package scoring

import (
	"math"

	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
)

type CategoryScore struct {
	Key         string      `json:"key" yaml:"key"`
	Label       string      `json:"label" yaml:"label"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Score       int         `json:"score" yaml:"score"`
	MaxScore    int         `json:"max_score" yaml:"max_score"`
	Percentage  int         `json:"percentage" yaml:"percentage"`
	Band        domain.Band `json:"band" yaml:"band"`
}

// AnalyzeCategories scores each category in table order. Categories may
// overlap, so their scores need not add up to the instrument total.
func AnalyzeCategories(answers domain.OrdinalAnswers, table []instrument.Category) []CategoryScore {
	out := make([]CategoryScore, 0, len(table))
	for _, c := range table {
		score := Sum(answers, c.ItemIDs)
		maxScore := len(c.ItemIDs) * instrument.MaxItemValue
		pct := Percentage(score, maxScore)
		out = append(out, CategoryScore{
			Key:         c.Key,
			Label:       c.Label,
			Description: c.Description,
			Icon:        c.Icon,
			Score:       score,
			MaxScore:    maxScore,
			Percentage:  pct,
			Band:        SeverityBand(pct),
		})
	}
	return out
}

// Percentage is 100*score/maxScore rounded half up, or 0 for an empty
// category.
func Percentage(score, maxScore int) int {
	if maxScore == 0 {
		return 0
	}
	return int(math.Floor(100*float64(score)/float64(maxScore) + 0.5))
}

// SeverityBand maps a percentage to a display band.
func SeverityBand(pct int) domain.Band {
	switch {
	case pct >= 75:
		return domain.BandHigh
	case pct >= 50:
		return domain.BandModerate
	default:
		return domain.BandLow
	}
}
