package scoring

import (
	"sort"

	"github.com/mindcheck/screener/internal/domain"
)

// Action is a recommended next step. Lower priority sorts first.
type Action struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Priority    int    `json:"priority" yaml:"priority"`
	Urgent      bool   `json:"urgent,omitempty" yaml:"urgent,omitempty"`
}

// NextActions builds the action list for a tier, sorted by priority with
// ties kept in insertion order.
func NextActions(tier domain.RiskTier, urgency domain.Urgency) []Action {
	high := urgency == domain.UrgencyHigh

	actions := []Action{
		{
			Icon:        "🏥",
			Title:       "Consult a specialist",
			Description: "Get a diagnosis from a psychiatrist",
			Priority:    pick(high, 1, 2),
		},
		{
			Icon:        "📄",
			Title:       "Save your results",
			Description: "Export a report and bring it to your appointment",
			Priority:    1,
		},
		{
			Icon:        "📚",
			Title:       "Learn about ADHD",
			Description: "Understand ADHD through trustworthy sources",
			Priority:    3,
		},
		{
			Icon:        "🏢",
			Title:       "Find a clinic",
			Description: "Look up psychiatric clinics near you",
			Priority:    pick(high, 1, 3),
		},
	}

	if tier == domain.RiskVeryHigh || tier == domain.RiskHigh {
		urgent := Action{
			Icon:        "⚠️",
			Title:       "Act soon",
			Description: "Seeing a specialist for a diagnosis as soon as possible is strongly recommended.",
			Priority:    0,
			Urgent:      true,
		}
		actions = append([]Action{urgent}, actions...)
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority < actions[j].Priority
	})
	return actions
}

func pick(cond bool, a, b int) int {
	if cond {
		return a
	}
	return b
}
