package scoring

import (
	"strings"

	"github.com/mindcheck/screener/internal/domain"
)

// Criteria holds the three diagnostic gates.
type Criteria struct {
	A bool `json:"a" yaml:"a"` // current symptoms
	B bool `json:"b" yaml:"b"` // childhood onset
	D bool `json:"d" yaml:"d"` // functional impairment
}

// CompositeInput is everything the composite interpreter looks at. The
// levels and yes count only shape the message text.
type CompositeInput struct {
	Criteria Criteria
	ASRS     domain.SymptomLevel
	WURS     domain.SymptomLevel
	YesCount int
}

type Composite struct {
	Tier     domain.RiskTier `json:"tier" yaml:"tier"`
	Title    string          `json:"title" yaml:"title"`
	Message  string          `json:"message" yaml:"message"`
	Urgency  domain.Urgency  `json:"urgency" yaml:"urgency"`
	Criteria Criteria        `json:"criteria" yaml:"criteria"`
	Actions  []Action        `json:"actions" yaml:"actions"`
}

type compositeRule struct {
	match   func(Criteria) bool
	tier    domain.RiskTier
	urgency domain.Urgency
	title   string
	message func(CompositeInput) string
}

// compositeRules is evaluated top to bottom and the first match wins. The
// last rule always matches.
var compositeRules = []compositeRule{
	{
		match:   func(c Criteria) bool { return c.A && c.B && c.D },
		tier:    domain.RiskVeryHigh,
		urgency: domain.UrgencyHigh,
		title:   "🔔 ADHD is very likely",
		message: func(CompositeInput) string {
			return lines(
				"Current symptoms (ASRS), childhood symptoms (WURS) and functional impairment all show ADHD traits.",
				"",
				"**A diagnosis by a psychiatrist is strongly recommended.**",
				"",
				disclaimer,
			)
		},
	},
	{
		match:   func(c Criteria) bool { return c.A && c.D },
		tier:    domain.RiskHigh,
		urgency: domain.UrgencyHigh,
		title:   "⚠️ ADHD is likely",
		message: func(in CompositeInput) string {
			note := ""
			if in.WURS == domain.SymptomLow {
				note = "Your childhood recall score was low, though. Memories may be uncertain or symptoms may have started in adulthood, so discuss this with a specialist."
			}
			return lines(
				"Current symptoms and difficulties in daily life were found.",
				"",
				"**A specialist consultation is recommended.**",
				"",
				note,
			)
		},
	},
	{
		match:   func(c Criteria) bool { return c.A },
		tier:    domain.RiskModerate,
		urgency: domain.UrgencyModerate,
		title:   "💡 Some ADHD symptoms were found",
		message: func(in CompositeInput) string {
			qualifier := "your childhood recall score was low."
			if in.YesCount < ImpairmentCriterionThreshold {
				qualifier = "no clear difficulty in daily life was reported."
			}
			return lines(
				"Current ADHD symptoms were found, but "+qualifier,
				"",
				"If the discomfort continues, consider talking to a professional.",
			)
		},
	},
	{
		match:   func(c Criteria) bool { return c.D },
		tier:    domain.RiskLowToModerate,
		urgency: domain.UrgencyModerate,
		title:   "🤔 Difficulties in daily life were found",
		message: func(CompositeInput) string {
			return lines(
				"You reported difficulties in daily life, but your ADHD symptom scores were low.",
				"",
				"Other causes such as depression, anxiety or sleep problems are possible, so a professional consultation is recommended.",
			)
		},
	},
	{
		match:   func(Criteria) bool { return true },
		tier:    domain.RiskLow,
		urgency: domain.UrgencyLow,
		title:   "✅ ADHD symptoms are unlikely",
		message: func(CompositeInput) string {
			return lines(
				"No clear ADHD symptoms appeared in this screening.",
				"",
				"If difficulties in daily life persist, consider a professional consultation about other causes.",
			)
		},
	},
}

const disclaimer = "This is a screening aid for reference only and not a medical diagnosis."

// Interpret applies the composite decision table.
func Interpret(in CompositeInput) Composite {
	for _, r := range compositeRules {
		if !r.match(in.Criteria) {
			continue
		}
		return Composite{
			Tier:     r.tier,
			Title:    r.title,
			Message:  r.message(in),
			Urgency:  r.urgency,
			Criteria: in.Criteria,
			Actions:  NextActions(r.tier, r.urgency),
		}
	}
	// unreachable: the last rule matches everything
	return Composite{Tier: domain.RiskLow, Urgency: domain.UrgencyLow, Criteria: in.Criteria}
}

func lines(parts ...string) string {
	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}
