// Package report renders a scored screening into exportable documents.
package report

import (
	"fmt"
	"time"

	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
	"github.com/mindcheck/screener/internal/scoring"
)

const (
	DocumentTitle = "ADHD Self-Screening Result"
	Disclaimer    = "This result is a screening aid for reference only and not a medical diagnosis. Please consult a specialist."
)

// Document is the read-only view every export format renders.
type Document struct {
	Title          string                  `json:"title" yaml:"title"`
	ScreeningID    string                  `json:"screening_id,omitempty" yaml:"screening_id,omitempty"`
	Respondent     string                  `json:"respondent,omitempty" yaml:"respondent,omitempty"`
	Date           time.Time               `json:"date" yaml:"date"`
	Verdict        Verdict                 `json:"verdict" yaml:"verdict"`
	Scores         []ScoreRow              `json:"scores" yaml:"scores"`
	Criteria       []CriterionRow          `json:"criteria" yaml:"criteria"`
	Subtype        *SubtypeSection         `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	ASRSCategories []scoring.CategoryScore `json:"asrs_categories" yaml:"asrs_categories"`
	WURSCategories []scoring.CategoryScore `json:"wurs_categories" yaml:"wurs_categories"`
	Actions        []scoring.Action        `json:"actions" yaml:"actions"`
	Disclaimer     string                  `json:"disclaimer" yaml:"disclaimer"`
}

type Verdict struct {
	Tier    domain.RiskTier `json:"tier" yaml:"tier"`
	Urgency domain.Urgency  `json:"urgency" yaml:"urgency"`
	Title   string          `json:"title" yaml:"title"`
	Message string          `json:"message" yaml:"message"`
}

type ScoreRow struct {
	Instrument     string `json:"instrument" yaml:"instrument"`
	Score          int    `json:"score" yaml:"score"`
	Max            int    `json:"max" yaml:"max"`
	Detail         string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Level          string `json:"level" yaml:"level"`
	Interpretation string `json:"interpretation" yaml:"interpretation"`
}

type CriterionRow struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Met   bool   `json:"met" yaml:"met"`
}

type SubtypeSection struct {
	Subtype       domain.Subtype `json:"subtype" yaml:"subtype"`
	Label         string         `json:"label" yaml:"label"`
	Inattention   int            `json:"inattention" yaml:"inattention"`
	Hyperactivity int            `json:"hyperactivity" yaml:"hyperactivity"`
	Max           int            `json:"max" yaml:"max"`
}

// Build assembles the document for a result. sc may be nil for results that
// were never stored.
func Build(sc *domain.Screening, r scoring.Result) *Document {
	asrsMax := instrument.Describe(domain.InstrumentASRS).MaxScore
	doc := &Document{
		Title: DocumentTitle,
		Date:  r.ComputedAt,
		Verdict: Verdict{
			Tier:    r.Composite.Tier,
			Urgency: r.Composite.Urgency,
			Title:   r.Composite.Title,
			Message: r.Composite.Message,
		},
		Scores: []ScoreRow{
			{
				Instrument:     "ASRS (current symptoms)",
				Score:          r.ASRS.Total,
				Max:            asrsMax,
				Detail:         fmt.Sprintf("Part A %d/%d", r.ASRS.PartA, len(instrument.ASRSPartA)*instrument.MaxItemValue),
				Level:          string(r.ASRS.Level),
				Interpretation: r.ASRS.Summary,
			},
			{
				Instrument:     "Functional impairment",
				Score:          r.Impairment.YesCount,
				Max:            instrument.Describe(domain.InstrumentImpairment).MaxScore,
				Detail:         "areas of life",
				Level:          string(r.Impairment.Level),
				Interpretation: r.Impairment.Description,
			},
			{
				Instrument:     "WURS (childhood symptoms)",
				Score:          r.WURS.Total,
				Max:            instrument.Describe(domain.InstrumentWURS).MaxScore,
				Level:          string(r.WURS.Level),
				Interpretation: r.WURS.Description,
			},
		},
		Criteria: []CriterionRow{
			{Key: "A", Label: "Current symptoms (ASRS Part A)", Met: r.Composite.Criteria.A},
			{Key: "B", Label: "Onset in childhood (WURS)", Met: r.Composite.Criteria.B},
			{Key: "D", Label: "Impairment in 2 or more areas", Met: r.Composite.Criteria.D},
		},
		ASRSCategories: r.ASRSCategories(),
		WURSCategories: r.WURSCategories(),
		Actions:        append([]scoring.Action(nil), r.Composite.Actions...),
		Disclaimer:     Disclaimer,
	}
	if r.ASRS.Subtype != domain.SubtypeUnknown {
		doc.Subtype = &SubtypeSection{
			Subtype:       r.ASRS.Subtype,
			Label:         r.ASRS.Subtype.Label(),
			Inattention:   r.ASRS.Inattention,
			Hyperactivity: r.ASRS.Hyperactivity,
			Max:           len(instrument.ASRSInattention) * instrument.MaxItemValue,
		}
	}
	if sc != nil {
		doc.ScreeningID = sc.ID
		doc.Respondent = sc.RespondentName
	}
	return doc
}

func metLabel(met bool) string {
	if met {
		return "met"
	}
	return "not met"
}
