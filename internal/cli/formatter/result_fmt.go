package formatter

import (
	"fmt"
	"strings"

	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/instrument"
	"github.com/mindcheck/screener/internal/scoring"
)

// ResultOptions controls the optional sections of FormatResult.
type ResultOptions struct {
	Categories bool
}

// FormatResult renders a scored screening as a stack of boxes: verdict,
// scores, criteria, optional category breakdowns and next actions. sc may
// be nil for results that were never stored.
func FormatResult(sc *domain.Screening, r scoring.Result, opts ResultOptions) string {
	var sections []string

	sections = append(sections, formatVerdict(sc, r))
	sections = append(sections, RenderBox("Scores", formatScores(r)))
	sections = append(sections, RenderBox("Diagnostic criteria", formatCriteria(r)))
	if opts.Categories {
		sections = append(sections, FormatCategories("Current symptoms by category", r.ASRSCategories()))
		sections = append(sections, FormatCategories("Childhood symptoms by category", r.WURSCategories()))
	}
	sections = append(sections, FormatActions(r.Composite.Actions))
	sections = append(sections, Dim("This is a screening aid for reference only and not a medical diagnosis."))

	return strings.Join(sections, "\n\n") + "\n"
}

func formatVerdict(sc *domain.Screening, r scoring.Result) string {
	c := r.Composite
	var b strings.Builder

	b.WriteString(TierStyle(c.Tier).Bold(true).Render(c.Title))
	b.WriteString("\n")
	b.WriteString(TierIndicator(c.Tier))
	b.WriteString(Dim(fmt.Sprintf("  urgency %s", c.Urgency)))
	b.WriteString("\n\n")
	b.WriteString(Emphasize(c.Message))

	meta := []string{HumanDate(r.ComputedAt)}
	if sc != nil {
		if sc.RespondentName != "" {
			meta = append([]string{sc.RespondentName}, meta...)
		}
		meta = append(meta, sc.DisplayID())
	}
	b.WriteString("\n\n")
	b.WriteString(Dim(strings.Join(meta, " · ")))

	return RenderAccentBox("Result", b.String(), TierColor(c.Tier))
}

func formatScores(r scoring.Result) string {
	partAMax := len(instrument.ASRSPartA) * instrument.MaxItemValue
	headers := []string{"INSTRUMENT", "SCORE", "LEVEL"}
	rows := [][]string{
		{
			Bold("ASRS") + Dim(" current"),
			fmt.Sprintf("%d/%d", r.ASRS.Total, instrument.Describe(domain.InstrumentASRS).MaxScore) +
				Dim(fmt.Sprintf("  Part A %d/%d", r.ASRS.PartA, partAMax)),
			LevelPill(r.ASRS.Level),
		},
		{
			Bold("Impairment"),
			fmt.Sprintf("%d/%d", r.Impairment.YesCount, instrument.Describe(domain.InstrumentImpairment).MaxScore) +
				Dim(" areas"),
			LevelPill(r.Impairment.Level),
		},
		{
			Bold("WURS") + Dim(" childhood"),
			fmt.Sprintf("%d/%d", r.WURS.Total, instrument.Describe(domain.InstrumentWURS).MaxScore),
			LevelPill(r.WURS.Level),
		},
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(r.ASRS.Summary + "\n")
	b.WriteString(Dim(r.Impairment.Description) + "\n")
	b.WriteString(Dim(r.WURS.Description))

	if r.ASRS.Subtype != domain.SubtypeUnknown {
		subMax := len(instrument.ASRSInattention) * instrument.MaxItemValue
		b.WriteString("\n\n")
		b.WriteString(Bold("Subtype: ") + StylePurple.Render(r.ASRS.Subtype.Label()))
		b.WriteString(Dim(fmt.Sprintf("  (inattention %d/%d, hyperactivity-impulsivity %d/%d)",
			r.ASRS.Inattention, subMax, r.ASRS.Hyperactivity, subMax)))
	}
	return b.String()
}

func formatCriteria(r scoring.Result) string {
	c := r.Composite.Criteria
	rows := [][]string{
		{"A", "Current symptoms (ASRS Part A)", CriterionMark(c.A)},
		{"B", "Onset in childhood (WURS)", CriterionMark(c.B)},
		{"D", "Impairment in 2 or more areas", CriterionMark(c.D)},
	}
	return strings.TrimRight(RenderTable([]string{"", "CRITERION", "STATUS"}, rows), "\n")
}

// FormatActions renders the recommended next steps in priority order.
func FormatActions(actions []scoring.Action) string {
	var b strings.Builder
	for i, a := range actions {
		if i > 0 {
			b.WriteString("\n")
		}
		title := Bold(a.Title)
		if a.Urgent {
			title = StyleRed.Bold(true).Render(a.Title)
		}
		fmt.Fprintf(&b, "%s %s\n   %s", a.Icon, title, Dim(a.Description))
	}
	return RenderBox("Next steps", b.String())
}
