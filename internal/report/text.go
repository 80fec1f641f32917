package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

const textWidth = 72

func renderText(w io.Writer, doc *Document) error {
	b := bufio.NewWriter(w)

	fmt.Fprintln(b, centered(doc.Title))
	fmt.Fprintln(b, centered("Date: "+doc.Date.Format("2006-01-02")))
	if doc.Respondent != "" {
		fmt.Fprintln(b, centered("Respondent: "+doc.Respondent))
	}
	fmt.Fprintln(b, centered("* "+Disclaimer))
	fmt.Fprintln(b)

	section(b, "Overall assessment")
	fmt.Fprintln(b, doc.Verdict.Title)
	fmt.Fprintln(b)
	fmt.Fprintln(b, plain(doc.Verdict.Message))
	fmt.Fprintln(b)

	section(b, "Scores")
	for _, s := range doc.Scores {
		score := fmt.Sprintf("%d / %d", s.Score, s.Max)
		if s.Detail != "" {
			score += " (" + s.Detail + ")"
		}
		fmt.Fprintf(b, "%-27s %-24s %s\n", s.Instrument, score, s.Level)
		fmt.Fprintf(b, "%27s %s\n", "", s.Interpretation)
	}
	fmt.Fprintln(b)

	section(b, "Diagnostic criteria")
	for _, c := range doc.Criteria {
		fmt.Fprintf(b, "Criterion %-2s %-34s %s\n", c.Key, c.Label, metLabel(c.Met))
	}
	fmt.Fprintln(b)

	if doc.Subtype != nil {
		fmt.Fprintf(b, "Subtype: %s\n", doc.Subtype.Label)
		fmt.Fprintf(b, "  Inattention:               %d/%d\n", doc.Subtype.Inattention, doc.Subtype.Max)
		fmt.Fprintf(b, "  Hyperactivity-impulsivity: %d/%d\n", doc.Subtype.Hyperactivity, doc.Subtype.Max)
		fmt.Fprintln(b)
	}

	section(b, "Current symptoms by category")
	for _, c := range doc.ASRSCategories {
		fmt.Fprintf(b, "%-22s %3d%%  (%d/%d, %s)\n", c.Label, c.Percentage, c.Score, c.MaxScore, c.Band)
	}
	fmt.Fprintln(b)

	section(b, "Childhood symptoms by category")
	for _, c := range doc.WURSCategories {
		fmt.Fprintf(b, "%-22s %3d%%  (%d/%d, %s)\n", c.Label, c.Percentage, c.Score, c.MaxScore, c.Band)
	}
	fmt.Fprintln(b)

	section(b, "Recommendations")
	for _, a := range doc.Actions {
		marker := " "
		if a.Urgent {
			marker = "!"
		}
		fmt.Fprintf(b, "%s %s\n", marker, a.Title)
		fmt.Fprintf(b, "    %s\n", a.Description)
	}

	return eris.Wrap(b.Flush(), "report: write text")
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func centered(s string) string {
	n := len([]rune(s))
	if n >= textWidth {
		return s
	}
	return strings.Repeat(" ", (textWidth-n)/2) + s
}

// plain drops the markdown emphasis used in verdict messages.
func plain(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
