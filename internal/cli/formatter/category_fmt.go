package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mindcheck/screener/internal/scoring"
)

const categoryBarWidth = 20

// FormatCategories renders one bar per category, colored by band.
func FormatCategories(title string, cats []scoring.CategoryScore) string {
	if len(cats) == 0 {
		return RenderBox(title, Dim("No categories."))
	}

	labelWidth := 0
	for _, c := range cats {
		labelWidth = max(labelWidth, lipgloss.Width(categoryLabel(c)))
	}

	var b strings.Builder
	for i, c := range cats {
		if i > 0 {
			b.WriteString("\n")
		}
		label := categoryLabel(c)
		style := BandStyle(c.Band)
		fmt.Fprintf(&b, "%s%s  %s %s %s",
			label,
			strings.Repeat(" ", labelWidth-lipgloss.Width(label)),
			RenderCompactBar(float64(c.Percentage)/100, categoryBarWidth, &style),
			style.Render(fmt.Sprintf("%3d%%", c.Percentage)),
			Dim(fmt.Sprintf("%d/%d", c.Score, c.MaxScore)),
		)
	}
	return RenderBox(title, b.String())
}

func categoryLabel(c scoring.CategoryScore) string {
	if c.Icon == "" {
		return c.Label
	}
	return c.Icon + " " + c.Label
}
