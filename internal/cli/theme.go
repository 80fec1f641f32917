package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mindcheck/screener/internal/cli/formatter"
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// screenerHuhTheme styles questionnaire pages in the formatter palette. Each
// item is an inline select, so the arrows and the chosen option carry the
// accent while the item text stays plain.
func screenerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = fg(formatter.ColorHeader).Bold(true).MarginBottom(1)
	t.Group.Description = fg(formatter.ColorDim).Italic(true).MarginBottom(1)

	f := &t.Focused
	f.Base = f.Base.BorderForeground(formatter.ColorHeader)
	f.Title = fg(formatter.ColorFg).Bold(true)
	f.Description = fg(formatter.ColorDim)
	f.ErrorIndicator = fg(formatter.ColorRed)
	f.ErrorMessage = fg(formatter.ColorRed)
	f.NextIndicator = fg(formatter.ColorHeader).MarginLeft(1)
	f.PrevIndicator = fg(formatter.ColorHeader).MarginRight(1)
	f.SelectSelector = fg(formatter.ColorHeader)
	f.SelectedOption = fg(formatter.ColorGreen).Bold(true)
	f.UnselectedOption = fg(formatter.ColorFg)
	f.FocusedButton = fg(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	f.BlurredButton = fg(formatter.ColorDim).Padding(0, 1)
	f.TextInput.Cursor = fg(formatter.ColorHeader)
	f.TextInput.Prompt = fg(formatter.ColorHeader)
	f.TextInput.Placeholder = fg(formatter.ColorDim)

	// Answered items on the page stay readable but recede.
	b := &t.Blurred
	b.Base = b.Base.BorderForeground(formatter.ColorDim)
	b.Title = fg(formatter.ColorDim)
	b.SelectedOption = fg(formatter.ColorGreen)
	b.UnselectedOption = fg(formatter.ColorDim)
	b.NextIndicator = lipgloss.NewStyle()
	b.PrevIndicator = lipgloss.NewStyle()
	b.TextInput.Prompt = fg(formatter.ColorDim)
	b.TextInput.Text = fg(formatter.ColorDim)

	return t
}
