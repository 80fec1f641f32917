package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mindcheck/screener/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = ColorOrange
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TierColor maps a composite tier from red (very high) to green (low).
func TierColor(tier domain.RiskTier) lipgloss.Color {
	switch tier {
	case domain.RiskVeryHigh:
		return ColorRed
	case domain.RiskHigh:
		return ColorOrange
	case domain.RiskModerate:
		return ColorYellow
	case domain.RiskLowToModerate:
		return ColorBlue
	case domain.RiskLow:
		return ColorGreen
	default:
		return ColorDim
	}
}

func TierStyle(tier domain.RiskTier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TierColor(tier))
}

// TierIndicator returns a colored tier label such as "● VERY HIGH".
func TierIndicator(tier domain.RiskTier) string {
	if !tier.Valid() {
		return StyleDim.Render("○ --")
	}
	label := strings.ToUpper(strings.ReplaceAll(string(tier), "_", " "))
	return TierStyle(tier).Render("● " + label)
}

func levelStyle(level string) lipgloss.Style {
	switch level {
	case "high", "severe":
		return StyleRed
	case "significant":
		return StyleOrange
	case "moderate", "mild":
		return StyleYellow
	case "low", "none":
		return StyleGreen
	default:
		return StyleDim
	}
}

// LevelPill renders a symptom or impairment level as a short colored pill.
func LevelPill[L ~string](level L) string {
	s := string(level)
	if s == "" {
		return StyleDim.Render("--")
	}
	return levelStyle(s).Render("■ " + strings.ToUpper(s[:1]) + s[1:])
}

// BandStyle colors a category band.
func BandStyle(b domain.Band) lipgloss.Style {
	return levelStyle(string(b))
}

// CriterionMark renders a met or unmet criterion.
func CriterionMark(met bool) string {
	if met {
		return StyleRed.Render("✔ met")
	}
	return StyleDim.Render("✖ not met")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Emphasize renders **double-starred** spans in bold and drops the markers.
// An unmatched marker is left as is.
func Emphasize(text string) string {
	var b strings.Builder
	for {
		start := strings.Index(text, "**")
		if start < 0 {
			break
		}
		end := strings.Index(text[start+2:], "**")
		if end < 0 {
			break
		}
		b.WriteString(text[:start])
		b.WriteString(Bold(text[start+2 : start+2+end]))
		text = text[start+2+end+2:]
	}
	b.WriteString(text)
	return b.String()
}
