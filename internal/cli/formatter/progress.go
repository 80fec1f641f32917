package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampBar(pct float64, width int) (float64, int, int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}
	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return pct, width, filled
}

// RenderProgress renders a completion bar like [████░░░░] 45%. Fuller bars
// are greener.
func RenderProgress(pct float64, width int) string {
	pct, width, filled := clampBar(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderCompactBar renders a bare bar in the given style. With a nil style the
// bar is dimmed.
func RenderCompactBar(pct float64, width int, style *lipgloss.Style) string {
	_, width, filled := clampBar(pct, width)
	s := StyleDim
	if style != nil {
		s = *style
	}
	return s.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}
