package formatter

import (
	"fmt"
	"strings"

	"github.com/mindcheck/screener/internal/instrument"
	"github.com/mindcheck/screener/internal/service"
)

const screeningProgressBarWidth = 16

// FormatProgress shows how many items of each instrument are answered.
func FormatProgress(p *service.Progress) string {
	var b strings.Builder
	for _, ip := range p.Instruments {
		meta := instrument.Describe(ip.Instrument)
		pct := 0.0
		if ip.Total > 0 {
			pct = float64(ip.Answered) / float64(ip.Total)
		}
		mark := Dim("○")
		if ip.Done() {
			mark = StyleGreen.Render("✔")
		}
		fmt.Fprintf(&b, "%s %-11s %s %s\n",
			mark, meta.ShortName, RenderProgress(pct, screeningProgressBarWidth),
			Dim(fmt.Sprintf("%d/%d", ip.Answered, ip.Total)))
	}
	if p.Next != "" {
		fmt.Fprintf(&b, "\n%s %s", Dim("Next:"), instrument.Describe(p.Next).Name)
	} else {
		b.WriteString("\n" + StyleGreen.Render("All items answered."))
	}
	return b.String()
}
