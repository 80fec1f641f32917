package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mindcheck/screener/internal/domain"
)

// HistoryEntry is one row of the history table. Tier is empty for
// screenings that are still in progress.
type HistoryEntry struct {
	Screening *domain.Screening
	Tier      domain.RiskTier
}

// FormatHistory renders stored screenings, newest first as given.
func FormatHistory(entries []HistoryEntry) string {
	return formatHistory(entries, time.Now())
}

func formatHistory(entries []HistoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No screenings yet. Run 'screener screen' to start one.") + "\n"
	}

	headers := []string{"ID", "NAME", "STATUS", "SOURCE", "RESULT", "STARTED"}
	rows := make([][]string, 0, len(entries))
	completed := 0
	for _, e := range entries {
		sc := e.Screening
		result := Dim("--")
		if sc.IsCompleted() {
			completed++
			result = TierIndicator(e.Tier)
		}
		rows = append(rows, []string{
			TruncID(sc.ID),
			Bold(sc.RespondentName),
			StatusPill(sc.Status),
			SourceBadge(sc.Source),
			result,
			HumanTimestampFrom(sc.CreatedAt, now),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d screening(s), %d completed", len(entries), completed)))
	b.WriteString("\n")
	return b.String()
}
