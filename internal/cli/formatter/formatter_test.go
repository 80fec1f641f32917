package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mindcheck/screener/internal/clinic"
	"github.com/mindcheck/screener/internal/domain"
	"github.com/mindcheck/screener/internal/scoring"
	"github.com/mindcheck/screener/internal/service"
	"github.com/mindcheck/screener/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var fmtNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func TestHumanDateFrom(t *testing.T) {
	assert.Equal(t, "Today", HumanDateFrom(fmtNow.Add(-time.Hour), fmtNow))
	assert.Equal(t, "Yesterday", HumanDateFrom(fmtNow.AddDate(0, 0, -1), fmtNow))
	assert.Equal(t, "Sep 30, 2022", HumanDateFrom(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), fmtNow))
}

func TestHumanTimestampFrom(t *testing.T) {
	assert.Equal(t, "Just now", HumanTimestampFrom(fmtNow, fmtNow))
	assert.Equal(t, "5m ago", HumanTimestampFrom(fmtNow.Add(-5*time.Minute), fmtNow))
	assert.Equal(t, "2h ago", HumanTimestampFrom(fmtNow.Add(-2*time.Hour), fmtNow))
	assert.Equal(t, "Mar 13, 2025", HumanTimestampFrom(fmtNow.Add(-48*time.Hour), fmtNow))
}

func TestTierIndicator(t *testing.T) {
	assert.Equal(t, "● VERY HIGH", stripANSI(TierIndicator(domain.RiskVeryHigh)))
	assert.Equal(t, "● LOW TO MODERATE", stripANSI(TierIndicator(domain.RiskLowToModerate)))
	assert.Equal(t, "○ --", stripANSI(TierIndicator("")))
}

func TestLevelPill(t *testing.T) {
	assert.Equal(t, "■ High", stripANSI(LevelPill(domain.SymptomHigh)))
	assert.Equal(t, "■ Significant", stripANSI(LevelPill(domain.ImpairmentSignificant)))
	assert.Equal(t, "--", stripANSI(LevelPill(domain.SymptomLevel(""))))
}

func TestEmphasize(t *testing.T) {
	assert.Equal(t, "see a doctor now", stripANSI(Emphasize("see a **doctor** now")))
	assert.Equal(t, "a b", stripANSI(Emphasize("**a** **b**")))
	assert.Equal(t, "open **marker", stripANSI(Emphasize("open **marker")))
	assert.Equal(t, "plain", Emphasize("plain"))
}

func TestStatusPillAndSource(t *testing.T) {
	assert.Contains(t, stripANSI(StatusPill(domain.ScreeningInProgress)), "In progress")
	assert.Contains(t, stripANSI(StatusPill(domain.ScreeningCompleted)), "Completed")
	assert.Equal(t, "file", stripANSI(SourceBadge(domain.SourceFile)))
	assert.Equal(t, "--", stripANSI(SourceBadge("")))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "abcdef12", stripANSI(TruncID("abcdef1234567890")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "[░░░░░░░░░░]   0%"},
		{0.5, "[█████░░░░░]  50%"},
		{1, "[██████████] 100%"},
		{1.5, "[██████████] 100%"},
		{-1, "[░░░░░░░░░░]   0%"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, stripANSI(RenderProgress(tc.pct, 10)))
	}
}

func TestRenderCompactBar(t *testing.T) {
	got := stripANSI(RenderCompactBar(0.25, 4, nil))
	assert.Equal(t, "█░░░", got)
	assert.Equal(t, "██", stripANSI(RenderCompactBar(1, 1, &StyleRed)))
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{{StyleRed.Render("long cell"), "x"}, {"s", "y"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestFormatResult(t *testing.T) {
	answers := testutil.AnswerSet(24, 48, 3, 80)
	sc := testutil.NewTestScreening("Jordan", testutil.WithAnswers(answers))
	r := scoring.Assemble(answers, fmtNow)

	out := stripANSI(FormatResult(sc, r, ResultOptions{}))
	assert.Contains(t, out, r.Composite.Title)
	assert.Contains(t, out, "VERY HIGH")
	assert.Contains(t, out, "72/72")
	assert.Contains(t, out, "Part A 24/24")
	assert.Contains(t, out, "Subtype: Combined")
	assert.Contains(t, out, "✔ met")
	assert.Contains(t, out, "Act soon")
	assert.Contains(t, out, "Jordan")
	assert.Contains(t, out, sc.DisplayID())
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "BY CATEGORY")

	withCats := stripANSI(FormatResult(nil, r, ResultOptions{Categories: true}))
	assert.Contains(t, withCats, "CURRENT SYMPTOMS BY CATEGORY")
	assert.Contains(t, withCats, "CHILDHOOD SYMPTOMS BY CATEGORY")
}

func TestFormatResult_LowHasNoSubtype(t *testing.T) {
	r := scoring.Assemble(testutil.AnswerSet(2, 0, 0, 5), fmtNow)
	out := stripANSI(FormatResult(nil, r, ResultOptions{}))
	assert.NotContains(t, out, "Subtype:")
	assert.Contains(t, out, "✖ not met")
}

func TestFormatCategories(t *testing.T) {
	cats := []scoring.CategoryScore{
		{Key: "a", Label: "Attention", Icon: "🎯", Score: 8, MaxScore: 8, Percentage: 100, Band: domain.BandHigh},
		{Key: "b", Label: "Mood", Score: 0, MaxScore: 0, Percentage: 0, Band: domain.BandLow},
	}
	out := stripANSI(FormatCategories("Breakdown", cats))
	assert.Contains(t, out, "🎯 Attention")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "0/0")

	assert.Contains(t, stripANSI(FormatCategories("Empty", nil)), "No categories.")
}

func TestFormatHistory(t *testing.T) {
	done := testutil.NewTestScreening("Alex", testutil.WithCompletedAt(fmtNow), testutil.WithCreatedAt(fmtNow.Add(-2*time.Hour)))
	open := testutil.NewTestScreening("Sam", testutil.WithCreatedAt(fmtNow.Add(-time.Minute*10)))

	out := stripANSI(formatHistory([]HistoryEntry{
		{Screening: done, Tier: domain.RiskHigh},
		{Screening: open},
	}, fmtNow))

	assert.Contains(t, out, done.DisplayID())
	assert.Contains(t, out, "Alex")
	assert.Contains(t, out, "● HIGH")
	assert.Contains(t, out, "In progress")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "10m ago")
	assert.Contains(t, out, "2 screening(s), 1 completed")

	assert.Contains(t, stripANSI(formatHistory(nil, fmtNow)), "No screenings yet")
}

func TestFormatProgress(t *testing.T) {
	p := &service.Progress{
		Instruments: []service.InstrumentProgress{
			{Instrument: domain.InstrumentASRS, Answered: 18, Total: 18},
			{Instrument: domain.InstrumentImpairment, Answered: 1, Total: 3},
			{Instrument: domain.InstrumentWURS, Answered: 0, Total: 25},
		},
		Next: domain.InstrumentImpairment,
	}
	out := stripANSI(FormatProgress(p))
	assert.Contains(t, out, "18/18")
	assert.Contains(t, out, "1/3")
	assert.Contains(t, out, "0/25")
	assert.Contains(t, out, "Next:")

	p.Next = ""
	assert.Contains(t, stripANSI(FormatProgress(p)), "All items answered.")
}

func TestFormatClinics(t *testing.T) {
	out := stripANSI(FormatClinics("Busan", clinic.ByRegion("Busan"), []SearchLink{
		{Provider: clinic.ProviderNaver, URL: "https://map.naver.com/v5/search/x"},
	}))
	assert.Contains(t, out, "CLINICS IN BUSAN")
	assert.Contains(t, out, "Pusan National University Hospital")
	assert.Contains(t, out, "051-240-7314")
	assert.Contains(t, out, "naver")

	empty := stripANSI(FormatClinics("Jeju", nil, nil))
	assert.Contains(t, empty, "No clinics listed")
}
