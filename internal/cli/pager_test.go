package cli

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mindcheck/screener/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longContent(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %03d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestPager_LoadingUntilSized(t *testing.T) {
	d := teatest.New(t, newPagerModel("Result", "body"))
	assert.Contains(t, d.View(), "Loading")

	d.Resize(80, 20)
	view := stripANSI(d.View())
	assert.Contains(t, view, "Result")
	assert.Contains(t, view, "body")
}

func TestPager_ScrollAndJump(t *testing.T) {
	d := teatest.New(t, newPagerModel("Result", longContent(100)), teatest.WithSize(80, 20))

	view := stripANSI(d.View())
	assert.Contains(t, view, "line 001")
	assert.Contains(t, view, "[TOP]")

	d.Press('j')
	view = stripANSI(d.View())
	assert.NotContains(t, view, "line 001")
	assert.Contains(t, view, "line 002")

	d.Press('G')
	view = stripANSI(d.View())
	assert.Contains(t, view, "line 100")
	assert.Contains(t, view, "[END]")

	d.PressType(tea.KeyHome)
	assert.Contains(t, stripANSI(d.View()), "line 001")
}

func TestPager_QuitKeys(t *testing.T) {
	for _, press := range []func(*teatest.Driver){
		func(d *teatest.Driver) { d.Press('q') },
		func(d *teatest.Driver) { d.PressType(tea.KeyEsc) },
		func(d *teatest.Driver) { d.PressType(tea.KeyCtrlC) },
	} {
		d := teatest.New(t, newPagerModel("Result", "body"), teatest.WithSize(80, 20))
		press(d)
		require.True(t, d.Quitting)
	}
}

func TestPager_ShortContentFits(t *testing.T) {
	d := teatest.New(t, newPagerModel("Result", longContent(3)), teatest.WithSize(80, 40))
	view := stripANSI(d.View())
	assert.Contains(t, view, "line 003")
	assert.Contains(t, view, "[TOP]")
}
