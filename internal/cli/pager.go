package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mindcheck/screener/internal/cli/formatter"
)

type pagerKeyMap struct {
	Quit   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

func defaultPagerKeys() pagerKeyMap {
	return pagerKeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	}
}

// pagerViewportKeyMap scrolls with arrows, pages and vi-style j/k.
func pagerViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ", "f")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u", "u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d", "d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

// pagerModel shows pre-rendered content in a scrollable viewport with a
// title bar and a scroll indicator.
type pagerModel struct {
	title   string
	content string
	keys    pagerKeyMap
	vp      viewport.Model
	ready   bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content, keys: defaultPagerKeys()}
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-lipgloss.Height(m.header())-lipgloss.Height(m.footer()), 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, height)
			m.vp.KeyMap = pagerViewportKeyMap()
			m.vp.MouseWheelEnabled = true
			m.vp.MouseWheelDelta = 3
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = height
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.vp.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return m.header() + "\n" + m.vp.View() + "\n" + m.footer()
}

func (m pagerModel) header() string {
	return formatter.StyleHeader.Render(m.title)
}

func (m pagerModel) footer() string {
	help := []string{
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
		m.keys.Top.Help().Key + "/" + m.keys.Bottom.Help().Key + " top/bottom",
		"↑/↓ scroll",
	}
	return formatter.Dim(strings.Join(help, " · ")) + "  " + scrollIndicator(m.vp)
}

// scrollIndicator returns a dim scroll position string for the footer.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}

func runPager(title, content string) error {
	p := tea.NewProgram(newPagerModel(title, content), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
