// Package results implements the session summary screen.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tably/internal/practice"
	"github.com/abhisek/tably/internal/router"
	"github.com/abhisek/tably/internal/screen"
	"github.com/abhisek/tably/internal/ui/layout"
	"github.com/abhisek/tably/internal/ui/theme"
)

// ResultsScreen shows the finished session's stats and history.
type ResultsScreen struct {
	session *practice.Session
	restart func() screen.Screen
	scroll  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a completed session. restart builds
// a fresh practice screen; it is injected by the caller so results stays
// independent of the drill package.
func New(sess *practice.Session, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{session: sess, restart: restart}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Practice again"},
		{Key: "Esc", Description: "Settings"},
		{Key: "↑↓", Description: "Scroll"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r", "R":
		if r.restart == nil {
			return r, nil
		}
		next := r.restart()
		return r, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	case "esc", "enter", "q":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if r.scroll > 0 {
			r.scroll--
		}
	case "down", "j":
		if r.scroll < len(r.session.History)-1 {
			r.scroll++
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	s := r.session
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Practice complete!"))
	b.WriteString("\n\n")

	incorrect := s.Stats.Total - s.Stats.Correct
	statsLine := fmt.Sprintf("%s %d correct      %s %d incorrect",
		lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
		s.Stats.Correct,
		lipgloss.NewStyle().Foreground(theme.Error).Render("✗"),
		incorrect,
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 44)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	// History window sized to the remaining height.
	visible := height - 8
	if visible < 1 {
		visible = 1
	}
	history := s.History
	start := min(r.scroll, len(history))
	end := min(start+visible, len(history))

	for _, attempt := range history[start:end] {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !attempt.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		line := fmt.Sprintf("%s  %s = %d", mark,
			attempt.Exercise.Prompt(), attempt.Exercise.Result)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
