// Package setup implements the settings screen: table selection,
// session length and the start-practice action.
package setup

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/tably/internal/exercise"
	"github.com/abhisek/tably/internal/mastery"
	"github.com/abhisek/tably/internal/router"
	"github.com/abhisek/tably/internal/screen"
	"github.com/abhisek/tably/internal/screens/drill"
	"github.com/abhisek/tably/internal/settings"
	"github.com/abhisek/tably/internal/store"
	"github.com/abhisek/tably/internal/ui/components"
	"github.com/abhisek/tably/internal/ui/layout"
	"github.com/abhisek/tably/internal/ui/theme"
)

// focus zones, top to bottom.
const (
	focusMultiplication = iota
	focusDivision
	focusCount
	focusStart
	focusZones
)

// SetupScreen lets the learner pick tables and session length.
type SetupScreen struct {
	kv      store.KV
	gen     *exercise.Generator
	mastery *mastery.Service

	cfg      settings.Settings
	multGrid components.ToggleGrid
	divGrid  components.ToggleGrid
	countIdx int
	focus    int
	errMsg   string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen, loading persisted settings.
func New(kv store.KV, gen *exercise.Generator, masterySvc *mastery.Service) *SetupScreen {
	cfg := settings.Default()
	if kv != nil {
		cfg, _ = store.LoadSettings(context.Background(), kv)
	}

	countIdx := slices.Index(settings.CountChoices, cfg.ExerciseCount)
	if countIdx < 0 {
		countIdx = 0
	}

	s := &SetupScreen{
		kv:       kv,
		gen:      gen,
		mastery:  masterySvc,
		cfg:      cfg,
		multGrid: components.NewToggleGrid(settings.MinTable, settings.MaxTable),
		divGrid:  components.NewToggleGrid(1, settings.MaxTable),
		countIdx: countIdx,
	}
	s.multGrid.Focused = true
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Practice Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Start"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		s.setFocus(s.focus - 1)
	case "down", "j", "tab":
		s.setFocus((s.focus + 1) % focusZones)
	case "left", "h":
		s.moveHorizontal(-1)
	case "right", "l":
		s.moveHorizontal(1)
	case " ":
		s.toggleCurrent()
	case "enter":
		if s.focus == focusStart {
			return s.startPractice()
		}
		s.toggleCurrent()
	}

	return s, nil
}

func (s *SetupScreen) setFocus(focus int) {
	if focus < 0 {
		focus = focusZones - 1
	}
	s.focus = focus
	s.multGrid.Focused = focus == focusMultiplication
	s.divGrid.Focused = focus == focusDivision
}

func (s *SetupScreen) moveHorizontal(delta int) {
	switch s.focus {
	case focusMultiplication:
		if delta < 0 {
			s.multGrid.Left()
		} else {
			s.multGrid.Right()
		}
	case focusDivision:
		if delta < 0 {
			s.divGrid.Left()
		} else {
			s.divGrid.Right()
		}
	case focusCount:
		n := len(settings.CountChoices)
		s.countIdx = (s.countIdx + delta + n) % n
		s.cfg.ExerciseCount = settings.CountChoices[s.countIdx]
		s.persist()
	}
}

func (s *SetupScreen) toggleCurrent() {
	switch s.focus {
	case focusMultiplication:
		s.cfg.ToggleMultiplication(s.multGrid.Current())
	case focusDivision:
		s.cfg.ToggleDivision(s.divGrid.Current())
	default:
		return
	}
	s.errMsg = ""
	s.persist()
}

// persist writes the settings record after every mutation.
func (s *SetupScreen) persist() {
	if s.kv == nil {
		return
	}
	_ = store.SaveSettings(context.Background(), s.kv, s.cfg.Normalize())
}

// startPractice validates the configuration and pushes the drill screen.
func (s *SetupScreen) startPractice() (screen.Screen, tea.Cmd) {
	if !s.cfg.Normalize().HasTables() {
		s.errMsg = "Pick at least one times table or division table first!"
		return s, nil
	}

	s.errMsg = ""
	cfg := s.cfg.Normalize()
	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: drill.New(cfg, s.gen, s.mastery),
		}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	section := func(label string, focused bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return style.Render("  " + label)
	}

	b.WriteString("\n")
	b.WriteString(section("Multiplication tables", s.focus == focusMultiplication))
	b.WriteString("\n  ")
	b.WriteString(s.multGrid.View(s.cfg.MultiplicationTables))
	b.WriteString("\n\n")

	b.WriteString(section("Division tables", s.focus == focusDivision))
	b.WriteString("\n  ")
	b.WriteString(s.divGrid.View(s.cfg.DivisionTables))
	b.WriteString("\n\n")

	b.WriteString(section("Questions per session", s.focus == focusCount))
	b.WriteString("\n  ")
	b.WriteString(s.renderCountPicker())
	b.WriteString("\n\n")

	start := components.NewButton("START PRACTICE", s.focus == focusStart, nil)
	b.WriteString("  " + start.View())
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SetupScreen) renderCountPicker() string {
	parts := make([]string, 0, len(settings.CountChoices))
	for i, c := range settings.CountChoices {
		label := fmt.Sprintf(" %s ", c)
		if i == s.countIdx {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.Text).
				Background(theme.Secondary).
				Bold(true).
				Render(label))
		} else {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(label))
		}
	}
	return strings.Join(parts, " ")
}
