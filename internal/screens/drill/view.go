package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tably/internal/practice"
	"github.com/abhisek/tably/internal/ui/components"
	"github.com/abhisek/tably/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	if d.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + d.errMsg + "\n\nPress any key to go back")
	}
	if d.session == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nGetting ready...")
	}
	if d.quitConfirm {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("\n\nStop practicing?\n\nY / N")
	}
	return d.renderQuestion(width)
}

func (d *DrillScreen) renderQuestion(width int) string {
	s := d.session
	var b strings.Builder

	// Progress line: answered count and score.
	total := s.Settings.ExerciseCount.String()
	info := fmt.Sprintf("Question %d of %s   %s %d",
		s.Stats.Total+1,
		total,
		lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
		s.Stats.Correct,
	)
	if s.Phase == practice.PhaseFeedback {
		info = fmt.Sprintf("Question %d of %s   %s %d",
			s.Stats.Total,
			total,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.Stats.Correct,
		)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Countdown bar.
	bar := components.ProgressBar{
		Percent:   s.Timer.Fraction(),
		Width:     min(width-8, 50),
		Warn:      true,
		WarnBelow: 0.25,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Question prompt.
	prompt := s.Current
	if prompt != nil {
		style := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true)
		text := prompt.Prompt() + " = ?"
		if prompt.IsChallenge {
			text = lipgloss.NewStyle().Foreground(theme.Accent).Render("★ ") + text
		}
		b.WriteString(style.Render(text))
		b.WriteString("\n\n")
	}

	// Answer input or feedback.
	if s.Phase == practice.PhaseFeedback {
		b.WriteString(d.renderFeedback(width))
	} else {
		answer := "Answer: " + d.input.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answer))
	}

	return b.String()
}

func (d *DrillScreen) renderFeedback(width int) string {
	s := d.session
	last := s.History[len(s.History)-1]

	var line string
	if s.Feedback == practice.FeedbackCorrect {
		line = theme.Correct.Render("Correct! ✓")
	} else {
		line = theme.Incorrect.Render(fmt.Sprintf("Not quite — %s = %d",
			last.Exercise.Prompt(), last.Exercise.Result))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
