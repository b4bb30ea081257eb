package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tably/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar, used for the
// per-question countdown and the mastery display.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int

	// Warn switches the fill color when the bar drops below WarnBelow.
	Warn      bool
	WarnBelow float64
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, Width: width}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	barWidth := p.Width - lipgloss.Width(result)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fill := theme.Secondary
	if p.Warn && p.Percent < p.WarnBelow {
		fill = theme.Error
	}

	result += lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	return result
}

// ScoreBar renders a 0-max score as a compact cell bar like "●●●●○○○○○○ 4/10".
func ScoreBar(score, max int) string {
	fullStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	emptyStyle := lipgloss.NewStyle().Foreground(theme.Border)

	var b strings.Builder
	for i := 0; i < max; i++ {
		if i < score {
			b.WriteString(fullStyle.Render("●"))
		} else {
			b.WriteString(emptyStyle.Render("○"))
		}
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf(" %d/%d", score, max)))
	return b.String()
}
