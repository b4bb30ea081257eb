package components

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/tably/internal/ui/theme"
)

// ToggleGrid is a horizontal row of numbered toggle cells used for
// selecting practice tables.
type ToggleGrid struct {
	Values  []int // the selectable numbers, in display order
	Cursor  int   // index into Values
	Focused bool
}

// NewToggleGrid creates a toggle grid over the inclusive range [lo, hi].
func NewToggleGrid(lo, hi int) ToggleGrid {
	values := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		values = append(values, v)
	}
	return ToggleGrid{Values: values}
}

// Left moves the cursor one cell left.
func (g *ToggleGrid) Left() {
	if g.Cursor > 0 {
		g.Cursor--
	}
}

// Right moves the cursor one cell right.
func (g *ToggleGrid) Right() {
	if g.Cursor < len(g.Values)-1 {
		g.Cursor++
	}
}

// Current returns the number under the cursor.
func (g *ToggleGrid) Current() int {
	return g.Values[g.Cursor]
}

// View renders the row, marking selected values and the cursor cell.
// The cursor cell is bracketed so rows stay a single line tall.
func (g ToggleGrid) View(selected []int) string {
	var b strings.Builder
	for i, v := range g.Values {
		cell := fmt.Sprintf(" %2d ", v)
		if g.Focused && i == g.Cursor {
			cell = fmt.Sprintf("[%2d]", v)
		}

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if slices.Contains(selected, v) {
			style = lipgloss.NewStyle().
				Foreground(theme.Text).
				Background(theme.Secondary).
				Bold(true)
		}
		if g.Focused && i == g.Cursor {
			style = style.Foreground(theme.Primary).Bold(true)
			if slices.Contains(selected, v) {
				style = style.Foreground(theme.Text)
			}
		}
		b.WriteString(style.Render(cell))
		b.WriteString(" ")
	}
	return b.String()
}
