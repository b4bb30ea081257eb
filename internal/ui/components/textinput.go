package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textinput for typing numeric answers.
type AnswerInput struct {
	Model textinput.Model
}

// NewAnswerInput creates a focused numeric input.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages, letting through only digits and a leading minus.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') && key != "-" {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the current input text.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// NumericValue returns the input parsed as an integer.
func (a AnswerInput) NumericValue() (int, error) {
	return strconv.Atoi(a.Model.Value())
}

// Clear resets the input text.
func (a *AnswerInput) Clear() {
	a.Model.SetValue("")
}
