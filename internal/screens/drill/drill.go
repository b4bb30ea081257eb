// Package drill implements the active practice screen: question display,
// countdown, answer input and feedback.
package drill

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tably/internal/exercise"
	"github.com/abhisek/tably/internal/mastery"
	"github.com/abhisek/tably/internal/practice"
	"github.com/abhisek/tably/internal/router"
	"github.com/abhisek/tably/internal/screen"
	"github.com/abhisek/tably/internal/screens/results"
	"github.com/abhisek/tably/internal/settings"
	"github.com/abhisek/tably/internal/ui/components"
	"github.com/abhisek/tably/internal/ui/layout"
)

// DrillScreen runs one practice session.
type DrillScreen struct {
	cfg         settings.Settings
	gen         *exercise.Generator
	mastery     *mastery.Service
	session     *practice.Session
	input       components.AnswerInput
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a drill screen for the given (already validated) settings.
func New(cfg settings.Settings, gen *exercise.Generator, masterySvc *mastery.Service) *DrillScreen {
	return &DrillScreen{
		cfg:     cfg,
		gen:     gen,
		mastery: masterySvc,
		input:   components.NewAnswerInput("?", 6),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	return tea.Batch(d.startSession(), d.input.Init())
}

func (d *DrillScreen) Title() string {
	return "Practice"
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop practicing"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		return d.handleStarted(msg)

	case tickMsg:
		return d.handleTick()

	case feedbackDoneMsg:
		return d.handleFeedbackDone()

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.acceptingInput() {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

// startSession runs the start-practice logic off the update loop.
func (d *DrillScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		s, err := practice.Start(d.cfg, d.gen, d.mastery)
		return sessionStartedMsg{Session: s, Err: err}
	}
}

func (d *DrillScreen) handleStarted(msg sessionStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		// Both start failures (no tables, generation exhaustion) abort
		// back to setup with a message.
		d.errMsg = msg.Err.Error()
		return d, nil
	}
	d.session = msg.Session
	return d, tickCmd()
}

func (d *DrillScreen) handleTick() (screen.Screen, tea.Cmd) {
	if d.session == nil || d.session.Phase == practice.PhaseDone {
		return d, nil
	}

	// Countdown pauses while the quit dialog is up, but the tick loop
	// stays alive so play resumes cleanly.
	if d.quitConfirm {
		return d, tickCmd()
	}

	if d.session.Tick() {
		// Timer expired: equivalent to submitting no answer.
		_, _ = d.session.SubmitTimeout(context.Background())
		return d, feedbackCmd()
	}

	if d.session.Phase != practice.PhaseQuestion {
		// A submission already stopped the timer; drop this stale tick.
		return d, nil
	}
	return d, tickCmd()
}

func (d *DrillScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if d.session == nil {
		return d, nil
	}

	if !d.session.Advance() {
		sess := d.session
		restart := func() screen.Screen {
			return New(d.cfg, d.gen, d.mastery)
		}
		return d, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: results.New(sess, restart),
			}
		}
	}

	d.input.Clear()
	return d, tea.Batch(tickCmd(), d.input.Init())
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Start failed: any key returns to setup.
	if d.errMsg != "" {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if d.session == nil {
		return d, nil
	}

	if d.quitConfirm {
		switch key {
		case "y", "Y":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			d.quitConfirm = false
		}
		return d, nil
	}

	// Feedback runs on a fixed delay; keys are not consumed during it.
	if d.session.Phase == practice.PhaseFeedback {
		if key == "esc" {
			d.quitConfirm = true
		}
		return d, nil
	}

	switch key {
	case "esc":
		d.quitConfirm = true
		return d, nil
	case "enter":
		return d.submit()
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *DrillScreen) submit() (screen.Screen, tea.Cmd) {
	if d.input.Value() == "" {
		return d, nil
	}
	accepted, _ := d.session.Submit(context.Background(), d.input.Value())
	if !accepted {
		return d, nil
	}
	return d, feedbackCmd()
}

func (d *DrillScreen) acceptingInput() bool {
	return d.session != nil &&
		d.session.Phase == practice.PhaseQuestion &&
		!d.quitConfirm
}

// tickCmd schedules the next countdown tick.
func tickCmd() tea.Cmd {
	return tea.Tick(practice.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// feedbackCmd schedules the end of the feedback display.
func feedbackCmd() tea.Cmd {
	return tea.Tick(practice.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}
