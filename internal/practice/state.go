// Package practice drives a bounded run of exercises: generating
// questions, scoring answers, updating mastery and deciding when the
// session is over.
package practice

// Phase is the session's position in the question/feedback/done cycle.
type Phase int

const (
	// PhaseQuestion means an exercise is displayed and awaiting an answer.
	PhaseQuestion Phase = iota

	// PhaseFeedback means the answer outcome is being displayed.
	PhaseFeedback

	// PhaseDone means the session has completed and results are final.
	PhaseDone
)

// Feedback is the transient outcome shown after a submission.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// Stats aggregates the session's answer counts.
type Stats struct {
	Correct int
	Total   int
}
