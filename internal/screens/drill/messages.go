package drill

import (
	"time"

	"github.com/abhisek/tably/internal/practice"
)

// sessionStartedMsg is sent when the practice session has been created.
type sessionStartedMsg struct {
	Session *practice.Session
	Err     error
}

// tickMsg drives the per-question countdown.
type tickMsg time.Time

// feedbackDoneMsg is sent when the feedback display period ends.
type feedbackDoneMsg struct{}
