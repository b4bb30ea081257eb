package practice

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/tably/internal/exercise"
	"github.com/abhisek/tably/internal/mastery"
	"github.com/abhisek/tably/internal/settings"
)

// ErrNoTables is returned when practice starts with no tables selected.
var ErrNoTables = errors.New("select at least one table to practice")

// ErrNoExercise is returned when the generator cannot produce an exercise.
var ErrNoExercise = errors.New("could not generate an exercise")

// Attempt is one answered question in the session history.
type Attempt struct {
	Exercise *exercise.Exercise
	Correct  bool
}

// Session is the state of one practice run. Created fresh by Start and
// discarded when the learner exits; history is append-only within a run.
type Session struct {
	ID       string
	Settings settings.Settings
	Stats    Stats
	History  []Attempt
	Current  *exercise.Exercise
	Phase    Phase
	Feedback Feedback
	Timer    Countdown

	gen     *exercise.Generator
	mastery *mastery.Service
}

// Start begins a new session: validates the settings, resets stats and
// history, generates the first exercise and starts the countdown.
func Start(cfg settings.Settings, gen *exercise.Generator, masterySvc *mastery.Service) (*Session, error) {
	cfg = cfg.Normalize()
	if !cfg.HasTables() {
		return nil, ErrNoTables
	}

	first := gen.Generate(cfg, masterySvc, nil)
	if first == nil {
		return nil, ErrNoExercise
	}

	s := &Session{
		ID:       uuid.New().String(),
		Settings: cfg,
		Current:  first,
		Phase:    PhaseQuestion,
		gen:      gen,
		mastery:  masterySvc,
	}
	s.Timer.Reset()
	return s, nil
}

// Submit scores a typed answer against the current exercise. The answer
// is correct when it parses as an integer equal to the exercise result.
// Returns false without any state change when there is no current
// exercise or feedback is already showing (double-submission guard).
func (s *Session) Submit(ctx context.Context, answer string) (accepted bool, err error) {
	if s.Current == nil {
		return false, nil
	}
	answer = strings.TrimSpace(answer)
	n, perr := strconv.Atoi(answer)
	correct := perr == nil && n == s.Current.Result
	return s.submit(ctx, correct)
}

// SubmitTimeout records an expired countdown as an unanswered, incorrect
// submission.
func (s *Session) SubmitTimeout(ctx context.Context) (accepted bool, err error) {
	return s.submit(ctx, false)
}

func (s *Session) submit(ctx context.Context, correct bool) (bool, error) {
	if s.Current == nil || s.Phase == PhaseFeedback {
		return false, nil
	}

	s.Timer.Stop()

	s.Phase = PhaseFeedback
	if correct {
		s.Feedback = FeedbackCorrect
		s.Stats.Correct++
	} else {
		s.Feedback = FeedbackIncorrect
	}
	s.Stats.Total++
	s.History = append(s.History, Attempt{Exercise: s.Current, Correct: correct})

	var err error
	if s.mastery != nil {
		_, _, err = s.mastery.Record(ctx, s.Current, s.Settings, correct)
	}
	return true, err
}

// Done reports whether the session has served its configured exercise
// count. Unbounded ("all") sessions only end when the learner quits.
func (s *Session) Done() bool {
	return s.Settings.ExerciseCount.Bounded() &&
		s.Stats.Total >= int(s.Settings.ExerciseCount)
}

// Advance moves past the feedback display: it either finishes the session
// (returning false) or generates the next exercise — passing the one just
// answered as previous to avoid an immediate repeat — clears feedback and
// restarts the countdown.
func (s *Session) Advance() bool {
	if s.Phase == PhaseDone {
		return false
	}

	if s.Done() {
		s.Phase = PhaseDone
		s.Feedback = FeedbackNone
		s.Current = nil
		return false
	}

	next := s.gen.Generate(s.Settings, s.mastery, s.Current)
	if next == nil {
		// Generation exhaustion: treat as session end rather than
		// serving a nil exercise.
		s.Phase = PhaseDone
		s.Feedback = FeedbackNone
		s.Current = nil
		return false
	}

	s.Current = next
	s.Phase = PhaseQuestion
	s.Feedback = FeedbackNone
	s.Timer.Reset()
	return true
}

// Tick advances the countdown and reports whether it expired. An expired
// countdown must be followed by SubmitTimeout.
func (s *Session) Tick() (expired bool) {
	if s.Phase != PhaseQuestion {
		return false
	}
	return s.Timer.Tick()
}
