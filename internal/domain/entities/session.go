package entities

import "errors"

// ErrInvalidTransition is returned when a session operation is called in a
// state that does not accept it. The intended command sequencing never
// triggers it.
var ErrInvalidTransition = errors.New("invalid session state transition")

// SessionState is the logical state of a quiz walk.
type SessionState int

const (
	StateAnswering SessionState = iota // waiting for an answer to the current question
	StateReviewing                     // showing feedback for the current question
	StateFinished                      // no questions left, score is final
)

// QuizSession tracks the linear walk through one topic's question list:
// the current question index, the recorded answers and the running score.
// A session holds a read-only reference to its topic and owns no I/O.
type QuizSession struct {
	topic   *Topic
	state   SessionState
	current int
	answers []string
	score   int
}

// NewQuizSession starts a walk over the topic's questions. A topic without
// questions yields an immediately finished session with score 0.
func NewQuizSession(topic *Topic) *QuizSession {
	s := &QuizSession{
		topic:   topic,
		answers: make([]string, 0, len(topic.Questions)),
	}
	if len(topic.Questions) == 0 {
		s.state = StateFinished
	}
	return s
}

// State returns the current session state.
func (s *QuizSession) State() SessionState { return s.state }

// CurrentIndex returns the zero-based index of the question the walk is on.
func (s *QuizSession) CurrentIndex() int { return s.current }

// Score returns the number of correctly answered questions so far.
func (s *QuizSession) Score() int { return s.score }

// TotalQuestions returns the number of questions in the topic.
func (s *QuizSession) TotalQuestions() int { return len(s.topic.Questions) }

// Answers returns a copy of the answers recorded so far, one per visited
// question. Session state changes only through the transition methods.
func (s *QuizSession) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// Topic returns the topic this session walks over.
func (s *QuizSession) Topic() *Topic { return s.topic }

// CurrentQuestion returns the question the walk is positioned on.
func (s *QuizSession) CurrentQuestion() (Question, error) {
	if s.state == StateFinished {
		return Question{}, ErrInvalidTransition
	}
	return s.topic.Questions[s.current], nil
}

// SubmitAnswer records the chosen answer text for the current question,
// scores it against the resolved correct answer and moves the session into
// the reviewing state. It reports whether the choice was correct together
// with the correct answer text.
func (s *QuizSession) SubmitAnswer(choice string) (bool, string, error) {
	if s.state != StateAnswering {
		return false, "", ErrInvalidTransition
	}

	correct := s.topic.Questions[s.current].CorrectAnswer()
	s.answers = append(s.answers, choice)

	ok := choice == correct
	if ok {
		s.score++
	}
	s.state = StateReviewing

	return ok, correct, nil
}

// Advance moves on from the feedback of the current question: to the next
// question if one remains, otherwise to the finished state.
func (s *QuizSession) Advance() error {
	if s.state != StateReviewing {
		return ErrInvalidTransition
	}

	if s.current+1 < len(s.topic.Questions) {
		s.current++
		s.state = StateAnswering
		return nil
	}

	s.state = StateFinished
	return nil
}

// ScoreText maps the fraction of correct answers to the end-of-session
// feedback message. A topic without questions resolves to the lowest tier.
func (s *QuizSession) ScoreText() string {
	total := s.TotalQuestions()
	if total == 0 {
		return "Keep practicing!"
	}

	p := float64(s.score) / float64(total)
	switch {
	case p == 1.0:
		return "Perfect!"
	case p >= 0.9:
		return "Almost perfect!"
	case p >= 0.7:
		return "Great job!"
	case p >= 0.5:
		return "Not bad!"
	default:
		return "Keep practicing!"
	}
}
