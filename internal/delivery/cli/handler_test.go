package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gagannsingh/iQuiz/internal/domain/entities"
)

type fakeQuiz struct {
	topics     []*entities.Topic
	refreshErr error
}

func (f *fakeQuiz) Refresh(context.Context) error { return f.refreshErr }

func (f *fakeQuiz) Topics() []*entities.Topic { return f.topics }

func (f *fakeQuiz) StartSession(topicID string) (*entities.QuizSession, error) {
	for _, t := range f.topics {
		if t.ID == topicID {
			return entities.NewQuizSession(t), nil
		}
	}
	return nil, errors.New("topic not found")
}

type fakeSettings struct {
	prefs entities.Preferences
}

func (f *fakeSettings) Current() entities.Preferences { return f.prefs }

func (f *fakeSettings) SetDataSourceURL(raw string) error {
	f.prefs.DataSourceURL = raw
	return nil
}

func (f *fakeSettings) SetRefreshInterval(d time.Duration) error {
	f.prefs.RefreshInterval = d
	return nil
}

type fakeRefresher struct {
	interval time.Duration
}

func (f *fakeRefresher) SetInterval(_ context.Context, d time.Duration) error {
	f.interval = d
	return nil
}

func scienceTopic() *entities.Topic {
	return &entities.Topic{
		ID:          "science",
		Title:       "Science!",
		Description: "Because SCIENCE!",
		Questions: []entities.Question{
			{Text: "What is the speed of light?", AnswerKey: "1", Answers: []string{"3x10^8 m/s", "It varies"}},
			{Text: "What is an atom?", AnswerKey: "2", Answers: []string{"A unit of time", "A building block of matter"}},
		},
	}
}

func runScript(t *testing.T, quiz Quiz, settings Settings, refresher Refresher, script string) string {
	t.Helper()

	var out bytes.Buffer
	h := NewHandler(strings.NewReader(script), &out, quiz, settings, refresher, zap.NewNop())

	require.NoError(t, h.Run(context.Background()))

	return out.String()
}

func TestHandler_TopicsListing(t *testing.T) {
	quiz := &fakeQuiz{topics: []*entities.Topic{scienceTopic()}}

	out := runScript(t, quiz, &fakeSettings{}, &fakeRefresher{}, "topics\nquit\n")

	assert.Contains(t, out, "1. Science!")
	assert.Contains(t, out, "(2 questions)")
}

func TestHandler_QuizWalkWithFeedbackAndFinalScore(t *testing.T) {
	quiz := &fakeQuiz{topics: []*entities.Topic{scienceTopic()}}

	// First question answered correctly, second one wrong.
	out := runScript(t, quiz, &fakeSettings{}, &fakeRefresher{}, "quiz 1\n1\n1\nquit\n")

	assert.Contains(t, out, "Question 1 of 2")
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "Wrong. The correct answer is: A building block of matter")
	assert.Contains(t, out, "Final score: 1 of 2. Not bad!")
}

func TestHandler_QuizAbortsOnTruncatedInput(t *testing.T) {
	quiz := &fakeQuiz{topics: []*entities.Topic{scienceTopic()}}

	// Input ends mid-walk: the session is abandoned, no answers are invented.
	out := runScript(t, quiz, &fakeSettings{}, &fakeRefresher{}, "quiz 1\n1\n")

	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "Quiz aborted.")
	assert.NotContains(t, out, "Final score")
}

func TestHandler_QuizRejectsBadTopicNumber(t *testing.T) {
	quiz := &fakeQuiz{topics: []*entities.Topic{scienceTopic()}}

	out := runScript(t, quiz, &fakeSettings{}, &fakeRefresher{}, "quiz 9\nquit\n")

	assert.Contains(t, out, "pick a topic number between 1 and 1")
}

func TestHandler_IntervalCommandRestartsScheduler(t *testing.T) {
	refresher := &fakeRefresher{}
	settings := &fakeSettings{prefs: entities.DefaultPreferences()}

	out := runScript(t, &fakeQuiz{}, settings, refresher, "interval 5m\nquit\n")

	assert.Contains(t, out, "Refresh interval set to 5m0s.")
	assert.Equal(t, 5*time.Minute, refresher.interval)
	assert.Equal(t, 5*time.Minute, settings.prefs.RefreshInterval)
}

func TestHandler_RefreshFailureKeepsRunning(t *testing.T) {
	quiz := &fakeQuiz{refreshErr: errors.New("decode error")}

	out := runScript(t, quiz, &fakeSettings{}, &fakeRefresher{}, "refresh\ntopics\nquit\n")

	assert.Contains(t, out, "Refresh failed")
	assert.Contains(t, out, "No topics loaded yet")
}
