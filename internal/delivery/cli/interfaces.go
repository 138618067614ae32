package cli

import (
	"context"
	"time"

	"github.com/gagannsingh/iQuiz/internal/domain/entities"
)

// Quiz is the topic and session surface the handler drives.
type Quiz interface {
	Refresh(ctx context.Context) error
	Topics() []*entities.Topic
	StartSession(topicID string) (*entities.QuizSession, error)
}

// Settings exposes the user-editable preferences.
type Settings interface {
	Current() entities.Preferences
	SetDataSourceURL(raw string) error
	SetRefreshInterval(d time.Duration) error
}

// Refresher lets the settings commands restart the background schedule.
type Refresher interface {
	SetInterval(ctx context.Context, d time.Duration) error
}
