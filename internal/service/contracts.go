package service

import (
	"context"

	"github.com/gagannsingh/iQuiz/internal/domain/entities"
)

// TopicFetcher retrieves and decodes the topic list from a data source URL.
type TopicFetcher interface {
	Fetch(ctx context.Context, urlString string) ([]*entities.Topic, error)
}

// TopicStore holds the in-memory topic list.
type TopicStore interface {
	ReplaceAll(topics []*entities.Topic)
	List() []*entities.Topic
	Get(id string) (*entities.Topic, error)
}

// PreferencesStore persists preferences across runs. Save must not block.
type PreferencesStore interface {
	Load() entities.Preferences
	Save(p entities.Preferences)
}

// Settings exposes the current preferences to the refresh path.
type Settings interface {
	Current() entities.Preferences
	RecordFetchedURL(url string)
}
