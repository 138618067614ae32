// Package storage provides the in-memory topic list.
package storage

import (
	"errors"
	"sync"

	"github.com/gagannsingh/iQuiz/internal/domain/entities"
)

var ErrTopicNotFound = errors.New("topic not found")

// TopicStore holds the most recently fetched topic list. The list is
// replaced wholesale on every successful fetch, never merged; concurrent
// replacements collapse to last-writer-wins.
type TopicStore struct {
	mu     sync.RWMutex
	topics []*entities.Topic
}

// NewTopicStore creates an empty TopicStore.
func NewTopicStore() *TopicStore {
	return &TopicStore{}
}

// ReplaceAll swaps the stored list for the given one.
func (s *TopicStore) ReplaceAll(topics []*entities.Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = topics
}

// List returns a copy of the current topic list in fetch order, so callers
// cannot reorder or truncate the stored list from outside.
func (s *TopicStore) List() []*entities.Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.Topic, len(s.topics))
	copy(out, s.topics)
	return out
}

// Get retrieves a topic by its identifier.
func (s *TopicStore) Get(id string) (*entities.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.topics {
		if t.ID == id {
			return t, nil
		}
	}

	return nil, ErrTopicNotFound
}

// Len returns how many topics are currently stored.
func (s *TopicStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.topics)
}
