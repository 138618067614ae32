package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/gagannsingh/iQuiz/internal/domain/entities"
)

// ErrRefreshInFlight is returned when a refresh is requested while another
// one is still running. At most one fetch runs at a time; the caller simply
// keeps the topics it already has.
var ErrRefreshInFlight = errors.New("refresh already in progress")

// QuizService owns the topic list lifecycle: it runs fetches against the
// configured data source, replaces the stored list on success and persists
// the URL that produced it. Sessions are created from stored topics and own
// no I/O of their own.
type QuizService struct {
	fetcher  TopicFetcher
	store    TopicStore
	settings Settings
	logger   *zap.Logger

	inFlight atomic.Bool
}

// NewQuizService wires the fetcher, topic store and settings together.
func NewQuizService(fetcher TopicFetcher, store TopicStore, settings Settings, logger *zap.Logger) *QuizService {
	return &QuizService{
		fetcher:  fetcher,
		store:    store,
		settings: settings,
		logger:   logger,
	}
}

// Refresh fetches the topic list from the configured URL and replaces the
// stored list wholesale. Overlapping calls are rejected with
// ErrRefreshInFlight; a failed fetch leaves the previous list untouched.
func (s *QuizService) Refresh(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	defer s.inFlight.Store(false)

	url := s.settings.Current().DataSourceURL

	topics, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger.Warn("refresh failed, keeping previous topics",
			zap.String("url", url),
			zap.Error(err),
		)
		return fmt.Errorf("refresh topics: %w", err)
	}

	s.store.ReplaceAll(topics)
	s.settings.RecordFetchedURL(url)

	s.logger.Info("topic list replaced", zap.Int("topics", len(topics)))

	return nil
}

// Topics returns the currently loaded topic list.
func (s *QuizService) Topics() []*entities.Topic {
	return s.store.List()
}

// StartSession begins a quiz walk over the topic with the given identifier.
func (s *QuizService) StartSession(topicID string) (*entities.QuizSession, error) {
	topic, err := s.store.Get(topicID)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	return entities.NewQuizSession(topic), nil
}
