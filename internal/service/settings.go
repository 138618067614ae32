package service

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gagannsingh/iQuiz/internal/domain/entities"
	"github.com/gagannsingh/iQuiz/internal/fetcher"
)

// Refresh intervals shorter than a second are rejected; the scheduler's
// resolution is one second.
var ErrIntervalTooShort = errors.New("refresh interval must be at least one second")

// SettingsService owns the current preferences: loaded once at startup,
// updated by the settings commands and written back through the store.
type SettingsService struct {
	store  PreferencesStore
	logger *zap.Logger

	mu      sync.RWMutex
	current entities.Preferences
}

// NewSettingsService loads the persisted preferences and wraps them.
func NewSettingsService(store PreferencesStore, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		store:   store,
		logger:  logger,
		current: store.Load(),
	}
}

// Current returns a snapshot of the preferences.
func (s *SettingsService) Current() entities.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetDataSourceURL validates and saves a new data source URL.
func (s *SettingsService) SetDataSourceURL(raw string) error {
	if _, err := fetcher.ValidateURL(raw); err != nil {
		return err
	}

	s.mu.Lock()
	s.current.DataSourceURL = raw
	p := s.current
	s.mu.Unlock()

	s.store.Save(p)
	s.logger.Info("data source url updated", zap.String("url", raw))

	return nil
}

// SetRefreshInterval validates and saves a new refresh interval.
func (s *SettingsService) SetRefreshInterval(d time.Duration) error {
	if d < time.Second {
		return ErrIntervalTooShort
	}

	s.mu.Lock()
	s.current.RefreshInterval = d
	p := s.current
	s.mu.Unlock()

	s.store.Save(p)
	s.logger.Info("refresh interval updated", zap.Duration("interval", d))

	return nil
}

// RecordFetchedURL persists the URL a successful fetch came from.
func (s *SettingsService) RecordFetchedURL(url string) {
	s.mu.Lock()
	s.current.DataSourceURL = url
	p := s.current
	s.mu.Unlock()

	s.store.Save(p)
}
