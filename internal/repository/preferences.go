// Package repository contains persistence for user preferences.
package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gagannsingh/iQuiz/internal/domain/entities"
)

const (
	keyDataSourceURL   = "data_source_url"
	keyRefreshInterval = "refresh_interval"
)

// PreferencesStore persists the data source URL and refresh interval across
// runs. Writes run on a single background goroutine so Save never blocks the
// fetch-completion path; when saves outpace the disk, the newest value wins.
type PreferencesStore struct {
	path   string
	logger *zap.Logger

	mu     sync.Mutex
	latest *entities.Preferences

	kick chan struct{}
	quit chan struct{}
	wg   sync.WaitGroup
}

// DefaultPreferencesPath resolves the preferences file location under the
// user's config directory.
func DefaultPreferencesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "iquiz", "preferences.yaml"), nil
}

// NewPreferencesStore creates a store backed by the YAML file at path and
// starts its background writer.
func NewPreferencesStore(path string, logger *zap.Logger) *PreferencesStore {
	s := &PreferencesStore{
		path:   path,
		logger: logger,
		kick:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
	}

	s.wg.Add(1)
	go s.writeLoop()

	return s
}

// Load returns the stored preferences, or the defaults if nothing was saved
// yet. A corrupt file degrades to defaults rather than failing startup.
func (s *PreferencesStore) Load() entities.Preferences {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetDefault(keyDataSourceURL, entities.DefaultDataSourceURL)
	v.SetDefault(keyRefreshInterval, entities.DefaultRefreshInterval.String())

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			s.logger.Warn("failed to read preferences, using defaults",
				zap.String("path", s.path),
				zap.Error(err),
			)
		}
	}

	p := entities.Preferences{
		DataSourceURL:   v.GetString(keyDataSourceURL),
		RefreshInterval: v.GetDuration(keyRefreshInterval),
	}
	if p.DataSourceURL == "" {
		p.DataSourceURL = entities.DefaultDataSourceURL
	}
	if p.RefreshInterval <= 0 {
		p.RefreshInterval = entities.DefaultRefreshInterval
	}

	return p
}

// Save queues the preferences for writing and returns immediately.
func (s *PreferencesStore) Save(p entities.Preferences) {
	s.mu.Lock()
	s.latest = &p
	s.mu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Close flushes any queued write and stops the background writer.
func (s *PreferencesStore) Close() {
	close(s.quit)
	s.wg.Wait()
}

func (s *PreferencesStore) writeLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.kick:
			s.flush()
		case <-s.quit:
			s.flush()
			return
		}
	}
}

func (s *PreferencesStore) flush() {
	s.mu.Lock()
	p := s.latest
	s.latest = nil
	s.mu.Unlock()

	if p == nil {
		return
	}

	if err := s.write(*p); err != nil {
		s.logger.Error("failed to persist preferences",
			zap.String("path", s.path),
			zap.Error(err),
		)
	}
}

// write serializes one preferences snapshot to disk.
func (s *PreferencesStore) write(p entities.Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	v.Set(keyDataSourceURL, p.DataSourceURL)
	v.Set(keyRefreshInterval, p.RefreshInterval.String())

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}

	return nil
}
