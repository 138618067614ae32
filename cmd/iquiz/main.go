package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gagannsingh/iQuiz/internal/config"
	"github.com/gagannsingh/iQuiz/internal/delivery/cli"
	"github.com/gagannsingh/iQuiz/internal/fetcher"
	"github.com/gagannsingh/iQuiz/internal/logger"
	"github.com/gagannsingh/iQuiz/internal/netcheck"
	"github.com/gagannsingh/iQuiz/internal/repository"
	"github.com/gagannsingh/iQuiz/internal/service"
	"github.com/gagannsingh/iQuiz/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prefsPath := cfg.PreferencesPath
	if prefsPath == "" {
		prefsPath, err = repository.DefaultPreferencesPath()
		if err != nil {
			zl.Fatal("failed to resolve preferences path", zap.Error(err))
		}
	}

	prefsStore := repository.NewPreferencesStore(prefsPath, zl)
	defer prefsStore.Close()

	var checker fetcher.Checker = netcheck.Always{}
	if cfg.Reachability == "dial" {
		checker = netcheck.NewDialer(cfg.DialTimeout)
	}

	topicFetcher := fetcher.New(checker, zl)
	topicStore := storage.NewTopicStore()

	settingsService := service.NewSettingsService(prefsStore, zl)
	quizService := service.NewQuizService(topicFetcher, topicStore, settingsService, zl)

	// Initial load. A failure is not fatal; the topic list stays empty until
	// a refresh succeeds.
	if err := quizService.Refresh(ctx); err != nil {
		zl.Warn("initial topic fetch failed", zap.Error(err))
	}

	refresher := service.NewRefresher(settingsService.Current().RefreshInterval, func(ctx context.Context) {
		if err := quizService.Refresh(ctx); err != nil && !errors.Is(err, service.ErrRefreshInFlight) {
			zl.Warn("scheduled refresh failed", zap.Error(err))
		}
	}, zl)
	if err := refresher.Start(ctx); err != nil {
		zl.Fatal("failed to start the refresh scheduler", zap.Error(err))
	}
	defer refresher.Stop()

	handler := cli.NewHandler(os.Stdin, os.Stdout, quizService, settingsService, refresher, zl)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Error("handler stopped", zap.Error(err))
	}
}
