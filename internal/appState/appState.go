package appState

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/promptdeck/promptdeck/internal/config"
)

// App holds the global application state
type App struct {
	Config *config.Schema
	Logger *slog.Logger
	closer io.Closer // For cleanup of resources like log files
}

var (
	globalApp *App
	initOnce  sync.Once
	initErr   error
	mu        sync.RWMutex
)

// Initialize creates the global app instance with the given overrides
func Initialize(overrides *config.RuntimeOverrides) error {
	initOnce.Do(func() {
		cfg, err := config.New(overrides)
		if err != nil {
			initErr = fmt.Errorf("failed to load config: %w", err)
			return
		}

		logger, closer, err := setupLogger(cfg.Log)
		if err != nil {
			initErr = fmt.Errorf("failed to setup logger: %w", err)
			return
		}

		mu.Lock()
		globalApp = &App{
			Config: cfg,
			Logger: logger,
			closer: closer,
		}
		mu.Unlock()

		slog.SetDefault(logger)
	})
	return initErr
}

// Get returns the global app instance and panics if not initialized
func Get() *App {
	mu.RLock()
	defer mu.RUnlock()

	if globalApp == nil {
		panic("app not initialized")
	}
	return globalApp
}

// Cleanup performs cleanup of app resources
func Cleanup() error {
	mu.Lock()
	defer mu.Unlock()

	if globalApp != nil && globalApp.closer != nil {
		return globalApp.closer.Close()
	}
	return nil
}

func setupLogger(cfg config.Log) (*slog.Logger, io.Closer, error) {
	var level slog.Level

	switch cfg.Level {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.File == "" {
		handler := slog.NewTextHandler(os.Stderr, opts)
		return slog.New(handler), nil, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(file, opts)
	return slog.New(handler), file, nil
}
