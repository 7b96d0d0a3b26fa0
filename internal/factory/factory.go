package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/dailypuzzles/internal/config"
	"github.com/mcoot/dailypuzzles/internal/data"
	"github.com/mcoot/dailypuzzles/internal/dependencies/clock"
	"github.com/mcoot/dailypuzzles/internal/dependencies/random"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/challenge"
	"github.com/mcoot/dailypuzzles/internal/services/cipher"
	"github.com/mcoot/dailypuzzles/internal/services/dictionary"
	"github.com/mcoot/dailypuzzles/internal/services/gridgram"
	"github.com/mcoot/dailypuzzles/internal/services/grouping"
	"github.com/mcoot/dailypuzzles/internal/services/mini"
	"github.com/mcoot/dailypuzzles/internal/services/puzzles"
	"github.com/mcoot/dailypuzzles/internal/services/shift"
	"github.com/mcoot/dailypuzzles/internal/services/sortplay"
	"github.com/mcoot/dailypuzzles/internal/storage"
	"github.com/mcoot/dailypuzzles/internal/storage/memory"
	redisstorage "github.com/mcoot/dailypuzzles/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Games
	DictionaryService *dictionary.Service
	CipherService     *cipher.Service
	GridgramService   *gridgram.Service
	ShiftService      *shift.Service
	SortService       *grouping.Service
	MiniService       *mini.Service

	// Facades
	Puzzles             *puzzles.Service
	ChallengeController *challenge.Controller
	SortPlay            *sortplay.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is a word list file (optional). If empty the dictionary
	// is loaded from storage, falling back to the embedded list.
	DictionaryPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// UnlockHour is the local hour a new day's puzzles go live
	UnlockHour int
}

// ConfigFrom builds a factory config from the application config
func ConfigFrom(cfg *config.AppConfig, logger *slog.Logger) Config {
	out := Config{
		DictionaryPath: cfg.Dictionary.Path,
		Logger:         logger,
		StorageType:    cfg.Storage.Type,
		UnlockHour:     cfg.Challenge.UnlockHour,
	}
	if cfg.Storage.Type == StorageTypeRedis {
		out.RedisConfig = &redisstorage.Config{
			URL:          cfg.Storage.Redis.URL,
			PoolSize:     cfg.Storage.Redis.PoolSize,
			MinIdleConns: cfg.Storage.Redis.MinIdleConns,
			PuzzleTTL:    cfg.Storage.Redis.PuzzleTTL,
			ChallengeTTL: cfg.Storage.Redis.ChallengeTTL,
		}
	}
	return out
}

// New creates a new application with all dependencies wired and the
// dictionary loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	app, err := newWithDependencies(store, clock.New(), random.New(), cfg.UnlockHour, logger)
	if err != nil {
		return nil, err
	}
	if err := app.loadDictionary(ctx, cfg.DictionaryPath); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, unlockHour int, logger *slog.Logger) (*App, error) {
	pools, err := data.LoadPools()
	if err != nil {
		return nil, fmt.Errorf("failed to load word pools: %w", err)
	}
	phrases, err := data.Phrases()
	if err != nil {
		return nil, fmt.Errorf("failed to load cipher phrases: %w", err)
	}
	fallbacks, err := data.GridFallbacks()
	if err != nil {
		return nil, fmt.Errorf("failed to load grid fallbacks: %w", err)
	}
	templates, err := data.SortTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load sort templates: %w", err)
	}
	sortBank, err := data.SortPuzzles()
	if err != nil {
		return nil, fmt.Errorf("failed to load sort puzzles: %w", err)
	}
	miniBank, err := data.MiniPuzzles()
	if err != nil {
		return nil, fmt.Errorf("failed to load mini puzzles: %w", err)
	}

	dictService := dictionary.New(store, pools)
	miniService, err := mini.New(miniBank)
	if err != nil {
		return nil, err
	}

	app := &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Logger:            logger,
		DictionaryService: dictService,
		CipherService:     cipher.New(phrases),
		GridgramService:   gridgram.New(dictService, fallbacks, logger),
		ShiftService:      shift.New(dictService),
		SortService:       grouping.New(templates, sortBank),
		MiniService:       miniService,
	}
	app.Puzzles = puzzles.New(puzzles.Games{
		Cipher:   app.CipherService,
		Gridgram: app.GridgramService,
		Shift:    app.ShiftService,
		Sort:     app.SortService,
		Mini:     app.MiniService,
	}, store, clk, unlockHour, logger)
	app.ChallengeController = challenge.NewController(store, clk, unlockHour)
	app.SortPlay = sortplay.NewController(app.Puzzles, store, rnd)

	return app, nil
}

// loadDictionary loads path when set. Otherwise it reuses a word list another
// instance saved to storage, or the embedded list.
func (a *App) loadDictionary(ctx context.Context, path string) error {
	if path != "" {
		if err := a.DictionaryService.LoadFromFile(ctx, path); err != nil {
			return fmt.Errorf("failed to load dictionary %s: %w", path, err)
		}
		a.Logger.Info("dictionary loaded", slog.String("source", path), slog.Int("words", a.DictionaryService.WordCount()))
		return nil
	}

	err := a.DictionaryService.LoadFromStorage(ctx)
	if err == nil {
		a.Logger.Info("dictionary loaded", slog.String("source", "storage"), slog.Int("words", a.DictionaryService.WordCount()))
		return nil
	}
	if !errors.Is(err, model.ErrDictionaryNotLoaded) {
		return fmt.Errorf("failed to load dictionary from storage: %w", err)
	}

	if err := a.DictionaryService.LoadEmbedded(ctx); err != nil {
		return fmt.Errorf("failed to load embedded dictionary: %w", err)
	}
	a.Logger.Info("dictionary loaded", slog.String("source", "embedded"), slog.Int("words", a.DictionaryService.WordCount()))
	return nil
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
