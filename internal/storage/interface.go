package storage

import (
	"context"

	"github.com/mcoot/dailypuzzles/internal/model"
)

// PuzzleKey identifies a cached daily puzzle. Variant is the difficulty for
// games that have one, "generated" for the procedural Sort puzzle, and empty
// otherwise.
type PuzzleKey struct {
	Game    string
	Variant string
	Date    string
}

// Storage defines the interface for data persistence
type Storage interface {
	// Puzzle cache operations. Payloads are opaque encoded puzzles.
	GetPuzzle(ctx context.Context, key PuzzleKey) ([]byte, error)
	SavePuzzle(ctx context.Context, key PuzzleKey, payload []byte) error

	// Challenge operations
	GetChallengeState(ctx context.Context, playerID model.PlayerID, date string) (*model.ChallengeState, error)
	SaveChallengeState(ctx context.Context, state *model.ChallengeState) error
	GetPlayerStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error)
	SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error

	// Sort play sessions
	GetSortSession(ctx context.Context, playerID model.PlayerID, variant, date string) (*model.SortSessionState, error)
	SaveSortSession(ctx context.Context, state *model.SortSessionState) error

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
