package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	puzzles         map[storage.PuzzleKey][]byte
	challenges      map[challengeKey]*model.ChallengeState
	stats           map[model.PlayerID]*model.PlayerStats
	sortSessions    map[sortSessionKey]*model.SortSessionState
	dictionaryWords []string
}

type challengeKey struct {
	playerID model.PlayerID
	date     string
}

type sortSessionKey struct {
	playerID model.PlayerID
	variant  string
	date     string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		puzzles:      make(map[storage.PuzzleKey][]byte),
		challenges:   make(map[challengeKey]*model.ChallengeState),
		stats:        make(map[model.PlayerID]*model.PlayerStats),
		sortSessions: make(map[sortSessionKey]*model.SortSessionState),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle cache operations

func (s *Storage) GetPuzzle(ctx context.Context, key storage.PuzzleKey) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.puzzles[key]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return slices.Clone(payload), nil
}

func (s *Storage) SavePuzzle(ctx context.Context, key storage.PuzzleKey, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[key] = slices.Clone(payload)
	return nil
}

// Challenge operations

func (s *Storage) GetChallengeState(ctx context.Context, playerID model.PlayerID, date string) (*model.ChallengeState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.challenges[challengeKey{playerID: playerID, date: date}]
	if !ok {
		return nil, model.ErrChallengeNotFound
	}
	return cloneChallenge(state), nil
}

func (s *Storage) SaveChallengeState(ctx context.Context, state *model.ChallengeState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challengeKey{playerID: state.PlayerID, date: state.Date}] = cloneChallenge(state)
	return nil
}

func (s *Storage) GetPlayerStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[playerID]
	if !ok {
		return nil, model.ErrStatsNotFound
	}
	out := *stats
	return &out, nil
}

func (s *Storage) SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *stats
	s.stats[stats.PlayerID] = &stored
	return nil
}

// Sort play sessions

func (s *Storage) GetSortSession(ctx context.Context, playerID model.PlayerID, variant, date string) (*model.SortSessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sortSessions[sortSessionKey{playerID: playerID, variant: variant, date: date}]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return cloneSortSession(state), nil
}

func (s *Storage) SaveSortSession(ctx context.Context, state *model.SortSessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortSessions[sortSessionKey{playerID: state.PlayerID, variant: state.Variant, date: state.Date}] = cloneSortSession(state)
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	return s.dictionaryWords, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = words
	return nil
}

func cloneChallenge(state *model.ChallengeState) *model.ChallengeState {
	out := *state
	out.Completions = maps.Clone(state.Completions)
	if state.FinishedAt != nil {
		t := *state.FinishedAt
		out.FinishedAt = &t
	}
	return &out
}

func cloneSortSession(state *model.SortSessionState) *model.SortSessionState {
	out := *state
	out.Board = slices.Clone(state.Board)
	out.Solved = slices.Clone(state.Solved)
	return &out
}
