// Package puzzles resolves dates to the day's puzzles for every game and
// caches generated puzzles in storage.
package puzzles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/mcoot/dailypuzzles/internal/dependencies/clock"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/cipher"
	"github.com/mcoot/dailypuzzles/internal/services/grouping"
	"github.com/mcoot/dailypuzzles/internal/services/gridgram"
	"github.com/mcoot/dailypuzzles/internal/services/mini"
	"github.com/mcoot/dailypuzzles/internal/services/scoring"
	"github.com/mcoot/dailypuzzles/internal/services/seed"
	"github.com/mcoot/dailypuzzles/internal/services/shift"
	"github.com/mcoot/dailypuzzles/internal/storage"
)

// Cache key game names
const (
	gameCipher   = "cipher"
	gameGridgram = "gridgram"
	gameShift    = "shift"
	gameSort     = "sort"

	// VariantGenerated selects the procedural Sort puzzle
	VariantGenerated = "generated"
)

// Today is accepted wherever a date string is
const Today = "today"

// Games holds the per-game services
type Games struct {
	Cipher   *cipher.Service
	Gridgram *gridgram.Service
	Shift    *shift.Service
	Sort     *grouping.Service
	Mini     *mini.Service
}

// Service serves each game's daily puzzle and checks player answers
type Service struct {
	games      Games
	storage    storage.Storage
	clock      clock.Clock
	unlockHour int
	logger     *slog.Logger
}

// New creates a puzzles service
func New(games Games, storage storage.Storage, clock clock.Clock, unlockHour int, logger *slog.Logger) *Service {
	return &Service{
		games:      games,
		storage:    storage,
		clock:      clock,
		unlockHour: unlockHour,
		logger:     logger,
	}
}

// Today returns the date whose puzzles are currently live
func (s *Service) Today() time.Time {
	return seed.EffectiveDate(s.clock.Now(), s.unlockHour)
}

// ResolveDate parses a YYYY-MM-DD date, or "today" (or empty) for the live
// date
func (s *Service) ResolveDate(value string) (time.Time, error) {
	if value == "" || strings.EqualFold(value, Today) {
		return s.Today(), nil
	}
	t, err := seed.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", model.ErrInvalidDate, err)
	}
	return t, nil
}

// Cipher returns the cipher for difficulty on date
func (s *Service) Cipher(ctx context.Context, difficulty model.Difficulty, date time.Time) (*model.CipherPuzzle, error) {
	key := storage.PuzzleKey{Game: gameCipher, Variant: string(difficulty), Date: seed.DateString(date)}
	return cached(ctx, s, key, func() (*model.CipherPuzzle, error) {
		return s.games.Cipher.DailyPuzzle(difficulty, date)
	})
}

// Grid returns the Gridgram rack for date
func (s *Service) Grid(ctx context.Context, date time.Time) (*model.GridPuzzle, error) {
	key := storage.PuzzleKey{Game: gameGridgram, Date: seed.DateString(date)}
	return cached(ctx, s, key, func() (*model.GridPuzzle, error) {
		return s.games.Gridgram.DailyPuzzle(date)
	})
}

// Shift returns the Shift puzzle for difficulty on date
func (s *Service) Shift(ctx context.Context, difficulty model.Difficulty, date time.Time) (*model.ShiftPuzzle, error) {
	key := storage.PuzzleKey{Game: gameShift, Variant: string(difficulty), Date: seed.DateString(date)}
	return cached(ctx, s, key, func() (*model.ShiftPuzzle, error) {
		return s.games.Shift.DailyPuzzle(difficulty, date)
	})
}

// Sort returns the hand-authored Sort puzzle for date
func (s *Service) Sort(ctx context.Context, date time.Time) (*model.SortPuzzle, error) {
	return s.games.Sort.DailyPuzzle(date)
}

// GeneratedSort returns the procedural Sort puzzle for date
func (s *Service) GeneratedSort(ctx context.Context, date time.Time) (*model.SortPuzzle, error) {
	key := storage.PuzzleKey{Game: gameSort, Variant: VariantGenerated, Date: seed.DateString(date)}
	return cached(ctx, s, key, func() (*model.SortPuzzle, error) {
		p := s.games.Sort.GenerateDailyPuzzle(date)
		if p.Source == model.SourceFallback {
			s.logger.Warn("sort generation exhausted, using fallback",
				slog.String("date", p.Date),
				slog.Int("puzzle_number", p.PuzzleNumber),
			)
		}
		return p, nil
	})
}

// SortVariant returns the generated Sort puzzle when variant is "generated"
// and the hand-authored one otherwise
func (s *Service) SortVariant(ctx context.Context, variant string, date time.Time) (*model.SortPuzzle, error) {
	if variant == VariantGenerated {
		return s.GeneratedSort(ctx, date)
	}
	return s.Sort(ctx, date)
}

// Mini returns the mini crossword for date
func (s *Service) Mini(ctx context.Context, date time.Time) (*model.MiniPuzzle, error) {
	return s.games.Mini.DailyPuzzle(date)
}

// CheckCipher reports whether guesses decode the day's cipher
func (s *Service) CheckCipher(ctx context.Context, difficulty model.Difficulty, date time.Time, guesses map[rune]rune) (bool, error) {
	p, err := s.Cipher(ctx, difficulty, date)
	if err != nil {
		return false, err
	}
	return cipher.ValidateSolution(p.EncodedPhrase, p.OriginalPhrase, guesses), nil
}

// GridCheck is a validated Gridgram submission with its score
type GridCheck struct {
	Validation gridgram.ValidationResult
	Score      scoring.ScoreResult
}

// CheckGrid validates tiles against the day's rack. Only valid grids score.
func (s *Service) CheckGrid(ctx context.Context, date time.Time, positions []model.GridPosition) (*GridCheck, error) {
	p, err := s.Grid(ctx, date)
	if err != nil {
		return nil, err
	}
	check := &GridCheck{Validation: s.games.Gridgram.Validate(positions, p.Letters)}
	if check.Validation.IsValid {
		check.Score = scoring.ScoreWords(check.Validation.Words)
	} else {
		check.Score = scoring.ScoreWords(nil)
	}
	return check, nil
}

// CheckShift reports whether grid is a rearrangement of the day's letters in
// which every row is a word
func (s *Service) CheckShift(ctx context.Context, difficulty model.Difficulty, date time.Time, grid [][]rune) (bool, error) {
	p, err := s.Shift(ctx, difficulty, date)
	if err != nil {
		return false, err
	}
	if len(grid) != p.Size || !sameLetters(p.Grid, grid) {
		return false, nil
	}
	for _, row := range grid {
		if len(row) != p.Size {
			return false, nil
		}
	}
	return s.games.Shift.CheckAllRowsValid(grid), nil
}

// GuessSort checks four words against the day's Sort puzzle
func (s *Service) GuessSort(ctx context.Context, variant string, date time.Time, words []string) (*model.SortGroup, error) {
	p, err := s.SortVariant(ctx, variant, date)
	if err != nil {
		return nil, err
	}
	return grouping.CheckGuess(p, words), nil
}

// CheckMini compares entries with the day's mini
func (s *Service) CheckMini(ctx context.Context, date time.Time, entries [][]rune) (*mini.CheckResult, error) {
	p, err := s.Mini(ctx, date)
	if err != nil {
		return nil, err
	}
	result := mini.CheckGrid(p, entries)
	return &result, nil
}

// cached returns the stored puzzle for key, generating and storing it on a
// miss. Storage failures are logged and fall through to generation: every
// puzzle can be rebuilt from its date.
func cached[T any](ctx context.Context, s *Service, key storage.PuzzleKey, generate func() (*T, error)) (*T, error) {
	payload, err := s.storage.GetPuzzle(ctx, key)
	switch {
	case err == nil:
		var p T
		if err := json.Unmarshal(payload, &p); err == nil {
			return &p, nil
		}
		s.logger.Warn("discarding undecodable cached puzzle", keyAttrs(key)...)
	case !errors.Is(err, model.ErrPuzzleNotFound):
		s.logger.Warn("puzzle cache read failed", append(keyAttrs(key), slog.Any("error", err))...)
	}

	p, err := generate()
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s puzzle: %w", key.Game, err)
	}
	if err := s.storage.SavePuzzle(ctx, key, encoded); err != nil {
		s.logger.Warn("puzzle cache write failed", append(keyAttrs(key), slog.Any("error", err))...)
	}
	return p, nil
}

func keyAttrs(key storage.PuzzleKey) []any {
	return []any{
		slog.String("game", key.Game),
		slog.String("variant", key.Variant),
		slog.String("date", key.Date),
	}
}

func sameLetters(a, b [][]rune) bool {
	flat := func(grid [][]rune) []rune {
		var out []rune
		for _, row := range grid {
			out = append(out, row...)
		}
		for i, r := range out {
			out[i] = unicode.ToUpper(r)
		}
		slices.Sort(out)
		return out
	}
	return slices.Equal(flat(a), flat(b))
}
