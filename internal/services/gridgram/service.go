package gridgram

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/dailypuzzles/internal/data"
	"github.com/mcoot/dailypuzzles/internal/dependencies/random"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/seed"
)

// Dictionary is what the Gridgram game needs from the dictionary service
type Dictionary interface {
	WordSource
	WordChecker
}

// Service builds daily Gridgram racks and validates player grids
type Service struct {
	dict      Dictionary
	fallbacks []data.GridFallback
	logger    *slog.Logger
}

// New creates a Gridgram service
func New(dict Dictionary, fallbacks []data.GridFallback, logger *slog.Logger) *Service {
	return &Service{
		dict:      dict,
		fallbacks: fallbacks,
		logger:    logger,
	}
}

// DailyPuzzle returns the rack for date. A generated solution's letters are
// shuffled with seed*2; if generation is exhausted, a fallback rack is picked
// by seed and shuffled with seed*3, and its drawn solution becomes Words.
func (s *Service) DailyPuzzle(date time.Time) (*model.GridPuzzle, error) {
	puzzleSeed := seed.FromDate(date, 1)
	puzzle := &model.GridPuzzle{
		PuzzleNumber: seed.PuzzleNumber(date),
		Date:         seed.DateString(date),
		Seed:         puzzleSeed,
	}

	outcome := GenerateSolution(s.dict, puzzleSeed, DefaultTarget)
	if outcome.Kind == OutcomeGenerated {
		puzzle.Letters = random.Shuffle(random.NewLCG(puzzleSeed*2), outcome.Solution.Letters())
		puzzle.Words = outcome.Solution.Words
		puzzle.Source = model.SourceGenerated
		return puzzle, nil
	}

	if len(s.fallbacks) == 0 {
		return nil, fmt.Errorf("%w: no gridgram fallbacks", model.ErrEmptyBank)
	}
	fallback := s.fallbacks[puzzleSeed%int64(len(s.fallbacks))]
	s.logger.Warn("gridgram generation exhausted, using fallback",
		slog.String("date", puzzle.Date),
		slog.Int64("seed", puzzleSeed),
		slog.String("letters", fallback.Letters),
	)

	puzzle.Letters = random.Shuffle(random.NewLCG(puzzleSeed*3), []rune(fallback.Letters))
	puzzle.Words = LayoutWords(fallback.Solution)
	puzzle.Hint = fallback.Hint
	puzzle.Source = model.SourceFallback
	return puzzle, nil
}

// Validate checks a player's grid against the dictionary
func (s *Service) Validate(positions []model.GridPosition, letters []rune) ValidationResult {
	return ValidateGrid(s.dict, positions, letters)
}
