package cipher

import (
	"fmt"
	"time"

	"github.com/mcoot/dailypuzzles/internal/data"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/seed"
)

// mappingSeedFactor derives the mapping seed from the phrase seed so the two
// choices are not correlated
const mappingSeedFactor = 31337

// Service builds the daily cipher puzzles from the phrase banks
type Service struct {
	phrases map[model.Difficulty][]data.Phrase
}

// New creates a cipher service. phrases is keyed by difficulty name.
func New(phrases map[string][]data.Phrase) *Service {
	s := &Service{phrases: make(map[model.Difficulty][]data.Phrase, len(phrases))}
	for name, list := range phrases {
		s.phrases[model.Difficulty(name)] = list
	}
	return s
}

// DailyPuzzle returns the cipher for difficulty on date
func (s *Service) DailyPuzzle(difficulty model.Difficulty, date time.Time) (*model.CipherPuzzle, error) {
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidDifficulty, difficulty)
	}
	bank := s.phrases[difficulty]
	if len(bank) == 0 {
		return nil, fmt.Errorf("%w: no %s phrases", model.ErrEmptyBank, difficulty)
	}

	puzzleSeed := seed.FromDate(date, difficulty.Multiplier())
	phrase := bank[puzzleSeed%int64(len(bank))]
	mapping := GenerateMapping(puzzleSeed * mappingSeedFactor)

	return &model.CipherPuzzle{
		PuzzleNumber:   seed.PuzzleNumber(date),
		Difficulty:     difficulty,
		Date:           seed.DateString(date),
		OriginalPhrase: phrase.Phrase,
		EncodedPhrase:  Encode(phrase.Phrase, mapping),
		Mapping:        mapping,
		Hint:           phrase.Hint,
		Seed:           puzzleSeed,
	}, nil
}
