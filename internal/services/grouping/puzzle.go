package grouping

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/dailypuzzles/internal/data"
	"github.com/mcoot/dailypuzzles/internal/dependencies/random"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/seed"
)

// wordOrderSeedFactor derives the board order seed from the puzzle number
const wordOrderSeedFactor = 31337

// Service serves the hand-authored and generated Sort puzzles
type Service struct {
	templates []data.SortTemplate
	bank      []data.SortPuzzle
}

// New creates a Sort service
func New(templates []data.SortTemplate, bank []data.SortPuzzle) *Service {
	return &Service{templates: templates, bank: bank}
}

// DailyPuzzle returns the hand-authored puzzle for date, cycling through the
// bank by puzzle number
func (s *Service) DailyPuzzle(date time.Time) (*model.SortPuzzle, error) {
	if len(s.bank) == 0 {
		return nil, fmt.Errorf("%w: no sort puzzles", model.ErrEmptyBank)
	}
	n := seed.PuzzleNumber(date)
	index := ((n-1)%len(s.bank) + len(s.bank)) % len(s.bank)

	groups := lo.Map(s.bank[index].Groups, func(g data.SortGroup, _ int) model.SortGroup {
		return model.SortGroup{
			Category:   g.Category,
			Difficulty: g.Difficulty,
			Words:      lo.Map(g.Words, func(w string, _ int) string { return strings.ToUpper(w) }),
		}
	})

	return &model.SortPuzzle{
		PuzzleNumber: n,
		Date:         seed.DateString(date),
		Groups:       groups,
		Source:       model.SourceBank,
	}, nil
}

// GenerateDailyPuzzle returns the procedurally generated puzzle for date.
// Seeds puzzleNumber*1000+attempt are tried in turn; when all fail the fixed
// fallback puzzle is returned with Source set to fallback.
func (s *Service) GenerateDailyPuzzle(date time.Time) *model.SortPuzzle {
	n := seed.PuzzleNumber(date)
	puzzle := &model.SortPuzzle{
		PuzzleNumber: n,
		Date:         seed.DateString(date),
	}

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		groups, err := GeneratePuzzle(s.templates, int64(n)*attemptStride+int64(attempt))
		if err != nil {
			continue
		}
		puzzle.Groups = groups
		puzzle.Source = model.SourceGenerated
		return puzzle
	}

	puzzle.Groups = FallbackGroups()
	puzzle.Source = model.SourceFallback
	return puzzle
}

// ShuffledWords returns the puzzle's sixteen words in board order. The
// shuffle takes the raw generator state modulo i+1 rather than scaling a
// float, matching the order the clients display.
func ShuffledWords(puzzle *model.SortPuzzle) []string {
	return shuffleWords(puzzle.AllWords(), int64(puzzle.PuzzleNumber)*wordOrderSeedFactor)
}

func shuffleWords(words []string, seedValue int64) []string {
	out := append([]string(nil), words...)
	rng := random.NewLCG(seedValue)
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng.Uint31() % int64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// CheckGuess returns the group whose words equal guess as a set, ignoring
// case, or nil. Anything other than exactly four words never matches.
func CheckGuess(puzzle *model.SortPuzzle, guess []string) *model.SortGroup {
	if len(guess) != GroupSize {
		return nil
	}
	guessSet := upperSet(guess)
	for i := range puzzle.Groups {
		groupSet := upperSet(puzzle.Groups[i].Words)
		if len(guessSet) != len(groupSet) {
			continue
		}
		if lo.EveryBy(lo.Keys(guessSet), func(w string) bool { return groupSet[w] }) {
			return &puzzle.Groups[i]
		}
	}
	return nil
}

func upperSet(words []string) map[string]bool {
	return lo.SliceToMap(words, func(w string) (string, bool) {
		return strings.ToUpper(w), true
	})
}
