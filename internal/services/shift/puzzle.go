package shift

import (
	"fmt"
	"time"

	"github.com/mcoot/dailypuzzles/internal/dependencies/random"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/seed"
)

const (
	easyMoves      = 4
	mediumMinMoves = 6
	mediumSpread   = 5
	hardMinMoves   = 12
	hardSpread     = 7
)

// Dictionary is what the Shift game needs from the dictionary service
type Dictionary interface {
	IsValidWord(word string) bool
	RandomWords(count, length int, rng random.Random) []string
	EasyWords(count int, rng random.Random) []string
}

// Service builds daily Shift puzzles and checks player grids
type Service struct {
	dict Dictionary
}

// New creates a Shift service
func New(dict Dictionary) *Service {
	return &Service{dict: dict}
}

// SizeFor returns the grid size for a difficulty
func SizeFor(difficulty model.Difficulty) int {
	if difficulty == model.DifficultyEasy {
		return 4
	}
	return 5
}

// DailyPuzzle returns the Shift puzzle for difficulty on date. The solution
// words, scramble depth and moves all come from one generator seeded with
// the date and difficulty tag.
func (s *Service) DailyPuzzle(difficulty model.Difficulty, date time.Time) (*model.ShiftPuzzle, error) {
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidDifficulty, difficulty)
	}

	puzzleSeed := seed.WithTag(date, difficulty.Tag())
	rng := random.NewLCG(puzzleSeed)
	size := SizeFor(difficulty)

	var words []string
	if difficulty == model.DifficultyEasy {
		words = s.dict.EasyWords(size, rng)
	} else {
		words = s.dict.RandomWords(size, size, rng)
	}
	if len(words) < size {
		return nil, fmt.Errorf("%w: need %d shift words, have %d", model.ErrEmptyBank, size, len(words))
	}

	solution := FromRows(words)
	moves := Scramble(difficulty, size, rng)
	grid := solution
	for _, m := range moves {
		grid = m.Apply(grid)
	}

	return &model.ShiftPuzzle{
		PuzzleNumber: seed.PuzzleNumber(date),
		Date:         seed.DateString(date),
		Difficulty:   difficulty,
		Seed:         puzzleSeed,
		Size:         size,
		Moves:        len(moves),
		Grid:         grid,
		Solution:     solution,
	}, nil
}

// Scramble draws the scramble moves for a size×size grid. Easy is two column
// moves followed by two row moves; medium and hard draw a depth and then mix
// row and column moves.
func Scramble(difficulty model.Difficulty, size int, rng random.Random) []Move {
	if difficulty == model.DifficultyEasy {
		moves := make([]Move, 0, easyMoves)
		for i := 0; i < easyMoves/2; i++ {
			idx := rng.Intn(size)
			moves = append(moves, Move{Index: idx, Direction: pick(rng, Up, Down)})
		}
		for i := 0; i < easyMoves/2; i++ {
			idx := rng.Intn(size)
			moves = append(moves, Move{Index: idx, Direction: pick(rng, Left, Right)})
		}
		return moves
	}

	depth := mediumMinMoves + rng.Intn(mediumSpread)
	if difficulty == model.DifficultyHard {
		depth = hardMinMoves + rng.Intn(hardSpread)
	}

	moves := make([]Move, 0, depth)
	for i := 0; i < depth; i++ {
		isRow := rng.Float64() > 0.5
		idx := rng.Intn(size)
		if isRow {
			moves = append(moves, Move{Index: idx, Direction: pick(rng, Left, Right)})
		} else {
			moves = append(moves, Move{Index: idx, Direction: pick(rng, Up, Down)})
		}
	}
	return moves
}

func pick(rng random.Random, first, second Direction) Direction {
	if rng.Float64() > 0.5 {
		return first
	}
	return second
}

// IsRowValid reports whether row currently spells a dictionary word
func (s *Service) IsRowValid(grid [][]rune, row int) bool {
	word := RowWord(grid, row)
	return word != "" && s.dict.IsValidWord(word)
}

// CheckAllRowsValid reports whether every row is a dictionary word. Any set
// of valid rows wins, not only the generated solution.
func (s *Service) CheckAllRowsValid(grid [][]rune) bool {
	if len(grid) == 0 {
		return false
	}
	for i := range grid {
		if !s.IsRowValid(grid, i) {
			return false
		}
	}
	return true
}
