package mini

import (
	"fmt"
	"time"
	"unicode"

	"github.com/samber/lo"

	"github.com/mcoot/dailypuzzles/internal/data"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/seed"
)

// Black is the character used for black squares in row strings
const Black = '#'

// Service selects the daily mini from a verified bank
type Service struct {
	bank []model.MiniPuzzle
}

// New converts and verifies the bank. A puzzle whose grid disagrees with its
// clues is rejected rather than served.
func New(bank []data.MiniPuzzle) (*Service, error) {
	puzzles := make([]model.MiniPuzzle, 0, len(bank))
	for i, raw := range bank {
		p := FromData(raw)
		if err := Verify(&p); err != nil {
			return nil, fmt.Errorf("mini %d (%s): %w", i, raw.Title, err)
		}
		puzzles = append(puzzles, p)
	}
	return &Service{bank: puzzles}, nil
}

// FromData converts a bank entry into a puzzle
func FromData(raw data.MiniPuzzle) model.MiniPuzzle {
	toClue := func(c data.MiniClue, _ int) model.MiniClue {
		return model.MiniClue{Number: c.Number, Clue: c.Clue, Answer: c.Answer}
	}
	return model.MiniPuzzle{
		Title:    raw.Title,
		Solution: ParseRows(raw.Solution),
		Across:   lo.Map(raw.Across, toClue),
		Down:     lo.Map(raw.Down, toClue),
	}
}

// ParseRows converts row strings to a grid. '#', '.' and spaces become zero
// (black in a solution, empty in a player's entries); letters are uppercased.
func ParseRows(rows []string) [][]rune {
	grid := make([][]rune, len(rows))
	for i, row := range rows {
		grid[i] = lo.Map([]rune(row), func(r rune, _ int) rune {
			switch r {
			case Black, '.', ' ':
				return 0
			}
			return unicode.ToUpper(r)
		})
	}
	return grid
}

// DailyPuzzle returns the mini for date, indexed by puzzle number modulo the
// bank size
func (s *Service) DailyPuzzle(date time.Time) (*model.MiniPuzzle, error) {
	if len(s.bank) == 0 {
		return nil, fmt.Errorf("%w: no mini puzzles", model.ErrEmptyBank)
	}
	n := seed.PuzzleNumber(date)
	index := (n%len(s.bank) + len(s.bank)) % len(s.bank)

	p := s.bank[index]
	p.PuzzleNumber = n
	p.Date = seed.DateString(date)
	return &p, nil
}

// CheckResult reports how a player's entries compare to the solution
type CheckResult struct {
	// Filled is true when every white square has a letter
	Filled bool
	// Solved is true when every white square matches the solution
	Solved bool
	// Wrong lists filled squares that do not match
	Wrong []Cell
}

// Cell is a grid coordinate
type Cell struct {
	Row int
	Col int
}

// CheckGrid compares entries against the solution ignoring case. Entries for
// black squares are ignored; missing rows or columns count as empty.
func CheckGrid(p *model.MiniPuzzle, entries [][]rune) CheckResult {
	result := CheckResult{Filled: true, Wrong: []Cell{}}
	for r, row := range p.Solution {
		for c, want := range row {
			if want == 0 {
				continue
			}
			got := entryAt(entries, r, c)
			if got == 0 {
				result.Filled = false
				continue
			}
			if unicode.ToUpper(got) != want {
				result.Wrong = append(result.Wrong, Cell{Row: r, Col: c})
			}
		}
	}
	result.Solved = result.Filled && len(result.Wrong) == 0
	return result
}

func entryAt(entries [][]rune, r, c int) rune {
	if r >= len(entries) || c >= len(entries[r]) {
		return 0
	}
	return entries[r][c]
}
