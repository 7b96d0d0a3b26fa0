package gridgram

import (
	"github.com/samber/lo"

	"github.com/mcoot/dailypuzzles/internal/dependencies/random"
	"github.com/mcoot/dailypuzzles/internal/model"
)

const (
	// DefaultTarget is the rack size the daily puzzle aims for
	DefaultTarget = 12

	// MaxAttempts bounds the number of fresh grids tried per seed
	MaxAttempts = 100
)

// OutcomeKind tags the result of a generation run
type OutcomeKind string

const (
	OutcomeGenerated OutcomeKind = "generated"
	OutcomeExhausted OutcomeKind = "exhausted"
)

// Solution is a generated crossword
type Solution struct {
	Grid  *Grid
	Words []model.PlacedWord
}

// Letters returns the solution's letters in first-fill order
func (s *Solution) Letters() []rune {
	return s.Grid.Letters()
}

// Outcome is the result of GenerateSolution. Solution is nil when exhausted.
type Outcome struct {
	Kind     OutcomeKind
	Solution *Solution
	// Attempts is the number of grids built, including the accepted one
	Attempts int
}

// WordSource provides generation pools by word length
type WordSource interface {
	WordsOfLength(length int) []string
}

type crossing struct {
	row, col  int
	direction model.Direction
}

// GenerateSolution builds a connected crossword whose cell count lands in
// [target-1, target+1]. Each attempt starts a fresh grid with a medium word
// across the origin, then walks a shuffled list of candidates, placing each
// at a random valid crossing, until the grid reaches target cells. All
// attempts share one generator seeded with seed.
func GenerateSolution(words WordSource, seed int64, target int) Outcome {
	var pool []string
	for length := 3; length <= 6; length++ {
		pool = append(pool, words.WordsOfLength(length)...)
	}
	short := filterLength(pool, 3, 5)
	medium := filterLength(pool, 4, 6)
	if len(medium) == 0 {
		return Outcome{Kind: OutcomeExhausted}
	}
	candidates := append(append([]string{}, short...), medium...)

	rng := random.NewLCG(seed)
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		sol := buildAttempt(rng, medium, candidates, target)
		size := sol.Grid.Size()
		if size >= target-1 && size <= target+1 {
			return Outcome{Kind: OutcomeGenerated, Solution: sol, Attempts: attempt}
		}
	}
	return Outcome{Kind: OutcomeExhausted, Attempts: MaxAttempts}
}

func buildAttempt(rng random.Random, medium, candidates []string, target int) *Solution {
	grid := NewGrid()
	sol := &Solution{Grid: grid}

	start := random.Shuffle(rng, medium)[0]
	grid.Place(start, 0, 0, model.Horizontal)
	sol.Words = append(sol.Words, model.PlacedWord{Word: start, Direction: model.Horizontal})

	for _, word := range random.Shuffle(rng, candidates) {
		if grid.Size() >= target {
			break
		}
		if sol.has(word) {
			continue
		}
		options := findCrossings(grid, sol.Words, word)
		if len(options) == 0 {
			continue
		}
		c := options[rng.Intn(len(options))]
		grid.Place(word, c.row, c.col, c.direction)
		sol.Words = append(sol.Words, model.PlacedWord{Word: word, Row: c.row, Col: c.col, Direction: c.direction})
	}
	return sol
}

func (s *Solution) has(word string) bool {
	for _, w := range s.Words {
		if w.Word == word {
			return true
		}
	}
	return false
}

// findCrossings lists every perpendicular placement of word that shares a
// letter with a placed word and does not overwrite anything
func findCrossings(grid *Grid, placed []model.PlacedWord, word string) []crossing {
	target := []rune(word)
	var out []crossing
	for _, p := range placed {
		dr, dc := p.Direction.Delta()
		dir := p.Direction.Perpendicular()
		ndr, ndc := dir.Delta()
		for i, pl := range []rune(p.Word) {
			row, col := p.Row+i*dr, p.Col+i*dc
			for j, tl := range target {
				if tl != pl {
					continue
				}
				startRow, startCol := row-j*ndr, col-j*ndc
				if grid.CanPlace(word, startRow, startCol, dir) {
					out = append(out, crossing{row: startRow, col: startCol, direction: dir})
				}
			}
		}
	}
	return out
}

func filterLength(words []string, shortest, longest int) []string {
	return lo.Filter(words, func(w string, _ int) bool {
		return len(w) >= shortest && len(w) <= longest
	})
}
