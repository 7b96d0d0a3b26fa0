package mini

import (
	"fmt"

	"github.com/mcoot/dailypuzzles/internal/model"
)

// CellKey formats the "row,col" key used by CellNumbers
func CellKey(row, col int) string {
	return fmt.Sprintf("%d,%d", row, col)
}

// CellNumbers numbers every cell that starts an across or down run of at
// least two white squares, in row-major order
func CellNumbers(p *model.MiniPuzzle) map[string]int {
	numbers := make(map[string]int)
	next := 1
	for r, row := range p.Solution {
		for c := range row {
			if p.IsBlack(r, c) {
				continue
			}
			if startsAcross(p, r, c) || startsDown(p, r, c) {
				numbers[CellKey(r, c)] = next
				next++
			}
		}
	}
	return numbers
}

func startsAcross(p *model.MiniPuzzle, r, c int) bool {
	return p.IsBlack(r, c-1) && !p.IsBlack(r, c+1)
}

func startsDown(p *model.MiniPuzzle, r, c int) bool {
	return p.IsBlack(r-1, c) && !p.IsBlack(r+1, c)
}

// Verify checks that every across and down run has a clue with the matching
// number and answer, and that no clue is left over
func Verify(p *model.MiniPuzzle) error {
	numbers := CellNumbers(p)
	across := clueIndex(p.Across)
	down := clueIndex(p.Down)

	for r, row := range p.Solution {
		for c := range row {
			if p.IsBlack(r, c) {
				continue
			}
			n := numbers[CellKey(r, c)]
			if startsAcross(p, r, c) {
				if err := matchClue(across, n, runWord(p, r, c, 0, 1), "across"); err != nil {
					return err
				}
			}
			if startsDown(p, r, c) {
				if err := matchClue(down, n, runWord(p, r, c, 1, 0), "down"); err != nil {
					return err
				}
			}
		}
	}

	if len(across) > 0 || len(down) > 0 {
		return fmt.Errorf("%w: %d across and %d down clues match no run", model.ErrInvalidPuzzle, len(across), len(down))
	}
	return nil
}

func clueIndex(clues []model.MiniClue) map[int]string {
	index := make(map[int]string, len(clues))
	for _, c := range clues {
		index[c.Number] = c.Answer
	}
	return index
}

// matchClue consumes the clue numbered n, failing if it is missing or its
// answer differs from word
func matchClue(clues map[int]string, n int, word, direction string) error {
	answer, ok := clues[n]
	if !ok {
		return fmt.Errorf("%w: no %d %s clue for %s", model.ErrInvalidPuzzle, n, direction, word)
	}
	if answer != word {
		return fmt.Errorf("%w: %d %s answer %s does not match grid %s", model.ErrInvalidPuzzle, n, direction, answer, word)
	}
	delete(clues, n)
	return nil
}

func runWord(p *model.MiniPuzzle, r, c, dr, dc int) string {
	var word []rune
	for !p.IsBlack(r, c) {
		word = append(word, p.Solution[r][c])
		r += dr
		c += dc
	}
	return string(word)
}
