package gridgram

import (
	"unicode"

	"github.com/mcoot/dailypuzzles/internal/model"
)

// empty marks an unfilled cell in a drawn layout
const empty = '.'

// LayoutTiles reads a solution drawn row by row into tile positions
func LayoutTiles(rows []string) []model.GridPosition {
	var tiles []model.GridPosition
	for r, row := range rows {
		for c, l := range []rune(row) {
			if l != empty {
				tiles = append(tiles, model.GridPosition{Row: r, Col: c, Letter: unicode.ToUpper(l)})
			}
		}
	}
	return tiles
}

// LayoutWords returns the words of a drawn solution, each anchored at its
// first letter. Horizontal words come first.
func LayoutWords(rows []string) []model.PlacedWord {
	grid := make([][]rune, len(rows))
	for i, row := range rows {
		grid[i] = []rune(row)
	}
	at := func(r, c int) rune {
		if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[r]) {
			return empty
		}
		return unicode.ToUpper(grid[r][c])
	}

	var words []model.PlacedWord
	for _, direction := range []model.Direction{model.Horizontal, model.Vertical} {
		dr, dc := direction.Delta()
		for r := range grid {
			for c := range grid[r] {
				if at(r, c) == empty || at(r-dr, c-dc) != empty {
					continue
				}
				var word []rune
				for rr, cc := r, c; at(rr, cc) != empty; rr, cc = rr+dr, cc+dc {
					word = append(word, at(rr, cc))
				}
				if len(word) >= 2 {
					words = append(words, model.PlacedWord{Word: string(word), Row: r, Col: c, Direction: direction})
				}
			}
		}
	}
	return words
}
