package gridgram

import "github.com/mcoot/dailypuzzles/internal/model"

type cell struct {
	row, col int
}

// Grid is the generator's scratch board. It remembers the order in which
// cells were first filled, because the puzzle rack is read in that order.
type Grid struct {
	cells map[cell]rune
	order []cell
}

// NewGrid creates an empty grid
func NewGrid() *Grid {
	return &Grid{cells: make(map[cell]rune)}
}

// Get returns the letter at (row, col)
func (g *Grid) Get(row, col int) (rune, bool) {
	l, ok := g.cells[cell{row, col}]
	return l, ok
}

// Size returns the number of filled cells
func (g *Grid) Size() int {
	return len(g.order)
}

// Letters returns every filled cell's letter in first-fill order
func (g *Grid) Letters() []rune {
	out := make([]rune, len(g.order))
	for i, c := range g.order {
		out[i] = g.cells[c]
	}
	return out
}

// Positions returns every filled cell in first-fill order
func (g *Grid) Positions() []model.GridPosition {
	out := make([]model.GridPosition, len(g.order))
	for i, c := range g.order {
		out[i] = model.GridPosition{Row: c.row, Col: c.col, Letter: g.cells[c]}
	}
	return out
}

// CanPlace reports whether word fits at (row, col) in direction without
// overwriting a different letter
func (g *Grid) CanPlace(word string, row, col int, direction model.Direction) bool {
	dr, dc := direction.Delta()
	for i, l := range []rune(word) {
		if existing, ok := g.Get(row+i*dr, col+i*dc); ok && existing != l {
			return false
		}
	}
	return true
}

// Place writes word into the grid
func (g *Grid) Place(word string, row, col int, direction model.Direction) {
	dr, dc := direction.Delta()
	for i, l := range []rune(word) {
		c := cell{row + i*dr, col + i*dc}
		if _, ok := g.cells[c]; !ok {
			g.order = append(g.order, c)
		}
		g.cells[c] = l
	}
}
