package shift

import "fmt"

// Direction is the way a row or column is rotated
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Inverse returns the direction that undoes d
func (d Direction) Inverse() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	return d
}

// Move is a single rotation of a row (Left/Right) or column (Up/Down)
type Move struct {
	Index     int
	Direction Direction
}

// IsRow reports whether the move rotates a row
func (m Move) IsRow() bool {
	return m.Direction == Left || m.Direction == Right
}

// Apply returns grid with the move applied
func (m Move) Apply(grid [][]rune) [][]rune {
	if m.IsRow() {
		return ShiftRow(grid, m.Index, m.Direction)
	}
	return ShiftColumn(grid, m.Index, m.Direction)
}

// ShiftRow returns a copy of grid with row rotated one cell. Left moves the
// first letter to the end, Right moves the last letter to the front.
// An index outside the grid panics.
func ShiftRow(grid [][]rune, row int, dir Direction) [][]rune {
	if row < 0 || row >= len(grid) {
		panic(fmt.Sprintf("shift: row %d out of range [0,%d)", row, len(grid)))
	}
	out := Clone(grid)
	r := out[row]
	if len(r) < 2 {
		return out
	}
	switch dir {
	case Left:
		first := r[0]
		copy(r, r[1:])
		r[len(r)-1] = first
	case Right:
		last := r[len(r)-1]
		copy(r[1:], r[:len(r)-1])
		r[0] = last
	default:
		panic(fmt.Sprintf("shift: %q is not a row direction", dir))
	}
	return out
}

// ShiftColumn returns a copy of grid with col rotated one cell. Up moves the
// top letter to the bottom, Down moves the bottom letter to the top.
// An index outside the grid panics.
func ShiftColumn(grid [][]rune, col int, dir Direction) [][]rune {
	if len(grid) == 0 || col < 0 || col >= len(grid[0]) {
		panic(fmt.Sprintf("shift: column %d out of range", col))
	}
	out := Clone(grid)
	n := len(out)
	if n < 2 {
		return out
	}
	switch dir {
	case Up:
		top := out[0][col]
		for i := 0; i < n-1; i++ {
			out[i][col] = out[i+1][col]
		}
		out[n-1][col] = top
	case Down:
		bottom := out[n-1][col]
		for i := n - 1; i > 0; i-- {
			out[i][col] = out[i-1][col]
		}
		out[0][col] = bottom
	default:
		panic(fmt.Sprintf("shift: %q is not a column direction", dir))
	}
	return out
}

// Clone deep-copies a grid
func Clone(grid [][]rune) [][]rune {
	out := make([][]rune, len(grid))
	for i, row := range grid {
		out[i] = append([]rune(nil), row...)
	}
	return out
}

// RowWord returns the letters of row as a string
func RowWord(grid [][]rune, row int) string {
	if row < 0 || row >= len(grid) {
		return ""
	}
	return string(grid[row])
}

// FromRows builds a grid from one string per row
func FromRows(rows []string) [][]rune {
	grid := make([][]rune, len(rows))
	for i, r := range rows {
		grid[i] = []rune(r)
	}
	return grid
}

// Rows renders a grid as one string per row
func Rows(grid [][]rune) []string {
	rows := make([]string, len(grid))
	for i := range grid {
		rows[i] = string(grid[i])
	}
	return rows
}
