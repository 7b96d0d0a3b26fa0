package model

// MiniClue is a numbered across or down clue
type MiniClue struct {
	Number int
	Clue   string
	Answer string
}

// MiniPuzzle is a hand-authored 5×5 crossword. A zero rune in Solution
// marks a black square.
type MiniPuzzle struct {
	PuzzleNumber int
	Date         string
	Title        string
	Solution     [][]rune
	Across       []MiniClue
	Down         []MiniClue
}

// IsBlack reports whether (row, col) is a black square or off the grid
func (p *MiniPuzzle) IsBlack(row, col int) bool {
	if row < 0 || row >= len(p.Solution) || col < 0 || col >= len(p.Solution[row]) {
		return true
	}
	return p.Solution[row][col] == 0
}
