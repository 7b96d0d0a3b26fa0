package model

// ShiftPuzzle is an N×N letter grid whose rows must all be made into words.
// Grid is the scrambled start state, Solution the rows it was built from.
type ShiftPuzzle struct {
	PuzzleNumber int
	Date         string
	Difficulty   Difficulty
	Seed         int64
	Size         int
	Moves        int
	Grid         [][]rune
	Solution     [][]rune
}
