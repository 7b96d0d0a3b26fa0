package model

// Direction is the orientation of a placed word
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Delta returns the row and column step for one letter in direction d
func (d Direction) Delta() (int, int) {
	if d == Vertical {
		return 1, 0
	}
	return 0, 1
}

// Perpendicular returns the crossing direction
func (d Direction) Perpendicular() Direction {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// GridPosition is a single placed tile
type GridPosition struct {
	Row    int
	Col    int
	Letter rune
}

// PlacedWord anchors a word in a generated solution grid
type PlacedWord struct {
	Word      string
	Row       int
	Col       int
	Direction Direction
}

// PuzzleSource records how a daily puzzle was produced
type PuzzleSource string

const (
	SourceGenerated PuzzleSource = "generated"
	SourceFallback  PuzzleSource = "fallback"
	SourceBank      PuzzleSource = "bank"
)

// GridPuzzle is the daily Gridgram rack. Only the letters are exposed to
// players; Words is the solution the rack was built from.
type GridPuzzle struct {
	PuzzleNumber int
	Date         string
	Seed         int64
	Letters      []rune
	Words        []PlacedWord
	Hint         string
	Source       PuzzleSource
}
