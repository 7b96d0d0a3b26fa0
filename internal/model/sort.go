package model

// SortGroup is one category of four words in a Sort puzzle
type SortGroup struct {
	Category   string
	Difficulty int
	Words      []string
}

// SortPuzzle is the daily word grouping puzzle: four groups, one per
// difficulty tier, sixteen distinct words.
type SortPuzzle struct {
	PuzzleNumber int
	Date         string
	Groups       []SortGroup
	Source       PuzzleSource
}

// AllWords returns the sixteen words in group order
func (p *SortPuzzle) AllWords() []string {
	var words []string
	for _, g := range p.Groups {
		words = append(words, g.Words...)
	}
	return words
}

// SolvedSortGroup is a group a player solved, or one revealed after a loss
type SolvedSortGroup struct {
	SortGroup
	Revealed bool
}

// SortSessionState is a player's saved play through one day's Sort puzzle.
// Variant is "generated" for the procedural puzzle and "bank" otherwise.
type SortSessionState struct {
	PlayerID PlayerID
	Date     string
	Variant  string
	Board    []string
	Solved   []SolvedSortGroup
	Mistakes int
	Status   string
}
