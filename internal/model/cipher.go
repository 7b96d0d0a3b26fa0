package model

// CipherMapping maps each plain letter A-Z to its cipher letter
type CipherMapping map[rune]rune

// CipherPuzzle is the daily substitution cipher for one difficulty
type CipherPuzzle struct {
	PuzzleNumber   int
	Difficulty     Difficulty
	Date           string
	OriginalPhrase string
	EncodedPhrase  string
	Mapping        CipherMapping
	Hint           string
	Seed           int64
}
