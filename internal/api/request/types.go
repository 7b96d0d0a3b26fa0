package request

// CipherCheckRequest is the request body for checking a cipher solution.
// Guesses maps cipher letters to the plain letters the player assigned.
type CipherCheckRequest struct {
	Difficulty string            `json:"difficulty"`
	Guesses    map[string]string `json:"guesses"`
}

// Tile is one placed Gridgram tile
type Tile struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// GridValidateRequest is the request body for validating a Gridgram grid
type GridValidateRequest struct {
	Positions []Tile `json:"positions"`
}

// ShiftCheckRequest is the request body for checking a Shift grid, one
// string per row
type ShiftCheckRequest struct {
	Difficulty string   `json:"difficulty"`
	Grid       []string `json:"grid"`
}

// SortGuessRequest is the request body for a Sort guess
type SortGuessRequest struct {
	Words   []string `json:"words"`
	Variant string   `json:"variant,omitempty"`
}

// MiniCheckRequest is the request body for checking a mini crossword.
// Rows use '.', ' ' or '#' for squares without a letter.
type MiniCheckRequest struct {
	Entries []string `json:"entries"`
}

// StarsRequest is the request body for a star rating
type StarsRequest struct {
	Difficulty string `json:"difficulty"`
	ElapsedMS  int64  `json:"elapsed_ms"`
}

// CompleteRequest is the request body for registering a finished game
type CompleteRequest struct {
	Game      string `json:"game"`
	Score     int    `json:"score"`
	ElapsedMS int64  `json:"elapsed_ms"`
}
