package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/challenge"
	"github.com/mcoot/dailypuzzles/internal/services/gridgram"
	"github.com/mcoot/dailypuzzles/internal/services/grouping"
	"github.com/mcoot/dailypuzzles/internal/services/mini"
	"github.com/mcoot/dailypuzzles/internal/services/scoring"
	"github.com/mcoot/dailypuzzles/internal/services/share"
	"github.com/mcoot/dailypuzzles/internal/services/shift"
	"github.com/mcoot/dailypuzzles/internal/services/sortplay"
)

// Puzzle responses carry only what a player needs to play. Answers stay on
// the server and are checked through the check endpoints.

// Cipher is the daily cipher
type Cipher struct {
	PuzzleNumber  int    `json:"puzzle_number"`
	Date          string `json:"date"`
	Difficulty    string `json:"difficulty"`
	EncodedPhrase string `json:"encoded_phrase"`
	Hint          string `json:"hint"`
}

// CipherFromModel converts model.CipherPuzzle
func CipherFromModel(p *model.CipherPuzzle) Cipher {
	return Cipher{
		PuzzleNumber:  p.PuzzleNumber,
		Date:          p.Date,
		Difficulty:    string(p.Difficulty),
		EncodedPhrase: p.EncodedPhrase,
		Hint:          p.Hint,
	}
}

// Solved is the response of a yes/no answer check
type Solved struct {
	Solved bool `json:"solved"`
}

// Grid is the daily Gridgram rack
type Grid struct {
	PuzzleNumber int      `json:"puzzle_number"`
	Date         string   `json:"date"`
	Letters      []string `json:"letters"`
	Hint         string   `json:"hint,omitempty"`
}

// GridFromModel converts model.GridPuzzle
func GridFromModel(p *model.GridPuzzle) Grid {
	return Grid{
		PuzzleNumber: p.PuzzleNumber,
		Date:         p.Date,
		Letters:      lo.Map(p.Letters, func(r rune, _ int) string { return string(r) }),
		Hint:         p.Hint,
	}
}

// WordScore is one scored word
type WordScore struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Bonus is a named score bonus
type Bonus struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// Score is a Gridgram score breakdown
type Score struct {
	TotalScore  int         `json:"total_score"`
	WordScores  []WordScore `json:"word_scores"`
	LongestWord string      `json:"longest_word"`
	WordCount   int         `json:"word_count"`
	Bonuses     []Bonus     `json:"bonuses"`
}

// ScoreFromResult converts scoring.ScoreResult
func ScoreFromResult(r scoring.ScoreResult) Score {
	return Score{
		TotalScore: r.TotalScore,
		WordScores: lo.Map(r.WordScores, func(w scoring.WordScore, _ int) WordScore {
			return WordScore{Word: w.Word, Score: w.Score}
		}),
		LongestWord: r.LongestWord,
		WordCount:   r.WordCount,
		Bonuses: lo.Map(r.Bonuses, func(b scoring.Bonus, _ int) Bonus {
			return Bonus{Type: b.Type, Amount: b.Amount}
		}),
	}
}

// GridValidation is the result of validating a Gridgram grid
type GridValidation struct {
	IsValid        bool     `json:"is_valid"`
	Words          []string `json:"words"`
	InvalidWords   []string `json:"invalid_words"`
	IsConnected    bool     `json:"is_connected"`
	AllLettersUsed bool     `json:"all_letters_used"`
	Score          Score    `json:"score"`
}

// GridValidationFromResult converts a validation and its score
func GridValidationFromResult(v gridgram.ValidationResult, s scoring.ScoreResult) GridValidation {
	return GridValidation{
		IsValid:        v.IsValid,
		Words:          v.Words,
		InvalidWords:   v.InvalidWords,
		IsConnected:    v.IsConnected,
		AllLettersUsed: v.AllLettersUsed,
		Score:          ScoreFromResult(s),
	}
}

// Shift is the daily Shift puzzle in its scrambled state
type Shift struct {
	PuzzleNumber int      `json:"puzzle_number"`
	Date         string   `json:"date"`
	Difficulty   string   `json:"difficulty"`
	Size         int      `json:"size"`
	Moves        int      `json:"moves"`
	Grid         []string `json:"grid"`
}

// ShiftFromModel converts model.ShiftPuzzle
func ShiftFromModel(p *model.ShiftPuzzle) Shift {
	return Shift{
		PuzzleNumber: p.PuzzleNumber,
		Date:         p.Date,
		Difficulty:   string(p.Difficulty),
		Size:         p.Size,
		Moves:        p.Moves,
		Grid:         shift.Rows(p.Grid),
	}
}

// Sort is the daily Sort board
type Sort struct {
	PuzzleNumber int      `json:"puzzle_number"`
	Date         string   `json:"date"`
	Words        []string `json:"words"`
	Source       string   `json:"source"`
}

// SortFromModel converts model.SortPuzzle, shuffling its words
func SortFromModel(p *model.SortPuzzle) Sort {
	return Sort{
		PuzzleNumber: p.PuzzleNumber,
		Date:         p.Date,
		Words:        grouping.ShuffledWords(p),
		Source:       string(p.Source),
	}
}

// SortGroup is a solved Sort category
type SortGroup struct {
	Category   string   `json:"category"`
	Difficulty int      `json:"difficulty"`
	Words      []string `json:"words"`
}

// SortGuess is the result of a Sort guess
type SortGuess struct {
	Correct bool       `json:"correct"`
	Group   *SortGroup `json:"group,omitempty"`
}

// SortGuessFromGroup converts the matched group, nil for a miss
func SortGuessFromGroup(g *model.SortGroup) SortGuess {
	if g == nil {
		return SortGuess{}
	}
	return SortGuess{
		Correct: true,
		Group:   &SortGroup{Category: g.Category, Difficulty: g.Difficulty, Words: g.Words},
	}
}

// SortSolvedGroup is a group solved in a session, or revealed after a loss
type SortSolvedGroup struct {
	SortGroup
	Revealed bool `json:"revealed"`
}

// SortSession is a player's play through the day's Sort puzzle. Groups only
// appear once solved or revealed.
type SortSession struct {
	PlayerID     string            `json:"player_id"`
	Date         string            `json:"date"`
	Variant      string            `json:"variant"`
	Board        []string          `json:"board"`
	Solved       []SortSolvedGroup `json:"solved"`
	Mistakes     int               `json:"mistakes"`
	MistakesLeft int               `json:"mistakes_left"`
	Status       string            `json:"status"`
	Outcome      string            `json:"outcome,omitempty"`
	// Share is set once the session is finished
	Share        string            `json:"share,omitempty"`
}

// SortSessionFromPlay converts a saved play. shareURL is appended to the
// share text of a finished session.
func SortSessionFromPlay(p *sortplay.Play, shareURL string) SortSession {
	resp := SortSession{
		PlayerID: string(p.PlayerID),
		Date:     p.Date,
		Variant:  p.Variant,
		Board:    p.Session.Board(),
		Solved: lo.Map(p.Session.Solved(), func(g grouping.SolvedGroup, _ int) SortSolvedGroup {
			return SortSolvedGroup{
				SortGroup: SortGroup{Category: g.Category, Difficulty: g.Difficulty, Words: g.Words},
				Revealed:  g.Revealed,
			}
		}),
		Mistakes:     p.Session.Mistakes(),
		MistakesLeft: grouping.MaxMistakes - p.Session.Mistakes(),
		Status:       string(p.Session.Status()),
	}
	if p.Session.Status() != grouping.StatusPlaying {
		resp.Share = share.Sort(share.SortResult{
			PuzzleNumber: p.Session.PuzzleNumber(),
			Difficulties: p.Session.SolvedDifficulties(),
			Mistakes:     p.Session.Mistakes(),
			Won:          p.Session.Status() == grouping.StatusWon,
			URL:          shareURL,
		})
	}
	return resp
}

// MiniCell is one square of the mini grid
type MiniCell struct {
	Black  bool `json:"black"`
	Number int  `json:"number,omitempty"`
}

// MiniClue is a clue with its answer length
type MiniClue struct {
	Number int    `json:"number"`
	Clue   string `json:"clue"`
	Length int    `json:"length"`
}

// Mini is the daily mini crossword without its solution
type Mini struct {
	PuzzleNumber int          `json:"puzzle_number"`
	Date         string       `json:"date"`
	Title        string       `json:"title"`
	Cells        [][]MiniCell `json:"cells"`
	Across       []MiniClue   `json:"across"`
	Down         []MiniClue   `json:"down"`
}

// MiniFromModel converts model.MiniPuzzle
func MiniFromModel(p *model.MiniPuzzle) Mini {
	numbers := mini.CellNumbers(p)
	cells := make([][]MiniCell, len(p.Solution))
	for r, row := range p.Solution {
		cells[r] = make([]MiniCell, len(row))
		for c := range row {
			cells[r][c] = MiniCell{Black: p.IsBlack(r, c), Number: numbers[mini.CellKey(r, c)]}
		}
	}
	clues := func(in []model.MiniClue) []MiniClue {
		return lo.Map(in, func(c model.MiniClue, _ int) MiniClue {
			return MiniClue{Number: c.Number, Clue: c.Clue, Length: len(c.Answer)}
		})
	}
	return Mini{
		PuzzleNumber: p.PuzzleNumber,
		Date:         p.Date,
		Title:        p.Title,
		Cells:        cells,
		Across:       clues(p.Across),
		Down:         clues(p.Down),
	}
}

// Cell is a grid coordinate
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MiniCheck is the result of checking a mini
type MiniCheck struct {
	Filled bool   `json:"filled"`
	Solved bool   `json:"solved"`
	Wrong  []Cell `json:"wrong"`
}

// MiniCheckFromResult converts mini.CheckResult
func MiniCheckFromResult(r *mini.CheckResult) MiniCheck {
	return MiniCheck{
		Filled: r.Filled,
		Solved: r.Solved,
		Wrong:  lo.Map(r.Wrong, func(c mini.Cell, _ int) Cell { return Cell{Row: c.Row, Col: c.Col} }),
	}
}

// Stars is a star rating
type Stars struct {
	Stars int `json:"stars"`
}

// GameScore is one game's line in a challenge
type GameScore struct {
	Game      string `json:"game"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Completed bool   `json:"completed"`
}

// Stats are a player's lifetime challenge stats
type Stats struct {
	CurrentStreak            int    `json:"current_streak"`
	LongestStreak            int    `json:"longest_streak"`
	TotalChallengesCompleted int    `json:"total_challenges_completed"`
	TotalStars               int    `json:"total_stars"`
	LastCompletedDate        string `json:"last_completed_date,omitempty"`
}

// StatsFromModel converts model.PlayerStats
func StatsFromModel(s *model.PlayerStats) Stats {
	return Stats{
		CurrentStreak:            s.CurrentStreak,
		LongestStreak:            s.LongestStreak,
		TotalChallengesCompleted: s.TotalChallengesCompleted,
		TotalStars:               s.TotalStars,
		LastCompletedDate:        s.LastCompletedDate,
	}
}

// Challenge is a player's challenge for the day
type Challenge struct {
	PlayerID         string      `json:"player_id"`
	Date             string      `json:"date"`
	Games            []GameScore `json:"games"`
	IsFullyCompleted bool        `json:"is_fully_completed"`
	CompositeScore   int         `json:"composite_score"`
	FinishedAt       *time.Time  `json:"finished_at,omitempty"`
	Stats            Stats       `json:"stats"`
	NextPuzzleIn     string      `json:"next_puzzle_in"`
	JustFinished     bool        `json:"just_finished,omitempty"`
}

// ChallengeFromModel converts a challenge state and the player's stats
func ChallengeFromModel(state *model.ChallengeState, stats *model.PlayerStats, untilNext time.Duration) Challenge {
	return Challenge{
		PlayerID: string(state.PlayerID),
		Date:     state.Date,
		Games: lo.Map(challenge.ScoreBreakdown(state), func(g challenge.GameScore, _ int) GameScore {
			return GameScore{Game: string(g.ID), Name: g.Name, Score: g.Score, Completed: g.Completed}
		}),
		IsFullyCompleted: state.IsFullyCompleted,
		CompositeScore:   state.CompositeScore,
		FinishedAt:       state.FinishedAt,
		Stats:            StatsFromModel(stats),
		NextPuzzleIn:     challenge.FormatTimeRemaining(untilNext),
	}
}

// Health is the health check response
type Health struct {
	Status     string `json:"status"`
	Dictionary int    `json:"dictionary_words"`
	Today      string `json:"today"`
}
