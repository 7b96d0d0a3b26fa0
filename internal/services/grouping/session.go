package grouping

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/dailypuzzles/internal/dependencies/random"
	"github.com/mcoot/dailypuzzles/internal/model"
)

// MaxMistakes is the number of wrong guesses that loses a puzzle
const MaxMistakes = 4

// Status is the state of a Sort session
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// GuessOutcome classifies a submitted guess
type GuessOutcome string

const (
	GuessCorrect   GuessOutcome = "correct"
	GuessIncorrect GuessOutcome = "incorrect"
	// GuessRejected is a guess that could not be judged: wrong size, a
	// repeated word, a word not on the board, or the game is already over.
	// It never costs a mistake.
	GuessRejected GuessOutcome = "rejected"
)

// SolvedGroup is a group in the order it was solved or revealed
type SolvedGroup struct {
	model.SortGroup
	SolvedOrder int
	Revealed    bool
}

// GuessResult is the outcome of Session.Guess
type GuessResult struct {
	Outcome  GuessOutcome
	Group    *model.SortGroup
	Mistakes int
	Status   Status
}

// Session tracks one player's play through a Sort puzzle
type Session struct {
	puzzle   *model.SortPuzzle
	board    []string
	solved   []SolvedGroup
	mistakes int
	status   Status
}

// NewSession starts a session with the board in the puzzle's daily order
func NewSession(puzzle *model.SortPuzzle) *Session {
	return &Session{
		puzzle: puzzle,
		board:  ShuffledWords(puzzle),
		status: StatusPlaying,
	}
}

// RestoreSession resumes a saved session against its puzzle
func RestoreSession(puzzle *model.SortPuzzle, state *model.SortSessionState) *Session {
	s := &Session{
		puzzle:   puzzle,
		board:    slices.Clone(state.Board),
		mistakes: state.Mistakes,
		status:   Status(state.Status),
	}
	if s.status == "" {
		s.status = StatusPlaying
	}
	for i, g := range state.Solved {
		s.solved = append(s.solved, SolvedGroup{SortGroup: g.SortGroup, SolvedOrder: i + 1, Revealed: g.Revealed})
	}
	return s
}

// State returns the session's progress for saving. The caller fills in the
// player, date and variant.
func (s *Session) State() model.SortSessionState {
	return model.SortSessionState{
		Board: slices.Clone(s.board),
		Solved: lo.Map(s.solved, func(g SolvedGroup, _ int) model.SolvedSortGroup {
			return model.SolvedSortGroup{SortGroup: g.SortGroup, Revealed: g.Revealed}
		}),
		Mistakes: s.mistakes,
		Status:   string(s.status),
	}
}

// PuzzleNumber is the number of the puzzle being played
func (s *Session) PuzzleNumber() int { return s.puzzle.PuzzleNumber }

// Board returns the unsolved words in display order
func (s *Session) Board() []string { return slices.Clone(s.board) }

// Solved returns the solved and revealed groups in order
func (s *Session) Solved() []SolvedGroup { return slices.Clone(s.solved) }

// Mistakes returns the number of incorrect guesses so far
func (s *Session) Mistakes() int { return s.mistakes }

// Status returns whether the session is in play, won or lost
func (s *Session) Status() Status { return s.status }

// Guess submits four words from the board
func (s *Session) Guess(words []string) GuessResult {
	result := GuessResult{Outcome: GuessRejected, Mistakes: s.mistakes, Status: s.status}
	if s.status != StatusPlaying || len(words) != GroupSize {
		return result
	}
	upper := lo.Map(words, func(w string, _ int) string { return strings.ToUpper(w) })
	if len(lo.Uniq(upper)) != GroupSize || !lo.Every(s.board, upper) {
		return result
	}

	group := CheckGuess(s.puzzle, upper)
	if group == nil {
		s.mistakes++
		if s.mistakes >= MaxMistakes {
			s.reveal()
		}
		result.Outcome = GuessIncorrect
		result.Mistakes = s.mistakes
		result.Status = s.status
		return result
	}

	s.solve(*group, false)
	if len(s.solved) == Tiers {
		s.status = StatusWon
	}
	result.Outcome = GuessCorrect
	result.Group = group
	result.Status = s.status
	return result
}

// Shuffle reorders the remaining board words. The daily order is fixed, so
// this uses whatever rng the caller supplies, normally a CryptoRandom.
func (s *Session) Shuffle(rng random.Random) {
	s.board = random.Shuffle(rng, s.board)
}

// SolvedDifficulties returns the tier of each solved group in solved order
func (s *Session) SolvedDifficulties() []int {
	return lo.Map(s.solved, func(g SolvedGroup, _ int) int { return g.Difficulty })
}

func (s *Session) solve(group model.SortGroup, revealed bool) {
	s.solved = append(s.solved, SolvedGroup{
		SortGroup:   group,
		SolvedOrder: len(s.solved) + 1,
		Revealed:    revealed,
	})
	s.board = lo.Without(s.board, upperWords(group.Words)...)
}

// reveal appends every unsolved group in puzzle order and ends the game
func (s *Session) reveal() {
	for _, g := range s.puzzle.Groups {
		if lo.ContainsBy(s.solved, func(sg SolvedGroup) bool { return sg.Category == g.Category }) {
			continue
		}
		s.solve(g, true)
	}
	s.board = nil
	s.status = StatusLost
}

func upperWords(words []string) []string {
	return lo.Map(words, func(w string, _ int) string { return strings.ToUpper(w) })
}
