package shift

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/dailypuzzles/internal/data"
	"github.com/mcoot/dailypuzzles/internal/dependencies/mocks"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/dictionary"
	"github.com/mcoot/dailypuzzles/internal/storage/memory"
)

type PuzzleSuite struct {
	suite.Suite
	service *Service
}

func TestPuzzleSuite(t *testing.T) {
	suite.Run(t, new(PuzzleSuite))
}

func (s *PuzzleSuite) SetupTest() {
	pools, err := data.LoadPools()
	s.Require().NoError(err)
	dict := dictionary.New(memory.New(), pools)
	s.Require().NoError(dict.LoadEmbedded(context.Background()))
	s.service = New(dict)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func (s *PuzzleSuite) TestKnownDailyPuzzles() {
	cases := []struct {
		difficulty model.Difficulty
		date       time.Time
		seed       int64
		solution   []string
		moves      int
		grid       []string
	}{
		{model.DifficultyEasy, day(2026, time.January, 11), 1161766761,
			[]string{"YARD", "DRAG", "STEP", "SILK"}, 4, []string{"SALD", "RGYR", "DTAP", "SIEK"}},
		{model.DifficultyMedium, day(2026, time.January, 11), 1161774761,
			[]string{"CATCH", "BROOM", "BLEED", "ALONG", "CHIPS"}, 9, []string{"CRECS", "LOOOH", "AELMB", "BGHID", "CATPN"}},
		{model.DifficultyHard, day(2026, time.January, 11), 1161769761,
			[]string{"CHARM", "CLOAK", "CREEK", "BLUFF", "AWARD"}, 14, []string{"MCHOA", "CLERK", "BRLAK", "FAAER", "DCWFU"}},
		{model.DifficultyEasy, day(2026, time.March, 15), 1161826347,
			[]string{"DAYS", "FIST", "NEXT", "HIKE"}, 4, []string{"DAYS", "FIST", "NEXT", "KEHI"}},
		{model.DifficultyMedium, day(2026, time.March, 15), 1161834347,
			[]string{"BADLY", "CLEAR", "CARRY", "BOOTS", "CASES"}, 10, []string{"CADES", "CAELY", "BLRAR", "RYAOS", "BCOTS"}},
		{model.DifficultyHard, day(2026, time.March, 15), 1161829347,
			[]string{"BEAST", "BROKE", "CRUEL", "ANKLE", "BLUNT"}, 14, []string{"BUASB", "LEOKT", "KRNUE", "ARLBE", "LCNTE"}},
	}

	for _, tc := range cases {
		p, err := s.service.DailyPuzzle(tc.difficulty, tc.date)
		s.Require().NoError(err)

		s.Equal(tc.seed, p.Seed, "%s %s", tc.difficulty, p.Date)
		s.Equal(tc.solution, Rows(p.Solution), "%s %s", tc.difficulty, p.Date)
		s.Equal(tc.moves, p.Moves)
		s.Equal(tc.grid, Rows(p.Grid), "%s %s", tc.difficulty, p.Date)
		s.Equal(len(tc.solution), p.Size)
	}
}

func (s *PuzzleSuite) TestDeterministic() {
	a, err := s.service.DailyPuzzle(model.DifficultyHard, day(2026, time.June, 1))
	s.Require().NoError(err)
	b, err := s.service.DailyPuzzle(model.DifficultyHard, day(2026, time.June, 1))
	s.Require().NoError(err)
	s.Equal(a, b)
}

func (s *PuzzleSuite) TestScrambleKeepsLetters() {
	for _, d := range model.Difficulties {
		p, err := s.service.DailyPuzzle(d, day(2026, time.February, 2))
		s.Require().NoError(err)
		s.ElementsMatch(flatten(p.Solution), flatten(p.Grid))
	}
}

func (s *PuzzleSuite) TestDepthRanges() {
	for i := 0; i < 40; i++ {
		date := day(2026, time.January, 1).AddDate(0, 0, i)
		medium, err := s.service.DailyPuzzle(model.DifficultyMedium, date)
		s.Require().NoError(err)
		s.GreaterOrEqual(medium.Moves, 6)
		s.LessOrEqual(medium.Moves, 10)

		hard, err := s.service.DailyPuzzle(model.DifficultyHard, date)
		s.Require().NoError(err)
		s.GreaterOrEqual(hard.Moves, 12)
		s.LessOrEqual(hard.Moves, 18)
	}
}

func (s *PuzzleSuite) TestInvalidDifficulty() {
	_, err := s.service.DailyPuzzle("extreme", day(2026, time.January, 11))
	s.ErrorIs(err, model.ErrInvalidDifficulty)
}

func (s *PuzzleSuite) TestSolutionRowsAreValid() {
	p, err := s.service.DailyPuzzle(model.DifficultyMedium, day(2026, time.January, 11))
	s.Require().NoError(err)

	s.True(s.service.CheckAllRowsValid(p.Solution))
	s.True(s.service.IsRowValid(p.Solution, 0))
	s.False(s.service.IsRowValid(p.Grid, 0))
	s.False(s.service.CheckAllRowsValid(p.Grid))
}

func (s *PuzzleSuite) TestAnyValidRowsWin() {
	grid := FromRows([]string{"CAKE", "DOOR", "FISH", "LAMP"})
	s.True(s.service.CheckAllRowsValid(grid))
	s.False(s.service.CheckAllRowsValid(nil))
}

func (s *PuzzleSuite) TestScrambleEasyOrder() {
	rng := mocks.NewMockRandom()
	rng.QueueIntn(1, 2, 3, 0)
	rng.QueueFloat64(0.9, 0.1, 0.9, 0.1)

	moves := Scramble(model.DifficultyEasy, 4, rng)
	s.Equal([]Move{{1, Up}, {2, Down}, {3, Left}, {0, Right}}, moves)
}

func (s *PuzzleSuite) TestScrambleEasyColumnMovesMayCancel() {
	rng := mocks.NewMockRandom()
	rng.QueueIntn(2, 2, 0, 1)
	rng.QueueFloat64(0.9, 0.1, 0.9, 0.9)

	moves := Scramble(model.DifficultyEasy, 4, rng)
	s.Equal([]Move{{2, Up}, {2, Down}, {0, Left}, {1, Left}}, moves)

	// the column pair undoes itself and only the row moves remain
	solution := FromRows([]string{"CAKE", "DOOR", "FISH", "LAMP"})
	grid := moves[1].Apply(moves[0].Apply(solution))
	s.Equal(Rows(solution), Rows(grid))
}

func (s *PuzzleSuite) TestScrambleMixedDrawsDepthFirst() {
	rng := mocks.NewMockRandom()
	// depth 6+0, then per move: isRow, index, direction
	rng.QueueIntn(0, 4, 1, 2, 0, 0, 0, 0)
	rng.QueueFloat64(0.9, 0.9, 0.1, 0.1)

	moves := Scramble(model.DifficultyMedium, 5, rng)
	s.Len(moves, 6)
	s.Equal(Move{4, Left}, moves[0])
	s.Equal(Move{1, Down}, moves[1])
}

func flatten(grid [][]rune) []rune {
	var out []rune
	for _, row := range grid {
		out = append(out, row...)
	}
	return out
}
