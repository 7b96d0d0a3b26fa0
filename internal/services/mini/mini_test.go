package mini

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/dailypuzzles/internal/data"
	"github.com/mcoot/dailypuzzles/internal/model"
)

type MiniSuite struct {
	suite.Suite
	service *Service
}

func TestMiniSuite(t *testing.T) {
	suite.Run(t, new(MiniSuite))
}

func (s *MiniSuite) SetupTest() {
	bank, err := data.MiniPuzzles()
	s.Require().NoError(err)
	s.service, err = New(bank)
	s.Require().NoError(err)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func seaside() *model.MiniPuzzle {
	p := FromData(data.MiniPuzzle{
		Title:    "Seaside",
		Solution: []string{"SOB##", "PIER#", "ALLOY", "#SOLE", "##WET"},
		Across: []data.MiniClue{
			{Number: 1, Answer: "SOB"}, {Number: 4, Answer: "PIER"}, {Number: 6, Answer: "ALLOY"},
			{Number: 8, Answer: "SOLE"}, {Number: 9, Answer: "WET"},
		},
		Down: []data.MiniClue{
			{Number: 1, Answer: "SPA"}, {Number: 2, Answer: "OILS"}, {Number: 3, Answer: "BELOW"},
			{Number: 5, Answer: "ROLE"}, {Number: 7, Answer: "YET"},
		},
	})
	return &p
}

func (s *MiniSuite) TestCellNumbers() {
	s.Equal(map[string]int{
		"0,0": 1, "0,1": 2, "0,2": 3,
		"1,0": 4, "1,3": 5,
		"2,0": 6, "2,4": 7,
		"3,1": 8,
		"4,2": 9,
	}, CellNumbers(seaside()))
}

func (s *MiniSuite) TestCellNumbersOpenGrid() {
	p := FromData(data.MiniPuzzle{Solution: []string{"ABC", "DEF", "GHI"}})
	s.Equal(map[string]int{
		"0,0": 1, "0,1": 2, "0,2": 3,
		"1,0": 4,
		"2,0": 5,
	}, CellNumbers(&p))
}

func (s *MiniSuite) TestSingleCellRunsAreNotNumbered() {
	p := FromData(data.MiniPuzzle{Solution: []string{"A#B", "###", "C#D"}})
	s.Empty(CellNumbers(&p))
}

func (s *MiniSuite) TestVerify() {
	s.NoError(Verify(seaside()))
}

func (s *MiniSuite) TestVerifyWrongAnswer() {
	p := seaside()
	p.Down[2].Answer = "BELOX"
	s.ErrorIs(Verify(p), model.ErrInvalidPuzzle)
}

func (s *MiniSuite) TestVerifyMissingClue() {
	p := seaside()
	p.Across = p.Across[:4]
	s.ErrorIs(Verify(p), model.ErrInvalidPuzzle)
}

func (s *MiniSuite) TestVerifyExtraClue() {
	p := seaside()
	p.Across = append(p.Across, model.MiniClue{Number: 10, Answer: "EXTRA"})
	s.ErrorIs(Verify(p), model.ErrInvalidPuzzle)
}

func (s *MiniSuite) TestNewRejectsBrokenBank() {
	_, err := New([]data.MiniPuzzle{{Title: "bad", Solution: []string{"AB", "CD"}}})
	s.ErrorIs(err, model.ErrInvalidPuzzle)
}

func (s *MiniSuite) TestDailyPuzzleIndexing() {
	bank, err := data.MiniPuzzles()
	s.Require().NoError(err)

	p, err := s.service.DailyPuzzle(day(2026, time.January, 11))
	s.Require().NoError(err)
	s.Equal(1, p.PuzzleNumber)
	s.Equal("2026-01-11", p.Date)
	s.Equal(bank[1].Title, p.Title)

	p, err = s.service.DailyPuzzle(day(2026, time.January, 18))
	s.Require().NoError(err)
	s.Equal(8, p.PuzzleNumber)
	s.Equal(bank[0].Title, p.Title)
}

func (s *MiniSuite) TestDailyPuzzleBeforeEpoch() {
	bank, err := data.MiniPuzzles()
	s.Require().NoError(err)

	p, err := s.service.DailyPuzzle(day(2026, time.January, 9))
	s.Require().NoError(err)
	s.Equal(-1, p.PuzzleNumber)
	s.Equal(bank[7].Title, p.Title)
}

func (s *MiniSuite) TestDailyPuzzleDoesNotShareState() {
	a, err := s.service.DailyPuzzle(day(2026, time.January, 11))
	s.Require().NoError(err)
	b, err := s.service.DailyPuzzle(day(2026, time.January, 19))
	s.Require().NoError(err)

	s.Equal(a.Title, b.Title)
	s.NotEqual(a.PuzzleNumber, b.PuzzleNumber)
}

func (s *MiniSuite) TestEmptyBank() {
	svc, err := New(nil)
	s.Require().NoError(err)
	_, err = svc.DailyPuzzle(day(2026, time.January, 11))
	s.ErrorIs(err, model.ErrEmptyBank)
}

func (s *MiniSuite) TestCheckGridSolved() {
	entries := ParseRows([]string{"sob##", "PIER#", "alloy", "#SOLE", "##WET"})
	result := CheckGrid(seaside(), entries)

	s.True(result.Filled)
	s.True(result.Solved)
	s.Empty(result.Wrong)
}

func (s *MiniSuite) TestCheckGridIncomplete() {
	entries := ParseRows([]string{"SOB", "PIER", "ALL Y"})
	result := CheckGrid(seaside(), entries)

	s.False(result.Filled)
	s.False(result.Solved)
	s.Empty(result.Wrong)
}

func (s *MiniSuite) TestCheckGridWrongLetters() {
	entries := ParseRows([]string{"SOB##", "PEER#", "ALLOY", "#SOLE", "##WIT"})
	result := CheckGrid(seaside(), entries)

	s.True(result.Filled)
	s.False(result.Solved)
	s.Equal([]Cell{{Row: 1, Col: 1}, {Row: 4, Col: 3}}, result.Wrong)
}

func (s *MiniSuite) TestCheckGridIgnoresBlackSquares() {
	entries := ParseRows([]string{"SOBXX", "PIERX", "ALLOY", "XSOLE", "XXWET"})
	s.True(CheckGrid(seaside(), entries).Solved)
}
