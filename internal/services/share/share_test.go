package share

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/dailypuzzles/internal/model"
)

type ShareSuite struct {
	suite.Suite
}

func TestShareSuite(t *testing.T) {
	suite.Run(t, new(ShareSuite))
}

func (s *ShareSuite) TestCipherTwoStarsWithStreak() {
	text := Cipher(CipherResult{
		PuzzleNumber: 12,
		Difficulty:   model.DifficultyEasy,
		Elapsed:      45*time.Second + 900*time.Millisecond,
		Streak:       3,
	})
	s.Equal("The Daily Littles — Cipher\nLittle #12\n⭐⭐☆\n⏱️ 0:45 • 🔥 3 day streak", text)
}

func (s *ShareSuite) TestCipherHidesShortStreak() {
	text := Cipher(CipherResult{
		PuzzleNumber: 1,
		Difficulty:   model.DifficultyHard,
		Elapsed:      16 * time.Minute,
		Streak:       1,
		URL:          "https://littles.example",
	})
	s.Equal("The Daily Littles — Cipher\nLittle #1\n⭐☆☆\n⏱️ 16:00\n\nhttps://littles.example", text)
}

func (s *ShareSuite) TestSortWon() {
	text := Sort(SortResult{PuzzleNumber: 7, Difficulties: []int{1, 3, 2, 4}, Won: true})
	s.Equal("The Daily Littles — Sort\nLittle #7 ✅\n\n🟨🟨🟨🟨\n🟦🟦🟦🟦\n🟩🟩🟩🟩\n🟪🟪🟪🟪\n\nPerfect! 🎯", text)
}

func (s *ShareSuite) TestSortLost() {
	text := Sort(SortResult{PuzzleNumber: 8, Difficulties: []int{2, 1, 3, 4}, Mistakes: 4})
	s.Contains(text, "Little #8 ❌")
	s.Contains(text, "\n\n4/4 mistakes")
	s.Contains(text, "🟩🟩🟩🟩\n🟨🟨🟨🟨")
}

func (s *ShareSuite) TestSortEndsWithURL() {
	text := Sort(SortResult{PuzzleNumber: 9, Difficulties: []int{1}, Mistakes: 1, Won: true, URL: "https://littles.example"})
	s.Equal("The Daily Littles — Sort\nLittle #9 ✅\n\n🟨🟨🟨🟨\n\n1/4 mistakes\n\nhttps://littles.example", text)
}

func (s *ShareSuite) TestMini() {
	s.Equal("The Daily Littles — Mini\nLittle #3\n\n⏱ 1:05", Mini(3, 65*time.Second))
}

func (s *ShareSuite) TestFormatClock() {
	s.Equal("0:00", FormatClock(0))
	s.Equal("0:59", FormatClock(59999*time.Millisecond))
	s.Equal("10:00", FormatClock(10*time.Minute))
	s.Equal("0:00", FormatClock(-time.Second))
}
