package gridgram

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/dailypuzzles/internal/model"
)

type wordSet map[string]bool

func (w wordSet) IsValidWord(word string) bool {
	return w[word]
}

type ValidatorSuite struct {
	suite.Suite
	words wordSet
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupTest() {
	s.words = wordSet{"CAT": true, "CAR": true, "AT": true, "TO": true}
}

func pos(row, col int, letter rune) model.GridPosition {
	return model.GridPosition{Row: row, Col: col, Letter: letter}
}

// CAT across and CAR down, sharing the C
func catCar() []model.GridPosition {
	return []model.GridPosition{
		pos(0, 0, 'C'), pos(0, 1, 'A'), pos(0, 2, 'T'),
		pos(1, 0, 'A'), pos(2, 0, 'R'),
	}
}

func (s *ValidatorSuite) TestCrossingWords() {
	result := ValidateGrid(s.words, catCar(), []rune("CATAR"))

	s.True(result.IsValid)
	s.Equal([]string{"CAT", "CAR"}, result.Words)
	s.Empty(result.InvalidWords)
	s.True(result.IsConnected)
	s.True(result.AllLettersUsed)
}

func (s *ValidatorSuite) TestSharedLetterIsCountedOnce() {
	// The rack must not supply a second C
	result := ValidateGrid(s.words, catCar(), []rune("CATCAR"))
	s.False(result.AllLettersUsed)
	s.False(result.IsValid)

	result = ValidateGrid(s.words, catCar(), []rune("RATAC"))
	s.True(result.AllLettersUsed)
}

func (s *ValidatorSuite) TestLetterCaseIsIgnored() {
	positions := []model.GridPosition{pos(0, 0, 'c'), pos(0, 1, 'a'), pos(0, 2, 't')}
	result := ValidateGrid(s.words, positions, []rune("TAC"))
	s.True(result.IsValid)
	s.Equal([]string{"CAT"}, result.Words)
}

func (s *ValidatorSuite) TestInvalidWord() {
	positions := []model.GridPosition{pos(0, 0, 'T'), pos(0, 1, 'A'), pos(0, 2, 'C')}
	result := ValidateGrid(s.words, positions, []rune("CAT"))

	s.False(result.IsValid)
	s.Empty(result.Words)
	s.Equal([]string{"TAC"}, result.InvalidWords)
	s.True(result.IsConnected)
	s.True(result.AllLettersUsed)
}

func (s *ValidatorSuite) TestDisconnected() {
	positions := []model.GridPosition{
		pos(0, 0, 'A'), pos(0, 1, 'T'),
		pos(3, 3, 'T'), pos(3, 4, 'O'),
	}
	result := ValidateGrid(s.words, positions, []rune("ATTO"))

	s.False(result.IsValid)
	s.False(result.IsConnected)
	s.Equal([]string{"AT", "TO"}, result.Words)
}

func (s *ValidatorSuite) TestDiagonalIsNotConnected() {
	positions := []model.GridPosition{pos(0, 0, 'A'), pos(1, 1, 'T')}
	result := ValidateGrid(s.words, positions, []rune("AT"))
	s.False(result.IsConnected)
	s.False(result.IsValid)
}

func (s *ValidatorSuite) TestSingleTileFormsNoWord() {
	result := ValidateGrid(s.words, []model.GridPosition{pos(0, 0, 'A')}, []rune("A"))

	s.False(result.IsValid)
	s.True(result.IsConnected)
	s.True(result.AllLettersUsed)
	s.Empty(result.Words)
}

func (s *ValidatorSuite) TestEmptyGrid() {
	result := ValidateGrid(s.words, nil, []rune("CAT"))

	s.False(result.IsValid)
	s.True(result.IsConnected)
	s.False(result.AllLettersUsed)
	s.Empty(result.Words)
	s.Empty(result.InvalidWords)
}

func (s *ValidatorSuite) TestRunsSplitOnGaps() {
	positions := []model.GridPosition{
		pos(0, 0, 'A'), pos(0, 1, 'T'),
		pos(0, 3, 'T'), pos(0, 4, 'O'),
		pos(1, 1, 'O'), pos(1, 2, 'X'), pos(1, 3, 'O'),
	}
	runs := extractRuns(positions, model.Horizontal)
	s.Equal([]string{"AT", "TO", "OXO"}, runs)

	vertical := extractRuns(positions, model.Vertical)
	s.Equal([]string{"TO", "TO"}, vertical)
}

func (s *ValidatorSuite) TestLinesInFirstAppearanceOrder() {
	positions := []model.GridPosition{
		pos(5, 0, 'T'), pos(5, 1, 'O'),
		pos(1, 0, 'A'), pos(1, 1, 'T'),
	}
	s.Equal([]string{"TO", "AT"}, extractRuns(positions, model.Horizontal))
}

func (s *ValidatorSuite) TestDuplicatePositionsAreRejected() {
	positions := []model.GridPosition{pos(0, 0, 'A'), pos(0, 1, 'T'), pos(0, 1, 'T')}
	result := ValidateGrid(s.words, positions, []rune("ATT"))
	s.False(result.IsConnected)
	s.False(result.IsValid)
}

func (s *ValidatorSuite) TestAcceptedGridsSatisfyInvariants() {
	grids := [][]model.GridPosition{
		catCar(),
		{pos(0, 0, 'A'), pos(0, 1, 'T'), pos(1, 1, 'O')},
	}
	for _, g := range grids {
		letters := make([]rune, len(g))
		for i, p := range g {
			letters[i] = p.Letter
		}
		result := ValidateGrid(s.words, g, letters)
		if !result.IsValid {
			continue
		}
		s.True(result.IsConnected)
		s.True(result.AllLettersUsed)
		for _, w := range result.Words {
			s.True(s.words.IsValidWord(w))
		}
	}
}
