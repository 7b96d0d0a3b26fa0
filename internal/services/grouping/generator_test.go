package grouping

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/dailypuzzles/internal/data"
	"github.com/mcoot/dailypuzzles/internal/model"
)

type GeneratorSuite struct {
	suite.Suite
	templates []data.SortTemplate
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

func (s *GeneratorSuite) SetupTest() {
	var err error
	s.templates, err = data.SortTemplates()
	s.Require().NoError(err)
}

func (s *GeneratorSuite) TestKnownSeed() {
	groups, err := GeneratePuzzle(s.templates, 1000)
	s.Require().NoError(err)

	s.Equal([]model.SortGroup{
		{Category: "Rhymes with SHOW", Difficulty: 1, Words: []string{"GLOW", "THROW", "FLOW", "SLOW"}},
		{Category: "Words with double letters", Difficulty: 2, Words: []string{"COOL", "ROOM", "BOOM", "BUZZ"}},
		{Category: "Greek letters", Difficulty: 3, Words: []string{"EPSILON", "DELTA", "THETA", "ALPHA"}},
		{Category: "Words that are also verbs", Difficulty: 4, Words: []string{"FILM", "LIGHT", "SCALE", "PARK"}},
	}, groups)
}

func (s *GeneratorSuite) TestGeneratedPuzzlesAreValid() {
	for seed := int64(1); seed < 200; seed++ {
		groups, err := GeneratePuzzle(s.templates, seed*7919)
		if err != nil {
			s.ErrorIs(err, model.ErrGenerationFailed)
			continue
		}
		s.True(ValidatePuzzle(groups), "seed %d", seed)
		for i, g := range groups {
			s.Equal(i+1, g.Difficulty)
		}
	}
}

func (s *GeneratorSuite) TestDeterministic() {
	a, errA := GeneratePuzzle(s.templates, 424242)
	b, errB := GeneratePuzzle(s.templates, 424242)
	s.Equal(errA, errB)
	s.Equal(a, b)
}

func (s *GeneratorSuite) TestFailsWhenTierMissing() {
	templates := []data.SortTemplate{
		{ID: "a", Category: "A", Difficulty: 1, Words: []string{"ONE", "TWO", "THREE", "FOUR"}},
		{ID: "b", Category: "B", Difficulty: 2, Words: []string{"FIVE", "SIX", "SEVEN", "EIGHT"}},
		{ID: "c", Category: "C", Difficulty: 3, Words: []string{"NINE", "TEN", "ELEVEN", "TWELVE"}},
	}
	_, err := GeneratePuzzle(templates, 1)
	s.ErrorIs(err, model.ErrGenerationFailed)
}

func (s *GeneratorSuite) TestFailsWhenWordsAlreadyConsumed() {
	templates := []data.SortTemplate{
		{ID: "a", Category: "A", Difficulty: 1, Words: []string{"ONE", "TWO", "THREE", "FOUR"}},
		{ID: "b", Category: "B", Difficulty: 2, Words: []string{"one", "TWO", "THREE", "FOUR", "FIVE"}},
		{ID: "c", Category: "C", Difficulty: 3, Words: []string{"NINE", "TEN", "ELEVEN", "TWELVE"}},
		{ID: "d", Category: "D", Difficulty: 4, Words: []string{"RED", "BLUE", "GREEN", "PINK"}},
	}
	_, err := GeneratePuzzle(templates, 1)
	s.ErrorIs(err, model.ErrGenerationFailed)
}

func (s *GeneratorSuite) TestUppercasesWords() {
	templates := []data.SortTemplate{
		{ID: "a", Category: "A", Difficulty: 1, Words: []string{"one", "two", "three", "four"}},
		{ID: "b", Category: "B", Difficulty: 2, Words: []string{"five", "six", "seven", "eight"}},
		{ID: "c", Category: "C", Difficulty: 3, Words: []string{"nine", "ten", "eleven", "twelve"}},
		{ID: "d", Category: "D", Difficulty: 4, Words: []string{"red", "blue", "green", "pink"}},
	}
	groups, err := GeneratePuzzle(templates, 5)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"ONE", "TWO", "THREE", "FOUR"}, groups[0].Words)
}

func (s *GeneratorSuite) TestGenerateBatch() {
	batch := GenerateBatch(s.templates, 10, 1)
	s.NotEmpty(batch)
	for _, groups := range batch {
		s.True(ValidatePuzzle(groups))
	}
}

func (s *GeneratorSuite) TestValidatePuzzle() {
	s.True(ValidatePuzzle(FallbackGroups()))

	dup := FallbackGroups()
	dup[3].Words[0] = "red"
	s.False(ValidatePuzzle(dup))

	s.False(ValidatePuzzle(FallbackGroups()[:3]))

	short := FallbackGroups()
	short[0].Words = short[0].Words[:3]
	s.False(ValidatePuzzle(short))
}

func (s *GeneratorSuite) TestFallbackGroupsAreCopies() {
	a := FallbackGroups()
	a[0].Words[0] = "PURPLE"
	s.Equal("RED", FallbackGroups()[0].Words[0])
}
