package grouping

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/dailypuzzles/internal/data"
	"github.com/mcoot/dailypuzzles/internal/dependencies/random"
	"github.com/mcoot/dailypuzzles/internal/model"
)

const (
	// GroupSize is the number of words in each group
	GroupSize = 4
	// Tiers is the number of difficulty tiers, one group per tier
	Tiers = 4
	// MaxAttempts bounds the seed variants tried for a day before falling back
	MaxAttempts = 100
	// attemptStride spaces each day's seed variants apart
	attemptStride = 1000
)

// fallbackGroups is the hand-authored puzzle used when every seed variant
// for a day fails
var fallbackGroups = []model.SortGroup{
	{Category: "Colors", Difficulty: 1, Words: []string{"RED", "BLUE", "GREEN", "YELLOW"}},
	{Category: "Fruits", Difficulty: 2, Words: []string{"APPLE", "BANANA", "CHERRY", "GRAPE"}},
	{Category: "Body parts", Difficulty: 3, Words: []string{"HAND", "FOOT", "HEAD", "KNEE"}},
	{Category: "Also names", Difficulty: 4, Words: []string{"ROSE", "VIOLET", "LILY", "IRIS"}},
}

// FallbackGroups returns a copy of the fixed fallback puzzle's groups
func FallbackGroups() []model.SortGroup {
	return lo.Map(fallbackGroups, func(g model.SortGroup, _ int) model.SortGroup {
		g.Words = append([]string(nil), g.Words...)
		return g
	})
}

// GeneratePuzzle builds one group per tier, easiest first. Each tier's
// templates are shuffled and the first unused template with at least four
// words not taken by an earlier tier supplies four of them. A tier with no
// such template fails the whole seed.
func GeneratePuzzle(templates []data.SortTemplate, seed int64) ([]model.SortGroup, error) {
	rng := random.NewLCG(seed)
	usedTemplates := make(map[string]bool)
	usedWords := make(map[string]bool)
	groups := make([]model.SortGroup, 0, Tiers)

	for tier := 1; tier <= Tiers; tier++ {
		candidates := lo.Filter(templates, func(t data.SortTemplate, _ int) bool {
			return t.Difficulty == tier
		})

		found := false
		for _, t := range random.Shuffle(rng, candidates) {
			if usedTemplates[t.ID] {
				continue
			}
			available := lo.Filter(t.Words, func(w string, _ int) bool {
				return !usedWords[strings.ToUpper(w)]
			})
			if len(available) < GroupSize {
				continue
			}

			words := lo.Map(random.Shuffle(rng, available)[:GroupSize], func(w string, _ int) string {
				return strings.ToUpper(w)
			})
			usedTemplates[t.ID] = true
			for _, w := range words {
				usedWords[w] = true
			}
			groups = append(groups, model.SortGroup{
				Category:   t.Category,
				Difficulty: tier,
				Words:      words,
			})
			found = true
			break
		}

		if !found {
			return nil, fmt.Errorf("%w: no template for tier %d with seed %d", model.ErrGenerationFailed, tier, seed)
		}
	}

	return groups, nil
}

// GenerateBatch generates puzzles for count seeds spaced attemptStride apart
// from startSeed, skipping seeds that fail. It is used to pre-screen the
// template bank.
func GenerateBatch(templates []data.SortTemplate, count int, startSeed int64) [][]model.SortGroup {
	var out [][]model.SortGroup
	for i := 0; i < count; i++ {
		groups, err := GeneratePuzzle(templates, startSeed+int64(i)*attemptStride)
		if err != nil {
			continue
		}
		out = append(out, groups)
	}
	return out
}

// ValidatePuzzle reports whether groups form a playable puzzle: four groups
// of four with sixteen distinct words.
func ValidatePuzzle(groups []model.SortGroup) bool {
	if len(groups) != Tiers {
		return false
	}
	seen := make(map[string]bool)
	for _, g := range groups {
		if len(g.Words) != GroupSize {
			return false
		}
		for _, w := range g.Words {
			key := strings.ToUpper(w)
			if seen[key] {
				return false
			}
			seen[key] = true
		}
	}
	return len(seen) == Tiers*GroupSize
}
