// Package data embeds the static puzzle banks: cipher phrases, generation
// word pools, sort templates, the hand-authored sort and mini banks, grid
// fallback racks and the validation word list.
package data

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml words.txt
var files embed.FS

// Phrase is a cipher phrase with its crossword-style hint
type Phrase struct {
	Phrase string `yaml:"phrase"`
	Hint   string `yaml:"hint"`
}

// Pools are the curated generation word lists
type Pools struct {
	// Generation buckets uppercase words by length (3 to 7)
	Generation map[int][]string `yaml:"generation"`
	// Easy4 holds very common 4-letter words for easy Shift grids
	Easy4 []string `yaml:"easy4"`
}

// SortTemplate is a category the Sort generator can draw four words from
type SortTemplate struct {
	ID         string   `yaml:"id"`
	Category   string   `yaml:"category"`
	Difficulty int      `yaml:"difficulty"`
	Words      []string `yaml:"words"`
}

// SortGroup is one group of a hand-authored Sort puzzle
type SortGroup struct {
	Category   string   `yaml:"category"`
	Difficulty int      `yaml:"difficulty"`
	Words      []string `yaml:"words"`
}

// SortPuzzle is a hand-authored Sort puzzle
type SortPuzzle struct {
	Groups []SortGroup `yaml:"groups"`
}

// GridFallback is a Gridgram rack with a known solution. Solution is drawn
// row by row with '.' for an empty cell.
type GridFallback struct {
	Letters  string   `yaml:"letters"`
	Hint     string   `yaml:"hint"`
	Solution []string `yaml:"solution"`
}

// MiniClue is a clue entry in the mini bank
type MiniClue struct {
	Number int    `yaml:"number"`
	Clue   string `yaml:"clue"`
	Answer string `yaml:"answer"`
}

// MiniPuzzle is a 5×5 mini. Solution rows use '#' for black squares.
type MiniPuzzle struct {
	Title    string     `yaml:"title"`
	Solution []string   `yaml:"solution"`
	Across   []MiniClue `yaml:"across"`
	Down     []MiniClue `yaml:"down"`
}

var (
	phrases       = sync.OnceValues(func() (map[string][]Phrase, error) { return decode[map[string][]Phrase]("phrases.yaml") })
	pools         = sync.OnceValues(func() (*Pools, error) { return decode[*Pools]("pools.yaml") })
	sortTemplates = sync.OnceValues(func() ([]SortTemplate, error) { return decode[[]SortTemplate]("sort_templates.yaml") })
	sortPuzzles   = sync.OnceValues(func() ([]SortPuzzle, error) { return decode[[]SortPuzzle]("sort_puzzles.yaml") })
	gridFallbacks = sync.OnceValues(func() ([]GridFallback, error) { return decode[[]GridFallback]("grid_fallbacks.yaml") })
	miniPuzzles   = sync.OnceValues(func() ([]MiniPuzzle, error) { return decode[[]MiniPuzzle]("mini_puzzles.yaml") })
	words         = sync.OnceValues(readWords)
)

// Phrases returns the cipher phrase banks keyed by difficulty name
func Phrases() (map[string][]Phrase, error) { return phrases() }

// LoadPools returns the generation word pools
func LoadPools() (*Pools, error) { return pools() }

// SortTemplates returns the Sort category templates
func SortTemplates() ([]SortTemplate, error) { return sortTemplates() }

// SortPuzzles returns the hand-authored Sort bank
func SortPuzzles() ([]SortPuzzle, error) { return sortPuzzles() }

// GridFallbacks returns the fallback Gridgram racks
func GridFallbacks() ([]GridFallback, error) { return gridFallbacks() }

// MiniPuzzles returns the mini crossword bank
func MiniPuzzles() ([]MiniPuzzle, error) { return miniPuzzles() }

// Words returns the embedded validation word list
func Words() ([]string, error) { return words() }

func decode[T any](name string) (T, error) {
	var out T
	raw, err := files.ReadFile(name)
	if err != nil {
		return out, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return out, nil
}

func readWords() ([]string, error) {
	raw, err := files.ReadFile("words.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to read words.txt: %w", err)
	}
	var out []string
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			out = append(out, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
