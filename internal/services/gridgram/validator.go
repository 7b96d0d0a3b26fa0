package gridgram

import (
	"slices"
	"unicode"

	"github.com/mcoot/dailypuzzles/internal/model"
)

// WordChecker tests dictionary membership
type WordChecker interface {
	IsValidWord(word string) bool
}

// ValidationResult describes a player's grid. Words holds the runs that are
// dictionary words, InvalidWords the runs that are not.
type ValidationResult struct {
	IsValid        bool
	Words          []string
	InvalidWords   []string
	IsConnected    bool
	AllLettersUsed bool
}

// ValidateGrid checks a player's placed tiles against the rack. Every
// horizontal and vertical run of two or more tiles must be a word, the tiles
// must form one orthogonally connected group, and the tiles must use exactly
// the rack's letters. Runs are reported horizontal first, lines in the order
// they first appear in positions.
func ValidateGrid(checker WordChecker, positions []model.GridPosition, letters []rune) ValidationResult {
	if len(positions) == 0 {
		return ValidationResult{
			Words:        []string{},
			InvalidWords: []string{},
			IsConnected:  true,
		}
	}

	runs := append(extractRuns(positions, model.Horizontal), extractRuns(positions, model.Vertical)...)

	result := ValidationResult{
		Words:        []string{},
		InvalidWords: []string{},
	}
	for _, word := range runs {
		if checker.IsValidWord(word) {
			result.Words = append(result.Words, word)
		} else {
			result.InvalidWords = append(result.InvalidWords, word)
		}
	}

	result.IsConnected = isConnected(positions)
	result.AllLettersUsed = sameLetters(positions, letters)
	result.IsValid = len(result.InvalidWords) == 0 && result.IsConnected && result.AllLettersUsed && len(runs) > 0
	return result
}

// extractRuns returns every maximal run of length >= 2 along direction
func extractRuns(positions []model.GridPosition, direction model.Direction) []string {
	grid := make(map[cell]rune, len(positions))
	lines := make(map[int][]int)
	var lineOrder []int

	for _, p := range positions {
		grid[cell{p.Row, p.Col}] = unicode.ToUpper(p.Letter)
		line, offset := p.Row, p.Col
		if direction == model.Vertical {
			line, offset = p.Col, p.Row
		}
		if _, ok := lines[line]; !ok {
			lineOrder = append(lineOrder, line)
		}
		lines[line] = append(lines[line], offset)
	}

	at := func(line, offset int) rune {
		if direction == model.Vertical {
			return grid[cell{offset, line}]
		}
		return grid[cell{line, offset}]
	}

	var words []string
	for _, line := range lineOrder {
		offsets := lines[line]
		slices.Sort(offsets)

		var word []rune
		last := offsets[0] - 2
		for _, offset := range offsets {
			if offset != last+1 {
				if len(word) >= 2 {
					words = append(words, string(word))
				}
				word = word[:0]
			}
			word = append(word, at(line, offset))
			last = offset
		}
		if len(word) >= 2 {
			words = append(words, string(word))
		}
	}
	return words
}

// isConnected flood-fills from the first tile. Duplicate coordinates count
// as disconnected since the flood can never reach both.
func isConnected(positions []model.GridPosition) bool {
	occupied := make(map[cell]bool, len(positions))
	for _, p := range positions {
		occupied[cell{p.Row, p.Col}] = true
	}

	start := cell{positions[0].Row, positions[0].Col}
	visited := map[cell]bool{start: true}
	queue := []cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range []cell{
			{cur.row - 1, cur.col},
			{cur.row + 1, cur.col},
			{cur.row, cur.col - 1},
			{cur.row, cur.col + 1},
		} {
			if occupied[n] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(positions)
}

func sameLetters(positions []model.GridPosition, letters []rune) bool {
	if len(positions) != len(letters) {
		return false
	}
	used := make([]rune, len(positions))
	for i, p := range positions {
		used[i] = unicode.ToUpper(p.Letter)
	}
	rack := make([]rune, len(letters))
	for i, l := range letters {
		rack[i] = unicode.ToUpper(l)
	}
	slices.Sort(used)
	slices.Sort(rack)
	return slices.Equal(used, rack)
}
