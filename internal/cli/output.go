package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/dailypuzzles/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		o.printf("Status: %s\nToday: %s\nDictionary: %d words\n", v.Status, v.Today, v.Dictionary)
	case response.Cipher:
		o.printCipher(v)
	case response.Solved:
		o.printSolved(v)
	case response.Grid:
		o.printGrid(v)
	case response.GridValidation:
		o.printGridValidation(v)
	case response.Shift:
		o.printShift(v)
	case response.Sort:
		o.printSort(v)
	case response.SortGuess:
		o.printSortGuess(v)
	case response.SortSession:
		o.printSortSession(v)
	case response.Mini:
		o.printMini(v)
	case response.MiniCheck:
		o.printMiniCheck(v)
	case response.Stars:
		o.printf("%s (%d)\n", strings.Repeat("⭐", v.Stars), v.Stars)
	case response.Challenge:
		o.printChallenge(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printCipher(c response.Cipher) {
	o.printf("Cipher #%d (%s) - %s\n\n", c.PuzzleNumber, c.Difficulty, c.Date)
	o.printf("  %s\n\n", c.EncodedPhrase)
	if c.Hint != "" {
		o.printf("Hint: %s\n", c.Hint)
	}
}

func (o *Output) printSolved(s response.Solved) {
	if s.Solved {
		o.printf("Solved!\n")
	} else {
		o.printf("Not solved yet\n")
	}
}

func (o *Output) printGrid(g response.Grid) {
	o.printf("Gridgram #%d - %s\n", g.PuzzleNumber, g.Date)
	o.printf("Letters (%d): %s\n", len(g.Letters), strings.Join(g.Letters, " "))
	if g.Hint != "" {
		o.printf("Hint: %s\n", g.Hint)
	}
}

func (o *Output) printGridValidation(v response.GridValidation) {
	if v.IsValid {
		o.printf("Valid grid!\n")
	} else {
		o.printf("Invalid grid\n")
		if !v.IsConnected {
			o.printf("  Tiles are not connected\n")
		}
		if !v.AllLettersUsed {
			o.printf("  Tiles do not use exactly the rack's letters\n")
		}
		if len(v.InvalidWords) > 0 {
			o.printf("  Not words: %s\n", strings.Join(v.InvalidWords, ", "))
		}
	}
	if len(v.Words) > 0 {
		o.printf("Words: %s\n", strings.Join(v.Words, ", "))
	}
	if v.IsValid {
		for _, w := range v.Score.WordScores {
			o.printf("  - %s (%d pts)\n", w.Word, w.Score)
		}
		for _, b := range v.Score.Bonuses {
			o.printf("  + %s bonus (%d pts)\n", b.Type, b.Amount)
		}
		o.printf("Score: %d\n", v.Score.TotalScore)
	}
}

func (o *Output) printShift(s response.Shift) {
	o.printf("Shift #%d (%s) - %s\n", s.PuzzleNumber, s.Difficulty, s.Date)
	o.printf("Scrambled with %d moves\n\n", s.Moves)
	o.printRows(s.Grid)
}

func (o *Output) printRows(rows []string) {
	for i, row := range rows {
		letters := make([]string, 0, len(row))
		for _, r := range row {
			if r == 0 || r == '#' {
				letters = append(letters, "#")
			} else {
				letters = append(letters, string(r))
			}
		}
		o.printf(" %d | %s\n", i, strings.Join(letters, " "))
	}
}

func (o *Output) printSort(s response.Sort) {
	o.printf("Sort #%d - %s (%s)\n\n", s.PuzzleNumber, s.Date, s.Source)
	for i := 0; i < len(s.Words); i += 4 {
		o.printf("  %s\n", strings.Join(s.Words[i:min(i+4, len(s.Words))], " | "))
	}
}

func (o *Output) printSortGuess(g response.SortGuess) {
	if !g.Correct || g.Group == nil {
		o.printf("Not a group\n")
		return
	}
	o.printf("Correct! %s (level %d): %s\n", g.Group.Category, g.Group.Difficulty, strings.Join(g.Group.Words, ", "))
}

func (o *Output) printSortSession(s response.SortSession) {
	switch s.Outcome {
	case "correct":
		o.printf("Correct!\n")
	case "incorrect":
		o.printf("Not a group\n")
	case "rejected":
		o.printf("Guess four words still on the board\n")
	}

	o.printf("Sort %s (%s) for %s: %s, %d mistakes left\n", s.Date, s.Variant, s.PlayerID, s.Status, s.MistakesLeft)
	for _, g := range s.Solved {
		mark := "x"
		if g.Revealed {
			mark = " "
		}
		o.printf("  [%s] %s: %s\n", mark, g.Category, strings.Join(g.Words, ", "))
	}
	for i := 0; i < len(s.Board); i += 4 {
		o.printf("  %s\n", strings.Join(s.Board[i:min(i+4, len(s.Board))], " | "))
	}
}

func (o *Output) printMini(m response.Mini) {
	o.printf("Mini #%d: %s - %s\n\n", m.PuzzleNumber, m.Title, m.Date)
	for _, row := range m.Cells {
		var line strings.Builder
		for _, c := range row {
			switch {
			case c.Black:
				line.WriteString(" ## ")
			case c.Number > 0:
				fmt.Fprintf(&line, " %-2d ", c.Number)
			default:
				line.WriteString(" .  ")
			}
		}
		o.printf("%s\n", strings.TrimRight(line.String(), " "))
	}
	o.printf("\nAcross\n")
	for _, c := range m.Across {
		o.printf("  %d. %s (%d)\n", c.Number, c.Clue, c.Length)
	}
	o.printf("Down\n")
	for _, c := range m.Down {
		o.printf("  %d. %s (%d)\n", c.Number, c.Clue, c.Length)
	}
}

func (o *Output) printMiniCheck(c response.MiniCheck) {
	switch {
	case c.Solved:
		o.printf("Solved!\n")
	case !c.Filled:
		o.printf("Grid is not full yet\n")
	}
	for _, cell := range c.Wrong {
		o.printf("  Wrong letter at row %d, col %d\n", cell.Row, cell.Col)
	}
}

func (o *Output) printChallenge(c response.Challenge) {
	o.printf("Daily challenge %s for %s\n", c.Date, c.PlayerID)
	for _, g := range c.Games {
		mark := " "
		if g.Completed {
			mark = "x"
		}
		o.printf("  [%s] %-9s %d\n", mark, g.Name, g.Score)
	}
	if c.IsFullyCompleted {
		o.printf("Composite score: %d\n", c.CompositeScore)
	}
	if c.JustFinished {
		o.printf("Challenge complete!\n")
	}
	o.printf("Streak: %d (best %d), stars: %d\n", c.Stats.CurrentStreak, c.Stats.LongestStreak, c.Stats.TotalStars)
	o.printf("Next puzzle in %s\n", c.NextPuzzleIn)
}
