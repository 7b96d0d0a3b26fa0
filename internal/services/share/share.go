// Package share renders spoiler-free result text for players to post.
package share

import (
	"fmt"
	"strings"
	"time"

	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/scoring"
)

const brand = "The Daily Littles"

// groupEmoji colours a Sort tier, easiest to hardest
var groupEmoji = map[int]string{
	1: "🟨",
	2: "🟩",
	3: "🟦",
	4: "🟪",
}

// CipherResult is a finished cipher game
type CipherResult struct {
	PuzzleNumber int
	Difficulty   model.Difficulty
	Elapsed      time.Duration
	Streak       int
	// URL is appended after a blank line when set
	URL string
}

// Cipher renders the star rating and solve time. The streak is only shown
// once it is longer than a day.
func Cipher(r CipherResult) string {
	stars := scoring.StarsEarned(r.Difficulty, r.Elapsed)

	var b strings.Builder
	fmt.Fprintf(&b, "%s — Cipher\nLittle #%d\n", brand, r.PuzzleNumber)
	b.WriteString(strings.Repeat("⭐", stars) + strings.Repeat("☆", 3-stars) + "\n")
	b.WriteString("⏱️ " + FormatClock(r.Elapsed))
	if r.Streak > 1 {
		fmt.Fprintf(&b, " • 🔥 %d day streak", r.Streak)
	}
	if r.URL != "" {
		b.WriteString("\n\n" + r.URL)
	}
	return b.String()
}

// SortResult is a finished Sort game. Difficulties holds the tier of each
// group in the order it was solved or revealed.
type SortResult struct {
	PuzzleNumber int
	Difficulties []int
	Mistakes     int
	Won          bool
	URL          string
}

// Sort renders one row of four coloured squares per group
func Sort(r SortResult) string {
	status := "❌"
	if r.Won {
		status = "✅"
	}
	rows := make([]string, 0, len(r.Difficulties))
	for _, d := range r.Difficulties {
		rows = append(rows, strings.Repeat(groupEmoji[d], 4))
	}
	mistakes := fmt.Sprintf("%d/4 mistakes", r.Mistakes)
	if r.Mistakes == 0 {
		mistakes = "Perfect! 🎯"
	}

	lines := []string{
		brand + " — Sort",
		fmt.Sprintf("Little #%d %s", r.PuzzleNumber, status),
		"",
		strings.Join(rows, "\n"),
		"",
		mistakes,
	}
	if r.URL != "" {
		lines = append(lines, "", r.URL)
	}
	return strings.Join(lines, "\n")
}

// Mini renders the solve time
func Mini(puzzleNumber int, solveTime time.Duration) string {
	return strings.Join([]string{
		brand + " — Mini",
		fmt.Sprintf("Little #%d", puzzleNumber),
		"",
		"⏱ " + FormatClock(solveTime),
	}, "\n")
}

// FormatClock formats d as m:ss, truncating to whole seconds
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
