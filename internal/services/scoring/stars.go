package scoring

import (
	"time"

	"github.com/mcoot/dailypuzzles/internal/model"
)

// MinStars is awarded for any completion, however slow
const MinStars = 1

// starThresholds are the elapsed-time ceilings for three and two stars
var starThresholds = map[model.Difficulty][2]time.Duration{
	model.DifficultyEasy:   {30 * time.Second, 60 * time.Second},
	model.DifficultyMedium: {2 * time.Minute, 4 * time.Minute},
	model.DifficultyHard:   {5 * time.Minute, 10 * time.Minute},
}

// StarsEarned converts a solve time into 1 to 3 stars. Unknown difficulties
// use the easy thresholds.
func StarsEarned(difficulty model.Difficulty, elapsed time.Duration) int {
	t, ok := starThresholds[difficulty]
	if !ok {
		t = starThresholds[model.DifficultyEasy]
	}
	switch {
	case elapsed <= t[0]:
		return 3
	case elapsed <= t[1]:
		return 2
	default:
		return MinStars
	}
}
