package scoring

// Bonus names
const (
	BonusEfficiency = "Efficiency"
	BonusLongWord   = "Long Word"
)

// WordScore is the score for a single word
type WordScore struct {
	Word  string
	Score int
}

// Bonus is a named flat bonus
type Bonus struct {
	Type   string
	Amount int
}

// ScoreResult is the breakdown of a Gridgram score
type ScoreResult struct {
	TotalScore  int
	WordScores  []WordScore
	LongestWord string
	WordCount   int
	Bonuses     []Bonus
}

// WordScoreFor returns 10 points per letter plus the cumulative length
// bonuses: +20 from five letters, +30 from six, +50 from seven.
func WordScoreFor(word string) int {
	n := len([]rune(word))
	score := n * 10
	if n >= 5 {
		score += 20
	}
	if n >= 6 {
		score += 30
	}
	if n >= 7 {
		score += 50
	}
	return score
}

// ScoreWords scores the words of a validated grid. Fewer words earn an
// efficiency bonus, and a longest word of six or more letters earns a flat
// bonus. Ties for longest go to the earliest word.
func ScoreWords(words []string) ScoreResult {
	result := ScoreResult{
		WordScores: []WordScore{},
		Bonuses:    []Bonus{},
		WordCount:  len(words),
	}
	if len(words) == 0 {
		return result
	}

	for _, w := range words {
		score := WordScoreFor(w)
		result.WordScores = append(result.WordScores, WordScore{Word: w, Score: score})
		result.TotalScore += score
		if len([]rune(w)) > len([]rune(result.LongestWord)) {
			result.LongestWord = w
		}
	}

	switch {
	case len(words) <= 3:
		result.Bonuses = append(result.Bonuses, Bonus{Type: BonusEfficiency, Amount: 50})
	case len(words) <= 4:
		result.Bonuses = append(result.Bonuses, Bonus{Type: BonusEfficiency, Amount: 25})
	}
	if len([]rune(result.LongestWord)) >= 6 {
		result.Bonuses = append(result.Bonuses, Bonus{Type: BonusLongWord, Amount: 30})
	}

	for _, b := range result.Bonuses {
		result.TotalScore += b.Amount
	}
	return result
}
