package model

import "time"

// GameID identifies one of the daily challenge games
type GameID string

const (
	GameCipher   GameID = "cipher"
	GameGridgram GameID = "gridgram"
	GameShift    GameID = "shift"
)

// PlayerID identifies a player's challenge record. The engine does no
// authentication; the id is whatever the caller's session layer assigns.
type PlayerID string

// GameCompletion records a finished game within a daily challenge
type GameCompletion struct {
	GameID      GameID
	Score       int
	Elapsed     time.Duration
	CompletedAt time.Time
}

// ChallengeState is a player's progress through one day's challenge
type ChallengeState struct {
	PlayerID         PlayerID
	Date             string
	Completions      map[GameID]GameCompletion
	IsFullyCompleted bool
	FinishedAt       *time.Time
	CompositeScore   int
}

// PlayerStats are a player's lifetime challenge statistics
type PlayerStats struct {
	PlayerID                 PlayerID
	CurrentStreak            int
	LongestStreak            int
	TotalChallengesCompleted int
	TotalStars               int
	LastCompletedDate        string
}
