package model

import "errors"

// Common errors used across the application
var (
	// Request errors
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrUnknownGame       = errors.New("unknown game")

	// Generation errors
	ErrGenerationFailed = errors.New("puzzle generation failed")
	ErrEmptyBank        = errors.New("puzzle bank is empty")
	ErrInvalidPuzzle    = errors.New("invalid puzzle")

	// Storage errors
	ErrPuzzleNotFound    = errors.New("puzzle not found")
	ErrChallengeNotFound = errors.New("challenge state not found")
	ErrStatsNotFound     = errors.New("player stats not found")
	ErrSessionNotFound   = errors.New("sort session not found")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
