package redis

import (
	"fmt"

	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/storage"
)

// Key prefix for all puzzle data
const keyPrefix = "littles"

// puzzleKey returns the Redis key for a cached puzzle
func puzzleKey(key storage.PuzzleKey) string {
	if key.Variant == "" {
		return fmt.Sprintf("%s:puzzle:%s:%s", keyPrefix, key.Game, key.Date)
	}
	return fmt.Sprintf("%s:puzzle:%s:%s:%s", keyPrefix, key.Game, key.Variant, key.Date)
}

// challengeKey returns the Redis key for a player's challenge on a date
func challengeKey(playerID model.PlayerID, date string) string {
	return fmt.Sprintf("%s:challenge:%s:%s", keyPrefix, playerID, date)
}

// sortSessionKey returns the Redis key for a player's Sort session
func sortSessionKey(playerID model.PlayerID, variant, date string) string {
	return fmt.Sprintf("%s:sort-session:%s:%s:%s", keyPrefix, playerID, variant, date)
}

// statsKey returns the Redis key for a player's lifetime stats
func statsKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, playerID)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
