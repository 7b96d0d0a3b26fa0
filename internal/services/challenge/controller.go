package challenge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/dailypuzzles/internal/dependencies/clock"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/seed"
	"github.com/mcoot/dailypuzzles/internal/storage"
)

const (
	// DefaultUnlockHour is the local hour a new day's challenge opens
	DefaultUnlockHour = 10
	// CompletionStars is awarded for finishing every game of a day
	CompletionStars = 10
)

// Game describes one game of the daily challenge
type Game struct {
	ID   model.GameID
	Name string
	Path string
}

// DailyGames are played every day, in display order
var DailyGames = []Game{
	{ID: model.GameCipher, Name: "CIPHER", Path: "/cipher"},
	{ID: model.GameGridgram, Name: "GRIDGRAM", Path: "/gridgram"},
	{ID: model.GameShift, Name: "SHIFT", Path: "/shift"},
}

// ParseGameID validates a game name
func ParseGameID(s string) (model.GameID, error) {
	id := model.GameID(s)
	if !lo.ContainsBy(DailyGames, func(g Game) bool { return g.ID == id }) {
		return "", fmt.Errorf("%w: %q", model.ErrUnknownGame, s)
	}
	return id, nil
}

// Result is the state after a completion is registered
type Result struct {
	State *model.ChallengeState
	Stats *model.PlayerStats
	// JustFinished is true only for the completion that finished the day
	JustFinished bool
}

// Controller records challenge completions and maintains streaks
type Controller struct {
	storage    storage.Storage
	clock      clock.Clock
	unlockHour int
}

// NewController creates a challenge controller
func NewController(storage storage.Storage, clock clock.Clock, unlockHour int) *Controller {
	return &Controller{
		storage:    storage,
		clock:      clock,
		unlockHour: unlockHour,
	}
}

// Today returns the effective challenge date
func (c *Controller) Today() time.Time {
	return seed.EffectiveDate(c.clock.Now(), c.unlockHour)
}

// TimeUntilNext returns the time until the next challenge unlocks
func (c *Controller) TimeUntilNext() time.Duration {
	return seed.UntilNextPuzzle(c.clock.Now(), c.unlockHour)
}

// GetState returns the player's challenge for the effective date, or a fresh
// empty one
func (c *Controller) GetState(ctx context.Context, playerID model.PlayerID) (*model.ChallengeState, error) {
	return c.loadState(ctx, playerID, seed.DateString(c.Today()))
}

// GetStats returns the player's lifetime stats, zeroed for a new player
func (c *Controller) GetStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error) {
	stats, err := c.storage.GetPlayerStats(ctx, playerID)
	if errors.Is(err, model.ErrStatsNotFound) {
		return &model.PlayerStats{PlayerID: playerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RegisterCompletion records a finished game for today's challenge. A repeat
// completion overwrites the earlier one. When the last game is finished the
// composite score is fixed and the player's streak and stars are updated;
// later completions on the same day do not count the day again.
func (c *Controller) RegisterCompletion(
	ctx context.Context,
	playerID model.PlayerID,
	gameID model.GameID,
	score int,
	elapsed time.Duration,
) (*Result, error) {
	if _, err := ParseGameID(string(gameID)); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	date := seed.EffectiveDate(now, c.unlockHour)
	dateStr := seed.DateString(date)

	state, err := c.loadState(ctx, playerID, dateStr)
	if err != nil {
		return nil, err
	}
	stats, err := c.GetStats(ctx, playerID)
	if err != nil {
		return nil, err
	}

	state.Completions[gameID] = model.GameCompletion{
		GameID:      gameID,
		Score:       score,
		Elapsed:     elapsed,
		CompletedAt: now,
	}

	result := &Result{State: state, Stats: stats}
	if !state.IsFullyCompleted && len(state.Completions) == len(DailyGames) {
		finish(state, stats, date, now)
		result.JustFinished = true
	}

	if err := c.storage.SaveChallengeState(ctx, state); err != nil {
		return nil, err
	}
	if err := c.storage.SavePlayerStats(ctx, stats); err != nil {
		return nil, err
	}
	return result, nil
}

func finish(state *model.ChallengeState, stats *model.PlayerStats, date, now time.Time) {
	state.IsFullyCompleted = true
	state.FinishedAt = &now
	total := lo.SumBy(lo.Values(state.Completions), func(c model.GameCompletion) int { return c.Score })
	state.CompositeScore = total / len(DailyGames)

	stats.TotalChallengesCompleted++
	stats.TotalStars += CompletionStars

	yesterday := seed.DateString(date.AddDate(0, 0, -1))
	switch stats.LastCompletedDate {
	case yesterday:
		stats.CurrentStreak++
	case state.Date:
	default:
		stats.CurrentStreak = 1
	}
	stats.LongestStreak = max(stats.LongestStreak, stats.CurrentStreak)
	stats.LastCompletedDate = state.Date
}

func (c *Controller) loadState(ctx context.Context, playerID model.PlayerID, date string) (*model.ChallengeState, error) {
	state, err := c.storage.GetChallengeState(ctx, playerID, date)
	if errors.Is(err, model.ErrChallengeNotFound) {
		return &model.ChallengeState{
			PlayerID:    playerID,
			Date:        date,
			Completions: map[model.GameID]model.GameCompletion{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	if state.Completions == nil {
		state.Completions = map[model.GameID]model.GameCompletion{}
	}
	return state, nil
}

// GameScore is one line of a challenge score breakdown
type GameScore struct {
	ID        model.GameID
	Name      string
	Score     int
	Completed bool
}

// ScoreBreakdown lists every daily game with its score, in display order
func ScoreBreakdown(state *model.ChallengeState) []GameScore {
	return lo.Map(DailyGames, func(g Game, _ int) GameScore {
		c, ok := state.Completions[g.ID]
		return GameScore{ID: g.ID, Name: g.Name, Score: c.Score, Completed: ok}
	})
}

// FormatTimeRemaining renders d as HH:MM:SS
func FormatTimeRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
