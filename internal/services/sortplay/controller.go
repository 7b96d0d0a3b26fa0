// Package sortplay keeps each player's play through the day's Sort puzzle:
// the board order, solved groups and mistakes survive between requests.
package sortplay

import (
	"context"
	"errors"
	"time"

	"github.com/mcoot/dailypuzzles/internal/dependencies/random"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/grouping"
	"github.com/mcoot/dailypuzzles/internal/services/puzzles"
	"github.com/mcoot/dailypuzzles/internal/services/seed"
	"github.com/mcoot/dailypuzzles/internal/storage"
)

const (
	// VariantBank is the hand-authored puzzle
	VariantBank = "bank"
	// VariantGenerated is the procedural puzzle
	VariantGenerated = puzzles.VariantGenerated
)

// Puzzles supplies the day's Sort puzzle for a variant
type Puzzles interface {
	SortVariant(ctx context.Context, variant string, date time.Time) (*model.SortPuzzle, error)
}

// Play is a player's session together with the key it is saved under
type Play struct {
	PlayerID model.PlayerID
	Date     string
	Variant  string
	Session  *grouping.Session
}

// Controller loads, updates and saves Sort sessions
type Controller struct {
	puzzles Puzzles
	storage storage.Storage
	random  random.Random
}

// NewController creates a Sort play controller. rng only reorders boards on
// request; the starting order is the puzzle's fixed daily one.
func NewController(puzzles Puzzles, storage storage.Storage, rng random.Random) *Controller {
	return &Controller{
		puzzles: puzzles,
		storage: storage,
		random:  rng,
	}
}

// NormalizeVariant maps an empty or unknown variant to the bank puzzle
func NormalizeVariant(variant string) string {
	if variant == VariantGenerated {
		return VariantGenerated
	}
	return VariantBank
}

// Get returns the player's session for date, starting a new one if needed
func (c *Controller) Get(ctx context.Context, playerID model.PlayerID, variant string, date time.Time) (*Play, error) {
	return c.load(ctx, playerID, NormalizeVariant(variant), date)
}

// Guess submits four words to the player's session and saves the result
func (c *Controller) Guess(
	ctx context.Context,
	playerID model.PlayerID,
	variant string,
	date time.Time,
	words []string,
) (*Play, grouping.GuessResult, error) {
	play, err := c.load(ctx, playerID, NormalizeVariant(variant), date)
	if err != nil {
		return nil, grouping.GuessResult{}, err
	}

	result := play.Session.Guess(words)
	if result.Outcome != grouping.GuessRejected {
		if err := c.save(ctx, play); err != nil {
			return nil, grouping.GuessResult{}, err
		}
	}
	return play, result, nil
}

// Shuffle reorders the player's remaining words and saves the new order
func (c *Controller) Shuffle(ctx context.Context, playerID model.PlayerID, variant string, date time.Time) (*Play, error) {
	play, err := c.load(ctx, playerID, NormalizeVariant(variant), date)
	if err != nil {
		return nil, err
	}
	play.Session.Shuffle(c.random)
	if err := c.save(ctx, play); err != nil {
		return nil, err
	}
	return play, nil
}

func (c *Controller) load(ctx context.Context, playerID model.PlayerID, variant string, date time.Time) (*Play, error) {
	puzzle, err := c.puzzles.SortVariant(ctx, variant, date)
	if err != nil {
		return nil, err
	}
	play := &Play{PlayerID: playerID, Date: seed.DateString(date), Variant: variant}

	state, err := c.storage.GetSortSession(ctx, playerID, variant, play.Date)
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		play.Session = grouping.NewSession(puzzle)
	case err != nil:
		return nil, err
	default:
		play.Session = grouping.RestoreSession(puzzle, state)
	}
	return play, nil
}

func (c *Controller) save(ctx context.Context, play *Play) error {
	state := play.Session.State()
	state.PlayerID = play.PlayerID
	state.Date = play.Date
	state.Variant = play.Variant
	return c.storage.SaveSortSession(ctx, &state)
}
