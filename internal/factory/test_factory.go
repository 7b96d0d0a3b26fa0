package factory

import (
	"context"
	"time"

	"github.com/mcoot/dailypuzzles/internal/dependencies/mocks"
	"github.com/mcoot/dailypuzzles/internal/services/challenge"
	"github.com/mcoot/dailypuzzles/internal/storage/memory"
	"github.com/mcoot/dailypuzzles/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// TestStart is the mock clock's starting time, after the unlock hour on the
// day of puzzle #2
var TestStart = time.Date(2026, 1, 12, 12, 0, 0, 0, time.UTC)

// NewTestApp creates an App on memory storage with mocked clock and random
// sources and the embedded dictionary loaded
func NewTestApp() (*TestApp, error) {
	store := memory.New()
	mockClock := mocks.NewMockClock(TestStart)
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, challenge.DefaultUnlockHour, testutil.NopLogger())
	if err != nil {
		return nil, err
	}
	if err := app.DictionaryService.LoadEmbedded(context.Background()); err != nil {
		return nil, err
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}, nil
}
