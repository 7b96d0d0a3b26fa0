package api_test

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/dailypuzzles/internal/api"
	"github.com/mcoot/dailypuzzles/internal/api/apierr"
	"github.com/mcoot/dailypuzzles/internal/api/response"
	"github.com/mcoot/dailypuzzles/internal/factory"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/shift"
	"github.com/mcoot/dailypuzzles/internal/testutil"
)

type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app, err := factory.NewTestApp()
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:              testutil.NopLogger(),
		Puzzles:             app.Puzzles,
		ChallengeController: app.ChallengeController,
		SortPlayController:  app.SortPlay,
		Dictionary:          app.DictionaryService,
		ShareURL:            "https://littles.example",
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func assertErrorCode(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, code, resp.Error.Code)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	resp := decode[response.Health](t, rr)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2026-01-12", resp.Today)
	assert.Positive(t, resp.Dictionary)
}

func TestGetCipherHidesAnswer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/cipher/today?difficulty=hard", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "mapping")
	assert.NotContains(t, raw, "original_phrase")

	resp := decode[response.Cipher](t, rr)
	assert.Equal(t, 2, resp.PuzzleNumber)
	assert.Equal(t, "2026-01-12", resp.Date)
	assert.Equal(t, "hard", resp.Difficulty)
	assert.NotEmpty(t, resp.EncodedPhrase)
}

func TestGetCipherDefaultsToEasy(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/cipher/2026-02-01", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "easy", decode[response.Cipher](t, rr).Difficulty)
}

func TestBadDateAndDifficulty(t *testing.T) {
	ts := newTestServer(t)

	assertErrorCode(t, ts.request(http.MethodGet, "/api/v1/cipher/yesterday", nil), http.StatusBadRequest, apierr.CodeInvalidRequest)
	assertErrorCode(t, ts.request(http.MethodGet, "/api/v1/cipher/2026-02-30", nil), http.StatusBadRequest, apierr.CodeInvalidRequest)
	assertErrorCode(t, ts.request(http.MethodGet, "/api/v1/shift/today?difficulty=extreme", nil), http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestCheckCipher(t *testing.T) {
	ts := newTestServer(t)

	p, err := ts.app.Puzzles.Cipher(t.Context(), model.DifficultyMedium, ts.app.Puzzles.Today())
	require.NoError(t, err)

	guesses := map[string]string{}
	for plain, c := range p.Mapping {
		guesses[string(c)] = string(plain)
	}

	rr := ts.request(http.MethodPost, "/api/v1/cipher/today/check", map[string]any{
		"difficulty": "medium",
		"guesses":    guesses,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[response.Solved](t, rr).Solved)

	rr = ts.request(http.MethodPost, "/api/v1/cipher/today/check", map[string]any{
		"difficulty": "medium",
		"guesses":    map[string]string{"A": "B"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decode[response.Solved](t, rr).Solved)
}

func TestCheckCipherRejectsMalformedGuesses(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/cipher/today/check", map[string]any{
		"guesses": map[string]string{"AB": "C"},
	})
	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cipher/today/check", bytes.NewBufferString("{"))
	bad := httptest.NewRecorder()
	ts.handler.ServeHTTP(bad, req)
	assertErrorCode(t, bad, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestGridgram(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/gridgram/today", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "words")

	grid := decode[response.Grid](t, rr)
	assert.NotEmpty(t, grid.Letters)

	rr = ts.request(http.MethodPost, "/api/v1/gridgram/today/validate", map[string]any{
		"positions": []map[string]any{{"row": 0, "col": 0, "letter": grid.Letters[0]}},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	result := decode[response.GridValidation](t, rr)
	assert.False(t, result.IsValid)
	assert.Equal(t, 0, result.Score.TotalScore)

	rr = ts.request(http.MethodPost, "/api/v1/gridgram/today/validate", map[string]any{
		"positions": []map[string]any{{"row": 0, "col": 0, "letter": "!"}},
	})
	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestShift(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/shift/2026-01-11?difficulty=easy", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "solution")

	p := decode[response.Shift](t, rr)
	assert.Equal(t, 1, p.PuzzleNumber)
	assert.Equal(t, 4, p.Size)
	assert.Equal(t, 4, p.Moves)
	assert.Equal(t, []string{"SALD", "RGYR", "DTAP", "SIEK"}, p.Grid)

	rr = ts.request(http.MethodPost, "/api/v1/shift/2026-01-11/check", map[string]any{
		"difficulty": "easy",
		"grid":       shift.Rows(shift.FromRows([]string{"YARD", "DRAG", "STEP", "SILK"})),
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[response.Solved](t, rr).Solved)

	rr = ts.request(http.MethodPost, "/api/v1/shift/2026-01-11/check", map[string]any{
		"difficulty": "easy",
		"grid":       p.Grid,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decode[response.Solved](t, rr).Solved)
}

func TestSort(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/sort/2026-03-15", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "groups")

	board := decode[response.Sort](t, rr)
	assert.Equal(t, 64, board.PuzzleNumber)
	assert.Len(t, board.Words, 16)
	assert.Equal(t, "bank", board.Source)

	rr = ts.request(http.MethodPost, "/api/v1/sort/2026-03-15/guess", map[string]any{
		"words": []string{"poker", "Bridge", "SOLITAIRE", "CRAZY EIGHTS"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	guess := decode[response.SortGuess](t, rr)
	assert.True(t, guess.Correct)
	require.NotNil(t, guess.Group)
	assert.Equal(t, "Card games", guess.Group.Category)
	assert.Equal(t, 3, guess.Group.Difficulty)

	rr = ts.request(http.MethodPost, "/api/v1/sort/2026-03-15/guess", map[string]any{
		"words": []string{"POKER", "BRIDGE", "SOLITAIRE", "WAY"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	guess = decode[response.SortGuess](t, rr)
	assert.False(t, guess.Correct)
	assert.Nil(t, guess.Group)
}

func TestSortGeneratedVariant(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/sort/today?variant=generated", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	board := decode[response.Sort](t, rr)
	assert.Len(t, board.Words, 16)
	assert.Contains(t, []string{"generated", "fallback"}, board.Source)
}

func TestMini(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/mini/today", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	p := decode[response.Mini](t, rr)
	require.Len(t, p.Cells, 5)
	assert.NotEmpty(t, p.Across)
	assert.NotEmpty(t, p.Down)
	assert.NotContains(t, rr.Body.String(), "answer")

	puzzle, err := ts.app.Puzzles.Mini(t.Context(), ts.app.Puzzles.Today())
	require.NoError(t, err)
	rows := make([]string, len(puzzle.Solution))
	for r, row := range puzzle.Solution {
		for _, c := range row {
			if c == 0 {
				c = '#'
			}
			rows[r] += string(c)
		}
	}

	rr = ts.request(http.MethodPost, "/api/v1/mini/today/check", map[string]any{"entries": rows})
	require.Equal(t, http.StatusOK, rr.Code)
	check := decode[response.MiniCheck](t, rr)
	assert.True(t, check.Filled)
	assert.True(t, check.Solved)
	assert.Empty(t, check.Wrong)

	rr = ts.request(http.MethodPost, "/api/v1/mini/today/check", map[string]any{"entries": []string{}})
	require.Equal(t, http.StatusOK, rr.Code)
	check = decode[response.MiniCheck](t, rr)
	assert.False(t, check.Filled)
	assert.False(t, check.Solved)
}

func TestStars(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		difficulty string
		elapsed    time.Duration
		want       int
	}{
		{"easy", 30 * time.Second, 3},
		{"medium", 3 * time.Minute, 2},
		{"hard", 899999 * time.Millisecond, 1},
	}
	for _, tc := range cases {
		rr := ts.request(http.MethodPost, "/api/v1/stars", map[string]any{
			"difficulty": tc.difficulty,
			"elapsed_ms": tc.elapsed.Milliseconds(),
		})
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, tc.want, decode[response.Stars](t, rr).Stars, tc.difficulty)
	}

	for _, elapsed := range []int64{-1, 86400001, math.MaxInt64} {
		rr := ts.request(http.MethodPost, "/api/v1/stars", map[string]any{"difficulty": "easy", "elapsed_ms": elapsed})
		assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
	}

	rr := ts.request(http.MethodPost, "/api/v1/stars", map[string]any{"difficulty": "hard", "elapsed_ms": 86400000})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, decode[response.Stars](t, rr).Stars)
}

func TestChallengeFlow(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/challenge/alice", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	state := decode[response.Challenge](t, rr)
	assert.Equal(t, "2026-01-12", state.Date)
	assert.False(t, state.IsFullyCompleted)
	assert.Len(t, state.Games, 3)
	assert.Equal(t, "22:00:00", state.NextPuzzleIn)

	var last response.Challenge
	for i, game := range []string{"cipher", "GRIDGRAM", "shift"} {
		rr = ts.request(http.MethodPost, "/api/v1/challenge/alice/complete", map[string]any{
			"game":       game,
			"score":      30 * (i + 1),
			"elapsed_ms": 45000,
		})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		last = decode[response.Challenge](t, rr)
	}

	assert.True(t, last.JustFinished)
	assert.True(t, last.IsFullyCompleted)
	assert.Equal(t, 60, last.CompositeScore)
	assert.Equal(t, 1, last.Stats.CurrentStreak)
	assert.Equal(t, 10, last.Stats.TotalStars)

	rr = ts.request(http.MethodGet, "/api/v1/challenge/alice", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	state = decode[response.Challenge](t, rr)
	assert.True(t, state.IsFullyCompleted)
	assert.False(t, state.JustFinished)
	for _, g := range state.Games {
		assert.True(t, g.Completed, g.Game)
	}
}

func TestChallengeRejectsUnknownGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/challenge/alice/complete", map[string]any{
		"game": "sort", "score": 10, "elapsed_ms": 1000,
	})
	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestChallengeRejectsOutOfRangeElapsed(t *testing.T) {
	ts := newTestServer(t)

	for _, elapsed := range []int64{-1, math.MaxInt64} {
		rr := ts.request(http.MethodPost, "/api/v1/challenge/alice/complete", map[string]any{
			"game": "cipher", "score": 10, "elapsed_ms": elapsed,
		})
		assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
	}

	rr := ts.request(http.MethodGet, "/api/v1/challenge/alice", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	for _, g := range decode[response.Challenge](t, rr).Games {
		assert.False(t, g.Completed, g.Game)
	}
}

func TestSortPlaySession(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/sort/2026-03-15/play/alice", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	session := decode[response.SortSession](t, rr)
	assert.Equal(t, "alice", session.PlayerID)
	assert.Equal(t, "2026-03-15", session.Date)
	assert.Equal(t, "bank", session.Variant)
	assert.Equal(t, "playing", session.Status)
	assert.Equal(t, 4, session.MistakesLeft)
	assert.Empty(t, session.Solved)
	assert.Empty(t, session.Share)
	require.Len(t, session.Board, 16)
	assert.NotContains(t, rr.Body.String(), "category")

	rr = ts.request(http.MethodPost, "/api/v1/sort/2026-03-15/play/alice/guess", map[string]any{
		"words": []string{"poker", "Bridge", "SOLITAIRE", "CRAZY EIGHTS"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	session = decode[response.SortSession](t, rr)
	assert.Equal(t, "correct", session.Outcome)
	require.Len(t, session.Solved, 1)
	assert.Equal(t, "Card games", session.Solved[0].Category)
	assert.False(t, session.Solved[0].Revealed)
	assert.Len(t, session.Board, 12)

	rr = ts.request(http.MethodPost, "/api/v1/sort/2026-03-15/play/alice/guess", map[string]any{
		"words": []string{"POKER"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "rejected", decode[response.SortSession](t, rr).Outcome)

	// the board is reordered with the app's random source and kept
	board := session.Board
	rr = ts.request(http.MethodPost, "/api/v1/sort/2026-03-15/play/alice/shuffle", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	session = decode[response.SortSession](t, rr)
	assert.Equal(t, append(board[1:], board[0]), session.Board)

	rr = ts.request(http.MethodGet, "/api/v1/sort/2026-03-15/play/alice", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	again := decode[response.SortSession](t, rr)
	assert.Equal(t, session.Board, again.Board)
	assert.Len(t, again.Solved, 1)
	assert.Empty(t, again.Outcome)

	rr = ts.request(http.MethodGet, "/api/v1/sort/2026-03-15/play/bob", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[response.SortSession](t, rr).Solved)
}

func TestSortPlaySessionLosesAfterFourMistakes(t *testing.T) {
	ts := newTestServer(t)

	var session response.SortSession
	for range 4 {
		rr := ts.request(http.MethodPost, "/api/v1/sort/2026-03-15/play/alice/guess", map[string]any{
			"words": []string{"POKER", "BRIDGE", "SOLITAIRE", "WAY"},
		})
		require.Equal(t, http.StatusOK, rr.Code)
		session = decode[response.SortSession](t, rr)
		assert.Equal(t, "incorrect", session.Outcome)
	}

	assert.Equal(t, "lost", session.Status)
	assert.Contains(t, session.Share, "Little #64 ❌")
	assert.Contains(t, session.Share, "4/4 mistakes")
	assert.True(t, strings.HasSuffix(session.Share, "\n\nhttps://littles.example"), session.Share)
	assert.Zero(t, session.MistakesLeft)
	assert.Empty(t, session.Board)
	require.Len(t, session.Solved, 4)
	for _, g := range session.Solved {
		assert.True(t, g.Revealed, g.Category)
	}
}

func TestSortPlaySessionRejectsBadPlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/sort/2026-03-15/play/%20", nil)
	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}
