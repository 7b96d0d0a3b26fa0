package handler

import (
	"encoding/json"
	"net/http"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"github.com/mcoot/dailypuzzles/internal/api/request"
	"github.com/mcoot/dailypuzzles/internal/api/response"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/mini"
	"github.com/mcoot/dailypuzzles/internal/services/puzzles"
	"github.com/mcoot/dailypuzzles/internal/services/scoring"
	"github.com/mcoot/dailypuzzles/internal/services/shift"
)

// PuzzleHandler serves the daily puzzles and checks answers
type PuzzleHandler struct {
	puzzles *puzzles.Service
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(puzzles *puzzles.Service) *PuzzleHandler {
	return &PuzzleHandler{puzzles: puzzles}
}

// GetCipher handles GET /api/v1/cipher/{date}
func (h *PuzzleHandler) GetCipher(w http.ResponseWriter, r *http.Request) {
	date, difficulty, err := h.dateAndDifficulty(r, r.URL.Query().Get("difficulty"))
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.puzzles.Cipher(r.Context(), difficulty, date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CipherFromModel(p))
}

// CheckCipher handles POST /api/v1/cipher/{date}/check
func (h *PuzzleHandler) CheckCipher(w http.ResponseWriter, r *http.Request) {
	var req request.CipherCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}

	date, difficulty, err := h.dateAndDifficulty(r, req.Difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	guesses := make(map[rune]rune, len(req.Guesses))
	for c, p := range req.Guesses {
		cipherLetter, ok1 := singleLetter(c)
		plainLetter, ok2 := singleLetter(p)
		if !ok1 || !ok2 {
			WriteError(w, NewInvalidRequestError("Guesses must map single letters to single letters"))
			return
		}
		guesses[cipherLetter] = plainLetter
	}

	solved, err := h.puzzles.CheckCipher(r.Context(), difficulty, date, guesses)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Solved{Solved: solved})
}

// GetGrid handles GET /api/v1/gridgram/{date}
func (h *PuzzleHandler) GetGrid(w http.ResponseWriter, r *http.Request) {
	date, err := h.date(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.puzzles.Grid(r.Context(), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GridFromModel(p))
}

// ValidateGrid handles POST /api/v1/gridgram/{date}/validate
func (h *PuzzleHandler) ValidateGrid(w http.ResponseWriter, r *http.Request) {
	var req request.GridValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}

	date, err := h.date(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	positions := make([]model.GridPosition, 0, len(req.Positions))
	for _, t := range req.Positions {
		letter, ok := singleLetter(t.Letter)
		if !ok {
			WriteError(w, NewInvalidRequestError("Each tile needs a single letter"))
			return
		}
		positions = append(positions, model.GridPosition{Row: t.Row, Col: t.Col, Letter: letter})
	}

	check, err := h.puzzles.CheckGrid(r.Context(), date, positions)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GridValidationFromResult(check.Validation, check.Score))
}

// GetShift handles GET /api/v1/shift/{date}
func (h *PuzzleHandler) GetShift(w http.ResponseWriter, r *http.Request) {
	date, difficulty, err := h.dateAndDifficulty(r, r.URL.Query().Get("difficulty"))
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.puzzles.Shift(r.Context(), difficulty, date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ShiftFromModel(p))
}

// CheckShift handles POST /api/v1/shift/{date}/check
func (h *PuzzleHandler) CheckShift(w http.ResponseWriter, r *http.Request) {
	var req request.ShiftCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}

	date, difficulty, err := h.dateAndDifficulty(r, req.Difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}

	solved, err := h.puzzles.CheckShift(r.Context(), difficulty, date, shift.FromRows(req.Grid))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Solved{Solved: solved})
}

// GetSort handles GET /api/v1/sort/{date}
func (h *PuzzleHandler) GetSort(w http.ResponseWriter, r *http.Request) {
	date, err := h.date(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.puzzles.SortVariant(r.Context(), r.URL.Query().Get("variant"), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SortFromModel(p))
}

// GuessSort handles POST /api/v1/sort/{date}/guess
func (h *PuzzleHandler) GuessSort(w http.ResponseWriter, r *http.Request) {
	var req request.SortGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}

	date, err := h.date(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	group, err := h.puzzles.GuessSort(r.Context(), req.Variant, date, req.Words)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SortGuessFromGroup(group))
}

// GetMini handles GET /api/v1/mini/{date}
func (h *PuzzleHandler) GetMini(w http.ResponseWriter, r *http.Request) {
	date, err := h.date(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	p, err := h.puzzles.Mini(r.Context(), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MiniFromModel(p))
}

// CheckMini handles POST /api/v1/mini/{date}/check
func (h *PuzzleHandler) CheckMini(w http.ResponseWriter, r *http.Request) {
	var req request.MiniCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}

	date, err := h.date(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.puzzles.CheckMini(r.Context(), date, mini.ParseRows(req.Entries))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MiniCheckFromResult(result))
}

// Stars handles POST /api/v1/stars
func (h *PuzzleHandler) Stars(w http.ResponseWriter, r *http.Request) {
	var req request.StarsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}

	difficulty, err := model.ParseDifficulty(req.Difficulty)
	if err != nil {
		WriteError(w, err)
		return
	}
	elapsed, err := parseElapsed(req.ElapsedMS)
	if err != nil {
		WriteError(w, err)
		return
	}

	stars := scoring.StarsEarned(difficulty, elapsed)
	response.JSON(w, http.StatusOK, response.Stars{Stars: stars})
}

func (h *PuzzleHandler) date(r *http.Request) (time.Time, error) {
	return h.puzzles.ResolveDate(mux.Vars(r)["date"])
}

// dateAndDifficulty resolves the path date and a difficulty, easy when
// omitted
func (h *PuzzleHandler) dateAndDifficulty(r *http.Request, difficulty string) (time.Time, model.Difficulty, error) {
	date, err := h.date(r)
	if err != nil {
		return time.Time{}, "", err
	}
	d, err := model.ParseDifficulty(lo.CoalesceOrEmpty(difficulty, string(model.DifficultyEasy)))
	if err != nil {
		return time.Time{}, "", err
	}
	return date, d, nil
}

func singleLetter(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return unicode.ToUpper(r), true
}
