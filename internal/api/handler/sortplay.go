package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/dailypuzzles/internal/api/request"
	"github.com/mcoot/dailypuzzles/internal/api/response"
	"github.com/mcoot/dailypuzzles/internal/services/puzzles"
	"github.com/mcoot/dailypuzzles/internal/services/sortplay"
)

// SortPlayHandler handles a player's Sort session
type SortPlayHandler struct {
	puzzles    *puzzles.Service
	controller *sortplay.Controller
	shareURL   string
}

// NewSortPlayHandler creates a new Sort session handler. shareURL ends the
// share text of finished sessions and may be empty.
func NewSortPlayHandler(puzzles *puzzles.Service, controller *sortplay.Controller, shareURL string) *SortPlayHandler {
	return &SortPlayHandler{puzzles: puzzles, controller: controller, shareURL: shareURL}
}

// Get handles GET /api/v1/sort/{date}/play/{player}
func (h *SortPlayHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	date, err := h.puzzles.ResolveDate(mux.Vars(r)["date"])
	if err != nil {
		WriteError(w, err)
		return
	}

	play, err := h.controller.Get(r.Context(), playerID, r.URL.Query().Get("variant"), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SortSessionFromPlay(play, h.shareURL))
}

// Guess handles POST /api/v1/sort/{date}/play/{player}/guess
func (h *SortPlayHandler) Guess(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.SortGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}

	date, err := h.puzzles.ResolveDate(mux.Vars(r)["date"])
	if err != nil {
		WriteError(w, err)
		return
	}

	play, result, err := h.controller.Guess(r.Context(), playerID, req.Variant, date, req.Words)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.SortSessionFromPlay(play, h.shareURL)
	resp.Outcome = string(result.Outcome)
	response.JSON(w, http.StatusOK, resp)
}

// Shuffle handles POST /api/v1/sort/{date}/play/{player}/shuffle
func (h *SortPlayHandler) Shuffle(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	date, err := h.puzzles.ResolveDate(mux.Vars(r)["date"])
	if err != nil {
		WriteError(w, err)
		return
	}

	play, err := h.controller.Shuffle(r.Context(), playerID, r.URL.Query().Get("variant"), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SortSessionFromPlay(play, h.shareURL))
}
