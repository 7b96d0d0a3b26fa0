package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/dailypuzzles/internal/api/request"
	"github.com/mcoot/dailypuzzles/internal/api/response"
	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/challenge"
)

// ChallengeHandler handles daily challenge endpoints
type ChallengeHandler struct {
	controller *challenge.Controller
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(controller *challenge.Controller) *ChallengeHandler {
	return &ChallengeHandler{controller: controller}
}

// Get handles GET /api/v1/challenge/{player}
func (h *ChallengeHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.controller.GetState(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}
	stats, err := h.controller.GetStats(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ChallengeFromModel(state, stats, h.controller.TimeUntilNext()))
}

// Complete handles POST /api/v1/challenge/{player}/complete
func (h *ChallengeHandler) Complete(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.Score < 0 {
		WriteError(w, NewInvalidRequestError("score must not be negative"))
		return
	}
	elapsed, err := parseElapsed(req.ElapsedMS)
	if err != nil {
		WriteError(w, err)
		return
	}

	gameID, err := challenge.ParseGameID(strings.ToLower(req.Game))
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.controller.RegisterCompletion(
		r.Context(), playerID, gameID, req.Score, elapsed,
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.ChallengeFromModel(result.State, result.Stats, h.controller.TimeUntilNext())
	resp.JustFinished = result.JustFinished
	response.JSON(w, http.StatusOK, resp)
}

func playerFromPath(r *http.Request) (model.PlayerID, error) {
	id := strings.TrimSpace(mux.Vars(r)["player"])
	if id == "" {
		return "", NewInvalidRequestError("Player id is required")
	}
	return model.PlayerID(id), nil
}
