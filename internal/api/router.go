package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/dailypuzzles/internal/api/handler"
	"github.com/mcoot/dailypuzzles/internal/api/middleware"
	"github.com/mcoot/dailypuzzles/internal/api/response"
	basemiddleware "github.com/mcoot/dailypuzzles/internal/middleware"
	"github.com/mcoot/dailypuzzles/internal/services/challenge"
	"github.com/mcoot/dailypuzzles/internal/services/dictionary"
	"github.com/mcoot/dailypuzzles/internal/services/puzzles"
	"github.com/mcoot/dailypuzzles/internal/services/seed"
	"github.com/mcoot/dailypuzzles/internal/services/sortplay"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger              *slog.Logger
	Puzzles             *puzzles.Service
	ChallengeController *challenge.Controller
	SortPlayController  *sortplay.Controller
	// ShareURL ends the share text of finished Sort sessions
	ShareURL            string
	Dictionary          *dictionary.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	puzzleHandler := handler.NewPuzzleHandler(cfg.Puzzles)
	challengeHandler := handler.NewChallengeHandler(cfg.ChallengeController)
	sortPlayHandler := handler.NewSortPlayHandler(cfg.Puzzles, cfg.SortPlayController, cfg.ShareURL)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(basemiddleware.RequestID)
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(basemiddleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler(cfg)).Methods(http.MethodGet)

	// {date} is YYYY-MM-DD or "today"
	api.HandleFunc("/cipher/{date}", puzzleHandler.GetCipher).Methods(http.MethodGet)
	api.HandleFunc("/cipher/{date}/check", puzzleHandler.CheckCipher).Methods(http.MethodPost)
	api.HandleFunc("/gridgram/{date}", puzzleHandler.GetGrid).Methods(http.MethodGet)
	api.HandleFunc("/gridgram/{date}/validate", puzzleHandler.ValidateGrid).Methods(http.MethodPost)
	api.HandleFunc("/shift/{date}", puzzleHandler.GetShift).Methods(http.MethodGet)
	api.HandleFunc("/shift/{date}/check", puzzleHandler.CheckShift).Methods(http.MethodPost)
	api.HandleFunc("/sort/{date}", puzzleHandler.GetSort).Methods(http.MethodGet)
	api.HandleFunc("/sort/{date}/guess", puzzleHandler.GuessSort).Methods(http.MethodPost)
	api.HandleFunc("/sort/{date}/play/{player}", sortPlayHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/sort/{date}/play/{player}/guess", sortPlayHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/sort/{date}/play/{player}/shuffle", sortPlayHandler.Shuffle).Methods(http.MethodPost)
	api.HandleFunc("/mini/{date}", puzzleHandler.GetMini).Methods(http.MethodGet)
	api.HandleFunc("/mini/{date}/check", puzzleHandler.CheckMini).Methods(http.MethodPost)
	api.HandleFunc("/stars", puzzleHandler.Stars).Methods(http.MethodPost)

	api.HandleFunc("/challenge/{player}", challengeHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/challenge/{player}/complete", challengeHandler.Complete).Methods(http.MethodPost)

	return r
}

func healthHandler(cfg RouterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := response.Health{Status: "ok", Today: seed.DateString(cfg.Puzzles.Today())}
		if cfg.Dictionary != nil {
			resp.Dictionary = cfg.Dictionary.WordCount()
		}
		response.JSON(w, http.StatusOK, resp)
	}
}
