package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"country-guess/internal/game"
	"country-guess/internal/model"
	"country-guess/internal/service"
)

// GameHandler handles the game lifecycle endpoints.
type GameHandler struct {
	games *service.GameService
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

type startRequest struct {
	Difficulty string `json:"difficulty"`
}

type guessRequest struct {
	Guess string `json:"guess"`
}

// Start handles POST /api/game/start.
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Difficulty == "" {
		req.Difficulty = model.DifficultyEasy
	}

	res, err := h.games.Start(r.Context(), sessionToken(r), req.Difficulty)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Guess handles POST /api/game/guess.
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	res, err := h.games.Guess(sessionToken(r), req.Guess)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GiveUp handles POST /api/game/giveup.
func (h *GameHandler) GiveUp(w http.ResponseWriter, r *http.Request) {
	res, err := h.games.GiveUp(sessionToken(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ------------------------------ helpers ------------------------------

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeServiceError maps domain errors to HTTP responses. Every
// user-correctable rejection is a 400 with a distinguishable reason;
// anything else is an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrEmptyPool):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No countries found for this difficulty."})
	case errors.Is(err, service.ErrNoActiveGame), errors.Is(err, game.ErrGameOver):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Game not started or already over. Please refresh."})
	case errors.Is(err, game.ErrNotWon):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No game data to save."})
	case errors.Is(err, service.ErrPlayerNameRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Player name is required."})
	default:
		log.Error().Err(err).Msg("Request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
