package handler

import (
	"encoding/json"
	"net/http"

	"country-guess/internal/model"
	"country-guess/internal/service"
)

// RankingHandler handles leaderboard endpoints.
type RankingHandler struct {
	games       *service.GameService
	leaderboard *service.LeaderboardService
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(games *service.GameService, leaderboard *service.LeaderboardService) *RankingHandler {
	return &RankingHandler{games: games, leaderboard: leaderboard}
}

type saveRequest struct {
	PlayerName string `json:"player_name"`
}

type saveResponse struct {
	Status string `json:"status"`
}

type listResponse struct {
	Rankings []*model.Ranking `json:"rankings"`
}

// Save handles POST /api/ranking. Only a won game may be recorded.
func (h *RankingHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.games.Save(r.Context(), sessionToken(r), req.PlayerName); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saveResponse{Status: "success"})
}

// List handles GET /api/ranking and returns the top of the leaderboard.
func (h *RankingHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.leaderboard.Top(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if recs == nil {
		recs = []*model.Ranking{}
	}
	writeJSON(w, http.StatusOK, listResponse{Rankings: recs})
}
