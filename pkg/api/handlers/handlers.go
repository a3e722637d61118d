package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cbodonnell/simon/pkg/log"
	"github.com/cbodonnell/simon/pkg/repositories"
	"github.com/cbodonnell/simon/pkg/state"
)

type HighScoreResponse struct {
	HighScore int  `json:"highScore"`
	Recorded  bool `json:"recorded"`
	// UpdatedAt is unix milliseconds, 0 when nothing was recorded
	UpdatedAt int64 `json:"updatedAt"`
}

func HandleGetHighScore(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := HighScoreResponse{}
		highScore, err := repository.LoadHighScore(r.Context())
		if err != nil {
			if !repositories.IsNotFound(err) {
				log.Error("failed to load high score: %v", err)
				http.Error(w, "Failed to load high score", http.StatusInternalServerError)
				return
			}
		} else {
			response.HighScore = highScore.Score
			response.Recorded = true
			response.UpdatedAt = highScore.UpdatedAt
		}

		writeJSON(w, response)
	}
}

func HandleGetGame(stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := stateManager.Get(r.Context())
		if err != nil {
			if errors.Is(err, state.ErrNoSnapshot) {
				http.Error(w, "No game started", http.StatusNotFound)
				return
			}
			log.Error("failed to get game snapshot: %v", err)
			http.Error(w, "Failed to get game", http.StatusInternalServerError)
			return
		}

		writeJSON(w, game)
	}
}

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
