package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"barkr_server/middleware"
	"barkr_server/services"
)

// SwipeController handles HTTP requests for swipes
type SwipeController struct {
	MatchService *services.MatchService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(matchService *services.MatchService) *SwipeController {
	return &SwipeController{MatchService: matchService}
}

// HandleSwipe records a like or dislike toward a target dog. A like that
// completes a mutual pair is not recorded yet; the response routes the caller
// to the song gate instead.
func (sc *SwipeController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var request struct {
		TargetDogID string `json:"targetDogId"`
		Direction   string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.TargetDogID == "" || request.Direction == "" {
		http.Error(w, "targetDogId and direction are required", http.StatusBadRequest)
		return
	}

	outcome, err := sc.MatchService.RecordSwipe(r.Context(), userID, request.TargetDogID, request.Direction)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDirection):
			http.Error(w, "Direction must be 'like' or 'dislike'", http.StatusBadRequest)
		case errors.Is(err, services.ErrNoOwnProfile):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{
				"error":    "Create a dog profile before swiping",
				"redirect": "/api/profiles",
			})
		case errors.Is(err, services.ErrProfileGone):
			http.Error(w, "Target dog not found", http.StatusNotFound)
		default:
			log.Println("Error recording swipe:", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if outcome == services.OutcomeRouteToGate {
		json.NewEncoder(w).Encode(map[string]string{
			"outcome": "gate",
			"gateUrl": "/api/gate/" + request.TargetDogID,
		})
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"outcome": "recorded"})
}
