package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"barkr_server/middleware"
	"barkr_server/models"
	"barkr_server/services"
)

// MatchController handles HTTP requests for the matches view
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// HandleGetMatches returns the caller's incoming likes split into pending
// (not yet reciprocated) and confirmed (mutual) dogs.
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	pending, confirmed, err := mc.MatchService.MatchesFor(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNoOwnProfile) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{
				"error":    "Create a dog profile before viewing matches",
				"redirect": "/api/profiles",
			})
			return
		}
		log.Println("Error fetching matches:", err)
		http.Error(w, "Failed to fetch matches", http.StatusInternalServerError)
		return
	}

	if pending == nil {
		pending = []models.DogProfile{}
	}
	if confirmed == nil {
		confirmed = []models.DogProfile{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"pending":   pending,
		"confirmed": confirmed,
	})
}
