package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"barkr_server/middleware"
	"barkr_server/services"
)

// FeedController serves the one-card-at-a-time discovery feed
type FeedController struct {
	Store services.Store
}

// NewFeedController creates a new FeedController instance
func NewFeedController(store services.Store) *FeedController {
	return &FeedController{Store: store}
}

// HandleNextCard returns the next unseen, not-own dog, or an empty-feed marker
func (fc *FeedController) HandleNextCard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	dog, err := fc.Store.FeedCandidate(r.Context(), userID)
	if err != nil {
		log.Println("Error fetching feed candidate:", err)
		http.Error(w, "Failed to fetch next card", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if dog == nil {
		json.NewEncoder(w).Encode(map[string]interface{}{"empty": true})
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"dog": dog})
}
