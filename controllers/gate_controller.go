package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"barkr_server/middleware"
	"barkr_server/services"

	"github.com/gorilla/mux"
)

// GateController handles HTTP requests for the song gate
type GateController struct {
	GateService *services.SongGateService
}

// NewGateController creates a new GateController instance
func NewGateController(gateService *services.SongGateService) *GateController {
	return &GateController{GateService: gateService}
}

// HandleEnterGate starts a gate round for the target dog. When the target's
// artist has no challenges the gate passes immediately and the response
// already carries the match result.
func (gc *GateController) HandleEnterGate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	targetDogID := mux.Vars(r)["targetDogId"]

	result, err := gc.GateService.EnterGate(r.Context(), userID, targetDogID)
	if err != nil {
		gc.writeGateError(w, err)
		return
	}

	gc.writeGateResult(w, result)
}

// HandleSubmitAnswer checks a submitted answer against the challenge key the
// caller is holding.
func (gc *GateController) HandleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	targetDogID := mux.Vars(r)["targetDogId"]

	var request struct {
		ChallengeKey string `json:"challengeKey"`
		Answer       string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.ChallengeKey == "" {
		http.Error(w, "challengeKey is required", http.StatusBadRequest)
		return
	}

	result, err := gc.GateService.SubmitAnswer(r.Context(), userID, targetDogID, request.ChallengeKey, request.Answer)
	if err != nil {
		gc.writeGateError(w, err)
		return
	}

	gc.writeGateResult(w, result)
}

// writeGateError maps gate failures. Unknown challenge keys and vanished
// profiles abort back to the feed without finalizing anything.
func (gc *GateController) writeGateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUnknownChallenge), errors.Is(err, services.ErrProfileGone):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error":    err.Error(),
			"redirect": "/api/feed",
		})
	case errors.Is(err, services.ErrNoOwnProfile):
		http.Error(w, "Create a dog profile before swiping", http.StatusConflict)
	default:
		log.Println("Error in song gate:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (gc *GateController) writeGateResult(w http.ResponseWriter, result *services.GateResult) {
	w.Header().Set("Content-Type", "application/json")
	switch result.Status {
	case services.GatePassed:
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result":   "match",
			"matched":  result.Matched,
			"redirect": "/api/matches",
		})
	case services.GateRetry:
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result":       "retry",
			"challengeKey": result.Challenge.Key,
			"snippet":      result.Challenge.Snippet,
		})
	default:
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result":       "challenge",
			"challengeKey": result.Challenge.Key,
			"snippet":      result.Challenge.Snippet,
			"artist":       result.Challenge.Artist,
		})
	}
}
