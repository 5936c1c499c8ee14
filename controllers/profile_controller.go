package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"barkr_server/middleware"
	"barkr_server/models"
	"barkr_server/services"

	"github.com/gorilla/mux"
)

// DogProfileController handles requests related to dog profiles
type DogProfileController struct {
	ProfileService *services.DogProfileService
}

// NewDogProfileController creates a new instance of DogProfileController
func NewDogProfileController(profileService *services.DogProfileService) *DogProfileController {
	return &DogProfileController{ProfileService: profileService}
}

// CreateProfile creates the caller's dog profile
func (c *DogProfileController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var profile models.DogProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if profile.Name == "" {
		http.Error(w, "Dog name is required", http.StatusBadRequest)
		return
	}

	created, err := c.ProfileService.CreateProfile(r.Context(), userID, profile)
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			http.Error(w, "You already have a dog profile", http.StatusConflict)
			return
		}
		log.Printf("Failed to create profile: %v\n", err)
		http.Error(w, "Failed to create profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Profile created successfully",
		"profile": created,
	})
}

// GetOwnProfile fetches the caller's dog profile
func (c *DogProfileController) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	profile, err := c.ProfileService.GetOwnProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// GetProfileByID fetches a dog profile by id
func (c *DogProfileController) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	dogID := mux.Vars(r)["dogId"]

	profile, err := c.ProfileService.GetProfile(r.Context(), dogID)
	if err != nil {
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// UpdateProfile applies updates to the caller's dog profile
func (c *DogProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	updated, err := c.ProfileService.UpdateProfile(r.Context(), userID, updates)
	if err != nil {
		if errors.Is(err, services.ErrNoOwnProfile) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Profile updated successfully",
		"profile": updated,
	})
}

// DeleteProfile removes the caller's dog profile
func (c *DogProfileController) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	if err := c.ProfileService.DeleteProfile(r.Context(), userID); err != nil {
		if errors.Is(err, services.ErrNoOwnProfile) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Profile deleted successfully",
	})
}
