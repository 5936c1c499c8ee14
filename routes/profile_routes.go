package routes

import (
	"barkr_server/controllers"
	"barkr_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for dog profile operations under /profiles
func RegisterProfileRoutes(api *mux.Router, profileService *services.DogProfileService) {
	controller := controllers.NewDogProfileController(profileService)

	profileRouter := api.PathPrefix("/profiles").Subrouter()

	profileRouter.HandleFunc("", controller.CreateProfile).Methods("POST")
	profileRouter.HandleFunc("/me", controller.GetOwnProfile).Methods("GET")
	profileRouter.HandleFunc("/me", controller.UpdateProfile).Methods("PATCH")
	profileRouter.HandleFunc("/me", controller.DeleteProfile).Methods("DELETE")
	profileRouter.HandleFunc("/{dogId}", controller.GetProfileByID).Methods("GET")
}
