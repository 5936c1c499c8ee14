package routes

import (
	"barkr_server/controllers"
	"barkr_server/services"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up the discovery feed route
func RegisterFeedRoutes(api *mux.Router, store services.Store) {
	controller := controllers.NewFeedController(store)

	api.HandleFunc("/feed", controller.HandleNextCard).Methods("GET")
}
