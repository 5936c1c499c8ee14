package routes

import (
	"barkr_server/controllers"
	"barkr_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up the swipe route
func RegisterSwipeRoutes(api *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewSwipeController(matchService)

	api.HandleFunc("/swipe", controller.HandleSwipe).Methods("POST")
}
