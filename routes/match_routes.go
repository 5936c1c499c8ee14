package routes

import (
	"barkr_server/controllers"
	"barkr_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up the matches listing route
func RegisterMatchRoutes(api *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	api.HandleFunc("/matches", controller.HandleGetMatches).Methods("GET")
}
