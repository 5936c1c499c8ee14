package routes

import (
	"barkr_server/controllers"
	"barkr_server/services"

	"github.com/gorilla/mux"
)

// RegisterGateRoutes sets up routes for the song gate under /gate
func RegisterGateRoutes(api *mux.Router, gateService *services.SongGateService) {
	controller := controllers.NewGateController(gateService)

	gateRouter := api.PathPrefix("/gate").Subrouter()

	gateRouter.HandleFunc("/{targetDogId}", controller.HandleEnterGate).Methods("GET")
	gateRouter.HandleFunc("/{targetDogId}/answer", controller.HandleSubmitAnswer).Methods("POST")
}
