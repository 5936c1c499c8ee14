package routes

import (
	"barkr_server/controllers"
	"barkr_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for photo upload presigning under /s3
func RegisterS3Routes(api *mux.Router, photoService *services.PhotoService) {
	controller := controllers.NewPhotoController(photoService)

	s3Router := api.PathPrefix("/s3").Subrouter()

	s3Router.HandleFunc("/generate-presigned-url", controller.GeneratePresignedURL).Methods("POST")
	s3Router.HandleFunc("/get-presigned-read-url", controller.GetPresignedReadURL).Methods("POST")
}
