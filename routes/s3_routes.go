package routes

import (
	"cinder_server/auth"
	"cinder_server/controllers"
	"cinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for photo blob-store access under /api/media
func RegisterS3Routes(r *mux.Router, s3 *services.S3Service, tokens *auth.TokenManager) {
	controller := controllers.NewS3Controller(s3)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()
	mediaRouter.Use(auth.Middleware(tokens))
	mediaRouter.HandleFunc("/upload-url", controller.HandleGenerateUploadURL).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controller.HandleGenerateReadURL).Methods("POST")
}
