package routes

import (
	"cinder_server/auth"
	"cinder_server/controllers"
	"cinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile operations under /api/users
func RegisterUserProfileRoutes(r *mux.Router, profiles *services.UserProfileService, tokens *auth.TokenManager) {
	controller := controllers.NewUserProfileController(profiles, tokens)

	// Registration and login happen before a session exists.
	r.HandleFunc("/api/users", controller.HandleRegister).Methods("POST")
	r.HandleFunc("/api/sessions", controller.HandleLogin).Methods("POST")

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.Use(auth.Middleware(tokens))
	userRouter.HandleFunc("/{uid}", controller.HandleGetProfile).Methods("GET")
	userRouter.HandleFunc("/{uid}", controller.HandleSaveSettings).Methods("PUT")
}
