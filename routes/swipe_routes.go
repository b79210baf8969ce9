package routes

import (
	"cinder_server/auth"
	"cinder_server/controllers"
	"cinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up routes for swipe operations under /api/swipes
func RegisterSwipeRoutes(r *mux.Router, swipes *services.SwipeService, matches *services.MatchService, tokens *auth.TokenManager) {
	controller := controllers.NewSwipeController(swipes, matches)

	swipeRouter := r.PathPrefix("/api/swipes").Subrouter()
	swipeRouter.Use(auth.Middleware(tokens))
	swipeRouter.HandleFunc("", controller.HandleRecordSwipe).Methods("POST")
}
