package routes

import (
	"cinder_server/auth"
	"cinder_server/controllers"
	"cinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up routes for the candidate feed under /api/feed
func RegisterFeedRoutes(r *mux.Router, feed *services.FeedService, profiles *services.UserProfileService, tokens *auth.TokenManager) {
	controller := controllers.NewFeedController(feed, profiles)

	feedRouter := r.PathPrefix("/api/feed").Subrouter()
	feedRouter.Use(auth.Middleware(tokens))
	feedRouter.HandleFunc("", controller.HandleNextBatch).Methods("GET")
}
