package routes

import (
	"cinder_server/auth"
	"cinder_server/controllers"
	"cinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match operations under /api/matches
func RegisterMatchRoutes(r *mux.Router, matches *services.MatchService, tokens *auth.TokenManager) {
	controller := controllers.NewMatchController(matches)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.Use(auth.Middleware(tokens))
	matchRouter.HandleFunc("", controller.HandleGetMatches).Methods("GET")
}
