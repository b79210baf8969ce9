package routes

import (
	"cinder_server/auth"
	"cinder_server/controllers"
	"cinder_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat operations under /api/chat
func RegisterChatRoutes(r *mux.Router, chat *services.ChatService, tokens *auth.TokenManager) {
	controller := controllers.NewChatController(chat)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.Use(auth.Middleware(tokens))
	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/recent", controller.HandleGetRecentMessages).Methods("GET")
}
