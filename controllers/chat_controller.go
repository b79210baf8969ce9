package controllers

import (
	"cinder_server/auth"
	"cinder_server/models"
	"cinder_server/services"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
)

// ChatController struct
type ChatController struct {
	Chat *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

// HandleSendMessage - Handles sending a new message
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := auth.UIDFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing session"}`, http.StatusUnauthorized)
		return
	}

	var request struct {
		ToID string `json:"toId"`
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.ToID == "" || request.Text == "" {
		http.Error(w, `{"error": "Missing required fields: toId, text"}`, http.StatusBadRequest)
		return
	}

	if err := c.Chat.SendMessage(r.Context(), viewerID, request.ToID, request.Text); err != nil {
		log.Printf("Failed to send message %s -> %s: %v", viewerID, request.ToID, err)
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "success",
		"message": "Message sent successfully",
	})
}

// HandleGetMessages - Fetch the viewer's log of a conversation
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := auth.UIDFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing session"}`, http.StatusUnauthorized)
		return
	}

	partnerID := r.URL.Query().Get("partnerId")
	if partnerID == "" {
		http.Error(w, `{"error": "partnerId is required"}`, http.StatusBadRequest)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50 // Default to 50 messages
	}

	messages, err := c.Chat.GetMessages(r.Context(), viewerID, partnerID, limit)
	if err != nil {
		log.Printf("Failed to fetch messages: %v", err)
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleGetRecentMessages - Fetch the viewer's chat list summaries
func (c *ChatController) HandleGetRecentMessages(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := auth.UIDFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing session"}`, http.StatusUnauthorized)
		return
	}

	summaries, err := c.Chat.GetRecentMessages(r.Context(), viewerID)
	if err != nil {
		log.Printf("Failed to fetch recent messages for %s: %v", viewerID, err)
		http.Error(w, `{"error": "Failed to fetch recent messages"}`, http.StatusInternalServerError)
		return
	}
	if summaries == nil {
		summaries = []models.RecentMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}
