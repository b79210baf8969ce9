package controllers

import (
	"cinder_server/auth"
	"cinder_server/models"
	"cinder_server/services"
	"encoding/json"
	"log"
	"net/http"
)

// MatchController struct
type MatchController struct {
	Matches *services.MatchService
}

// NewMatchController initializes the match controller
func NewMatchController(matches *services.MatchService) *MatchController {
	return &MatchController{Matches: matches}
}

// HandleGetMatches lists the viewer's matches.
func (c *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := auth.UIDFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing session"}`, http.StatusUnauthorized)
		return
	}

	matches, err := c.Matches.GetMatches(r.Context(), viewerID)
	if err != nil {
		log.Printf("Failed to fetch matches for %s: %v", viewerID, err)
		http.Error(w, `{"error": "Failed to fetch matches"}`, http.StatusInternalServerError)
		return
	}
	if matches == nil {
		matches = []models.Match{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(matches)
}
