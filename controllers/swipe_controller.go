package controllers

import (
	"cinder_server/auth"
	"cinder_server/services"
	"encoding/json"
	"log"
	"net/http"
)

// SwipeController struct
type SwipeController struct {
	Swipes  *services.SwipeService
	Matches *services.MatchService
}

// NewSwipeController initializes the swipe controller
func NewSwipeController(swipes *services.SwipeService, matches *services.MatchService) *SwipeController {
	return &SwipeController{Swipes: swipes, Matches: matches}
}

// HandleRecordSwipe persists the viewer's decision about a candidate.
// A like also runs match detection; the response carries the match when
// the like turned out to be mutual.
func (c *SwipeController) HandleRecordSwipe(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := auth.UIDFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing session"}`, http.StatusUnauthorized)
		return
	}

	var request struct {
		CandidateUID string `json:"candidateUid"`
		Liked        bool   `json:"liked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.CandidateUID == "" {
		http.Error(w, `{"error": "candidateUid is required"}`, http.StatusBadRequest)
		return
	}

	if err := c.Swipes.RecordSwipe(r.Context(), viewerID, request.CandidateUID, request.Liked); err != nil {
		log.Printf("Failed to record swipe: %v", err)
		http.Error(w, `{"error": "Failed to record swipe"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{"status": "recorded"}

	if request.Liked {
		match, err := c.Matches.CheckForMatch(r.Context(), viewerID, request.CandidateUID)
		if err != nil {
			// The swipe itself is already durable; surface the detection
			// failure without undoing it.
			log.Printf("Match detection failed for %s -> %s: %v", viewerID, request.CandidateUID, err)
			http.Error(w, `{"error": "Swipe recorded but match detection failed"}`, http.StatusInternalServerError)
			return
		}
		if match != nil {
			response["match"] = match
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
