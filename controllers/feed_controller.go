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

// FeedController struct
type FeedController struct {
	Feed     *services.FeedService
	Profiles *services.UserProfileService
}

// NewFeedController initializes the feed controller
func NewFeedController(feed *services.FeedService, profiles *services.UserProfileService) *FeedController {
	return &FeedController{Feed: feed, Profiles: profiles}
}

// HandleNextBatch returns the next batch of swipeable candidates. The
// age range comes from the viewer's own seeking preferences.
func (c *FeedController) HandleNextBatch(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := auth.UIDFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error": "missing session"}`, http.StatusUnauthorized)
		return
	}

	viewer, err := c.Profiles.GetProfile(r.Context(), viewerID)
	if err != nil {
		log.Printf("Failed to fetch viewer profile %s: %v", viewerID, err)
		http.Error(w, `{"error": "Failed to fetch viewer profile"}`, http.StatusInternalServerError)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = services.DefaultFeedLimit
	}

	profiles, err := c.Feed.NextBatch(r.Context(), viewerID, viewer.MinSeekingAge, viewer.MaxSeekingAge, limit)
	if err != nil {
		log.Printf("Failed to fetch candidates for %s: %v", viewerID, err)
		http.Error(w, `{"error": "Failed to fetch candidates"}`, http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []models.UserProfile{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profiles)
}
