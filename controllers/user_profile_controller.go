package controllers

import (
	"cinder_server/auth"
	"cinder_server/models"
	"cinder_server/services"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// UserProfileController struct
type UserProfileController struct {
	Profiles *services.UserProfileService
	Tokens   *auth.TokenManager
}

// NewUserProfileController initializes the user profile controller
func NewUserProfileController(profiles *services.UserProfileService, tokens *auth.TokenManager) *UserProfileController {
	return &UserProfileController{Profiles: profiles, Tokens: tokens}
}

// HandleRegister creates a profile and issues a session token for it.
// Credential verification happens upstream at the identity provider;
// this endpoint only materializes the profile record.
func (c *UserProfileController) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	created, err := c.Profiles.CreateProfile(r.Context(), profile)
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			http.Error(w, `{"error": "Profile already exists"}`, http.StatusConflict)
			return
		}
		log.Printf("Failed to create profile: %v", err)
		http.Error(w, `{"error": "Failed to create profile"}`, http.StatusBadRequest)
		return
	}

	token, err := c.Tokens.CreateToken(created.UID)
	if err != nil {
		log.Printf("Failed to issue token for %s: %v", created.UID, err)
		http.Error(w, `{"error": "Failed to issue token"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"profile": created,
		"token":   token,
	})
}

// HandleLogin issues a session token for an existing profile. Credential
// verification happens upstream at the identity provider, same as
// registration; an unknown uid gets a 404.
func (c *UserProfileController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UID string `json:"uid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UID == "" {
		http.Error(w, `{"error": "uid is required"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.Profiles.GetProfile(r.Context(), request.UID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch profile %s for login: %v", request.UID, err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}

	token, err := c.Tokens.CreateToken(profile.UID)
	if err != nil {
		log.Printf("Failed to issue token for %s: %v", profile.UID, err)
		http.Error(w, `{"error": "Failed to issue token"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"profile": profile,
		"token":   token,
	})
}

// HandleGetProfile fetches a profile by uid.
func (c *UserProfileController) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]

	profile, err := c.Profiles.GetProfile(r.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch profile %s: %v", uid, err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleSaveSettings overwrites the caller's own profile.
func (c *UserProfileController) HandleSaveSettings(w http.ResponseWriter, r *http.Request) {
	uid := mux.Vars(r)["uid"]
	viewerID, ok := auth.UIDFromContext(r.Context())
	if !ok || viewerID != uid {
		http.Error(w, `{"error": "Cannot edit another user's profile"}`, http.StatusForbidden)
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	saved, err := c.Profiles.SaveSettings(r.Context(), uid, profile)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to save settings for %s: %v", uid, err)
		http.Error(w, `{"error": "Failed to save settings"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}
