package controllers

import (
	"cinder_server/services"
	"encoding/json"
	"log"
	"net/http"
)

// S3Controller struct
type S3Controller struct {
	S3 *services.S3Service
}

// NewS3Controller initializes the media controller
func NewS3Controller(s3 *services.S3Service) *S3Controller {
	return &S3Controller{S3: s3}
}

// HandleGenerateUploadURL returns a presigned URL for uploading a photo.
func (c *S3Controller) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.FileName == "" || request.FileType == "" {
		http.Error(w, `{"error": "Missing required fields: fileName, fileType"}`, http.StatusBadRequest)
		return
	}

	url, key, err := c.S3.GenerateUploadURL(r.Context(), request.FileName, request.FileType)
	if err != nil {
		log.Printf("Failed to presign upload: %v", err)
		http.Error(w, `{"error": "Failed to generate upload URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// HandleGenerateReadURL returns a presigned URL for reading a photo.
func (c *S3Controller) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.Key == "" {
		http.Error(w, `{"error": "key is required"}`, http.StatusBadRequest)
		return
	}

	url, err := c.S3.GenerateReadURL(r.Context(), request.Key)
	if err != nil {
		log.Printf("Failed to presign read: %v", err)
		http.Error(w, `{"error": "Failed to generate read URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
