package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nvargo-code/Spacematch/services"
	"github.com/nvargo-code/Spacematch/utils"
)

// S3Controller hands out presigned URLs for post images.
type S3Controller struct {
	S3Service *services.S3Service
}

// NewS3Controller initializes the controller
func NewS3Controller(service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: service}
}

// HandleGenerateUploadURL generates a presigned URL for uploading a post image
func (c *S3Controller) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	url, key, err := c.S3Service.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Error generating pre-signed URL: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to generate pre-signed URL")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"url": url, "fileName": key})
}

// HandleGenerateReadURL generates a presigned URL for reading a stored image
func (c *S3Controller) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Key == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing key")
		return
	}

	url, err := c.S3Service.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		log.Printf("Error generating read URL: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to generate read URL")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}
