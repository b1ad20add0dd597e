package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/services"
	"github.com/nvargo-code/Spacematch/utils"
)

// InterestController handles the interest logging endpoint.
type InterestController struct {
	InterestService *services.InterestService
}

// NewInterestController initializes the controller
func NewInterestController(service *services.InterestService) *InterestController {
	return &InterestController{InterestService: service}
}

// HandleCreateInterest logs a user's interest in a post.
func (c *InterestController) HandleCreateInterest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID      string `json:"userId"`
		UserName    string `json:"userName"`
		PostID      string `json:"postId"`
		PostTitle   string `json:"postTitle"`
		ExternalURL string `json:"externalUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.UserID == "" || request.PostID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing required fields: userId, postId")
		return
	}

	_, err := c.InterestService.RecordInterest(r.Context(), models.Interest{
		UserID:      request.UserID,
		UserName:    request.UserName,
		PostID:      request.PostID,
		PostTitle:   request.PostTitle,
		ExternalURL: request.ExternalURL,
	})
	if err != nil {
		log.Printf("❌ Failed to record interest for post %s: %v", request.PostID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to log interest")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
