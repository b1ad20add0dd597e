package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/services"
	"github.com/nvargo-code/Spacematch/utils"
)

// UserController handles user profile endpoints.
type UserController struct {
	UserProfileService *services.UserProfileService
}

// NewUserController initializes the controller
func NewUserController(service *services.UserProfileService) *UserController {
	return &UserController{UserProfileService: service}
}

// HandleGetUser returns a user profile by uid. An unknown uid yields
// {"user": null} rather than a 404; clients check for a profile on login.
func (c *UserController) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")
	if uid == "" {
		utils.WriteError(w, http.StatusBadRequest, "uid parameter required")
		return
	}

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), uid)
	if err != nil {
		log.Printf("❌ Failed to load profile %s: %v", uid, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]*models.UserProfile{"user": profile})
}

// HandleUpsertUser creates or updates a user profile, merging into any
// existing record.
func (c *UserController) HandleUpsertUser(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UID         string `json:"uid"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoURL"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.UID == "" {
		utils.WriteError(w, http.StatusBadRequest, "uid is required")
		return
	}

	_, err := c.UserProfileService.UpsertUserProfile(r.Context(), models.UserProfile{
		UserID:      request.UID,
		Email:       request.Email,
		DisplayName: request.DisplayName,
		PhotoURL:    request.PhotoURL,
	})
	if err != nil {
		log.Printf("❌ Failed to upsert profile %s: %v", request.UID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to save user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
