package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/services"
	"github.com/nvargo-code/Spacematch/utils"
)

// MatchController handles the matching endpoints.
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController initializes the controller
func NewMatchController(service *services.MatchService) *MatchController {
	return &MatchController{MatchService: service}
}

// HandleFindMatches runs the matching pass for a post the caller owns,
// persists the surfaced candidates as pending matches, and returns the
// ranked summaries.
func (c *MatchController) HandleFindMatches(w http.ResponseWriter, r *http.Request) {
	var request struct {
		PostID string `json:"postId"`
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.PostID == "" || request.UserID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing postId or userId")
		return
	}

	post, err := c.MatchService.Repo.GetPost(r.Context(), request.PostID)
	if err != nil {
		log.Printf("❌ Failed to load post %s: %v", request.PostID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load post")
		return
	}
	if post == nil {
		utils.WriteError(w, http.StatusNotFound, "Post not found")
		return
	}
	if post.AuthorID != request.UserID {
		utils.WriteError(w, http.StatusForbidden, "Unauthorized")
		return
	}

	matches := c.MatchService.FindMatches(r.Context(), post)
	c.MatchService.RecordMatches(r.Context(), post, matches)

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

// HandleGetUserMatches returns all matches for a user, enriched with post
// titles and author names.
func (c *MatchController) HandleGetUserMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing userId parameter")
		return
	}

	matches, err := c.MatchService.GetEnrichedUserMatches(r.Context(), userID)
	if err != nil {
		log.Printf("❌ Failed to fetch matches for user %s: %v", userID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}

// HandleCreateMatch creates a match record directly (manual and
// administrative paths).
func (c *MatchController) HandleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SeekerPostID   string `json:"seekerPostId"`
		LandlordPostID string `json:"landlordPostId"`
		SeekerID       string `json:"seekerId"`
		LandlordID     string `json:"landlordId"`
		MatchScore     int    `json:"matchScore"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.SeekerPostID == "" || request.LandlordPostID == "" || request.SeekerID == "" || request.LandlordID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	matchID, err := c.MatchService.CreateMatch(r.Context(), models.Match{
		SeekerPostID:   request.SeekerPostID,
		LandlordPostID: request.LandlordPostID,
		SeekerID:       request.SeekerID,
		LandlordID:     request.LandlordID,
		MatchScore:     request.MatchScore,
	})
	if err != nil {
		log.Printf("❌ Failed to create match: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create match")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"matchId": matchID})
}
