package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/services"
	"github.com/nvargo-code/Spacematch/utils"

	"github.com/gorilla/mux"
)

// PostController handles post CRUD endpoints.
type PostController struct {
	PostService *services.PostService
}

// NewPostController initializes the controller
func NewPostController(service *services.PostService) *PostController {
	return &PostController{PostService: service}
}

// HandleCreatePost stores a new post. Matching is not triggered here; the
// client invokes POST /api/match afterwards, so a matching failure can
// never fail post creation.
func (c *PostController) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Type        string                `json:"type"`
		AuthorID    string                `json:"authorId"`
		AuthorName  string                `json:"authorName"`
		Title       string                `json:"title"`
		Description string                `json:"description"`
		Images      []string              `json:"images"`
		Attributes  models.PostAttributes `json:"attributes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.Type == "" || request.AuthorID == "" || request.Title == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	post, err := c.PostService.CreatePost(r.Context(), models.Post{
		Type:        request.Type,
		AuthorID:    request.AuthorID,
		AuthorName:  request.AuthorName,
		Title:       request.Title,
		Description: request.Description,
		Images:      request.Images,
		Attributes:  request.Attributes,
	})
	if err != nil {
		log.Printf("❌ Failed to create post: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, post)
}

// HandleGetPost returns a single post by id.
func (c *PostController) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := c.PostService.GetPost(r.Context(), postID)
	if err != nil {
		log.Printf("❌ Failed to load post %s: %v", postID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load post")
		return
	}
	if post == nil {
		utils.WriteError(w, http.StatusNotFound, "Post not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, post)
}

// HandleDeletePost removes a post.
func (c *PostController) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := c.PostService.DeletePost(r.Context(), postID); err != nil {
		log.Printf("❌ Failed to delete post %s: %v", postID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleListPosts lists posts, optionally filtered by type and status.
func (c *PostController) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	postType := r.URL.Query().Get("type")
	status := r.URL.Query().Get("status")

	posts, err := c.PostService.ListPosts(r.Context(), postType, status)
	if err != nil {
		log.Printf("❌ Failed to list posts: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to list posts")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}
