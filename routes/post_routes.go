package routes

import (
	"github.com/nvargo-code/Spacematch/controllers"
	"github.com/nvargo-code/Spacematch/services"

	"github.com/gorilla/mux"
)

// RegisterPostRoutes sets up the post CRUD endpoints
func RegisterPostRoutes(r *mux.Router, postService *services.PostService) {
	controller := controllers.NewPostController(postService)

	postRouter := r.PathPrefix("/api/posts").Subrouter()
	postRouter.HandleFunc("", controller.HandleCreatePost).Methods("POST")
	postRouter.HandleFunc("", controller.HandleListPosts).Methods("GET")
	postRouter.HandleFunc("/{id}", controller.HandleGetPost).Methods("GET")
	postRouter.HandleFunc("/{id}", controller.HandleDeletePost).Methods("DELETE")
}
