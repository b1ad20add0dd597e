package routes

import (
	"github.com/nvargo-code/Spacematch/controllers"
	"github.com/nvargo-code/Spacematch/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up the user profile endpoints
func RegisterUserRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	controller := controllers.NewUserController(userProfileService)

	userRouter := r.PathPrefix("/api/user").Subrouter()
	userRouter.HandleFunc("", controller.HandleGetUser).Methods("GET")
	userRouter.HandleFunc("", controller.HandleUpsertUser).Methods("POST")
}
