package routes

import (
	"github.com/nvargo-code/Spacematch/controllers"
	"github.com/nvargo-code/Spacematch/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up the matching endpoints
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/match").Subrouter()
	matchRouter.HandleFunc("", controller.HandleFindMatches).Methods("POST")
	matchRouter.HandleFunc("", controller.HandleGetUserMatches).Methods("GET")
	matchRouter.HandleFunc("", controller.HandleCreateMatch).Methods("PUT")
}
