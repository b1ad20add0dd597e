package routes

import (
	"github.com/nvargo-code/Spacematch/controllers"
	"github.com/nvargo-code/Spacematch/services"

	"github.com/gorilla/mux"
)

// RegisterInterestRoutes sets up the interest logging endpoint
func RegisterInterestRoutes(r *mux.Router, interestService *services.InterestService) {
	controller := controllers.NewInterestController(interestService)

	interestRouter := r.PathPrefix("/api/interests").Subrouter()
	interestRouter.HandleFunc("", controller.HandleCreateInterest).Methods("POST")
}
