package routes

import (
	"github.com/nvargo-code/Spacematch/controllers"
	"github.com/nvargo-code/Spacematch/services"

	"github.com/gorilla/mux"
)

// RegisterImportRoutes sets up the bulk listing import endpoint
func RegisterImportRoutes(r *mux.Router, importService *services.ImportService) {
	controller := controllers.NewImportController(importService)

	importRouter := r.PathPrefix("/api/import").Subrouter()
	importRouter.HandleFunc("/listings", controller.HandleImportListings).Methods("POST")
}
