package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/services"
	"github.com/nvargo-code/Spacematch/utils"
)

// ImportController handles the bulk listing import endpoint. The endpoint
// is for scraper jobs, not end users, so it authenticates with a shared
// secret instead of a user identity.
type ImportController struct {
	ImportService *services.ImportService
	ImportSecret  string
}

// NewImportController initializes the controller, reading the shared secret
// from the environment.
func NewImportController(service *services.ImportService) *ImportController {
	return &ImportController{
		ImportService: service,
		ImportSecret:  os.Getenv("IMPORT_SECRET_KEY"),
	}
}

// HandleImportListings ingests a batch of external listings. The body is
// either a bare JSON array or {"listings": [...]}.
func (c *ImportController) HandleImportListings(w http.ResponseWriter, r *http.Request) {
	providedSecret := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if c.ImportSecret == "" || providedSecret != c.ImportSecret {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var listings []models.ExternalListing
	if err := json.Unmarshal(body, &listings); err != nil {
		var wrapped struct {
			Listings []models.ExternalListing `json:"listings"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		listings = wrapped.Listings
	}
	if len(listings) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "No listings provided. Send a JSON array or { listings: [...] }")
		return
	}

	summary := c.ImportService.ImportListings(r.Context(), listings)
	utils.WriteJSON(w, http.StatusOK, summary)
}
