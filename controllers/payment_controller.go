package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/nvargo-code/Spacematch/services"
	"github.com/nvargo-code/Spacematch/utils"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

// PaymentController handles checkout creation and the Stripe webhook.
type PaymentController struct {
	PaymentService *services.PaymentService
	WebhookSecret  string
}

// NewPaymentController initializes the controller, reading the webhook
// secret from the environment.
func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{
		PaymentService: service,
		WebhookSecret:  os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}
}

// HandleCreateCheckout creates a Stripe checkout session for unlocking a
// match's contact details.
func (c *PaymentController) HandleCreateCheckout(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID string `json:"matchId"`
		UserID  string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.MatchID == "" || request.UserID == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing matchId or userId")
		return
	}

	sessionID, url, err := c.PaymentService.CreateCheckoutSession(r.Context(), request.MatchID, request.UserID)
	switch {
	case errors.Is(err, services.ErrMatchNotFound):
		utils.WriteError(w, http.StatusNotFound, "Match not found")
		return
	case errors.Is(err, services.ErrNotParticipant):
		utils.WriteError(w, http.StatusForbidden, "Unauthorized")
		return
	case errors.Is(err, services.ErrAlreadyPaid):
		utils.WriteError(w, http.StatusBadRequest, "This match has already been paid for")
		return
	case err != nil:
		log.Printf("❌ Failed to create checkout session for match %s: %v", request.MatchID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"sessionId": sessionID, "url": url})
}

// HandleWebhook verifies the Stripe signature and processes
// checkout.session.completed events. A failed match confirmation is
// surfaced as a 500 so Stripe retries; paid transactions must not be lost
// silently. Sessions missing match metadata are acknowledged with a 200
// instead, since redelivering them can never succeed.
func (c *PaymentController) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing stripe-signature header")
		return
	}

	event, err := webhook.ConstructEvent(payload, signature, c.WebhookSecret)
	if err != nil {
		log.Printf("❌ Webhook signature verification failed: %v", err)
		utils.WriteError(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	if event.Type == "checkout.session.completed" {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			log.Printf("❌ Failed to parse checkout session: %v", err)
			utils.WriteError(w, http.StatusBadRequest, "Malformed event payload")
			return
		}

		paymentRef := ""
		if session.PaymentIntent != nil {
			paymentRef = session.PaymentIntent.ID
		}

		err := c.PaymentService.HandleCheckoutCompleted(
			r.Context(),
			session.Metadata["matchId"],
			session.Metadata["seekerId"],
			session.Metadata["landlordId"],
			paymentRef,
			session.AmountTotal,
		)
		if err != nil {
			log.Printf("❌ Webhook processing failed: %v", err)
			utils.WriteError(w, http.StatusInternalServerError, "Webhook handler failed")
			return
		}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
}
