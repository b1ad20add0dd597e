package routes

import (
	"github.com/nvargo-code/Spacematch/controllers"
	"github.com/nvargo-code/Spacematch/services"

	"github.com/gorilla/mux"
)

// RegisterPaymentRoutes sets up the Stripe checkout and webhook endpoints
func RegisterPaymentRoutes(r *mux.Router, paymentService *services.PaymentService) {
	controller := controllers.NewPaymentController(paymentService)

	stripeRouter := r.PathPrefix("/api/stripe").Subrouter()
	stripeRouter.HandleFunc("/create-checkout", controller.HandleCreateCheckout).Methods("POST")
	stripeRouter.HandleFunc("/webhook", controller.HandleWebhook).Methods("POST")
}
