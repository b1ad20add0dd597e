package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/nvargo-code/Spacematch/routes"
	"github.com/nvargo-code/Spacematch/services"
	"github.com/nvargo-code/Spacematch/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and store services
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	repository := &services.DynamoRepository{Dynamo: dynamoService}
	log.Println("DynamoDB client initialized.")

	services.InitializeStripe()
	s3Service := services.InitializeS3Service()

	// Initialize Services
	matchService := &services.MatchService{Repo: repository}
	postService := &services.PostService{Dynamo: dynamoService, Repo: repository}
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	chatService := &services.ChatService{Dynamo: dynamoService}
	importService := &services.ImportService{Dynamo: dynamoService}
	interestService := &services.InterestService{Dynamo: dynamoService}
	paymentService := &services.PaymentService{
		Matches:  matchService,
		Profiles: userProfileService,
		Chats:    chatService,
		Dynamo:   dynamoService,
		AppURL:   os.Getenv("APP_URL"),
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to SpaceMatch")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterPostRoutes(r, postService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterPaymentRoutes(r, paymentService)
	routes.RegisterChatRoutes(r, chatService)
	routes.RegisterS3Routes(r, s3Service)
	routes.RegisterUserRoutes(r, userProfileService)
	routes.RegisterImportRoutes(r, importService)
	routes.RegisterInterestRoutes(r, interestService)

	// Socket.IO server for live chat delivery
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "Stripe-Signature"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
