package routes

import (
	"github.com/nvargo-code/Spacematch/controllers"
	"github.com/nvargo-code/Spacematch/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up the chat message endpoints
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/{chatId}/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/messages", controller.HandleSendMessage).Methods("POST")
}
