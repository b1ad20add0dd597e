package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/services"
	"github.com/nvargo-code/Spacematch/utils"

	"github.com/gorilla/mux"
)

// ChatController handles chat message endpoints.
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the controller
func NewChatController(service *services.ChatService) *ChatController {
	return &ChatController{ChatService: service}
}

// HandleGetMessages fetches messages for a chat, newest first.
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	chatID := mux.Vars(r)["chatId"]

	messages, err := c.ChatService.GetMessagesByChatID(r.Context(), chatID)
	if err != nil {
		log.Printf("❌ Failed to fetch messages for chat %s: %v", chatID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// HandleSendMessage persists a new message. Live delivery to the other
// party happens over the socket server.
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request models.Message
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.ChatID == "" || request.SenderID == "" || request.Content == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	message, err := c.ChatService.SendMessage(r.Context(), request)
	if err != nil {
		log.Printf("❌ Failed to store message: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to store message")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, message)
}
