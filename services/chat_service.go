package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/nvargo-code/Spacematch/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatService struct
type ChatService struct {
	Dynamo *DynamoService
}

// GetOrCreateChat returns the chat channel for a match, creating it if it
// does not exist yet. Called from the payment webhook once a match is paid.
func (s *ChatService) GetOrCreateChat(ctx context.Context, seeker, landlord models.UserProfile, matchID string) (string, error) {
	var existing []models.Chat
	err := s.Dynamo.ScanItems(ctx, models.ChatsTable,
		"matchId = :matchId",
		map[string]types.AttributeValue{
			":matchId": &types.AttributeValueMemberS{Value: matchID},
		},
		nil,
		&existing,
	)
	if err != nil {
		return "", fmt.Errorf("failed to look up chat for match %s: %w", matchID, err)
	}
	if len(existing) > 0 {
		return existing[0].ChatID, nil
	}

	chat := models.Chat{
		ChatID:       uuid.NewString(),
		MatchID:      matchID,
		Participants: []string{seeker.UserID, landlord.UserID},
		Names:        []string{seeker.DisplayName, landlord.DisplayName},
		PhotoURLs:    []string{seeker.PhotoURL, landlord.PhotoURL},
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Dynamo.PutItem(ctx, models.ChatsTable, chat); err != nil {
		return "", fmt.Errorf("failed to create chat for match %s: %w", matchID, err)
	}

	log.Printf("✅ Created chat %s for match %s", chat.ChatID, matchID)
	return chat.ChatID, nil
}

// SendMessage stores a new message in the Messages table.
func (s *ChatService) SendMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	if message.ChatID == "" || message.SenderID == "" || message.Content == "" {
		return nil, fmt.Errorf("message requires chatId, senderId, and content")
	}

	message.MessageID = uuid.NewString()
	message.CreatedAt = time.Now().UTC()

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return &message, nil
}

// GetMessagesByChatID fetches messages for a chat, newest first.
func (s *ChatService) GetMessagesByChatID(ctx context.Context, chatID string) ([]models.Message, error) {
	keyCondition := "#chatId = :chatId"
	expressionValues := map[string]types.AttributeValue{
		":chatId": &types.AttributeValueMemberS{Value: chatID},
	}
	expressionNames := map[string]string{
		"#chatId": "chatId",
	}

	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}
