package models

import "time"

// Chat is a two-party conversation channel created when a match is paid for.
type Chat struct {
	ChatID       string    `dynamodbav:"chatId" json:"chatId"`
	MatchID      string    `dynamodbav:"matchId" json:"matchId"`
	Participants []string  `dynamodbav:"participants" json:"participants"`
	Names        []string  `dynamodbav:"names" json:"names"`
	PhotoURLs    []string  `dynamodbav:"photoURLs,omitempty" json:"photoURLs,omitempty"`
	CreatedAt    time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// Message is a single chat message.
type Message struct {
	MessageID  string    `dynamodbav:"messageId" json:"messageId"`
	ChatID     string    `dynamodbav:"chatId" json:"chatId"`
	SenderID   string    `dynamodbav:"senderId" json:"senderId"`
	SenderName string    `dynamodbav:"senderName" json:"senderName"`
	Content    string    `dynamodbav:"content" json:"content"`
	CreatedAt  time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// Table names for chat storage
const (
	ChatsTable    = "Chats"
	MessagesTable = "Messages"
)
