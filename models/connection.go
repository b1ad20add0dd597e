package models

import "time"

// Connection records one side of a paid match unlock. Two are written per
// completed payment, one per participant, keyed matchId_userId so webhook
// retries overwrite instead of duplicating.
type Connection struct {
	ID              string    `dynamodbav:"id" json:"id"`
	UserID          string    `dynamodbav:"userId" json:"userId"`
	ConnectedUserID string    `dynamodbav:"connectedUserId" json:"connectedUserId"`
	MatchID         string    `dynamodbav:"matchId" json:"matchId"`
	Amount          int64     `dynamodbav:"amount" json:"amount"`
	CreatedAt       time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// ConnectionsTable is the DynamoDB table name for connection records
const ConnectionsTable = "Connections"
