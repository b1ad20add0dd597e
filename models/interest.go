package models

import "time"

// Interest records that a user wants to hear more about a post. Imported
// listings have no author to notify, so the record carries the external
// URL the user was sent to instead.
type Interest struct {
	ID          string    `dynamodbav:"id" json:"id"`
	UserID      string    `dynamodbav:"userId" json:"userId"`
	UserName    string    `dynamodbav:"userName,omitempty" json:"userName,omitempty"`
	PostID      string    `dynamodbav:"postId" json:"postId"`
	PostTitle   string    `dynamodbav:"postTitle,omitempty" json:"postTitle,omitempty"`
	ExternalURL string    `dynamodbav:"externalUrl,omitempty" json:"externalUrl,omitempty"`
	CreatedAt   time.Time `dynamodbav:"createdAt" json:"createdAt"`
}

// InterestsTable is the DynamoDB table name for interests
const InterestsTable = "Interests"
