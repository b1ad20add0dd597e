package models

import "time"

// Post is a marketplace listing: a seeker's "need" or a landlord's "space".
// Community posts live in the same table but never participate in matching.
type Post struct {
	ID                string         `dynamodbav:"id" json:"id"`
	Type              string         `dynamodbav:"type" json:"type"`
	AuthorID          string         `dynamodbav:"authorId" json:"authorId"`
	AuthorName        string         `dynamodbav:"authorName" json:"authorName"`
	AuthorPhotoURL    string         `dynamodbav:"authorPhotoURL,omitempty" json:"authorPhotoURL,omitempty"`
	Title             string         `dynamodbav:"title" json:"title"`
	Description       string         `dynamodbav:"description" json:"description"`
	Images            []string       `dynamodbav:"images,omitempty" json:"images,omitempty"`
	Attributes        PostAttributes `dynamodbav:"attributes" json:"attributes"`
	SearchKeywords    []string       `dynamodbav:"searchKeywords,omitempty" json:"searchKeywords,omitempty"`
	Status            string         `dynamodbav:"status" json:"status"`
	HasAvailability   bool           `dynamodbav:"hasAvailability,omitempty" json:"hasAvailability,omitempty"`
	AvailabilityStart *time.Time     `dynamodbav:"availabilityStart,omitempty" json:"availabilityStart,omitempty"`
	AvailabilityEnd   *time.Time     `dynamodbav:"availabilityEnd,omitempty" json:"availabilityEnd,omitempty"`
	// Set only on listings pulled from an external source.
	Source      string    `dynamodbav:"source,omitempty" json:"source,omitempty"`
	ExternalID  string    `dynamodbav:"externalId,omitempty" json:"externalId,omitempty"`
	ExternalURL string    `dynamodbav:"externalUrl,omitempty" json:"externalUrl,omitempty"`
	IsImported  bool      `dynamodbav:"isImported,omitempty" json:"isImported,omitempty"`
	CreatedAt   time.Time `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `dynamodbav:"updatedAt" json:"updatedAt"`
}

// PostsTable is the DynamoDB table name for posts
const PostsTable = "Posts"
