package models

import "time"

// Match links a seeker's need post with a landlord's space post. The
// dynamodbav field names are the persisted contract and must not change.
type Match struct {
	ID              string    `dynamodbav:"id" json:"id"`
	SeekerPostID    string    `dynamodbav:"seekerPostId" json:"seekerPostId"`
	LandlordPostID  string    `dynamodbav:"landlordPostId" json:"landlordPostId"`
	SeekerID        string    `dynamodbav:"seekerId" json:"seekerId"`
	LandlordID      string    `dynamodbav:"landlordId" json:"landlordId"`
	MatchScore      int       `dynamodbav:"matchScore" json:"matchScore"`
	Status          string    `dynamodbav:"status" json:"status"`
	StripePaymentID string    `dynamodbav:"stripePaymentId,omitempty" json:"stripePaymentId,omitempty"`
	CreatedAt       time.Time `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `dynamodbav:"updatedAt" json:"updatedAt"`
}

// MatchesTable is the DynamoDB table name for match records
const MatchesTable = "Matches"

// MatchResultPost is the candidate summary embedded in a MatchResult.
type MatchResultPost struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	AuthorName string `json:"authorName"`
}

// MatchResult is one ranked candidate returned by the finder.
type MatchResult struct {
	Post               MatchResultPost `json:"post"`
	Score              int             `json:"score"`
	MatchingAttributes []string        `json:"matchingAttributes"`
}

// EnrichedMatch is a Match decorated with both posts' titles and author
// display names for the matches screen.
type EnrichedMatch struct {
	Match
	SeekerPostTitle        string `json:"seekerPostTitle"`
	SeekerPostAuthorName   string `json:"seekerPostAuthorName"`
	LandlordPostTitle      string `json:"landlordPostTitle"`
	LandlordPostAuthorName string `json:"landlordPostAuthorName"`
}
