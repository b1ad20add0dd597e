package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nvargo-code/Spacematch/models"

	"github.com/google/uuid"
)

// InterestService logs user interest in posts.
type InterestService struct {
	Dynamo *DynamoService
}

// RecordInterest stores an interest record, assigning id and timestamp.
func (is *InterestService) RecordInterest(ctx context.Context, interest models.Interest) (*models.Interest, error) {
	if interest.UserID == "" || interest.PostID == "" {
		return nil, fmt.Errorf("interest requires userId and postId")
	}

	interest.ID = uuid.NewString()
	interest.CreatedAt = time.Now().UTC()

	if err := is.Dynamo.PutItem(ctx, models.InterestsTable, interest); err != nil {
		return nil, fmt.Errorf("failed to record interest: %w", err)
	}
	return &interest, nil
}
