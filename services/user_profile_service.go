package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/nvargo-code/Spacematch/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserProfileService struct {
	Dynamo *DynamoService
}

// GetUserProfile retrieves a user profile by ID. Returns (nil, nil) when no
// profile exists.
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", userID, err)
	}
	return &profile, nil
}

// AddUserProfile writes a user profile record.
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if err := ups.Dynamo.PutItem(ctx, models.UsersTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertUserProfile merges the provided fields into any stored profile and
// writes the result. Empty fields keep their stored value, so a login sync
// cannot erase a role set elsewhere.
func (ups *UserProfileService) UpsertUserProfile(ctx context.Context, incoming models.UserProfile) (*models.UserProfile, error) {
	if incoming.UserID == "" {
		return nil, fmt.Errorf("userId is required")
	}

	existing, err := ups.GetUserProfile(ctx, incoming.UserID)
	if err != nil {
		return nil, err
	}

	profile := incoming
	if existing != nil {
		if profile.DisplayName == "" {
			profile.DisplayName = existing.DisplayName
		}
		if profile.Email == "" {
			profile.Email = existing.Email
		}
		if profile.PhotoURL == "" {
			profile.PhotoURL = existing.PhotoURL
		}
		if profile.Role == "" {
			profile.Role = existing.Role
		}
	}
	if profile.DisplayName == "" {
		if at := strings.Index(profile.Email, "@"); at > 0 {
			profile.DisplayName = profile.Email[:at]
		} else {
			profile.DisplayName = "User"
		}
	}

	return ups.AddUserProfile(ctx, profile)
}
