package services

import (
	"context"
	"fmt"
	"time"

	"github.com/nvargo-code/Spacematch/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// Repository is the narrow store surface the match core depends on.
// GetPost and GetMatch return (nil, nil) when the record does not exist.
type Repository interface {
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	QueryActivePostsByType(ctx context.Context, postType string) ([]models.Post, error)
	CreateMatch(ctx context.Context, match models.Match) (string, error)
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)
	UpdateMatchStatus(ctx context.Context, matchID, status, paymentRef string) error
	GetUserMatches(ctx context.Context, userID string) ([]models.Match, error)
}

// DynamoRepository implements Repository against the Posts and Matches tables.
type DynamoRepository struct {
	Dynamo *DynamoService
}

func (r *DynamoRepository) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: postID},
	}
	item, err := r.Dynamo.GetItem(ctx, models.PostsTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var post models.Post
	if err := attributevalue.UnmarshalMap(item, &post); err != nil {
		return nil, fmt.Errorf("failed to unmarshal post %s: %w", postID, err)
	}
	return &post, nil
}

// QueryActivePostsByType scans for active posts of the given type. A full
// table scan is fine here; the live post population is a few hundred at most.
func (r *DynamoRepository) QueryActivePostsByType(ctx context.Context, postType string) ([]models.Post, error) {
	var posts []models.Post
	err := r.Dynamo.ScanItems(ctx, models.PostsTable,
		"#type = :type AND #status = :status",
		map[string]types.AttributeValue{
			":type":   &types.AttributeValueMemberS{Value: postType},
			":status": &types.AttributeValueMemberS{Value: models.PostStatusActive},
		},
		map[string]string{
			"#type":   "type",
			"#status": "status",
		},
		&posts,
	)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// CreateMatch writes a new pending match record and returns its id. The
// caller supplies post and user ids plus the score; id, status, and
// timestamps are assigned here. No uniqueness constraint exists on the
// (seekerPostId, landlordPostId) pair.
func (r *DynamoRepository) CreateMatch(ctx context.Context, match models.Match) (string, error) {
	match.ID = uuid.NewString()
	match.Status = models.MatchStatusPending
	now := time.Now().UTC()
	match.CreatedAt = now
	match.UpdatedAt = now

	if err := r.Dynamo.PutItem(ctx, models.MatchesTable, match); err != nil {
		return "", err
	}
	return match.ID, nil
}

func (r *DynamoRepository) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: matchID},
	}
	item, err := r.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchID, err)
	}
	return &match, nil
}

// UpdateMatchStatus sets the status (and payment ref, when given) on a match,
// touching updatedAt. All other fields are preserved; this is a targeted
// update expression, not a full rewrite.
func (r *DynamoRepository) UpdateMatchStatus(ctx context.Context, matchID, status, paymentRef string) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: matchID},
	}

	updateExpression := "SET #status = :status, updatedAt = :updatedAt"
	values := map[string]types.AttributeValue{
		":status":    &types.AttributeValueMemberS{Value: status},
		":updatedAt": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#status": "status",
	}
	if paymentRef != "" {
		updateExpression += ", stripePaymentId = :paymentRef"
		values[":paymentRef"] = &types.AttributeValueMemberS{Value: paymentRef}
	}

	_, err := r.Dynamo.UpdateItem(ctx, models.MatchesTable, updateExpression, key, values, names)
	return err
}

// GetUserMatches returns every match where the user is either party,
// deduplicated by id.
func (r *DynamoRepository) GetUserMatches(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match
	err := r.Dynamo.ScanItems(ctx, models.MatchesTable,
		"seekerId = :uid OR landlordId = :uid",
		map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		nil,
		&matches,
	)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(matches))
	deduped := matches[:0]
	for _, m := range matches {
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		deduped = append(deduped, m)
	}
	return deduped, nil
}
