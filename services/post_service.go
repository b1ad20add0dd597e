package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nvargo-code/Spacematch/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// PostService handles post CRUD. Matching is never triggered here: running
// the matching pass after creation is the client's call, so a matching
// outage can never block posting.
type PostService struct {
	Dynamo *DynamoService
	Repo   Repository
}

// CreatePost stores a new active post, assigning id, keywords, and
// timestamps.
func (ps *PostService) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	if post.Type != models.PostTypeNeed && post.Type != models.PostTypeSpace && post.Type != models.PostTypeCommunity {
		return nil, fmt.Errorf("invalid post type %q", post.Type)
	}

	post.ID = uuid.NewString()
	post.Status = models.PostStatusActive
	post.SearchKeywords = buildSearchKeywords(post)
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := ps.Dynamo.PutItem(ctx, models.PostsTable, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

// GetPost returns a post by id, or (nil, nil) when it does not exist.
func (ps *PostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	return ps.Repo.GetPost(ctx, postID)
}

// DeletePost removes a post record outright. Early clients soft-deleted by
// flipping status to deleted; the listing filter still hides those rows.
func (ps *PostService) DeletePost(ctx context.Context, postID string) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: postID},
	}
	if err := ps.Dynamo.DeleteItem(ctx, models.PostsTable, key); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", postID, err)
	}
	return nil
}

// ListPosts returns posts filtered by type and status. Empty filter values
// mean "any"; deleted posts are always excluded.
func (ps *PostService) ListPosts(ctx context.Context, postType, status string) ([]models.Post, error) {
	var expressions []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	if postType != "" {
		expressions = append(expressions, "#type = :type")
		values[":type"] = &types.AttributeValueMemberS{Value: postType}
		names["#type"] = "type"
	}
	if status != "" {
		expressions = append(expressions, "#status = :status")
		values[":status"] = &types.AttributeValueMemberS{Value: status}
	} else {
		expressions = append(expressions, "#status <> :deleted")
		values[":deleted"] = &types.AttributeValueMemberS{Value: models.PostStatusDeleted}
	}
	names["#status"] = "status"

	var posts []models.Post
	err := ps.Dynamo.ScanItems(ctx, models.PostsTable, strings.Join(expressions, " AND "), values, names, &posts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// buildSearchKeywords lowercases and tokenizes the title and location for
// the client's keyword search.
func buildSearchKeywords(post models.Post) []string {
	seen := map[string]struct{}{}
	var keywords []string
	for _, source := range []string{post.Title, post.Attributes.Location} {
		for _, word := range strings.Fields(strings.ToLower(source)) {
			word = strings.Trim(word, ",.")
			if word == "" {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			keywords = append(keywords, word)
		}
	}
	return keywords
}
