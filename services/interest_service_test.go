package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/services"
)

func TestRecordInterest(t *testing.T) {
	client := &fakeDynamoClient{}
	is := &services.InterestService{Dynamo: &services.DynamoService{Client: client}}

	interest, err := is.RecordInterest(context.Background(), models.Interest{
		UserID:      "user-1",
		UserName:    "Sam",
		PostID:      "post-1",
		PostTitle:   "Bright art studio",
		ExternalURL: "https://example.com/listing/123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, interest.ID)
	assert.False(t, interest.CreatedAt.IsZero())

	require.Len(t, client.puts, 1)
	assert.Equal(t, models.InterestsTable, client.puts[0].table)

	var stored models.Interest
	require.NoError(t, attributevalue.UnmarshalMap(client.puts[0].input.Item, &stored))
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, "post-1", stored.PostID)
	assert.Equal(t, "https://example.com/listing/123", stored.ExternalURL)
}

func TestRecordInterest_RequiresUserAndPost(t *testing.T) {
	client := &fakeDynamoClient{}
	is := &services.InterestService{Dynamo: &services.DynamoService{Client: client}}

	_, err := is.RecordInterest(context.Background(), models.Interest{PostID: "post-1"})
	assert.Error(t, err)

	_, err = is.RecordInterest(context.Background(), models.Interest{UserID: "user-1"})
	assert.Error(t, err)

	assert.Empty(t, client.puts)
}
