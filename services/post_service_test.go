package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/nvargo-code/Spacematch/models"
	"github.com/nvargo-code/Spacematch/services"
)

func TestDeletePost(t *testing.T) {
	client := &fakeDynamoClient{}
	ps := &services.PostService{Dynamo: &services.DynamoService{Client: client}}

	require.NoError(t, ps.DeletePost(context.Background(), "post-1"))

	require.Len(t, client.deletes, 1)
	assert.Equal(t, models.PostsTable, *client.deletes[0].TableName)
	key, ok := client.deletes[0].Key["id"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "post-1", key.Value)
}

func TestCreatePost_RejectsUnknownType(t *testing.T) {
	client := &fakeDynamoClient{}
	ps := &services.PostService{Dynamo: &services.DynamoService{Client: client}}

	_, err := ps.CreatePost(context.Background(), models.Post{Type: "garage-sale", AuthorID: "user-1", Title: "Nope"})
	assert.Error(t, err)
	assert.Empty(t, client.puts)
}
