package commentservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MamunHossain005/blog-website-server/internal/common"
)

func setupTestService(t *testing.T) *CommentService {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	return NewCommentService(NewCommentModel(common.TestDB(t)))
}

func TestCommentRoundtrip(t *testing.T) {
	s := setupTestService(t)
	ctx := context.Background()

	blogID := primitive.NewObjectID().Hex()
	otherBlogID := primitive.NewObjectID().Hex()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	requests := []*AddCommentRequest{
		{BlogID: blogID, UserName: "alice", Comment: "great read", CommentDate: base},
		{BlogID: blogID, UserName: "bob", Comment: "agreed", CommentDate: base.Add(time.Hour)},
		{BlogID: otherBlogID, UserName: "carol", Comment: "unrelated", CommentDate: base},
	}

	for _, req := range requests {
		res, err := s.AddComment(ctx, req)
		assert.NoError(t, err)
		assert.True(t, res.Acknowledged)
	}

	comments, err := s.GetCommentsByBlogID(ctx, blogID)
	assert.NoError(t, err)
	if assert.Len(t, comments, 2) {
		assert.Equal(t, "alice", comments[0].UserName)
		assert.Equal(t, "bob", comments[1].UserName)
	}

	// comments for an unknown blog are an empty list, not an error
	comments, err = s.GetCommentsByBlogID(ctx, primitive.NewObjectID().Hex())
	assert.NoError(t, err)
	assert.Empty(t, comments)
}
