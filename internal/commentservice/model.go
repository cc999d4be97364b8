package commentservice

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MamunHossain005/blog-website-server/internal/common"
)

type CommentModel struct {
	coll *mongo.Collection
}

func NewCommentModel(db *mongo.Database) *CommentModel {
	return &CommentModel{coll: db.Collection(common.CommentCollection)}
}

// GetByBlogID returns the comments for a blog in natural storage order.
func (m *CommentModel) GetByBlogID(ctx context.Context, blogID string) ([]Comment, error) {
	cursor, err := m.coll.Find(ctx, bson.M{"blog_id": blogID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

func (m *CommentModel) Insert(ctx context.Context, comment *Comment) (*InsertResult, error) {
	res, err := m.coll.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}

	return &InsertResult{
		Acknowledged: true,
		InsertedID:   res.InsertedID.(primitive.ObjectID),
	}, nil
}
