package commentservice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a remark attached to a blog. BlogID is stored as the hex form
// of the blog identifier and is not checked against the blog collection.
type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BlogID      string             `bson:"blog_id" json:"blog_id"`
	UserName    string             `bson:"user_name" json:"user_name"`
	UserPhoto   string             `bson:"user_photo" json:"user_photo"`
	Comment     string             `bson:"comment" json:"comment"`
	CommentDate time.Time          `bson:"comment_date" json:"comment_date"`
}

type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

type CommentStore interface {
	GetByBlogID(ctx context.Context, blogID string) ([]Comment, error)
	Insert(ctx context.Context, comment *Comment) (*InsertResult, error)
}

type CommentService struct {
	m CommentStore
}
