package wishlistservice

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid wishlist entry ID")

	// ErrAlreadyInWishlist is informational, not a failure: the handler
	// renders it as a 200 with a message body.
	ErrAlreadyInWishlist = errors.New("blog already in wishlist")
)

// DuplicateMessage is the body clients receive on a duplicate add.
const DuplicateMessage = "The blog is already in the wishlist."

// WishlistBlog is a saved blog, denormalized so the wishlist page renders
// without a second lookup. Title doubles as the duplicate-detection key.
type WishlistBlog struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BlogID           string             `bson:"blog_id" json:"blog_id"`
	Title            string             `bson:"title" json:"title"`
	Image            string             `bson:"image" json:"image"`
	ShortDescription string             `bson:"short_description" json:"short_description"`
	Category         string             `bson:"category" json:"category"`
	Email            string             `bson:"email" json:"email"`
	WishlistDate     time.Time          `bson:"wishlistDate" json:"wishlistDate"`
}

type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type WishlistStore interface {
	GetByEmail(ctx context.Context, email string) ([]WishlistBlog, error)
	GetByTitle(ctx context.Context, title string) (*WishlistBlog, error)
	Insert(ctx context.Context, entry *WishlistBlog) (*InsertResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}

type WishlistService struct {
	m WishlistStore
}
