package blogservice

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MamunHossain005/blog-website-server/internal/common"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid blog ID")
)

const (
	DefaultPage  = 1
	DefaultLimit = 6

	recentLimit   = 6
	featuredLimit = 10
)

// CategoryAll disables category filtering on the pagination endpoint.
const CategoryAll = "All"

type Blog struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title            string             `bson:"title" json:"title"`
	Image            string             `bson:"image" json:"image"`
	ShortDescription string             `bson:"short_description" json:"short_description"`
	LongDescription  string             `bson:"long_description" json:"long_description"`
	Category         string             `bson:"category" json:"category"`
	BloggerName      string             `bson:"blogger_name" json:"blogger_name"`
	BloggerEmail     string             `bson:"blogger_email" json:"blogger_email"`
	Date             time.Time          `bson:"date" json:"date"`
}

// BlogPage is the paginated response shape. TotalPages is derived from the
// estimated total document count, not from the filtered match count.
type BlogPage struct {
	Blogs      []Blog `json:"blogs"`
	TotalPages int    `json:"totalPages"`
}

type PageFilter struct {
	Skip     int64
	Limit    int64
	Category string
	Title    string
}

// SortSpec is a secondary ordering for the featured listing. A zero
// Direction means no secondary sort stage is applied.
type SortSpec struct {
	Field     string
	Direction int
}

type UpsertResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// BlogStore is the persistence capability set behind BlogService, so a mock
// can stand in for MongoDB in tests.
type BlogStore interface {
	Insert(ctx context.Context, blog *Blog) (*InsertResult, error)
	Upsert(ctx context.Context, id primitive.ObjectID, blog *Blog) (*UpsertResult, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Blog, error)
	GetRecent(ctx context.Context, limit int64) ([]Blog, error)
	GetAll(ctx context.Context) ([]Blog, error)
	GetPage(ctx context.Context, filter PageFilter) ([]Blog, error)
	GetFeatured(ctx context.Context, sort SortSpec) ([]Blog, error)
	Count(ctx context.Context) (int64, error)
}

type BlogService struct {
	m BlogStore
	c *common.Cache
}
