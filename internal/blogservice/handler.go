package blogservice

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MamunHossain005/blog-website-server/internal/common"
)

func NewBlogService(store BlogStore, cache *common.Cache) *BlogService {
	return &BlogService{m: store, c: cache}
}

// BlogRequest carries the mutable fields of a blog, for both create and
// upsert calls. All fields pass through to storage as given.
type BlogRequest struct {
	Title            string    `json:"title"`
	Image            string    `json:"image"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	Category         string    `json:"category"`
	BloggerName      string    `json:"blogger_name"`
	BloggerEmail     string    `json:"blogger_email"`
	Date             time.Time `json:"date"`
}

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return objectID, nil
}

// ParseSort parses a "field:direction" query value. Directions other than
// asc and desc disable the secondary sort without failing the request.
func ParseSort(param string) SortSpec {
	if param == "" {
		return SortSpec{}
	}

	field, direction, _ := strings.Cut(param, ":")

	var d int
	switch direction {
	case "asc":
		d = 1
	case "desc":
		d = -1
	}

	return SortSpec{Field: field, Direction: d}
}

// CreateBlog inserts a new blog with a storage-generated identifier.
func (s *BlogService) CreateBlog(ctx context.Context, req *BlogRequest) (*InsertResult, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	res, err := s.m.Insert(ctx, req.blog())
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return res, nil
}

// UpsertBlog replaces the mutable fields of the blog with the given id, or
// creates it under that id when absent. The identifier itself never changes.
func (s *BlogService) UpsertBlog(ctx context.Context, id string, req *BlogRequest) (*UpsertResult, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := s.m.Upsert(ctx, objectID, req.blog())
	if err != nil {
		return nil, err
	}

	s.c.Flush()

	return res, nil
}

// GetBlogByID returns the blog with the given hex identifier, or
// ErrRecordNotFound when no such document exists.
func (s *BlogService) GetBlogByID(ctx context.Context, id string) (*Blog, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.c.Get(common.CacheKeyBlog(id)); ok {
		return cached.(*Blog), nil
	}

	blog, err := s.m.GetByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyBlog(id), blog)

	return blog, nil
}

// GetRecentBlogs returns the six most recent blogs, newest first.
func (s *BlogService) GetRecentBlogs(ctx context.Context) ([]Blog, error) {
	if cached, ok := s.c.Get(common.CacheKeyRecentBlogs(recentLimit)); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.GetRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyRecentBlogs(recentLimit), blogs)

	return blogs, nil
}

// GetAllBlogs returns every blog, newest first.
func (s *BlogService) GetAllBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.GetAll(ctx)
}

// GetBlogPage returns one page of blogs plus the total page count. The page
// count is derived from the estimated size of the whole collection, whatever
// filter is in effect.
func (s *BlogService) GetBlogPage(ctx context.Context, page, limit int, category, title string) (*BlogPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total, err := s.m.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	blogs, err := s.m.GetPage(ctx, PageFilter{
		Skip:     int64((page - 1) * limit),
		Limit:    int64(limit),
		Category: category,
		Title:    title,
	})
	if err != nil {
		return nil, err
	}
	if blogs == nil {
		blogs = []Blog{}
	}

	return &BlogPage{Blogs: blogs, TotalPages: totalPages}, nil
}

// GetFeaturedBlogs returns the ten blogs with the longest descriptions,
// optionally reordered by a "field:direction" sort parameter.
func (s *BlogService) GetFeaturedBlogs(ctx context.Context, sortParam string) ([]Blog, error) {
	if cached, ok := s.c.Get(common.CacheKeyFeaturedBlogs(sortParam)); ok {
		return cached.([]Blog), nil
	}

	blogs, err := s.m.GetFeatured(ctx, ParseSort(sortParam))
	if err != nil {
		return nil, err
	}

	s.c.Set(common.CacheKeyFeaturedBlogs(sortParam), blogs)

	return blogs, nil
}

func (r *BlogRequest) blog() *Blog {
	return &Blog{
		Title:            r.Title,
		Image:            r.Image,
		ShortDescription: r.ShortDescription,
		LongDescription:  r.LongDescription,
		Category:         r.Category,
		BloggerName:      r.BloggerName,
		BloggerEmail:     r.BloggerEmail,
		Date:             r.Date,
	}
}
