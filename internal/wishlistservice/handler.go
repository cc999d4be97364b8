package wishlistservice

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func NewWishlistService(store WishlistStore) *WishlistService {
	return &WishlistService{m: store}
}

type AddWishlistBlogRequest struct {
	BlogID           string    `json:"blog_id"`
	Title            string    `json:"title"`
	Image            string    `json:"image"`
	ShortDescription string    `json:"short_description"`
	Category         string    `json:"category"`
	Email            string    `json:"email"`
	WishlistDate     time.Time `json:"wishlistDate"`
}

// GetWishlistBlogs returns the wishlist entries for the given email, newest
// first. Callers are expected to have matched email against the session
// token before calling this.
func (s *WishlistService) GetWishlistBlogs(ctx context.Context, email string) ([]WishlistBlog, error) {
	entries, err := s.m.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []WishlistBlog{}
	}

	return entries, nil
}

// AddWishlistBlog inserts the entry unless one with the same title already
// exists, in which case it returns ErrAlreadyInWishlist without inserting.
// The lookup and the insert are two operations, so two simultaneous adds of
// the same title can both pass the check; see the wishlist invariant notes.
func (s *WishlistService) AddWishlistBlog(ctx context.Context, req *AddWishlistBlogRequest) (*InsertResult, error) {
	_, err := s.m.GetByTitle(ctx, req.Title)
	switch {
	case err == nil:
		return nil, ErrAlreadyInWishlist
	case !errors.Is(err, ErrRecordNotFound):
		return nil, err
	}

	entry := &WishlistBlog{
		BlogID:           req.BlogID,
		Title:            req.Title,
		Image:            req.Image,
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		Email:            req.Email,
		WishlistDate:     req.WishlistDate,
	}
	if entry.WishlistDate.IsZero() {
		entry.WishlistDate = time.Now()
	}

	return s.m.Insert(ctx, entry)
}

// DeleteWishlistBlog removes the entry with the given hex id. Deleting an
// absent entry is not an error; the result reports a zero count.
func (s *WishlistService) DeleteWishlistBlog(ctx context.Context, id string) (*DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	return s.m.DeleteByID(ctx, objectID)
}
