package wishlistservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetWishlistBlogs(t *testing.T) {
	t.Run("entries for user", func(t *testing.T) {
		store := new(MockWishlistStore)
		s := &WishlistService{m: store}

		entries := []WishlistBlog{{Title: "saved"}}
		store.On("GetByEmail", mock.Anything, "testuser@example.com").Return(entries, nil)

		got, err := s.GetWishlistBlogs(context.Background(), "testuser@example.com")
		assert.NoError(t, err)
		assert.Equal(t, entries, got)
	})

	t.Run("no entries yields empty slice", func(t *testing.T) {
		store := new(MockWishlistStore)
		s := &WishlistService{m: store}

		store.On("GetByEmail", mock.Anything, "testuser@example.com").Return(nil, nil)

		got, err := s.GetWishlistBlogs(context.Background(), "testuser@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestAddWishlistBlog(t *testing.T) {
	req := &AddWishlistBlogRequest{
		Title: "Test Blog",
		Email: "testuser@example.com",
	}

	t.Run("new title inserted", func(t *testing.T) {
		store := new(MockWishlistStore)
		s := &WishlistService{m: store}

		insertedID := primitive.NewObjectID()
		store.On("GetByTitle", mock.Anything, "Test Blog").Return(nil, ErrRecordNotFound)
		store.On("Insert", mock.Anything, mock.AnythingOfType("*wishlistservice.WishlistBlog")).
			Run(func(args mock.Arguments) {
				entry := args.Get(1).(*WishlistBlog)
				assert.Equal(t, "Test Blog", entry.Title)
				assert.False(t, entry.WishlistDate.IsZero())
			}).
			Return(&InsertResult{Acknowledged: true, InsertedID: insertedID}, nil)

		res, err := s.AddWishlistBlog(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, insertedID, res.InsertedID)
	})

	t.Run("duplicate title rejected without insert", func(t *testing.T) {
		store := new(MockWishlistStore)
		s := &WishlistService{m: store}

		store.On("GetByTitle", mock.Anything, "Test Blog").Return(&WishlistBlog{Title: "Test Blog"}, nil)

		_, err := s.AddWishlistBlog(context.Background(), req)
		assert.ErrorIs(t, err, ErrAlreadyInWishlist)
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("client wishlist date preserved", func(t *testing.T) {
		store := new(MockWishlistStore)
		s := &WishlistService{m: store}

		date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		store.On("GetByTitle", mock.Anything, "Test Blog").Return(nil, ErrRecordNotFound)
		store.On("Insert", mock.Anything, mock.AnythingOfType("*wishlistservice.WishlistBlog")).
			Run(func(args mock.Arguments) {
				assert.Equal(t, date, args.Get(1).(*WishlistBlog).WishlistDate)
			}).
			Return(&InsertResult{Acknowledged: true}, nil)

		dated := *req
		dated.WishlistDate = date

		_, err := s.AddWishlistBlog(context.Background(), &dated)
		assert.NoError(t, err)
	})
}

func TestDeleteWishlistBlog(t *testing.T) {
	t.Run("existing entry", func(t *testing.T) {
		store := new(MockWishlistStore)
		s := &WishlistService{m: store}

		id := primitive.NewObjectID()
		store.On("DeleteByID", mock.Anything, id).Return(&DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

		res, err := s.DeleteWishlistBlog(context.Background(), id.Hex())
		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)
	})

	t.Run("absent entry is a no-op", func(t *testing.T) {
		store := new(MockWishlistStore)
		s := &WishlistService{m: store}

		id := primitive.NewObjectID()
		store.On("DeleteByID", mock.Anything, id).Return(&DeleteResult{Acknowledged: true, DeletedCount: 0}, nil)

		res, err := s.DeleteWishlistBlog(context.Background(), id.Hex())
		assert.NoError(t, err)
		assert.Zero(t, res.DeletedCount)
	})

	t.Run("malformed id", func(t *testing.T) {
		store := new(MockWishlistStore)
		s := &WishlistService{m: store}

		_, err := s.DeleteWishlistBlog(context.Background(), "zzz")
		assert.ErrorIs(t, err, ErrInvalidID)
		store.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}
