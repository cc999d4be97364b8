package wishlistservice

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockWishlistStore struct {
	mock.Mock
}

func (m *MockWishlistStore) GetByEmail(ctx context.Context, email string) ([]WishlistBlog, error) {
	args := m.Called(ctx, email)
	entries, _ := args.Get(0).([]WishlistBlog)
	return entries, args.Error(1)
}

func (m *MockWishlistStore) GetByTitle(ctx context.Context, title string) (*WishlistBlog, error) {
	args := m.Called(ctx, title)
	entry, _ := args.Get(0).(*WishlistBlog)
	return entry, args.Error(1)
}

func (m *MockWishlistStore) Insert(ctx context.Context, entry *WishlistBlog) (*InsertResult, error) {
	args := m.Called(ctx, entry)
	res, _ := args.Get(0).(*InsertResult)
	return res, args.Error(1)
}

func (m *MockWishlistStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*DeleteResult)
	return res, args.Error(1)
}
