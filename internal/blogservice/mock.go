package blogservice

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockBlogStore struct {
	mock.Mock
}

func (m *MockBlogStore) Insert(ctx context.Context, blog *Blog) (*InsertResult, error) {
	args := m.Called(ctx, blog)
	res, _ := args.Get(0).(*InsertResult)
	return res, args.Error(1)
}

func (m *MockBlogStore) Upsert(ctx context.Context, id primitive.ObjectID, blog *Blog) (*UpsertResult, error) {
	args := m.Called(ctx, id, blog)
	res, _ := args.Get(0).(*UpsertResult)
	return res, args.Error(1)
}

func (m *MockBlogStore) GetByID(ctx context.Context, id primitive.ObjectID) (*Blog, error) {
	args := m.Called(ctx, id)
	blog, _ := args.Get(0).(*Blog)
	return blog, args.Error(1)
}

func (m *MockBlogStore) GetRecent(ctx context.Context, limit int64) ([]Blog, error) {
	args := m.Called(ctx, limit)
	blogs, _ := args.Get(0).([]Blog)
	return blogs, args.Error(1)
}

func (m *MockBlogStore) GetAll(ctx context.Context) ([]Blog, error) {
	args := m.Called(ctx)
	blogs, _ := args.Get(0).([]Blog)
	return blogs, args.Error(1)
}

func (m *MockBlogStore) GetPage(ctx context.Context, filter PageFilter) ([]Blog, error) {
	args := m.Called(ctx, filter)
	blogs, _ := args.Get(0).([]Blog)
	return blogs, args.Error(1)
}

func (m *MockBlogStore) GetFeatured(ctx context.Context, sort SortSpec) ([]Blog, error) {
	args := m.Called(ctx, sort)
	blogs, _ := args.Get(0).([]Blog)
	return blogs, args.Error(1)
}

func (m *MockBlogStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
