package commentservice

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) GetByBlogID(ctx context.Context, blogID string) ([]Comment, error) {
	args := m.Called(ctx, blogID)
	comments, _ := args.Get(0).([]Comment)
	return comments, args.Error(1)
}

func (m *MockCommentStore) Insert(ctx context.Context, comment *Comment) (*InsertResult, error) {
	args := m.Called(ctx, comment)
	res, _ := args.Get(0).(*InsertResult)
	return res, args.Error(1)
}
