package blogservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MamunHossain005/blog-website-server/internal/common"
)

func newTestService(m BlogStore) *BlogService {
	return &BlogService{m: m, c: common.NewCache(5*time.Minute, 10*time.Minute)}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		expected SortSpec
	}{
		{name: "empty", param: "", expected: SortSpec{}},
		{name: "ascending", param: "title:asc", expected: SortSpec{Field: "title", Direction: 1}},
		{name: "descending", param: "date:desc", expected: SortSpec{Field: "date", Direction: -1}},
		{name: "unknown direction", param: "title:random", expected: SortSpec{Field: "title"}},
		{name: "no direction", param: "title", expected: SortSpec{Field: "title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSort(tt.param))
		})
	}
}

func TestCreateBlog(t *testing.T) {
	testCases := []struct {
		name        string
		req         *BlogRequest
		expectedErr error
	}{
		{
			name: "valid blog",
			req:  &BlogRequest{Title: "Test Blog", LongDescription: "This is a test blog."},
		},
		{
			name:        "empty title",
			req:         &BlogRequest{LongDescription: "This is a test blog."},
			expectedErr: common.ValidationError{Errors: map[string]string{"title": "must be provided"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockBlogStore)
			s := newTestService(store)

			insertedID := primitive.NewObjectID()
			store.On("Insert", mock.Anything, mock.AnythingOfType("*blogservice.Blog")).
				Return(&InsertResult{Acknowledged: true, InsertedID: insertedID}, nil)

			res, err := s.CreateBlog(context.Background(), tc.req)
			if tc.expectedErr != nil {
				assert.Equal(t, tc.expectedErr, err)
				store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.True(t, res.Acknowledged)
			assert.Equal(t, insertedID, res.InsertedID)
		})
	}
}

func TestCreateBlogStoreError(t *testing.T) {
	store := new(MockBlogStore)
	s := newTestService(store)

	store.On("Insert", mock.Anything, mock.Anything).Return(nil, errors.New("write failed"))

	_, err := s.CreateBlog(context.Background(), &BlogRequest{Title: "Test Blog"})
	assert.EqualError(t, err, "write failed")
}

func TestUpsertBlog(t *testing.T) {
	id := primitive.NewObjectID()

	testCases := []struct {
		name        string
		id          string
		expected    *UpsertResult
		expectedErr error
	}{
		{
			name:     "existing blog replaced",
			id:       id.Hex(),
			expected: &UpsertResult{MatchedCount: 1, ModifiedCount: 1},
		},
		{
			name:     "absent blog created",
			id:       id.Hex(),
			expected: &UpsertResult{UpsertedID: id},
		},
		{
			name:        "malformed id",
			id:          "not-a-hex-id",
			expectedErr: ErrInvalidID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockBlogStore)
			s := newTestService(store)

			store.On("Upsert", mock.Anything, id, mock.AnythingOfType("*blogservice.Blog")).
				Return(tc.expected, nil)

			res, err := s.UpsertBlog(context.Background(), tc.id, &BlogRequest{Title: "Updated Blog"})
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestGetBlogByID(t *testing.T) {
	id := primitive.NewObjectID()
	blog := &Blog{ID: id, Title: "Test Blog"}

	t.Run("found and cached", func(t *testing.T) {
		store := new(MockBlogStore)
		s := newTestService(store)

		store.On("GetByID", mock.Anything, id).Return(blog, nil).Once()

		for i := 0; i < 2; i++ {
			got, err := s.GetBlogByID(context.Background(), id.Hex())
			assert.NoError(t, err)
			assert.Equal(t, blog, got)
		}

		store.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(MockBlogStore)
		s := newTestService(store)

		store.On("GetByID", mock.Anything, id).Return(nil, ErrRecordNotFound)

		_, err := s.GetBlogByID(context.Background(), id.Hex())
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		store := new(MockBlogStore)
		s := newTestService(store)

		_, err := s.GetBlogByID(context.Background(), "zzz")
		assert.ErrorIs(t, err, ErrInvalidID)
		store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestGetRecentBlogs(t *testing.T) {
	store := new(MockBlogStore)
	s := newTestService(store)

	blogs := []Blog{{Title: "newest"}, {Title: "older"}}
	store.On("GetRecent", mock.Anything, int64(6)).Return(blogs, nil).Once()

	for i := 0; i < 2; i++ {
		got, err := s.GetRecentBlogs(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, blogs, got)
	}

	store.AssertExpectations(t)
}

func TestGetBlogPage(t *testing.T) {
	testCases := []struct {
		name           string
		page           int
		limit          int
		category       string
		title          string
		total          int64
		expectedFilter PageFilter
		expectedPages  int
	}{
		{
			name:           "defaults",
			page:           0,
			limit:          0,
			total:          12,
			expectedFilter: PageFilter{Skip: 0, Limit: 6},
			expectedPages:  2,
		},
		{
			name:           "second page of five",
			page:           2,
			limit:          5,
			total:          12,
			expectedFilter: PageFilter{Skip: 5, Limit: 5},
			expectedPages:  3,
		},
		{
			name:           "category and title filter still paginated",
			page:           3,
			limit:          4,
			category:       "Travel",
			title:          "mountains",
			total:          20,
			expectedFilter: PageFilter{Skip: 8, Limit: 4, Category: "Travel", Title: "mountains"},
			expectedPages:  5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockBlogStore)
			s := newTestService(store)

			store.On("Count", mock.Anything).Return(tc.total, nil)
			store.On("GetPage", mock.Anything, tc.expectedFilter).Return([]Blog{{Title: "Test Blog"}}, nil)

			page, err := s.GetBlogPage(context.Background(), tc.page, tc.limit, tc.category, tc.title)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedPages, page.TotalPages)
			assert.Len(t, page.Blogs, 1)

			store.AssertExpectations(t)
		})
	}
}

func TestGetBlogPageEmpty(t *testing.T) {
	store := new(MockBlogStore)
	s := newTestService(store)

	store.On("Count", mock.Anything).Return(int64(0), nil)
	store.On("GetPage", mock.Anything, mock.Anything).Return(nil, nil)

	page, err := s.GetBlogPage(context.Background(), 1, 6, "", "")
	assert.NoError(t, err)
	assert.NotNil(t, page.Blogs)
	assert.Empty(t, page.Blogs)
	assert.Zero(t, page.TotalPages)
}

func TestGetFeaturedBlogs(t *testing.T) {
	store := new(MockBlogStore)
	s := newTestService(store)

	blogs := []Blog{{Title: "wordy"}, {Title: "short"}}
	store.On("GetFeatured", mock.Anything, SortSpec{Field: "title", Direction: 1}).Return(blogs, nil).Once()

	for i := 0; i < 2; i++ {
		got, err := s.GetFeaturedBlogs(context.Background(), "title:asc")
		assert.NoError(t, err)
		assert.Equal(t, blogs, got)
	}

	store.AssertExpectations(t)
}
