package commentservice

import (
	"context"
	"time"
)

func NewCommentService(store CommentStore) *CommentService {
	return &CommentService{m: store}
}

type AddCommentRequest struct {
	BlogID      string    `json:"blog_id"`
	UserName    string    `json:"user_name"`
	UserPhoto   string    `json:"user_photo"`
	Comment     string    `json:"comment"`
	CommentDate time.Time `json:"comment_date"`
}

// GetCommentsByBlogID returns all comments for the given blog identifier.
// Comments for an unknown blog are simply an empty list.
func (s *CommentService) GetCommentsByBlogID(ctx context.Context, blogID string) ([]Comment, error) {
	comments, err := s.m.GetByBlogID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []Comment{}
	}

	return comments, nil
}

// AddComment stores the comment as given. The blog reference is not checked
// against the blog collection.
func (s *CommentService) AddComment(ctx context.Context, req *AddCommentRequest) (*InsertResult, error) {
	comment := &Comment{
		BlogID:      req.BlogID,
		UserName:    req.UserName,
		UserPhoto:   req.UserPhoto,
		Comment:     req.Comment,
		CommentDate: req.CommentDate,
	}
	if comment.CommentDate.IsZero() {
		comment.CommentDate = time.Now()
	}

	return s.m.Insert(ctx, comment)
}
