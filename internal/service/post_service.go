package service

import (
	"context"

	"pixelgram/internal/media"
	"pixelgram/internal/models"
	"pixelgram/internal/repository"
	"pixelgram/internal/validation"
)

type PostService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	media    MediaDiscarder
}

func NewPostService(store *repository.Store, discarder MediaDiscarder) *PostService {
	return &PostService{
		users:    store.Users,
		posts:    store.Posts,
		comments: store.Comments,
		media:    discarder,
	}
}

// CreatePost stores a post for an already ingested media file. The file is
// discarded when the post cannot be saved.
func (s *PostService) CreatePost(ctx context.Context, userID uint, cmd validation.CreatePost, file *media.StoredFile) (*models.Post, error) {
	post := &models.Post{
		UserID:    userID,
		Caption:   cmd.Caption,
		Location:  cmd.Location,
		ImageURL:  file.URL,
		MediaType: file.MediaType,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		s.media.Discard(ctx, file.URL)
		return nil, err
	}
	return s.posts.GetByID(ctx, post.ID)
}

// Comments lists a post's comments, oldest first.
func (s *PostService) Comments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID)
}

// AddComment attaches a comment by userID to a post.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, cmd validation.CreateComment) (*models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: cmd.Content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	if author, err := s.users.GetByID(ctx, userID); err == nil {
		comment.User = author
	}
	return comment, nil
}
