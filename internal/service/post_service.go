package service

import (
	"context"
	"strings"

	"collegeblog/internal/config"
	"collegeblog/internal/models"
	"collegeblog/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, user *models.User, input models.PostInput) (*models.Post, error)
	GetPost(ctx context.Context, postID int64) (*models.Post, error)
	ListPosts(ctx context.Context, filter repository.ListFilter) ([]models.Post, error)
	UpdatePost(ctx context.Context, user *models.User, postID int64, input models.PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, user *models.User, postID int64) error
}

type postService struct {
	postRepo repository.PostRepository
	policy   config.OwnershipPolicy
}

func NewPostService(postRepo repository.PostRepository, policy config.OwnershipPolicy) PostService {
	return &postService{
		postRepo: postRepo,
		policy:   policy,
	}
}

func (s *postService) CreatePost(ctx context.Context, user *models.User, input models.PostInput) (*models.Post, error) {
	if err := authorizeMutation(config.AnyAuthenticated, user, nil, "post"); err != nil {
		return nil, err
	}
	if err := requireText("title", input.Title, "content", input.Content); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      strings.TrimSpace(input.Title),
		Content:    input.Content,
		ImageURL:   input.ImageURL,
		OwnerID:    user.ID,
		CategoryID: input.CategoryID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, repoError(err, "Post")
	}

	return s.GetPost(ctx, post.ID)
}

func (s *postService) GetPost(ctx context.Context, postID int64) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, repoError(err, "Post")
	}
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, filter repository.ListFilter) ([]models.Post, error) {
	posts, err := s.postRepo.List(ctx, filter.Normalize())
	if err != nil {
		return nil, repoError(err, "Post")
	}
	return posts, nil
}

func (s *postService) UpdatePost(ctx context.Context, user *models.User, postID int64, input models.PostInput) (*models.Post, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := authorizeMutation(s.policy, user, &post.OwnerID, "post"); err != nil {
		return nil, err
	}
	if err := requireText("title", input.Title, "content", input.Content); err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Content = input.Content
	post.ImageURL = input.ImageURL
	post.CategoryID = input.CategoryID

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, repoError(err, "Post")
	}

	return s.GetPost(ctx, postID)
}

func (s *postService) DeletePost(ctx context.Context, user *models.User, postID int64) error {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	if err := authorizeMutation(s.policy, user, &post.OwnerID, "post"); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return repoError(err, "Post")
	}

	return nil
}
