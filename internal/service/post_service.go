package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"anicms/internal/models"
	"anicms/internal/repository"
	"anicms/internal/storage"
)

// PostInput carries one post create or update form submission.
type PostInput struct {
	Title string
	Body  string
	Image *multipart.FileHeader
}

type PostService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Post, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, actorID string, in PostInput) (*models.Post, error)
	Update(ctx context.Context, id int64, in PostInput) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	repo  *repository.PostRepo
	blobs storage.BlobStore
}

func NewPostService(repo *repository.PostRepo, blobs storage.BlobStore) PostService {
	return &postService{repo: repo, blobs: blobs}
}

func (s *postService) GetAll(ctx context.Context, page, pageSize int) ([]models.Post, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize)
}

func (s *postService) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) Create(ctx context.Context, actorID string, in PostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errors.New("title is required")
	}
	post := &models.Post{
		Title:  in.Title,
		Body:   in.Body,
		UserID: &actorID,
	}
	if in.Image != nil {
		p, err := s.blobs.SaveUpload(storage.FolderPosts, in.Image)
		if err != nil {
			return nil, fmt.Errorf("store post image: %w", err)
		}
		post.Image = &p
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, id int64, in PostInput) (*models.Post, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) != "" {
		existing.Title = in.Title
	}
	if in.Body != "" {
		existing.Body = in.Body
	}
	if in.Image != nil {
		if existing.Image != nil {
			if err := s.blobs.Delete(*existing.Image); err != nil {
				return nil, fmt.Errorf("delete old post image: %w", err)
			}
		}
		p, err := s.blobs.SaveUpload(storage.FolderPosts, in.Image)
		if err != nil {
			return nil, fmt.Errorf("store post image: %w", err)
		}
		existing.Image = &p
	}
	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.Image != nil {
		if err := s.blobs.Delete(*post.Image); err != nil {
			return fmt.Errorf("delete post image: %w", err)
		}
	}
	return s.repo.Delete(ctx, id)
}
