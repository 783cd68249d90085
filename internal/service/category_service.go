package service

import (
	"context"
	"errors"
	"strings"

	"anicms/internal/models"
	"anicms/internal/repository"
)

type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetAnimesByCategory(ctx context.Context, categoryID int64) ([]models.Anime, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, id int64, c *models.Category) error
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	repo *repository.CategoryRepo
}

func NewCategoryService(repo *repository.CategoryRepo) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) GetAnimesByCategory(ctx context.Context, categoryID int64) ([]models.Anime, error) {
	return s.repo.GetAnimesByCategory(ctx, categoryID)
}

func (s *categoryService) Create(ctx context.Context, c *models.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if c.Slug == "" {
		c.Slug = slugify(c.Name)
	}
	if c.SlugEn == nil && c.NameEn != nil && *c.NameEn != "" {
		slug := slugify(*c.NameEn)
		c.SlugEn = &slug
	}
	return s.repo.Create(ctx, c)
}

func (s *categoryService) Update(ctx context.Context, id int64, c *models.Category) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(c.Name) != "" {
		existing.Name = c.Name
	}
	if c.NameEn != nil {
		existing.NameEn = c.NameEn
	}
	if c.Slug != "" {
		existing.Slug = c.Slug
	}
	if c.SlugEn != nil {
		existing.SlugEn = c.SlugEn
	}
	return s.repo.Update(ctx, id, existing)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
