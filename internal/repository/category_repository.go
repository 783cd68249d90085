package repository

import (
	"context"
	"fmt"

	"anicms/internal/models"

	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get categories: %w", translate(err))
	}
	return list, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CategoryRepo) Create(ctx context.Context, c *models.Category) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create category: %w", translate(err))
	}
	return nil
}

func (r *CategoryRepo) Update(ctx context.Context, id int64, c *models.Category) error {
	c.ID = id
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update category: %w", translate(err))
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Select("Animes").Delete(&models.Category{ID: id}).Error; err != nil {
		return fmt.Errorf("delete category: %w", translate(err))
	}
	return nil
}

// GetAnimesByCategory returns the animes associated with the given category.
func (r *CategoryRepo) GetAnimesByCategory(ctx context.Context, categoryID int64) ([]models.Anime, error) {
	var list []models.Anime
	if err := r.db.WithContext(ctx).
		Model(&models.Anime{}).
		Joins("JOIN anime_categories ac ON ac.anime_id = animes.id").
		Where("ac.category_id = ?", categoryID).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get animes by category: %w", translate(err))
	}
	return list, nil
}
