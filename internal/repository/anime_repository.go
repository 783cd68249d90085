package repository

import (
	"context"
	"fmt"

	"anicms/internal/models"

	"gorm.io/gorm"
)

type AnimeRepo struct {
	db *gorm.DB
}

func NewAnimeRepo(db *gorm.DB) *AnimeRepo {
	return &AnimeRepo{db: db}
}

func (r *AnimeRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Anime, int64, error) {
	var list []models.Anime
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Anime{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("User").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, translate(err)
	}
	return list, total, nil
}

func (r *AnimeRepo) GetByID(ctx context.Context, id int64) (*models.Anime, error) {
	var a models.Anime
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Episodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("episode_number asc")
		}).
		First(&a, id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AnimeRepo) Create(ctx context.Context, a *models.Anime) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create anime: %w", translate(err))
	}
	return nil
}

func (r *AnimeRepo) Update(ctx context.Context, id int64, a *models.Anime) error {
	a.ID = id
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("update anime: %w", translate(err))
	}
	return nil
}

func (r *AnimeRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Anime{}, id).Error; err != nil {
		return fmt.Errorf("delete anime: %w", translate(err))
	}
	return nil
}

// ReplaceCategories swaps the full category association set of the anime.
func (r *AnimeRepo) ReplaceCategories(ctx context.Context, animeID int64, categoryIDs []int64) error {
	a := models.Anime{ID: animeID}
	categories := make([]models.Category, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		categories = append(categories, models.Category{ID: id})
	}
	if err := r.db.WithContext(ctx).Model(&a).Association("Categories").Replace(&categories); err != nil {
		return fmt.Errorf("replace categories: %w", translate(err))
	}
	return nil
}

// ClearCategories detaches every category before the anime row is removed.
func (r *AnimeRepo) ClearCategories(ctx context.Context, animeID int64) error {
	a := models.Anime{ID: animeID}
	if err := r.db.WithContext(ctx).Model(&a).Association("Categories").Clear(); err != nil {
		return fmt.Errorf("clear categories: %w", translate(err))
	}
	return nil
}
