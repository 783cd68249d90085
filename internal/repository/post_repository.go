package repository

import (
	"context"
	"fmt"

	"anicms/internal/models"

	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db: db}
}

func (r *PostRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Post, int64, error) {
	var list []models.Post
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, translate(err)
	}
	return list, total, nil
}

func (r *PostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var p models.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PostRepo) Create(ctx context.Context, p *models.Post) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create post: %w", translate(err))
	}
	return nil
}

func (r *PostRepo) Update(ctx context.Context, id int64, p *models.Post) error {
	p.ID = id
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update post: %w", translate(err))
	}
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return fmt.Errorf("delete post: %w", translate(err))
	}
	return nil
}
