package repository

import (
	"context"
	"fmt"

	"anicms/internal/models"

	"gorm.io/gorm"
)

// Lookup enumerates the admin-managed lookup tables. They share one schema
// (models.LookupFields), so a single generic repo serves all of them.
type Lookup interface {
	models.Season | models.Studio | models.Language | models.Type
}

type LookupRepo[T Lookup] struct {
	db *gorm.DB
}

func NewLookupRepo[T Lookup](db *gorm.DB) *LookupRepo[T] {
	return &LookupRepo[T]{db: db}
}

func (r *LookupRepo[T]) GetAll(ctx context.Context) ([]T, error) {
	var list []T
	if err := r.db.WithContext(ctx).Order("id desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get lookup rows: %w", translate(err))
	}
	return list, nil
}

func (r *LookupRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *LookupRepo[T]) Create(ctx context.Context, item *T) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create lookup row: %w", translate(err))
	}
	return nil
}

// Update saves the full row; the caller keeps the primary key set.
func (r *LookupRepo[T]) Update(ctx context.Context, item *T) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("update lookup row: %w", translate(err))
	}
	return nil
}

func (r *LookupRepo[T]) Delete(ctx context.Context, id int64) error {
	var item T
	if err := r.db.WithContext(ctx).Delete(&item, id).Error; err != nil {
		return fmt.Errorf("delete lookup row: %w", translate(err))
	}
	return nil
}
