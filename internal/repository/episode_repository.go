package repository

import (
	"context"
	"fmt"
	"strconv"

	"anicms/internal/models"

	"gorm.io/gorm"
)

type EpisodeRepo struct {
	db *gorm.DB
}

func NewEpisodeRepo(db *gorm.DB) *EpisodeRepo {
	return &EpisodeRepo{db: db}
}

func (r *EpisodeRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error) {
	var list []models.Episode
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Episode{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("Series").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, translate(err)
	}
	return list, total, nil
}

func (r *EpisodeRepo) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	var ep models.Episode
	if err := r.db.WithContext(ctx).
		Preload("Series").
		Preload("Videos").
		First(&ep, id).Error; err != nil {
		return nil, translate(err)
	}
	return &ep, nil
}

// Search matches the episode title, the exact episode number, or the parent
// anime title, case-insensitively.
func (r *EpisodeRepo) Search(ctx context.Context, query string) ([]models.Episode, error) {
	var list []models.Episode
	pattern := "%" + query + "%"

	db := r.db.WithContext(ctx).
		Joins("JOIN animes ON animes.id = episodes.series_id").
		Where("episodes.title ILIKE ? OR animes.title ILIKE ?", pattern, pattern)
	if n, err := strconv.Atoi(query); err == nil {
		db = r.db.WithContext(ctx).
			Joins("JOIN animes ON animes.id = episodes.series_id").
			Where("episodes.title ILIKE ? OR animes.title ILIKE ? OR episodes.episode_number = ?", pattern, pattern, n)
	}
	if err := db.Preload("Series").Order("episodes.created_at desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search episodes: %w", translate(err))
	}
	return list, nil
}

func (r *EpisodeRepo) ListBySeries(ctx context.Context, seriesID int64) ([]models.Episode, error) {
	var list []models.Episode
	if err := r.db.WithContext(ctx).
		Where("series_id = ?", seriesID).
		Order("episode_number asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list episodes by series: %w", translate(err))
	}
	return list, nil
}

func (r *EpisodeRepo) Create(ctx context.Context, ep *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(ep).Error; err != nil {
		return fmt.Errorf("create episode: %w", translate(err))
	}
	return nil
}

func (r *EpisodeRepo) Update(ctx context.Context, id int64, ep *models.Episode) error {
	ep.ID = id
	if err := r.db.WithContext(ctx).Save(ep).Error; err != nil {
		return fmt.Errorf("update episode: %w", translate(err))
	}
	return nil
}

func (r *EpisodeRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Episode{}, id).Error; err != nil {
		return fmt.Errorf("delete episode: %w", translate(err))
	}
	return nil
}

// DeleteVideos removes every video-link row owned by the episode.
func (r *EpisodeRepo) DeleteVideos(ctx context.Context, episodeID int64) error {
	if err := r.db.WithContext(ctx).
		Where("episode_id = ?", episodeID).
		Delete(&models.EpisodeVideo{}).Error; err != nil {
		return fmt.Errorf("delete episode videos: %w", translate(err))
	}
	return nil
}

// CreateVideos inserts the given link rows, preserving slice order.
func (r *EpisodeRepo) CreateVideos(ctx context.Context, videos []models.EpisodeVideo) error {
	if len(videos) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&videos).Error; err != nil {
		return fmt.Errorf("create episode videos: %w", translate(err))
	}
	return nil
}
