package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"anicms/internal/cache"
	"anicms/internal/models"
	"anicms/internal/repository"
	"anicms/internal/storage"
)

// EpisodeStore is the persistence surface the episode service needs.
// *repository.EpisodeRepo satisfies it.
type EpisodeStore interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Episode, error)
	Search(ctx context.Context, query string) ([]models.Episode, error)
	ListBySeries(ctx context.Context, seriesID int64) ([]models.Episode, error)
	Create(ctx context.Context, ep *models.Episode) error
	Update(ctx context.Context, id int64, ep *models.Episode) error
	Delete(ctx context.Context, id int64) error
	DeleteVideos(ctx context.Context, episodeID int64) error
	CreateVideos(ctx context.Context, videos []models.EpisodeVideo) error
}

// SeriesResolver looks up the parent anime of an episode.
type SeriesResolver interface {
	GetByID(ctx context.Context, id int64) (*models.Anime, error)
}

// EpisodeInput carries one validated create or update form submission.
// Thumbnail and Banner are nil when no file was uploaded.
type EpisodeInput struct {
	SeriesID      int64
	Title         string
	TitleEn       *string
	Slug          string
	SlugEn        *string
	EpisodeNumber int
	Description   *string
	DescriptionEn *string
	Thumbnail     *multipart.FileHeader
	Banner        *multipart.FileHeader
	VideoURLs     []string
	Duration      *int
	Quality       *string
	VideoFormat   *string
	ReleaseDate   *time.Time
	IsPublished   bool
	Language      string
	Subtitles     []string
	Rating        float64
}

type EpisodeService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Episode, error)
	GetPublished(ctx context.Context, id int64) (*models.Episode, error)
	Search(ctx context.Context, query string) ([]models.Episode, error)
	Create(ctx context.Context, in EpisodeInput) (*models.Episode, error)
	Update(ctx context.Context, id int64, in EpisodeInput) (*models.Episode, error)
	Delete(ctx context.Context, id int64) error
}

type episodeService struct {
	episodes EpisodeStore
	series   SeriesResolver
	blobs    storage.BlobStore
	cache    *cache.Cache
}

func NewEpisodeService(episodes EpisodeStore, series SeriesResolver, blobs storage.BlobStore, c *cache.Cache) EpisodeService {
	return &episodeService{episodes: episodes, series: series, blobs: blobs, cache: c}
}

func (s *episodeService) GetAll(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error) {
	return s.episodes.GetAll(ctx, page, pageSize)
}

func (s *episodeService) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	return s.episodes.GetByID(ctx, id)
}

// GetPublished serves the public watch page through the redis cache.
// Unpublished episodes are hidden behind a not-found error.
func (s *episodeService) GetPublished(ctx context.Context, id int64) (*models.Episode, error) {
	var cached models.Episode
	if ok, _ := s.cache.GetJSON(ctx, cache.EpisodeKey(id), &cached); ok {
		return &cached, nil
	}
	ep, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ep.IsPublished {
		return nil, repository.ErrNotFound
	}
	_ = s.cache.SetJSON(ctx, cache.EpisodeKey(id), ep)
	return ep, nil
}

func (s *episodeService) Search(ctx context.Context, query string) ([]models.Episode, error) {
	return s.episodes.Search(ctx, query)
}

// Create resolves the parent anime first, so a bad series id rejects the
// request before any file or row is written. Artwork resolution: an uploaded
// file wins; otherwise the episode inherits the parent's image/cover.
func (s *episodeService) Create(ctx context.Context, in EpisodeInput) (*models.Episode, error) {
	anime, err := s.series.GetByID(ctx, in.SeriesID)
	if err != nil {
		return nil, fmt.Errorf("resolve series %d: %w", in.SeriesID, err)
	}

	ep := in.toModel()

	if in.Thumbnail != nil {
		p, err := s.blobs.SaveUpload(storage.FolderEpisodes, in.Thumbnail)
		if err != nil {
			return nil, fmt.Errorf("store thumbnail: %w", err)
		}
		ep.Thumbnail = &p
	} else if anime.Image != nil && *anime.Image != "" {
		ep.Thumbnail = anime.Image
	}

	if in.Banner != nil {
		p, err := s.blobs.SaveUpload(storage.FolderEpisodes, in.Banner)
		if err != nil {
			return nil, fmt.Errorf("store banner: %w", err)
		}
		ep.Banner = &p
	} else if anime.Cover != nil && *anime.Cover != "" {
		ep.Banner = anime.Cover
	}

	if err := s.episodes.Create(ctx, ep); err != nil {
		return nil, err
	}

	if err := s.insertVideoLinks(ctx, ep, in.VideoURLs, anime); err != nil {
		return nil, err
	}
	return ep, nil
}

// Update applies the three-way artwork priority: a fresh upload always wins
// and retires the old blob; a series move adopts the new show's art, even
// when that is null; otherwise the current value stays untouched. Video
// links are rebuilt wholesale on every update.
func (s *episodeService) Update(ctx context.Context, id int64, in EpisodeInput) (*models.Episode, error) {
	existing, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	anime, err := s.series.GetByID(ctx, in.SeriesID)
	if err != nil {
		return nil, fmt.Errorf("resolve series %d: %w", in.SeriesID, err)
	}

	seriesChanged := existing.SeriesID != in.SeriesID

	ep := in.toModel()
	ep.ID = existing.ID
	ep.CreatedAt = existing.CreatedAt
	ep.ViewsCount = existing.ViewsCount
	ep.LikesCount = existing.LikesCount

	switch {
	case in.Thumbnail != nil:
		if existing.Thumbnail != nil {
			if err := s.blobs.Delete(*existing.Thumbnail); err != nil {
				return nil, fmt.Errorf("delete old thumbnail: %w", err)
			}
		}
		p, err := s.blobs.SaveUpload(storage.FolderEpisodes, in.Thumbnail)
		if err != nil {
			return nil, fmt.Errorf("store thumbnail: %w", err)
		}
		ep.Thumbnail = &p
	case seriesChanged:
		// adopt the new show's art; the previous file is abandoned, not deleted
		ep.Thumbnail = anime.Image
	default:
		ep.Thumbnail = existing.Thumbnail
	}

	switch {
	case in.Banner != nil:
		if existing.Banner != nil {
			if err := s.blobs.Delete(*existing.Banner); err != nil {
				return nil, fmt.Errorf("delete old banner: %w", err)
			}
		}
		p, err := s.blobs.SaveUpload(storage.FolderEpisodes, in.Banner)
		if err != nil {
			return nil, fmt.Errorf("store banner: %w", err)
		}
		ep.Banner = &p
	case seriesChanged:
		ep.Banner = anime.Cover
	default:
		ep.Banner = existing.Banner
	}

	if err := s.episodes.Update(ctx, id, ep); err != nil {
		return nil, err
	}

	// full replace: an omitted URL list clears every link
	if err := s.episodes.DeleteVideos(ctx, id); err != nil {
		return nil, err
	}
	if err := s.insertVideoLinks(ctx, ep, in.VideoURLs, anime); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cache.EpisodeKey(id))
	return ep, nil
}

// Delete is an explicit cascade: blobs first, then the owned link rows,
// then the episode row itself.
func (s *episodeService) Delete(ctx context.Context, id int64) error {
	ep, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ep.Thumbnail != nil {
		if err := s.blobs.Delete(*ep.Thumbnail); err != nil {
			return fmt.Errorf("delete thumbnail: %w", err)
		}
	}
	if ep.Banner != nil {
		if err := s.blobs.Delete(*ep.Banner); err != nil {
			return fmt.Errorf("delete banner: %w", err)
		}
	}
	if err := s.episodes.DeleteVideos(ctx, id); err != nil {
		return err
	}
	if err := s.episodes.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.EpisodeKey(id))
	return nil
}

// insertVideoLinks creates one row per non-empty URL, preserving order and
// duplicates, stamped with the episode number and the parent anime's title
// and image as of this write.
func (s *episodeService) insertVideoLinks(ctx context.Context, ep *models.Episode, urls []string, anime *models.Anime) error {
	links := make([]models.EpisodeVideo, 0, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		links = append(links, models.EpisodeVideo{
			EpisodeID:     ep.ID,
			VideoURL:      u,
			EpisodeNumber: ep.EpisodeNumber,
			AnimeTitle:    anime.Title,
			AnimeImage:    anime.Image,
		})
	}
	return s.episodes.CreateVideos(ctx, links)
}

func (in EpisodeInput) toModel() *models.Episode {
	ep := &models.Episode{
		SeriesID:      in.SeriesID,
		Title:         in.Title,
		TitleEn:       in.TitleEn,
		Slug:          in.Slug,
		SlugEn:        in.SlugEn,
		EpisodeNumber: in.EpisodeNumber,
		Description:   in.Description,
		DescriptionEn: in.DescriptionEn,
		Duration:      in.Duration,
		Quality:       in.Quality,
		VideoFormat:   in.VideoFormat,
		ReleaseDate:   in.ReleaseDate,
		IsPublished:   in.IsPublished,
		Language:      in.Language,
		Subtitles:     models.StringList(in.Subtitles),
		Rating:        in.Rating,
	}
	if ep.Language == "" {
		ep.Language = "ar"
	}
	if ep.Slug == "" {
		ep.Slug = slugify(ep.Title)
	}
	if ep.SlugEn == nil && in.TitleEn != nil && *in.TitleEn != "" {
		s := slugify(*in.TitleEn)
		ep.SlugEn = &s
	}
	return ep
}
