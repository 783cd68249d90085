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

// AnimeStore is the persistence surface the anime service needs.
// *repository.AnimeRepo satisfies it.
type AnimeStore interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Anime, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Anime, error)
	Create(ctx context.Context, a *models.Anime) error
	Update(ctx context.Context, id int64, a *models.Anime) error
	Delete(ctx context.Context, id int64) error
	ReplaceCategories(ctx context.Context, animeID int64, categoryIDs []int64) error
	ClearCategories(ctx context.Context, animeID int64) error
}

// EpisodeSweeper is the slice of the episode store the anime deletion
// cascade needs to clean up owned episodes.
type EpisodeSweeper interface {
	ListBySeries(ctx context.Context, seriesID int64) ([]models.Episode, error)
	DeleteVideos(ctx context.Context, episodeID int64) error
	Delete(ctx context.Context, id int64) error
}

// LookupResolver turns submitted studio/language/type ids into the
// denormalized names stored on the anime row.
type LookupResolver interface {
	StudioName(ctx context.Context, id int64) (string, error)
	LanguageName(ctx context.Context, id int64) (string, error)
	TypeName(ctx context.Context, id int64) (string, error)
}

// AnimeInput carries one validated create or update form submission.
// On create the studio/language/type arrive as lookup ids; on update the
// form submits the already-denormalized names.
type AnimeInput struct {
	Title         string
	TitleEn       *string
	Description   *string
	DescriptionEn *string
	Slug          string
	SlugEn        *string
	CategoryIDs   []int64
	Seasons       int
	Status        string
	ReleaseDate   *time.Time
	Rating        *float64
	Image         *multipart.FileHeader
	Cover         *multipart.FileHeader
	StudioID      *int64
	LanguageID    *int64
	TypeID        *int64
	StudioName    *string
	Language      *string
	TypeName      *string
	Duration      *int
	Trailer       *string
	IsActive      bool
}

type AnimeService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Anime, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Anime, error)
	GetActive(ctx context.Context, id int64) (*models.Anime, error)
	Create(ctx context.Context, actorID string, in AnimeInput) (*models.Anime, error)
	Update(ctx context.Context, id int64, actorID string, in AnimeInput) (*models.Anime, error)
	Delete(ctx context.Context, id int64) error
}

type animeService struct {
	animes   AnimeStore
	episodes EpisodeSweeper
	lookups  LookupResolver
	blobs    storage.BlobStore
	cache    *cache.Cache
}

func NewAnimeService(animes AnimeStore, episodes EpisodeSweeper, lookups LookupResolver, blobs storage.BlobStore, c *cache.Cache) AnimeService {
	return &animeService{animes: animes, episodes: episodes, lookups: lookups, blobs: blobs, cache: c}
}

func (s *animeService) GetAll(ctx context.Context, page, pageSize int) ([]models.Anime, int64, error) {
	return s.animes.GetAll(ctx, page, pageSize)
}

func (s *animeService) GetByID(ctx context.Context, id int64) (*models.Anime, error) {
	return s.animes.GetByID(ctx, id)
}

// GetActive serves the public catalog page through the redis cache.
func (s *animeService) GetActive(ctx context.Context, id int64) (*models.Anime, error) {
	var cached models.Anime
	if ok, _ := s.cache.GetJSON(ctx, cache.AnimeKey(id), &cached); ok {
		return &cached, nil
	}
	a, err := s.animes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.IsActive {
		return nil, repository.ErrNotFound
	}
	_ = s.cache.SetJSON(ctx, cache.AnimeKey(id), a)
	return a, nil
}

func (s *animeService) Create(ctx context.Context, actorID string, in AnimeInput) (*models.Anime, error) {
	a, err := s.buildModel(ctx, in)
	if err != nil {
		return nil, err
	}
	a.UserID = &actorID

	if in.Image != nil {
		p, err := s.blobs.SaveUpload(storage.FolderAnimes, in.Image)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		a.Image = &p
	}
	if in.Cover != nil {
		p, err := s.blobs.SaveUpload(storage.FolderAnimes, in.Cover)
		if err != nil {
			return nil, fmt.Errorf("store cover: %w", err)
		}
		a.Cover = &p
	}

	if err := s.animes.Create(ctx, a); err != nil {
		return nil, err
	}
	if len(in.CategoryIDs) > 0 {
		if err := s.animes.ReplaceCategories(ctx, a.ID, in.CategoryIDs); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (s *animeService) Update(ctx context.Context, id int64, actorID string, in AnimeInput) (*models.Anime, error) {
	existing, err := s.animes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a, err := s.buildModel(ctx, in)
	if err != nil {
		return nil, err
	}
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt
	a.UserID = existing.UserID

	// a new file replaces the old blob, no file keeps the current one
	if in.Image != nil {
		if existing.Image != nil {
			if err := s.blobs.Delete(*existing.Image); err != nil {
				return nil, fmt.Errorf("delete old image: %w", err)
			}
		}
		p, err := s.blobs.SaveUpload(storage.FolderAnimes, in.Image)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		a.Image = &p
	} else {
		a.Image = existing.Image
	}
	if in.Cover != nil {
		if existing.Cover != nil {
			if err := s.blobs.Delete(*existing.Cover); err != nil {
				return nil, fmt.Errorf("delete old cover: %w", err)
			}
		}
		p, err := s.blobs.SaveUpload(storage.FolderAnimes, in.Cover)
		if err != nil {
			return nil, fmt.Errorf("store cover: %w", err)
		}
		a.Cover = &p
	} else {
		a.Cover = existing.Cover
	}

	if err := s.animes.Update(ctx, id, a); err != nil {
		return nil, err
	}
	if in.CategoryIDs != nil {
		if err := s.animes.ReplaceCategories(ctx, id, in.CategoryIDs); err != nil {
			return nil, err
		}
	}

	s.cache.Invalidate(ctx, cache.AnimeKey(id))
	return a, nil
}

// Delete sweeps the owned episodes first so their blobs and video-link rows
// do not leak, then removes the anime's own blobs, detaches categories and
// deletes the row.
func (s *animeService) Delete(ctx context.Context, id int64) error {
	a, err := s.animes.GetByID(ctx, id)
	if err != nil {
		return err
	}

	episodes, err := s.episodes.ListBySeries(ctx, id)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(episodes)+1)
	for _, ep := range episodes {
		if ep.Thumbnail != nil {
			if err := s.blobs.Delete(*ep.Thumbnail); err != nil {
				return fmt.Errorf("delete episode thumbnail: %w", err)
			}
		}
		if ep.Banner != nil {
			if err := s.blobs.Delete(*ep.Banner); err != nil {
				return fmt.Errorf("delete episode banner: %w", err)
			}
		}
		if err := s.episodes.DeleteVideos(ctx, ep.ID); err != nil {
			return err
		}
		if err := s.episodes.Delete(ctx, ep.ID); err != nil {
			return err
		}
		keys = append(keys, cache.EpisodeKey(ep.ID))
	}

	if a.Image != nil {
		if err := s.blobs.Delete(*a.Image); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}
	if a.Cover != nil {
		if err := s.blobs.Delete(*a.Cover); err != nil {
			return fmt.Errorf("delete cover: %w", err)
		}
	}
	if err := s.animes.ClearCategories(ctx, id); err != nil {
		return err
	}
	if err := s.animes.Delete(ctx, id); err != nil {
		return err
	}

	keys = append(keys, cache.AnimeKey(id))
	s.cache.Invalidate(ctx, keys...)
	return nil
}

// buildModel maps the input onto a fresh row, resolving lookup ids to their
// denormalized names when the form submitted ids.
func (s *animeService) buildModel(ctx context.Context, in AnimeInput) (*models.Anime, error) {
	a := &models.Anime{
		Title:         in.Title,
		TitleEn:       in.TitleEn,
		Description:   in.Description,
		DescriptionEn: in.DescriptionEn,
		Slug:          in.Slug,
		SlugEn:        in.SlugEn,
		Seasons:       in.Seasons,
		Status:        in.Status,
		ReleaseDate:   in.ReleaseDate,
		Rating:        in.Rating,
		StudioName:    in.StudioName,
		Language:      in.Language,
		Type:          in.TypeName,
		Duration:      in.Duration,
		Trailer:       in.Trailer,
		IsActive:      in.IsActive,
	}
	if a.Seasons < 1 {
		a.Seasons = 1
	}
	if a.Status == "" {
		a.Status = "Ongoing"
	}
	if a.Slug == "" {
		a.Slug = slugify(a.Title)
	}
	if a.SlugEn == nil && in.TitleEn != nil && *in.TitleEn != "" {
		slug := slugify(*in.TitleEn)
		a.SlugEn = &slug
	}

	if in.StudioID != nil {
		name, err := s.lookups.StudioName(ctx, *in.StudioID)
		if err != nil {
			return nil, fmt.Errorf("resolve studio %d: %w", *in.StudioID, err)
		}
		a.StudioName = &name
	}
	if in.LanguageID != nil {
		name, err := s.lookups.LanguageName(ctx, *in.LanguageID)
		if err != nil {
			return nil, fmt.Errorf("resolve language %d: %w", *in.LanguageID, err)
		}
		a.Language = &name
	}
	if in.TypeID != nil {
		name, err := s.lookups.TypeName(ctx, *in.TypeID)
		if err != nil {
			return nil, fmt.Errorf("resolve type %d: %w", *in.TypeID, err)
		}
		a.Type = &name
	}
	return a, nil
}
