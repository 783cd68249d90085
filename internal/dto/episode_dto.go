package dto

import (
	"anicms/internal/service"
)

// EpisodeForm binds the multipart episode create/update form. The thumbnail
// and banner files are read separately by the handler.
type EpisodeForm struct {
	SeriesID      int64    `form:"series_id" binding:"required"`
	Title         string   `form:"title" binding:"required,max=255"`
	TitleEn       string   `form:"title_en" binding:"max=255"`
	Slug          string   `form:"slug" binding:"max=255"`
	SlugEn        string   `form:"slug_en" binding:"max=255"`
	EpisodeNumber int      `form:"episode_number" binding:"required,min=1"`
	Description   string   `form:"description"`
	DescriptionEn string   `form:"description_en"`
	VideoURLs     []string `form:"video_urls" binding:"omitempty,dive,max=500"`
	Duration      int      `form:"duration" binding:"omitempty,min=1"`
	Quality       string   `form:"quality" binding:"max=50"`
	VideoFormat   string   `form:"video_format" binding:"max=20"`
	ReleaseDate   string   `form:"release_date"`
	IsPublished   bool     `form:"is_published"`
	Language      string   `form:"language" binding:"max=10"`
	Subtitles     []string `form:"subtitles"`
	Rating        float64  `form:"rating" binding:"min=0,max=10"`
}

func (f EpisodeForm) ToInput() (service.EpisodeInput, error) {
	releaseDate, err := parseDate(f.ReleaseDate)
	if err != nil {
		return service.EpisodeInput{}, err
	}
	return service.EpisodeInput{
		SeriesID:      f.SeriesID,
		Title:         f.Title,
		TitleEn:       optString(f.TitleEn),
		Slug:          f.Slug,
		SlugEn:        optString(f.SlugEn),
		EpisodeNumber: f.EpisodeNumber,
		Description:   optString(f.Description),
		DescriptionEn: optString(f.DescriptionEn),
		VideoURLs:     f.VideoURLs,
		Duration:      optInt(f.Duration),
		Quality:       optString(f.Quality),
		VideoFormat:   optString(f.VideoFormat),
		ReleaseDate:   releaseDate,
		IsPublished:   f.IsPublished,
		Language:      f.Language,
		Subtitles:     f.Subtitles,
		Rating:        f.Rating,
	}, nil
}
