package dto

import (
	"anicms/internal/service"
)

// AnimeForm binds the multipart anime create/update form. On create the
// studio/language/type arrive as lookup ids; on update the form submits the
// denormalized names, matching what the row already stores.
type AnimeForm struct {
	Title         string  `form:"title" binding:"required,max=255"`
	TitleEn       string  `form:"title_en" binding:"max=255"`
	Slug          string  `form:"slug" binding:"max=255"`
	SlugEn        string  `form:"slug_en" binding:"max=255"`
	Description   string  `form:"description"`
	DescriptionEn string  `form:"description_en"`
	CategoryIDs   []int64 `form:"category_ids"`
	Seasons       int     `form:"seasons" binding:"omitempty,min=1"`
	Status        string  `form:"status" binding:"max=50"`
	ReleaseDate   string  `form:"release_date"`
	Rating        float64 `form:"rating" binding:"min=0,max=10"`
	StudioID      int64   `form:"studio_id"`
	LanguageID    int64   `form:"language_id"`
	TypeID        int64   `form:"type_id"`
	StudioName    string  `form:"studio_name" binding:"max=255"`
	Language      string  `form:"language" binding:"max=255"`
	Type          string  `form:"type" binding:"max=50"`
	Duration      int     `form:"duration"`
	Trailer       string  `form:"trailer" binding:"max=255"`
	IsActive      bool    `form:"is_active"`
}

func (f AnimeForm) ToInput() (service.AnimeInput, error) {
	releaseDate, err := parseDate(f.ReleaseDate)
	if err != nil {
		return service.AnimeInput{}, err
	}
	return service.AnimeInput{
		Title:         f.Title,
		TitleEn:       optString(f.TitleEn),
		Slug:          f.Slug,
		SlugEn:        optString(f.SlugEn),
		Description:   optString(f.Description),
		DescriptionEn: optString(f.DescriptionEn),
		CategoryIDs:   f.CategoryIDs,
		Seasons:       f.Seasons,
		Status:        f.Status,
		ReleaseDate:   releaseDate,
		Rating:        optFloat(f.Rating),
		StudioID:      optInt64(f.StudioID),
		LanguageID:    optInt64(f.LanguageID),
		TypeID:        optInt64(f.TypeID),
		StudioName:    optString(f.StudioName),
		Language:      optString(f.Language),
		TypeName:      optString(f.Type),
		Duration:      optInt(f.Duration),
		Trailer:       optString(f.Trailer),
		IsActive:      f.IsActive,
	}, nil
}
