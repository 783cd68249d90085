package models

import "time"

// Episode belongs to exactly one Anime through SeriesID. The episode number
// is unique within its series, not globally; slugs are unique globally.
type Episode struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	SeriesID      int64      `json:"series_id" gorm:"not null;uniqueIndex:idx_episodes_series_number,priority:1"`
	Title         string     `json:"title" gorm:"not null;size:255"`
	TitleEn       *string    `json:"title_en,omitempty" gorm:"size:255"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	SlugEn        *string    `json:"slug_en,omitempty" gorm:"uniqueIndex;size:255"`
	EpisodeNumber int        `json:"episode_number" gorm:"not null;uniqueIndex:idx_episodes_series_number,priority:2"`
	Description   *string    `json:"description,omitempty"`
	DescriptionEn *string    `json:"description_en,omitempty"`
	Thumbnail     *string    `json:"thumbnail,omitempty"`
	Banner        *string    `json:"banner,omitempty"`
	Duration      *int       `json:"duration,omitempty"`
	Quality       *string    `json:"quality,omitempty" gorm:"size:50"`
	VideoFormat   *string    `json:"video_format,omitempty" gorm:"size:20"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	IsPublished   bool       `json:"is_published" gorm:"default:false"`
	Language      string     `json:"language" gorm:"default:'ar';size:10"`
	Subtitles     StringList `json:"subtitles,omitempty" gorm:"type:json"`
	Rating        float64    `json:"rating" gorm:"type:decimal(3,1);default:0"`
	ViewsCount    int        `json:"views_count" gorm:"default:0"`
	LikesCount    int        `json:"likes_count" gorm:"default:0"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// associations
	Series *Anime         `json:"series,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE"`
	Videos []EpisodeVideo `json:"videos,omitempty" gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE"`
}

func (Episode) TableName() string {
	return "episodes"
}
