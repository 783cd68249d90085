package models

import "time"

type Anime struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string     `json:"title" gorm:"uniqueIndex;not null;size:255"`
	TitleEn       *string    `json:"title_en,omitempty" gorm:"uniqueIndex;size:255"`
	Description   *string    `json:"description,omitempty"`
	DescriptionEn *string    `json:"description_en,omitempty"`
	Seasons       int        `json:"seasons" gorm:"default:1"`
	Status        string     `json:"status" gorm:"default:'Ongoing';size:50"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	Rating        *float64   `json:"rating,omitempty" gorm:"type:decimal(3,1)"`
	Image         *string    `json:"image,omitempty"`
	Cover         *string    `json:"cover,omitempty"`
	StudioName    *string    `json:"studio_name,omitempty"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	SlugEn        *string    `json:"slug_en,omitempty" gorm:"uniqueIndex;size:255"`
	Duration      *int       `json:"duration,omitempty"`
	Language      *string    `json:"language,omitempty"`
	Trailer       *string    `json:"trailer,omitempty"`
	Type          *string    `json:"type,omitempty" gorm:"size:50"`
	IsActive      bool       `json:"is_active" gorm:"default:false"`
	UserID        *string    `json:"user_id,omitempty" gorm:"type:uuid"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// associations
	User       *User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Categories []Category `json:"categories,omitempty" gorm:"many2many:anime_categories;constraint:OnDelete:CASCADE"`
	Episodes   []Episode  `json:"episodes,omitempty" gorm:"foreignKey:SeriesID;constraint:OnDelete:CASCADE"`
}

func (Anime) TableName() string {
	return "animes"
}
