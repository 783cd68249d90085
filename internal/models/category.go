package models

import "time"

type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	NameEn    *string   `json:"name_en,omitempty" gorm:"size:255"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	SlugEn    *string   `json:"slug_en,omitempty" gorm:"uniqueIndex;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// shared across animes, join rows cascade with either side
	Animes []Anime `json:"animes,omitempty" gorm:"many2many:anime_categories;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string {
	return "categories"
}
