package models

import "time"

type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"not null;size:255"`
	Body      string    `json:"body" gorm:"not null"`
	Image     *string   `json:"image,omitempty"`
	UserID    *string   `json:"user_id,omitempty" gorm:"type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

func (Post) TableName() string {
	return "posts"
}
