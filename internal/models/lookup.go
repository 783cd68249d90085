package models

import "time"

// LookupFields is the shared shape of the small admin-managed lookup tables
// (seasons, studios, languages, types). UserID records the last user who
// created or edited the row, not the creator: update overwrites it too.
type LookupFields struct {
	ID        int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"not null;size:255"`
	NameEn    string     `json:"name_en" gorm:"size:255"`
	Slug      string     `json:"slug" gorm:"uniqueIndex;not null;size:255"`
	Date      *time.Time `json:"date,omitempty"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	UserID    *string    `json:"user_id,omitempty" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Apply replaces the editable fields from a submitted form.
func (f *LookupFields) Apply(name, nameEn, slug string, date *time.Time, isActive bool) {
	f.Name = name
	f.NameEn = nameEn
	f.Slug = slug
	f.Date = date
	f.IsActive = isActive
}

func (f *LookupFields) SetLastEditor(userID string) {
	f.UserID = &userID
}

func (f *LookupFields) SetID(id int64) {
	f.ID = id
}

func (f *LookupFields) GetID() int64 {
	return f.ID
}

// EnglishName falls back to the primary-language name when no English one
// was entered. Animes denormalize this value at create time.
func (f *LookupFields) EnglishName() string {
	if f.NameEn != "" {
		return f.NameEn
	}
	return f.Name
}

type Season struct {
	LookupFields `gorm:"embedded"`
}

func (Season) TableName() string {
	return "seasons"
}

type Studio struct {
	LookupFields `gorm:"embedded"`
}

func (Studio) TableName() string {
	return "studios"
}

type Language struct {
	LookupFields `gorm:"embedded"`
}

func (Language) TableName() string {
	return "languages"
}

type Type struct {
	LookupFields `gorm:"embedded"`
}

func (Type) TableName() string {
	return "types"
}
