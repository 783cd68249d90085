package dto

import (
	"anicms/internal/models"
)

type CategoryForm struct {
	Name   string `form:"name" binding:"required,max=255"`
	NameEn string `form:"name_en" binding:"max=255"`
	Slug   string `form:"slug" binding:"max=255"`
	SlugEn string `form:"slug_en" binding:"max=255"`
}

func (f CategoryForm) ToModel() models.Category {
	return models.Category{
		Name:   f.Name,
		NameEn: optString(f.NameEn),
		Slug:   f.Slug,
		SlugEn: optString(f.SlugEn),
	}
}
