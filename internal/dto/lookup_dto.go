package dto

import (
	"anicms/internal/service"
)

// LookupForm binds the season/studio/language/type forms, which all share
// one shape.
type LookupForm struct {
	Name     string `form:"name" binding:"required,max=255"`
	NameEn   string `form:"name_en" binding:"max=255"`
	Slug     string `form:"slug" binding:"max=255"`
	Date     string `form:"date"`
	IsActive bool   `form:"is_active"`
}

func (f LookupForm) ToInput() (service.LookupInput, error) {
	date, err := parseDate(f.Date)
	if err != nil {
		return service.LookupInput{}, err
	}
	return service.LookupInput{
		Name:     f.Name,
		NameEn:   f.NameEn,
		Slug:     f.Slug,
		Date:     date,
		IsActive: f.IsActive,
	}, nil
}
