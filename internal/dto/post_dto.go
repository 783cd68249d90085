package dto

import (
	"anicms/internal/service"
)

type PostForm struct {
	Title string `form:"title" binding:"required,max=255"`
	Body  string `form:"body" binding:"required"`
}

func (f PostForm) ToInput() service.PostInput {
	return service.PostInput{
		Title: f.Title,
		Body:  f.Body,
	}
}
