package dto

import (
	"anicms/internal/service"
)

// UserForm binds the user create/update form. Password is optional on
// update; roles and permissions replace the current grants when present.
type UserForm struct {
	Name          string  `form:"name" binding:"required,max=255"`
	Email         string  `form:"email" binding:"required,email,max=255"`
	Password      string  `form:"password"`
	RoleIDs       []int64 `form:"role_ids"`
	PermissionIDs []int64 `form:"permission_ids"`
}

func (f UserForm) ToInput() service.UserInput {
	return service.UserInput{
		Name:          f.Name,
		Email:         f.Email,
		Password:      f.Password,
		RoleIDs:       f.RoleIDs,
		PermissionIDs: f.PermissionIDs,
	}
}

type RoleForm struct {
	Name          string  `form:"name" binding:"required,max=255"`
	PermissionIDs []int64 `form:"permission_ids"`
}

type PermissionForm struct {
	Name string `form:"name" binding:"required,max=255"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `form:"refresh_token" json:"refresh_token" binding:"required"`
}
