package repository

import (
	"context"
	"fmt"

	"anicms/internal/models"

	"gorm.io/gorm"
)

type RoleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

func (r *RoleRepo) GetAll(ctx context.Context) ([]models.Role, error) {
	var list []models.Role
	if err := r.db.WithContext(ctx).Preload("Permissions").Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get roles: %w", translate(err))
	}
	return list, nil
}

func (r *RoleRepo) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	var role models.Role
	if err := r.db.WithContext(ctx).Preload("Permissions").First(&role, id).Error; err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

func (r *RoleRepo) Create(ctx context.Context, role *models.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return fmt.Errorf("create role: %w", translate(err))
	}
	return nil
}

func (r *RoleRepo) Update(ctx context.Context, id int64, role *models.Role) error {
	role.ID = id
	if err := r.db.WithContext(ctx).Omit("Permissions").Save(role).Error; err != nil {
		return fmt.Errorf("update role: %w", translate(err))
	}
	return nil
}

func (r *RoleRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Role{}, id).Error; err != nil {
		return fmt.Errorf("delete role: %w", translate(err))
	}
	return nil
}

func (r *RoleRepo) ReplacePermissions(ctx context.Context, roleID int64, permissionIDs []int64) error {
	role := models.Role{ID: roleID}
	perms := make([]models.Permission, 0, len(permissionIDs))
	for _, id := range permissionIDs {
		perms = append(perms, models.Permission{ID: id})
	}
	if err := r.db.WithContext(ctx).Model(&role).Association("Permissions").Replace(&perms); err != nil {
		return fmt.Errorf("replace role permissions: %w", translate(err))
	}
	return nil
}

type PermissionRepo struct {
	db *gorm.DB
}

func NewPermissionRepo(db *gorm.DB) *PermissionRepo {
	return &PermissionRepo{db: db}
}

func (r *PermissionRepo) GetAll(ctx context.Context) ([]models.Permission, error) {
	var list []models.Permission
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get permissions: %w", translate(err))
	}
	return list, nil
}

func (r *PermissionRepo) Create(ctx context.Context, p *models.Permission) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create permission: %w", translate(err))
	}
	return nil
}

func (r *PermissionRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Permission{}, id).Error; err != nil {
		return fmt.Errorf("delete permission: %w", translate(err))
	}
	return nil
}
