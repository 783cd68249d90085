package repository

import (
	"context"
	"fmt"

	"anicms/internal/models"

	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	var list []models.User
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Permissions").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, translate(err)
	}
	return list, total, nil
}

// GetByID loads the user with roles, role-derived permissions and direct
// permission grants, which is everything a capability check needs.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Preload("Roles.Permissions").
		Preload("Permissions").
		First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Preload("Roles.Permissions").
		Preload("Permissions").
		First(&u, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", translate(err))
	}
	return nil
}

func (r *UserRepo) Update(ctx context.Context, id string, u *models.User) error {
	u.ID = id
	if err := r.db.WithContext(ctx).Omit("Roles", "Permissions").Save(u).Error; err != nil {
		return fmt.Errorf("update user: %w", translate(err))
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete user: %w", translate(err))
	}
	return nil
}

func (r *UserRepo) ReplaceRoles(ctx context.Context, userID string, roleIDs []int64) error {
	u := models.User{ID: userID}
	roles := make([]models.Role, 0, len(roleIDs))
	for _, id := range roleIDs {
		roles = append(roles, models.Role{ID: id})
	}
	if err := r.db.WithContext(ctx).Model(&u).Association("Roles").Replace(&roles); err != nil {
		return fmt.Errorf("replace roles: %w", translate(err))
	}
	return nil
}

func (r *UserRepo) ReplacePermissions(ctx context.Context, userID string, permissionIDs []int64) error {
	u := models.User{ID: userID}
	perms := make([]models.Permission, 0, len(permissionIDs))
	for _, id := range permissionIDs {
		perms = append(perms, models.Permission{ID: id})
	}
	if err := r.db.WithContext(ctx).Model(&u).Association("Permissions").Replace(&perms); err != nil {
		return fmt.Errorf("replace permissions: %w", translate(err))
	}
	return nil
}
