package service

import (
	"context"
	"errors"
	"strings"

	"anicms/internal/models"
	"anicms/internal/repository"
)

type RoleService interface {
	GetAll(ctx context.Context) ([]models.Role, error)
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	Create(ctx context.Context, name string, permissionIDs []int64) (*models.Role, error)
	Update(ctx context.Context, id int64, name string, permissionIDs []int64) (*models.Role, error)
	Delete(ctx context.Context, id int64) error
}

type roleService struct {
	repo *repository.RoleRepo
}

func NewRoleService(repo *repository.RoleRepo) RoleService {
	return &roleService{repo: repo}
}

func (s *roleService) GetAll(ctx context.Context) ([]models.Role, error) {
	return s.repo.GetAll(ctx)
}

func (s *roleService) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *roleService) Create(ctx context.Context, name string, permissionIDs []int64) (*models.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	role := &models.Role{Name: name}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	if len(permissionIDs) > 0 {
		if err := s.repo.ReplacePermissions(ctx, role.ID, permissionIDs); err != nil {
			return nil, err
		}
	}
	return role, nil
}

func (s *roleService) Update(ctx context.Context, id int64, name string, permissionIDs []int64) (*models.Role, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) != "" {
		existing.Name = strings.TrimSpace(name)
	}
	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	if permissionIDs != nil {
		if err := s.repo.ReplacePermissions(ctx, id, permissionIDs); err != nil {
			return nil, err
		}
	}
	return existing, nil
}

func (s *roleService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

type PermissionService interface {
	GetAll(ctx context.Context) ([]models.Permission, error)
	Create(ctx context.Context, name string) (*models.Permission, error)
	Delete(ctx context.Context, id int64) error
}

type permissionService struct {
	repo *repository.PermissionRepo
}

func NewPermissionService(repo *repository.PermissionRepo) PermissionService {
	return &permissionService{repo: repo}
}

func (s *permissionService) GetAll(ctx context.Context) ([]models.Permission, error) {
	return s.repo.GetAll(ctx)
}

func (s *permissionService) Create(ctx context.Context, name string) (*models.Permission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	p := &models.Permission{Name: name}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *permissionService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
