package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"anicms/internal/auth"
	"anicms/internal/models"
	"anicms/internal/repository"
	"anicms/internal/storage"
)

var ErrWeakPassword = errors.New("password must be at least 8 characters")

// UserInput carries one user create or update form submission. An empty
// Password on update keeps the current hash; nil RoleIDs/PermissionIDs keep
// the current grants.
type UserInput struct {
	Name          string
	Email         string
	Password      string
	Avatar        *multipart.FileHeader
	RoleIDs       []int64
	PermissionIDs []int64
}

type UserService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, in UserInput) (*models.User, error)
	Update(ctx context.Context, id string, in UserInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo  *repository.UserRepo
	blobs storage.BlobStore
}

func NewUserService(repo *repository.UserRepo, blobs storage.BlobStore) UserService {
	return &userService{repo: repo, blobs: blobs}
}

func (s *userService) GetAll(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize)
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	if len(in.Password) < 8 {
		return nil, ErrWeakPassword
	}
	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: hashed,
	}

	if in.Avatar != nil {
		p, err := s.blobs.SaveUpload(storage.FolderAvatars, in.Avatar)
		if err != nil {
			return nil, fmt.Errorf("store avatar: %w", err)
		}
		user.Avatar = &p
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	if len(in.RoleIDs) > 0 {
		if err := s.repo.ReplaceRoles(ctx, user.ID, in.RoleIDs); err != nil {
			return nil, err
		}
	}
	if len(in.PermissionIDs) > 0 {
		if err := s.repo.ReplacePermissions(ctx, user.ID, in.PermissionIDs); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id string, in UserInput) (*models.User, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Name) != "" {
		existing.Name = strings.TrimSpace(in.Name)
	}
	if strings.TrimSpace(in.Email) != "" {
		existing.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Password != "" {
		if len(in.Password) < 8 {
			return nil, ErrWeakPassword
		}
		hashed, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		existing.Password = hashed
	}

	if in.Avatar != nil {
		if existing.Avatar != nil {
			if err := s.blobs.Delete(*existing.Avatar); err != nil {
				return nil, fmt.Errorf("delete old avatar: %w", err)
			}
		}
		p, err := s.blobs.SaveUpload(storage.FolderAvatars, in.Avatar)
		if err != nil {
			return nil, fmt.Errorf("store avatar: %w", err)
		}
		existing.Avatar = &p
	}

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}
	if in.RoleIDs != nil {
		if err := s.repo.ReplaceRoles(ctx, id, in.RoleIDs); err != nil {
			return nil, err
		}
	}
	if in.PermissionIDs != nil {
		if err := s.repo.ReplacePermissions(ctx, id, in.PermissionIDs); err != nil {
			return nil, err
		}
	}
	return existing, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Avatar != nil {
		if err := s.blobs.Delete(*user.Avatar); err != nil {
			return fmt.Errorf("delete avatar: %w", err)
		}
	}
	return s.repo.Delete(ctx, id)
}
