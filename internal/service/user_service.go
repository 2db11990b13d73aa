package service

import (
	"context"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/config"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/repository"
)

type UpdateUserRequest struct {
	UserUUID string `json:"user_uuid"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	IsActive *bool  `json:"is_active"`
	RoleUUID string `json:"role_uuid" validate:"required,uuid4"`
}

// PatchUserRequest carries pointer fields: only the ones present in the
// request body are written.
type PatchUserRequest struct {
	UserUUID string  `json:"user_uuid"`
	Username *string `json:"username" validate:"omitempty,min=3,max=64"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
	RoleUUID *string `json:"role_uuid" validate:"omitempty,uuid4"`
}

type UserService interface {
	UpdateUser(ctx context.Context, req UpdateUserRequest) error
	PatchUser(ctx context.Context, req PatchUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, userUUID string) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *userService) UpdateUser(ctx context.Context, req UpdateUserRequest) error {
	user, err := s.userRepo.GetUserByUUID(ctx, req.UserUUID)
	if err != nil {
		return err
	}

	user.Username = req.Username
	user.Email = req.Email
	user.RoleUUID = req.RoleUUID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	return s.userRepo.UpdateUser(ctx, user)
}

func (s *userService) PatchUser(ctx context.Context, req PatchUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByUUID(ctx, req.UserUUID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.RoleUUID != nil {
		user.RoleUUID = *req.RoleUUID
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userUUID string) error {
	return s.userRepo.DeleteUser(ctx, userUUID)
}
