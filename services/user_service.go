package services

import (
	"context"

	"github.com/wanjikuh/shop_admin/models"
	"github.com/wanjikuh/shop_admin/repositories"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.users.GetAllUsers(ctx)
}
