package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/wanjikuh/shop_admin/apperrors"
	"github.com/wanjikuh/shop_admin/logger"
	"github.com/wanjikuh/shop_admin/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

type gormUserRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepository(db *gorm.DB, baseLog *logger.Logger) UserRepository {
	return &gormUserRepository{db: db, log: baseLog.With("repo", "UserRepository")}
}

func (r *gormUserRepository) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "user",
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, apperrors.Storage("create user", err)
	}
	return &user, nil
}

func (r *gormUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %q: %w", username, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, apperrors.Storage("get user by username", err)
	}
	return &user, nil
}

func (r *gormUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, apperrors.Storage("list users", err)
	}
	return users, nil
}
