package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/wanjikuh/shop_admin/apperrors"
	"github.com/wanjikuh/shop_admin/models"
	"github.com/wanjikuh/shop_admin/repositories"
)

type AuthResponse struct {
	Token string `json:"token"`
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*AuthResponse, error)
	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	// TokenForAddress issues a session token for a wallet address that has
	// already been verified via SIWE.
	TokenForAddress(address string) (*AuthResponse, error)
}

type authService struct {
	users     repositories.UserRepository
	jwtSecret string
}

func NewAuthService(users repositories.UserRepository, jwtSecret string) AuthService {
	return &authService{users: users, jwtSecret: jwtSecret}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, username, email, string(hashed))
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*AuthResponse, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrUnauthorized
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token}, nil
}

func (s *authService) TokenForAddress(address string) (*AuthResponse, error) {
	claims := jwt.MapClaims{
		"sub":  address,
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := s.sign(claims)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token}, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	return s.sign(claims)
}

func (s *authService) sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
