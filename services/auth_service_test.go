package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wanjikuh/shop_admin/apperrors"
	"github.com/wanjikuh/shop_admin/models"
)

type fakeUserRepo struct {
	users     map[string]*models.User
	nextID    uint
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, username, email, passwordHash string) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	user := &models.User{
		ID:           f.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "user",
	}
	f.nextID++
	f.users[username] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetAllUsers(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

const testSecret = "test-secret"

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return parsed.Claims.(jwt.MapClaims)
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testSecret)

	res, err := svc.Register(context.Background(), "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	stored := repo.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))

	claims := parseClaims(t, res.Token)
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "user", claims["role"])
}

func TestRegister_PropagatesRepositoryError(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = apperrors.Storage("create user", errors.New("duplicate key"))
	svc := NewAuthService(repo, testSecret)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "hunter22")
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
}

func TestLogin_Succeeds(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testSecret)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "alice", "hunter22")
	require.NoError(t, err)
	claims := parseClaims(t, res.Token)
	assert.Equal(t, "alice", claims["username"])
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testSecret)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_UnknownUserIsUnauthorizedNotNotFound(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testSecret)

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.False(t, apperrors.IsNotFound(err))
}

func TestTokenForAddress_SetsAddressAsSubject(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testSecret)

	res, err := svc.TokenForAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	require.NoError(t, err)

	claims := parseClaims(t, res.Token)
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", claims["sub"])
}
