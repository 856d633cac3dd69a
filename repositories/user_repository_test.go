package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanjikuh/shop_admin/apperrors"
)

func newUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewUserRepository(db, testLogger(t)), mock
}

func TestCreateUser_ReturnsGeneratedID(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	user, err := repo.CreateUser(context.Background(), "alice", "alice@example.com", "$2a$10$hash")
	require.NoError(t, err)
	assert.Equal(t, uint(12), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "user", user.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role"}))

	_, err := repo.GetUserByUsername(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllUsers_ReturnsRows(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "role"}).
			AddRow(1, "alice", "alice@example.com", "hash", "admin").
			AddRow(2, "bob", "bob@example.com", "hash", "user"))

	users, err := repo.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	require.NoError(t, mock.ExpectationsWereMet())
}
