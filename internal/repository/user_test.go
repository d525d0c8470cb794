package repository

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"reviewcash/pkg/models"
)

func TestGetUser_Absent(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.GetUser("111")
	require.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestCreateUser_AppliesColumnDefaults(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.CreateUser(models.User{UID: "111", CreatedAt: "2026-08-28T10:00:00Z"}))

	user, err := repo.GetUser("111")
	require.NoError(t, err)
	require.Equal(t, "111", user.UID)
	require.Equal(t, int64(0), user.Balance)
	require.Equal(t, "user", user.Role)
	require.Equal(t, "2026-08-28T10:00:00Z", user.CreatedAt)
}

func TestCreateUser_DuplicateLeavesFirstRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.CreateUser(models.User{UID: "222", CreatedAt: "2026-08-28T10:00:00Z"}))
	require.NoError(t, repo.CreateUser(models.User{UID: "222", CreatedAt: "2026-08-28T11:11:11Z"}))

	user, err := repo.GetUser("222")
	require.NoError(t, err)
	require.Equal(t, "2026-08-28T10:00:00Z", user.CreatedAt)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users WHERE uid=?", "222"))
	require.Equal(t, 1, count)
}
