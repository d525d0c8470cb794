package service

import (
	"database/sql"
	"errors"
	"time"

	"reviewcash/internal/repository"
	"reviewcash/pkg/models"
)

type UserServiceImpl struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{repo: repo}
}

// EnsureUser creates the row for uid on first contact and is a no-op on
// every later call. Balance and role come from the schema defaults;
// created_at is pinned to the first call.
func (u UserServiceImpl) EnsureUser(uid string) error {
	_, err := u.repo.GetUser(uid)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	user := models.User{
		UID:       uid,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return u.repo.CreateUser(user)
}

func (u UserServiceImpl) GetUser(uid string) (models.User, error) {
	return u.repo.GetUser(uid)
}
