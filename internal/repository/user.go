package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"reviewcash/pkg/models"
	"reviewcash/pkg/sqlite"
)

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{
		db: db,
	}
}

// CreateUser inserts a user row, leaving balance and role to the column
// defaults. A row that already exists is left untouched, so two
// concurrent callers racing on the same uid both succeed and exactly
// one row ends up in the table.
func (u UserRepositoryImpl) CreateUser(user models.User) error {
	query := `
		INSERT INTO users (uid, created_at)
		VALUES (?, ?)
		ON CONFLICT (uid) DO NOTHING;
	`
	err := sqlite.WithBusyRetry(context.Background(), sqlite.RetryConfig{}, log.Debugf, func() error {
		_, err := u.db.Exec(query, user.UID, user.CreatedAt)
		return err
	})
	if err != nil {
		log.Errorf("create user err: %v", err)
		return err
	}
	return nil
}

func (u UserRepositoryImpl) GetUser(uid string) (models.User, error) {
	query := `SELECT uid, balance, role, created_at FROM users WHERE uid=?;`
	row := u.db.QueryRow(query, uid)

	var foundUser models.User
	err := row.Scan(&foundUser.UID, &foundUser.Balance, &foundUser.Role, &foundUser.CreatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Errorf("get user err: %v", err)
		}
		return models.User{}, err
	}
	return foundUser, nil
}
