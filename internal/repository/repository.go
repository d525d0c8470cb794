package repository

import (
	"reviewcash/pkg/models"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	UserRepository
	TaskRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	userRepository := NewUserRepository(db)
	taskRepository := NewTaskRepository(db)
	return &Repositories{
		UserRepository: userRepository,
		TaskRepository: taskRepository,
	}
}

type UserRepository interface {
	CreateUser(user models.User) error
	GetUser(uid string) (models.User, error)
}

type TaskRepository interface {
	ListActiveTasks() ([]models.Task, error)
}
