package repository

import (
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"

	"reviewcash/pkg/models"
)

type TaskRepositoryImpl struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepositoryImpl {
	return &TaskRepositoryImpl{
		db: db,
	}
}

func (t TaskRepositoryImpl) ListActiveTasks() ([]models.Task, error) {
	query := `SELECT id, title, reward, status FROM tasks WHERE status=?;`

	tasks := make([]models.Task, 0)
	if err := t.db.Select(&tasks, query, models.TaskStatusActive); err != nil {
		log.Errorf("list active tasks err: %v", err)
		return nil, err
	}
	return tasks, nil
}
