package service

import (
	"reviewcash/internal/repository"
	"reviewcash/pkg/models"
)

type TaskServiceImpl struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) *TaskServiceImpl {
	return &TaskServiceImpl{repo: repo}
}

func (t TaskServiceImpl) ListActiveTasks() ([]models.Task, error) {
	return t.repo.ListActiveTasks()
}
