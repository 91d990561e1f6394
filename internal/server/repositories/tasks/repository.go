// Package tasks provides PostgreSQL-backed persistence for task records.
// Every query is scoped to an owning user.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	FindByFilter(ctx context.Context, filter models.TaskFilter, userID string) ([]*models.Task, error)
	GetByID(ctx context.Context, id string, userID string) (*models.Task, error)
	UpdateStatus(ctx context.Context, id string, userID string, status models.TaskStatus) (*models.Task, error)
	Delete(ctx context.Context, id string, userID string) error
}
