package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

// TaskService enforces ownership checks over the task repository. Every
// operation is parameterized by the authenticated user; a task belonging to
// someone else is indistinguishable from a missing one.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

// NewTaskService constructs a TaskService.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *TaskService {
	return &TaskService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "task_service"),
	}
}

func filterDescription(filter models.TaskFilter) string {
	status, search := "", ""
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	if filter.Search != nil {
		search = *filter.Search
	}
	return fmt.Sprintf("status=%q search=%q", status, search)
}

// List returns all tasks owned by user matching the filter. An empty result
// is not an error. Storage failures are logged with the owner and the filter
// attempted, and surface as common.ErrorInternal.
func (s *TaskService) List(ctx context.Context, filter models.TaskFilter, user *models.User) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	result, err := repo.FindByFilter(ctx, filter, user.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to get tasks",
			"username", user.UserName, "filters", filterDescription(filter), "error", err.Error())
		return nil, common.ErrorInternal
	}

	return result, nil
}

// Get fetches a single task owned by user. A miss yields common.ErrorNotFound.
func (s *TaskService) Get(ctx context.Context, id string, user *models.User) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	task, err := repo.GetByID(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "failed to get task",
			"username", user.UserName, "task_id", id, "error", err.Error())
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Create stores a new task owned by user with status OPEN.
func (s *TaskService) Create(ctx context.Context, title string, description string, user *models.User) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	task := &models.Task{
		Title:       title,
		Description: description,
		Status:      models.TaskStatusOpen,
		UserID:      user.ID,
	}

	task, err := repo.Create(ctx, task)
	if err != nil {
		s.logger.Error(ctx, "failed to create task",
			"username", user.UserName, "title", title, "description", description, "error", err.Error())
		return nil, common.ErrorInternal
	}

	return task, nil
}

// UpdateStatus moves an owned task to status and returns the updated task.
// Any status may move to any other status directly. A miss on the task
// inherits Get's NotFound semantics.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, status models.TaskStatus, user *models.User) (*models.Task, error) {
	if _, err := s.Get(ctx, id, user); err != nil {
		return nil, err
	}

	repo := s.repomanager.Tasks(s.db)
	task, err := repo.UpdateStatus(ctx, id, user.ID, status)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "failed to update task status",
			"username", user.UserName, "task_id", id, "status", string(status), "error", err.Error())
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Delete removes an owned task and returns its last known state. The read
// and the delete run in one transaction.
func (s *TaskService) Delete(ctx context.Context, id string, user *models.User) (*models.Task, error) {
	var task *models.Task

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		t, err := repo.GetByID(ctx, id, user.ID)
		if err != nil {
			return err
		}

		if err := repo.Delete(ctx, id, user.ID); err != nil {
			return err
		}

		task = t
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "failed to delete task",
			"username", user.UserName, "task_id", id, "error", err.Error())
		return nil, common.ErrorInternal
	}

	return task, nil
}
